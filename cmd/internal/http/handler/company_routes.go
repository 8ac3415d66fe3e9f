package handler

import (
	"context"
	"net/http"

	"bizindustry/cmd/internal/contract"
	"bizindustry/cmd/internal/utils/apierror"

	"github.com/labstack/echo/v4"
)

const companyTitle = "Detalhes da Empresa"

type CompanyService interface {
	GetCompany(ctx context.Context, req *contract.CompanyRequest) (*contract.CompanyDetail, apierror.ErrorResponse)
}

type DefaultCompanyRoute struct {
	CompanyService CompanyService
}

func NewCompanyDefault(companyService CompanyService) *DefaultCompanyRoute {
	return &DefaultCompanyRoute{CompanyService: companyService}
}

func (r *DefaultCompanyRoute) GetCompany(c echo.Context) error {
	req := contract.CompanyRequest{ID: c.Param("id")}

	detail, apierr := r.CompanyService.GetCompany(c.Request().Context(), &req)
	if apierr != nil {
		return renderError(c, companyTitle, apierr)
	}

	page := &contract.CompanyPage{
		Page:    contract.NewPage(detail.Name, "results"),
		Company: detail,
	}
	page.Ready()
	return c.Render(http.StatusOK, "company", page)
}
