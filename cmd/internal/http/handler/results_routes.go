package handler

import (
	"context"
	"net/http"

	"bizindustry/cmd/internal/contract"
	"bizindustry/cmd/internal/domain/entity"
	"bizindustry/cmd/internal/utils"
	"bizindustry/cmd/internal/utils/apierror"

	"github.com/labstack/echo/v4"
)

const resultsTitle = "Resultados"

type ResultsService interface {
	Load(ctx context.Context, sessionID string, filter entity.Filter) (*contract.ResultsPage, apierror.ErrorResponse)
}

type DefaultResultsRoute struct {
	ResultsService ResultsService
}

func NewResultsDefault(resultsService ResultsService) *DefaultResultsRoute {
	return &DefaultResultsRoute{ResultsService: resultsService}
}

func (r *DefaultResultsRoute) GetResults(c echo.Context) error {
	var req contract.ResultsRequest
	if err := c.Bind(&req); err != nil {
		req.Filter = ""
	}

	sid, serr := utils.GetSessionFromContext(c)
	if serr != nil {
		return renderError(c, resultsTitle, serr)
	}

	page, apierr := r.ResultsService.Load(c.Request().Context(), sid, entity.ParseFilter(req.Filter))
	if apierr != nil {
		return renderError(c, resultsTitle, apierr)
	}
	return c.Render(http.StatusOK, "results", page)
}
