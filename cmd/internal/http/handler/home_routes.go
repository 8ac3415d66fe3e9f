package handler

import (
	"context"
	"net/http"
	"strings"

	"bizindustry/cmd/internal/contract"
	"bizindustry/cmd/internal/domain/entity"
	"bizindustry/cmd/internal/service"
	"bizindustry/cmd/internal/utils"
	"bizindustry/cmd/internal/utils/apierror"

	"github.com/labstack/echo/v4"
)

type HomeService interface {
	HomeOptions(ctx context.Context) (*contract.HomeOptions, apierror.ErrorResponse)
	Search(ctx context.Context, sessionID string, req *contract.SearchRequest) apierror.ErrorResponse
	ExploreRegion(ctx context.Context, sessionID string, req *contract.ExploreRequest) (bool, apierror.ErrorResponse)
}

type DefaultHomeRoute struct {
	HomeService HomeService
}

func NewHomeDefault(homeService HomeService) *DefaultHomeRoute {
	return &DefaultHomeRoute{HomeService: homeService}
}

func (h *DefaultHomeRoute) GetHome(c echo.Context) error {
	selected := strings.TrimSpace(c.QueryParam("region"))
	if !entity.IsKnownRegion(selected) {
		selected = entity.RegionGlobal
	}

	form := &contract.SearchRequest{Region: selected}
	return h.renderHome(c, http.StatusOK, form, nil, selected)
}

func (h *DefaultHomeRoute) Search(c echo.Context) error {
	var req contract.SearchRequest
	if err := c.Bind(&req); err != nil {
		return renderError(c, "", apierror.SearchFailedError)
	}

	sid, serr := utils.GetSessionFromContext(c)
	if serr != nil {
		return renderError(c, "", serr)
	}

	apierr := h.HomeService.Search(c.Request().Context(), sid, &req)
	if apierr != nil {
		if formErr, ok := apierr.(*apierror.StructuredError); ok {
			return h.renderHome(c, formErr.Code(), &req, formErr, req.Region)
		}
		return renderError(c, "", apierr)
	}
	return c.Redirect(http.StatusSeeOther, "/results")
}

func (h *DefaultHomeRoute) Explore(c echo.Context) error {
	var req contract.ExploreRequest
	if err := c.Bind(&req); err != nil {
		return renderError(c, "", apierror.RegionSearchFailedError)
	}

	sid, serr := utils.GetSessionFromContext(c)
	if serr != nil {
		return renderError(c, "", serr)
	}

	searched, apierr := h.HomeService.ExploreRegion(c.Request().Context(), sid, &req)
	if apierr != nil {
		return renderError(c, "", apierr)
	}

	if !searched {
		return c.Redirect(http.StatusSeeOther, "/")
	}
	return c.Redirect(http.StatusSeeOther, "/results")
}

func (h *DefaultHomeRoute) renderHome(c echo.Context, status int, form *contract.SearchRequest, formErr *apierror.StructuredError, selected string) error {
	opts, apierr := h.HomeService.HomeOptions(c.Request().Context())
	page := service.NewHomePage(opts, apierr, form, formErr, selected)
	if page.Failed() {
		status = page.Error.Code()
	}
	return c.Render(status, "home", page)
}
