package handler

import (
	"context"
	"net/http"

	"bizindustry/cmd/internal/infrastructure/catalogapi"
	"bizindustry/cmd/internal/utils/apierror"

	"github.com/labstack/echo/v4"
)

type HealthService interface {
	CatalogHealth(ctx context.Context) (*catalogapi.HealthStatus, apierror.ErrorResponse)
}

type DefaultHealthRoute struct {
	HealthService HealthService
}

func NewHealthDefault(healthService HealthService) *DefaultHealthRoute {
	return &DefaultHealthRoute{HealthService: healthService}
}

// GetHealth is the container healthcheck, it never calls the catalog.
func (h *DefaultHealthRoute) GetHealth(c echo.Context) error {
	return c.String(http.StatusOK, "OK")
}

func (h *DefaultHealthRoute) GetCatalogHealth(c echo.Context) error {
	health, apierr := h.HealthService.CatalogHealth(c.Request().Context())
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, health)
}
