package routes

import (
	"bizindustry/cmd/internal/http/handler"
	mw "bizindustry/cmd/internal/http/middleware"

	"github.com/labstack/echo/v4"
)

type Handlers struct {
	Home    *handler.DefaultHomeRoute
	Results *handler.DefaultResultsRoute
	Company *handler.DefaultCompanyRoute
	Health  *handler.DefaultHealthRoute
}

// Register mounts every page behind the session middleware. Health checks
// stay outside so probes do not mint sessions.
func Register(e *echo.Echo, h *Handlers, session echo.MiddlewareFunc) {
	e.HTTPErrorHandler = handler.ErrorHandler

	pages := e.Group("", session)
	pages.GET("/", h.Home.GetHome)
	pages.POST("/search", h.Home.Search)
	pages.POST("/explore", h.Home.Explore)
	pages.GET("/results", h.Results.GetResults)
	pages.GET("/company/:id", h.Company.GetCompany)

	// Docker Compose healthcheck
	e.GET("/health", h.Health.GetHealth)
	e.GET("/health/catalog", h.Health.GetCatalogHealth)
}

// DefaultSession is the session middleware with production cookie settings.
func DefaultSession(secure bool) echo.MiddlewareFunc {
	return mw.NewSessionMiddleware(&mw.SessionMiddlewareConfig{
		CookieName: mw.DefaultSessionCookie,
		Secure:     secure,
	})
}
