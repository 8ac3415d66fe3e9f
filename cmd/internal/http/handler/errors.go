package handler

import (
	"errors"
	"net/http"

	"bizindustry/cmd/internal/contract"
	"bizindustry/cmd/internal/utils/apierror"

	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
)

func renderError(c echo.Context, title string, apierr apierror.ErrorResponse) error {
	view := apierror.AsView(apierr)
	return c.Render(view.Code(), "error", contract.NewErrorPage(title, view))
}

// ErrorHandler renders echo's own errors (unknown routes, bad methods) as
// error pages instead of JSON.
func ErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	status := http.StatusInternalServerError
	var he *echo.HTTPError
	if errors.As(err, &he) {
		status = he.Code
	} else {
		log.Errorf("unhandled error on %s %s: %v", c.Request().Method, c.Request().URL, err)
	}

	view := apierror.PageNotFoundError
	if status != http.StatusNotFound {
		view = apierror.NewView(status, http.StatusText(status), apierror.BackToSearchAction)
	}

	if c.Request().Method == http.MethodHead {
		err = c.NoContent(status)
	} else {
		err = renderError(c, "", view)
	}
	if err != nil {
		log.Errorf("failed to render error page: %v", err)
	}
}
