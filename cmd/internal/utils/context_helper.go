package utils

import (
	"bizindustry/cmd/internal/utils/apierror"

	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
)

// SessionContextKey is where the session middleware stores the session id.
const SessionContextKey = "session"

func GetSessionFromContext(c echo.Context) (string, apierror.ErrorResponse) {
	val := c.Get(SessionContextKey)
	if val == nil {
		log.Warnf("route %s attempted to read nil session from context", c.Request().URL)
		return "", apierror.InternalServerError
	}

	sid, ok := val.(string)
	if !ok || sid == "" {
		log.Warnf("expected session id at '%s' context key, got %v", SessionContextKey, val)
		return "", apierror.InternalServerError
	}
	return sid, nil
}
