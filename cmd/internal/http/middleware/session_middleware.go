package middleware

import (
	"net/http"

	"bizindustry/cmd/internal/utils"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const DefaultSessionCookie = "bi_session"

type SessionMiddlewareConfig struct {
	CookieName string
	Secure     bool
}

// NewSessionMiddleware gives every browser a session id. The cookie has no
// expiry, so it and the search handoff tied to it end with the browser session.
func NewSessionMiddleware(cfg *SessionMiddlewareConfig) echo.MiddlewareFunc {
	name := cfg.CookieName
	if name == "" {
		name = DefaultSessionCookie
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			sid := ""
			if cookie, err := c.Cookie(name); err == nil && isSessionID(cookie.Value) {
				sid = cookie.Value
			}

			if sid == "" {
				sid = uuid.NewString()
				c.SetCookie(&http.Cookie{
					Name:     name,
					Value:    sid,
					Path:     "/",
					HttpOnly: true,
					Secure:   cfg.Secure,
					SameSite: http.SameSiteLaxMode,
				})
			}

			c.Set(utils.SessionContextKey, sid)
			return next(c)
		}
	}
}

func isSessionID(v string) bool {
	id, err := uuid.Parse(v)
	return err == nil && id.String() == v
}
