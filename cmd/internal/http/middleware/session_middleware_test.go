package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"bizindustry/cmd/internal/utils"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, req *http.Request) (*httptest.ResponseRecorder, string) {
	t.Helper()
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var seen string
	h := NewSessionMiddleware(&SessionMiddlewareConfig{})(func(c echo.Context) error {
		sid, apierr := utils.GetSessionFromContext(c)
		require.Nil(t, apierr)
		seen = sid
		return c.NoContent(http.StatusOK)
	})
	require.NoError(t, h(c))
	return rec, seen
}

func TestSessionMiddleware_IssuesCookie(t *testing.T) {
	rec, sid := run(t, httptest.NewRequest(http.MethodGet, "/", nil))

	_, err := uuid.Parse(sid)
	require.NoError(t, err)

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	require.Equal(t, DefaultSessionCookie, cookies[0].Name)
	require.Equal(t, sid, cookies[0].Value)
	require.True(t, cookies[0].HttpOnly)
	require.Zero(t, cookies[0].MaxAge)
	require.True(t, cookies[0].Expires.IsZero())
}

func TestSessionMiddleware_ReusesCookie(t *testing.T) {
	existing := uuid.NewString()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: DefaultSessionCookie, Value: existing})

	rec, sid := run(t, req)
	require.Equal(t, existing, sid)
	require.Empty(t, rec.Result().Cookies())
}

func TestSessionMiddleware_ReplacesForgedCookie(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: DefaultSessionCookie, Value: "../../etc"})

	_, sid := run(t, req)
	require.NotEqual(t, "../../etc", sid)
	_, err := uuid.Parse(sid)
	require.NoError(t, err)
}
