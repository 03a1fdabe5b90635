//go:build unit || e2e

package authtest

import (
	"net/http"
	"testing"

	"hotel-front/internal/handler/dto/request"
	"hotel-front/internal/pkg/cookie"
	"hotel-front/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

// LoginUser signs in through the router and returns the session cookie.
func LoginUser(t *testing.T, router *gin.Engine, username, password string) *http.Cookie {
	t.Helper()

	w := httptest.PerformRequest(t, router, http.MethodPost, "/api/auth/login",
		request.LoginRequest{Username: username, Password: password}, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	sessionCookie := httptest.ExtractCookie(w, cookie.SessionCookieName)
	require.NotNil(t, sessionCookie, "session cookie not found")
	require.NotEmpty(t, sessionCookie.Value, "session cookie is empty")

	return sessionCookie
}
