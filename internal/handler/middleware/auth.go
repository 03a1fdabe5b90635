package middleware

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"hotel-front/internal/domain/user"
	"hotel-front/internal/handler/httperr"
	"hotel-front/internal/pkg/cookie"
	"hotel-front/internal/pkg/i18n"
	"hotel-front/internal/usecase"
	"hotel-front/internal/usecase/shared"

	"github.com/gin-gonic/gin"
)

type AuthMiddleware struct {
	sessionValidator usecase.SessionValidator
}

const (
	ctxSessionKey = "session"
	ctxClaimsKey  = "jwt_claims"
)

func NewAuthMiddleware(sessionValidator usecase.SessionValidator) *AuthMiddleware {
	return &AuthMiddleware{
		sessionValidator: sessionValidator,
	}
}

// sessionToken reads the session cookie first, then a Bearer header.
func sessionToken(c *gin.Context) string {
	if token := cookie.GetSessionToken(c); token != "" {
		return token
	}
	authHeader := c.GetHeader("Authorization")
	if authHeader != "" && strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimSpace(authHeader[len("Bearer "):])
	}
	return ""
}

func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := sessionToken(c)
		if token == "" {
			httperr.AbortWithError(c, http.StatusUnauthorized, errors.New("session token required"), i18n.CodeSessionRequired, nil)
			return
		}

		sess, err := m.sessionValidator.ValidateToken(token)
		if err != nil {
			slog.Warn("Token validation failed in auth middleware", "error", err.Error())
			httperr.AbortWithError(c, http.StatusUnauthorized, err, i18n.CodeSessionInvalid, nil)
			return
		}

		setSession(c, sess)
		c.Next()
	}
}

func (m *AuthMiddleware) RequireRoleAtLeast(minRole user.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess, ok := GetSession(c)
		if !ok {
			// Unexpected error: should be used after RequireAuth()
			httperr.AbortWithError(c, http.StatusInternalServerError, errors.New("role check without session"), i18n.CodeInternal, nil)
			return
		}

		if !sess.Role.AtLeast(minRole) {
			httperr.AbortWithError(c, http.StatusForbidden, errors.New("insufficient role"), i18n.CodeForbidden, nil)
			return
		}

		c.Next()
	}
}

func setSession(c *gin.Context, sess shared.Session) {
	c.Set(ctxSessionKey, sess)
	c.Set(ctxClaimsKey, map[string]any{
		"session_id": sess.ID.String(),
		"username":   sess.Username,
		"role":       sess.Role.String(),
	})
}

func GetSession(c *gin.Context) (shared.Session, bool) {
	v, exists := c.Get(ctxSessionKey)
	if !exists {
		return shared.Session{}, false
	}
	sess, ok := v.(shared.Session)
	return sess, ok
}
