package api

import (
	"net/http"
	"time"

	reqdto "hotel-front/internal/handler/dto/request"
	resdto "hotel-front/internal/handler/dto/response"
	"hotel-front/internal/handler/httperr"
	"hotel-front/internal/pkg/config"
	"hotel-front/internal/pkg/cookie"
	"hotel-front/internal/pkg/i18n"
	"hotel-front/internal/usecase/commands"
	"hotel-front/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authCommands commands.AuthCommands
	userQueries  queries.UserQueries
	cookieConfig config.CookieConfig
}

func NewAuthHandler(authCommands commands.AuthCommands, userQueries queries.UserQueries, cfg config.Config) *AuthHandler {
	return &AuthHandler{
		authCommands: authCommands,
		userQueries:  userQueries,
		cookieConfig: cfg.Cookie,
	}
}

// @Summary User login
// @Description Sign in against the hotel API and open a session
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.LoginRequest true "Login request"
// @Success 200 {object} resdto.LoginResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 429 {object} httperr.Response
// @Failure 502 {object} httperr.Response
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req reqdto.LoginRequest
	if !bindJSON(c, &req) {
		return
	}

	credentials, err := req.ToDomain()
	if err != nil {
		invalidRequest(c, err)
		return
	}

	result, err := h.authCommands.Login(c.Request.Context(), credentials)
	if err != nil {
		httperr.AbortWithUsecaseError(c, err)
		return
	}

	h.respondWithSession(c, result)
}

// @Summary Refresh session
// @Description Renew the upstream access token; carts are kept
// @Tags auth
// @Security BearerAuth
// @Produce json
// @Success 200 {object} resdto.LoginResponse
// @Failure 401 {object} httperr.Response
// @Router /auth/refresh [post]
func (h *AuthHandler) Refresh(c *gin.Context) {
	sess, ok := sessionFrom(c)
	if !ok {
		return
	}

	result, err := h.authCommands.Refresh(c.Request.Context(), sess)
	if err != nil {
		httperr.AbortWithUsecaseError(c, err)
		return
	}

	h.respondWithSession(c, result)
}

// @Summary User logout
// @Description Clear the session cookie
// @Tags auth
// @Security BearerAuth
// @Success 204 "No Content"
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	cookie.ClearSessionCookie(c, h.cookieConfig)
	c.Status(http.StatusNoContent)
}

// @Summary Get current user
// @Description Get the signed-in user's details from the hotel API
// @Tags auth
// @Security BearerAuth
// @Produce json
// @Success 200 {object} resdto.UserResponse
// @Failure 401 {object} httperr.Response
// @Router /auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	sess, ok := sessionFrom(c)
	if !ok {
		return
	}

	details, err := h.userQueries.Me(c.Request.Context(), sess)
	if err != nil {
		httperr.AbortWithUsecaseError(c, err)
		return
	}

	body, err := resdto.FromUserDetails(details)
	renderJSON(c, http.StatusOK, body, err)
}

func (h *AuthHandler) respondWithSession(c *gin.Context, result *commands.LoginResult) {
	userRes, err := resdto.FromUserDetails(result.User)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, i18n.CodeInternal, nil)
		return
	}

	cookie.SetSessionCookie(c, h.cookieConfig, result.Token, time.Until(result.Session.ExpiresAt))

	c.JSON(http.StatusOK, resdto.LoginResponse{
		Token:     result.Token,
		ExpiresAt: result.Session.ExpiresAt,
		User:      userRes,
	})
}
