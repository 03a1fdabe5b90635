package api

import (
	"errors"
	"net/http"
	"strconv"

	reqdto "hotel-front/internal/handler/dto/request"
	"hotel-front/internal/handler/httperr"
	"hotel-front/internal/handler/middleware"
	"hotel-front/internal/pkg/i18n"
	"hotel-front/internal/usecase/shared"

	"github.com/gin-gonic/gin"
)

// sessionFrom returns the session set by RequireAuth, aborting with 500 when
// a route was registered without it.
func sessionFrom(c *gin.Context) (shared.Session, bool) {
	sess, ok := middleware.GetSession(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errors.New("session missing from context"), i18n.CodeInternal, nil)
	}
	return sess, ok
}

func bindJSON(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, i18n.CodeInvalidRequest, reqdto.ValidationDetails(err))
		return false
	}
	return true
}

func bindQuery(c *gin.Context, dst any) bool {
	if err := c.ShouldBindQuery(dst); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, i18n.CodeInvalidRequest, reqdto.ValidationDetails(err))
		return false
	}
	return true
}

func invalidRequest(c *gin.Context, err error) {
	httperr.AbortWithError(c, http.StatusBadRequest, err, i18n.CodeInvalidRequest, err.Error())
}

func idParam(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		httperr.AbortWithError(c, http.StatusBadRequest, err, i18n.CodeInvalidRequest, map[string]string{name: "must be a positive integer"})
		return 0, false
	}
	return id, true
}

// renderJSON writes body, or a 500 when mapping it to the response DTO failed.
func renderJSON[T any](c *gin.Context, status int, body T, err error) {
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, i18n.CodeInternal, nil)
		return
	}
	c.JSON(status, body)
}
