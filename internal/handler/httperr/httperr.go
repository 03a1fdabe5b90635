package httperr

import (
	"errors"
	"net/http"

	"hotel-front/internal/infra/upstream"
	"hotel-front/internal/pkg/errs"
	"hotel-front/internal/pkg/i18n"
	"hotel-front/internal/usecase/commands"
	"hotel-front/internal/usecase/queries"
	"hotel-front/internal/usecase/shared"

	"github.com/gin-gonic/gin"
)

type Response struct {
	Status int `json:"-"`
	Error  struct {
		Message string    `json:"message"`
		Code    i18n.Code `json:"code"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

// NewResponse builds a body localized for the request's Accept-Language.
func NewResponse(c *gin.Context, status int, code i18n.Code, detail any) Response {
	resp := Response{Status: status, Detail: detail}
	resp.Error.Code = code
	resp.Error.Message = i18n.Localize(c.GetHeader("Accept-Language"), code)
	return resp
}

// preserves original error for future monitoring
func AbortWithError(c *gin.Context, status int, err error, code i18n.Code, detail any) {
	if err == nil {
		err = errors.New(string(code))
	}

	resp := NewResponse(c, status, code, detail)

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}

type mapping struct {
	target error
	status int
	code   i18n.Code
}

// Checked in order; the first match wins.
var mappings = []mapping{
	{commands.ErrInvalidCredentials, http.StatusUnauthorized, i18n.CodeInvalidCredentials},
	{commands.ErrAccountForbidden, http.StatusForbidden, i18n.CodeAccountForbidden},
	{commands.ErrEmptyCart, http.StatusConflict, i18n.CodeEmptyCart},
	{shared.ErrSessionExpired, http.StatusUnauthorized, i18n.CodeSessionInvalid},
	{shared.ErrForbidden, http.StatusForbidden, i18n.CodeForbidden},
	{shared.ErrNotFound, http.StatusNotFound, i18n.CodeNotFound},
	{shared.ErrInvalidInput, http.StatusBadRequest, i18n.CodeInvalidRequest},
	{queries.ErrInvalidDay, http.StatusBadRequest, i18n.CodeInvalidRequest},
	{queries.ErrInvalidStay, http.StatusBadRequest, i18n.CodeInvalidRequest},
	{shared.ErrUpstreamUnavailable, http.StatusBadGateway, i18n.CodeServerUnavailable},
	{shared.ErrUpstreamTimeout, http.StatusGatewayTimeout, i18n.CodeServerTimeout},
	{shared.ErrUpstreamFailure, http.StatusBadGateway, i18n.CodeServerError},
}

// Classify maps a usecase error to its HTTP status and message code.
func Classify(err error) (int, i18n.Code) {
	for _, m := range mappings {
		if errs.Is(err, m.target) {
			return m.status, m.code
		}
	}
	return http.StatusInternalServerError, i18n.CodeInternal
}

// AbortWithUsecaseError answers with the status and localized message for
// err. Validation failures carry the upstream or local detail.
func AbortWithUsecaseError(c *gin.Context, err error) {
	status, code := Classify(err)

	var detail any
	if status == http.StatusBadRequest {
		var upErr *upstream.Error
		if errors.As(err, &upErr) && upErr.Detail != "" {
			detail = upErr.Detail
		} else {
			detail = err.Error()
		}
	}
	AbortWithError(c, status, err, code, detail)
}
