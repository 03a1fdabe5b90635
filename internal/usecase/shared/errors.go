package shared

import (
	"hotel-front/internal/infra/upstream"
	"hotel-front/internal/pkg/errs"
)

var (
	ErrUpstreamUnavailable = errs.New("upstream unavailable")
	ErrUpstreamTimeout     = errs.New("upstream timeout")
	ErrUpstreamFailure     = errs.New("upstream failure")
	ErrSessionExpired      = errs.New("session expired")
	ErrForbidden           = errs.New("forbidden")
	ErrNotFound            = errs.New("not found")
	ErrInvalidInput        = errs.New("invalid input")
)

// MapUpstreamError marks a hotel API failure with the matching usecase error.
// The upstream error stays in the chain so its detail can still be read.
func MapUpstreamError(err error) error {
	if err == nil {
		return nil
	}
	switch upstream.KindOf(err) {
	case upstream.KindNetwork:
		return errs.Mark(err, ErrUpstreamUnavailable)
	case upstream.KindTimeout:
		return errs.Mark(err, ErrUpstreamTimeout)
	case upstream.KindServer:
		return errs.Mark(err, ErrUpstreamFailure)
	case upstream.KindUnauthorized:
		return errs.Mark(err, ErrSessionExpired)
	case upstream.KindForbidden:
		return errs.Mark(err, ErrForbidden)
	case upstream.KindNotFound:
		return errs.Mark(err, ErrNotFound)
	case upstream.KindInvalid:
		return errs.Mark(err, ErrInvalidInput)
	default:
		return err
	}
}
