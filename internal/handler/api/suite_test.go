//go:build unit

package api_test

import (
	"hotel-front/internal/domain/cart"
	"hotel-front/internal/handler/middleware"
	"hotel-front/internal/pkg/config"
	"hotel-front/internal/pkg/jwt"
	"hotel-front/internal/usecase"
	"hotel-front/internal/usecase/shared"
	"hotel-front/tests/common/authtest"

	"github.com/google/uuid"
	"go.uber.org/mock/gomock"
)

// authFixture signs real session tokens and validates them with the real
// middleware, so handlers see exactly what production sees.
type authFixture struct {
	cfg        config.Config
	sessions   *authtest.SessionHelper
	middleware *middleware.AuthMiddleware
}

func newAuthFixture() authFixture {
	cfg := config.NewTestConfig()
	jwtService := jwt.NewService(cfg.Session.Secret, cfg.Session.Duration)
	return authFixture{
		cfg:        cfg,
		sessions:   authtest.NewSessionHelper(cfg.Session),
		middleware: middleware.NewAuthMiddleware(usecase.NewSessionValidator(jwtService)),
	}
}

// sessionWithID matches the session decoded from a token; expiry is set at
// signing time so only the identity is compared.
func sessionWithID(id uuid.UUID) gomock.Matcher {
	return gomock.Cond(func(x any) bool {
		sess, ok := x.(shared.Session)
		return ok && sess.ID == id
	})
}

// sameServices compares service items by identity and price value; decimals
// decoded from JSON lose their original scale.
func sameServices(want ...cart.ServiceItem) gomock.Matcher {
	return gomock.Cond(func(x any) bool {
		var got []cart.ServiceItem
		switch v := x.(type) {
		case cart.ServiceItem:
			got = []cart.ServiceItem{v}
		case []cart.ServiceItem:
			got = v
		default:
			return false
		}
		if len(got) != len(want) {
			return false
		}
		for i := range want {
			if got[i].DedupKey() != want[i].DedupKey() || !got[i].Price.Equal(want[i].Price) {
				return false
			}
		}
		return true
	})
}
