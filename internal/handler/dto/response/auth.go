package response

import (
	"time"

	"hotel-front/internal/domain/user"
	"hotel-front/internal/infra/upstream"
	"hotel-front/internal/pkg/errs"

	"github.com/jinzhu/copier"
)

type UserResponse struct {
	ID        int64  `json:"id"`
	Username  string `json:"username"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Role      string `json:"role"`
}

type LoginResponse struct {
	Token     string        `json:"token"`
	ExpiresAt time.Time     `json:"expiresAt"`
	User      *UserResponse `json:"user"`
}

func FromUserDetails(details *upstream.UserDetails) (*UserResponse, error) {
	if details == nil {
		return nil, nil
	}
	var res UserResponse
	if err := copier.Copy(&res, details); err != nil {
		return nil, errs.Wrap(err, "failed to map user details")
	}
	// same fallback the session applies to unknown roles
	role, err := user.NewRole(details.Role)
	if err != nil {
		role = user.RoleGuest
	}
	res.Role = role.String()
	return &res, nil
}
