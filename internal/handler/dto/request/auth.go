package request

import (
	"hotel-front/internal/domain/user"
)

type LoginRequest struct {
	Username string `json:"username" binding:"required,notblank,max=150"`
	Password string `json:"password" binding:"required,notblank"`
}

func (r *LoginRequest) ToDomain() (user.Credentials, error) {
	return user.NewCredentials(r.Username, r.Password)
}
