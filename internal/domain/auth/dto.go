package auth

import (
	"github.com/fasthr/hr-backend-go/internal/domain/user"
	"github.com/fasthr/hr-backend-go/internal/pkg/validator"
)

type RegisterRequest = user.CreateUserRequest

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email,max=150"`
	Password string `json:"password" validate:"required,max=255"`
}

func (r *LoginRequest) Validate() error {
	return validator.Struct(r).OrNil()
}

// AuthResponse is returned by register and login.
type AuthResponse struct {
	User  user.UserResponse `json:"user"`
	Token string            `json:"token"`
}
