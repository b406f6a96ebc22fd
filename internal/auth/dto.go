package auth

import "github.com/calebmartin/wishlist-backend/internal/users"

// LoginRequest carries the credentials submitted by the login form.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse returns the minted session token and user profile.
type LoginResponse struct {
	AccessToken string         `json:"access_token"`
	TokenType   string         `json:"token_type"`
	User        *users.UserDTO `json:"user"`
}

// RegisterRequest carries the sign-up payload. Email is optional.
type RegisterRequest struct {
	Username string  `json:"username" validate:"required,min=1,max=64"`
	Password string  `json:"password" validate:"required,min=1"`
	Email    *string `json:"email,omitempty" validate:"omitempty,email"`
}
