package dto

import (
	"time"

	"github.com/google/uuid"
)

type SignInWithLinkRequest struct {
	Email       string `json:"email" validate:"required,email"`
	AllowCreate bool   `json:"allow_create"`
	RedirectURL string `json:"redirect_url" validate:"required,url"`
}

type ExchangeCodeRequest struct {
	Code string `json:"code" validate:"required"`
}

type SetSessionRequest struct {
	AccessToken  string `json:"access_token" validate:"required"`
	RefreshToken string `json:"refresh_token"`
}

type LogoutRequest struct {
	RefreshToken string `json:"refresh_token"`
}

type UserDTO struct {
	Id    uuid.UUID `json:"id"`
	Email string    `json:"email"`
}

type SessionResponse struct {
	AccessToken  string    `json:"access_token"`
	RefreshToken string    `json:"refresh_token,omitempty"`
	ExpiresAt    time.Time `json:"expires_at"`
	User         UserDTO   `json:"user"`
}
