package inbound

import (
	"context"

	"github.com/TonkaCepo7/INF2-ALP-BOOK/domain/entity"
)

type RegisterRequest struct {
	Username string
	Password string
	Role     entity.Role
}

type LoginRequest struct {
	Username string
	Password string
}

type LoginResponse struct {
	Token string
}

type ProfileResponse struct {
	ID       int64       `json:"id"`
	Username string      `json:"username"`
	Role     entity.Role `json:"role"`
}

// AuthUseCase covers registration, credential verification and profile lookup.
type AuthUseCase interface {
	Register(ctx context.Context, req RegisterRequest) error
	Login(ctx context.Context, req LoginRequest) (*LoginResponse, error)
	Profile(ctx context.Context, userID int64) (*ProfileResponse, error)
}
