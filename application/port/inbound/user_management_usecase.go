package inbound

import (
	"context"

	"github.com/TonkaCepo7/INF2-ALP-BOOK/domain/entity"
)

type CreateUserRequest struct {
	Username string
	Password string
	Role     entity.Role
}

type UpdateUserRequest struct {
	Username string
	Role     entity.Role
}

// UserView is the admin-facing projection of a user, without the hash.
type UserView struct {
	ID       int64       `json:"id"`
	Username string      `json:"username"`
	Role     entity.Role `json:"role"`
}

// UserManagementUseCase is the admin-only user CRUD surface.
type UserManagementUseCase interface {
	ListUsers(ctx context.Context) ([]*UserView, error)
	GetUser(ctx context.Context, id int64) (*UserView, error)
	CreateUser(ctx context.Context, req CreateUserRequest) (*UserView, error)
	UpdateUser(ctx context.Context, id int64, req UpdateUserRequest) error
	DeleteUser(ctx context.Context, id int64) error
}
