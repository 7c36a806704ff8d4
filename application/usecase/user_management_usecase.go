package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/TonkaCepo7/INF2-ALP-BOOK/application/port/inbound"
	"github.com/TonkaCepo7/INF2-ALP-BOOK/application/port/outbound"
	"github.com/TonkaCepo7/INF2-ALP-BOOK/domain/apperror"
	"github.com/TonkaCepo7/INF2-ALP-BOOK/domain/entity"
)

// UserManagementUseCase is the admin-only user CRUD surface. Role changes go
// through here, never through the auth core.
type UserManagementUseCase struct {
	users     outbound.UserRepository
	passwords outbound.PasswordService
}

func NewUserManagementUseCase(users outbound.UserRepository, passwords outbound.PasswordService) *UserManagementUseCase {
	return &UserManagementUseCase{users: users, passwords: passwords}
}

func (uc *UserManagementUseCase) ListUsers(ctx context.Context) ([]*inbound.UserView, error) {
	users, err := uc.users.FindAll(ctx)
	if err != nil {
		return nil, apperror.StoreError(err)
	}
	views := make([]*inbound.UserView, 0, len(users))
	for _, u := range users {
		views = append(views, userView(u))
	}
	return views, nil
}

func (uc *UserManagementUseCase) GetUser(ctx context.Context, id int64) (*inbound.UserView, error) {
	user, err := uc.users.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, outbound.ErrUserNotFound) {
			return nil, apperror.UserNotFound()
		}
		return nil, apperror.StoreError(err)
	}
	return userView(user), nil
}

func (uc *UserManagementUseCase) CreateUser(ctx context.Context, req inbound.CreateUserRequest) (*inbound.UserView, error) {
	if !req.Role.Valid() {
		return nil, apperror.InvalidRequest("Invalid role")
	}

	hash, err := uc.passwords.HashPassword(req.Password)
	if err != nil {
		return nil, apperror.StoreError(err)
	}

	user := entity.NewUser(req.Username, hash, req.Role)
	id, err := uc.users.Create(ctx, user)
	if err != nil {
		if errors.Is(err, outbound.ErrUserAlreadyExists) {
			return nil, apperror.UserAlreadyExists()
		}
		return nil, apperror.StoreError(err)
	}
	user.ID = id
	return userView(user), nil
}

func (uc *UserManagementUseCase) UpdateUser(ctx context.Context, id int64, req inbound.UpdateUserRequest) error {
	if !req.Role.Valid() {
		return apperror.InvalidRequest("Invalid role")
	}

	user, err := uc.users.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, outbound.ErrUserNotFound) {
			return apperror.UserNotFound()
		}
		return apperror.StoreError(err)
	}

	user.Username = req.Username
	user.Role = req.Role
	user.UpdatedAt = time.Now()

	if err := uc.users.Update(ctx, user); err != nil {
		if errors.Is(err, outbound.ErrUserNotFound) {
			return apperror.UserNotFound()
		}
		if errors.Is(err, outbound.ErrUserAlreadyExists) {
			return apperror.UserAlreadyExists()
		}
		return apperror.StoreError(err)
	}
	return nil
}

func (uc *UserManagementUseCase) DeleteUser(ctx context.Context, id int64) error {
	if err := uc.users.Delete(ctx, id); err != nil {
		if errors.Is(err, outbound.ErrUserNotFound) {
			return apperror.UserNotFound()
		}
		return apperror.StoreError(err)
	}
	return nil
}

func userView(u *entity.User) *inbound.UserView {
	return &inbound.UserView{
		ID:       u.ID,
		Username: u.Username,
		Role:     u.Role,
	}
}
