package usecase

import (
	"context"
	"errors"

	"github.com/TonkaCepo7/INF2-ALP-BOOK/application/port/inbound"
	"github.com/TonkaCepo7/INF2-ALP-BOOK/application/port/outbound"
	"github.com/TonkaCepo7/INF2-ALP-BOOK/domain/apperror"
	"github.com/TonkaCepo7/INF2-ALP-BOOK/domain/entity"
	"github.com/TonkaCepo7/INF2-ALP-BOOK/infrastructure/service/logger"
)

// AuthUseCase implements registration, login and profile lookup on top of the
// credential store, the token service and the password service.
type AuthUseCase struct {
	users     outbound.UserRepository
	tokens    outbound.TokenService
	passwords outbound.PasswordService
	log       logger.Logger
}

func NewAuthUseCase(
	users outbound.UserRepository,
	tokens outbound.TokenService,
	passwords outbound.PasswordService,
	log logger.Logger,
) *AuthUseCase {
	return &AuthUseCase{
		users:     users,
		tokens:    tokens,
		passwords: passwords,
		log:       log,
	}
}

// Register creates a new credential. No token is issued; the caller must log
// in afterwards. A concurrent registration of the same username is resolved
// by the store's uniqueness constraint: the loser gets UserAlreadyExists.
func (uc *AuthUseCase) Register(ctx context.Context, req inbound.RegisterRequest) error {
	role := req.Role
	if role == "" {
		role = entity.RoleUser
	}
	if !role.Valid() {
		return apperror.InvalidRequest("Invalid role")
	}

	_, err := uc.users.FindByUsername(ctx, req.Username)
	if err == nil {
		logger.LogAuthEvent(ctx, uc.log, "register_duplicate", req.Username, false)
		return apperror.UserAlreadyExists()
	}
	if !errors.Is(err, outbound.ErrUserNotFound) {
		return apperror.StoreError(err)
	}

	hash, err := uc.passwords.HashPassword(req.Password)
	if err != nil {
		return apperror.StoreError(err)
	}

	user := entity.NewUser(req.Username, hash, role)
	if _, err := uc.users.Create(ctx, user); err != nil {
		if errors.Is(err, outbound.ErrUserAlreadyExists) {
			return apperror.UserAlreadyExists()
		}
		return apperror.StoreError(err)
	}

	logger.LogAuthEvent(ctx, uc.log, "register", req.Username, true)
	return nil
}

// Login verifies the credential and issues a bearer token. An unknown
// username and a wrong password produce the same error.
func (uc *AuthUseCase) Login(ctx context.Context, req inbound.LoginRequest) (*inbound.LoginResponse, error) {
	user, err := uc.users.FindByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, outbound.ErrUserNotFound) {
			logger.LogAuthEvent(ctx, uc.log, "login_unknown_user", req.Username, false)
			return nil, apperror.InvalidCredentials()
		}
		return nil, apperror.StoreError(err)
	}

	ok, err := uc.passwords.VerifyPassword(req.Password, user.Password)
	if err != nil {
		return nil, apperror.StoreError(err)
	}
	if !ok {
		logger.LogAuthEvent(ctx, uc.log, "login_bad_password", req.Username, false)
		return nil, apperror.InvalidCredentials()
	}

	token, err := uc.tokens.Issue(outbound.TokenClaims{
		UserID:   user.ID,
		Username: user.Username,
		Role:     user.Role,
	})
	if err != nil {
		return nil, apperror.StoreError(err)
	}

	logger.LogAuthEvent(ctx, uc.log, "login", req.Username, true)
	return &inbound.LoginResponse{Token: token}, nil
}

// Profile returns the authenticated user's own record, without the hash.
func (uc *AuthUseCase) Profile(ctx context.Context, userID int64) (*inbound.ProfileResponse, error) {
	user, err := uc.users.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, outbound.ErrUserNotFound) {
			return nil, apperror.UserNotFound()
		}
		return nil, apperror.StoreError(err)
	}
	return &inbound.ProfileResponse{
		ID:       user.ID,
		Username: user.Username,
		Role:     user.Role,
	}, nil
}
