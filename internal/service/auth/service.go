package auth

import (
	"bowling_backend/internal/config"
	"bowling_backend/internal/repository"
	"bowling_backend/internal/service"
	"errors"
	"time"

	"github.com/avito-tech/go-transaction-manager/trm/v2"
	"github.com/google/uuid"
)

var (
	// ErrInvalidCredentials неверный логин или пароль
	ErrInvalidCredentials = errors.New("invalid login or password")
	// ErrInvalidRefreshToken refresh токен не совпал с сессией или сессия истекла
	ErrInvalidRefreshToken = errors.New("invalid refresh token")
)

type serv struct {
	txManager trm.Manager
	userRepo  repository.UserRepository
	authRepo  repository.AuthRepository
	jwtConfig config.JWTConfig
	now       func() time.Time
}

func NewService(
	txManager trm.Manager,
	userRepo repository.UserRepository,
	authRepo repository.AuthRepository,
	jwtConfig config.JWTConfig,
) service.AuthService {
	return &serv{
		txManager: txManager,
		userRepo:  userRepo,
		authRepo:  authRepo,
		jwtConfig: jwtConfig,
		now:       time.Now,
	}
}

func generateSessionID() string {
	return uuid.NewString()
}
