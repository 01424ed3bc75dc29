package auth

import (
	"bowling_backend/internal/model"
	"bowling_backend/internal/repository"
	"bowling_backend/pkg/pass"
	"bowling_backend/pkg/token"
	"context"
	"errors"
)

func (s *serv) Login(ctx context.Context, user *model.User) (*model.AuthData, error) {
	// Получение пользователя из бд по логину
	stored, err := s.userRepo.GetUserByLogin(ctx, user.Login)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	// Верификация пароля
	if !pass.VerifyPassword(stored.Password, user.Password) {
		return nil, ErrInvalidCredentials
	}

	return s.openSession(ctx, stored)
}

// openSession создаёт сессию с новым refresh токеном и выдаёт access токен
func (s *serv) openSession(ctx context.Context, user *model.User) (*model.AuthData, error) {
	sessionID := generateSessionID()

	refreshToken, err := token.GenerateRefreshToken()
	if err != nil {
		return nil, err
	}

	// В базе хранится только хэш refresh токена
	err = s.authRepo.CreateSession(ctx,
		&model.Session{
			ID:           sessionID,
			UserID:       user.ID,
			RefreshToken: token.HashRefreshToken(refreshToken),
			ExpiresAt:    s.now().Add(s.jwtConfig.RefreshTokenDuration()),
		})
	if err != nil {
		return nil, err
	}

	accessToken, err := token.GenerateAccessToken(
		user,
		s.jwtConfig.AccessTokenSecretKey(),
		s.jwtConfig.AccessTokenDuration())
	if err != nil {
		return nil, err
	}

	return &model.AuthData{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		SessionID:    sessionID,
	}, nil
}
