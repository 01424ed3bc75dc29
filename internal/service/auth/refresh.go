package auth

import (
	"bowling_backend/internal/model"
	"bowling_backend/internal/repository"
	"bowling_backend/pkg/token"
	"context"
	"errors"
)

func (s *serv) Refresh(ctx context.Context, data *model.AuthData) (newAccessToken string, err error) {
	session, err := s.authRepo.GetSession(ctx, data.SessionID)
	if err != nil {
		if errors.Is(err, repository.ErrSessionNotFound) {
			return "", ErrInvalidRefreshToken
		}
		return "", err
	}

	// Верификация переданного refresh токена с хэшем из хранилища
	if session.Expired(s.now()) || !token.VerifyRefreshToken(data.RefreshToken, session.RefreshToken) {
		return "", ErrInvalidRefreshToken
	}

	user, err := s.authRepo.GetUserBySessionID(ctx, data.SessionID)
	if err != nil {
		return "", err
	}

	return token.GenerateAccessToken(
		user,
		s.jwtConfig.AccessTokenSecretKey(),
		s.jwtConfig.AccessTokenDuration())
}
