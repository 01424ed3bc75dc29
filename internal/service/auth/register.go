package auth

import (
	"bowling_backend/internal/model"
	"bowling_backend/pkg/pass"
	"context"
	"errors"
)

func (s *serv) Register(ctx context.Context, user *model.User) (*model.AuthData, error) {
	if user.Login == "" || user.Password == "" {
		return nil, errors.New("login and password are required")
	}

	// Хэширование пароля пользователя
	passwordHash, err := pass.HashPassword(user.Password)
	if err != nil {
		return nil, err
	}
	user.Password = passwordHash

	var data *model.AuthData

	// Пользователь и его первая сессия создаются вместе
	err = s.txManager.Do(ctx, func(ctx context.Context) error {
		user.ID, err = s.userRepo.CreateUser(ctx, user)
		if err != nil {
			return err
		}

		data, err = s.openSession(ctx, user)
		return err
	})
	if err != nil {
		return nil, err
	}

	return data, nil
}
