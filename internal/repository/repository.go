package repository

import (
	"bowling_backend/internal/model"
	"bowling_backend/pkg/bowling"
	"context"
	"errors"
)

var (
	// ErrGameNotFound игры нет или она принадлежит другому пользователю
	ErrGameNotFound = errors.New("game not found")
	// ErrUserNotFound пользователь не найден
	ErrUserNotFound = errors.New("user not found")
	// ErrSessionNotFound сессия не найдена
	ErrSessionNotFound = errors.New("session not found")
)

type GameRepository interface {
	CreateGame(ctx context.Context, game *model.Game) error
	GetGame(ctx context.Context, userID int, id string) (*model.Game, error)
	GetGameForUpdate(ctx context.Context, userID int, id string) (*model.Game, error)
	UpdateGame(ctx context.Context, game *model.Game) error
	DeleteGame(ctx context.Context, userID int, id string) error
	ListGames(ctx context.Context, userID int, limit int) ([]*model.Game, error)
	ListSeriesGames(ctx context.Context, userID int, seriesID string) ([]*model.Game, error)
}

// PinStateRepository трекеры ввода по кеглям для игр в процессе
type PinStateRepository interface {
	Get(gameID string) (*bowling.PinTracker, bool)
	Set(gameID string, tracker *bowling.PinTracker)
	Delete(gameID string)
}

type AuthRepository interface {
	CreateSession(ctx context.Context, session *model.Session) error
	GetSession(ctx context.Context, sessionID string) (*model.Session, error)
	DeleteSession(ctx context.Context, sessionID string) error
	GetUserBySessionID(ctx context.Context, sessionID string) (*model.User, error)
}

type UserRepository interface {
	CreateUser(ctx context.Context, user *model.User) (id int, err error)
	GetUserByLogin(ctx context.Context, login string) (*model.User, error)
}
