package service

import (
	"bowling_backend/internal/model"
	"context"
)

// GameService ведение игр: один метод на событие интерфейса подсчёта
type GameService interface {
	NewGame(ctx context.Context, req model.NewGame) (*model.GameState, error)
	NewSeries(ctx context.Context, req model.NewSeries) (*model.Series, error)
	RecordThrow(ctx context.Context, gameID string, input model.ThrowInput) (*model.GameState, error)
	RecordPinThrow(ctx context.Context, gameID string, input model.PinThrow) (*model.GameState, error)
	UndoThrow(ctx context.Context, gameID string) (*model.GameState, error)
	ClearGame(ctx context.Context, gameID string) (*model.GameState, error)
	GetGame(ctx context.Context, gameID string) (*model.GameState, error)
	ListGames(ctx context.Context) ([]*model.Game, error)
	GetSeries(ctx context.Context, seriesID string) (*model.Series, error)
	GameStats(ctx context.Context, gameID string) (*model.GameStats, error)
	SaveGame(ctx context.Context, gameID string) (*model.GameState, error)
	DeleteGame(ctx context.Context, gameID string) error
}

type AuthService interface {
	Register(ctx context.Context, user *model.User) (*model.AuthData, error)
	Login(ctx context.Context, user *model.User) (*model.AuthData, error)
	Refresh(ctx context.Context, data *model.AuthData) (newAccessToken string, err error)
	Logout(ctx context.Context, sessionID string) error
}
