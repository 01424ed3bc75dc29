package game

import (
	"bowling_backend/internal/model"
	"bowling_backend/pkg/bowling"
	"context"
	"fmt"
)

// SaveGame отмечает игру сохранённой. Игра с некорректными или незаполненными
// фреймами не сохраняется: ошибка несёт их индексы для подсветки
func (s *serv) SaveGame(ctx context.Context, gameID string) (*model.GameState, error) {
	uid, err := userID(ctx)
	if err != nil {
		return nil, err
	}

	unlock := s.lock(gameID)
	defer unlock()

	var game *model.Game
	err = s.txManager.Do(ctx, func(txCtx context.Context) error {
		game, err = s.repo.GetGameForUpdate(txCtx, uid, gameID)
		if err != nil {
			return err
		}

		if invalid := bowling.InvalidFrames(game.Frames); len(invalid) > 0 {
			return &InvalidGameError{Frames: invalid}
		}

		recalculate(game)
		game.Saved = true
		game.UpdatedAt = s.now()
		return s.repo.UpdateGame(txCtx, game)
	})
	if err != nil {
		return nil, err
	}

	// Сохранённой игре трекер в памяти не нужен: при правке он восстановится по фреймам
	s.pinState.Delete(gameID)
	return stateWith(game, bowling.RestorePinTracker(game.Frames)), nil
}

// GetGame игра с позицией ввода
func (s *serv) GetGame(ctx context.Context, gameID string) (*model.GameState, error) {
	uid, err := userID(ctx)
	if err != nil {
		return nil, err
	}

	unlock := s.lock(gameID)
	defer unlock()

	game, err := s.repo.GetGame(ctx, uid, gameID)
	if err != nil {
		return nil, err
	}
	return s.state(game), nil
}

// ListGames последние игры пользователя
func (s *serv) ListGames(ctx context.Context) ([]*model.Game, error) {
	uid, err := userID(ctx)
	if err != nil {
		return nil, err
	}

	games, err := s.repo.ListGames(ctx, uid, s.cfg.ListLimit())
	if err != nil {
		return nil, fmt.Errorf("list games: %w", err)
	}
	return games, nil
}

// DeleteGame удаляет игру вместе с её трекером
func (s *serv) DeleteGame(ctx context.Context, gameID string) error {
	uid, err := userID(ctx)
	if err != nil {
		return err
	}

	unlock := s.lock(gameID)
	defer unlock()

	if err := s.repo.DeleteGame(ctx, uid, gameID); err != nil {
		return err
	}
	s.pinState.Delete(gameID)
	return nil
}
