package game

import (
	"bowling_backend/internal/model"
	"bowling_backend/pkg/bowling"
	"context"
	"errors"
	"fmt"
	"log"
)

// RecordPinThrow записывает бросок по списку сбитых кеглей
func (s *serv) RecordPinThrow(ctx context.Context, gameID string, input model.PinThrow) (*model.GameState, error) {
	knocked, err := bowling.ParsePins(input.Pins)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidThrow, err)
	}

	return s.mutate(ctx, gameID, func(game *model.Game) error {
		if game.InputMode != model.InputModePins {
			return fmt.Errorf("%w: game %s takes numeric throws", ErrWrongInputMode, game.ID)
		}

		frames, err := s.tracker(game).HandlePinThrow(game.Frames, knocked)
		if err != nil {
			if errors.Is(err, bowling.ErrPinNotStanding) || errors.Is(err, bowling.ErrGameComplete) || errors.Is(err, bowling.ErrInvalidPin) {
				return fmt.Errorf("%w: %w", ErrInvalidThrow, err)
			}
			return err
		}
		game.Frames = frames
		return nil
	})
}

// UndoThrow отменяет последний бросок в любом режиме ввода
func (s *serv) UndoThrow(ctx context.Context, gameID string) (*model.GameState, error) {
	return s.mutate(ctx, gameID, func(game *model.Game) error {
		game.Frames = s.tracker(game).UndoPinThrow(game.Frames)
		return nil
	})
}

// ClearGame стирает все броски игры
func (s *serv) ClearGame(ctx context.Context, gameID string) (*model.GameState, error) {
	return s.mutate(ctx, gameID, func(game *model.Game) error {
		if game.InputMode == model.InputModePins {
			s.tracker(game).Reset()
			log.Printf("game %s cleared, pin tracker reset", game.ID)
		}
		game.Frames = bowling.EmptyFrames()
		return nil
	})
}
