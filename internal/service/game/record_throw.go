package game

import (
	"bowling_backend/internal/model"
	"bowling_backend/pkg/bowling"
	"context"
	"errors"
	"fmt"
)

// RecordThrow записывает бросок с быстрой панели. Правка уже записанного броска
// обрезает следующие броски этого фрейма
func (s *serv) RecordThrow(ctx context.Context, gameID string, input model.ThrowInput) (*model.GameState, error) {
	return s.mutate(ctx, gameID, func(game *model.Game) error {
		if game.InputMode != model.InputModeNumeric {
			return fmt.Errorf("%w: game %s takes pin throws", ErrWrongInputMode, game.ID)
		}

		f, k := bowling.NextPosition(game.Frames)
		if input.Position != nil {
			f, k = input.Position.FrameIndex, input.Position.ThrowIndex
			if err := checkPosition(game.Frames, f, k); err != nil {
				return err
			}
		} else if game.Complete {
			return fmt.Errorf("%w: %w", ErrInvalidThrow, bowling.ErrGameComplete)
		}

		value, err := bowling.ParseThrow(input.Value, f, k, game.Frames)
		if err != nil {
			if errors.Is(err, bowling.ErrInvalidThrow) {
				return fmt.Errorf("%w: %w", ErrInvalidThrow, err)
			}
			return err
		}

		throws := append([]bowling.Throw(nil), game.Frames[f].Throws[:k]...)
		game.Frames[f].Throws = append(throws, bowling.Throw{Value: value, ThrowIndex: k + 1})
		return nil
	})
}

// checkPosition правка допустима в записанный бросок или сразу за ним,
// во фрейме не дальше первого незаполненного
func checkPosition(frames []bowling.Frame, f, k int) error {
	if f < 0 || f > bowling.LastFrame || k < 0 || k > 2 {
		return fmt.Errorf("%w: no position frame %d throw %d", ErrInvalidThrow, f+1, k+1)
	}
	for i := 0; i < f; i++ {
		if len(frames[i].Throws) == 0 {
			return fmt.Errorf("%w: frame %d is not started", ErrInvalidThrow, i+1)
		}
	}
	if k > len(frames[f].Throws) {
		return fmt.Errorf("%w: frame %d has %d throws", ErrInvalidThrow, f+1, len(frames[f].Throws))
	}
	return nil
}
