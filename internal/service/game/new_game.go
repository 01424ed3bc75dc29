package game

import (
	"bowling_backend/internal/model"
	"bowling_backend/pkg/bowling"
	"context"
	"fmt"

	"github.com/google/uuid"
)

// NewGame заводит пустую игру пользователя
func (s *serv) NewGame(ctx context.Context, req model.NewGame) (*model.GameState, error) {
	uid, err := userID(ctx)
	if err != nil {
		return nil, err
	}
	mode, err := s.inputMode(req.InputMode)
	if err != nil {
		return nil, err
	}

	game := s.newGame(uid, "", mode)
	if err := s.repo.CreateGame(ctx, game); err != nil {
		return nil, fmt.Errorf("create game: %w", err)
	}
	return s.state(game), nil
}

// NewSeries заводит серию независимых игр с общим ID серии
func (s *serv) NewSeries(ctx context.Context, req model.NewSeries) (*model.Series, error) {
	uid, err := userID(ctx)
	if err != nil {
		return nil, err
	}
	if req.Games < 1 || req.Games > s.cfg.MaxSeriesGames() {
		return nil, fmt.Errorf("%w: %d, allowed 1..%d", ErrSeriesTooLarge, req.Games, s.cfg.MaxSeriesGames())
	}
	mode, err := s.inputMode(req.InputMode)
	if err != nil {
		return nil, err
	}

	series := &model.Series{ID: uuid.NewString()}
	err = s.txManager.Do(ctx, func(txCtx context.Context) error {
		for i := 0; i < req.Games; i++ {
			game := s.newGame(uid, series.ID, mode)
			if err := s.repo.CreateGame(txCtx, game); err != nil {
				return fmt.Errorf("create game %d of series: %w", i+1, err)
			}
			series.Games = append(series.Games, game)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	series.Summary = summarize(series.Games)
	return series, nil
}

func (s *serv) newGame(uid int, seriesID, mode string) *model.Game {
	now := s.now()
	game := &model.Game{
		ID:        uuid.NewString(),
		UserID:    uid,
		SeriesID:  seriesID,
		InputMode: mode,
		Frames:    bowling.EmptyFrames(),
		CreatedAt: now,
		UpdatedAt: now,
	}
	recalculate(game)
	return game
}
