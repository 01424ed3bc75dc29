package game

import (
	"bowling_backend/internal/model"
	"bowling_backend/pkg/bowling"
	"context"
	"fmt"
)

// GetSeries игры серии и итоги по сохранённым играм
func (s *serv) GetSeries(ctx context.Context, seriesID string) (*model.Series, error) {
	uid, err := userID(ctx)
	if err != nil {
		return nil, err
	}

	games, err := s.repo.ListSeriesGames(ctx, uid, seriesID)
	if err != nil {
		return nil, fmt.Errorf("list series games: %w", err)
	}
	if len(games) == 0 {
		return nil, ErrSeriesNotFound
	}

	return &model.Series{
		ID:      seriesID,
		Games:   games,
		Summary: summarize(games),
	}, nil
}

// summarize итоги серии. Считаются только сохранённые игры
func summarize(games []*model.Game) bowling.SeriesSummary {
	var totals []int
	for _, g := range games {
		if g.Saved {
			totals = append(totals, g.TotalScore)
		}
	}
	return bowling.SummarizeSeries(totals)
}
