package game

import (
	"bowling_backend/internal/model"
	"bowling_backend/pkg/bowling"
	"context"
)

// GameStats статистика игры и её протокол в обозначениях
func (s *serv) GameStats(ctx context.Context, gameID string) (*model.GameStats, error) {
	uid, err := userID(ctx)
	if err != nil {
		return nil, err
	}

	game, err := s.repo.GetGame(ctx, uid, gameID)
	if err != nil {
		return nil, err
	}

	stats := bowling.CalculateStats(game.Frames)
	marks := make([][]string, len(game.Frames))
	for i, f := range game.Frames {
		marks[i] = bowling.Marks(f)
	}

	return &model.GameStats{
		GameID:           game.ID,
		Stats:            stats,
		FirstBallAverage: stats.FirstBallAverage(),
		SparePercent:     stats.SparePercent(),
		Marks:            marks,
	}, nil
}
