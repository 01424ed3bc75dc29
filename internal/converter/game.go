package converter

import (
	"bowling_backend/internal/api/dto/game"
	"bowling_backend/internal/model"
	"bowling_backend/pkg/bowling"
)

func ToNewGame(req game.NewGameRequest) model.NewGame {
	return model.NewGame{
		InputMode: req.InputMode,
	}
}

func ToNewSeries(req game.NewSeriesRequest) model.NewSeries {
	return model.NewSeries{
		Games:     req.Games,
		InputMode: req.InputMode,
	}
}

func ToThrowInput(req game.ThrowRequest) model.ThrowInput {
	in := model.ThrowInput{Value: req.Value}
	if req.Position != nil {
		in.Position = &model.Cursor{
			FrameIndex: req.Position.FrameIndex,
			ThrowIndex: req.Position.ThrowIndex,
		}
	}
	return in
}

func ToPinThrow(req game.PinThrowRequest) model.PinThrow {
	return model.PinThrow{
		Pins: req.Pins,
	}
}

func ToGameResponse(g *model.Game) game.GameResponse {
	return game.GameResponse{
		ID:          g.ID,
		SeriesID:    g.SeriesID,
		InputMode:   g.InputMode,
		Frames:      bowling.CloneFrames(g.Frames),
		FrameScores: playedFrameScores(g),
		TotalScore:  g.TotalScore,
		MaxScore:    g.MaxScore,
		Complete:    g.Complete,
		Saved:       g.Saved,
		CreatedAt:   g.CreatedAt,
		UpdatedAt:   g.UpdatedAt,
	}
}

// playedFrameScores счёт только по фреймам с бросками: пустые клетки на табло не заполняются
func playedFrameScores(g *model.Game) []int {
	scores := make([]int, 0, bowling.FrameCount)
	for i, f := range g.Frames {
		if i >= bowling.FrameCount || len(f.Throws) == 0 {
			break
		}
		scores = append(scores, g.FrameScores[i])
	}
	return scores
}

func ToGameStateResponse(st *model.GameState) game.GameStateResponse {
	return game.GameStateResponse{
		Game: ToGameResponse(st.Game),
		Cursor: game.Cursor{
			FrameIndex: st.Cursor.FrameIndex,
			ThrowIndex: st.Cursor.ThrowIndex,
		},
		PinsLeftStanding: st.PinsLeftStanding,
		CanStrike:        st.CanStrike,
		CanSpare:         st.CanSpare,
	}
}

func ToGameListResponse(games []*model.Game) game.GameListResponse {
	res := game.GameListResponse{Games: make([]game.GameResponse, len(games))}
	for i, g := range games {
		res.Games[i] = ToGameResponse(g)
	}
	return res
}

func ToSeriesResponse(s *model.Series) game.SeriesResponse {
	return game.SeriesResponse{
		ID:      s.ID,
		Games:   ToGameListResponse(s.Games).Games,
		Summary: s.Summary,
	}
}

func ToStatsResponse(s *model.GameStats) game.StatsResponse {
	return game.StatsResponse{
		GameID:           s.GameID,
		Stats:            s.Stats,
		FirstBallAverage: s.FirstBallAverage,
		SparePercent:     s.SparePercent,
		Marks:            s.Marks,
	}
}
