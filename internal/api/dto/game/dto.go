package game

import (
	"bowling_backend/pkg/bowling"
	"time"
)

type NewGameRequest struct {
	InputMode string `json:"input_mode,omitempty"` // numeric или pins, по умолчанию из config.yaml
}

type NewSeriesRequest struct {
	Games     int    `json:"games"` // 1..19
	InputMode string `json:"input_mode,omitempty"`
}

type ThrowRequest struct {
	Value    string  `json:"value"`              // X, /, -, F или число
	Position *Cursor `json:"position,omitempty"` // Правка записанного броска
}

type PinThrowRequest struct {
	Pins []int `json:"pins"` // Сбитые кегли, номера 1..10
}

type Cursor struct {
	FrameIndex int `json:"frame_index"`
	ThrowIndex int `json:"throw_index"`
}

type GameResponse struct {
	ID          string          `json:"id"`
	SeriesID    string          `json:"series_id,omitempty"`
	InputMode   string          `json:"input_mode"`
	Frames      []bowling.Frame `json:"frames"`
	FrameScores []int           `json:"frame_scores"` // Накопленный счёт, только сыгранные фреймы
	TotalScore  int             `json:"total_score"`
	MaxScore    int             `json:"max_score"`
	Complete    bool            `json:"complete"`
	Saved       bool            `json:"saved"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

type GameStateResponse struct {
	Game             GameResponse `json:"game"`
	Cursor           Cursor       `json:"cursor"`
	PinsLeftStanding bowling.Pins `json:"pins_left_standing"`
	CanStrike        bool         `json:"can_strike"`
	CanSpare         bool         `json:"can_spare"`
}

type GameListResponse struct {
	Games []GameResponse `json:"games"`
}

type SeriesResponse struct {
	ID      string                `json:"id"`
	Games   []GameResponse        `json:"games"`
	Summary bowling.SeriesSummary `json:"summary"`
}

type StatsResponse struct {
	GameID           string        `json:"game_id"`
	Stats            bowling.Stats `json:"stats"`
	FirstBallAverage float64       `json:"first_ball_average"`
	SparePercent     float64       `json:"spare_percent"`
	Marks            [][]string    `json:"marks"`
}

// InvalidGameResponse ответ на сохранение некорректной игры
type InvalidGameResponse struct {
	Error         string `json:"error"`
	InvalidFrames []int  `json:"invalid_frames"`
}
