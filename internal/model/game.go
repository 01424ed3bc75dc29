package model

import (
	"bowling_backend/pkg/bowling"
	"time"
)

// Режимы ввода бросков
const (
	InputModeNumeric = "numeric"
	InputModePins    = "pins"
)

// Game игра одного трека. FrameScores, TotalScore и MaxScore вычисляются
// после каждого изменения бросков и руками не правятся
type Game struct {
	ID        string
	UserID    int
	SeriesID  string
	InputMode string

	Frames      []bowling.Frame
	FrameScores [bowling.FrameCount]int
	TotalScore  int
	MaxScore    int
	Complete    bool
	Saved       bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Cursor позиция следующего броска
type Cursor struct {
	FrameIndex int
	ThrowIndex int
}

// GameState игра вместе с курсором ввода
type GameState struct {
	Game             *Game
	Cursor           Cursor
	PinsLeftStanding bowling.Pins
	CanStrike        bool
	CanSpare         bool
}

// NewGame параметры новой игры
type NewGame struct {
	InputMode string
}

// NewSeries параметры новой серии
type NewSeries struct {
	Games     int
	InputMode string
}

// ThrowInput бросок с быстрой панели: X, /, -, F или число.
// Без Position бросок пишется в позицию курсора, иначе заменяет указанный
type ThrowInput struct {
	Value    string
	Position *Cursor
}

// PinThrow бросок по сбитым кеглям
type PinThrow struct {
	Pins []int
}

// GameStats статистика игры
type GameStats struct {
	GameID           string
	Stats            bowling.Stats
	FirstBallAverage float64
	SparePercent     float64
	Marks            [][]string
}

// Series игры серии и итоги
type Series struct {
	ID      string
	Games   []*Game
	Summary bowling.SeriesSummary
}
