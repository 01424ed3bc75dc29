package game

import (
	"bowling_backend/internal/config"
	"bowling_backend/internal/middleware"
	"bowling_backend/internal/model"
	"bowling_backend/internal/repository"
	"bowling_backend/internal/service"
	"bowling_backend/pkg/bowling"
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/avito-tech/go-transaction-manager/trm/v2"
)

var (
	// ErrUnauthorized в контексте нет пользователя
	ErrUnauthorized = errors.New("user id not found in context")
	// ErrInvalidThrow бросок нельзя записать в эту позицию
	ErrInvalidThrow = errors.New("invalid throw")
	// ErrInvalidGame игра не прошла проверку перед сохранением
	ErrInvalidGame = errors.New("invalid game")
	// ErrWrongInputMode операция не подходит режиму ввода игры
	ErrWrongInputMode = errors.New("wrong input mode")
	// ErrSeriesTooLarge в серии больше игр, чем разрешено конфигурацией
	ErrSeriesTooLarge = errors.New("too many games in series")
	// ErrSeriesNotFound серии нет
	ErrSeriesNotFound = errors.New("series not found")
)

// InvalidGameError некорректные фреймы игры (индексы с нуля)
type InvalidGameError struct {
	Frames []int
}

func (e *InvalidGameError) Error() string {
	return fmt.Sprintf("invalid game: frames %v", e.Frames)
}

func (e *InvalidGameError) Is(target error) bool {
	return target == ErrInvalidGame
}

type serv struct {
	cfg       config.GameConfig
	repo      repository.GameRepository
	pinState  repository.PinStateRepository
	txManager trm.Manager
	now       func() time.Time

	// Ввод и чтение по одной игре идут строго последовательно
	locks *gameLocks
}

// NewGameService сервис ведения игр
func NewGameService(
	cfg config.GameConfig,
	repo repository.GameRepository,
	pinState repository.PinStateRepository,
	txManager trm.Manager,
) service.GameService {
	return &serv{
		cfg:       cfg,
		repo:      repo,
		pinState:  pinState,
		txManager: txManager,
		now:       time.Now,
		locks:     newGameLocks(),
	}
}

func (s *serv) lock(gameID string) func() {
	return s.locks.lock(gameID)
}

func userID(ctx context.Context) (int, error) {
	id, ok := middleware.UserIDFromContext(ctx)
	if !ok {
		return 0, ErrUnauthorized
	}
	return id, nil
}

// mutate читает игру под блокировкой, применяет apply и сохраняет результат
// с пересчитанными очками. Всё в одной транзакции
func (s *serv) mutate(ctx context.Context, gameID string, apply func(game *model.Game) error) (*model.GameState, error) {
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

		if err := apply(game); err != nil {
			return err
		}

		recalculate(game)
		game.Saved = false
		game.UpdatedAt = s.now()
		return s.repo.UpdateGame(txCtx, game)
	})
	if err != nil {
		// Трекер мог уйти вперёд базы: восстановим его из фреймов при следующем броске
		s.pinState.Delete(gameID)
		return nil, err
	}

	return s.state(game), nil
}

// recalculate пересчитывает производные поля игры по её броскам
func recalculate(game *model.Game) {
	game.Frames = bowling.CloneFrames(game.Frames)
	res := bowling.CalculateScore(game.Frames)
	game.FrameScores = res.FrameScores
	game.TotalScore = res.TotalScore
	game.MaxScore = bowling.CalculateMaxScore(game.Frames, res.TotalScore)
	game.Complete = bowling.IsComplete(game.Frames)
}

// tracker трекер ввода по кеглям. Для игр с вводом числами строится заново
func (s *serv) tracker(game *model.Game) *bowling.PinTracker {
	if game.InputMode != model.InputModePins {
		return bowling.RestorePinTracker(game.Frames)
	}
	if t, ok := s.pinState.Get(game.ID); ok {
		return t
	}
	t := bowling.RestorePinTracker(game.Frames)
	s.pinState.Set(game.ID, t)
	return t
}

// state игра вместе с позицией ввода. Трекер общий для запросов по игре,
// поэтому вызывается только под s.lock(game.ID)
func (s *serv) state(game *model.Game) *model.GameState {
	return stateWith(game, s.tracker(game))
}

func stateWith(game *model.Game, t *bowling.PinTracker) *model.GameState {
	f, k := t.Position()

	st := &model.GameState{
		Game:   game,
		Cursor: model.Cursor{FrameIndex: f, ThrowIndex: k},
	}
	if !game.Complete {
		st.PinsLeftStanding = t.PinsLeftStanding()
		st.CanStrike = bowling.CanRecordStrike(f, k, game.Frames)
		st.CanSpare = bowling.CanRecordSpare(f, k, game.Frames)
	}
	return st
}

func (s *serv) inputMode(mode string) (string, error) {
	switch mode {
	case "":
		return s.cfg.DefaultInputMode(), nil
	case model.InputModeNumeric, model.InputModePins:
		return mode, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrWrongInputMode, mode)
	}
}
