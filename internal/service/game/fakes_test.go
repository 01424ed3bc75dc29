package game

import (
	"bowling_backend/internal/middleware"
	"bowling_backend/internal/model"
	"bowling_backend/internal/repository"
	"bowling_backend/internal/repository/pin_state_repo"
	"bowling_backend/pkg/bowling"
	"context"
	"errors"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/avito-tech/go-transaction-manager/trm/v2"
)

type gameConfig struct {
	maxSeries int
	mode      string
	limit     int
}

func (c gameConfig) MaxSeriesGames() int      { return c.maxSeries }
func (c gameConfig) DefaultInputMode() string { return c.mode }
func (c gameConfig) ListLimit() int           { return c.limit }

// txManager выполняет функцию без транзакции
type txManager struct{}

func (txManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func (txManager) DoWithSettings(ctx context.Context, _ trm.Settings, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

var errStorage = errors.New("storage is down")

// gameRepo хранит копии игр, как это делает база
type gameRepo struct {
	mtx        sync.Mutex
	games      map[string]*model.Game
	failUpdate bool
}

func newGameRepo() *gameRepo {
	return &gameRepo{games: make(map[string]*model.Game)}
}

func copyGame(g *model.Game) *model.Game {
	c := *g
	c.Frames = bowling.CloneFrames(g.Frames)
	return &c
}

func (r *gameRepo) CreateGame(_ context.Context, game *model.Game) error {
	r.mtx.Lock()
	defer r.mtx.Unlock()
	r.games[game.ID] = copyGame(game)
	return nil
}

func (r *gameRepo) GetGame(_ context.Context, userID int, id string) (*model.Game, error) {
	r.mtx.Lock()
	defer r.mtx.Unlock()
	g, ok := r.games[id]
	if !ok || g.UserID != userID {
		return nil, repository.ErrGameNotFound
	}
	return copyGame(g), nil
}

func (r *gameRepo) GetGameForUpdate(ctx context.Context, userID int, id string) (*model.Game, error) {
	return r.GetGame(ctx, userID, id)
}

func (r *gameRepo) UpdateGame(_ context.Context, game *model.Game) error {
	r.mtx.Lock()
	defer r.mtx.Unlock()
	if r.failUpdate {
		return errStorage
	}
	if _, ok := r.games[game.ID]; !ok {
		return repository.ErrGameNotFound
	}
	r.games[game.ID] = copyGame(game)
	return nil
}

func (r *gameRepo) DeleteGame(_ context.Context, userID int, id string) error {
	r.mtx.Lock()
	defer r.mtx.Unlock()
	g, ok := r.games[id]
	if !ok || g.UserID != userID {
		return repository.ErrGameNotFound
	}
	delete(r.games, id)
	return nil
}

func (r *gameRepo) ListGames(_ context.Context, userID int, limit int) ([]*model.Game, error) {
	r.mtx.Lock()
	defer r.mtx.Unlock()
	var res []*model.Game
	for _, g := range r.games {
		if g.UserID == userID {
			res = append(res, copyGame(g))
		}
	}
	sort.Slice(res, func(i, j int) bool { return res[i].CreatedAt.After(res[j].CreatedAt) })
	if limit > 0 && len(res) > limit {
		res = res[:limit]
	}
	return res, nil
}

func (r *gameRepo) ListSeriesGames(_ context.Context, userID int, seriesID string) ([]*model.Game, error) {
	r.mtx.Lock()
	defer r.mtx.Unlock()
	var res []*model.Game
	for _, g := range r.games {
		if g.UserID == userID && g.SeriesID == seriesID {
			res = append(res, copyGame(g))
		}
	}
	sort.Slice(res, func(i, j int) bool { return res[i].CreatedAt.Before(res[j].CreatedAt) })
	return res, nil
}

type fixture struct {
	serv     *serv
	repo     *gameRepo
	pinState repository.PinStateRepository
	ctx      context.Context
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	repo := newGameRepo()
	pinState := pin_state_repo.NewPinStateRepository()
	cfg := gameConfig{maxSeries: bowling.MaxSeriesGames, mode: model.InputModeNumeric, limit: 50}

	s := NewGameService(cfg, repo, pinState, txManager{}).(*serv)
	clock := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	var clockMtx sync.Mutex
	s.now = func() time.Time {
		clockMtx.Lock()
		defer clockMtx.Unlock()
		clock = clock.Add(time.Second)
		return clock
	}

	return &fixture{
		serv:     s,
		repo:     repo,
		pinState: pinState,
		ctx:      middleware.WithUserID(context.Background(), 1),
	}
}
