package game

import (
	"bowling_backend/internal/model"
	"bowling_backend/internal/repository"
	gameServ "bowling_backend/internal/service/game"
	"bowling_backend/pkg/bowling"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubService отвечает заранее заданной игрой или ошибкой
type stubService struct {
	state *model.GameState
	err   error

	gotID    string
	gotThrow model.ThrowInput
	gotPins  model.PinThrow
	gotNew   model.NewGame
}

func (s *stubService) NewGame(_ context.Context, req model.NewGame) (*model.GameState, error) {
	s.gotNew = req
	return s.state, s.err
}

func (s *stubService) NewSeries(_ context.Context, req model.NewSeries) (*model.Series, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &model.Series{ID: "s1", Games: []*model.Game{s.state.Game}}, nil
}

func (s *stubService) RecordThrow(_ context.Context, id string, in model.ThrowInput) (*model.GameState, error) {
	s.gotID, s.gotThrow = id, in
	return s.state, s.err
}

func (s *stubService) RecordPinThrow(_ context.Context, id string, in model.PinThrow) (*model.GameState, error) {
	s.gotID, s.gotPins = id, in
	return s.state, s.err
}

func (s *stubService) UndoThrow(_ context.Context, id string) (*model.GameState, error) {
	s.gotID = id
	return s.state, s.err
}

func (s *stubService) ClearGame(_ context.Context, id string) (*model.GameState, error) {
	s.gotID = id
	return s.state, s.err
}

func (s *stubService) GetGame(_ context.Context, id string) (*model.GameState, error) {
	s.gotID = id
	return s.state, s.err
}

func (s *stubService) ListGames(context.Context) ([]*model.Game, error) {
	if s.err != nil {
		return nil, s.err
	}
	return []*model.Game{s.state.Game}, nil
}

func (s *stubService) GetSeries(_ context.Context, id string) (*model.Series, error) {
	s.gotID = id
	if s.err != nil {
		return nil, s.err
	}
	return &model.Series{ID: id}, nil
}

func (s *stubService) GameStats(_ context.Context, id string) (*model.GameStats, error) {
	s.gotID = id
	if s.err != nil {
		return nil, s.err
	}
	return &model.GameStats{GameID: id, Marks: [][]string{{"X"}}}, nil
}

func (s *stubService) SaveGame(_ context.Context, id string) (*model.GameState, error) {
	s.gotID = id
	return s.state, s.err
}

func (s *stubService) DeleteGame(_ context.Context, id string) error {
	s.gotID = id
	return s.err
}

func newStub() *stubService {
	frames := bowling.NewFrames([]int{10}, []int{7, 3})
	res := bowling.CalculateScore(frames)
	return &stubService{state: &model.GameState{
		Game: &model.Game{
			ID:          "g1",
			InputMode:   model.InputModeNumeric,
			Frames:      frames,
			FrameScores: res.FrameScores,
			TotalScore:  res.TotalScore,
			MaxScore:    bowling.CalculateMaxScore(frames, res.TotalScore),
		},
		Cursor:           model.Cursor{FrameIndex: 2},
		PinsLeftStanding: bowling.FullRack,
		CanStrike:        true,
	}}
}

func serve(s *stubService, method, path, body string) *httptest.ResponseRecorder {
	r := chi.NewRouter()
	NewHandler(HandlerDeps{Serv: s}).Routes(r)

	req := httptest.NewRequest(method, path, strings.NewReader(body))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestRecordThrowHandler(t *testing.T) {
	s := newStub()
	rec := serve(s, http.MethodPost, "/games/g1/throws", `{"value":"X"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "g1", s.gotID)
	assert.Equal(t, "X", s.gotThrow.Value)

	var body struct {
		Game struct {
			FrameScores []int `json:"frame_scores"`
			TotalScore  int   `json:"total_score"`
		} `json:"game"`
		Cursor           map[string]int `json:"cursor"`
		PinsLeftStanding []int          `json:"pins_left_standing"`
		CanStrike        bool           `json:"can_strike"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, []int{20, 30}, body.Game.FrameScores)
	assert.Equal(t, 30, body.Game.TotalScore)
	assert.Equal(t, 2, body.Cursor["frame_index"])
	assert.Len(t, body.PinsLeftStanding, bowling.PinCount)
	assert.True(t, body.CanStrike)
}

func TestRecordPinThrowHandler(t *testing.T) {
	s := newStub()
	rec := serve(s, http.MethodPost, "/games/g1/pins", `{"pins":[1,2,3]}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []int{1, 2, 3}, s.gotPins.Pins)

	rec = serve(s, http.MethodPost, "/games/g1/pins", `{"pins":"all"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestNewGameHandler(t *testing.T) {
	s := newStub()
	rec := serve(s, http.MethodPost, "/games", "")
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Empty(t, s.gotNew.InputMode)

	rec = serve(s, http.MethodPost, "/games", `{"input_mode":"pins"}`)
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, model.InputModePins, s.gotNew.InputMode)
}

func TestErrorStatuses(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code int
	}{
		{"not found", repository.ErrGameNotFound, http.StatusNotFound},
		{"invalid throw", gameServ.ErrInvalidThrow, http.StatusUnprocessableEntity},
		{"wrong mode", gameServ.ErrWrongInputMode, http.StatusUnprocessableEntity},
		{"unauthorized", gameServ.ErrUnauthorized, http.StatusUnauthorized},
		{"internal", assert.AnError, http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newStub()
			s.err = tt.err
			rec := serve(s, http.MethodPost, "/games/g1/throws", `{"value":"5"}`)
			assert.Equal(t, tt.code, rec.Code)
		})
	}

	s := newStub()
	s.err = gameServ.ErrSeriesTooLarge
	rec := serve(s, http.MethodPost, "/series", `{"games":20}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSaveGameInvalidFrames(t *testing.T) {
	s := newStub()
	s.err = &gameServ.InvalidGameError{Frames: []int{2, 9}}

	rec := serve(s, http.MethodPost, "/games/g1/save", "")
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	var body struct {
		InvalidFrames []int `json:"invalid_frames"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, []int{2, 9}, body.InvalidFrames)
}

func TestOtherRoutes(t *testing.T) {
	s := newStub()

	assert.Equal(t, http.StatusOK, serve(s, http.MethodGet, "/games", "").Code)
	assert.Equal(t, http.StatusOK, serve(s, http.MethodGet, "/games/g1", "").Code)
	assert.Equal(t, http.StatusOK, serve(s, http.MethodPost, "/games/g1/undo", "").Code)
	assert.Equal(t, http.StatusOK, serve(s, http.MethodPost, "/games/g1/clear", "").Code)
	assert.Equal(t, http.StatusOK, serve(s, http.MethodGet, "/games/g1/stats", "").Code)
	assert.Equal(t, http.StatusOK, serve(s, http.MethodGet, "/series/s1", "").Code)
	assert.Equal(t, "s1", s.gotID)
	assert.Equal(t, http.StatusCreated, serve(s, http.MethodPost, "/series", `{"games":3}`).Code)
	assert.Equal(t, http.StatusNoContent, serve(s, http.MethodDelete, "/games/g1", "").Code)
}
