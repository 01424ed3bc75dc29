package game

import (
	dto "bowling_backend/internal/api/dto/game"
	"bowling_backend/internal/converter"
	"bowling_backend/internal/repository"
	"bowling_backend/internal/service"
	gameServ "bowling_backend/internal/service/game"
	"bowling_backend/pkg/req"
	"bowling_backend/pkg/resp"
	"errors"
	"io"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
)

type HandlerDeps struct {
	Serv service.GameService
}

type Handler struct {
	serv service.GameService
}

func NewHandler(deps HandlerDeps) *Handler {
	return &Handler{serv: deps.Serv}
}

// Routes маршруты игр и серий
func (h *Handler) Routes(r chi.Router) {
	r.Route("/games", func(rr chi.Router) {
		rr.Post("/", h.NewGame)
		rr.Get("/", h.ListGames)
		rr.Route("/{gameID}", func(g chi.Router) {
			g.Get("/", h.GetGame)
			g.Delete("/", h.DeleteGame)
			g.Post("/throws", h.RecordThrow)
			g.Post("/pins", h.RecordPinThrow)
			g.Post("/undo", h.UndoThrow)
			g.Post("/clear", h.ClearGame)
			g.Post("/save", h.SaveGame)
			g.Get("/stats", h.GameStats)
		})
	})
	r.Route("/series", func(rr chi.Router) {
		rr.Post("/", h.NewSeries)
		rr.Get("/{seriesID}", h.GetSeries)
	})
}

func (h *Handler) NewGame(w http.ResponseWriter, r *http.Request) {
	// Пустое тело - игра с режимом ввода по умолчанию
	payload, err := req.Decode[dto.NewGameRequest](r.Body)
	if err != nil && !errors.Is(err, io.EOF) {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	st, err := h.serv.NewGame(r.Context(), converter.ToNewGame(payload))
	if err != nil {
		writeError(w, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusCreated, converter.ToGameStateResponse(st))
}

func (h *Handler) NewSeries(w http.ResponseWriter, r *http.Request) {
	payload, err := req.Decode[dto.NewSeriesRequest](r.Body)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	series, err := h.serv.NewSeries(r.Context(), converter.ToNewSeries(payload))
	if err != nil {
		writeError(w, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusCreated, converter.ToSeriesResponse(series))
}

func (h *Handler) GetSeries(w http.ResponseWriter, r *http.Request) {
	series, err := h.serv.GetSeries(r.Context(), chi.URLParam(r, "seriesID"))
	if err != nil {
		writeError(w, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToSeriesResponse(series))
}

func (h *Handler) ListGames(w http.ResponseWriter, r *http.Request) {
	games, err := h.serv.ListGames(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToGameListResponse(games))
}

func (h *Handler) GetGame(w http.ResponseWriter, r *http.Request) {
	st, err := h.serv.GetGame(r.Context(), gameID(r))
	if err != nil {
		writeError(w, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToGameStateResponse(st))
}

func (h *Handler) DeleteGame(w http.ResponseWriter, r *http.Request) {
	if err := h.serv.DeleteGame(r.Context(), gameID(r)); err != nil {
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) RecordThrow(w http.ResponseWriter, r *http.Request) {
	payload, err := req.Decode[dto.ThrowRequest](r.Body)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	st, err := h.serv.RecordThrow(r.Context(), gameID(r), converter.ToThrowInput(payload))
	if err != nil {
		writeError(w, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToGameStateResponse(st))
}

func (h *Handler) RecordPinThrow(w http.ResponseWriter, r *http.Request) {
	payload, err := req.Decode[dto.PinThrowRequest](r.Body)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	st, err := h.serv.RecordPinThrow(r.Context(), gameID(r), converter.ToPinThrow(payload))
	if err != nil {
		writeError(w, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToGameStateResponse(st))
}

func (h *Handler) UndoThrow(w http.ResponseWriter, r *http.Request) {
	st, err := h.serv.UndoThrow(r.Context(), gameID(r))
	if err != nil {
		writeError(w, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToGameStateResponse(st))
}

func (h *Handler) ClearGame(w http.ResponseWriter, r *http.Request) {
	st, err := h.serv.ClearGame(r.Context(), gameID(r))
	if err != nil {
		writeError(w, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToGameStateResponse(st))
}

// SaveGame сохраняет игру или возвращает индексы некорректных фреймов
func (h *Handler) SaveGame(w http.ResponseWriter, r *http.Request) {
	st, err := h.serv.SaveGame(r.Context(), gameID(r))
	if err != nil {
		var invalid *gameServ.InvalidGameError
		if errors.As(err, &invalid) {
			resp.WriteJSONResponse(w, http.StatusUnprocessableEntity, dto.InvalidGameResponse{
				Error:         invalid.Error(),
				InvalidFrames: invalid.Frames,
			})
			return
		}
		writeError(w, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToGameStateResponse(st))
}

func (h *Handler) GameStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.serv.GameStats(r.Context(), gameID(r))
	if err != nil {
		writeError(w, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToStatsResponse(stats))
}

func gameID(r *http.Request) string {
	return chi.URLParam(r, "gameID")
}

// writeError переводит ошибку сервиса в HTTP статус
func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, gameServ.ErrUnauthorized):
		http.Error(w, err.Error(), http.StatusUnauthorized)
	case errors.Is(err, repository.ErrGameNotFound), errors.Is(err, gameServ.ErrSeriesNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, gameServ.ErrInvalidThrow), errors.Is(err, gameServ.ErrWrongInputMode):
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
	case errors.Is(err, gameServ.ErrSeriesTooLarge):
		http.Error(w, err.Error(), http.StatusBadRequest)
	default:
		log.Println("game handler error:", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}
