package auth

import (
	dto "bowling_backend/internal/api/dto/auth"
	"bowling_backend/internal/converter"
	"bowling_backend/internal/model"
	"bowling_backend/internal/service"
	"bowling_backend/pkg/req"
	"bowling_backend/pkg/resp"
	"log"
	"net/http"
)

const (
	sessionIDCookie    = "session_id"
	refreshTokenCookie = "refresh_token"
	cookieMaxAge       = 60 * 60 * 24 * 30 // 30 дней
)

type HandlerDeps struct {
	Serv service.AuthService
}

type Handler struct {
	serv service.AuthService
}

func NewHandler(deps HandlerDeps) *Handler {
	return &Handler{serv: deps.Serv}
}

// Register создаёт пользователя, открывает сессию и возвращает access_token.
// session_id и refresh_token уходят в cookies
func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	requestBody, err := req.Decode[dto.RegisterRequest](r.Body)
	if err != nil {
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}

	data, err := h.serv.Register(
		r.Context(),
		converter.RegisterRequestToUserModel(&requestBody),
	)
	if err != nil {
		log.Println("Register error:", err)
		http.Error(w, "register failed", http.StatusConflict)
		return
	}

	setSessionCookies(w, data)

	resp.WriteJSONResponse(w, http.StatusCreated, dto.TokenResponse{AccessToken: data.AccessToken})
}

// Login открывает сессию и возвращает access_token
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	requestBody, err := req.Decode[dto.LoginRequest](r.Body)
	if err != nil {
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}

	data, err := h.serv.Login(r.Context(), converter.LoginRequestToUserModel(&requestBody))
	if err != nil {
		log.Println("Login error:", err)
		http.Error(w, "login failed", http.StatusUnauthorized)
		return
	}

	setSessionCookies(w, data)

	resp.WriteJSONResponse(w, http.StatusOK, dto.TokenResponse{AccessToken: data.AccessToken})
}

// Refresh выдаёт новый access_token по session_id и refresh_token из cookies
func (h *Handler) Refresh(w http.ResponseWriter, r *http.Request) {
	session, err := r.Cookie(sessionIDCookie)
	if err != nil {
		http.Error(w, "no session_id cookie", http.StatusUnauthorized)
		return
	}
	refresh, err := r.Cookie(refreshTokenCookie)
	if err != nil {
		http.Error(w, "no refresh_token cookie", http.StatusUnauthorized)
		return
	}

	accessToken, err := h.serv.Refresh(r.Context(), &model.AuthData{
		SessionID:    session.Value,
		RefreshToken: refresh.Value,
	})
	if err != nil {
		log.Println("Refresh error:", err)
		http.Error(w, "refresh failed", http.StatusUnauthorized)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, dto.TokenResponse{AccessToken: accessToken})
}

// Logout закрывает сессию по session_id
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	c, err := r.Cookie(sessionIDCookie)
	if err != nil {
		http.Error(w, "no session_id cookie", http.StatusUnauthorized)
		return
	}

	err = h.serv.Logout(r.Context(), c.Value)
	if err != nil {
		log.Println("Logout error:", err)
		http.Error(w, "logout failed", http.StatusInternalServerError)
		return
	}

	deleteCookie(w, sessionIDCookie, "/")
	deleteCookie(w, refreshTokenCookie, "/auth")

	w.WriteHeader(http.StatusNoContent)
}

func setSessionCookies(w http.ResponseWriter, data *model.AuthData) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionIDCookie,
		Value:    data.SessionID,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteStrictMode,
		MaxAge:   cookieMaxAge,
	})
	// refresh_token нужен только ручкам /auth
	http.SetCookie(w, &http.Cookie{
		Name:     refreshTokenCookie,
		Value:    data.RefreshToken,
		Path:     "/auth",
		HttpOnly: true,
		SameSite: http.SameSiteStrictMode,
		MaxAge:   cookieMaxAge,
	})
}

func deleteCookie(w http.ResponseWriter, name, path string) {
	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Value:    "",
		Path:     path,
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteStrictMode,
	})
}
