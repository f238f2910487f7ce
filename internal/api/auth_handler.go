package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sahlimouna/gari-app/internal/entities"
	"github.com/sahlimouna/gari-app/internal/service"
)

type AuthHandler struct {
	Service *service.AuthService
}

func NewAuthHandler(svc *service.AuthService) *AuthHandler {
	return &AuthHandler{Service: svc}
}

func (h *AuthHandler) SignUp(w http.ResponseWriter, r *http.Request) {
	var req entities.SignUpRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}
	session, err := h.Service.SignUp(req)
	if err != nil {
		writeAuthError(w, err, http.StatusBadRequest)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(session)
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req entities.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}
	session, err := h.Service.Login(req)
	if err != nil {
		writeAuthError(w, err, http.StatusUnauthorized)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(session)
}

func (h *AuthHandler) DemoLogin(w http.ResponseWriter, r *http.Request) {
	session, err := h.Service.DemoLogin()
	if err != nil {
		writeAuthError(w, err, http.StatusUnauthorized)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(session)
}

// LoginPage is the target of the session-gate redirect. The real login screen
// lives in the mobile client; this endpoint just echoes the return path so the
// client can resume navigation after sign-in.
func (h *AuthHandler) LoginPage(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{
		"message":   "Authentification requise",
		"return_to": r.URL.Query().Get("returnTo"),
	})
}

func writeAuthError(w http.ResponseWriter, err error, code int) {
	var authErr *service.AuthError
	if errors.As(err, &authErr) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(code)
		json.NewEncoder(w).Encode(map[string]string{
			"code":  authErr.Code,
			"error": authErr.Message,
		})
		return
	}
	http.Error(w, err.Error(), http.StatusInternalServerError)
}
