package api

import (
	"encoding/json"
	"net/http"

	"github.com/sahlimouna/gari-app/internal/auth"
	"github.com/sahlimouna/gari-app/internal/entities"
	"github.com/sahlimouna/gari-app/internal/service"
)

type ProfileHandler struct {
	Service *service.ProfileService
}

func NewProfileHandler(svc *service.ProfileService) *ProfileHandler {
	return &ProfileHandler{Service: svc}
}

func (h *ProfileHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	profile, err := h.Service.GetOrCreateProfile(auth.UserID(r), auth.Email(r))
	if err != nil {
		http.Error(w, "Error loading profile", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(profile)
}

func (h *ProfileHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	var req entities.UpdateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}
	profile, err := h.Service.UpdateProfile(auth.UserID(r), req)
	if err != nil {
		http.Error(w, "Error updating profile", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(profile)
}
