package api

import (
	"encoding/json"
	"net/http"

	"github.com/sahlimouna/gari-app/internal/auth"
	"github.com/sahlimouna/gari-app/internal/service"
)

type NotificationHandler struct {
	Service *service.NotificationService
}

func NewNotificationHandler(svc *service.NotificationService) *NotificationHandler {
	return &NotificationHandler{Service: svc}
}

func (h *NotificationHandler) ListNotifications(w http.ResponseWriter, r *http.Request) {
	notifications, err := h.Service.ListNotifications(auth.UserID(r))
	if err != nil {
		http.Error(w, "Error loading notifications", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(notifications)
}
