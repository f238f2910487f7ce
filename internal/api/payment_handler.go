package api

import (
	"encoding/json"
	"net/http"

	"github.com/sahlimouna/gari-app/internal/auth"
	"github.com/sahlimouna/gari-app/internal/entities"
	"github.com/sahlimouna/gari-app/internal/service"
)

type PaymentHandler struct {
	Service *service.PaymentService
}

func NewPaymentHandler(svc *service.PaymentService) *PaymentHandler {
	return &PaymentHandler{Service: svc}
}

// SubmitCard runs the simulated card payment. Nothing is persisted; real
// payment rows arrive through the gateway webhook.
func (h *PaymentHandler) SubmitCard(w http.ResponseWriter, r *http.Request) {
	var form entities.CardForm
	if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}
	resp, err := h.Service.SubmitCard(r.Context(), form)
	if err != nil {
		http.Error(w, "Veuillez remplir tous les champs", http.StatusBadRequest)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}

func (h *PaymentHandler) GetPaymentHistory(w http.ResponseWriter, r *http.Request) {
	history, err := h.Service.GetPaymentHistory(auth.UserID(r))
	if err != nil {
		http.Error(w, "Error loading payment history", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(history)
}
