package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/sahlimouna/gari-app/internal/entities"
	"github.com/sahlimouna/gari-app/internal/service"
)

type ParkingHandler struct {
	Catalog *service.CatalogService
	Feed    service.AvailabilityFeed
}

func NewParkingHandler(catalog *service.CatalogService, feed service.AvailabilityFeed) *ParkingHandler {
	return &ParkingHandler{Catalog: catalog, Feed: feed}
}

func (h *ParkingHandler) ListParkings(w http.ResponseWriter, r *http.Request) {
	parkings, err := h.Catalog.ListParkings()
	if err != nil {
		http.Error(w, "Error listing parkings", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(parkings)
}

func (h *ParkingHandler) GetParking(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	parking, err := h.Catalog.GetParking(id)
	if err != nil {
		http.Error(w, "Error loading parking", http.StatusInternalServerError)
		return
	}
	if parking == nil {
		http.Error(w, "Parking not found", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(parking)
}

func (h *ParkingHandler) Quote(w http.ResponseWriter, r *http.Request) {
	var req entities.QuoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}
	quote, err := h.Catalog.QuoteStay(req)
	if err != nil {
		if errors.Is(err, service.ErrEndBeforeStart) {
			http.Error(w, "La date/heure de fin doit être après le début", http.StatusBadRequest)
			return
		}
		writeError(w, err, http.StatusBadRequest)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(quote)
}

func (h *ParkingHandler) Availability(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	snapshot, err := h.Feed.Snapshot(id)
	if err != nil {
		http.Error(w, "Parking not found", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(snapshot)
}
