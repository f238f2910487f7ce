package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/sahlimouna/gari-app/internal/auth"
	"github.com/sahlimouna/gari-app/internal/entities"
	"github.com/sahlimouna/gari-app/internal/service"
)

const maxPlateImageBytes = 10 << 20

type ReservationHandler struct {
	Service *service.ReservationService
}

func NewReservationHandler(svc *service.ReservationService) *ReservationHandler {
	return &ReservationHandler{Service: svc}
}

// CreateReservation accepts the reservation form as multipart/form-data so the
// optional license-plate photo rides along with the fields. Start and end are
// the RFC 3339 instants produced by the quote step.
func (h *ReservationHandler) CreateReservation(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxPlateImageBytes); err != nil {
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}

	start, errStart := time.Parse(time.RFC3339, r.FormValue("start_time"))
	end, errEnd := time.Parse(time.RFC3339, r.FormValue("end_time"))
	if errStart != nil || errEnd != nil {
		http.Error(w, "Invalid start or end time", http.StatusBadRequest)
		return
	}

	req := entities.ReservationRequest{
		ParkingID:    r.FormValue("parking_id"),
		StartTime:    start,
		EndTime:      end,
		FirstName:    r.FormValue("first_name"),
		LastName:     r.FormValue("last_name"),
		CarBrand:     r.FormValue("car_brand"),
		CarColor:     r.FormValue("car_color"),
		LicensePlate: r.FormValue("license_plate"),
	}

	var image *service.PlateImage
	if file, header, err := r.FormFile("license_plate_image"); err == nil {
		defer file.Close()
		image = &service.PlateImage{Filename: header.Filename, Body: file}
	}

	res, err := h.Service.Submit(r.Context(), auth.UserID(r), req, image)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrMissingIdentity):
			http.Error(w, "Utilisateur non identifié ou dates invalides", http.StatusUnauthorized)
		case errors.Is(err, service.ErrEndBeforeStart):
			http.Error(w, "Utilisateur non identifié ou dates invalides", http.StatusBadRequest)
		default:
			writeError(w, err, http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(map[string]string{
		"id":      res.ID,
		"status":  res.Status,
		"message": "Réservation confirmée",
	})
}

func (h *ReservationHandler) GetReservation(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	res, err := h.Service.GetReservation(id, auth.UserID(r))
	if err != nil {
		http.Error(w, "Reservation not found", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(res)
}
