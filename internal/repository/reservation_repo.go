package repository

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/sahlimouna/gari-app/internal/db"
)

type ReservationRepository struct {
	DB *sql.DB
}

func NewReservationRepository(database *sql.DB) *ReservationRepository {
	return &ReservationRepository{DB: database}
}

// CreateReservation inserts a reservation as a single atomic row; there is no
// multi-step transaction to roll back.
func (r *ReservationRepository) CreateReservation(res *db.Reservation) error {
	query := `
		INSERT INTO reservations
		(id, user_id, parking_id, start_time, end_time, first_name, last_name,
		 car_brand, car_color, license_plate, license_plate_image_url, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`

	_, err := r.DB.Exec(query,
		res.ID,
		res.UserID,
		res.ParkingID,
		res.StartTime,
		res.EndTime,
		res.FirstName,
		res.LastName,
		res.CarBrand,
		res.CarColor,
		res.LicensePlate,
		res.LicensePlateImageURL,
		res.Status,
		res.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("inserting reservation: %w", err)
	}
	return nil
}

func (r *ReservationRepository) GetReservation(id, userID string) (*db.Reservation, error) {
	query := `
		SELECT id, user_id, parking_id, start_time, end_time, first_name, last_name,
		       car_brand, car_color, license_plate, COALESCE(license_plate_image_url, ''),
		       status, created_at
		FROM reservations
		WHERE id = $1 AND user_id = $2`

	var res db.Reservation
	err := r.DB.QueryRow(query, id, userID).Scan(
		&res.ID, &res.UserID, &res.ParkingID, &res.StartTime, &res.EndTime,
		&res.FirstName, &res.LastName, &res.CarBrand, &res.CarColor,
		&res.LicensePlate, &res.LicensePlateImageURL, &res.Status, &res.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("reservation %s not found: %w", id, err)
		}
		return nil, fmt.Errorf("querying reservation %s: %w", id, err)
	}
	return &res, nil
}

// GetReservationByID looks a reservation up without a user scope. Used by the
// payment webhook, which authenticates with the gateway signature instead.
func (r *ReservationRepository) GetReservationByID(id string) (*db.Reservation, error) {
	query := `
		SELECT id, user_id, parking_id, start_time, end_time, first_name, last_name,
		       car_brand, car_color, license_plate, COALESCE(license_plate_image_url, ''),
		       status, created_at
		FROM reservations
		WHERE id = $1`

	var res db.Reservation
	err := r.DB.QueryRow(query, id).Scan(
		&res.ID, &res.UserID, &res.ParkingID, &res.StartTime, &res.EndTime,
		&res.FirstName, &res.LastName, &res.CarBrand, &res.CarColor,
		&res.LicensePlate, &res.LicensePlateImageURL, &res.Status, &res.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("reservation %s not found: %w", id, err)
		}
		return nil, fmt.Errorf("querying reservation %s: %w", id, err)
	}
	return &res, nil
}
