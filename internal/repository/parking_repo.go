package repository

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"github.com/sahlimouna/gari-app/internal/db"
)

type ParkingRepository struct {
	DB *sql.DB
}

func NewParkingRepository(database *sql.DB) *ParkingRepository {
	return &ParkingRepository{DB: database}
}

func (r *ParkingRepository) ListParkings() ([]db.Parking, error) {
	query := `
		SELECT id, name, address, total_spots, available_spots, price_per_hour,
		       COALESCE(image_url, ''), COALESCE(features, '{}')
		FROM parkings
		ORDER BY name`

	rows, err := r.DB.Query(query)
	if err != nil {
		return nil, fmt.Errorf("querying parkings: %w", err)
	}
	defer rows.Close()

	var parkings []db.Parking
	for rows.Next() {
		var p db.Parking
		if err := rows.Scan(&p.ID, &p.Name, &p.Address, &p.TotalSpots, &p.AvailableSpots,
			&p.PricePerHour, &p.ImageURL, pq.Array(&p.Features)); err != nil {
			return nil, fmt.Errorf("scanning parking row: %w", err)
		}
		parkings = append(parkings, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating parking rows: %w", err)
	}
	return parkings, nil
}

// GetParking returns nil, nil when the lot does not exist.
func (r *ParkingRepository) GetParking(id string) (*db.Parking, error) {
	query := `
		SELECT id, name, address, total_spots, available_spots, price_per_hour,
		       COALESCE(image_url, ''), COALESCE(features, '{}')
		FROM parkings
		WHERE id = $1`

	var p db.Parking
	err := r.DB.QueryRow(query, id).Scan(&p.ID, &p.Name, &p.Address, &p.TotalSpots,
		&p.AvailableSpots, &p.PricePerHour, &p.ImageURL, pq.Array(&p.Features))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("querying parking %s: %w", id, err)
	}
	return &p, nil
}
