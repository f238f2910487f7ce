package entities

import "time"

type Trend string

const (
	TrendUp     Trend = "up"
	TrendDown   Trend = "down"
	TrendStable Trend = "stable"
)

// AvailabilitySnapshot is one observation of the simulated live feed.
type AvailabilitySnapshot struct {
	ParkingID      string    `json:"parking_id"`
	AvailableSpots int       `json:"available_spots"`
	TotalSpots     int       `json:"total_spots"`
	Trend          Trend     `json:"trend"`
	OccupancyLevel string    `json:"occupancy_level"`
	UpdatedAt      time.Time `json:"updated_at"`
}
