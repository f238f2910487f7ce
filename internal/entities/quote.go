package entities

import "time"

// QuoteRequest carries the date-range picker fields. Dates are calendar days
// ("2006-01-02"), hours are whole-hour slots 0 through 23.
type QuoteRequest struct {
	ParkingID string `json:"parking_id"`
	StartDate string `json:"start_date"`
	StartHour int    `json:"start_hour"`
	EndDate   string `json:"end_date"`
	EndHour   int    `json:"end_hour"`
}

type QuoteResponse struct {
	ParkingID     string    `json:"parking_id"`
	StartTime     time.Time `json:"start_time"`
	EndTime       time.Time `json:"end_time"`
	DurationHours int       `json:"duration_hours"`
	PricePerHour  int       `json:"price_per_hour"`
	TotalPrice    int       `json:"total_price"`
}
