package entities

import "time"

// ReservationRequest carries the reservation form fields. StartTime and EndTime
// are the instants computed by the quote step, passed through unchanged.
type ReservationRequest struct {
	ParkingID    string    `json:"parking_id"`
	StartTime    time.Time `json:"start_time"`
	EndTime      time.Time `json:"end_time"`
	FirstName    string    `json:"first_name"`
	LastName     string    `json:"last_name"`
	CarBrand     string    `json:"car_brand"`
	CarColor     string    `json:"car_color"`
	LicensePlate string    `json:"license_plate"`
}

type ReservationResponse struct {
	ID                   string    `json:"id"`
	ParkingID            string    `json:"parking_id"`
	ParkingName          string    `json:"parking_name,omitempty"`
	StartTime            time.Time `json:"start_time"`
	EndTime              time.Time `json:"end_time"`
	FirstName            string    `json:"first_name"`
	LastName             string    `json:"last_name"`
	CarBrand             string    `json:"car_brand"`
	CarColor             string    `json:"car_color"`
	LicensePlate         string    `json:"license_plate"`
	LicensePlateImageURL string    `json:"license_plate_image_url,omitempty"`
	Status               string    `json:"status"`
	CreatedAt            time.Time `json:"created_at"`
}
