package entities

type ParkingResponse struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	Address        string   `json:"address"`
	TotalSpots     int      `json:"total_spots"`
	AvailableSpots int      `json:"available_spots"`
	PricePerHour   int      `json:"price_per_hour"`
	ImageURL       string   `json:"image_url,omitempty"`
	Features       []string `json:"features,omitempty"`
}
