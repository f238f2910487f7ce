package entities

import "time"

type NotificationResponse struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	Read      bool      `json:"read"`
	Date      time.Time `json:"date"`
	Type      string    `json:"type"`
	RelatedID string    `json:"related_id,omitempty"`
}
