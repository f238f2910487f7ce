package entities

import "time"

// CardForm is the simulated card-entry form. The card number is stored in its
// display format, grouped in blocks of four digits.
type CardForm struct {
	CardNumber  string `json:"card_number"`
	CardName    string `json:"card_name"`
	ExpiryMonth string `json:"expiry_month"`
	ExpiryYear  string `json:"expiry_year"`
	CVV         string `json:"cvv"`
}

type CardSubmissionResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type PaymentResponse struct {
	ID            string    `json:"id"`
	ReservationID string    `json:"reservation_id"`
	ParkingID     string    `json:"parking_id"`
	ParkingName   string    `json:"parking_name"`
	Amount        int       `json:"amount"`
	Status        string    `json:"status"`
	Date          time.Time `json:"date"`
	PaymentMethod string    `json:"payment_method,omitempty"`
	ReceiptURL    string    `json:"receipt_url,omitempty"`
}

// PaymentHistory is the per-user listing plus the summary figures shown above it.
type PaymentHistory struct {
	Payments       []PaymentResponse `json:"payments"`
	TotalPaid      int               `json:"total_paid"`
	CompletedCount int               `json:"completed_count"`
	PendingCount   int               `json:"pending_count"`
}
