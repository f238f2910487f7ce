package db

import "time"

// Parking is a lot row. Lots are seeded externally; this service only reads them.
// Invariant: 0 <= AvailableSpots <= TotalSpots.
type Parking struct {
	ID             string
	Name           string
	Address        string
	TotalSpots     int
	AvailableSpots int
	PricePerHour   int
	ImageURL       string
	Features       []string
}

// Reservation statuses. Confirmed is the only status this service writes;
// other values can appear on rows produced by back-office tooling.
const (
	ReservationStatusConfirmed = "confirmed"
	ReservationStatusFinished  = "finished"
	ReservationStatusCanceled  = "canceled"
)

type Reservation struct {
	ID                   string
	UserID               string
	ParkingID            string
	StartTime            time.Time
	EndTime              time.Time
	FirstName            string
	LastName             string
	CarBrand             string
	CarColor             string
	LicensePlate         string
	LicensePlateImageURL string
	Status               string
	CreatedAt            time.Time
}

const (
	PaymentStatusPending   = "pending"
	PaymentStatusCompleted = "completed"
	PaymentStatusFailed    = "failed"
)

// Payment rows are produced by the gateway webhook, never by the card form.
type Payment struct {
	ID            string
	UserID        string
	ReservationID string
	ParkingID     string
	ParkingName   string
	Amount        int
	Status        string
	Date          time.Time
	PaymentMethod string
	ReceiptURL    string
}

const (
	NotificationTypeReservation = "reservation"
	NotificationTypePayment     = "payment"
	NotificationTypeSystem      = "system"
)

type Notification struct {
	ID        string
	UserID    string
	Title     string
	Message   string
	Read      bool
	Date      time.Time
	Type      string
	RelatedID string
}

type UserProfile struct {
	ID                   string
	Email                string
	FirstName            string
	LastName             string
	Phone                string
	NotificationsEnabled bool
	PasswordHash         string
	Disabled             bool
	CreatedAt            time.Time
}

// AdminNotification is the audit record written on every successful login.
type AdminNotification struct {
	ID        string
	Type      string
	UserID    string
	UserEmail string
	Message   string
	Timestamp time.Time
}
