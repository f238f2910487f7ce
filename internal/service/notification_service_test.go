package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sahlimouna/gari-app/internal/db"
)

type memoryNotificationStore struct {
	rows []*db.Notification
}

func (s *memoryNotificationStore) CreateNotification(n *db.Notification) error {
	s.rows = append(s.rows, n)
	return nil
}

func (s *memoryNotificationStore) ListNotificationsByUser(userID string) ([]db.Notification, error) {
	var out []db.Notification
	for _, n := range s.rows {
		if n.UserID == userID {
			out = append(out, *n)
		}
	}
	return out, nil
}

type stubParkingStore struct {
	parkings map[string]*db.Parking
}

func (s *stubParkingStore) ListParkings() ([]db.Parking, error) {
	var out []db.Parking
	for _, p := range s.parkings {
		out = append(out, *p)
	}
	return out, nil
}

func (s *stubParkingStore) GetParking(id string) (*db.Parking, error) {
	return s.parkings[id], nil
}

func TestNotifyReservationConfirmedStoresRow(t *testing.T) {
	store := &memoryNotificationStore{}
	users := newMemoryUserStore()
	users.users["amine@example.com"] = &db.UserProfile{
		ID:                   "user-1",
		Email:                "amine@example.com",
		FirstName:            "Amine",
		NotificationsEnabled: false, // keep the senders quiet in tests
	}
	parkings := &stubParkingStore{parkings: map[string]*db.Parking{
		"parking-1": {ID: "parking-1", Name: "Parking Centre-Ville"},
	}}
	svc := NewNotificationService(store, users, parkings)

	start := time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC)
	svc.NotifyReservationConfirmed(&db.Reservation{
		ID:        "res-1",
		UserID:    "user-1",
		ParkingID: "parking-1",
		StartTime: start,
		EndTime:   start.Add(8 * time.Hour),
	})

	require.Len(t, store.rows, 1)
	n := store.rows[0]
	assert.Equal(t, db.NotificationTypeReservation, n.Type)
	assert.Equal(t, "res-1", n.RelatedID)
	assert.Equal(t, "user-1", n.UserID)
	assert.False(t, n.Read)
	assert.Contains(t, n.Message, "Parking Centre-Ville")
}

func TestNotifyPaymentRecorded(t *testing.T) {
	store := &memoryNotificationStore{}
	svc := NewNotificationService(store, newMemoryUserStore(), &stubParkingStore{})

	svc.NotifyPaymentRecorded(&db.Payment{
		ID:          "pay-1",
		UserID:      "user-1",
		ParkingName: "Parking Aéroport",
		Amount:      800,
		Status:      db.PaymentStatusCompleted,
	})
	svc.NotifyPaymentRecorded(&db.Payment{
		ID:          "pay-2",
		UserID:      "user-1",
		ParkingName: "Parking Aéroport",
		Amount:      500,
		Status:      db.PaymentStatusFailed,
	})

	require.Len(t, store.rows, 2)
	assert.Equal(t, "Paiement reçu", store.rows[0].Title)
	assert.Equal(t, "Paiement échoué", store.rows[1].Title)
	assert.Equal(t, db.NotificationTypePayment, store.rows[0].Type)

	list, err := svc.ListNotifications("user-1")
	require.NoError(t, err)
	assert.Len(t, list, 2)
}
