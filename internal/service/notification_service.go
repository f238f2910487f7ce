package service

import (
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/sahlimouna/gari-app/internal/db"
	"github.com/sahlimouna/gari-app/internal/entities"
)

type NotificationStore interface {
	CreateNotification(n *db.Notification) error
	ListNotificationsByUser(userID string) ([]db.Notification, error)
}

type NotificationService struct {
	Store    NotificationStore
	Users    UserStore
	Parkings ParkingStore
}

func NewNotificationService(store NotificationStore, users UserStore, parkings ParkingStore) *NotificationService {
	return &NotificationService{Store: store, Users: users, Parkings: parkings}
}

func (s *NotificationService) ListNotifications(userID string) ([]entities.NotificationResponse, error) {
	rows, err := s.Store.ListNotificationsByUser(userID)
	if err != nil {
		return nil, fmt.Errorf("listing notifications: %w", err)
	}
	out := make([]entities.NotificationResponse, 0, len(rows))
	for _, n := range rows {
		out = append(out, entities.NotificationResponse{
			ID:        n.ID,
			Title:     n.Title,
			Message:   n.Message,
			Read:      n.Read,
			Date:      n.Date,
			Type:      n.Type,
			RelatedID: n.RelatedID,
		})
	}
	return out, nil
}

// NotifyPaymentRecorded writes the in-app notification for a payment the
// gateway reported.
func (s *NotificationService) NotifyPaymentRecorded(p *db.Payment) {
	var title, message string
	switch p.Status {
	case db.PaymentStatusCompleted:
		title = "Paiement reçu"
		message = fmt.Sprintf("Votre paiement de %d DA pour le parking %s a été traité avec succès.", p.Amount, p.ParkingName)
	case db.PaymentStatusFailed:
		title = "Paiement échoué"
		message = fmt.Sprintf("Votre paiement de %d DA pour le parking %s a échoué.", p.Amount, p.ParkingName)
	default:
		title = "Paiement en attente"
		message = fmt.Sprintf("Votre paiement de %d DA pour le parking %s est en attente.", p.Amount, p.ParkingName)
	}

	notification := &db.Notification{
		ID:        uuid.NewString(),
		UserID:    p.UserID,
		Title:     title,
		Message:   message,
		Read:      false,
		Date:      time.Now().UTC(),
		Type:      db.NotificationTypePayment,
		RelatedID: p.ID,
	}
	if err := s.Store.CreateNotification(notification); err != nil {
		log.Printf("Could not store notification for payment %s: %v", p.ID, err)
	}
}

// NotifyReservationConfirmed writes the in-app notification row, then sends
// the confirmation email and SMS in the background. Any sender failure is
// logged and swallowed; the reservation itself already succeeded.
func (s *NotificationService) NotifyReservationConfirmed(res *db.Reservation) {
	parkingName := res.ParkingID
	if parking, err := s.Parkings.GetParking(res.ParkingID); err == nil && parking != nil {
		parkingName = parking.Name
	}

	message := fmt.Sprintf("Votre réservation au parking %s du %s au %s est confirmée.",
		parkingName,
		res.StartTime.Format("02/01/2006 15:04"),
		res.EndTime.Format("02/01/2006 15:04"),
	)

	notification := &db.Notification{
		ID:        uuid.NewString(),
		UserID:    res.UserID,
		Title:     "Réservation confirmée",
		Message:   message,
		Read:      false,
		Date:      time.Now().UTC(),
		Type:      db.NotificationTypeReservation,
		RelatedID: res.ID,
	}
	if err := s.Store.CreateNotification(notification); err != nil {
		log.Printf("Could not store notification for reservation %s: %v", res.ID, err)
	}

	profile, err := s.Users.GetUserProfile(res.UserID)
	if err != nil || profile == nil {
		log.Printf("No profile for user %s, skipping confirmation email/SMS", res.UserID)
		return
	}
	if !profile.NotificationsEnabled {
		return
	}

	subject := fmt.Sprintf("Gari - Réservation confirmée (%s)", parkingName)
	body := fmt.Sprintf("Bonjour %s,\n\n%s\n\nVéhicule : %s %s (plaque %s)\n\nMerci d'avoir choisi Gari.",
		profile.FirstName, message, res.CarBrand, res.CarColor, res.LicensePlate)

	go func() {
		if err := SendEmailWithSendGrid(profile.Email, profile.FirstName, subject, body); err != nil {
			log.Printf("Confirmation email failed for reservation %s: %v", res.ID, err)
		}
		if profile.Phone == "" {
			return
		}
		sms := fmt.Sprintf("Gari : réservation confirmée au %s. Début : %s.",
			parkingName, res.StartTime.Format("02/01 15:04"))
		if err := SendSMS(profile.Phone, sms); err != nil {
			log.Printf("Confirmation SMS failed for reservation %s: %v", res.ID, err)
		}
	}()
}
