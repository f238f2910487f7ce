package service

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/sahlimouna/gari-app/internal/db"
	"github.com/sahlimouna/gari-app/internal/entities"
)

// PaymentStore holds the gateway-produced payment rows.
type PaymentStore interface {
	ListPaymentsByUser(userID string) ([]db.Payment, error)
	CreatePayment(p *db.Payment) error
}

type PaymentService struct {
	Store PaymentStore

	// processingDelay is how long the simulated card submission pretends to
	// talk to a gateway before reporting success.
	processingDelay time.Duration
}

func NewPaymentService(store PaymentStore) *PaymentService {
	return &PaymentService{Store: store, processingDelay: 2 * time.Second}
}

// FormatCardNumber strips every non-digit, caps the number at 16 digits, and
// regroups it with a space every four digits. Idempotent on its own output.
func FormatCardNumber(raw string) string {
	var digits strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
			if digits.Len() == 16 {
				break
			}
		}
	}
	s := digits.String()
	var out strings.Builder
	for i, r := range s {
		if i > 0 && i%4 == 0 {
			out.WriteByte(' ')
		}
		out.WriteRune(r)
	}
	return out.String()
}

// FormatCVV strips non-digits and caps the value at three digits.
func FormatCVV(raw string) string {
	var out strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			out.WriteRune(r)
			if out.Len() == 3 {
				break
			}
		}
	}
	return out.String()
}

// ValidateCardForm rejects submission when any of the five fields is empty.
// Formatting is applied before the check so whitespace-only input fails too.
func ValidateCardForm(form *entities.CardForm) error {
	form.CardNumber = FormatCardNumber(form.CardNumber)
	form.CVV = FormatCVV(form.CVV)
	form.CardName = strings.TrimSpace(form.CardName)
	form.ExpiryMonth = strings.TrimSpace(form.ExpiryMonth)
	form.ExpiryYear = strings.TrimSpace(form.ExpiryYear)

	if form.CardNumber == "" || form.CardName == "" || form.ExpiryMonth == "" ||
		form.ExpiryYear == "" || form.CVV == "" {
		return fmt.Errorf("all card fields are required")
	}
	return nil
}

// SubmitCard runs the illustrative payment step: validate, wait out the fixed
// processing delay, report success. No payment record is persisted here; real
// payment rows come from the gateway webhook.
func (s *PaymentService) SubmitCard(ctx context.Context, form entities.CardForm) (*entities.CardSubmissionResponse, error) {
	if err := ValidateCardForm(&form); err != nil {
		return nil, err
	}

	select {
	case <-time.After(s.processingDelay):
	case <-ctx.Done():
		return nil, ctx.Err()
	}

	log.Printf("Simulated card payment accepted for %s", form.CardName)
	return &entities.CardSubmissionResponse{
		Success: true,
		Message: "Votre paiement a été traité avec succès",
	}, nil
}

// RecordGatewayPayment persists a payment reported by the gateway webhook.
func (s *PaymentService) RecordGatewayPayment(res *db.Reservation, parkingName string, amount int, status, method, receiptURL string) (*db.Payment, error) {
	payment := &db.Payment{
		ID:            uuid.NewString(),
		UserID:        res.UserID,
		ReservationID: res.ID,
		ParkingID:     res.ParkingID,
		ParkingName:   parkingName,
		Amount:        amount,
		Status:        status,
		Date:          time.Now().UTC(),
		PaymentMethod: method,
		ReceiptURL:    receiptURL,
	}
	if err := s.Store.CreatePayment(payment); err != nil {
		return nil, fmt.Errorf("recording gateway payment: %w", err)
	}
	return payment, nil
}

// GetPaymentHistory returns the user's gateway-produced payments together with
// the summary figures shown above the listing.
func (s *PaymentService) GetPaymentHistory(userID string) (*entities.PaymentHistory, error) {
	payments, err := s.Store.ListPaymentsByUser(userID)
	if err != nil {
		return nil, fmt.Errorf("listing payments: %w", err)
	}

	history := &entities.PaymentHistory{Payments: []entities.PaymentResponse{}}
	for _, p := range payments {
		history.Payments = append(history.Payments, entities.PaymentResponse{
			ID:            p.ID,
			ReservationID: p.ReservationID,
			ParkingID:     p.ParkingID,
			ParkingName:   p.ParkingName,
			Amount:        p.Amount,
			Status:        p.Status,
			Date:          p.Date,
			PaymentMethod: p.PaymentMethod,
			ReceiptURL:    p.ReceiptURL,
		})
		switch p.Status {
		case db.PaymentStatusCompleted:
			history.TotalPaid += p.Amount
			history.CompletedCount++
		case db.PaymentStatusPending:
			history.PendingCount++
		}
	}
	return history, nil
}
