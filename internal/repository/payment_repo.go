package repository

import (
	"database/sql"
	"fmt"

	"github.com/sahlimouna/gari-app/internal/db"
)

type PaymentRepository struct {
	DB *sql.DB
}

func NewPaymentRepository(database *sql.DB) *PaymentRepository {
	return &PaymentRepository{DB: database}
}

func (r *PaymentRepository) ListPaymentsByUser(userID string) ([]db.Payment, error) {
	query := `
		SELECT id, user_id, reservation_id, parking_id, parking_name, amount, status,
		       date, COALESCE(payment_method, ''), COALESCE(receipt_url, '')
		FROM payments
		WHERE user_id = $1
		ORDER BY date DESC`

	rows, err := r.DB.Query(query, userID)
	if err != nil {
		return nil, fmt.Errorf("querying payments for user %s: %w", userID, err)
	}
	defer rows.Close()

	var payments []db.Payment
	for rows.Next() {
		var p db.Payment
		if err := rows.Scan(&p.ID, &p.UserID, &p.ReservationID, &p.ParkingID, &p.ParkingName,
			&p.Amount, &p.Status, &p.Date, &p.PaymentMethod, &p.ReceiptURL); err != nil {
			return nil, fmt.Errorf("scanning payment row: %w", err)
		}
		payments = append(payments, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating payment rows: %w", err)
	}
	return payments, nil
}

// CreatePayment records a payment produced by the gateway webhook.
func (r *PaymentRepository) CreatePayment(p *db.Payment) error {
	query := `
		INSERT INTO payments
		(id, user_id, reservation_id, parking_id, parking_name, amount, status, date,
		 payment_method, receipt_url)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

	_, err := r.DB.Exec(query, p.ID, p.UserID, p.ReservationID, p.ParkingID, p.ParkingName,
		p.Amount, p.Status, p.Date, p.PaymentMethod, p.ReceiptURL)
	if err != nil {
		return fmt.Errorf("inserting payment: %w", err)
	}
	return nil
}
