package repository

import (
	"database/sql"
	"fmt"

	"github.com/sahlimouna/gari-app/internal/db"
)

type NotificationRepository struct {
	DB *sql.DB
}

func NewNotificationRepository(database *sql.DB) *NotificationRepository {
	return &NotificationRepository{DB: database}
}

func (r *NotificationRepository) ListNotificationsByUser(userID string) ([]db.Notification, error) {
	query := `
		SELECT id, user_id, title, message, read, date, type, COALESCE(related_id, '')
		FROM notifications
		WHERE user_id = $1
		ORDER BY date DESC`

	rows, err := r.DB.Query(query, userID)
	if err != nil {
		return nil, fmt.Errorf("querying notifications for user %s: %w", userID, err)
	}
	defer rows.Close()

	var notifications []db.Notification
	for rows.Next() {
		var n db.Notification
		if err := rows.Scan(&n.ID, &n.UserID, &n.Title, &n.Message, &n.Read,
			&n.Date, &n.Type, &n.RelatedID); err != nil {
			return nil, fmt.Errorf("scanning notification row: %w", err)
		}
		notifications = append(notifications, n)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating notification rows: %w", err)
	}
	return notifications, nil
}

func (r *NotificationRepository) CreateNotification(n *db.Notification) error {
	query := `
		INSERT INTO notifications (id, user_id, title, message, read, date, type, related_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	_, err := r.DB.Exec(query, n.ID, n.UserID, n.Title, n.Message, n.Read, n.Date, n.Type, n.RelatedID)
	if err != nil {
		return fmt.Errorf("inserting notification: %w", err)
	}
	return nil
}

// CreateAdminNotification writes the audit record produced on each login.
func (r *NotificationRepository) CreateAdminNotification(n *db.AdminNotification) error {
	query := `
		INSERT INTO admin_notifications (id, type, user_id, user_email, message, timestamp)
		VALUES ($1, $2, $3, $4, $5, $6)`

	_, err := r.DB.Exec(query, n.ID, n.Type, n.UserID, n.UserEmail, n.Message, n.Timestamp)
	if err != nil {
		return fmt.Errorf("inserting admin notification: %w", err)
	}
	return nil
}
