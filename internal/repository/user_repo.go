package repository

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/sahlimouna/gari-app/internal/db"
)

type UserRepository struct {
	DB *sql.DB
}

func NewUserRepository(database *sql.DB) *UserRepository {
	return &UserRepository{DB: database}
}

const userColumns = `id, email, COALESCE(first_name, ''), COALESCE(last_name, ''),
	COALESCE(phone, ''), notifications_enabled, password_hash, disabled, created_at`

// GetUserByEmail returns nil, nil when no such user exists.
func (r *UserRepository) GetUserByEmail(email string) (*db.UserProfile, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1`
	return r.scanUser(r.DB.QueryRow(query, email))
}

// GetUserProfile returns nil, nil when no such user exists.
func (r *UserRepository) GetUserProfile(id string) (*db.UserProfile, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	return r.scanUser(r.DB.QueryRow(query, id))
}

func (r *UserRepository) scanUser(row *sql.Row) (*db.UserProfile, error) {
	var u db.UserProfile
	err := row.Scan(&u.ID, &u.Email, &u.FirstName, &u.LastName, &u.Phone,
		&u.NotificationsEnabled, &u.PasswordHash, &u.Disabled, &u.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("querying user: %w", err)
	}
	return &u, nil
}

func (r *UserRepository) CreateUserProfile(u *db.UserProfile) error {
	query := `
		INSERT INTO users
		(id, email, first_name, last_name, phone, notifications_enabled, password_hash, disabled, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	_, err := r.DB.Exec(query, u.ID, u.Email, u.FirstName, u.LastName, u.Phone,
		u.NotificationsEnabled, u.PasswordHash, u.Disabled, u.CreatedAt)
	if err != nil {
		return fmt.Errorf("inserting user %s: %w", u.Email, err)
	}
	return nil
}

func (r *UserRepository) UpdateUserProfile(u *db.UserProfile) error {
	query := `
		UPDATE users
		SET first_name = $2, last_name = $3, phone = $4, notifications_enabled = $5
		WHERE id = $1`

	_, err := r.DB.Exec(query, u.ID, u.FirstName, u.LastName, u.Phone, u.NotificationsEnabled)
	if err != nil {
		return fmt.Errorf("updating user %s: %w", u.ID, err)
	}
	return nil
}
