package service

import (
	"fmt"
	"log"
	"net/mail"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/sahlimouna/gari-app/internal/auth"
	"github.com/sahlimouna/gari-app/internal/db"
	"github.com/sahlimouna/gari-app/internal/entities"
)

// Provider error codes mapped to user-facing messages.
const (
	AuthCodeUserNotFound  = "user-not-found"
	AuthCodeWrongPassword = "wrong-password"
	AuthCodeInvalidEmail  = "invalid-email"
	AuthCodeUserDisabled  = "user-disabled"
	AuthCodeEmailInUse    = "email-already-in-use"
	AuthCodeWeakPassword  = "weak-password"
)

// AuthError carries a stable code plus the message shown to the user.
type AuthError struct {
	Code    string
	Message string
}

func (e *AuthError) Error() string {
	return e.Message
}

// MapAuthError translates a provider code to a user-facing message, with a
// generic fallback for anything unknown.
func MapAuthError(code string) *AuthError {
	messages := map[string]string{
		AuthCodeUserNotFound:  "Utilisateur introuvable",
		AuthCodeWrongPassword: "Mot de passe incorrect",
		AuthCodeInvalidEmail:  "Adresse email invalide",
		AuthCodeUserDisabled:  "Compte désactivé",
		AuthCodeEmailInUse:    "Adresse email déjà utilisée",
		AuthCodeWeakPassword:  "Le mot de passe doit contenir au moins 6 caractères",
	}
	msg, ok := messages[code]
	if !ok {
		msg = "Erreur de connexion"
	}
	return &AuthError{Code: code, Message: msg}
}

type UserStore interface {
	GetUserByEmail(email string) (*db.UserProfile, error)
	GetUserProfile(id string) (*db.UserProfile, error)
	CreateUserProfile(u *db.UserProfile) error
	UpdateUserProfile(u *db.UserProfile) error
}

// AuditStore records the admin notification written on every successful login.
type AuditStore interface {
	CreateAdminNotification(n *db.AdminNotification) error
}

type AuthService struct {
	Users     UserStore
	Audit     AuditStore
	Sessions  *auth.SessionBroadcaster
	jwtSecret []byte
	tokenTTL  time.Duration
}

const (
	demoEmail    = "demo@gari.com"
	demoPassword = "demo123456"
)

func NewAuthService(users UserStore, audit AuditStore, sessions *auth.SessionBroadcaster, jwtSecret string) *AuthService {
	return &AuthService{
		Users:     users,
		Audit:     audit,
		Sessions:  sessions,
		jwtSecret: []byte(jwtSecret),
		tokenTTL:  24 * time.Hour,
	}
}

// SignUp registers a new identity and creates its user profile in one step.
func (s *AuthService) SignUp(req entities.SignUpRequest) (*entities.SessionResponse, error) {
	if _, err := mail.ParseAddress(req.Email); err != nil {
		return nil, MapAuthError(AuthCodeInvalidEmail)
	}
	if len(req.Password) < 6 {
		return nil, MapAuthError(AuthCodeWeakPassword)
	}

	existing, err := s.Users.GetUserByEmail(req.Email)
	if err != nil {
		return nil, fmt.Errorf("looking up user: %w", err)
	}
	if existing != nil {
		return nil, MapAuthError(AuthCodeEmailInUse)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hashing password: %w", err)
	}

	user := &db.UserProfile{
		ID:                   uuid.NewString(),
		Email:                req.Email,
		FirstName:            req.FirstName,
		LastName:             req.LastName,
		Phone:                req.Phone,
		NotificationsEnabled: true,
		PasswordHash:         string(hash),
		CreatedAt:            time.Now().UTC(),
	}
	if err := s.Users.CreateUserProfile(user); err != nil {
		return nil, fmt.Errorf("creating user profile: %w", err)
	}

	return s.issueSession(user)
}

// Login checks the credentials and, on success, writes the audit record to the
// admin notifications collection. The audit write is best effort.
func (s *AuthService) Login(req entities.LoginRequest) (*entities.SessionResponse, error) {
	if _, err := mail.ParseAddress(req.Email); err != nil {
		return nil, MapAuthError(AuthCodeInvalidEmail)
	}

	user, err := s.Users.GetUserByEmail(req.Email)
	if err != nil {
		return nil, fmt.Errorf("looking up user: %w", err)
	}
	if user == nil {
		return nil, MapAuthError(AuthCodeUserNotFound)
	}
	if user.Disabled {
		return nil, MapAuthError(AuthCodeUserDisabled)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, MapAuthError(AuthCodeWrongPassword)
	}

	audit := &db.AdminNotification{
		ID:        uuid.NewString(),
		Type:      "login",
		UserID:    user.ID,
		UserEmail: user.Email,
		Message:   fmt.Sprintf("Nouvelle connexion de %s", user.Email),
		Timestamp: time.Now().UTC(),
	}
	if err := s.Audit.CreateAdminNotification(audit); err != nil {
		log.Printf("Login audit write failed for %s: %v", user.Email, err)
	}

	return s.issueSession(user)
}

// DemoLogin signs in with the shared demo account, creating it on first use.
func (s *AuthService) DemoLogin() (*entities.SessionResponse, error) {
	user, err := s.Users.GetUserByEmail(demoEmail)
	if err != nil {
		return nil, fmt.Errorf("looking up demo user: %w", err)
	}
	if user == nil {
		return s.SignUp(entities.SignUpRequest{
			Email:     demoEmail,
			Password:  demoPassword,
			FirstName: "Utilisateur",
			LastName:  "Démo",
		})
	}
	return s.Login(entities.LoginRequest{Email: demoEmail, Password: demoPassword})
}

func (s *AuthService) issueSession(user *db.UserProfile) (*entities.SessionResponse, error) {
	claims := jwt.MapClaims{
		"user_id": user.ID,
		"email":   user.Email,
		"exp":     time.Now().Add(s.tokenTTL).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.jwtSecret)
	if err != nil {
		return nil, fmt.Errorf("signing session token: %w", err)
	}
	if s.Sessions != nil {
		s.Sessions.Publish(auth.SessionEvent{UserID: user.ID, Email: user.Email, SignedIn: true})
	}
	return &entities.SessionResponse{Token: signed, UserID: user.ID, Email: user.Email}, nil
}
