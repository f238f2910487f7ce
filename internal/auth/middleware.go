package auth

import (
	"context"
	"net/http"
	"net/url"
	"strings"

	"github.com/golang-jwt/jwt/v5"
)

type contextKey string

const (
	userIDKey contextKey = "user_id"
	emailKey  contextKey = "email"
)

// UserID returns the authenticated user id set by SessionGate, or "" when the
// request never passed through it.
func UserID(r *http.Request) string {
	id, _ := r.Context().Value(userIDKey).(string)
	return id
}

// Email returns the authenticated user's email set by SessionGate.
func Email(r *http.Request) string {
	email, _ := r.Context().Value(emailKey).(string)
	return email
}

// SessionGate protects reservation-and-beyond routes. API clients get a plain
// 401; browser navigations are redirected to the login route with the intended
// destination preserved as a returnTo query parameter.
func SessionGate(jwtSecret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userID, email, ok := verifyBearer(r, jwtSecret)
			if !ok {
				if wantsHTML(r) {
					returnTo := url.QueryEscape(r.URL.RequestURI())
					http.Redirect(w, r, "/login?returnTo="+returnTo, http.StatusFound)
					return
				}
				http.Error(w, "Unauthorized", http.StatusUnauthorized)
				return
			}
			ctx := context.WithValue(r.Context(), userIDKey, userID)
			ctx = context.WithValue(ctx, emailKey, email)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func verifyBearer(r *http.Request, jwtSecret string) (userID, email string, ok bool) {
	header := r.Header.Get("Authorization")
	if !strings.HasPrefix(header, "Bearer ") {
		return "", "", false
	}
	raw := strings.TrimPrefix(header, "Bearer ")

	token, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(jwtSecret), nil
	})
	if err != nil || !token.Valid {
		return "", "", false
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", "", false
	}
	userID, _ = claims["user_id"].(string)
	email, _ = claims["email"].(string)
	return userID, email, userID != ""
}

func wantsHTML(r *http.Request) bool {
	return strings.Contains(r.Header.Get("Accept"), "text/html")
}
