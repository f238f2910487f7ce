package api

import (
	"errors"
	"net/http"

	apperrors "github.com/sahlimouna/gari-app/internal/errors"
)

// writeError maps a service error onto the response. Errors that carry their
// own status code keep it; anything else gets the fallback.
func writeError(w http.ResponseWriter, err error, fallback int) {
	var httpErr *apperrors.HTTPError
	if errors.As(err, &httpErr) {
		http.Error(w, httpErr.Message, httpErr.Code)
		return
	}
	http.Error(w, err.Error(), fallback)
}
