package http

import (
	"errors"
	"net/http"

	"github.com/atinyakov/TalkTracker/internal/models"
	"github.com/atinyakov/TalkTracker/internal/service"
)

// writeError maps a service error onto an HTTP status.
//
// Validation failures carry the violated rule back to the caller so the
// form can be redisplayed with it. Missing and not-owned resources are both
// a bare 404: whether someone else's resource exists must not be
// observable. A unique-constraint race surfaces as 409 with the same kind
// of user-facing message as a validation failure.
func writeError(w http.ResponseWriter, err error) {
	var validationErr *models.ValidationError
	switch {
	case errors.As(err, &validationErr):
		http.Error(w, validationErr.Error(), http.StatusBadRequest)
	case errors.Is(err, models.ErrNotFound):
		http.Error(w, "not found", http.StatusNotFound)
	case errors.Is(err, models.ErrConflict):
		http.Error(w, "already exists", http.StatusConflict)
	case errors.Is(err, service.ErrInvalidCredentials):
		http.Error(w, "invalid username or password", http.StatusUnauthorized)
	default:
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}
