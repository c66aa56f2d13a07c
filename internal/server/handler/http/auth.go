// Package http provides the JSON HTTP handlers for the talk tracker API.
package http

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/atinyakov/TalkTracker/internal/models"
)

// AuthService defines the interface for authentication operations required
// by the HTTP handlers.
type AuthService interface {
	// Register creates a new account with the given credentials.
	Register(ctx context.Context, username, password string) (*models.Account, error)
	// Login verifies credentials and returns a session token.
	Login(ctx context.Context, username, password string) (string, error)
}

// AuthHandler handles HTTP requests for account registration and login.
type AuthHandler struct {
	// AuthService performs the underlying authentication operations.
	AuthService AuthService
}

// CredentialsRequest represents the JSON payload for registration and login.
type CredentialsRequest struct {
	// Username is the login name.
	Username string `json:"username"`
	// Password is the plaintext password; it is hashed before storage.
	Password string `json:"password"`
}

// Register handles account registration requests. It expects a JSON body
// with non-empty "username" and "password" fields and responds with the new
// account's id and username.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req CredentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}

	account, err := h.AuthService.Register(r.Context(), req.Username, req.Password)
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(map[string]string{
		"id":       account.ID,
		"username": account.Username,
	})
}

// Login handles login requests and responds with a bearer token on success.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req CredentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}

	token, err := h.AuthService.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]string{"token": token})
}
