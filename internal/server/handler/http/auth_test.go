package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/atinyakov/TalkTracker/internal/models"
	"github.com/atinyakov/TalkTracker/internal/service"
)

// fakeAuthService implements AuthService for testing.
type fakeAuthService struct {
	registerAccount *models.Account
	registerErr     error
	loginToken      string
	loginErr        error
}

func (f *fakeAuthService) Register(ctx context.Context, username, password string) (*models.Account, error) {
	if f.registerErr != nil {
		return nil, f.registerErr
	}
	return f.registerAccount, nil
}

func (f *fakeAuthService) Login(ctx context.Context, username, password string) (string, error) {
	return f.loginToken, f.loginErr
}

func TestAuthHandler_Register(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		service        *fakeAuthService
		expectedCode   int
		expectedSubstr string
	}{
		{
			name:           "invalid JSON",
			body:           `not a json`,
			service:        &fakeAuthService{},
			expectedCode:   http.StatusBadRequest,
			expectedSubstr: "invalid request",
		},
		{
			name:           "empty username",
			body:           `{"username":"","password":"pw"}`,
			service:        &fakeAuthService{registerErr: models.NewValidationError("username", "must not be empty")},
			expectedCode:   http.StatusBadRequest,
			expectedSubstr: "username",
		},
		{
			name:           "username taken",
			body:           `{"username":"bob","password":"pw"}`,
			service:        &fakeAuthService{registerErr: models.NewValidationError("username", "already taken")},
			expectedCode:   http.StatusBadRequest,
			expectedSubstr: "already taken",
		},
		{
			name:           "service error",
			body:           `{"username":"carol","password":"pw"}`,
			service:        &fakeAuthService{registerErr: errors.New("db down")},
			expectedCode:   http.StatusInternalServerError,
			expectedSubstr: "internal error",
		},
		{
			name:           "success",
			body:           `{"username":"alice","password":"pw"}`,
			service:        &fakeAuthService{registerAccount: &models.Account{ID: "a1", Username: "alice"}},
			expectedCode:   http.StatusCreated,
			expectedSubstr: `"username":"alice"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			req := httptest.NewRequest("POST", "/api/register", bytes.NewBufferString(tt.body))
			h := &AuthHandler{AuthService: tt.service}
			h.Register(rec, req)
			res := rec.Result()
			defer res.Body.Close()

			if res.StatusCode != tt.expectedCode {
				t.Fatalf("expected status %d, got %d", tt.expectedCode, res.StatusCode)
			}

			buf := new(bytes.Buffer)
			if _, err := buf.ReadFrom(res.Body); err != nil {
				t.Fatalf("reading body: %v", err)
			}
			if !strings.Contains(buf.String(), tt.expectedSubstr) {
				t.Errorf("body %q does not contain %q", buf.String(), tt.expectedSubstr)
			}
		})
	}
}

func TestAuthHandler_Login(t *testing.T) {
	tests := []struct {
		name         string
		body         string
		service      *fakeAuthService
		expectedCode int
	}{
		{
			name:         "invalid JSON",
			body:         `{`,
			service:      &fakeAuthService{},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "bad credentials",
			body:         `{"username":"alice","password":"wrong"}`,
			service:      &fakeAuthService{loginErr: service.ErrInvalidCredentials},
			expectedCode: http.StatusUnauthorized,
		},
		{
			name:         "success",
			body:         `{"username":"alice","password":"pw"}`,
			service:      &fakeAuthService{loginToken: "tok-123"},
			expectedCode: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			req := httptest.NewRequest("POST", "/api/login", bytes.NewBufferString(tt.body))
			h := &AuthHandler{AuthService: tt.service}
			h.Login(rec, req)
			res := rec.Result()
			defer res.Body.Close()

			if res.StatusCode != tt.expectedCode {
				t.Fatalf("expected status %d, got %d", tt.expectedCode, res.StatusCode)
			}
			if tt.expectedCode == http.StatusOK {
				var out map[string]string
				if err := json.NewDecoder(res.Body).Decode(&out); err != nil {
					t.Fatalf("decoding body: %v", err)
				}
				if out["token"] != "tok-123" {
					t.Errorf("token = %q; want %q", out["token"], "tok-123")
				}
			}
		})
	}
}
