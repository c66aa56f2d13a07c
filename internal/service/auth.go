// Package service implements the business logic of the talk tracker:
// registration and login, talk list and talk lifecycles, and the derived
// schedule view. Persistence is delegated to repository interfaces, and
// every operation is scoped to the requesting account.
package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/atinyakov/TalkTracker/internal/auth"
	"github.com/atinyakov/TalkTracker/internal/models"
)

// defaultListName is the list every new account starts with.
const defaultListName = "To Attend"

// ErrInvalidCredentials is returned on login when the username is unknown
// or the password does not match. The two cases are indistinguishable.
var ErrInvalidCredentials = errors.New("invalid username or password")

// AccountRepository defines the persistence operations required by the
// authentication service.
type AccountRepository interface {
	// CreateAccount inserts a new account, returning models.ErrConflict
	// when the username is taken.
	CreateAccount(ctx context.Context, account *models.Account) error
	// GetAccountByUsername fetches an account by username, returning
	// models.ErrNotFound when it does not exist.
	GetAccountByUsername(ctx context.Context, username string) (*models.Account, error)
}

// AuthService implements registration and login.
type AuthService struct {
	accounts AccountRepository
	lists    *TalkListService
	secret   []byte
	tokenTTL time.Duration
}

// NewAuthService constructs an AuthService. lists is used to create the
// default list for every new account.
func NewAuthService(accounts AccountRepository, lists *TalkListService, secret []byte, tokenTTL time.Duration) *AuthService {
	return &AuthService{accounts: accounts, lists: lists, secret: secret, tokenTTL: tokenTTL}
}

// Register creates a new account with a bcrypt-hashed password and seeds it
// with the default "To Attend" list. The plaintext password is never
// stored.
func (s *AuthService) Register(ctx context.Context, username, password string) (*models.Account, error) {
	if username == "" {
		return nil, models.NewValidationError("username", "must not be empty")
	}
	if password == "" {
		return nil, models.NewValidationError("password", "must not be empty")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	account := &models.Account{
		ID:           uuid.NewString(),
		Username:     username,
		PasswordHash: hash,
	}
	if err := s.accounts.CreateAccount(ctx, account); err != nil {
		if errors.Is(err, models.ErrConflict) {
			return nil, models.NewValidationError("username", "already taken")
		}
		return nil, err
	}

	if _, err := s.lists.Create(ctx, account.ID, defaultListName); err != nil {
		return nil, err
	}

	return account, nil
}

// Login verifies the credentials and returns a signed session token.
// Unknown usernames and wrong passwords both yield ErrInvalidCredentials.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, error) {
	account, err := s.accounts.GetAccountByUsername(ctx, username)
	if errors.Is(err, models.ErrNotFound) {
		return "", ErrInvalidCredentials
	}
	if err != nil {
		return "", err
	}

	if err := bcrypt.CompareHashAndPassword(account.PasswordHash, []byte(password)); err != nil {
		return "", ErrInvalidCredentials
	}

	return auth.GenerateToken(account.ID, s.secret, s.tokenTTL)
}
