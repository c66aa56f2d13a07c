package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/atinyakov/TalkTracker/internal/models"
)

// PostgresAccountRepository implements account persistence using a
// PostgreSQL database.
type PostgresAccountRepository struct {
	// DB is the database handle for executing queries.
	DB *sql.DB
}

// NewPostgresAccountRepository creates a new PostgresAccountRepository with
// the given database connection.
func NewPostgresAccountRepository(db *sql.DB) *PostgresAccountRepository {
	return &PostgresAccountRepository{DB: db}
}

// CreateAccount inserts a new account. It returns models.ErrConflict when
// the username is already taken.
func (r *PostgresAccountRepository) CreateAccount(ctx context.Context, account *models.Account) error {
	_, err := r.DB.ExecContext(
		ctx,
		`INSERT INTO accounts (id, username, password_hash) VALUES ($1, $2, $3)`,
		account.ID, account.Username, account.PasswordHash,
	)
	if err != nil {
		return fmt.Errorf("CreateAccount: %w", mapConstraint(err))
	}
	return nil
}

// GetAccountByUsername fetches the account with the given username.
// Returns models.ErrNotFound when no such account exists.
func (r *PostgresAccountRepository) GetAccountByUsername(ctx context.Context, username string) (*models.Account, error) {
	var account models.Account
	err := r.DB.QueryRowContext(ctx, `
		SELECT id, username, password_hash FROM accounts WHERE username = $1
	`, username).Scan(&account.ID, &account.Username, &account.PasswordHash)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, models.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("GetAccountByUsername: %w", err)
	}
	return &account, nil
}
