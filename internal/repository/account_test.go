package repository

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"

	"github.com/atinyakov/TalkTracker/internal/models"
)

func setupAccountMock(t *testing.T) (*PostgresAccountRepository, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to open sqlmock database: %v", err)
	}
	repo := NewPostgresAccountRepository(db)
	cleanup := func() { db.Close() }
	return repo, mock, cleanup
}

func TestCreateAccount(t *testing.T) {
	repo, mock, cleanup := setupAccountMock(t)
	defer cleanup()

	account := &models.Account{ID: "a1", Username: "alice", PasswordHash: []byte("hash")}
	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO accounts (id, username, password_hash) VALUES ($1, $2, $3)`)).
		WithArgs(account.ID, account.Username, account.PasswordHash).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.CreateAccount(context.Background(), account); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unfulfilled expectations: %v", err)
	}
}

func TestCreateAccount_DuplicateUsername(t *testing.T) {
	repo, mock, cleanup := setupAccountMock(t)
	defer cleanup()

	account := &models.Account{ID: "a1", Username: "alice", PasswordHash: []byte("hash")}
	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO accounts (id, username, password_hash) VALUES ($1, $2, $3)`)).
		WithArgs(account.ID, account.Username, account.PasswordHash).
		WillReturnError(&pq.Error{Code: "23505"})

	err := repo.CreateAccount(context.Background(), account)
	if !errors.Is(err, models.ErrConflict) {
		t.Errorf("expected ErrConflict, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unfulfilled expectations: %v", err)
	}
}

func TestGetAccountByUsername(t *testing.T) {
	repo, mock, cleanup := setupAccountMock(t)
	defer cleanup()

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, username, password_hash FROM accounts WHERE username = $1`)).
		WithArgs("alice").
		WillReturnRows(sqlmock.NewRows([]string{"id", "username", "password_hash"}).
			AddRow("a1", "alice", []byte("hash")))

	account, err := repo.GetAccountByUsername(context.Background(), "alice")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if account.ID != "a1" || account.Username != "alice" {
		t.Errorf("unexpected account: %+v", account)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unfulfilled expectations: %v", err)
	}
}

func TestGetAccountByUsername_NotFound(t *testing.T) {
	repo, mock, cleanup := setupAccountMock(t)
	defer cleanup()

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, username, password_hash FROM accounts WHERE username = $1`)).
		WithArgs("nobody").
		WillReturnRows(sqlmock.NewRows([]string{"id", "username", "password_hash"}))

	_, err := repo.GetAccountByUsername(context.Background(), "nobody")
	if !errors.Is(err, models.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unfulfilled expectations: %v", err)
	}
}
