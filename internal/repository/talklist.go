package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/atinyakov/TalkTracker/internal/models"
)

// PostgresTalkListRepository implements talk list persistence against a
// PostgreSQL database.
type PostgresTalkListRepository struct {
	// DB is the database handle for executing queries.
	DB *sql.DB
}

// NewPostgresTalkListRepository creates a new PostgresTalkListRepository
// using the provided *sql.DB.
func NewPostgresTalkListRepository(db *sql.DB) *PostgresTalkListRepository {
	return &PostgresTalkListRepository{DB: db}
}

// CreateList inserts a new talk list. The (account_id, name) unique
// constraint is the only duplicate check; a violation is returned as
// models.ErrConflict.
func (r *PostgresTalkListRepository) CreateList(ctx context.Context, list *models.TalkList) error {
	_, err := r.DB.ExecContext(ctx, `
		INSERT INTO talk_lists (id, account_id, name, slug) VALUES ($1, $2, $3, $4)
	`, list.ID, list.AccountID, list.Name, list.Slug)
	if err != nil {
		return fmt.Errorf("CreateList: %w", mapConstraint(err))
	}
	return nil
}

// RenameList updates the name and slug of the account's list. Returns
// models.ErrNotFound when the list does not exist or belongs to another
// account, and models.ErrConflict when the new name is already taken.
func (r *PostgresTalkListRepository) RenameList(ctx context.Context, accountID, listID, name, slug string) error {
	res, err := r.DB.ExecContext(ctx, `
		UPDATE talk_lists SET name = $1, slug = $2 WHERE id = $3 AND account_id = $4
	`, name, slug, listID, accountID)
	if err != nil {
		return fmt.Errorf("RenameList: %w", mapConstraint(err))
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("RenameList: %w", err)
	}
	if affected == 0 {
		return models.ErrNotFound
	}
	return nil
}

// ListsByAccount fetches all lists owned by the account, each with its talk
// count, ordered by name.
func (r *PostgresTalkListRepository) ListsByAccount(ctx context.Context, accountID string) ([]models.TalkList, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT l.id, l.account_id, l.name, l.slug, COUNT(t.id)
		FROM talk_lists l
		LEFT JOIN talks t ON t.talk_list_id = l.id
		WHERE l.account_id = $1
		GROUP BY l.id, l.account_id, l.name, l.slug
		ORDER BY l.name
	`, accountID)
	if err != nil {
		return nil, fmt.Errorf("ListsByAccount: %w", err)
	}
	defer rows.Close()

	var lists []models.TalkList
	for rows.Next() {
		var list models.TalkList
		if err := rows.Scan(&list.ID, &list.AccountID, &list.Name, &list.Slug, &list.TalkCount); err != nil {
			return nil, fmt.Errorf("scan: %w", err)
		}
		lists = append(lists, list)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ListsByAccount: %w", err)
	}
	return lists, nil
}

// GetListBySlug looks up a list by slug within the account's own lists
// only. A slug that exists under a different owner still yields
// models.ErrNotFound.
func (r *PostgresTalkListRepository) GetListBySlug(ctx context.Context, accountID, slug string) (*models.TalkList, error) {
	var list models.TalkList
	err := r.DB.QueryRowContext(ctx, `
		SELECT id, account_id, name, slug FROM talk_lists
		WHERE account_id = $1 AND slug = $2
	`, accountID, slug).Scan(&list.ID, &list.AccountID, &list.Name, &list.Slug)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, models.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("GetListBySlug: %w", err)
	}
	return &list, nil
}

// GetListByID fetches the account's list with the given id, or
// models.ErrNotFound when it does not exist or is owned by someone else.
func (r *PostgresTalkListRepository) GetListByID(ctx context.Context, accountID, listID string) (*models.TalkList, error) {
	var list models.TalkList
	err := r.DB.QueryRowContext(ctx, `
		SELECT id, account_id, name, slug FROM talk_lists
		WHERE account_id = $1 AND id = $2
	`, accountID, listID).Scan(&list.ID, &list.AccountID, &list.Name, &list.Slug)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, models.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("GetListByID: %w", err)
	}
	return &list, nil
}
