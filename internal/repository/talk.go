package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/atinyakov/TalkTracker/internal/models"
)

// talkColumns is the column list shared by every talk SELECT.
const talkColumns = `t.id, t.talk_list_id, t.name, t.slug, t.at, t.room, t.host, t.talk_rating, t.speaker_rating, t.notes, t.notes_html`

// PostgresTalkRepository implements talk persistence against a PostgreSQL
// database.
type PostgresTalkRepository struct {
	// DB is the database handle for executing queries.
	DB *sql.DB
}

// NewPostgresTalkRepository creates a new PostgresTalkRepository using the
// provided *sql.DB.
func NewPostgresTalkRepository(db *sql.DB) *PostgresTalkRepository {
	return &PostgresTalkRepository{DB: db}
}

func scanTalk(row interface{ Scan(...any) error }) (*models.Talk, error) {
	var t models.Talk
	err := row.Scan(&t.ID, &t.TalkListID, &t.Name, &t.Slug, &t.When, &t.Room,
		&t.Host, &t.TalkRating, &t.SpeakerRating, &t.Notes, &t.NotesHTML)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// CreateTalk inserts a new talk. The (talk_list_id, name) unique constraint
// is the only duplicate check; a violation is returned as
// models.ErrConflict.
func (r *PostgresTalkRepository) CreateTalk(ctx context.Context, talk *models.Talk) error {
	_, err := r.DB.ExecContext(ctx, `
		INSERT INTO talks (id, talk_list_id, name, slug, at, room, host, talk_rating, speaker_rating, notes, notes_html)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`, talk.ID, talk.TalkListID, talk.Name, talk.Slug, talk.When, talk.Room,
		talk.Host, talk.TalkRating, talk.SpeakerRating, talk.Notes, talk.NotesHTML)
	if err != nil {
		return fmt.Errorf("CreateTalk: %w", mapConstraint(err))
	}
	return nil
}

// GetTalk fetches one talk two levels of ownership deep: the talk must
// belong to the given list, and the list must belong to the given account.
// Any miss yields models.ErrNotFound.
func (r *PostgresTalkRepository) GetTalk(ctx context.Context, accountID, listID, talkID string) (*models.Talk, error) {
	talk, err := scanTalk(r.DB.QueryRowContext(ctx, `
		SELECT `+talkColumns+` FROM talks t
		JOIN talk_lists l ON l.id = t.talk_list_id
		WHERE l.account_id = $1 AND t.talk_list_id = $2 AND t.id = $3
	`, accountID, listID, talkID))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, models.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("GetTalk: %w", err)
	}
	return talk, nil
}

// TalksByList fetches all talks of one list in default order: scheduled
// time ascending, then room.
func (r *PostgresTalkRepository) TalksByList(ctx context.Context, listID string) ([]models.Talk, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT `+talkColumns+` FROM talks t
		WHERE t.talk_list_id = $1
		ORDER BY t.at, t.room
	`, listID)
	if err != nil {
		return nil, fmt.Errorf("TalksByList: %w", err)
	}
	defer rows.Close()

	var talks []models.Talk
	for rows.Next() {
		talk, err := scanTalk(rows)
		if err != nil {
			return nil, fmt.Errorf("scan: %w", err)
		}
		talks = append(talks, *talk)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("TalksByList: %w", err)
	}
	return talks, nil
}

// UpdateRatings persists the two raw ratings of a talk. The overall rating
// is never stored; it is recomputed on read.
func (r *PostgresTalkRepository) UpdateRatings(ctx context.Context, talkID string, talkRating, speakerRating int) error {
	res, err := r.DB.ExecContext(ctx, `
		UPDATE talks SET talk_rating = $1, speaker_rating = $2 WHERE id = $3
	`, talkRating, speakerRating, talkID)
	if err != nil {
		return fmt.Errorf("UpdateRatings: %w", err)
	}
	return checkAffected(res)
}

// UpdateNotes persists the raw notes together with their rendered HTML,
// replacing both previous values entirely.
func (r *PostgresTalkRepository) UpdateNotes(ctx context.Context, talkID, notes, notesHTML string) error {
	res, err := r.DB.ExecContext(ctx, `
		UPDATE talks SET notes = $1, notes_html = $2 WHERE id = $3
	`, notes, notesHTML, talkID)
	if err != nil {
		return fmt.Errorf("UpdateNotes: %w", err)
	}
	return checkAffected(res)
}

// MoveTalk reassigns the talk to another list. Only the list reference
// changes. A name collision in the destination list is returned as
// models.ErrConflict.
func (r *PostgresTalkRepository) MoveTalk(ctx context.Context, talkID, destListID string) error {
	res, err := r.DB.ExecContext(ctx, `
		UPDATE talks SET talk_list_id = $1 WHERE id = $2
	`, destListID, talkID)
	if err != nil {
		return fmt.Errorf("MoveTalk: %w", mapConstraint(err))
	}
	return checkAffected(res)
}

// DeleteTalk permanently removes the talk from its list. Returns
// models.ErrNotFound when no row matches.
func (r *PostgresTalkRepository) DeleteTalk(ctx context.Context, listID, talkID string) error {
	res, err := r.DB.ExecContext(ctx, `
		DELETE FROM talks WHERE talk_list_id = $1 AND id = $2
	`, listID, talkID)
	if err != nil {
		return fmt.Errorf("DeleteTalk: %w", err)
	}
	return checkAffected(res)
}

func checkAffected(res sql.Result) error {
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return models.ErrNotFound
	}
	return nil
}
