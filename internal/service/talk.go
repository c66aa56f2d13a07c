package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/gosimple/slug"

	"github.com/atinyakov/TalkTracker/internal/markdown"
	"github.com/atinyakov/TalkTracker/internal/models"
)

// TalkRepository defines the persistence operations needed by the
// TalkService.
type TalkRepository interface {
	// CreateTalk inserts a new talk, returning models.ErrConflict when
	// the (list, name) pair is taken.
	CreateTalk(ctx context.Context, talk *models.Talk) error
	// GetTalk fetches a talk scoped to the owning account and list.
	GetTalk(ctx context.Context, accountID, listID, talkID string) (*models.Talk, error)
	// TalksByList returns one list's talks in default order.
	TalksByList(ctx context.Context, listID string) ([]models.Talk, error)
	// UpdateRatings persists the two raw ratings.
	UpdateRatings(ctx context.Context, talkID string, talkRating, speakerRating int) error
	// UpdateNotes persists raw notes and their rendered HTML.
	UpdateNotes(ctx context.Context, talkID, notes, notesHTML string) error
	// MoveTalk reassigns the talk to another list.
	MoveTalk(ctx context.Context, talkID, destListID string) error
	// DeleteTalk permanently removes the talk.
	DeleteTalk(ctx context.Context, listID, talkID string) error
}

// TalkConfig carries the enumerated options and bounds the talk lifecycle
// validates against. The choices are configuration, not code constants.
type TalkConfig struct {
	// WindowStart and WindowEnd bound the valid scheduling window. Both
	// ends are inclusive.
	WindowStart time.Time
	WindowEnd   time.Time
	// Rooms is the set of valid room codes.
	Rooms []string
	// RatingMin and RatingMax bound accepted ratings. Zero is always
	// accepted and means "unrated".
	RatingMin int
	RatingMax int
}

// validRoom reports whether room is one of the configured codes.
func (c TalkConfig) validRoom(room string) bool {
	for _, r := range c.Rooms {
		if r == room {
			return true
		}
	}
	return false
}

// TalkService implements the talk lifecycle. Every operation takes the
// requesting account's id and resolves the talk through owner-scoped
// lookups, so acting on another account's data yields models.ErrNotFound.
type TalkService struct {
	talks TalkRepository
	lists TalkListRepository
	cfg   TalkConfig
}

// NewTalkService constructs a TalkService with the provided repositories
// and configuration.
func NewTalkService(talks TalkRepository, lists TalkListRepository, cfg TalkConfig) *TalkService {
	return &TalkService{talks: talks, lists: lists, cfg: cfg}
}

// Create adds a talk to one of the account's lists. The scheduled time must
// fall inside the configured window and the room must be one of the
// configured codes. Ratings default to zero and notes to empty.
func (s *TalkService) Create(ctx context.Context, accountID, listSlug, name, host string, when time.Time, room string) (*models.Talk, error) {
	if name == "" {
		return nil, models.NewValidationError("name", "must not be empty")
	}
	if when.Before(s.cfg.WindowStart) || when.After(s.cfg.WindowEnd) {
		return nil, models.NewValidationError("when", fmt.Sprintf(
			"must be between %s and %s",
			s.cfg.WindowStart.Format(time.RFC3339), s.cfg.WindowEnd.Format(time.RFC3339)))
	}
	if !s.cfg.validRoom(room) {
		return nil, models.NewValidationError("room", "unknown room code")
	}

	list, err := s.lists.GetListBySlug(ctx, accountID, listSlug)
	if err != nil {
		return nil, err
	}

	talk := &models.Talk{
		ID:         uuid.NewString(),
		TalkListID: list.ID,
		Name:       name,
		Slug:       slug.Make(name),
		When:       when,
		Room:       room,
		Host:       host,
	}
	if err := s.talks.CreateTalk(ctx, talk); err != nil {
		if errors.Is(err, models.ErrConflict) {
			return nil, models.NewValidationError("name", "this list already has a talk with this name")
		}
		return nil, err
	}
	return talk, nil
}

// Get fetches one talk, scoped to the account.
func (s *TalkService) Get(ctx context.Context, accountID, listSlug, talkID string) (*models.Talk, error) {
	return s.find(ctx, accountID, listSlug, talkID)
}

// Rate stores the two raw ratings. A rating is either zero (unrated) or
// inside the configured scale; anything else is rejected. The overall
// rating is derived on read and never persisted.
func (s *TalkService) Rate(ctx context.Context, accountID, listSlug, talkID string, talkRating, speakerRating int) (*models.Talk, error) {
	if err := s.validRating("talk_rating", talkRating); err != nil {
		return nil, err
	}
	if err := s.validRating("speaker_rating", speakerRating); err != nil {
		return nil, err
	}

	talk, err := s.find(ctx, accountID, listSlug, talkID)
	if err != nil {
		return nil, err
	}
	if err := s.talks.UpdateRatings(ctx, talk.ID, talkRating, speakerRating); err != nil {
		return nil, err
	}
	talk.TalkRating = talkRating
	talk.SpeakerRating = speakerRating
	return talk, nil
}

func (s *TalkService) validRating(field string, rating int) error {
	if rating == 0 {
		return nil
	}
	if rating < s.cfg.RatingMin || rating > s.cfg.RatingMax {
		return models.NewValidationError(field, fmt.Sprintf(
			"must be 0 or between %d and %d", s.cfg.RatingMin, s.cfg.RatingMax))
	}
	return nil
}

// SetNotes stores the raw Markdown verbatim and re-renders the HTML form.
// Both fields are replaced entirely on every call.
func (s *TalkService) SetNotes(ctx context.Context, accountID, listSlug, talkID, notes string) (*models.Talk, error) {
	talk, err := s.find(ctx, accountID, listSlug, talkID)
	if err != nil {
		return nil, err
	}

	html := markdown.Render(notes)
	if err := s.talks.UpdateNotes(ctx, talk.ID, notes, html); err != nil {
		return nil, err
	}
	talk.Notes = notes
	talk.NotesHTML = html
	return talk, nil
}

// Move reassigns the talk to another of the account's own lists. A
// destination the account does not own is a validation failure, not a
// lookup of someone else's list. No field other than the list reference
// changes.
func (s *TalkService) Move(ctx context.Context, accountID, listSlug, talkID, destListID string) (*models.Talk, error) {
	talk, err := s.find(ctx, accountID, listSlug, talkID)
	if err != nil {
		return nil, err
	}

	dest, err := s.lists.GetListByID(ctx, accountID, destListID)
	if errors.Is(err, models.ErrNotFound) {
		return nil, models.NewValidationError("destination", "must be one of your own lists")
	}
	if err != nil {
		return nil, err
	}
	if dest.ID == talk.TalkListID {
		return talk, nil
	}

	if err := s.talks.MoveTalk(ctx, talk.ID, dest.ID); err != nil {
		if errors.Is(err, models.ErrConflict) {
			return nil, models.NewValidationError("destination", "that list already has a talk with this name")
		}
		return nil, err
	}
	talk.TalkListID = dest.ID
	return talk, nil
}

// Delete permanently removes the talk. There is no soft delete or recovery.
func (s *TalkService) Delete(ctx context.Context, accountID, listSlug, talkID string) error {
	talk, err := s.find(ctx, accountID, listSlug, talkID)
	if err != nil {
		return err
	}
	return s.talks.DeleteTalk(ctx, talk.TalkListID, talk.ID)
}

// ReassignableLists returns the destination candidates for moving the talk:
// the other lists owned by the same account. Lists of other accounts are
// never candidates.
func (s *TalkService) ReassignableLists(ctx context.Context, accountID, listSlug, talkID string) ([]models.TalkList, error) {
	talk, err := s.find(ctx, accountID, listSlug, talkID)
	if err != nil {
		return nil, err
	}

	all, err := s.lists.ListsByAccount(ctx, accountID)
	if err != nil {
		return nil, err
	}
	candidates := make([]models.TalkList, 0, len(all))
	for _, l := range all {
		if l.ID != talk.TalkListID {
			candidates = append(candidates, l)
		}
	}
	return candidates, nil
}

// find resolves a talk through the owner-scoped list lookup first, so both
// "does not exist" and "exists but not yours" come back as
// models.ErrNotFound.
func (s *TalkService) find(ctx context.Context, accountID, listSlug, talkID string) (*models.Talk, error) {
	list, err := s.lists.GetListBySlug(ctx, accountID, listSlug)
	if err != nil {
		return nil, err
	}
	return s.talks.GetTalk(ctx, accountID, list.ID, talkID)
}
