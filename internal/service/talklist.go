package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/gosimple/slug"

	"github.com/atinyakov/TalkTracker/internal/models"
)

// TalkListRepository defines the persistence operations needed by the
// TalkListService.
type TalkListRepository interface {
	// CreateList inserts a new list, returning models.ErrConflict when
	// the (owner, name) pair is taken.
	CreateList(ctx context.Context, list *models.TalkList) error
	// RenameList updates name and slug of the account's list.
	RenameList(ctx context.Context, accountID, listID, name, slug string) error
	// ListsByAccount returns the account's lists with talk counts.
	ListsByAccount(ctx context.Context, accountID string) ([]models.TalkList, error)
	// GetListBySlug looks a list up by slug within the account's lists.
	GetListBySlug(ctx context.Context, accountID, slug string) (*models.TalkList, error)
	// GetListByID fetches the account's list with the given id.
	GetListByID(ctx context.Context, accountID, listID string) (*models.TalkList, error)
}

// TalkLister is the subset of talk persistence the list service needs to
// build a list detail view.
type TalkLister interface {
	// TalksByList returns one list's talks in default order.
	TalksByList(ctx context.Context, listID string) ([]models.Talk, error)
}

// TalkListService implements the talk list lifecycle and the owner-scoped
// lookups every other component builds on. List deletion is deliberately
// not implemented.
type TalkListService struct {
	repo  TalkListRepository
	talks TalkLister
}

// NewTalkListService constructs a TalkListService with the provided
// repositories.
func NewTalkListService(repo TalkListRepository, talks TalkLister) *TalkListService {
	return &TalkListService{repo: repo, talks: talks}
}

// Create adds a new list for the account. The duplicate-name check is
// enforced by the storage unique constraint, atomically with the insert, so
// two concurrent creates with the same name cannot both succeed.
func (s *TalkListService) Create(ctx context.Context, accountID, name string) (*models.TalkList, error) {
	if name == "" {
		return nil, models.NewValidationError("name", "must not be empty")
	}

	list := &models.TalkList{
		ID:        uuid.NewString(),
		AccountID: accountID,
		Name:      name,
		Slug:      slug.Make(name),
	}
	if err := s.repo.CreateList(ctx, list); err != nil {
		if errors.Is(err, models.ErrConflict) {
			return nil, models.NewValidationError("name", "you already have a list with this name")
		}
		return nil, err
	}
	return list, nil
}

// Rename changes the list's name, recomputing the slug. The uniqueness
// check naturally excludes the list itself: updating a row to its current
// name does not violate the constraint.
func (s *TalkListService) Rename(ctx context.Context, accountID, listSlug, newName string) (*models.TalkList, error) {
	if newName == "" {
		return nil, models.NewValidationError("name", "must not be empty")
	}

	list, err := s.repo.GetListBySlug(ctx, accountID, listSlug)
	if err != nil {
		return nil, err
	}

	newSlug := slug.Make(newName)
	if err := s.repo.RenameList(ctx, accountID, list.ID, newName, newSlug); err != nil {
		if errors.Is(err, models.ErrConflict) {
			return nil, models.NewValidationError("name", "you already have a list with this name")
		}
		return nil, err
	}

	list.Name = newName
	list.Slug = newSlug
	return list, nil
}

// ListsFor returns only the lists owned by the account, each with its talk
// count.
func (s *TalkListService) ListsFor(ctx context.Context, accountID string) ([]models.TalkList, error) {
	return s.repo.ListsByAccount(ctx, accountID)
}

// Find looks up one of the account's lists by slug together with its talks
// in default order. A slug owned by a different account yields
// models.ErrNotFound, never a hint that the list exists.
func (s *TalkListService) Find(ctx context.Context, accountID, listSlug string) (*models.TalkList, []models.Talk, error) {
	list, err := s.repo.GetListBySlug(ctx, accountID, listSlug)
	if err != nil {
		return nil, nil, err
	}
	talks, err := s.talks.TalksByList(ctx, list.ID)
	if err != nil {
		return nil, nil, err
	}
	list.TalkCount = len(talks)
	return list, talks, nil
}
