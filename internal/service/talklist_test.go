package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/atinyakov/TalkTracker/internal/models"
	"github.com/atinyakov/TalkTracker/internal/service"
)

func TestCreateList_ComputesSlug(t *testing.T) {
	var created *models.TalkList
	repo := &mockListRepo{
		CreateListFunc: func(_ context.Context, list *models.TalkList) error {
			created = list
			return nil
		},
	}
	svc := service.NewTalkListService(repo, &mockTalkRepo{})

	list, err := svc.Create(context.Background(), "a1", "My PyCon Talks")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if list.Slug != "my-pycon-talks" {
		t.Errorf("slug = %q; want %q", list.Slug, "my-pycon-talks")
	}
	if created == nil || created.ID == "" {
		t.Error("expected a persisted list with a generated id")
	}
	if created.AccountID != "a1" {
		t.Errorf("owner = %q; want %q", created.AccountID, "a1")
	}
}

func TestCreateList_EmptyName(t *testing.T) {
	svc := service.NewTalkListService(&mockListRepo{}, &mockTalkRepo{})

	_, err := svc.Create(context.Background(), "a1", "")
	var validationErr *models.ValidationError
	if !errors.As(err, &validationErr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
}

func TestCreateList_DuplicateName(t *testing.T) {
	repo := &mockListRepo{
		CreateListFunc: func(context.Context, *models.TalkList) error {
			return models.ErrConflict
		},
	}
	svc := service.NewTalkListService(repo, &mockTalkRepo{})

	_, err := svc.Create(context.Background(), "a1", "To Attend")
	var validationErr *models.ValidationError
	if !errors.As(err, &validationErr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if validationErr.Field != "name" {
		t.Errorf("field = %q; want %q", validationErr.Field, "name")
	}
}

func TestRename_RecomputesSlug(t *testing.T) {
	var gotName, gotSlug string
	repo := &mockListRepo{
		GetListBySlugFunc: func(_ context.Context, accountID, slug string) (*models.TalkList, error) {
			return &models.TalkList{ID: "l1", AccountID: accountID, Name: "Old", Slug: slug}, nil
		},
		RenameListFunc: func(_ context.Context, _, _, name, slug string) error {
			gotName, gotSlug = name, slug
			return nil
		},
	}
	svc := service.NewTalkListService(repo, &mockTalkRepo{})

	list, err := svc.Rename(context.Background(), "a1", "old", "Second Day!")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotName != "Second Day!" || gotSlug != "second-day" {
		t.Errorf("persisted (%q, %q); want (%q, %q)", gotName, gotSlug, "Second Day!", "second-day")
	}
	if list.Slug != "second-day" {
		t.Errorf("returned slug = %q; want %q", list.Slug, "second-day")
	}
}

func TestRename_DuplicateName(t *testing.T) {
	repo := &mockListRepo{
		GetListBySlugFunc: func(_ context.Context, accountID, slug string) (*models.TalkList, error) {
			return &models.TalkList{ID: "l1", AccountID: accountID, Slug: slug}, nil
		},
		RenameListFunc: func(context.Context, string, string, string, string) error {
			return models.ErrConflict
		},
	}
	svc := service.NewTalkListService(repo, &mockTalkRepo{})

	_, err := svc.Rename(context.Background(), "a1", "old", "Taken")
	var validationErr *models.ValidationError
	if !errors.As(err, &validationErr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
}

func TestFind_OtherOwnerSlugIsNotFound(t *testing.T) {
	repo := &mockListRepo{
		GetListBySlugFunc: func(context.Context, string, string) (*models.TalkList, error) {
			return nil, models.ErrNotFound
		},
	}
	svc := service.NewTalkListService(repo, &mockTalkRepo{})

	_, _, err := svc.Find(context.Background(), "a2", "someone-elses-list")
	if !errors.Is(err, models.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestFind_ReturnsTalksWithCount(t *testing.T) {
	repo := &mockListRepo{
		GetListBySlugFunc: func(_ context.Context, accountID, slug string) (*models.TalkList, error) {
			return &models.TalkList{ID: "l1", AccountID: accountID, Slug: slug}, nil
		},
	}
	talks := &mockTalkRepo{
		TalksByListFunc: func(context.Context, string) ([]models.Talk, error) {
			return []models.Talk{{ID: "t1"}, {ID: "t2"}}, nil
		},
	}
	svc := service.NewTalkListService(repo, talks)

	list, got, err := svc.Find(context.Background(), "a1", "to-attend")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 2 || list.TalkCount != 2 {
		t.Errorf("got %d talks, count %d; want 2 and 2", len(got), list.TalkCount)
	}
}
