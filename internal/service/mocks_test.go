package service_test

import (
	"context"

	"github.com/atinyakov/TalkTracker/internal/models"
)

// mockAccountRepo implements service.AccountRepository for testing.
type mockAccountRepo struct {
	CreateAccountFunc        func(ctx context.Context, account *models.Account) error
	GetAccountByUsernameFunc func(ctx context.Context, username string) (*models.Account, error)
}

func (m *mockAccountRepo) CreateAccount(ctx context.Context, account *models.Account) error {
	return m.CreateAccountFunc(ctx, account)
}
func (m *mockAccountRepo) GetAccountByUsername(ctx context.Context, username string) (*models.Account, error) {
	return m.GetAccountByUsernameFunc(ctx, username)
}

// mockListRepo implements service.TalkListRepository for testing.
type mockListRepo struct {
	CreateListFunc     func(ctx context.Context, list *models.TalkList) error
	RenameListFunc     func(ctx context.Context, accountID, listID, name, slug string) error
	ListsByAccountFunc func(ctx context.Context, accountID string) ([]models.TalkList, error)
	GetListBySlugFunc  func(ctx context.Context, accountID, slug string) (*models.TalkList, error)
	GetListByIDFunc    func(ctx context.Context, accountID, listID string) (*models.TalkList, error)
}

func (m *mockListRepo) CreateList(ctx context.Context, list *models.TalkList) error {
	return m.CreateListFunc(ctx, list)
}
func (m *mockListRepo) RenameList(ctx context.Context, accountID, listID, name, slug string) error {
	return m.RenameListFunc(ctx, accountID, listID, name, slug)
}
func (m *mockListRepo) ListsByAccount(ctx context.Context, accountID string) ([]models.TalkList, error) {
	return m.ListsByAccountFunc(ctx, accountID)
}
func (m *mockListRepo) GetListBySlug(ctx context.Context, accountID, slug string) (*models.TalkList, error) {
	return m.GetListBySlugFunc(ctx, accountID, slug)
}
func (m *mockListRepo) GetListByID(ctx context.Context, accountID, listID string) (*models.TalkList, error) {
	return m.GetListByIDFunc(ctx, accountID, listID)
}

// mockTalkRepo implements service.TalkRepository for testing.
type mockTalkRepo struct {
	CreateTalkFunc    func(ctx context.Context, talk *models.Talk) error
	GetTalkFunc       func(ctx context.Context, accountID, listID, talkID string) (*models.Talk, error)
	TalksByListFunc   func(ctx context.Context, listID string) ([]models.Talk, error)
	UpdateRatingsFunc func(ctx context.Context, talkID string, talkRating, speakerRating int) error
	UpdateNotesFunc   func(ctx context.Context, talkID, notes, notesHTML string) error
	MoveTalkFunc      func(ctx context.Context, talkID, destListID string) error
	DeleteTalkFunc    func(ctx context.Context, listID, talkID string) error
}

func (m *mockTalkRepo) CreateTalk(ctx context.Context, talk *models.Talk) error {
	return m.CreateTalkFunc(ctx, talk)
}
func (m *mockTalkRepo) GetTalk(ctx context.Context, accountID, listID, talkID string) (*models.Talk, error) {
	return m.GetTalkFunc(ctx, accountID, listID, talkID)
}
func (m *mockTalkRepo) TalksByList(ctx context.Context, listID string) ([]models.Talk, error) {
	return m.TalksByListFunc(ctx, listID)
}
func (m *mockTalkRepo) UpdateRatings(ctx context.Context, talkID string, talkRating, speakerRating int) error {
	return m.UpdateRatingsFunc(ctx, talkID, talkRating, speakerRating)
}
func (m *mockTalkRepo) UpdateNotes(ctx context.Context, talkID, notes, notesHTML string) error {
	return m.UpdateNotesFunc(ctx, talkID, notes, notesHTML)
}
func (m *mockTalkRepo) MoveTalk(ctx context.Context, talkID, destListID string) error {
	return m.MoveTalkFunc(ctx, talkID, destListID)
}
func (m *mockTalkRepo) DeleteTalk(ctx context.Context, listID, talkID string) error {
	return m.DeleteTalkFunc(ctx, listID, talkID)
}
