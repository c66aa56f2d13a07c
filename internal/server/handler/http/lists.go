package http

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/atinyakov/TalkTracker/internal/middleware"
	"github.com/atinyakov/TalkTracker/internal/models"
)

// ListService defines the talk list operations required by the HTTP
// handlers.
type ListService interface {
	// Create adds a new list for the account.
	Create(ctx context.Context, accountID, name string) (*models.TalkList, error)
	// Rename changes a list's name and slug.
	Rename(ctx context.Context, accountID, listSlug, newName string) (*models.TalkList, error)
	// ListsFor returns the account's lists with talk counts.
	ListsFor(ctx context.Context, accountID string) ([]models.TalkList, error)
	// Find returns one of the account's lists and its talks.
	Find(ctx context.Context, accountID, listSlug string) (*models.TalkList, []models.Talk, error)
}

// ScheduleService defines the schedule projection required by the HTTP
// handlers.
type ScheduleService interface {
	// ScheduleFor returns the list's talks grouped by calendar day.
	ScheduleFor(ctx context.Context, accountID, listSlug string) ([]models.ScheduleDay, error)
}

// ListHandler handles HTTP requests for talk lists and their schedules.
type ListHandler struct {
	// ListService performs the list lifecycle operations.
	ListService ListService
	// ScheduleService derives the day-grouped schedule view.
	ScheduleService ScheduleService
}

// ListRequest represents the JSON payload for creating or renaming a list.
type ListRequest struct {
	// Name is the display name of the list.
	Name string `json:"name"`
}

// Index responds with all lists owned by the caller, each with its talk
// count.
func (h *ListHandler) Index(w http.ResponseWriter, r *http.Request) {
	accountID := middleware.GetAccountIDFromContext(r.Context())

	lists, err := h.ListService.ListsFor(r.Context(), accountID)
	if err != nil {
		writeError(w, err)
		return
	}
	if lists == nil {
		lists = []models.TalkList{}
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]any{"lists": lists})
}

// Create handles list creation requests.
func (h *ListHandler) Create(w http.ResponseWriter, r *http.Request) {
	accountID := middleware.GetAccountIDFromContext(r.Context())

	var req ListRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}

	list, err := h.ListService.Create(r.Context(), accountID, req.Name)
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(list)
}

// Detail responds with one list and its talks in default order. A slug
// belonging to another account yields 404.
func (h *ListHandler) Detail(w http.ResponseWriter, r *http.Request) {
	accountID := middleware.GetAccountIDFromContext(r.Context())
	listSlug := chi.URLParam(r, "slug")

	list, talks, err := h.ListService.Find(r.Context(), accountID, listSlug)
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]any{
		"list":  list,
		"talks": talkResponses(talks),
	})
}

// Rename handles list rename requests, recomputing the slug.
func (h *ListHandler) Rename(w http.ResponseWriter, r *http.Request) {
	accountID := middleware.GetAccountIDFromContext(r.Context())
	listSlug := chi.URLParam(r, "slug")

	var req ListRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}

	list, err := h.ListService.Rename(r.Context(), accountID, listSlug, req.Name)
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(list)
}

// Schedule responds with the list's talks grouped by calendar day, days
// ascending.
func (h *ListHandler) Schedule(w http.ResponseWriter, r *http.Request) {
	accountID := middleware.GetAccountIDFromContext(r.Context())
	listSlug := chi.URLParam(r, "slug")

	days, err := h.ScheduleService.ScheduleFor(r.Context(), accountID, listSlug)
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]any{"days": days})
}
