package http

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/atinyakov/TalkTracker/internal/middleware"
	"github.com/atinyakov/TalkTracker/internal/models"
)

// TalkService defines the talk lifecycle operations required by the HTTP
// handlers. Rating and moving are deliberately separate operations selected
// by the route, never one endpoint branching on the payload shape.
type TalkService interface {
	// Create adds a talk to one of the account's lists.
	Create(ctx context.Context, accountID, listSlug, name, host string, when time.Time, room string) (*models.Talk, error)
	// Get fetches one talk scoped to the account.
	Get(ctx context.Context, accountID, listSlug, talkID string) (*models.Talk, error)
	// Rate stores the two raw ratings.
	Rate(ctx context.Context, accountID, listSlug, talkID string, talkRating, speakerRating int) (*models.Talk, error)
	// SetNotes stores raw notes and re-renders their HTML.
	SetNotes(ctx context.Context, accountID, listSlug, talkID, notes string) (*models.Talk, error)
	// Move reassigns the talk to another of the account's lists.
	Move(ctx context.Context, accountID, listSlug, talkID, destListID string) (*models.Talk, error)
	// Delete permanently removes the talk.
	Delete(ctx context.Context, accountID, listSlug, talkID string) error
	// ReassignableLists returns the candidate destinations for a move.
	ReassignableLists(ctx context.Context, accountID, listSlug, talkID string) ([]models.TalkList, error)
}

// TalkHandler handles HTTP requests for talks.
type TalkHandler struct {
	// TalkService performs the talk lifecycle operations.
	TalkService TalkService
}

// TalkResponse is a talk together with its derived overall rating.
type TalkResponse struct {
	models.Talk
	// OverallRating is the average of the two component ratings, zero
	// unless both are set.
	OverallRating int `json:"overall_rating"`
}

func toTalkResponse(t *models.Talk) TalkResponse {
	return TalkResponse{Talk: *t, OverallRating: t.OverallRating()}
}

func talkResponses(talks []models.Talk) []TalkResponse {
	out := make([]TalkResponse, 0, len(talks))
	for i := range talks {
		out = append(out, toTalkResponse(&talks[i]))
	}
	return out
}

// CreateTalkRequest represents the JSON payload for adding a talk.
type CreateTalkRequest struct {
	// Name is the talk title.
	Name string `json:"name"`
	// Host is the presenter's name.
	Host string `json:"host"`
	// When is the scheduled start time, RFC 3339.
	When time.Time `json:"when"`
	// Room is one of the configured room codes.
	Room string `json:"room"`
}

// RatingRequest represents the JSON payload for rating a talk.
type RatingRequest struct {
	// TalkRating rates the talk content.
	TalkRating int `json:"talk_rating"`
	// SpeakerRating rates the speaker.
	SpeakerRating int `json:"speaker_rating"`
}

// NotesRequest represents the JSON payload for replacing a talk's notes.
type NotesRequest struct {
	// Notes is the raw Markdown text.
	Notes string `json:"notes"`
}

// MoveRequest represents the JSON payload for moving a talk to another list.
type MoveRequest struct {
	// DestinationListID identifies the target list, which must belong to
	// the caller.
	DestinationListID string `json:"destination_list_id"`
}

// Create handles talk creation requests.
func (h *TalkHandler) Create(w http.ResponseWriter, r *http.Request) {
	accountID := middleware.GetAccountIDFromContext(r.Context())
	listSlug := chi.URLParam(r, "slug")

	var req CreateTalkRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}

	talk, err := h.TalkService.Create(r.Context(), accountID, listSlug, req.Name, req.Host, req.When, req.Room)
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(toTalkResponse(talk))
}

// Detail responds with one talk, its derived overall rating, and the lists
// it could be moved to.
func (h *TalkHandler) Detail(w http.ResponseWriter, r *http.Request) {
	accountID := middleware.GetAccountIDFromContext(r.Context())
	listSlug := chi.URLParam(r, "slug")
	talkID := chi.URLParam(r, "talkID")

	talk, err := h.TalkService.Get(r.Context(), accountID, listSlug, talkID)
	if err != nil {
		writeError(w, err)
		return
	}

	candidates, err := h.TalkService.ReassignableLists(r.Context(), accountID, listSlug, talkID)
	if err != nil {
		writeError(w, err)
		return
	}
	if candidates == nil {
		candidates = []models.TalkList{}
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]any{
		"talk":               toTalkResponse(talk),
		"reassignable_lists": candidates,
	})
}

// Rate handles rating requests for a talk.
func (h *TalkHandler) Rate(w http.ResponseWriter, r *http.Request) {
	accountID := middleware.GetAccountIDFromContext(r.Context())
	listSlug := chi.URLParam(r, "slug")
	talkID := chi.URLParam(r, "talkID")

	var req RatingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}

	talk, err := h.TalkService.Rate(r.Context(), accountID, listSlug, talkID, req.TalkRating, req.SpeakerRating)
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(toTalkResponse(talk))
}

// SetNotes handles requests that replace a talk's notes. The rendered HTML
// comes back in the response but is never accepted from the client.
func (h *TalkHandler) SetNotes(w http.ResponseWriter, r *http.Request) {
	accountID := middleware.GetAccountIDFromContext(r.Context())
	listSlug := chi.URLParam(r, "slug")
	talkID := chi.URLParam(r, "talkID")

	var req NotesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}

	talk, err := h.TalkService.SetNotes(r.Context(), accountID, listSlug, talkID, req.Notes)
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(toTalkResponse(talk))
}

// Move handles requests that reassign a talk to another of the caller's
// lists.
func (h *TalkHandler) Move(w http.ResponseWriter, r *http.Request) {
	accountID := middleware.GetAccountIDFromContext(r.Context())
	listSlug := chi.URLParam(r, "slug")
	talkID := chi.URLParam(r, "talkID")

	var req MoveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}

	talk, err := h.TalkService.Move(r.Context(), accountID, listSlug, talkID, req.DestinationListID)
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(toTalkResponse(talk))
}

// Delete handles talk removal. Deletion is immediate and unrecoverable.
func (h *TalkHandler) Delete(w http.ResponseWriter, r *http.Request) {
	accountID := middleware.GetAccountIDFromContext(r.Context())
	listSlug := chi.URLParam(r, "slug")
	talkID := chi.URLParam(r, "talkID")

	if err := h.TalkService.Delete(r.Context(), accountID, listSlug, talkID); err != nil {
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
