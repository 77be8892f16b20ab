package rest

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/openjournal/journal-backend/internal/domain"
	"github.com/openjournal/journal-backend/internal/service/journal"
	"github.com/openjournal/journal-backend/pkg/ctxutil"
)

// journalService defines the minimal interface needed by EntryHandler.
type journalService interface {
	Create(ctx context.Context, userID string, input journal.CreateInput) (*domain.Entry, error)
	Get(ctx context.Context, userID string, id uuid.UUID) (*domain.Entry, error)
	List(ctx context.Context, userID string, page, size int) (*journal.Page, error)
	ListRange(ctx context.Context, userID string, from, to time.Time, page, size int) (*journal.Page, error)
	Recent(ctx context.Context, userID string, limit int) ([]domain.Entry, error)
	Update(ctx context.Context, userID string, id uuid.UUID, input journal.UpdateInput) (*domain.Entry, error)
	Delete(ctx context.Context, userID string, id uuid.UUID) error
	DeleteAll(ctx context.Context, userID string) error
	Streak(ctx context.Context, userID string) (journal.StreakResult, error)
}

// EntryHandler serves journal entry REST endpoints.
type EntryHandler struct {
	svc journalService
	log *slog.Logger
}

// NewEntryHandler creates an EntryHandler.
func NewEntryHandler(svc journalService, logger *slog.Logger) *EntryHandler {
	return &EntryHandler{svc: svc, log: logger.With("handler", "entries")}
}

type createEntryRequest struct {
	Content  string  `json:"content"`
	Mood     *string `json:"mood"`
	MoodNote *string `json:"moodNote"`
}

type updateEntryRequest struct {
	Content  string  `json:"content"`
	Mood     *string `json:"mood"`
	MoodNote *string `json:"moodNote"`
}

type entryResponse struct {
	ID         string    `json:"id"`
	UserID     string    `json:"userId"`
	Content    string    `json:"content"`
	MoodRating *int      `json:"moodRating"`
	Mood       *string   `json:"mood"`
	MoodNote   *string   `json:"moodNote"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

type entryPageResponse struct {
	Entries    []entryResponse `json:"entries"`
	Page       int             `json:"page"`
	Size       int             `json:"size"`
	TotalItems int             `json:"totalItems"`
	TotalPages int             `json:"totalPages"`
}

type streakResponse struct {
	Streak          int `json:"streak"`
	EntriesThisWeek int `json:"entriesThisWeek"`
}

// Create handles POST /api/v1/entries.
func (h *EntryHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, _ := ctxutil.UserIDFromCtx(r.Context())

	var req createEntryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	entry, err := h.svc.Create(r.Context(), userID, journal.CreateInput{
		Content:  req.Content,
		Mood:     req.Mood,
		MoodNote: req.MoodNote,
	})
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, toEntryResponse(entry))
}

// Get handles GET /api/v1/entries/{id}.
func (h *EntryHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID, _ := ctxutil.UserIDFromCtx(r.Context())

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid entry id")
		return
	}

	entry, err := h.svc.Get(r.Context(), userID, id)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toEntryResponse(entry))
}

// List handles GET /api/v1/entries. When both from and to are present the
// listing is restricted to that range; a bound that is not RFC3339 is
// rejected with 400, a single bound is ignored.
func (h *EntryHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, _ := ctxutil.UserIDFromCtx(r.Context())

	page := queryInt(r, "page", 0)
	size := queryInt(r, "size", 0)

	from, fromOK, err := queryTime(r, "from")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid from parameter, expected RFC3339")
		return
	}
	to, toOK, err := queryTime(r, "to")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid to parameter, expected RFC3339")
		return
	}

	var result *journal.Page
	if fromOK && toOK {
		result, err = h.svc.ListRange(r.Context(), userID, from, to, page, size)
	} else {
		result, err = h.svc.List(r.Context(), userID, page, size)
	}
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toEntryPageResponse(result))
}

// Recent handles GET /api/v1/entries/recent.
func (h *EntryHandler) Recent(w http.ResponseWriter, r *http.Request) {
	userID, _ := ctxutil.UserIDFromCtx(r.Context())

	limit := queryInt(r, "limit", 0)

	entries, err := h.svc.Recent(r.Context(), userID, limit)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toEntryResponses(entries))
}

// Streak handles GET /api/v1/entries/streak.
func (h *EntryHandler) Streak(w http.ResponseWriter, r *http.Request) {
	userID, _ := ctxutil.UserIDFromCtx(r.Context())

	result, err := h.svc.Streak(r.Context(), userID)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, streakResponse{
		Streak:          result.Streak,
		EntriesThisWeek: result.EntriesThisWeek,
	})
}

// Update handles PUT /api/v1/entries/{id}.
func (h *EntryHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID, _ := ctxutil.UserIDFromCtx(r.Context())

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid entry id")
		return
	}

	var req updateEntryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	entry, err := h.svc.Update(r.Context(), userID, id, journal.UpdateInput{
		Content:  req.Content,
		Mood:     req.Mood,
		MoodNote: req.MoodNote,
	})
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toEntryResponse(entry))
}

// Delete handles DELETE /api/v1/entries/{id}.
func (h *EntryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, _ := ctxutil.UserIDFromCtx(r.Context())

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid entry id")
		return
	}

	if err := h.svc.Delete(r.Context(), userID, id); err != nil {
		h.handleError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// DeleteAll handles DELETE /api/v1/entries.
func (h *EntryHandler) DeleteAll(w http.ResponseWriter, r *http.Request) {
	userID, _ := ctxutil.UserIDFromCtx(r.Context())

	if err := h.svc.DeleteAll(r.Context(), userID); err != nil {
		h.handleError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *EntryHandler) handleError(w http.ResponseWriter, r *http.Request, err error) {
	var vErr *domain.ValidationError
	switch {
	case errors.As(err, &vErr):
		writeValidationError(w, vErr)
	case errors.Is(err, domain.ErrValidation):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, "entry not found")
	case errors.Is(err, domain.ErrUnauthorized):
		writeError(w, http.StatusUnauthorized, "unauthorized")
	default:
		h.log.ErrorContext(r.Context(), "internal error", slog.String("error", err.Error()))
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}

func toEntryResponse(e *domain.Entry) entryResponse {
	return entryResponse{
		ID:         e.ID.String(),
		UserID:     e.UserID,
		Content:    e.Content,
		MoodRating: e.MoodRating,
		Mood:       e.Mood,
		MoodNote:   e.MoodNote,
		CreatedAt:  e.CreatedAt,
		UpdatedAt:  e.UpdatedAt,
	}
}

func toEntryResponses(entries []domain.Entry) []entryResponse {
	out := make([]entryResponse, 0, len(entries))
	for i := range entries {
		out = append(out, toEntryResponse(&entries[i]))
	}
	return out
}

func toEntryPageResponse(p *journal.Page) entryPageResponse {
	totalPages := 0
	if p.Size > 0 {
		totalPages = (p.TotalItems + p.Size - 1) / p.Size
	}
	return entryPageResponse{
		Entries:    toEntryResponses(p.Entries),
		Page:       p.Page,
		Size:       p.Size,
		TotalItems: p.TotalItems,
		TotalPages: totalPages,
	}
}

func queryInt(r *http.Request, name string, def int) int {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return def
	}
	return v
}

func queryTime(r *http.Request, name string) (time.Time, bool, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return time.Time{}, false, nil
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}, false, fmt.Errorf("parse %s: %w", name, err)
	}
	return t, true, nil
}
