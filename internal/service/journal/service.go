// Package journal implements the journal entry lifecycle: create, read,
// update, delete, and the streak/weekly-count statistics.
package journal

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/openjournal/journal-backend/internal/config"
	"github.com/openjournal/journal-backend/internal/domain"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type entryRepo interface {
	Create(ctx context.Context, e *domain.Entry) (*domain.Entry, error)
	GetByID(ctx context.Context, userID string, id uuid.UUID) (*domain.Entry, error)
	Find(ctx context.Context, userID string, filter domain.EntryFilter) ([]domain.Entry, int, error)
	FindRecent(ctx context.Context, userID string, limit int) ([]domain.Entry, error)
	FindSince(ctx context.Context, userID string, since time.Time) ([]domain.Entry, error)
	Update(ctx context.Context, e *domain.Entry) (*domain.Entry, error)
	Delete(ctx context.Context, userID string, id uuid.UUID) error
	DeleteByUser(ctx context.Context, userID string) error
}

// eventPublisher delivers best-effort notifications. Errors are advisory:
// the triggering operation has already succeeded when publish runs.
type eventPublisher interface {
	PublishEntryCreated(ctx context.Context, entryID uuid.UUID, userID, content string, createdAt time.Time) error
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Service implements the journal business logic. Caller identity is always
// an explicit argument; the service never reads it from ambient context.
type Service struct {
	log     *slog.Logger
	entries entryRepo
	events  eventPublisher
	cfg     config.JournalConfig
}

// NewService creates a new journal service.
func NewService(logger *slog.Logger, entries entryRepo, events eventPublisher, cfg config.JournalConfig) *Service {
	return &Service{
		log:     logger.With("service", "journal"),
		entries: entries,
		events:  events,
		cfg:     cfg,
	}
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

// clampLimit ensures a limit is within [1, max], defaulting from <=0 to defaultVal.
func clampLimit(limit, max, defaultVal int) int {
	if limit <= 0 {
		return defaultVal
	}
	if limit > max {
		return max
	}
	return limit
}
