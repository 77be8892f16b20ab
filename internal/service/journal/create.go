package journal

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/openjournal/journal-backend/internal/domain"
)

// Create validates and persists a new entry for userID, then publishes an
// entry.created event. The publish is best effort: the entry is committed
// before the publish runs and a failed publish never fails the create.
func (s *Service) Create(ctx context.Context, userID string, input CreateInput) (*domain.Entry, error) {
	if userID == "" {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(s.cfg); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	entry := &domain.Entry{
		ID:        uuid.New(),
		UserID:    userID,
		Content:   strings.TrimSpace(input.Content),
		Mood:      normalizeOptional(input.Mood),
		MoodNote:  normalizeOptional(input.MoodNote),
		CreatedAt: now,
		UpdatedAt: now,
	}

	created, err := s.entries.Create(ctx, entry)
	if err != nil {
		return nil, fmt.Errorf("create entry: %w", err)
	}

	if err := s.events.PublishEntryCreated(ctx, created.ID, created.UserID, created.Content, created.CreatedAt); err != nil {
		s.log.WarnContext(ctx, "failed to publish entry.created event, entry saved",
			slog.String("entry_id", created.ID.String()),
			slog.String("error", err.Error()),
		)
	}

	return created, nil
}
