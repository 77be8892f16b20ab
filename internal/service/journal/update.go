package journal

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/openjournal/journal-backend/internal/domain"
)

// Update replaces the entry's content and applies the three-way mood
// contract: nil leaves a field untouched, blank clears it, non-blank
// replaces it. Content, mood fields and the refreshed UpdatedAt land in a
// single storage write. Owner-scoped: someone else's entry is ErrNotFound.
func (s *Service) Update(ctx context.Context, userID string, id uuid.UUID, input UpdateInput) (*domain.Entry, error) {
	if userID == "" {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(s.cfg); err != nil {
		return nil, err
	}

	entry, err := s.entries.GetByID(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	entry.Content = strings.TrimSpace(input.Content)
	if input.Mood != nil {
		entry.Mood = normalizeOptional(input.Mood)
	}
	if input.MoodNote != nil {
		entry.MoodNote = normalizeOptional(input.MoodNote)
	}
	entry.UpdatedAt = time.Now().UTC()

	updated, err := s.entries.Update(ctx, entry)
	if err != nil {
		return nil, fmt.Errorf("update entry: %w", err)
	}

	return updated, nil
}
