package journal

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/openjournal/journal-backend/internal/domain"
)

// Delete permanently removes one entry, owner-scoped.
func (s *Service) Delete(ctx context.Context, userID string, id uuid.UUID) error {
	if userID == "" {
		return domain.ErrUnauthorized
	}

	return s.entries.Delete(ctx, userID, id)
}

// DeleteAll permanently removes every entry the user owns. Zero matches is
// success; this is the account-data-erasure primitive.
func (s *Service) DeleteAll(ctx context.Context, userID string) error {
	if userID == "" {
		return domain.ErrUnauthorized
	}

	if err := s.entries.DeleteByUser(ctx, userID); err != nil {
		return fmt.Errorf("delete all entries: %w", err)
	}
	return nil
}
