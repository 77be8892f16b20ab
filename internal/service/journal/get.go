package journal

import (
	"context"

	"github.com/google/uuid"

	"github.com/openjournal/journal-backend/internal/domain"
)

// Get returns one entry by id, owner-scoped. An entry owned by a different
// user fails with the same domain.ErrNotFound as a missing one.
func (s *Service) Get(ctx context.Context, userID string, id uuid.UUID) (*domain.Entry, error) {
	if userID == "" {
		return nil, domain.ErrUnauthorized
	}

	return s.entries.GetByID(ctx, userID, id)
}
