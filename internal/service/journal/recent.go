package journal

import (
	"context"

	"github.com/openjournal/journal-backend/internal/domain"
)

// defaultRecentLimit applies when the caller supplies no limit.
const defaultRecentLimit = 10

// Recent returns the user's newest entries. The limit is clamped to
// MaxRecentLimit regardless of caller input to bound result size.
func (s *Service) Recent(ctx context.Context, userID string, limit int) ([]domain.Entry, error) {
	if userID == "" {
		return nil, domain.ErrUnauthorized
	}

	limit = clampLimit(limit, s.cfg.MaxRecentLimit, defaultRecentLimit)
	return s.entries.FindRecent(ctx, userID, limit)
}
