package journal

import (
	"context"
	"time"

	"github.com/openjournal/journal-backend/internal/domain"
)

// Page is one page of a user's entries, newest first, with the normalized
// paging parameters that produced it.
type Page struct {
	Entries    []domain.Entry
	Page       int
	Size       int
	TotalItems int
}

// List returns one page of the user's entries. page below zero is treated
// as zero; size is clamped to [1, MaxRecentLimit] with the configured
// default for non-positive values.
func (s *Service) List(ctx context.Context, userID string, page, size int) (*Page, error) {
	if userID == "" {
		return nil, domain.ErrUnauthorized
	}

	page, size = s.normalizePage(page, size)
	entries, total, err := s.entries.Find(ctx, userID, domain.EntryFilter{
		Limit:  size,
		Offset: page * size,
	})
	if err != nil {
		return nil, err
	}
	return &Page{Entries: entries, Page: page, Size: size, TotalItems: total}, nil
}

// ListRange behaves like List, filtered to entries with createdAt within
// [from, to] inclusive.
func (s *Service) ListRange(ctx context.Context, userID string, from, to time.Time, page, size int) (*Page, error) {
	if userID == "" {
		return nil, domain.ErrUnauthorized
	}

	page, size = s.normalizePage(page, size)
	entries, total, err := s.entries.Find(ctx, userID, domain.EntryFilter{
		From:   &from,
		To:     &to,
		Limit:  size,
		Offset: page * size,
	})
	if err != nil {
		return nil, err
	}
	return &Page{Entries: entries, Page: page, Size: size, TotalItems: total}, nil
}

func (s *Service) normalizePage(page, size int) (int, int) {
	if page < 0 {
		page = 0
	}
	size = clampLimit(size, s.cfg.MaxRecentLimit, s.cfg.DefaultPageSize)
	return page, size
}
