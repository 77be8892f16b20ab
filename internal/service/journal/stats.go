package journal

import (
	"context"
	"fmt"
	"time"

	"github.com/openjournal/journal-backend/internal/domain"
)

// StreakResult holds the derived journaling statistics.
type StreakResult struct {
	Streak          int
	EntriesThisWeek int
}

// Streak computes the user's current streak and weekly entry count.
//
// The streak counts consecutive UTC calendar days with at least one entry,
// walking backward from today. A day without an entry ends the walk, and no
// entry today means streak zero no matter what came before. Entries are
// fetched from a bounded window of StreakWindowDays (default 400). Nothing
// is persisted; every call recomputes.
func (s *Service) Streak(ctx context.Context, userID string) (StreakResult, error) {
	if userID == "" {
		return StreakResult{}, domain.ErrUnauthorized
	}

	now := time.Now().UTC()
	since := now.AddDate(0, 0, -s.cfg.StreakWindowDays)

	entries, err := s.entries.FindSince(ctx, userID, since)
	if err != nil {
		return StreakResult{}, fmt.Errorf("load entries for streak: %w", err)
	}

	// Multiple entries on one date count once.
	days := make(map[time.Time]struct{}, len(entries))
	for _, e := range entries {
		days[utcDate(e.CreatedAt)] = struct{}{}
	}

	streak := 0
	for day := utcDate(now); ; day = day.AddDate(0, 0, -1) {
		if _, ok := days[day]; !ok {
			break
		}
		streak++
	}

	weekAgo := now.Add(-7 * 24 * time.Hour)
	entriesThisWeek := 0
	for _, e := range entries {
		if !e.CreatedAt.Before(weekAgo) {
			entriesThisWeek++
		}
	}

	return StreakResult{Streak: streak, EntriesThisWeek: entriesThisWeek}, nil
}

// utcDate truncates a timestamp to its UTC calendar date.
func utcDate(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
