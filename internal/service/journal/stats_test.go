package journal

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openjournal/journal-backend/internal/domain"
)

// entryAt builds an entry created at the given instant.
func entryAt(userID string, createdAt time.Time) domain.Entry {
	return domain.Entry{
		ID:        uuid.New(),
		UserID:    userID,
		Content:   "entry",
		CreatedAt: createdAt,
		UpdatedAt: createdAt,
	}
}

// daysAgo returns noon UTC n calendar days before today, keeping fixtures
// clear of midnight boundaries.
func daysAgo(n int) time.Time {
	return utcDate(time.Now().UTC()).AddDate(0, 0, -n).Add(12 * time.Hour)
}

func streakService(entries []domain.Entry) *Service {
	repo := &mockEntryRepo{
		FindSinceFunc: func(ctx context.Context, userID string, since time.Time) ([]domain.Entry, error) {
			var within []domain.Entry
			for _, e := range entries {
				if e.CreatedAt.After(since) {
					within = append(within, e)
				}
			}
			return within, nil
		},
	}
	return newTestService(repo, nil)
}

func TestStreak_TodayAndYesterday(t *testing.T) {
	svc := streakService([]domain.Entry{
		entryAt("user-1", daysAgo(0)),
		entryAt("user-1", daysAgo(1)),
	})

	result, err := svc.Streak(context.Background(), "user-1")
	require.NoError(t, err)
	assert.Equal(t, 2, result.Streak)
}

func TestStreak_ZeroWithoutEntryToday(t *testing.T) {
	svc := streakService([]domain.Entry{
		entryAt("user-1", daysAgo(1)),
		entryAt("user-1", daysAgo(2)),
	})

	result, err := svc.Streak(context.Background(), "user-1")
	require.NoError(t, err)
	assert.Equal(t, 0, result.Streak, "streak must include today")
}

func TestStreak_StopsAtFirstGap(t *testing.T) {
	svc := streakService([]domain.Entry{
		entryAt("user-1", daysAgo(0)),
		entryAt("user-1", daysAgo(1)),
		entryAt("user-1", daysAgo(2)),
		// gap at daysAgo(3)
		entryAt("user-1", daysAgo(4)),
		entryAt("user-1", daysAgo(5)),
	})

	result, err := svc.Streak(context.Background(), "user-1")
	require.NoError(t, err)
	assert.Equal(t, 3, result.Streak)
}

func TestStreak_MultipleEntriesPerDayCountOnce(t *testing.T) {
	today := daysAgo(0)
	svc := streakService([]domain.Entry{
		entryAt("user-1", today),
		entryAt("user-1", today.Add(time.Hour)),
		entryAt("user-1", today.Add(2*time.Hour)),
	})

	result, err := svc.Streak(context.Background(), "user-1")
	require.NoError(t, err)
	assert.Equal(t, 1, result.Streak)
}

func TestStreak_NoEntries(t *testing.T) {
	svc := streakService(nil)

	result, err := svc.Streak(context.Background(), "user-1")
	require.NoError(t, err)
	assert.Zero(t, result.Streak)
	assert.Zero(t, result.EntriesThisWeek)
}

func TestStreak_WeeklyCountIgnoresOlderEntries(t *testing.T) {
	var entries []domain.Entry
	// 5 entries within the last 7 days, two sharing a date.
	for _, n := range []int{0, 1, 2, 2, 3} {
		entries = append(entries, entryAt("user-1", daysAgo(n)))
	}
	// 3 entries older than 7 days but inside the 400-day window.
	for _, n := range []int{10, 30, 200} {
		entries = append(entries, entryAt("user-1", daysAgo(n)))
	}
	svc := streakService(entries)

	result, err := svc.Streak(context.Background(), "user-1")
	require.NoError(t, err)
	assert.Equal(t, 5, result.EntriesThisWeek, "weekly count counts entries, not distinct dates")
}

func TestStreak_WindowBoundsQuery(t *testing.T) {
	var gotSince time.Time
	repo := &mockEntryRepo{
		FindSinceFunc: func(ctx context.Context, userID string, since time.Time) ([]domain.Entry, error) {
			gotSince = since
			return nil, nil
		},
	}
	svc := newTestService(repo, nil)

	_, err := svc.Streak(context.Background(), "user-1")
	require.NoError(t, err)

	expected := time.Now().UTC().AddDate(0, 0, -400)
	assert.WithinDuration(t, expected, gotSince, time.Minute)
}
