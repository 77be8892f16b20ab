package entry_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openjournal/journal-backend/internal/adapter/postgres/entry"
	"github.com/openjournal/journal-backend/internal/adapter/postgres/testhelper"
	"github.com/openjournal/journal-backend/internal/domain"
)

// newRepo sets up a test DB and returns a ready Repo.
func newRepo(t *testing.T) *entry.Repo {
	t.Helper()
	pool := testhelper.SetupTestDB(t)
	return entry.New(pool)
}

// buildEntry creates a domain.Entry suitable for Create.
func buildEntry(userID, content string, createdAt time.Time) *domain.Entry {
	createdAt = createdAt.UTC().Truncate(time.Microsecond)
	return &domain.Entry{
		ID:        uuid.New(),
		UserID:    userID,
		Content:   content,
		CreatedAt: createdAt,
		UpdatedAt: createdAt,
	}
}

func strPtr(s string) *string { return &s }

// uniqueUser returns a user id no other test shares, so tests can run
// against the shared container without cross-talk.
func uniqueUser(prefix string) string {
	return prefix + "-" + uuid.NewString()
}

func TestRepo_CreateAndGetByID(t *testing.T) {
	repo := newRepo(t)
	ctx := context.Background()
	userID := uniqueUser("create")

	e := buildEntry(userID, "first entry", time.Now())
	e.Mood = strPtr("calm")
	e.MoodNote = strPtr("slow morning")

	created, err := repo.Create(ctx, e)
	require.NoError(t, err)
	assert.Equal(t, e.ID, created.ID)
	assert.Equal(t, userID, created.UserID)
	assert.Nil(t, created.MoodRating)

	got, err := repo.GetByID(ctx, userID, e.ID)
	require.NoError(t, err)
	assert.Equal(t, "first entry", got.Content)
	require.NotNil(t, got.Mood)
	assert.Equal(t, "calm", *got.Mood)
	require.NotNil(t, got.MoodNote)
	assert.Equal(t, "slow morning", *got.MoodNote)
	assert.True(t, got.CreatedAt.Equal(e.CreatedAt))
	assert.True(t, got.UpdatedAt.Equal(e.UpdatedAt))
}

func TestRepo_GetByID_OtherOwnerLooksMissing(t *testing.T) {
	repo := newRepo(t)
	ctx := context.Background()
	owner := uniqueUser("owner")
	stranger := uniqueUser("stranger")

	e := buildEntry(owner, "private", time.Now())
	_, err := repo.Create(ctx, e)
	require.NoError(t, err)

	_, err = repo.GetByID(ctx, stranger, e.ID)
	assert.True(t, errors.Is(err, domain.ErrNotFound))

	_, err = repo.GetByID(ctx, owner, uuid.New())
	assert.True(t, errors.Is(err, domain.ErrNotFound))
}

func TestRepo_Find_OrderingAndPagination(t *testing.T) {
	repo := newRepo(t)
	ctx := context.Background()
	userID := uniqueUser("find")

	base := time.Now().Add(-time.Hour)
	for i := 0; i < 5; i++ {
		e := buildEntry(userID, fmt.Sprintf("entry %d", i), base.Add(time.Duration(i)*time.Minute))
		_, err := repo.Create(ctx, e)
		require.NoError(t, err)
	}

	page1, total, err := repo.Find(ctx, userID, domain.EntryFilter{Limit: 2, Offset: 0})
	require.NoError(t, err)
	assert.Equal(t, 5, total)
	require.Len(t, page1, 2)
	assert.Equal(t, "entry 4", page1[0].Content)
	assert.Equal(t, "entry 3", page1[1].Content)

	page3, total, err := repo.Find(ctx, userID, domain.EntryFilter{Limit: 2, Offset: 4})
	require.NoError(t, err)
	assert.Equal(t, 5, total)
	require.Len(t, page3, 1)
	assert.Equal(t, "entry 0", page3[0].Content)
}

func TestRepo_Find_RangeInclusive(t *testing.T) {
	repo := newRepo(t)
	ctx := context.Background()
	userID := uniqueUser("range")

	base := time.Now().Add(-24 * time.Hour).UTC().Truncate(time.Microsecond)
	times := []time.Time{base, base.Add(time.Hour), base.Add(2 * time.Hour)}
	for i, ts := range times {
		_, err := repo.Create(ctx, buildEntry(userID, fmt.Sprintf("entry %d", i), ts))
		require.NoError(t, err)
	}

	from := times[0]
	to := times[1]
	entries, total, err := repo.Find(ctx, userID, domain.EntryFilter{
		From: &from, To: &to, Limit: 10, Offset: 0,
	})
	require.NoError(t, err)
	assert.Equal(t, 2, total)
	require.Len(t, entries, 2)
	// Bounds are inclusive: both boundary entries present, newest first.
	assert.Equal(t, "entry 1", entries[0].Content)
	assert.Equal(t, "entry 0", entries[1].Content)
}

func TestRepo_FindRecent_Limit(t *testing.T) {
	repo := newRepo(t)
	ctx := context.Background()
	userID := uniqueUser("recent")

	base := time.Now().Add(-time.Hour)
	for i := 0; i < 4; i++ {
		_, err := repo.Create(ctx, buildEntry(userID, fmt.Sprintf("entry %d", i), base.Add(time.Duration(i)*time.Minute)))
		require.NoError(t, err)
	}

	entries, err := repo.FindRecent(ctx, userID, 3)
	require.NoError(t, err)
	require.Len(t, entries, 3)
	assert.Equal(t, "entry 3", entries[0].Content)
}

func TestRepo_FindSince(t *testing.T) {
	repo := newRepo(t)
	ctx := context.Background()
	userID := uniqueUser("since")

	now := time.Now().UTC().Truncate(time.Microsecond)
	_, err := repo.Create(ctx, buildEntry(userID, "old", now.Add(-48*time.Hour)))
	require.NoError(t, err)
	_, err = repo.Create(ctx, buildEntry(userID, "new", now))
	require.NoError(t, err)

	entries, err := repo.FindSince(ctx, userID, now.Add(-24*time.Hour))
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "new", entries[0].Content)
}

func TestRepo_Update(t *testing.T) {
	repo := newRepo(t)
	ctx := context.Background()
	userID := uniqueUser("update")

	e := buildEntry(userID, "before", time.Now())
	e.Mood = strPtr("tired")
	created, err := repo.Create(ctx, e)
	require.NoError(t, err)

	created.Content = "after"
	created.Mood = nil
	created.MoodNote = strPtr("cleared mood, added note")
	created.UpdatedAt = time.Now().UTC().Truncate(time.Microsecond)

	updated, err := repo.Update(ctx, created)
	require.NoError(t, err)
	assert.Equal(t, "after", updated.Content)
	assert.Nil(t, updated.Mood)
	require.NotNil(t, updated.MoodNote)
	assert.True(t, updated.CreatedAt.Equal(e.CreatedAt))
	assert.True(t, updated.UpdatedAt.After(updated.CreatedAt))
}

func TestRepo_Update_OtherOwnerLooksMissing(t *testing.T) {
	repo := newRepo(t)
	ctx := context.Background()

	e := buildEntry(uniqueUser("owner"), "private", time.Now())
	_, err := repo.Create(ctx, e)
	require.NoError(t, err)

	e.UserID = uniqueUser("stranger")
	e.Content = "hijacked"
	_, err = repo.Update(ctx, e)
	assert.True(t, errors.Is(err, domain.ErrNotFound))
}

func TestRepo_Delete(t *testing.T) {
	repo := newRepo(t)
	ctx := context.Background()
	userID := uniqueUser("delete")

	e := buildEntry(userID, "doomed", time.Now())
	_, err := repo.Create(ctx, e)
	require.NoError(t, err)

	require.NoError(t, repo.Delete(ctx, userID, e.ID))

	_, err = repo.GetByID(ctx, userID, e.ID)
	assert.True(t, errors.Is(err, domain.ErrNotFound))

	err = repo.Delete(ctx, userID, e.ID)
	assert.True(t, errors.Is(err, domain.ErrNotFound))
}

func TestRepo_DeleteByUser_DoesNotTouchOthers(t *testing.T) {
	repo := newRepo(t)
	ctx := context.Background()
	userA := uniqueUser("user-a")
	userB := uniqueUser("user-b")

	for i := 0; i < 3; i++ {
		_, err := repo.Create(ctx, buildEntry(userA, "a", time.Now().Add(time.Duration(i)*time.Second)))
		require.NoError(t, err)
	}
	bEntry := buildEntry(userB, "b", time.Now())
	_, err := repo.Create(ctx, bEntry)
	require.NoError(t, err)

	require.NoError(t, repo.DeleteByUser(ctx, userA))
	// Idempotent on zero matches.
	require.NoError(t, repo.DeleteByUser(ctx, userA))

	_, total, err := repo.Find(ctx, userA, domain.EntryFilter{Limit: 10})
	require.NoError(t, err)
	assert.Zero(t, total)

	got, err := repo.GetByID(ctx, userB, bEntry.ID)
	require.NoError(t, err)
	assert.Equal(t, "b", got.Content)
}
