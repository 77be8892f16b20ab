// Package entry implements the journal entry store using PostgreSQL.
// Fixed-shape queries use raw SQL constants; the paginated listing is
// built dynamically with squirrel.
package entry

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	postgres "github.com/openjournal/journal-backend/internal/adapter/postgres"
	"github.com/openjournal/journal-backend/internal/domain"
)

const table = "journal_entries"

const entryColumns = "id, user_id, content, mood_rating, mood, mood_note, created_at, updated_at"

// Repo provides journal entry persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new journal entry repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

var builder = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// ---------------------------------------------------------------------------
// Writes
// ---------------------------------------------------------------------------

const createSQL = `
INSERT INTO journal_entries (id, user_id, content, mood_rating, mood, mood_note, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
RETURNING ` + entryColumns

// Create inserts a new entry and returns the persisted row.
func (r *Repo) Create(ctx context.Context, e *domain.Entry) (*domain.Entry, error) {
	row := r.db.QueryRow(ctx, createSQL,
		e.ID, e.UserID, e.Content, e.MoodRating, e.Mood, e.MoodNote, e.CreatedAt, e.UpdatedAt,
	)

	created, err := scanEntry(row)
	if err != nil {
		return nil, postgres.MapError(err, "journal_entry", e.ID.String())
	}
	return created, nil
}

const updateSQL = `
UPDATE journal_entries
SET content = $3, mood = $4, mood_note = $5, updated_at = $6
WHERE user_id = $1 AND id = $2
RETURNING ` + entryColumns

// Update replaces content and mood fields in a single write, owner-scoped.
// Returns domain.ErrNotFound when the entry does not exist for this user.
func (r *Repo) Update(ctx context.Context, e *domain.Entry) (*domain.Entry, error) {
	row := r.db.QueryRow(ctx, updateSQL,
		e.UserID, e.ID, e.Content, e.Mood, e.MoodNote, e.UpdatedAt,
	)

	updated, err := scanEntry(row)
	if err != nil {
		return nil, postgres.MapError(err, "journal_entry", e.ID.String())
	}
	return updated, nil
}

const deleteSQL = `DELETE FROM journal_entries WHERE user_id = $1 AND id = $2`

// Delete permanently removes one entry, owner-scoped.
func (r *Repo) Delete(ctx context.Context, userID string, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, deleteSQL, userID, id)
	if err != nil {
		return postgres.MapError(err, "journal_entry", id.String())
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("journal_entry %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

const deleteByUserSQL = `DELETE FROM journal_entries WHERE user_id = $1`

// DeleteByUser removes every entry owned by userID. Zero matches is not an error.
func (r *Repo) DeleteByUser(ctx context.Context, userID string) error {
	if _, err := r.db.Exec(ctx, deleteByUserSQL, userID); err != nil {
		return postgres.MapError(err, "journal_entry", userID)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Reads
// ---------------------------------------------------------------------------

const getByIDSQL = `
SELECT ` + entryColumns + `
FROM journal_entries
WHERE user_id = $1 AND id = $2`

// GetByID returns one entry, owner-scoped. An entry owned by another user is
// indistinguishable from a missing one.
func (r *Repo) GetByID(ctx context.Context, userID string, id uuid.UUID) (*domain.Entry, error) {
	row := r.db.QueryRow(ctx, getByIDSQL, userID, id)

	e, err := scanEntry(row)
	if err != nil {
		return nil, postgres.MapError(err, "journal_entry", id.String())
	}
	return e, nil
}

// Find returns a page of entries ordered by created_at DESC plus the total
// count matching the filter. From/To bounds apply only when both are set.
func (r *Repo) Find(ctx context.Context, userID string, filter domain.EntryFilter) ([]domain.Entry, int, error) {
	where := sq.And{sq.Eq{"user_id": userID}}
	if filter.HasRange() {
		where = append(where,
			sq.GtOrEq{"created_at": *filter.From},
			sq.LtOrEq{"created_at": *filter.To},
		)
	}

	countSQL, countArgs, err := builder.Select("count(*)").From(table).Where(where).ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build count query: %w", err)
	}

	var total int
	if err := r.db.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, 0, postgres.MapError(err, "journal_entry", userID)
	}

	query := builder.Select(entryColumns).
		From(table).
		Where(where).
		OrderBy("created_at DESC", "id DESC").
		Limit(uint64(filter.Limit)).
		Offset(uint64(filter.Offset))

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build find query: %w", err)
	}

	rows, err := r.db.Query(ctx, sqlStr, args...)
	if err != nil {
		return nil, 0, postgres.MapError(err, "journal_entry", userID)
	}
	defer rows.Close()

	entries, err := scanEntries(rows)
	if err != nil {
		return nil, 0, postgres.MapError(err, "journal_entry", userID)
	}
	return entries, total, nil
}

const findRecentSQL = `
SELECT ` + entryColumns + `
FROM journal_entries
WHERE user_id = $1
ORDER BY created_at DESC, id DESC
LIMIT $2`

// FindRecent returns the most recent entries for userID, newest first.
func (r *Repo) FindRecent(ctx context.Context, userID string, limit int) ([]domain.Entry, error) {
	rows, err := r.db.Query(ctx, findRecentSQL, userID, limit)
	if err != nil {
		return nil, postgres.MapError(err, "journal_entry", userID)
	}
	defer rows.Close()

	entries, err := scanEntries(rows)
	if err != nil {
		return nil, postgres.MapError(err, "journal_entry", userID)
	}
	return entries, nil
}

const findSinceSQL = `
SELECT ` + entryColumns + `
FROM journal_entries
WHERE user_id = $1 AND created_at > $2
ORDER BY created_at DESC, id DESC`

// FindSince returns all entries created after the given instant, newest first.
// Used by the streak computation over its bounded window.
func (r *Repo) FindSince(ctx context.Context, userID string, since time.Time) ([]domain.Entry, error) {
	rows, err := r.db.Query(ctx, findSinceSQL, userID, since)
	if err != nil {
		return nil, postgres.MapError(err, "journal_entry", userID)
	}
	defer rows.Close()

	entries, err := scanEntries(rows)
	if err != nil {
		return nil, postgres.MapError(err, "journal_entry", userID)
	}
	return entries, nil
}

// ---------------------------------------------------------------------------
// Scanning
// ---------------------------------------------------------------------------

func scanEntry(row pgx.Row) (*domain.Entry, error) {
	var e domain.Entry
	err := row.Scan(
		&e.ID, &e.UserID, &e.Content, &e.MoodRating, &e.Mood, &e.MoodNote, &e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func scanEntries(rows pgx.Rows) ([]domain.Entry, error) {
	var entries []domain.Entry
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, *e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return entries, nil
}
