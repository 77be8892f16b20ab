package domain

import (
	"time"

	"github.com/google/uuid"
)

// Entry is a single journal entry owned by exactly one user.
//
// Mood and MoodNote are optional; a nil pointer means the field is absent.
// They are never stored as empty strings — blank input collapses to nil.
// MoodRating is reserved: it is carried through storage and responses but
// no create or update path writes it.
type Entry struct {
	ID         uuid.UUID
	UserID     string
	Content    string
	MoodRating *int
	Mood       *string
	MoodNote   *string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// EntryFilter contains filtering and pagination parameters for entry listings.
// From/To bound CreatedAt inclusively; both must be set for the range to apply.
type EntryFilter struct {
	From   *time.Time
	To     *time.Time
	Limit  int
	Offset int
}

// HasRange reports whether both time bounds are present.
func (f EntryFilter) HasRange() bool {
	return f.From != nil && f.To != nil
}
