package journal

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/openjournal/journal-backend/internal/config"
	"github.com/openjournal/journal-backend/internal/domain"
)

// CreateInput holds the parameters for creating a journal entry.
// Mood and MoodNote are optional; blank values are treated as absent.
type CreateInput struct {
	Content  string
	Mood     *string
	MoodNote *string
}

// Validate checks all fields against the configured limits and collects all errors.
// Length checks apply to trimmed values, matching what gets stored.
func (i CreateInput) Validate(cfg config.JournalConfig) error {
	var errs []domain.FieldError

	content := strings.TrimSpace(i.Content)
	if content == "" {
		errs = append(errs, domain.FieldError{Field: "content", Message: "required"})
	} else if len(content) > cfg.MaxContentBytes {
		errs = append(errs, domain.FieldError{Field: "content", Message: tooLong(cfg.MaxContentBytes)})
	}

	if i.Mood != nil && utf8.RuneCountInString(strings.TrimSpace(*i.Mood)) > cfg.MaxMoodLen {
		errs = append(errs, domain.FieldError{Field: "mood", Message: tooLong(cfg.MaxMoodLen)})
	}
	if i.MoodNote != nil && utf8.RuneCountInString(strings.TrimSpace(*i.MoodNote)) > cfg.MaxMoodNoteLen {
		errs = append(errs, domain.FieldError{Field: "mood_note", Message: tooLong(cfg.MaxMoodNoteLen)})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// UpdateInput holds the parameters for updating a journal entry.
//
// Content is required and always replaces the stored value. Mood and
// MoodNote follow a three-way contract: a nil pointer leaves the stored
// value untouched, a present-but-blank value clears it, and a present
// non-blank value replaces it (trimmed).
type UpdateInput struct {
	Content  string
	Mood     *string
	MoodNote *string
}

// Validate checks all fields against the configured limits and collects all errors.
func (i UpdateInput) Validate(cfg config.JournalConfig) error {
	return CreateInput(i).Validate(cfg)
}

func tooLong(max int) string {
	return "too long (max " + strconv.Itoa(max) + ")"
}

// normalizeOptional trims an optional field and collapses blank to absent.
func normalizeOptional(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
