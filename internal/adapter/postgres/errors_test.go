package postgres

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"

	"github.com/openjournal/journal-backend/internal/domain"
)

func TestMapError_Nil(t *testing.T) {
	assert.NoError(t, MapError(nil, "journal_entry", "id"))
}

func TestMapError_NoRows(t *testing.T) {
	err := MapError(pgx.ErrNoRows, "journal_entry", "abc")
	assert.True(t, errors.Is(err, domain.ErrNotFound))
	assert.Contains(t, err.Error(), "journal_entry abc")
}

func TestMapError_ContextErrorsPassThrough(t *testing.T) {
	err := MapError(context.DeadlineExceeded, "journal_entry", "abc")
	assert.True(t, errors.Is(err, context.DeadlineExceeded))
	assert.False(t, errors.Is(err, domain.ErrNotFound))

	err = MapError(context.Canceled, "journal_entry", "abc")
	assert.True(t, errors.Is(err, context.Canceled))
}

func TestMapError_PgCodes(t *testing.T) {
	unique := &pgconn.PgError{Code: "23505"}
	assert.True(t, errors.Is(MapError(unique, "journal_entry", "x"), domain.ErrAlreadyExists))

	check := &pgconn.PgError{Code: "23514"}
	assert.True(t, errors.Is(MapError(check, "journal_entry", "x"), domain.ErrValidation))
}

func TestMapError_UnknownWrapped(t *testing.T) {
	orig := errors.New("connection refused")
	err := MapError(orig, "journal_entry", "x")
	assert.True(t, errors.Is(err, orig))
	assert.False(t, errors.Is(err, domain.ErrNotFound))
}
