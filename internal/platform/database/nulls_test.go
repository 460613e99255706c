package database

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestNullString(t *testing.T) {
	assert.False(t, NullString("").Valid)
	assert.Equal(t, "x", NullString("x").String)
}

func TestNullFloatRoundTrip(t *testing.T) {
	assert.Nil(t, FloatPtr(NullFloat(nil)))

	v := 12.5
	got := FloatPtr(NullFloat(&v))
	if assert.NotNil(t, got) {
		assert.Equal(t, 12.5, *got)
	}
}

func TestIsUniqueViolation(t *testing.T) {
	wrapped := fmt.Errorf("insert user: %w", &pgconn.PgError{Code: "23505"})
	assert.True(t, IsUniqueViolation(wrapped))
	assert.False(t, IsUniqueViolation(&pgconn.PgError{Code: "23503"}))
	assert.False(t, IsUniqueViolation(errors.New("boom")))
}
