package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dErrors "oirla/pkg/domain-errors"
)

func validInput() *Input {
	return &Input{
		Title:     " Show en el Club ",
		Date:      "2025-03-14",
		Time:      "9:30",
		Venue:     "Club Atlético",
		EntryType: "gorra",
	}
}

func TestInputNormalizeAndValidate(t *testing.T) {
	t.Run("valid input is trimmed and clock padded", func(t *testing.T) {
		in := validInput()
		in.Normalize()
		require.NoError(t, in.Validate())
		assert.Equal(t, "Show en el Club", in.Title)
		assert.Equal(t, "09:30", in.Time)
	})

	price := -1.0
	tests := []struct {
		name   string
		mutate func(*Input)
	}{
		{"missing title", func(in *Input) { in.Title = "   " }},
		{"bad date", func(in *Input) { in.Date = "14/03/2025" }},
		{"bad time", func(in *Input) { in.Time = "25:00" }},
		{"missing venue", func(in *Input) { in.Venue = "" }},
		{"unknown entry type", func(in *Input) { in.EntryType = "vip" }},
		{"negative price", func(in *Input) { in.Price = &price }},
		{"bad ticket url", func(in *Input) { in.TicketURL = "not a url" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validInput()
			tt.mutate(in)
			in.Normalize()
			err := in.Validate()
			require.Error(t, err)
			assert.True(t, dErrors.HasCode(err, dErrors.CodeValidation))
		})
	}
}

func TestEntryTypeIsValid(t *testing.T) {
	assert.True(t, EntryArancelado.IsValid())
	assert.False(t, EntryType("vip").IsValid())
}

func TestSnapshotCarriesPrice(t *testing.T) {
	price := 1500.0
	e := &Event{Title: "Show", EntryType: EntryArancelado, Price: &price}
	assert.Equal(t, 1500.0, e.Snapshot()["price"])

	e.Price = nil
	assert.Nil(t, e.Snapshot()["price"])
}
