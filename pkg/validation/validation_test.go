package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"

	dErrors "oirla/pkg/domain-errors"
)

type sample struct {
	Email     string   `validate:"required,email"`
	StartTime string   `validate:"required,clock"`
	Day       string   `validate:"required,datetime=2006-01-02"`
	Name      string   `validate:"required,notblank"`
	Kind      string   `validate:"oneof=gorra gratuito"`
	Price     *float64 `validate:"omitempty,gte=0"`
}

func valid() sample {
	return sample{Email: "a@x.com", StartTime: "21:30", Day: "2025-05-01", Name: "Banda X", Kind: "gorra"}
}

func TestValidate(t *testing.T) {
	t.Run("accepts a valid struct", func(t *testing.T) {
		v := valid()
		assert.NoError(t, Validate(&v))
	})

	t.Run("accepts single digit hours", func(t *testing.T) {
		v := valid()
		v.StartTime = "9:05"
		assert.NoError(t, Validate(&v))
	})

	negative := -1.0
	cases := []struct {
		name    string
		mutate  func(*sample)
		message string
	}{
		{"missing email", func(v *sample) { v.Email = "" }, "email is required"},
		{"bad email", func(v *sample) { v.Email = "nope" }, "email must be a valid email"},
		{"bad clock", func(v *sample) { v.StartTime = "25:00" }, "start_time must be a time in HH:MM format"},
		{"bad date", func(v *sample) { v.Day = "01/05/2025" }, "day must match the format 2006-01-02"},
		{"blank name", func(v *sample) { v.Name = "   " }, "name must not be blank"},
		{"unknown kind", func(v *sample) { v.Kind = "vip" }, "kind must be one of [gorra gratuito]"},
		{"negative price", func(v *sample) { v.Price = &negative }, "price must be greater than or equal to 0"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			v := valid()
			tc.mutate(&v)
			err := Validate(&v)
			assert.True(t, dErrors.HasCode(err, dErrors.CodeValidation))
			assert.EqualError(t, err, tc.message)
		})
	}
}

func TestValidateReportsJSONFieldNames(t *testing.T) {
	type channel struct {
		YouTubeChannel string `json:"youtube_channel,omitempty" validate:"required"`
	}

	err := Validate(&channel{})
	assert.EqualError(t, err, "youtube_channel is required")
}
