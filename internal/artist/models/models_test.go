package models

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	id "oirla/pkg/domain"
	dErrors "oirla/pkg/domain-errors"
)

func TestUpdateProfileRequest(t *testing.T) {
	t.Run("trims and accepts optional links", func(t *testing.T) {
		req := &UpdateProfileRequest{Name: "  Banda X ", Website: " https://bandax.com.ar "}
		req.Normalize()
		require.NoError(t, req.Validate())
		assert.Equal(t, "Banda X", req.Name)
		assert.Equal(t, "https://bandax.com.ar", req.Website)
	})

	t.Run("name is required", func(t *testing.T) {
		req := &UpdateProfileRequest{Name: "   "}
		req.Normalize()
		err := req.Validate()
		require.Error(t, err)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeValidation))
	})

	t.Run("rejects malformed link", func(t *testing.T) {
		req := &UpdateProfileRequest{Name: "Banda X", Spotify: "spotify banda x"}
		require.Error(t, req.Validate())
	})

	t.Run("rejects overlong link", func(t *testing.T) {
		req := &UpdateProfileRequest{Name: "Banda X", PhotoURL: "https://x.com/" + strings.Repeat("a", 2048)}
		err := req.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "photo_url")
	})
}

func TestProfileApplyKeepsIdentityAndFlag(t *testing.T) {
	owner := id.NewIdentityID()
	p := NewProfile(owner, "Banda X", "")
	p.Validated = true

	p.Apply(&UpdateProfileRequest{Name: "Banda Y", Instagram: "@bandaY"})

	assert.Equal(t, owner, p.IdentityID)
	assert.True(t, p.Validated)
	assert.Equal(t, "Banda Y", p.Name)
	assert.Equal(t, "@bandaY", p.Snapshot()["instagram"])
}

func TestValidateRequestRequiresFlag(t *testing.T) {
	require.Error(t, (&ValidateRequest{}).Validate())

	f := false
	require.NoError(t, (&ValidateRequest{Validated: &f}).Validate())
}
