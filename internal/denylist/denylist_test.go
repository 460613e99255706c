package denylist

import (
	"testing"

	"github.com/stretchr/testify/assert"

	dErrors "oirla/pkg/domain-errors"
)

func TestIsForbidden(t *testing.T) {
	forbidden := []string{"Eminem", "eminem", "EMINEM", "  Dua Lipa ", "dua lipa", "Catriel", "paco AMOROSO"}
	for _, name := range forbidden {
		assert.True(t, IsForbidden(name), name)
	}

	allowed := []string{"", "Banda X", "Eminem Tribute", "DuaLipa", "Paco", "Catriel y Paco Amoroso"}
	for _, name := range allowed {
		assert.False(t, IsForbidden(name), name)
	}
}

func TestCheck(t *testing.T) {
	assert.NoError(t, Check("Banda X"))

	err := Check("  eminem ")
	assert.True(t, dErrors.HasCode(err, dErrors.CodePolicyViolation))
	assert.Equal(t, "No se puede validar a eminem. Este artista está prohibido.", err.Error())
}

func TestCheckName(t *testing.T) {
	assert.NoError(t, CheckName("Banda X"))

	err := CheckName("Dua Lipa")
	assert.True(t, dErrors.HasCode(err, dErrors.CodePolicyViolation))
	assert.Contains(t, err.Error(), "Dua Lipa")
}
