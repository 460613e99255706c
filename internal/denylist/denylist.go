// Package denylist holds the fixed set of artist names that may never be
// registered, renamed to, or validated.
package denylist

import (
	"fmt"
	"strings"

	dErrors "oirla/pkg/domain-errors"
)

// Names is the fixed denylist. Matching is case-insensitive on trimmed input.
var Names = []string{"Eminem", "Dua Lipa", "Catriel", "Paco Amoroso"}

var normalized = func() map[string]struct{} {
	m := make(map[string]struct{}, len(Names))
	for _, n := range Names {
		m[normalize(n)] = struct{}{}
	}
	return m
}()

func normalize(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// IsForbidden reports whether name matches a denylisted name exactly,
// ignoring case and surrounding whitespace. Substrings do not match.
func IsForbidden(name string) bool {
	_, ok := normalized[normalize(name)]
	return ok
}

// Message is the rejection text shown when validating a denylisted artist.
func Message(name string) string {
	return fmt.Sprintf("No se puede validar a %s. Este artista está prohibido.", strings.TrimSpace(name))
}

// NameMessage is the rejection text shown when registering or renaming to a
// denylisted name.
func NameMessage(name string) string {
	return fmt.Sprintf("El nombre de artista %s no está permitido en la plataforma", strings.TrimSpace(name))
}

// Check guards validation. It returns a policy violation echoing the
// offending name, or nil.
func Check(name string) error {
	if IsForbidden(name) {
		return dErrors.New(dErrors.CodePolicyViolation, Message(name))
	}
	return nil
}

// CheckName guards registration and profile renames.
func CheckName(name string) error {
	if IsForbidden(name) {
		return dErrors.New(dErrors.CodePolicyViolation, NameMessage(name))
	}
	return nil
}
