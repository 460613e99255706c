package validation

import (
	"fmt"

	dErrors "oirla/pkg/domain-errors"
)

// String length limits
const (
	// MaxEmailLength is the maximum length of an email address.
	MaxEmailLength = 255

	// MinPasswordLength is the shortest accepted password.
	MinPasswordLength = 6

	// MaxPasswordLength is the bcrypt input limit in bytes; longer secrets
	// would be silently truncated by the hash.
	MaxPasswordLength = 72

	// MaxNameLength is the maximum length of an artist name or event title.
	MaxNameLength = 200

	// MaxURLLength is the maximum length of any stored link.
	MaxURLLength = 2048
)

// CheckStringLength validates that a string does not exceed the maximum length.
func CheckStringLength(fieldName, value string, max int) error {
	if len(value) > max {
		return dErrors.New(dErrors.CodeValidation, fmt.Sprintf("%s exceeds max length of %d", fieldName, max))
	}
	return nil
}

// CheckEachStringLength validates that each value does not exceed the maximum length.
// Values are keyed by field name.
func CheckEachStringLength(values map[string]string, max int) error {
	for field, v := range values {
		if err := CheckStringLength(field, v, max); err != nil {
			return err
		}
	}
	return nil
}
