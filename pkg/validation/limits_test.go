package validation

import (
	"strings"
	"testing"

	dErrors "oirla/pkg/domain-errors"

	"github.com/stretchr/testify/suite"
)

// LimitsSuite covers the trust-boundary length checks: max must pass and
// max+1 must fail.
type LimitsSuite struct {
	suite.Suite
}

func TestLimitsSuite(t *testing.T) {
	suite.Run(t, new(LimitsSuite))
}

func (s *LimitsSuite) TestCheckStringLength() {
	s.Run("passes when length equals max", func() {
		s.NoError(CheckStringLength("password", strings.Repeat("a", MaxPasswordLength), MaxPasswordLength))
	})

	s.Run("passes when empty", func() {
		s.NoError(CheckStringLength("password", "", MaxPasswordLength))
	})

	s.Run("fails when length exceeds max", func() {
		err := CheckStringLength("password", strings.Repeat("a", MaxPasswordLength+1), MaxPasswordLength)
		s.Require().Error(err)
		s.True(dErrors.HasCode(err, dErrors.CodeValidation))
		s.Contains(err.Error(), "password exceeds max length of 72")
	})
}

func (s *LimitsSuite) TestCheckEachStringLength() {
	s.Run("passes when every value fits", func() {
		s.NoError(CheckEachStringLength(map[string]string{
			"website":   "https://example.com",
			"photo_url": "",
		}, MaxURLLength))
	})

	s.Run("names the offending field", func() {
		err := CheckEachStringLength(map[string]string{
			"website":   "https://example.com",
			"flyer_url": strings.Repeat("x", MaxURLLength+1),
		}, MaxURLLength)
		s.Require().Error(err)
		s.Contains(err.Error(), "flyer_url")
	})
}
