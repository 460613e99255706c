package domainerrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/suite"
)

type DomainErrorsSuite struct {
	suite.Suite
}

func TestDomainErrorsSuite(t *testing.T) {
	suite.Run(t, new(DomainErrorsSuite))
}

func (s *DomainErrorsSuite) TestMessageFallsBackToCode() {
	s.Equal("Evento no encontrado o no autorizado",
		New(CodeNotFoundOrUnauthorized, "Evento no encontrado o no autorizado").Error())
	s.Equal("policy_violation", (&Error{Code: CodePolicyViolation}).Error())
}

func (s *DomainErrorsSuite) TestWrapKeepsTheFirstCode() {
	// A service rejects with a client code, and an outer layer wraps it as
	// internal. The client code must survive so the response stays a 400.
	policy := New(CodePolicyViolation, "Nombre no permitido: Eminem")
	outer := Wrap(policy, CodeInternal, "validate artist")

	s.True(HasCode(outer, CodePolicyViolation))
	s.False(HasCode(outer, CodeInternal))
	s.Equal(CodePolicyViolation, CodeOf(outer))
	s.Equal("validate artist", outer.Error())
	s.ErrorIs(outer, policy)
}

func (s *DomainErrorsSuite) TestWrapPlainErrorTakesGivenCode() {
	cause := errors.New("connection reset by peer")
	err := Wrap(fmt.Errorf("commit registration: %w", cause), CodeInternal, "Error en el registro")

	s.Equal(CodeInternal, CodeOf(err))
	s.ErrorIs(err, cause)
}

func (s *DomainErrorsSuite) TestIsComparesCodesOnly() {
	missing := New(CodeNotFoundOrUnauthorized, "Evento no encontrado o no autorizado")
	foreign := New(CodeNotFoundOrUnauthorized, "different text")

	s.ErrorIs(missing, foreign)
	s.NotErrorIs(missing, New(CodeNotFound, "Artista no encontrado"))
	s.NotErrorIs(missing, errors.New("not_found_or_unauthorized"))
}

func (s *DomainErrorsSuite) TestCodeOf() {
	cases := []struct {
		name string
		err  error
		want Code
	}{
		{"duplicate email", New(CodeDuplicateEmail, "El email ya está registrado"), CodeDuplicateEmail},
		{"behind fmt wrapping", fmt.Errorf("register: %w", New(CodeValidation, "email inválido")), CodeValidation},
		{"plain error", errors.New("boom"), CodeInternal},
		{"nil", nil, CodeInternal},
	}
	for _, tc := range cases {
		s.Run(tc.name, func() {
			s.Equal(tc.want, CodeOf(tc.err))
		})
	}
}

func (s *DomainErrorsSuite) TestHasCodeOnNil() {
	s.False(HasCode(nil, CodeUnauthenticated))
}
