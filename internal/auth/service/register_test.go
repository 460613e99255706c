package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"go.uber.org/mock/gomock"

	artistmodels "oirla/internal/artist/models"
	"oirla/internal/audit"
	"oirla/internal/auth/models"
	"oirla/internal/sentinel"
	id "oirla/pkg/domain"
	dErrors "oirla/pkg/domain-errors"
)

func (s *ServiceSuite) registerRequest() *models.RegisterRequest {
	return &models.RegisterRequest{Email: "a@x.com", Password: "secret1", Name: "Banda X"}
}

func (s *ServiceSuite) TestRegister() {
	ctx := context.Background()

	s.Run("creates identity and profile in one transaction and issues a token", func() {
		s.SetupTest()
		var created *models.User
		s.mockUsers.EXPECT().FindByEmail(gomock.Any(), "a@x.com").Return(nil, sentinel.ErrNotFound)
		s.mockHasher.EXPECT().Hash("secret1").Return("digest", nil)
		s.expectTx()
		s.mockUserWriter.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, u *models.User) error {
				created = u
				return nil
			})
		s.mockArtists.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, p *artistmodels.Profile) error {
				s.Equal(created.ID, p.IdentityID)
				s.Equal("Banda X", p.Name)
				s.False(p.Validated)
				return nil
			})
		s.mockJWT.EXPECT().GenerateToken(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, p id.Principal) (string, error) {
				s.Equal(id.RoleArtist, p.Role)
				return "token-123", nil
			})

		res, err := s.service.Register(ctx, s.registerRequest())

		s.Require().NoError(err)
		s.Equal("token-123", res.Token)
		s.Equal(created.ID, res.User.ID)
		s.Equal(id.RoleArtist, res.User.Role)
		s.Equal("Banda X", res.User.Name)
		s.Require().NotNil(res.User.ArtistID)
		s.Equal("digest", created.PasswordDigest)

		entries := s.txAudit.ByAction(audit.ActionRegister)
		s.Require().Len(entries, 1)
		s.Equal(created.ID, entries[0].ActorID)
		s.Equal(audit.EntityUser, entries[0].EntityKind)
		s.Equal("a@x.com", entries[0].New["email"])
		s.NotContains(entries[0].New, "password_digest")
		s.Empty(s.poolAudit.Entries(), "registration audits inside the transaction only")
		s.Equal(1.0, testutil.ToFloat64(s.metrics.Registrations))
	})

	s.Run("denylisted name is rejected before any store access", func() {
		s.SetupTest()
		req := s.registerRequest()
		req.Name = "paco amoroso"

		res, err := s.service.Register(ctx, req)

		s.Nil(res)
		s.True(dErrors.HasCode(err, dErrors.CodePolicyViolation))
		s.Contains(err.Error(), "paco amoroso")
		s.Empty(s.txAudit.Entries())
		s.Equal(1.0, testutil.ToFloat64(s.metrics.PolicyViolations.WithLabelValues("register")))
	})

	s.Run("existing email is a duplicate", func() {
		s.SetupTest()
		s.mockUsers.EXPECT().FindByEmail(gomock.Any(), "a@x.com").Return(&models.User{}, nil)

		_, err := s.service.Register(ctx, s.registerRequest())

		s.True(dErrors.HasCode(err, dErrors.CodeDuplicateEmail))
		s.Equal(MsgDuplicateEmail, err.Error())
	})

	s.Run("unique violation at insert is a duplicate", func() {
		s.SetupTest()
		s.mockUsers.EXPECT().FindByEmail(gomock.Any(), gomock.Any()).Return(nil, sentinel.ErrNotFound)
		s.mockHasher.EXPECT().Hash(gomock.Any()).Return("digest", nil)
		s.expectTx()
		s.mockUserWriter.EXPECT().Create(gomock.Any(), gomock.Any()).
			Return(fmt.Errorf("user already exists: %w", sentinel.ErrAlreadyUsed))

		_, err := s.service.Register(ctx, s.registerRequest())

		s.True(dErrors.HasCode(err, dErrors.CodeDuplicateEmail))
		s.Empty(s.txAudit.Entries())
	})

	s.Run("profile insert failure aborts without a token", func() {
		s.SetupTest()
		s.mockUsers.EXPECT().FindByEmail(gomock.Any(), gomock.Any()).Return(nil, sentinel.ErrNotFound)
		s.mockHasher.EXPECT().Hash(gomock.Any()).Return("digest", nil)
		s.expectTx()
		s.mockUserWriter.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
		s.mockArtists.EXPECT().Create(gomock.Any(), gomock.Any()).Return(errors.New("connection reset"))

		res, err := s.service.Register(ctx, s.registerRequest())

		s.Nil(res)
		s.True(dErrors.HasCode(err, dErrors.CodeInternal))
		s.ErrorContains(err, MsgRegistrationFailed)
		s.Empty(s.txAudit.Entries())
		s.Equal(0.0, testutil.ToFloat64(s.metrics.Registrations))
	})

	s.Run("audit failure inside the transaction does not fail registration", func() {
		s.SetupTest()
		s.txAudit.FailWith(errors.New("audit_log unavailable"))
		s.mockUsers.EXPECT().FindByEmail(gomock.Any(), gomock.Any()).Return(nil, sentinel.ErrNotFound)
		s.mockHasher.EXPECT().Hash(gomock.Any()).Return("digest", nil)
		s.expectTx()
		s.mockUserWriter.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
		s.mockArtists.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
		s.mockJWT.EXPECT().GenerateToken(gomock.Any(), gomock.Any()).Return("token", nil)

		res, err := s.service.Register(ctx, s.registerRequest())

		s.Require().NoError(err)
		s.Equal("token", res.Token)
		s.Equal(1.0, testutil.ToFloat64(s.metrics.AuditWriteFailures.WithLabelValues(string(audit.ActionRegister))))
	})

	s.Run("lookup failure is internal", func() {
		s.SetupTest()
		s.mockUsers.EXPECT().FindByEmail(gomock.Any(), gomock.Any()).Return(nil, errors.New("pool exhausted"))

		_, err := s.service.Register(ctx, s.registerRequest())

		s.True(dErrors.HasCode(err, dErrors.CodeInternal))
	})
}
