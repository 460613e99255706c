package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"go.uber.org/mock/gomock"

	"oirla/internal/audit"
	"oirla/internal/auth/models"
	"oirla/internal/platform/metrics"
	"oirla/internal/sentinel"
	id "oirla/pkg/domain"
	dErrors "oirla/pkg/domain-errors"
	"oirla/pkg/requestcontext"
)

const firefoxUA = "Mozilla/5.0 (X11; Linux x86_64; rv:120.0) Gecko/20100101 Firefox/120.0"

func (s *ServiceSuite) account() *models.Account {
	artistID := id.NewArtistID()
	return &models.Account{
		User: models.User{
			ID:             id.NewIdentityID(),
			Email:          "a@x.com",
			PasswordDigest: "digest",
			Role:           id.RoleArtist,
		},
		ArtistID:   &artistID,
		ArtistName: "Banda X",
	}
}

func (s *ServiceSuite) TestLogin() {
	req := &models.LoginRequest{Email: "a@x.com", Password: "secret1"}

	s.Run("valid credentials issue a token and record LOGIN", func() {
		s.SetupTest()
		acc := s.account()
		ctx := requestcontext.WithClientMetadata(context.Background(), "203.0.113.7", firefoxUA)
		s.mockUsers.EXPECT().FindAccountByEmail(gomock.Any(), "a@x.com").Return(acc, nil)
		s.mockHasher.EXPECT().Verify("digest", "secret1").Return(true, nil)
		s.mockJWT.EXPECT().GenerateToken(gomock.Any(), acc.Principal()).Return("token-abc", nil)

		res, err := s.service.Login(ctx, req)

		s.Require().NoError(err)
		s.Equal("token-abc", res.Token)
		s.Equal(acc.ArtistID, res.User.ArtistID)
		s.Equal("Banda X", res.User.Name)

		entries := s.poolAudit.ByAction(audit.ActionLogin)
		s.Require().Len(entries, 1)
		s.Equal(acc.ID, entries[0].ActorID)
		s.Equal("203.0.113.7", entries[0].OriginAddress)
		s.Equal("Firefox", entries[0].New["browser"])
		s.Equal(1.0, testutil.ToFloat64(s.metrics.Logins))
	})

	s.Run("wrong password is rejected without a LOGIN record", func() {
		s.SetupTest()
		s.mockUsers.EXPECT().FindAccountByEmail(gomock.Any(), gomock.Any()).Return(s.account(), nil)
		s.mockHasher.EXPECT().Verify(gomock.Any(), gomock.Any()).Return(false, nil)

		res, err := s.service.Login(context.Background(), req)

		s.Nil(res)
		s.True(dErrors.HasCode(err, dErrors.CodeUnauthenticated))
		s.Equal(MsgBadCredentials, err.Error())
		s.Empty(s.poolAudit.ByAction(audit.ActionLogin))
		s.Equal(1.0, testutil.ToFloat64(s.metrics.AuthFailures.WithLabelValues(metrics.ReasonBadCredential)))
	})

	s.Run("unknown email looks like a wrong password", func() {
		s.SetupTest()
		s.mockUsers.EXPECT().FindAccountByEmail(gomock.Any(), gomock.Any()).
			Return(nil, fmt.Errorf("user not found: %w", sentinel.ErrNotFound))

		_, err := s.service.Login(context.Background(), req)

		s.True(dErrors.HasCode(err, dErrors.CodeUnauthenticated))
		s.Equal(MsgBadCredentials, err.Error())
		s.Empty(s.poolAudit.Entries())
	})

	s.Run("audit failure does not fail login", func() {
		s.SetupTest()
		s.poolAudit.FailWith(errors.New("disk full"))
		acc := s.account()
		s.mockUsers.EXPECT().FindAccountByEmail(gomock.Any(), gomock.Any()).Return(acc, nil)
		s.mockHasher.EXPECT().Verify(gomock.Any(), gomock.Any()).Return(true, nil)
		s.mockJWT.EXPECT().GenerateToken(gomock.Any(), gomock.Any()).Return("token", nil)

		res, err := s.service.Login(context.Background(), req)

		s.Require().NoError(err)
		s.Equal("token", res.Token)
		s.Equal(1.0, testutil.ToFloat64(s.metrics.AuditWriteFailures.WithLabelValues(string(audit.ActionLogin))))
	})

	s.Run("store failure is internal", func() {
		s.SetupTest()
		s.mockUsers.EXPECT().FindAccountByEmail(gomock.Any(), gomock.Any()).Return(nil, errors.New("timeout"))

		_, err := s.service.Login(context.Background(), req)

		s.True(dErrors.HasCode(err, dErrors.CodeInternal))
	})
}
