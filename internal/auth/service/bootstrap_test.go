package service

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/mock/gomock"

	artistmodels "oirla/internal/artist/models"
	"oirla/internal/audit"
	"oirla/internal/auth/models"
	"oirla/internal/sentinel"
	id "oirla/pkg/domain"
	dErrors "oirla/pkg/domain-errors"
)

func (s *ServiceSuite) TestBootstrapAdmin() {
	ctx := context.Background()

	s.Run("creates an admin with a validated profile", func() {
		s.SetupTest()
		s.mockHasher.EXPECT().Hash("supersecret").Return("digest", nil)
		s.expectTx()
		s.mockUserWriter.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, u *models.User) error {
				s.Equal(id.RoleAdmin, u.Role)
				s.Equal("admin@oirla.musica", u.Email)
				return nil
			})
		s.mockArtists.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, p *artistmodels.Profile) error {
				s.True(p.Validated)
				s.Equal("Admin", p.Name)
				return nil
			})

		admin, err := s.service.BootstrapAdmin(ctx, &models.BootstrapRequest{
			Email:    " Admin@Oirla.Musica ",
			Password: "supersecret",
			Name:     "Admin",
		})

		s.Require().NoError(err)
		s.Equal(id.RoleAdmin, admin.Role)
		entries := s.txAudit.ByAction(audit.ActionBootstrapAdmin)
		s.Require().Len(entries, 1)
		s.Equal(admin.ID, entries[0].ActorID)
		s.NotContains(entries[0].New, "password")
	})

	s.Run("profile insert failure surfaces and records nothing", func() {
		s.SetupTest()
		s.mockHasher.EXPECT().Hash(gomock.Any()).Return("digest", nil)
		s.expectTx()
		s.mockUserWriter.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
		s.mockArtists.EXPECT().Create(gomock.Any(), gomock.Any()).Return(errors.New("insert artist: connection reset"))

		_, err := s.service.BootstrapAdmin(ctx, &models.BootstrapRequest{Email: "a@x.com", Password: "supersecret", Name: "Admin"})

		s.True(dErrors.HasCode(err, dErrors.CodeInternal))
		s.Empty(s.txAudit.Entries())
	})

	s.Run("existing email", func() {
		s.SetupTest()
		s.mockHasher.EXPECT().Hash(gomock.Any()).Return("digest", nil)
		s.expectTx()
		s.mockUserWriter.EXPECT().Create(gomock.Any(), gomock.Any()).
			Return(fmt.Errorf("insert user: %w", sentinel.ErrAlreadyUsed))

		_, err := s.service.BootstrapAdmin(ctx, &models.BootstrapRequest{Email: "a@x.com", Password: "supersecret", Name: "Admin"})

		s.True(dErrors.HasCode(err, dErrors.CodeDuplicateEmail))
	})

	s.Run("missing credentials are rejected before hashing", func() {
		s.SetupTest()
		s.mockHasher.EXPECT().Hash(gomock.Any()).Times(0)

		_, err := s.service.BootstrapAdmin(ctx, &models.BootstrapRequest{Email: "", Password: "", Name: "Admin"})

		s.True(dErrors.HasCode(err, dErrors.CodeValidation))
	})
}
