package service

import (
	"context"
	"errors"

	artistmodels "oirla/internal/artist/models"
	"oirla/internal/audit"
	"oirla/internal/auth/models"
	"oirla/internal/auth/ports"
	"oirla/internal/denylist"
	"oirla/internal/sentinel"
	id "oirla/pkg/domain"
	dErrors "oirla/pkg/domain-errors"
)

// Register creates an artist identity and its profile in one transaction,
// records REGISTER inside it, and issues a token only after commit.
//
// The denylist is checked before any store access; the email lookup is
// advisory, the unique constraint is authoritative.
func (s *Service) Register(ctx context.Context, req *models.RegisterRequest) (*models.AuthResult, error) {
	if err := denylist.CheckName(req.Name); err != nil {
		s.policyViolation(ctx, req.Name)
		return nil, err
	}

	_, err := s.users.FindByEmail(ctx, req.Email)
	switch {
	case err == nil:
		return nil, dErrors.New(dErrors.CodeDuplicateEmail, MsgDuplicateEmail)
	case !errors.Is(err, sentinel.ErrNotFound):
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, MsgRegistrationFailed)
	}

	digest, err := s.hasher.Hash(req.Password)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, MsgRegistrationFailed)
	}

	user := models.NewUser(req.Email, digest, id.RoleArtist)
	profile := artistmodels.NewProfile(user.ID, req.Name, req.Phone)

	err = s.tx.RunInTx(ctx, func(ctx context.Context, stores ports.TxStores) error {
		if err := stores.Users.Create(ctx, user); err != nil {
			return err
		}
		if err := stores.Artists.Create(ctx, profile); err != nil {
			return err
		}
		s.auditor.Bind(stores.Audit).Record(ctx, audit.Entry{
			ActorID:    user.ID,
			Action:     audit.ActionRegister,
			EntityKind: audit.EntityUser,
			EntityID:   user.ID.UUID(),
			New: audit.Snapshot{
				"email":     user.Email,
				"name":      profile.Name,
				"artist_id": profile.ID.String(),
			},
		})
		return nil
	})
	if err != nil {
		if errors.Is(err, sentinel.ErrAlreadyUsed) {
			return nil, dErrors.New(dErrors.CodeDuplicateEmail, MsgDuplicateEmail)
		}
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, MsgRegistrationFailed)
	}

	token, err := s.jwt.GenerateToken(ctx, user.Principal())
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, MsgRegistrationFailed)
	}

	s.metrics.IncrementRegistrations()
	s.logInfo(ctx, "artist registered",
		"user_id", user.ID.String(),
		"artist_id", profile.ID.String(),
	)

	artistID := profile.ID
	return &models.AuthResult{
		Token: token,
		User: models.UserView{
			ID:       user.ID,
			Email:    user.Email,
			Role:     user.Role,
			ArtistID: &artistID,
			Name:     profile.Name,
		},
	}, nil
}
