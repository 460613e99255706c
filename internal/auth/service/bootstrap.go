package service

import (
	"context"
	"errors"

	artistmodels "oirla/internal/artist/models"
	"oirla/internal/audit"
	"oirla/internal/auth/models"
	"oirla/internal/auth/ports"
	"oirla/internal/sentinel"
	id "oirla/pkg/domain"
	dErrors "oirla/pkg/domain-errors"
)

// BootstrapAdmin creates the admin identity with a validated profile and
// records BOOTSTRAP_ADMIN, all in one transaction. Nothing persists if any
// insert fails. The denylist does not apply to the admin profile.
func (s *Service) BootstrapAdmin(ctx context.Context, req *models.BootstrapRequest) (*models.User, error) {
	req.Normalize()
	if err := req.Validate(); err != nil {
		return nil, err
	}

	digest, err := s.hasher.Hash(req.Password)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to hash admin password")
	}

	admin := models.NewUser(req.Email, digest, id.RoleAdmin)
	profile := artistmodels.NewProfile(admin.ID, req.Name, "")
	profile.Validated = true

	err = s.tx.RunInTx(ctx, func(ctx context.Context, stores ports.TxStores) error {
		if err := stores.Users.Create(ctx, admin); err != nil {
			return err
		}
		if err := stores.Artists.Create(ctx, profile); err != nil {
			return err
		}
		s.auditor.Bind(stores.Audit).Record(ctx, audit.Entry{
			ActorID:    admin.ID,
			Action:     audit.ActionBootstrapAdmin,
			EntityKind: audit.EntityUser,
			EntityID:   admin.ID.UUID(),
			New: audit.Snapshot{
				"email":     admin.Email,
				"role":      string(admin.Role),
				"artist_id": profile.ID.String(),
			},
		})
		return nil
	})
	if err != nil {
		if errors.Is(err, sentinel.ErrAlreadyUsed) {
			return nil, dErrors.New(dErrors.CodeDuplicateEmail, MsgDuplicateEmail)
		}
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to create admin")
	}

	s.logInfo(ctx, "admin bootstrapped",
		"user_id", admin.ID.String(),
		"artist_id", profile.ID.String(),
	)
	return admin, nil
}
