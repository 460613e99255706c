package service

import (
	"context"
	"errors"

	"oirla/internal/audit"
	"oirla/internal/auth/models"
	"oirla/internal/platform/metrics"
	"oirla/internal/sentinel"
	dErrors "oirla/pkg/domain-errors"
	"oirla/pkg/requestcontext"
)

// Login verifies credentials and issues a token. Unknown email and wrong
// password are indistinguishable to the caller and leave no LOGIN record.
func (s *Service) Login(ctx context.Context, req *models.LoginRequest) (*models.AuthResult, error) {
	account, err := s.users.FindAccountByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			s.authFailure(ctx, metrics.ReasonBadCredential, "cause", "unknown_email")
			return nil, dErrors.New(dErrors.CodeUnauthenticated, MsgBadCredentials)
		}
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, MsgLoginFailed)
	}

	ok, err := s.hasher.Verify(account.PasswordDigest, req.Password)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, MsgLoginFailed)
	}
	if !ok {
		s.authFailure(ctx, metrics.ReasonBadCredential,
			"cause", "wrong_password",
			"user_id", account.ID.String(),
		)
		return nil, dErrors.New(dErrors.CodeUnauthenticated, MsgBadCredentials)
	}

	token, err := s.jwt.GenerateToken(ctx, account.Principal())
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, MsgLoginFailed)
	}

	s.auditor.Record(ctx, audit.Entry{
		ActorID:    account.ID,
		Action:     audit.ActionLogin,
		EntityKind: audit.EntityUser,
		EntityID:   account.ID.UUID(),
		New:        audit.ClientSnapshot(requestcontext.UserAgent(ctx)),
	})
	s.metrics.IncrementLogins()
	s.logInfo(ctx, "login successful", "user_id", account.ID.String())

	return &models.AuthResult{
		Token: token,
		User: models.UserView{
			ID:       account.ID,
			Email:    account.Email,
			Role:     account.Role,
			ArtistID: account.ArtistID,
			Name:     account.ArtistName,
		},
	}, nil
}
