package admin

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"

	"github.com/cucumber/godog"
	"github.com/google/uuid"
)

// TestContext interface defines the methods needed from the main test context
type TestContext interface {
	Do(method, path string, body any, token string) error
	ResponseList() ([]map[string]any, error)
	GetLastResponseStatus() int
	GetLastResponseBody() []byte
	UniqueEmail(prefix string) string
	DB() (*sql.DB, error)
	GetEmail() string
	GetArtistID() string
	GetEventIDs() []string
	GetAdminToken() string
	SetAdminToken(token string)
	GetTargetID() string
	SetTargetID(id string)
}

// RegisterSteps registers admin moderation step definitions
func RegisterSteps(ctx *godog.ScenarioContext, tc TestContext) {
	steps := &adminSteps{tc: tc}

	ctx.Step(`^I am logged in as the admin$`, steps.loginAsAdmin)
	ctx.Step(`^an existing artist profile named "([^"]*)"$`, steps.seedArtistProfile)
	ctx.Step(`^I validate that artist$`, steps.validateTarget)
	ctx.Step(`^that artist should not be validated$`, steps.targetShouldNotBeValidated)
	ctx.Step(`^I delete my artist as the admin$`, steps.deleteOwnArtist)
	ctx.Step(`^my artist should not be listed$`, steps.ownArtistShouldNotBeListed)
	ctx.Step(`^none of my events should be listed$`, steps.ownEventsShouldNotBeListed)
	ctx.Step(`^a DELETE_ARTIST audit record with prior state exists for my artist$`, steps.deleteArtistAuditExists)
	ctx.Step(`^no LOGIN audit record exists for my account$`, steps.noLoginAuditForAccount)
}

type adminSteps struct {
	tc TestContext
}

func (s *adminSteps) loginAsAdmin(ctx context.Context) error {
	email, password := os.Getenv("ADMIN_EMAIL"), os.Getenv("ADMIN_PASSWORD")
	if email == "" || password == "" {
		return errors.New("ADMIN_EMAIL and ADMIN_PASSWORD must be set for admin scenarios")
	}
	if err := s.tc.Do(http.MethodPost, "/auth/login", map[string]any{
		"email":    email,
		"password": password,
	}, ""); err != nil {
		return err
	}
	if s.tc.GetLastResponseStatus() != http.StatusOK {
		return fmt.Errorf("admin login failed with status %d: %s", s.tc.GetLastResponseStatus(), s.tc.GetLastResponseBody())
	}
	var resp struct {
		Token string `json:"token"`
	}
	if err := json.Unmarshal(s.tc.GetLastResponseBody(), &resp); err != nil {
		return err
	}
	s.tc.SetAdminToken(resp.Token)
	return nil
}

// seedArtistProfile inserts a profile directly. Registration refuses
// denylisted names, so this covers data that predates the denylist.
func (s *adminSteps) seedArtistProfile(ctx context.Context, name string) error {
	db, err := s.tc.DB()
	if err != nil {
		return err
	}
	identityID, artistID := uuid.New(), uuid.New()
	if _, err := db.ExecContext(ctx, `
		INSERT INTO users (id, email, password_digest, role)
		VALUES ($1, $2, 'seeded', 'artist')`,
		identityID, s.tc.UniqueEmail("seeded"),
	); err != nil {
		return fmt.Errorf("seed user: %w", err)
	}
	if _, err := db.ExecContext(ctx, `
		INSERT INTO artists (id, identity_id, name, validated)
		VALUES ($1, $2, $3, FALSE)`,
		artistID, identityID, name,
	); err != nil {
		return fmt.Errorf("seed artist: %w", err)
	}
	s.tc.SetTargetID(artistID.String())
	return nil
}

func (s *adminSteps) validateTarget(ctx context.Context) error {
	return s.tc.Do(http.MethodPut, "/admin/artists/"+s.tc.GetTargetID()+"/validate",
		map[string]any{"validated": true}, s.tc.GetAdminToken())
}

func (s *adminSteps) listArtists() ([]map[string]any, error) {
	if err := s.tc.Do(http.MethodGet, "/admin/artists", nil, s.tc.GetAdminToken()); err != nil {
		return nil, err
	}
	if s.tc.GetLastResponseStatus() != http.StatusOK {
		return nil, fmt.Errorf("list artists failed with status %d", s.tc.GetLastResponseStatus())
	}
	return s.tc.ResponseList()
}

func (s *adminSteps) targetShouldNotBeValidated(ctx context.Context) error {
	artists, err := s.listArtists()
	if err != nil {
		return err
	}
	for _, a := range artists {
		if a["id"] == s.tc.GetTargetID() {
			if a["validated"] != false {
				return fmt.Errorf("artist %s is validated", s.tc.GetTargetID())
			}
			return nil
		}
	}
	return fmt.Errorf("artist %s not listed", s.tc.GetTargetID())
}

func (s *adminSteps) deleteOwnArtist(ctx context.Context) error {
	return s.tc.Do(http.MethodDelete, "/admin/artists/"+s.tc.GetArtistID(), nil, s.tc.GetAdminToken())
}

func (s *adminSteps) ownArtistShouldNotBeListed(ctx context.Context) error {
	artists, err := s.listArtists()
	if err != nil {
		return err
	}
	for _, a := range artists {
		if a["id"] == s.tc.GetArtistID() {
			return fmt.Errorf("artist %s still listed", s.tc.GetArtistID())
		}
	}
	return nil
}

func (s *adminSteps) ownEventsShouldNotBeListed(ctx context.Context) error {
	if err := s.tc.Do(http.MethodGet, "/admin/events", nil, s.tc.GetAdminToken()); err != nil {
		return err
	}
	events, err := s.tc.ResponseList()
	if err != nil {
		return err
	}
	gone := make(map[string]struct{}, len(s.tc.GetEventIDs()))
	for _, id := range s.tc.GetEventIDs() {
		gone[id] = struct{}{}
	}
	for _, e := range events {
		if _, ok := gone[fmt.Sprint(e["id"])]; ok {
			return fmt.Errorf("event %v still listed", e["id"])
		}
	}
	return nil
}

func (s *adminSteps) listAudit() ([]map[string]any, error) {
	if err := s.tc.Do(http.MethodGet, "/admin/audit?limit=500", nil, s.tc.GetAdminToken()); err != nil {
		return nil, err
	}
	if s.tc.GetLastResponseStatus() != http.StatusOK {
		return nil, fmt.Errorf("list audit failed with status %d", s.tc.GetLastResponseStatus())
	}
	return s.tc.ResponseList()
}

func (s *adminSteps) deleteArtistAuditExists(ctx context.Context) error {
	records, err := s.listAudit()
	if err != nil {
		return err
	}
	found := 0
	for _, r := range records {
		if r["action"] != "DELETE_ARTIST" || r["entity_id"] != s.tc.GetArtistID() {
			continue
		}
		prior, ok := r["old_values"].(map[string]any)
		if !ok || len(prior) == 0 {
			return errors.New("DELETE_ARTIST record has no prior state")
		}
		found++
	}
	if found != 1 {
		return fmt.Errorf("expected one DELETE_ARTIST record for %s, found %d", s.tc.GetArtistID(), found)
	}
	return nil
}

func (s *adminSteps) noLoginAuditForAccount(ctx context.Context) error {
	if s.tc.GetAdminToken() == "" {
		if err := s.loginAsAdmin(ctx); err != nil {
			return err
		}
	}
	records, err := s.listAudit()
	if err != nil {
		return err
	}
	for _, r := range records {
		if r["action"] == "LOGIN" && r["user_email"] == s.tc.GetEmail() {
			return fmt.Errorf("unexpected LOGIN record for %s", s.tc.GetEmail())
		}
	}
	return nil
}
