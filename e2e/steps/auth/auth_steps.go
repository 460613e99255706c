package auth

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/cucumber/godog"
)

// TestContext interface defines the methods needed from the main test context
type TestContext interface {
	Do(method, path string, body any, token string) error
	GetLastResponseStatus() int
	GetLastResponseBody() []byte
	UniqueEmail(prefix string) string
	GetEmail() string
	GetPassword() string
	GetToken() string
	SetAccount(email, password, token, artistID string)
	AddEventID(id string)
}

// RegisterSteps registers artist account and profile step definitions
func RegisterSteps(ctx *godog.ScenarioContext, tc TestContext) {
	steps := &authSteps{tc: tc}

	ctx.Step(`^I register as an artist named "([^"]*)" with password "([^"]*)"$`, steps.registerArtist)
	ctx.Step(`^I try to register as an artist named "([^"]*)"$`, steps.tryRegister)
	ctx.Step(`^I log in with password "([^"]*)"$`, steps.loginWithPassword)
	ctx.Step(`^I log in with my credentials$`, steps.loginWithCredentials)
	ctx.Step(`^I request my artist profile$`, steps.requestProfile)
	ctx.Step(`^I create (\d+) events$`, steps.createEvents)
	ctx.Step(`^my login should fail with status (\d+)$`, steps.loginShouldFail)
}

type authSteps struct {
	tc TestContext
}

type authResponse struct {
	Token string `json:"token"`
	User  struct {
		ArtistID *string `json:"artist_id"`
	} `json:"user"`
}

func (s *authSteps) registerArtist(ctx context.Context, name, password string) error {
	email := s.tc.UniqueEmail("artist")
	if err := s.tc.Do(http.MethodPost, "/auth/register", map[string]any{
		"email":    email,
		"password": password,
		"name":     name,
	}, ""); err != nil {
		return err
	}
	if s.tc.GetLastResponseStatus() != http.StatusCreated {
		return fmt.Errorf("registration failed with status %d: %s", s.tc.GetLastResponseStatus(), s.tc.GetLastResponseBody())
	}

	var resp authResponse
	if err := json.Unmarshal(s.tc.GetLastResponseBody(), &resp); err != nil {
		return fmt.Errorf("failed to parse registration response: %w", err)
	}
	if resp.Token == "" || resp.User.ArtistID == nil {
		return fmt.Errorf("registration response missing token or artist_id: %s", s.tc.GetLastResponseBody())
	}
	s.tc.SetAccount(email, password, resp.Token, *resp.User.ArtistID)
	return nil
}

func (s *authSteps) tryRegister(ctx context.Context, name string) error {
	return s.tc.Do(http.MethodPost, "/auth/register", map[string]any{
		"email":    s.tc.UniqueEmail("denied"),
		"password": "secret1",
		"name":     name,
	}, "")
}

func (s *authSteps) loginWithPassword(ctx context.Context, password string) error {
	return s.tc.Do(http.MethodPost, "/auth/login", map[string]any{
		"email":    s.tc.GetEmail(),
		"password": password,
	}, "")
}

func (s *authSteps) loginWithCredentials(ctx context.Context) error {
	return s.loginWithPassword(ctx, s.tc.GetPassword())
}

func (s *authSteps) requestProfile(ctx context.Context) error {
	return s.tc.Do(http.MethodGet, "/artist/profile", nil, s.tc.GetToken())
}

func (s *authSteps) createEvents(ctx context.Context, count int) error {
	for i := 0; i < count; i++ {
		if err := s.tc.Do(http.MethodPost, "/artist/events", map[string]any{
			"title":      fmt.Sprintf("Show %d", i+1),
			"date":       fmt.Sprintf("2099-01-%02d", i+1),
			"time":       "21:00",
			"venue":      "Club E2E",
			"entry_type": "gorra",
		}, s.tc.GetToken()); err != nil {
			return err
		}
		if s.tc.GetLastResponseStatus() != http.StatusCreated {
			return fmt.Errorf("event creation failed with status %d: %s", s.tc.GetLastResponseStatus(), s.tc.GetLastResponseBody())
		}
		var created struct {
			EventID string `json:"event_id"`
		}
		if err := json.Unmarshal(s.tc.GetLastResponseBody(), &created); err != nil {
			return fmt.Errorf("failed to parse event response: %w", err)
		}
		s.tc.AddEventID(created.EventID)
	}
	return nil
}

func (s *authSteps) loginShouldFail(ctx context.Context, status int) error {
	if err := s.loginWithCredentials(ctx); err != nil {
		return err
	}
	if got := s.tc.GetLastResponseStatus(); got != status {
		return fmt.Errorf("expected login status %d but got %d", status, got)
	}
	return nil
}
