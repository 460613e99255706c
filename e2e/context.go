//go:build e2e

package e2e

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "github.com/jackc/pgx/v5/stdlib"
)

// TestContext holds state between test steps
type TestContext struct {
	BaseURL          string
	HTTPClient       *http.Client
	LastResponse     *http.Response
	LastResponseBody []byte

	Email      string
	Password   string
	Token      string
	ArtistID   string
	EventIDs   []string
	AdminToken string
	TargetID   string

	db *sql.DB
}

// NewTestContext creates a new test context
func NewTestContext() *TestContext {
	baseURL := os.Getenv("BASE_URL")
	if baseURL == "" {
		baseURL = "http://localhost:8080"
	}

	return &TestContext{
		BaseURL: strings.TrimRight(baseURL, "/"),
		HTTPClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// Reset clears per-scenario state. The HTTP client and database handle are kept.
func (tc *TestContext) Reset() {
	tc.LastResponse = nil
	tc.LastResponseBody = nil
	tc.Email = ""
	tc.Password = ""
	tc.Token = ""
	tc.ArtistID = ""
	tc.EventIDs = nil
	tc.AdminToken = ""
	tc.TargetID = ""
}

// Close releases the database handle, if one was opened.
func (tc *TestContext) Close() error {
	if tc.db == nil {
		return nil
	}
	err := tc.db.Close()
	tc.db = nil
	return err
}

// Do sends a JSON request under /api and stores the response. An empty token
// sends no Authorization header.
func (tc *TestContext) Do(method, path string, body any, token string) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(context.Background(), method, tc.BaseURL+"/api"+path, reader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := tc.HTTPClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to make request: %w", err)
	}

	tc.LastResponse = resp
	tc.LastResponseBody, err = io.ReadAll(resp.Body)
	resp.Body.Close()
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	return nil
}

// GetResponseField extracts a field from the JSON response
func (tc *TestContext) GetResponseField(field string) (any, error) {
	var data map[string]any
	if err := json.Unmarshal(tc.LastResponseBody, &data); err != nil {
		return nil, fmt.Errorf("failed to unmarshal response: %w", err)
	}

	value, ok := data[field]
	if !ok {
		return nil, fmt.Errorf("field %s not found in response", field)
	}

	return value, nil
}

// ResponseList decodes the response as a JSON array of objects.
func (tc *TestContext) ResponseList() ([]map[string]any, error) {
	var items []map[string]any
	if err := json.Unmarshal(tc.LastResponseBody, &items); err != nil {
		return nil, fmt.Errorf("failed to unmarshal response list: %w", err)
	}
	return items, nil
}

// ResponseContains checks if the response body contains a field or text
func (tc *TestContext) ResponseContains(text string) bool {
	if strings.Contains(string(tc.LastResponseBody), text) {
		return true
	}

	var data map[string]any
	if err := json.Unmarshal(tc.LastResponseBody, &data); err == nil {
		if _, ok := data[text]; ok {
			return true
		}
	}

	return false
}

// UniqueEmail returns a fresh address so scenarios can rerun against the same database.
func (tc *TestContext) UniqueEmail(prefix string) string {
	return fmt.Sprintf("%s-%s@e2e.example.com", prefix, uuid.NewString()[:8])
}

// DB opens DATABASE_URL on first use. Steps that seed rows the API refuses
// to create need it.
func (tc *TestContext) DB() (*sql.DB, error) {
	if tc.db != nil {
		return tc.db, nil
	}
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		return nil, errors.New("DATABASE_URL must be set for steps that seed the database")
	}
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	tc.db = db
	return db, nil
}

// Getter methods for step package interfaces

func (tc *TestContext) GetLastResponseStatus() int {
	if tc.LastResponse == nil {
		return 0
	}
	return tc.LastResponse.StatusCode
}

func (tc *TestContext) GetLastResponseBody() []byte {
	return tc.LastResponseBody
}

func (tc *TestContext) GetEmail() string           { return tc.Email }
func (tc *TestContext) GetPassword() string        { return tc.Password }
func (tc *TestContext) GetToken() string           { return tc.Token }
func (tc *TestContext) GetArtistID() string        { return tc.ArtistID }
func (tc *TestContext) GetEventIDs() []string      { return tc.EventIDs }
func (tc *TestContext) GetAdminToken() string      { return tc.AdminToken }
func (tc *TestContext) GetTargetID() string        { return tc.TargetID }
func (tc *TestContext) SetAdminToken(token string) { tc.AdminToken = token }
func (tc *TestContext) SetTargetID(id string)      { tc.TargetID = id }
func (tc *TestContext) AddEventID(id string)       { tc.EventIDs = append(tc.EventIDs, id) }

// SetAccount records the credentials and token of the scenario's artist.
func (tc *TestContext) SetAccount(email, password, token, artistID string) {
	tc.Email = email
	tc.Password = password
	tc.Token = token
	tc.ArtistID = artistID
}
