// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	_ "modernc.org/sqlite"

	"github.com/danielhkuo/congress-kanban/auth"
	"github.com/danielhkuo/congress-kanban/cliparse"
	"github.com/danielhkuo/congress-kanban/db"
	"github.com/danielhkuo/congress-kanban/middleware"
	"github.com/danielhkuo/congress-kanban/models"
	"github.com/danielhkuo/congress-kanban/source"
)

// SetupTestDB creates a fresh in-memory session database
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	conn, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	// Every pooled connection gets its own :memory: database; pin to one.
	conn.SetMaxOpenConns(1)

	if err := db.CreateSchema(conn); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	t.Cleanup(func() { conn.Close() })
	return conn
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:          5000,
		SessionDB:     ":memory:",
		SessionSecret: "test-session-secret",
		AdminUsername: "admin",
		AdminPassword: "password123",
		AirtableTable: "Clients",
	}
}

// NewSessions builds a session service over a fresh test database
func NewSessions(t *testing.T, conn *sql.DB) *auth.Sessions {
	t.Helper()
	return auth.NewSessions(GetTestConfig().SessionSecret, db.NewSessionStore(conn))
}

// LoginCookie issues a session for the test admin and returns its cookie
func LoginCookie(t *testing.T, sessions *auth.Sessions) *http.Cookie {
	t.Helper()

	value, err := sessions.Issue("admin")
	if err != nil {
		t.Fatalf("Failed to issue test session: %v", err)
	}
	return &http.Cookie{Name: middleware.SessionCookieName, Value: value}
}

// MakeRequest creates an HTTP test request with a JSON body
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// MakeFormRequest creates an HTTP test request with a form-encoded body
func MakeFormRequest(method, path string, form url.Values) *http.Request {
	req := httptest.NewRequest(method, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}

// StubSource is an in-memory RecordSource for handler tests.
type StubSource struct {
	Records    []models.RawRecord
	FetchErr   error
	CreateErr  error
	Created    []models.NewClient
	SourceMode source.Mode
}

func (s *StubSource) FetchAll(ctx context.Context) ([]models.RawRecord, error) {
	if s.FetchErr != nil {
		return nil, s.FetchErr
	}
	return s.Records, nil
}

func (s *StubSource) Create(ctx context.Context, c models.NewClient) error {
	if s.CreateErr != nil {
		return s.CreateErr
	}
	s.Created = append(s.Created, c)
	return nil
}

func (s *StubSource) Mode() source.Mode {
	if s.SourceMode == "" {
		return source.ModeMock
	}
	return s.SourceMode
}
