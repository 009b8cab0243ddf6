// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import (
	"fmt"
	"log/slog"

	"github.com/danielhkuo/congress-kanban/db"
)

// Sessions issues and validates signed session cookies backed by the
// server-side session store.
type Sessions struct {
	Secret string
	Store  *db.SessionStore
}

func NewSessions(secret string, store *db.SessionStore) *Sessions {
	return &Sessions{Secret: secret, Store: store}
}

// Issue creates a session for the user and returns the cookie value.
func (s *Sessions) Issue(username string) (string, error) {
	token, err := GenerateToken()
	if err != nil {
		return "", err
	}
	if err := s.Store.Create(token, username); err != nil {
		return "", fmt.Errorf("failed to store session: %w", err)
	}
	return CookieValue(token, s.Secret), nil
}

// UserForCookie resolves a cookie value to a username. The signature is
// checked before the store is touched.
func (s *Sessions) UserForCookie(value string) (string, bool) {
	token, err := TokenFromCookie(value, s.Secret)
	if err != nil {
		return "", false
	}
	username, ok, err := s.Store.Get(token)
	if err != nil {
		slog.Error("session lookup failed", "error", err)
		return "", false
	}
	return username, ok
}

// Revoke deletes the session behind a cookie value. Invalid cookies are
// ignored; logout must always succeed.
func (s *Sessions) Revoke(value string) {
	token, err := TokenFromCookie(value, s.Secret)
	if err != nil {
		return
	}
	if err := s.Store.Delete(token); err != nil {
		slog.Error("session delete failed", "error", err)
	}
}
