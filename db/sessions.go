// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"
	"time"
)

// SessionTTL is how long a login stays valid.
const SessionTTL = 24 * time.Hour

// SessionStore persists login sessions in sqlite. The board itself has
// no persistence; sessions are the only state this service owns.
type SessionStore struct {
	db *sql.DB
}

func NewSessionStore(db *sql.DB) *SessionStore {
	return &SessionStore{db: db}
}

// Create inserts a session for the user.
func (s *SessionStore) Create(token, username string) error {
	now := time.Now()
	_, err := s.db.Exec(`
		INSERT INTO session (token, username, created_at, expires_at)
		VALUES (?, ?, ?, ?)
	`, token, username, now, now.Add(SessionTTL))
	if err != nil {
		return fmt.Errorf("failed to insert session: %w", err)
	}
	return nil
}

// Get returns the username behind a token. ok is false for unknown or
// expired tokens; err is reserved for database failures.
func (s *SessionStore) Get(token string) (username string, ok bool, err error) {
	var expiresAt time.Time
	err = s.db.QueryRow(`
		SELECT username, expires_at FROM session WHERE token = ?
	`, token).Scan(&username, &expiresAt)
	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to query session: %w", err)
	}
	if time.Now().After(expiresAt) {
		return "", false, nil
	}
	return username, true, nil
}

// Delete removes a session. Deleting a missing token is not an error.
func (s *SessionStore) Delete(token string) error {
	_, err := s.db.Exec(`DELETE FROM session WHERE token = ?`, token)
	if err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}

// DeleteExpired sweeps expired sessions and reports how many went away.
func (s *SessionStore) DeleteExpired() (int64, error) {
	res, err := s.db.Exec(`DELETE FROM session WHERE expires_at < ?`, time.Now())
	if err != nil {
		return 0, fmt.Errorf("failed to sweep sessions: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, err
	}
	return n, nil
}
