// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

var ErrInvalidCookie = errors.New("invalid session cookie")

// GenerateToken creates a random session token
func GenerateToken() (string, error) {
	b := make([]byte, 24) // 24 bytes = 192 bits of entropy
	_, err := rand.Read(b)
	if err != nil {
		return "", fmt.Errorf("failed to generate session token: %w", err)
	}
	// URL-safe base64 without padding
	return strings.TrimRight(base64.URLEncoding.EncodeToString(b), "="), nil
}

// SignToken creates an HMAC tag over a session token
// This is deterministic and verifiable
func SignToken(token, secret string) string {
	h := hmac.New(sha256.New, []byte(secret))
	h.Write([]byte(token))
	sum := h.Sum(nil)
	// Use URL-safe base64 and trim padding for cleaner cookie values
	return strings.TrimRight(base64.URLEncoding.EncodeToString(sum), "=")
}

// CookieValue packs a token and its signature into one cookie value.
// A stolen session row alone cannot forge a cookie without the secret.
func CookieValue(token, secret string) string {
	return token + "." + SignToken(token, secret)
}

// TokenFromCookie verifies a cookie value and returns the bare token
func TokenFromCookie(value, secret string) (string, error) {
	token, sig, ok := strings.Cut(value, ".")
	if !ok {
		return "", ErrInvalidCookie
	}
	expected := SignToken(token, secret)
	if !hmac.Equal([]byte(sig), []byte(expected)) {
		return "", ErrInvalidCookie
	}
	return token, nil
}

// Provider checks login credentials. The single in-memory implementation
// below exists so a real identity provider can be swapped in later.
type Provider interface {
	Authenticate(username, password string) bool
}

// StaticProvider holds the one admin credential as a bcrypt hash.
type StaticProvider struct {
	username string
	hash     []byte
}

// NewStaticProvider hashes the configured password once at startup.
func NewStaticProvider(username, password string) (*StaticProvider, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash admin password: %w", err)
	}
	return &StaticProvider{username: username, hash: hash}, nil
}

func (p *StaticProvider) Authenticate(username, password string) bool {
	if username != p.username {
		return false
	}
	return bcrypt.CompareHashAndPassword(p.hash, []byte(password)) == nil
}
