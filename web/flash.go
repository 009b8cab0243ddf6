// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package web

import (
	"encoding/base64"
	"net/http"
	"strings"
)

// Flash levels.
const (
	FlashSuccess = "success"
	FlashWarning = "warning"
	FlashError   = "error"
)

// Flash is a one-shot notification shown on the next rendered page.
type Flash struct {
	Level   string
	Message string
}

const flashCookieName = "congress_flash"

// SetFlash queues a flash message for the next page render.
func SetFlash(w http.ResponseWriter, level, message string) {
	http.SetCookie(w, &http.Cookie{
		Name:     flashCookieName,
		Value:    EncodeFlash(Flash{Level: level, Message: message}),
		Path:     "/",
		MaxAge:   60,
		HttpOnly: true,
	})
}

// PopFlash reads and clears the queued flash message, if any.
func PopFlash(w http.ResponseWriter, r *http.Request) *Flash {
	cookie, err := r.Cookie(flashCookieName)
	if err != nil {
		return nil
	}

	// Clear regardless of whether the value decodes
	http.SetCookie(w, &http.Cookie{
		Name:     flashCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})

	f, err := DecodeFlash(cookie.Value)
	if err != nil {
		return nil
	}
	return f
}

// EncodeFlash packs a flash into a cookie-safe value.
func EncodeFlash(f Flash) string {
	return base64.URLEncoding.EncodeToString([]byte(f.Level + "|" + f.Message))
}

// DecodeFlash unpacks a cookie value produced by EncodeFlash.
func DecodeFlash(value string) (*Flash, error) {
	raw, err := base64.URLEncoding.DecodeString(value)
	if err != nil {
		return nil, err
	}
	level, message, ok := strings.Cut(string(raw), "|")
	if !ok {
		return nil, http.ErrNoCookie
	}
	return &Flash{Level: level, Message: message}, nil
}
