// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package middleware

import (
	"context"
	"net/http"
)

// SessionCookieName is the auth cookie set on login.
const SessionCookieName = "congress_session"

// Authenticator resolves a session cookie value to a username.
type Authenticator interface {
	UserForCookie(value string) (string, bool)
}

type contextKey string

const userContextKey contextKey = "session_user"

// RequireSession guards a handler behind a valid session cookie.
//
// Unauthenticated page requests (wantsPage) are redirected to the login
// form; everything else gets a 401 with no redirect. On success the
// username is placed in the request context for SessionUser.
func RequireSession(a Authenticator, wantsPage bool, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if cookie, err := r.Cookie(SessionCookieName); err == nil {
			if user, ok := a.UserForCookie(cookie.Value); ok {
				ctx := context.WithValue(r.Context(), userContextKey, user)
				next(w, r.WithContext(ctx))
				return
			}
		}

		if wantsPage {
			http.Redirect(w, r, "/login", http.StatusSeeOther)
			return
		}
		ErrorResponse(w, http.StatusUnauthorized, "authentication required")
	}
}

// SessionUser returns the authenticated username, or "" outside a
// RequireSession-guarded handler.
func SessionUser(r *http.Request) string {
	user, _ := r.Context().Value(userContextKey).(string)
	return user
}
