// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package auth provides the credential check and session cookie machinery.

# Credentials

The dashboard has a single configured user. The check is behind the
Provider interface so a real identity provider can replace it without
touching handlers:

	provider, err := auth.NewStaticProvider(username, password)
	ok := provider.Authenticate(u, p)

The password is bcrypt-hashed once at startup; plaintext is never kept.

# Session Cookies

Session tokens are random 24-byte (192-bit) secrets:

	token, err := auth.GenerateToken()

The cookie value is the token plus an HMAC-SHA256 tag keyed with the
session secret:

	value := auth.CookieValue(token, secret)   // "token.signature"
	token, err := auth.TokenFromCookie(value, secret)

Verification happens before any store lookup, so unsigned garbage never
reaches the database. Sessions themselves live server-side (see the db
package); Sessions ties the two halves together with Issue, UserForCookie
and Revoke.
*/
package auth
