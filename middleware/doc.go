// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP helpers shared by all handlers.

# Request Logging

WithLogging logs request start and completion through slog, tagging both
lines with a per-request UUID and the wall-clock duration.

# JSON Helpers

JSONResponse, ErrorResponse and ParseJSONBody cover the JSON surface;
IsJSON lets handlers accept either JSON or form-encoded bodies.

# Session Guard

RequireSession wraps protected handlers. Page requests without a valid
session cookie are redirected to /login; API and mutating requests get a
401 instead. The resolved username is available via SessionUser.
*/
package middleware
