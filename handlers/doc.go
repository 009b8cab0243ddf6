// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers implements the HTTP request handlers.

Handlers are grouped by concern, each behind a constructor that takes
its dependencies:

  - SessionHandler: login form, login, logout, root redirect
  - BoardHandler: the kanban page and the JSON board projection
  - ClientHandler: client creation and the simulated document upload
  - WorkflowHandler: the scraping and invitation webhook triggers

Mutating handlers accept either form-encoded or JSON bodies, always
answer with a redirect plus a flash message, and are mounted behind
middleware.RequireSession (which returns 401 rather than redirecting
for non-page requests).
*/
package handlers
