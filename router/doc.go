// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines the HTTP routes using Go 1.22+ method routing.

NewRouter wires the whole request path: it builds the credential
provider, session service, renderer and dispatcher, constructs the
handlers, and mounts them with logging and session middleware. The
record source is passed in by the caller so main can log its mode and
tests can substitute a stub.

Route map:

	GET  /                          redirect to /kanban or /login
	GET  /login, POST /login        credential form and check
	GET  /logout                    session teardown
	GET  /kanban                    the board (redirects when logged out)
	GET  /api/board                 JSON board projection (401 when logged out)
	POST /add_client                create record, status forced to default
	POST /upload_document/{id}      simulated upload
	POST /trigger_scraping          scrape webhook dispatch
	POST /trigger_invitations       invitation webhook dispatch
	GET  /health                    liveness probe
*/
package router
