// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the Congress Kanban server.

Congress Kanban is a thin administrative dashboard that shows client
records from an external record store grouped into five pipeline
statuses, and triggers automation workflows over webhooks. The record
store is the sole source of truth; the board is a derived view rebuilt
on every fetch.

# Starting the Server

The server reads a .env file if present, then environment variables or
CLI flags:

	SESSION_SECRET=... go run main.go

Or with flags:

	go run main.go -p 5000 --session-secret "..."

# Configuration

Required settings:

  - SESSION_SECRET (--session-secret): secret for cookie signing

Optional settings:

  - PORT (-p): server port (default: 5000)
  - SESSION_DB (--session-db): sqlite DSN for sessions
  - ADMIN_USERNAME / ADMIN_PASSWORD: dashboard credential
  - AIRTABLE_API_KEY / AIRTABLE_BASE_ID / AIRTABLE_TABLE_NAME
  - CLICKUP_API_TOKEN / CLICKUP_LIST_ID
  - N8N_WEBHOOK_URL / N8N_INVITE_WEBHOOK_URL

With no record store configured the server runs in mock mode and serves
a fixed demo data set. With no webhook URL configured the matching
trigger reports a warning instead of calling out.

# Architecture

The server uses a handler-based architecture with dependency injection:

  - handlers: HTTP request handlers (session, board, clients, workflows)
  - router: route definitions using Go 1.22+ routing
  - middleware: logging, JSON helpers, session guard
  - models: domain and request/response types
  - board: status normalization into the five pipeline buckets
  - source: record store adapters (Airtable, ClickUp, mock)
  - dispatch: webhook dispatcher for the automation engine
  - auth: credential check, tokens, cookie signing
  - db: sqlite session schema and store
  - web: HTML rendering and flash messages
  - docstore: simulated document storage
  - cliparse: configuration parsing

See package documentation for each component.
*/
package main
