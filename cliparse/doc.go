/*
Package cliparse handles configuration from CLI flags and environment
variables.

# Usage

	cfg, err := cliparse.ParseFlags(os.Args[1:])

CLI flags take precedence over environment variables.

# Settings

Required:

  - SESSION_SECRET (--session-secret): secret for session cookie signing

Optional:

  - PORT (-p): server port (default: 5000)
  - SESSION_DB (--session-db): sqlite DSN for sessions (default: file:congress.db)
  - ADMIN_USERNAME / ADMIN_PASSWORD: dashboard credential (default: admin / password123)

Record store (all optional; with none configured the server serves a
deterministic mock data set):

  - AIRTABLE_API_KEY, AIRTABLE_BASE_ID, AIRTABLE_TABLE_NAME (default: Clients)
  - CLICKUP_API_TOKEN, CLICKUP_LIST_ID

Automation webhooks (optional; an unset URL makes the matching trigger
report "not configured" instead of calling out):

  - N8N_WEBHOOK_URL: scraping webhook
  - N8N_INVITE_WEBHOOK_URL: invitation webhook

A .env file in the working directory is loaded at startup (see main).
*/
package cliparse
