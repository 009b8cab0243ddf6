package cliparse

import (
	"errors"
	"flag"
	"os"
	"strconv"
)

type Config struct {
	Port      int
	SessionDB string

	// Session and login
	SessionSecret string
	AdminUsername string
	AdminPassword string

	// Airtable-style record store
	AirtableAPIKey string
	AirtableBaseID string
	AirtableTable  string

	// ClickUp-style record store
	ClickUpToken  string
	ClickUpListID string

	// Automation webhooks
	ScrapeWebhookURL string
	InviteWebhookURL string
}

// ParseFlags validates flags and fills in defaults from the environment.
//
// Missing record store credentials and missing webhook URLs are not
// errors: the server degrades to mock data and not-configured dispatch
// results respectively. Only the session secret and a malformed PORT can
// fail startup.
func ParseFlags(args []string) (Config, error) {
	var cfg Config

	fs := flag.NewFlagSet("congress-kanban", flag.ContinueOnError)

	// Network config (can be CLI args or env)
	fs.IntVar(&cfg.Port, "p", 0, "Server port")
	fs.StringVar(&cfg.SessionDB, "session-db", "", "Session database DSN")

	// Secrets (prefer env variables, but allow CLI for dev)
	fs.StringVar(&cfg.SessionSecret, "session-secret", "", "Session cookie secret (prefer env)")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	// Fall back to environment variables
	if cfg.Port == 0 {
		if portStr := os.Getenv("PORT"); portStr != "" {
			port, err := strconv.Atoi(portStr)
			if err != nil {
				return Config{}, errors.New("invalid PORT env variable")
			}
			cfg.Port = port
		} else {
			cfg.Port = 5000 // default
		}
	}

	if cfg.SessionDB == "" {
		cfg.SessionDB = os.Getenv("SESSION_DB")
	}
	if cfg.SessionDB == "" {
		cfg.SessionDB = "file:congress.db"
	}

	// Secret - MUST be provided
	if cfg.SessionSecret == "" {
		cfg.SessionSecret = os.Getenv("SESSION_SECRET")
	}
	if cfg.SessionSecret == "" {
		return Config{}, errors.New("SESSION_SECRET required")
	}

	// Single admin credential; defaults match the legacy dashboards
	cfg.AdminUsername = os.Getenv("ADMIN_USERNAME")
	if cfg.AdminUsername == "" {
		cfg.AdminUsername = "admin"
	}
	cfg.AdminPassword = os.Getenv("ADMIN_PASSWORD")
	if cfg.AdminPassword == "" {
		cfg.AdminPassword = "password123"
	}

	// Record store credentials - absence means mock mode
	cfg.AirtableAPIKey = os.Getenv("AIRTABLE_API_KEY")
	cfg.AirtableBaseID = os.Getenv("AIRTABLE_BASE_ID")
	cfg.AirtableTable = os.Getenv("AIRTABLE_TABLE_NAME")
	if cfg.AirtableTable == "" {
		cfg.AirtableTable = "Clients"
	}

	cfg.ClickUpToken = os.Getenv("CLICKUP_API_TOKEN")
	cfg.ClickUpListID = os.Getenv("CLICKUP_LIST_ID")

	// Webhooks - absence means dispatch reports NotConfigured
	cfg.ScrapeWebhookURL = os.Getenv("N8N_WEBHOOK_URL")
	cfg.InviteWebhookURL = os.Getenv("N8N_INVITE_WEBHOOK_URL")

	return cfg, nil
}
