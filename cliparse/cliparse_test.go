package cliparse

import (
	"testing"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"PORT", "SESSION_DB", "SESSION_SECRET",
		"ADMIN_USERNAME", "ADMIN_PASSWORD",
		"AIRTABLE_API_KEY", "AIRTABLE_BASE_ID", "AIRTABLE_TABLE_NAME",
		"CLICKUP_API_TOKEN", "CLICKUP_LIST_ID",
		"N8N_WEBHOOK_URL", "N8N_INVITE_WEBHOOK_URL",
	} {
		t.Setenv(key, "")
	}
}

func TestParseFlagsDefaults(t *testing.T) {
	clearEnv(t)
	t.Setenv("SESSION_SECRET", "s3cret")

	cfg, err := ParseFlags(nil)
	if err != nil {
		t.Fatalf("ParseFlags failed: %v", err)
	}

	if cfg.Port != 5000 {
		t.Errorf("Port = %d, want 5000", cfg.Port)
	}
	if cfg.SessionDB != "file:congress.db" {
		t.Errorf("SessionDB = %q", cfg.SessionDB)
	}
	if cfg.AdminUsername != "admin" || cfg.AdminPassword != "password123" {
		t.Errorf("Admin credentials = %q/%q", cfg.AdminUsername, cfg.AdminPassword)
	}
	if cfg.AirtableTable != "Clients" {
		t.Errorf("AirtableTable = %q, want Clients", cfg.AirtableTable)
	}
	if cfg.ScrapeWebhookURL != "" || cfg.InviteWebhookURL != "" {
		t.Error("Webhook URLs should default to empty")
	}
}

func TestParseFlagsEnvFallback(t *testing.T) {
	clearEnv(t)
	t.Setenv("SESSION_SECRET", "s3cret")
	t.Setenv("PORT", "8080")
	t.Setenv("SESSION_DB", "file:other.db")
	t.Setenv("ADMIN_USERNAME", "boss")
	t.Setenv("ADMIN_PASSWORD", "hunter2")
	t.Setenv("AIRTABLE_API_KEY", "key1")
	t.Setenv("AIRTABLE_BASE_ID", "base1")
	t.Setenv("AIRTABLE_TABLE_NAME", "People")
	t.Setenv("CLICKUP_API_TOKEN", "tok1")
	t.Setenv("CLICKUP_LIST_ID", "list1")
	t.Setenv("N8N_WEBHOOK_URL", "https://n8n.example/scrape")
	t.Setenv("N8N_INVITE_WEBHOOK_URL", "https://n8n.example/invite")

	cfg, err := ParseFlags(nil)
	if err != nil {
		t.Fatalf("ParseFlags failed: %v", err)
	}

	if cfg.Port != 8080 {
		t.Errorf("Port = %d, want 8080", cfg.Port)
	}
	if cfg.SessionDB != "file:other.db" {
		t.Errorf("SessionDB = %q", cfg.SessionDB)
	}
	if cfg.AdminUsername != "boss" || cfg.AdminPassword != "hunter2" {
		t.Errorf("Admin credentials = %q/%q", cfg.AdminUsername, cfg.AdminPassword)
	}
	if cfg.AirtableAPIKey != "key1" || cfg.AirtableBaseID != "base1" || cfg.AirtableTable != "People" {
		t.Errorf("Airtable config = %q/%q/%q", cfg.AirtableAPIKey, cfg.AirtableBaseID, cfg.AirtableTable)
	}
	if cfg.ClickUpToken != "tok1" || cfg.ClickUpListID != "list1" {
		t.Errorf("ClickUp config = %q/%q", cfg.ClickUpToken, cfg.ClickUpListID)
	}
	if cfg.ScrapeWebhookURL != "https://n8n.example/scrape" {
		t.Errorf("ScrapeWebhookURL = %q", cfg.ScrapeWebhookURL)
	}
	if cfg.InviteWebhookURL != "https://n8n.example/invite" {
		t.Errorf("InviteWebhookURL = %q", cfg.InviteWebhookURL)
	}
}

func TestParseFlagsCLIOverridesEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "8080")
	t.Setenv("SESSION_SECRET", "env-secret")

	cfg, err := ParseFlags([]string{"-p", "9000", "--session-secret", "flag-secret"})
	if err != nil {
		t.Fatalf("ParseFlags failed: %v", err)
	}

	if cfg.Port != 9000 {
		t.Errorf("Port = %d, want 9000", cfg.Port)
	}
	if cfg.SessionSecret != "flag-secret" {
		t.Errorf("SessionSecret = %q, want flag-secret", cfg.SessionSecret)
	}
}

func TestParseFlagsMissingSecret(t *testing.T) {
	clearEnv(t)

	if _, err := ParseFlags(nil); err == nil {
		t.Error("Expected error when SESSION_SECRET is missing")
	}
}

func TestParseFlagsInvalidPort(t *testing.T) {
	clearEnv(t)
	t.Setenv("SESSION_SECRET", "s3cret")
	t.Setenv("PORT", "not-a-port")

	if _, err := ParseFlags(nil); err == nil {
		t.Error("Expected error for malformed PORT")
	}
}
