// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package source

import (
	"context"
	"net/http"
	"time"

	"github.com/danielhkuo/congress-kanban/cliparse"
	"github.com/danielhkuo/congress-kanban/models"
)

// Mode reports where a record source gets its data.
type Mode string

const (
	ModeLive Mode = "live"
	ModeMock Mode = "mock"
)

// requestTimeout bounds every call to a record store. The external APIs
// define no timeout of their own.
const requestTimeout = 10 * time.Second

// RecordSource is the adapter boundary in front of the external record
// store. Implementations return the canonical RawRecord shape so the
// normalizer never sees API-specific structure.
type RecordSource interface {
	// FetchAll returns every record in the store. On failure it returns
	// the error together with whatever was decoded (usually nothing);
	// callers log a warning and keep going.
	FetchAll(ctx context.Context) ([]models.RawRecord, error)

	// Create writes one new record with the pipeline status forced to
	// models.DefaultStatus regardless of caller input.
	Create(ctx context.Context, c models.NewClient) error

	// Mode reports whether the source is live or serving mock data.
	Mode() Mode
}

// New picks the adapter from configuration, once, at construction.
// Airtable credentials win over ClickUp credentials; with neither the
// server degrades to the deterministic mock data set.
func New(cfg cliparse.Config) RecordSource {
	client := &http.Client{Timeout: requestTimeout}

	switch {
	case cfg.AirtableAPIKey != "" && cfg.AirtableBaseID != "":
		return NewAirtable(cfg.AirtableAPIKey, cfg.AirtableBaseID, cfg.AirtableTable, "", client)
	case cfg.ClickUpToken != "" && cfg.ClickUpListID != "":
		return NewClickUp(cfg.ClickUpToken, cfg.ClickUpListID, "", client)
	default:
		return NewMock()
	}
}
