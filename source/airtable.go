// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package source

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/danielhkuo/congress-kanban/models"
)

// Airtable reads and writes client records through an Airtable-style
// REST API: flat records with a fields object per record.
type Airtable struct {
	apiKey   string
	baseID   string
	table    string
	endpoint string
	client   *http.Client
}

// NewAirtable creates an Airtable adapter. An empty endpoint selects the
// public API host.
func NewAirtable(apiKey, baseID, table, endpoint string, client *http.Client) *Airtable {
	if endpoint == "" {
		endpoint = "https://api.airtable.com/v0"
	}
	if client == nil {
		client = &http.Client{Timeout: requestTimeout}
	}
	return &Airtable{
		apiKey:   apiKey,
		baseID:   baseID,
		table:    table,
		endpoint: endpoint,
		client:   client,
	}
}

func (a *Airtable) Mode() Mode { return ModeLive }

func (a *Airtable) tableURL() string {
	return a.endpoint + "/" + url.PathEscape(a.baseID) + "/" + url.PathEscape(a.table)
}

type airtableRecord struct {
	ID     string `json:"id"`
	Fields struct {
		Name    string `json:"Name"`
		Status  string `json:"Status"`
		Company string `json:"Company"`
	} `json:"fields"`
}

type airtableListResponse struct {
	Records []airtableRecord `json:"records"`
	Offset  string           `json:"offset"`
}

// FetchAll lists every record in the configured table. The list endpoint
// pages its results behind an offset continuation token; pages are
// followed until the token comes back empty.
func (a *Airtable) FetchAll(ctx context.Context) ([]models.RawRecord, error) {
	var records []models.RawRecord
	offset := ""

	for {
		pageURL := a.tableURL()
		if offset != "" {
			pageURL += "?offset=" + url.QueryEscape(offset)
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
		if err != nil {
			return records, fmt.Errorf("failed to create request: %w", err)
		}
		req.Header.Set("Authorization", "Bearer "+a.apiKey)

		resp, err := a.client.Do(req)
		if err != nil {
			return records, fmt.Errorf("airtable request failed: %w", err)
		}

		if resp.StatusCode != http.StatusOK {
			bodyBytes, _ := io.ReadAll(resp.Body)
			resp.Body.Close()
			return records, fmt.Errorf("airtable returned status %d: %s", resp.StatusCode, string(bodyBytes))
		}

		var result airtableListResponse
		err = json.NewDecoder(resp.Body).Decode(&result)
		resp.Body.Close()
		if err != nil {
			return records, fmt.Errorf("failed to decode response: %w", err)
		}

		for _, rec := range result.Records {
			records = append(records, models.RawRecord{
				ID:      rec.ID,
				Name:    rec.Fields.Name,
				Status:  rec.Fields.Status,
				Company: rec.Fields.Company,
			})
		}

		if result.Offset == "" {
			return records, nil
		}
		offset = result.Offset
	}
}

type airtableCreateRequest struct {
	Fields map[string]string `json:"fields"`
}

// Create writes one record with the status forced to the default bucket.
func (a *Airtable) Create(ctx context.Context, c models.NewClient) error {
	payload := airtableCreateRequest{
		Fields: map[string]string{
			"Name":    c.Name,
			"Email":   c.Email,
			"Company": c.Company,
			"Status":  string(models.DefaultStatus),
		},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal record: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, a.tableURL(), bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+a.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := a.client.Do(req)
	if err != nil {
		return fmt.Errorf("airtable request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		bodyBytes, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("airtable returned status %d: %s", resp.StatusCode, string(bodyBytes))
	}
	return nil
}
