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

// ClickUp reads and writes client records through a ClickUp-style task
// API: tasks with a nested status object and a custom-field side table
// that carries the company name.
type ClickUp struct {
	token    string
	listID   string
	endpoint string
	client   *http.Client
}

// NewClickUp creates a ClickUp adapter. An empty endpoint selects the
// public API host.
func NewClickUp(token, listID, endpoint string, client *http.Client) *ClickUp {
	if endpoint == "" {
		endpoint = "https://api.clickup.com/api/v2"
	}
	if client == nil {
		client = &http.Client{Timeout: requestTimeout}
	}
	return &ClickUp{
		token:    token,
		listID:   listID,
		endpoint: endpoint,
		client:   client,
	}
}

func (c *ClickUp) Mode() Mode { return ModeLive }

func (c *ClickUp) listURL() string {
	return c.endpoint + "/list/" + url.PathEscape(c.listID) + "/task"
}

type clickUpTask struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Status struct {
		Status string `json:"status"`
	} `json:"status"`
	CustomFields []struct {
		Name  string `json:"name"`
		Value any    `json:"value"`
	} `json:"custom_fields"`
}

type clickUpListResponse struct {
	Tasks []clickUpTask `json:"tasks"`
}

// FetchAll lists every task in the configured list, closed ones included.
func (c *ClickUp) FetchAll(ctx context.Context) ([]models.RawRecord, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.listURL()+"?include_closed=true", nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", c.token)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("clickup request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		bodyBytes, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("clickup returned status %d: %s", resp.StatusCode, string(bodyBytes))
	}

	var result clickUpListResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	records := make([]models.RawRecord, 0, len(result.Tasks))
	for _, task := range result.Tasks {
		records = append(records, models.RawRecord{
			ID:      task.ID,
			Name:    task.Name,
			Status:  task.Status.Status,
			Company: companyFromCustomFields(task),
		})
	}
	return records, nil
}

// companyFromCustomFields pulls the first string value of a custom field
// named "Company". Custom field values are untyped in the API.
func companyFromCustomFields(task clickUpTask) string {
	for _, f := range task.CustomFields {
		if f.Name != "Company" {
			continue
		}
		if s, ok := f.Value.(string); ok {
			return s
		}
	}
	return ""
}

type clickUpCreateRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Status      string `json:"status"`
}

// Create writes one task with the status forced to the default bucket.
// The task API has no company or email fields on create, so both are
// folded into the description.
func (c *ClickUp) Create(ctx context.Context, nc models.NewClient) error {
	payload := clickUpCreateRequest{
		Name:        nc.Name,
		Description: fmt.Sprintf("Company: %s\nEmail: %s", nc.Company, nc.Email),
		Status:      string(models.DefaultStatus),
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal task: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.listURL(), bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", c.token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("clickup request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		bodyBytes, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("clickup returned status %d: %s", resp.StatusCode, string(bodyBytes))
	}
	return nil
}
