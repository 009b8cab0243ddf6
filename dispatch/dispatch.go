// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package dispatch

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// Outcome classifies a dispatch attempt.
type Outcome string

const (
	Success        Outcome = "success"
	NotConfigured  Outcome = "not_configured"
	TransportError Outcome = "transport_error"
)

// Result reports what happened to a single webhook dispatch. Detail is
// only set for transport errors.
type Result struct {
	Outcome Outcome
	Detail  string
}

// requestTimeout bounds a webhook call; the automation engine defines no
// timeout of its own.
const requestTimeout = 10 * time.Second

// Dispatcher sends best-effort HTTP notifications to the automation
// engine. One POST per call, no retries, and the remote response body is
// never inspected: the engine's own success semantics are opaque here.
type Dispatcher struct {
	client *http.Client
}

func New(client *http.Client) *Dispatcher {
	if client == nil {
		client = &http.Client{Timeout: requestTimeout}
	}
	return &Dispatcher{client: client}
}

// Send posts the payload as JSON to the webhook URL. An empty URL
// returns NotConfigured without touching the network.
func (d *Dispatcher) Send(ctx context.Context, url string, payload any) Result {
	if url == "" {
		return Result{Outcome: NotConfigured}
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return Result{Outcome: TransportError, Detail: fmt.Sprintf("failed to marshal payload: %v", err)}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return Result{Outcome: TransportError, Detail: fmt.Sprintf("failed to create request: %v", err)}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := d.client.Do(req)
	if err != nil {
		return Result{Outcome: TransportError, Detail: err.Error()}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return Result{Outcome: TransportError, Detail: fmt.Sprintf("webhook returned status %d", resp.StatusCode)}
	}
	return Result{Outcome: Success}
}
