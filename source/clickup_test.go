// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package source

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/danielhkuo/congress-kanban/models"
)

func TestClickUpFetchAll(t *testing.T) {
	var gotAuth, gotPath, gotQuery string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotPath = r.URL.Path
		gotQuery = r.URL.RawQuery
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"tasks": [
				{
					"id": "t1",
					"name": "Maria Garcia",
					"status": {"status": "aceptado"},
					"custom_fields": [
						{"name": "Phone", "value": "555"},
						{"name": "Company", "value": "Eventos MX"}
					]
				},
				{
					"id": "t2",
					"name": "Carlos Lopez",
					"status": {"status": "EN ESPERA"},
					"custom_fields": [
						{"name": "Company", "value": 42}
					]
				}
			]
		}`))
	}))
	defer server.Close()

	c := NewClickUp("tok123", "list9", server.URL, server.Client())

	records, err := c.FetchAll(context.Background())
	if err != nil {
		t.Fatalf("FetchAll failed: %v", err)
	}

	if gotAuth != "tok123" {
		t.Errorf("Authorization = %q, want %q", gotAuth, "tok123")
	}
	if gotPath != "/list/list9/task" {
		t.Errorf("Path = %q, want %q", gotPath, "/list/list9/task")
	}
	if gotQuery != "include_closed=true" {
		t.Errorf("Query = %q, want include_closed=true", gotQuery)
	}

	if len(records) != 2 {
		t.Fatalf("Expected 2 records, got %d", len(records))
	}
	want := models.RawRecord{ID: "t1", Name: "Maria Garcia", Status: "aceptado", Company: "Eventos MX"}
	if records[0] != want {
		t.Errorf("records[0] = %+v, want %+v", records[0], want)
	}
	// Non-string custom field values are skipped
	if records[1].Company != "" {
		t.Errorf("records[1].Company = %q, want empty", records[1].Company)
	}
}

func TestClickUpFetchAllServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "no", http.StatusUnauthorized)
	}))
	defer server.Close()

	c := NewClickUp("tok", "list", server.URL, server.Client())

	records, err := c.FetchAll(context.Background())
	if err == nil {
		t.Fatal("Expected error for non-200 response")
	}
	if len(records) != 0 {
		t.Errorf("Expected no records on error, got %d", len(records))
	}
}

func TestClickUpCreateForcesDefaultStatus(t *testing.T) {
	var created clickUpCreateRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("Expected POST, got %s", r.Method)
		}
		if err := json.NewDecoder(r.Body).Decode(&created); err != nil {
			t.Errorf("Failed to decode create body: %v", err)
		}
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"id": "t3"}`))
	}))
	defer server.Close()

	c := NewClickUp("tok", "list", server.URL, server.Client())

	err := c.Create(context.Background(), models.NewClient{
		Name:    "X",
		Email:   "x@example.com",
		Company: "Y",
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if created.Name != "X" {
		t.Errorf("Name = %q, want %q", created.Name, "X")
	}
	if created.Status != string(models.DefaultStatus) {
		t.Errorf("Status = %q, want forced %q", created.Status, models.DefaultStatus)
	}
	wantDesc := "Company: Y\nEmail: x@example.com"
	if created.Description != wantDesc {
		t.Errorf("Description = %q, want %q", created.Description, wantDesc)
	}
}
