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

func TestAirtableFetchAll(t *testing.T) {
	var gotAuth, gotPath string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotPath = r.URL.Path
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"records": [
				{"id": "rec1", "fields": {"Name": "Juan Perez", "Status": "ACEPTADO", "Company": "Tech Corp"}},
				{"id": "rec2", "fields": {"Name": "Ana Silva"}}
			]
		}`))
	}))
	defer server.Close()

	a := NewAirtable("key123", "base1", "Clients", server.URL, server.Client())

	records, err := a.FetchAll(context.Background())
	if err != nil {
		t.Fatalf("FetchAll failed: %v", err)
	}

	if gotAuth != "Bearer key123" {
		t.Errorf("Authorization = %q, want %q", gotAuth, "Bearer key123")
	}
	if gotPath != "/base1/Clients" {
		t.Errorf("Path = %q, want %q", gotPath, "/base1/Clients")
	}

	if len(records) != 2 {
		t.Fatalf("Expected 2 records, got %d", len(records))
	}
	want := models.RawRecord{ID: "rec1", Name: "Juan Perez", Status: "ACEPTADO", Company: "Tech Corp"}
	if records[0] != want {
		t.Errorf("records[0] = %+v, want %+v", records[0], want)
	}
	// Missing fields stay empty; the normalizer applies defaults later
	if records[1].Status != "" || records[1].Company != "" {
		t.Errorf("records[1] should have empty status/company, got %+v", records[1])
	}
}

func TestAirtableFetchAllFollowsPagination(t *testing.T) {
	var offsets []string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		offset := r.URL.Query().Get("offset")
		offsets = append(offsets, offset)
		w.Header().Set("Content-Type", "application/json")
		switch offset {
		case "":
			w.Write([]byte(`{
				"records": [{"id": "rec1", "fields": {"Name": "Juan Perez"}}],
				"offset": "itrPage2"
			}`))
		case "itrPage2":
			w.Write([]byte(`{
				"records": [{"id": "rec2", "fields": {"Name": "Maria Garcia"}}],
				"offset": "itrPage3"
			}`))
		case "itrPage3":
			w.Write([]byte(`{
				"records": [{"id": "rec3", "fields": {"Name": "Carlos Lopez"}}]
			}`))
		default:
			t.Errorf("Unexpected offset %q", offset)
		}
	}))
	defer server.Close()

	a := NewAirtable("key", "base", "Clients", server.URL, server.Client())

	records, err := a.FetchAll(context.Background())
	if err != nil {
		t.Fatalf("FetchAll failed: %v", err)
	}

	if len(records) != 3 {
		t.Fatalf("Expected 3 records across pages, got %d", len(records))
	}
	for i, wantID := range []string{"rec1", "rec2", "rec3"} {
		if records[i].ID != wantID {
			t.Errorf("records[%d].ID = %q, want %q", i, records[i].ID, wantID)
		}
	}
	if len(offsets) != 3 || offsets[0] != "" || offsets[1] != "itrPage2" || offsets[2] != "itrPage3" {
		t.Errorf("Offsets requested = %q, want one pass per page", offsets)
	}
}

func TestAirtableFetchAllPaginationFailureKeepsEarlierPages(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("offset") != "" {
			http.Error(w, "boom", http.StatusBadGateway)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"records": [{"id": "rec1", "fields": {"Name": "Juan Perez"}}],
			"offset": "itrPage2"
		}`))
	}))
	defer server.Close()

	a := NewAirtable("key", "base", "Clients", server.URL, server.Client())

	records, err := a.FetchAll(context.Background())
	if err == nil {
		t.Fatal("Expected error when a later page fails")
	}
	// Callers warn and render whatever was decoded
	if len(records) != 1 || records[0].ID != "rec1" {
		t.Errorf("Expected the first page to survive, got %+v", records)
	}
}

func TestAirtableFetchAllServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusBadGateway)
	}))
	defer server.Close()

	a := NewAirtable("key", "base", "Clients", server.URL, server.Client())

	records, err := a.FetchAll(context.Background())
	if err == nil {
		t.Fatal("Expected error for non-200 response")
	}
	if len(records) != 0 {
		t.Errorf("Expected no records on error, got %d", len(records))
	}
}

func TestAirtableFetchAllTransportError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // connection refused from here on

	a := NewAirtable("key", "base", "Clients", server.URL, nil)

	if _, err := a.FetchAll(context.Background()); err == nil {
		t.Fatal("Expected error for unreachable server")
	}
}

func TestAirtableCreateForcesDefaultStatus(t *testing.T) {
	var created airtableCreateRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("Expected POST, got %s", r.Method)
		}
		if err := json.NewDecoder(r.Body).Decode(&created); err != nil {
			t.Errorf("Failed to decode create body: %v", err)
		}
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"id": "recNew"}`))
	}))
	defer server.Close()

	a := NewAirtable("key", "base", "Clients", server.URL, server.Client())

	err := a.Create(context.Background(), models.NewClient{
		Name:    "X",
		Email:   "x@example.com",
		Company: "Y",
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if created.Fields["Name"] != "X" || created.Fields["Company"] != "Y" {
		t.Errorf("Unexpected fields: %+v", created.Fields)
	}
	if created.Fields["Status"] != string(models.DefaultStatus) {
		t.Errorf("Status = %q, want forced %q", created.Fields["Status"], models.DefaultStatus)
	}
}

func TestAirtableCreateServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "denied", http.StatusForbidden)
	}))
	defer server.Close()

	a := NewAirtable("key", "base", "Clients", server.URL, server.Client())

	if err := a.Create(context.Background(), models.NewClient{Name: "X"}); err == nil {
		t.Fatal("Expected error for non-2xx response")
	}
}
