// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package source

import (
	"context"

	"github.com/danielhkuo/congress-kanban/models"
)

// mockRecords is the demo data set served when no record store is
// configured: one record per pipeline bucket, always in this order.
var mockRecords = []models.RawRecord{
	{ID: "1", Name: "Juan Perez", Status: "INVITACIÓN", Company: "Tech Corp"},
	{ID: "2", Name: "Maria Garcia", Status: "ACEPTADO", Company: "Eventos MX"},
	{ID: "3", Name: "Carlos Lopez", Status: "EN ESPERA", Company: "Global Congress"},
	{ID: "4", Name: "Ana Silva", Status: "VALIDACIÓN DOCTOS", Company: "Travel Inc"},
	{ID: "5", Name: "Pedro Ruiz", Status: "ACEPTADOS", Company: "Mega Events"},
}

// Mock serves the fixed demo data set. Running unconfigured is a
// deliberate degrade-to-demo policy, not an error state.
type Mock struct{}

func NewMock() *Mock { return &Mock{} }

func (m *Mock) Mode() Mode { return ModeMock }

// FetchAll returns a copy of the demo records so callers can't mutate
// the canonical set.
func (m *Mock) FetchAll(ctx context.Context) ([]models.RawRecord, error) {
	records := make([]models.RawRecord, len(mockRecords))
	copy(records, mockRecords)
	return records, nil
}

// Create is a silent no-op: with no store configured there is nowhere
// to write.
func (m *Mock) Create(ctx context.Context, c models.NewClient) error {
	return nil
}
