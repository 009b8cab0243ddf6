// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package board

import (
	"strings"

	"github.com/danielhkuo/congress-kanban/models"
)

// statusByLabel maps the uppercased column labels to their statuses.
var statusByLabel = func() map[string]models.Status {
	m := make(map[string]models.Status, len(models.AllStatuses()))
	for _, st := range models.AllStatuses() {
		m[strings.ToUpper(string(st))] = st
	}
	return m
}()

// Resolve matches a raw status token against the pipeline buckets.
// The token is trimmed and uppercased before matching; anything that
// still doesn't match lands in models.DefaultStatus.
func Resolve(raw string) models.Status {
	token := strings.ToUpper(strings.TrimSpace(raw))
	if st, ok := statusByLabel[token]; ok {
		return st
	}
	return models.DefaultStatus
}

// Normalize groups raw records into the five pipeline buckets.
//
// Every raw record yields exactly one client: no sorting, no
// deduplication, no merging of records that share an id. Relative order
// within each bucket is the source fetch order. Every bucket key is
// present in the result even when empty, so presenters can render empty
// columns.
func Normalize(raw []models.RawRecord) models.Board {
	b := make(models.Board, len(models.AllStatuses()))
	for _, st := range models.AllStatuses() {
		b[st] = []models.Client{}
	}

	for _, r := range raw {
		st := Resolve(r.Status)
		company := r.Company
		if company == "" {
			company = models.CompanySentinel
		}
		b[st] = append(b[st], models.Client{
			ID:      r.ID,
			Name:    r.Name,
			Company: company,
			Status:  st,
		})
	}

	return b
}

// Columns projects a board into ordered columns for rendering.
func Columns(b models.Board) []models.BoardColumn {
	cols := make([]models.BoardColumn, 0, len(models.AllStatuses()))
	for _, st := range models.AllStatuses() {
		cols = append(cols, models.BoardColumn{Status: st, Clients: b[st]})
	}
	return cols
}
