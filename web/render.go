// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package web renders the server-side HTML pages and carries flash
// messages between requests.
package web

import (
	"embed"
	"html/template"
	"log/slog"
	"net/http"
)

//go:embed templates/*.html
var templatesFS embed.FS

// Renderer executes the embedded page templates.
type Renderer struct {
	tmpl *template.Template
}

func NewRenderer() *Renderer {
	tmpl := template.Must(template.New("").
		Funcs(template.FuncMap{
			"shortID": shortID,
		}).
		ParseFS(templatesFS, "templates/*.html"))
	return &Renderer{tmpl: tmpl}
}

// Render writes a page. Template failures are logged and surfaced as a
// plain 500; there is no partial-page recovery.
func (rd *Renderer) Render(w http.ResponseWriter, name string, data any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := rd.tmpl.ExecuteTemplate(w, name, data); err != nil {
		slog.Error("template render failed", "template", name, "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
	}
}

// shortID trims an opaque record id down to a card-sized suffix.
func shortID(id string) string {
	if len(id) <= 4 {
		return id
	}
	return id[len(id)-4:]
}
