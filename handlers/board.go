// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"

	"github.com/danielhkuo/congress-kanban/board"
	"github.com/danielhkuo/congress-kanban/middleware"
	"github.com/danielhkuo/congress-kanban/models"
	"github.com/danielhkuo/congress-kanban/source"
	"github.com/danielhkuo/congress-kanban/web"
)

type BoardHandler struct {
	src      source.RecordSource
	renderer *web.Renderer
}

func NewBoardHandler(src source.RecordSource, renderer *web.Renderer) *BoardHandler {
	return &BoardHandler{src: src, renderer: renderer}
}

type boardPage struct {
	User     string
	MockMode bool
	Flashes  []web.Flash
	Columns  []models.BoardColumn
}

// Kanban handles GET /kanban
//
// Every render is a fresh fetch-normalize-project cycle; nothing is
// cached between requests. A failing fetch degrades to a board over
// whatever was returned, with a warning flash.
func (h *BoardHandler) Kanban(w http.ResponseWriter, r *http.Request) {
	var flashes []web.Flash
	if f := web.PopFlash(w, r); f != nil {
		flashes = append(flashes, *f)
	}

	raw, err := h.src.FetchAll(r.Context())
	if err != nil {
		slog.Warn("record store fetch failed", "error", err)
		flashes = append(flashes, web.Flash{
			Level:   web.FlashWarning,
			Message: "Error connecting to record store",
		})
	}

	h.renderer.Render(w, "kanban.html", boardPage{
		User:     middleware.SessionUser(r),
		MockMode: h.src.Mode() == source.ModeMock,
		Flashes:  flashes,
		Columns:  board.Columns(board.Normalize(raw)),
	})
}

// APIBoard handles GET /api/board
func (h *BoardHandler) APIBoard(w http.ResponseWriter, r *http.Request) {
	var warning string

	raw, err := h.src.FetchAll(r.Context())
	if err != nil {
		slog.Warn("record store fetch failed", "error", err)
		warning = "record store fetch failed"
	}

	middleware.JSONResponse(w, http.StatusOK, models.BoardResponse{
		Mode:    string(h.src.Mode()),
		Warning: warning,
		Columns: board.Columns(board.Normalize(raw)),
	})
}
