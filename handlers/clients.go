// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"io"
	"log/slog"
	"net/http"

	"github.com/danielhkuo/congress-kanban/docstore"
	"github.com/danielhkuo/congress-kanban/middleware"
	"github.com/danielhkuo/congress-kanban/models"
	"github.com/danielhkuo/congress-kanban/source"
	"github.com/danielhkuo/congress-kanban/web"
)

type ClientHandler struct {
	src  source.RecordSource
	docs docstore.Store
}

func NewClientHandler(src source.RecordSource, docs docstore.Store) *ClientHandler {
	return &ClientHandler{src: src, docs: docs}
}

// AddClient handles POST /add_client
//
// The caller supplies name, email and company only; any status in the
// body is ignored and the adapter forces the default bucket on write.
func (h *ClientHandler) AddClient(w http.ResponseWriter, r *http.Request) {
	var req models.AddClientRequest
	if middleware.IsJSON(r) {
		if err := middleware.ParseJSONBody(r, &req); err != nil {
			middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
			return
		}
	} else {
		if err := r.ParseForm(); err != nil {
			middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid form body")
			return
		}
		req.Name = r.FormValue("name")
		req.Email = r.FormValue("email")
		req.Company = r.FormValue("company")
	}

	if req.Name == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "name is required")
		return
	}

	err := h.src.Create(r.Context(), models.NewClient{
		Name:    req.Name,
		Email:   req.Email,
		Company: req.Company,
	})
	if err != nil {
		slog.Error("failed to create client", "error", err)
		web.SetFlash(w, web.FlashError, "Error creating client in record store")
	} else {
		slog.Info("client created", "name", req.Name)
		web.SetFlash(w, web.FlashSuccess, "Client added")
	}

	http.Redirect(w, r, "/kanban", http.StatusSeeOther)
}

// UploadDocument handles POST /upload_document/{client_id}
//
// Storage is simulated; the upload is acknowledged without any side
// effect on the record store.
func (h *ClientHandler) UploadDocument(w http.ResponseWriter, r *http.Request) {
	clientID := r.PathValue("client_id")
	if clientID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "client_id is required")
		return
	}

	filename := "document"
	var reader io.Reader
	if file, header, err := r.FormFile("document"); err == nil {
		defer file.Close()
		filename = header.Filename
		reader = file
	}

	url, err := h.docs.Upload(r.Context(), clientID, filename, reader)
	if err != nil {
		slog.Error("document upload failed", "client_id", clientID, "error", err)
		web.SetFlash(w, web.FlashError, "Document upload failed")
	} else {
		slog.Info("document upload simulated", "client_id", clientID, "url", url)
		web.SetFlash(w, web.FlashSuccess, "Document uploaded successfully (Simulation)")
	}

	http.Redirect(w, r, "/kanban", http.StatusSeeOther)
}
