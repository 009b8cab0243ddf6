// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"

	"github.com/danielhkuo/congress-kanban/cliparse"
	"github.com/danielhkuo/congress-kanban/dispatch"
	"github.com/danielhkuo/congress-kanban/middleware"
	"github.com/danielhkuo/congress-kanban/models"
	"github.com/danielhkuo/congress-kanban/web"
)

type WorkflowHandler struct {
	dispatcher *dispatch.Dispatcher
	cfg        cliparse.Config
}

func NewWorkflowHandler(dispatcher *dispatch.Dispatcher, cfg cliparse.Config) *WorkflowHandler {
	return &WorkflowHandler{dispatcher: dispatcher, cfg: cfg}
}

// TriggerScraping handles POST /trigger_scraping
func (h *WorkflowHandler) TriggerScraping(w http.ResponseWriter, r *http.Request) {
	var req models.TriggerScrapeRequest
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
		req.Criteria = r.FormValue("criteria")
	}

	result := h.dispatcher.Send(r.Context(), h.cfg.ScrapeWebhookURL, models.ScrapePayload{
		Criteria: req.Criteria,
		Action:   "scrape",
	})
	flashDispatch(w, result, "Scraping process started!", "Scrape webhook URL not configured")
	http.Redirect(w, r, "/kanban", http.StatusSeeOther)
}

// TriggerInvitations handles POST /trigger_invitations
func (h *WorkflowHandler) TriggerInvitations(w http.ResponseWriter, r *http.Request) {
	var req models.TriggerInvitationsRequest
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
		req.CategoryID = r.FormValue("categoryId")
		req.TemplateID = r.FormValue("templateId")
	}

	result := h.dispatcher.Send(r.Context(), h.cfg.InviteWebhookURL, models.InvitationPayload{
		CategoryID: req.CategoryID,
		TemplateID: req.TemplateID,
	})
	flashDispatch(w, result, "Invitation process started!", "Invite webhook URL not configured")
	http.Redirect(w, r, "/kanban", http.StatusSeeOther)
}

// flashDispatch maps a dispatch result onto the user-facing flash. A
// failed or unconfigured dispatch is a warning on the next page, never a
// failed request.
func flashDispatch(w http.ResponseWriter, result dispatch.Result, successMsg, notConfiguredMsg string) {
	switch result.Outcome {
	case dispatch.Success:
		web.SetFlash(w, web.FlashSuccess, successMsg)
	case dispatch.NotConfigured:
		web.SetFlash(w, web.FlashWarning, notConfiguredMsg)
	case dispatch.TransportError:
		slog.Error("webhook dispatch failed", "detail", result.Detail)
		web.SetFlash(w, web.FlashError, "Error triggering webhook: "+result.Detail)
	}
}
