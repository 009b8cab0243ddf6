// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"

	"github.com/danielhkuo/congress-kanban/auth"
	"github.com/danielhkuo/congress-kanban/db"
	"github.com/danielhkuo/congress-kanban/middleware"
	"github.com/danielhkuo/congress-kanban/models"
	"github.com/danielhkuo/congress-kanban/web"
)

type SessionHandler struct {
	provider auth.Provider
	sessions *auth.Sessions
	renderer *web.Renderer
}

func NewSessionHandler(provider auth.Provider, sessions *auth.Sessions, renderer *web.Renderer) *SessionHandler {
	return &SessionHandler{provider: provider, sessions: sessions, renderer: renderer}
}

type loginPage struct {
	Flashes []web.Flash
}

func (h *SessionHandler) authenticated(r *http.Request) bool {
	cookie, err := r.Cookie(middleware.SessionCookieName)
	if err != nil {
		return false
	}
	_, ok := h.sessions.UserForCookie(cookie.Value)
	return ok
}

// Index handles GET /
func (h *SessionHandler) Index(w http.ResponseWriter, r *http.Request) {
	if h.authenticated(r) {
		http.Redirect(w, r, "/kanban", http.StatusFound)
		return
	}
	http.Redirect(w, r, "/login", http.StatusFound)
}

// LoginForm handles GET /login
func (h *SessionHandler) LoginForm(w http.ResponseWriter, r *http.Request) {
	if h.authenticated(r) {
		http.Redirect(w, r, "/kanban", http.StatusFound)
		return
	}

	var page loginPage
	if f := web.PopFlash(w, r); f != nil {
		page.Flashes = append(page.Flashes, *f)
	}
	h.renderer.Render(w, "login.html", page)
}

// Login handles POST /login
func (h *SessionHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
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
		req.Username = r.FormValue("username")
		req.Password = r.FormValue("password")
	}

	if !h.provider.Authenticate(req.Username, req.Password) {
		slog.Warn("login rejected", "username", req.Username, "ip", middleware.GetClientIP(r))
		h.renderer.Render(w, "login.html", loginPage{
			Flashes: []web.Flash{{Level: web.FlashError, Message: "Invalid credentials"}},
		})
		return
	}

	value, err := h.sessions.Issue(req.Username)
	if err != nil {
		slog.Error("failed to issue session", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to create session")
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    value,
		Path:     "/",
		MaxAge:   int(db.SessionTTL.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	slog.Info("login succeeded", "username", req.Username, "ip", middleware.GetClientIP(r))
	http.Redirect(w, r, "/kanban", http.StatusSeeOther)
}

// Logout handles GET /logout
func (h *SessionHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie(middleware.SessionCookieName); err == nil {
		h.sessions.Revoke(cookie.Value)
	}

	http.SetCookie(w, &http.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})
	http.Redirect(w, r, "/login", http.StatusFound)
}
