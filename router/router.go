// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"database/sql"
	"net/http"

	"github.com/danielhkuo/congress-kanban/auth"
	"github.com/danielhkuo/congress-kanban/cliparse"
	"github.com/danielhkuo/congress-kanban/db"
	"github.com/danielhkuo/congress-kanban/dispatch"
	"github.com/danielhkuo/congress-kanban/docstore"
	"github.com/danielhkuo/congress-kanban/handlers"
	"github.com/danielhkuo/congress-kanban/middleware"
	"github.com/danielhkuo/congress-kanban/source"
	"github.com/danielhkuo/congress-kanban/web"
)

func NewRouter(dbConn *sql.DB, cfg cliparse.Config, src source.RecordSource) (*http.ServeMux, error) {
	provider, err := auth.NewStaticProvider(cfg.AdminUsername, cfg.AdminPassword)
	if err != nil {
		return nil, err
	}
	sessions := auth.NewSessions(cfg.SessionSecret, db.NewSessionStore(dbConn))
	renderer := web.NewRenderer()
	dispatcher := dispatch.New(nil)

	// Initialize handlers
	sessionHandler := handlers.NewSessionHandler(provider, sessions, renderer)
	boardHandler := handlers.NewBoardHandler(src, renderer)
	clientHandler := handlers.NewClientHandler(src, docstore.Simulated{})
	workflowHandler := handlers.NewWorkflowHandler(dispatcher, cfg)

	mux := http.NewServeMux()

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Session management
	mux.HandleFunc("GET /{$}", middleware.WithLogging(sessionHandler.Index))
	mux.HandleFunc("GET /login", middleware.WithLogging(sessionHandler.LoginForm))
	mux.HandleFunc("POST /login", middleware.WithLogging(sessionHandler.Login))
	mux.HandleFunc("GET /logout", middleware.WithLogging(sessionHandler.Logout))

	// Board (session required; page GETs redirect to /login)
	mux.HandleFunc("GET /kanban", middleware.WithLogging(middleware.RequireSession(sessions, true, boardHandler.Kanban)))
	mux.HandleFunc("GET /api/board", middleware.WithLogging(middleware.RequireSession(sessions, false, boardHandler.APIBoard)))

	// Mutations (session required; 401 without one, no redirect)
	mux.HandleFunc("POST /add_client", middleware.WithLogging(middleware.RequireSession(sessions, false, clientHandler.AddClient)))
	mux.HandleFunc("POST /upload_document/{client_id}", middleware.WithLogging(middleware.RequireSession(sessions, false, clientHandler.UploadDocument)))
	mux.HandleFunc("POST /trigger_invitations", middleware.WithLogging(middleware.RequireSession(sessions, false, workflowHandler.TriggerInvitations)))
	mux.HandleFunc("POST /trigger_scraping", middleware.WithLogging(middleware.RequireSession(sessions, false, workflowHandler.TriggerScraping)))

	return mux, nil
}
