package main

import (
	"database/sql"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	_ "modernc.org/sqlite"

	"github.com/danielhkuo/congress-kanban/cliparse"
	"github.com/danielhkuo/congress-kanban/db"
	"github.com/danielhkuo/congress-kanban/router"
	"github.com/danielhkuo/congress-kanban/source"
)

func main() {
	var err error

	// Load .env if present (parity with the legacy dashboards)
	if err := godotenv.Load(); err == nil {
		slog.Info("Loaded .env")
	}

	// Parse configuration
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		os.Exit(1)
	}

	// Open the session database
	dbConn, err := sql.Open("sqlite", cfg.SessionDB)
	if err != nil {
		slog.Error("session database open failed", "error", err)
		os.Exit(1)
	}
	defer dbConn.Close()

	// Verify connection
	if err := dbConn.Ping(); err != nil {
		slog.Error("session database ping failed", "error", err)
		os.Exit(1)
	}

	// Create schema (tables)
	if err := db.CreateSchema(dbConn); err != nil {
		slog.Error("schema creation failed", "error", err)
		os.Exit(1)
	}
	slog.Info("Session store ready")

	// Sweep sessions left over from previous runs
	if n, err := db.NewSessionStore(dbConn).DeleteExpired(); err != nil {
		slog.Warn("session sweep failed", "error", err)
	} else if n > 0 {
		slog.Info("expired sessions swept", "count", n)
	}

	// Pick the record source once, from configuration
	src := source.New(cfg)
	slog.Info("Record source ready", "mode", src.Mode())

	// Create router
	mux, err := router.NewRouter(dbConn, cfg, src)
	if err != nil {
		slog.Error("router setup failed", "error", err)
		os.Exit(1)
	}

	// Create server
	server := http.Server{
		Handler:           mux,
		Addr:              ":" + strconv.Itoa(cfg.Port),
		ReadHeaderTimeout: 10 * time.Second,
	}

	// signal.Notify requires the channel to be buffered
	ctrlc := make(chan os.Signal, 1)
	signal.Notify(ctrlc, os.Interrupt, syscall.SIGTERM)
	go func() {
		// Wait for Ctrl-C signal
		<-ctrlc
		server.Close()
	}()

	// Start server
	slog.Info("Listening", "port", cfg.Port)
	err = server.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		slog.Error("Server closed", "error", err)
	} else {
		slog.Info("Server closed", "error", err)
	}
}
