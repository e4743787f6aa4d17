// Package cli implements the interactive SkillBridge client: account
// registration and login against the local store (or a remote backend when
// configured), session handling, profile onboarding, and the seeker and
// recruiter dashboards.
package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/skillbridge/skillbridge/internal/client/auth"
	"github.com/skillbridge/skillbridge/internal/client/config"
	"github.com/skillbridge/skillbridge/internal/client/remote"
	"github.com/skillbridge/skillbridge/internal/client/storage"
	"github.com/skillbridge/skillbridge/internal/logging"
)

// App wires the client services together and carries the REPL state.
type App struct {
	config   *config.Config
	log      logging.Logger
	db       *sql.DB
	creds    *auth.CredentialRepository
	sessions *auth.SessionManager
	ledger   *auth.ProfileLedger
	backend  *remote.Client

	reader *bufio.Reader
	out    io.Writer
}

// NewApp opens the durable store, builds the auth services on top of it and,
// when a server URL is configured, the remote backend client.
func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {
	logger := logging.NewSlogLogger(slog.New(slog.NewJSONHandler(os.Stderr, nil)))

	db, err := storage.OpenSQLite(ctx, cfg.StorePath)
	if err != nil {
		return nil, fmt.Errorf("store init error: %w", err)
	}

	durable := storage.NewSQLiteStore(db)
	ephemeral := storage.NewMemoryStore()

	ledger := auth.NewProfileLedger(durable)
	creds := auth.NewCredentialRepository(durable, ledger).WithDB(db)
	sessions := auth.NewSessionManager(creds, durable, ephemeral, logger)

	app := &App{
		config:   cfg,
		log:      logger,
		db:       db,
		creds:    creds,
		sessions: sessions,
		ledger:   ledger,
		reader:   bufio.NewReader(os.Stdin),
		out:      os.Stdout,
	}

	if cfg.ServerURL != "" {
		app.backend = remote.NewClient(cfg.ServerURL, durable, cfg.RequestTimeout)
	}
	return app, nil
}

// Close releases the store handle.
func (a *App) Close() error {
	return a.db.Close()
}

func (a *App) isLoggedIn(ctx context.Context) bool {
	return a.sessions.Current(ctx) != nil
}

func (a *App) printf(format string, args ...any) {
	fmt.Fprintf(a.out, format+"\n", args...)
}

// Run restores any persisted session and enters the REPL.
func (a *App) Run(ctx context.Context) {
	if session := a.sessions.Current(ctx); session != nil {
		a.printf("Welcome back, %s (%s)", session.User.Name, session.User.Role)
	} else {
		a.printf("Welcome to SkillBridge (type 'help' for commands)")
	}

	runREPL(ctx, a, func() string { return a.status(ctx) }, bufio.NewScanner(os.Stdin))
}

func (a *App) status(ctx context.Context) string {
	session := a.sessions.Current(ctx)
	if session == nil {
		return ""
	}
	return fmt.Sprintf("(%s %s)", session.User.Email, session.User.Role)
}
