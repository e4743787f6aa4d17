// Package server initializes and runs the SkillBridge auth backend.
// It connects to PostgreSQL, applies migrations, wires the user and resume
// services, and starts the HTTP server with graceful shutdown on OS signals.
package server

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"github.com/skillbridge/skillbridge/internal/logging"
	"github.com/skillbridge/skillbridge/internal/server/config"
	"github.com/skillbridge/skillbridge/internal/server/httpapi"
	"github.com/skillbridge/skillbridge/internal/server/migrations"
	"github.com/skillbridge/skillbridge/internal/server/queue"
	"github.com/skillbridge/skillbridge/internal/server/resumes"
	"github.com/skillbridge/skillbridge/internal/server/users"
)

type App struct {
	config        *config.Config
	logger        logging.Logger
	db            *sql.DB
	userService   *users.Service
	resumeService *resumes.Service
	publisher     *queue.Publisher
}

func NewApp(cfg *config.Config) (*App, error) {

	logger := logging.NewSlogLogger(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	db, err := sql.Open("pgx", cfg.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	if err := runMigrations(db); err != nil {
		return nil, fmt.Errorf("db migration error: %w", err)
	}

	us := users.NewService(users.NewPostgresRepository(db), cfg)

	var publisher *queue.Publisher
	var notifier resumes.Notifier
	if cfg.QueueURL != "" {
		publisher, err = queue.NewPublisher(cfg.QueueURL, cfg.QueueName)
		if err != nil {
			return nil, fmt.Errorf("queue init error: %w", err)
		}
		notifier = publisher
	}

	rs := resumes.NewService(cfg, notifier)

	return &App{
		config:        cfg,
		logger:        logger,
		db:            db,
		userService:   us,
		resumeService: rs,
		publisher:     publisher,
	}, nil
}

func runMigrations(db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)

	if err := goose.SetDialect("postgres"); err != nil {
		return err
	}
	return goose.Up(db, ".")
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) startHTTPServer(ctx context.Context, cancelFunc context.CancelFunc) {

	s := httpapi.NewServer(app.config.EndpointAddr, app.logger, app.userService, app.resumeService)

	if err := s.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

func (app *App) Run(ctx context.Context) {

	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		app.startHTTPServer(ctx, cancelFunc)
	}()

	wg.Wait()

	if app.publisher != nil {
		if err := app.publisher.Close(); err != nil {
			app.logger.Error(ctx, err.Error())
		}
	}
	if err := app.db.Close(); err != nil {
		app.logger.Error(ctx, err.Error())
	}
}
