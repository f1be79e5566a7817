package app

import (
	"context"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/openroam/wanderspin-backend/internal/adapter/notify"
	"github.com/openroam/wanderspin-backend/internal/adapter/postgres"
	"github.com/openroam/wanderspin-backend/internal/adapter/postgres/destination"
	"github.com/openroam/wanderspin-backend/internal/adapter/postgres/spinlog"
	"github.com/openroam/wanderspin-backend/internal/config"
	"github.com/openroam/wanderspin-backend/internal/service/collection"
)

// App holds the wired components of the backend. Transports embed it and
// drive the collection service per authenticated request.
type App struct {
	Cfg        *config.Config
	Log        *slog.Logger
	Pool       *pgxpool.Pool
	Collection *collection.Service
}

// New loads configuration, initializes the logger, connects to the store,
// and wires the collection service.
func New(ctx context.Context) (*App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	logger := NewLogger(cfg.Log)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return nil, err
	}

	svc := collection.NewService(
		logger,
		destination.New(pool),
		spinlog.New(pool),
		notify.NewLog(logger),
		cfg.Sync.MaxSavedPerUser,
		cfg.Sync.LoadTimeout,
	)

	return &App{
		Cfg:        cfg,
		Log:        logger,
		Pool:       pool,
		Collection: svc,
	}, nil
}

// Close releases the application's resources.
func (a *App) Close() {
	a.Pool.Close()
}

// Run wires the application and blocks until ctx is canceled.
func Run(ctx context.Context) error {
	a, err := New(ctx)
	if err != nil {
		return err
	}
	defer a.Close()

	a.Log.Info("wanderspin backend ready",
		slog.String("version", BuildVersion()),
		slog.String("log_level", a.Cfg.Log.Level),
	)

	<-ctx.Done()

	a.Log.Info("shutting down")
	return nil
}
