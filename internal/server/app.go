// Package server wires the sync server: PostgreSQL, migrations, services and
// the gRPC endpoint, with graceful shutdown on SIGINT/SIGTERM.
package server

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrijs2005/refugio/internal/logging"
	"github.com/dmitrijs2005/refugio/internal/server/config"
	"github.com/dmitrijs2005/refugio/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/refugio/internal/server/services"

	gs "github.com/dmitrijs2005/refugio/internal/server/grpc"
)

type App struct {
	config         *config.Config
	logger         logging.Logger
	db             *sql.DB
	userService    *services.UserService
	entryService   *services.EntryService
	profileService *services.ProfileService
}

// sqlOpen is a seam for tests.
var sqlOpen = sql.Open

func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	level := slog.LevelInfo
	if c.Debug {
		level = slog.LevelDebug
	}
	logger := logging.NewJSONLogger(os.Stdout, level).With("app", "refugio-server")

	db, err := sqlOpen(repomanager.DriverName, c.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("db ping error: %w", err)
	}

	rm := repomanager.NewPostgresRepositoryManager()
	if err := rm.RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migrations error: %w", err)
	}

	return &App{
		config:         c,
		logger:         logger,
		db:             db,
		userService:    services.NewUserService(db, rm, c),
		entryService:   services.NewEntryService(db, rm),
		profileService: services.NewProfileService(db, rm),
	}, nil
}

// Run serves until a termination signal arrives or ctx is cancelled.
func (app *App) Run(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()
	defer app.db.Close()

	app.logger.Info(ctx, "Starting app...")

	s := gs.NewGRPCServer(app.config.EndpointAddrGRPC, app.logger, app.userService, app.entryService, app.profileService, app.config.SecretKey)
	if err := s.Run(ctx); err != nil {
		app.logger.Error(ctx, "grpc server stopped", "error", err)
		return err
	}

	app.logger.Info(ctx, "Stopped")
	return nil
}
