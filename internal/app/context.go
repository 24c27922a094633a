package app

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"todosync/internal/config"
	"todosync/internal/db"
	"todosync/internal/engine"
	"todosync/internal/migrate"
	todosyncsdk "todosync/sdk/go"
)

// Options select the workspace and override values from todosync.yml.
type Options struct {
	Workspace string
	BaseURL   string
	Token     string
	Timeout   time.Duration
	Logger    *slog.Logger
}

// ResolveConfig loads the workspace config, seeding defaults when the file
// is missing. A non-empty BaseURL override wins over the file.
func ResolveConfig(opts Options) (*config.Config, error) {
	cfg, err := config.LoadOptional(opts.Workspace)
	if err != nil {
		return nil, err
	}
	if cfg == nil {
		cfg = config.Default(config.DefaultBaseURL)
	}
	if opts.BaseURL != "" {
		cfg.API.BaseURL = opts.BaseURL
		if err := cfg.Validate(); err != nil {
			return nil, err
		}
	}
	return cfg, nil
}

// Env is an opened workspace: migrated database, config and engine.
type Env struct {
	DB     *sql.DB
	Config *config.Config
	Engine engine.Engine
}

// Open opens and migrates the workspace database and wires an engine that
// talks to the configured sync endpoint.
func Open(ctx context.Context, opts Options) (*Env, error) {
	cfg, err := ResolveConfig(opts)
	if err != nil {
		return nil, err
	}
	conn, err := db.Open(db.Config{Workspace: opts.Workspace})
	if err != nil {
		return nil, err
	}
	if err := migrate.MigrateContext(ctx, conn); err != nil {
		conn.Close()
		return nil, fmt.Errorf("migrate %s: %w", db.Path(opts.Workspace), err)
	}
	client := todosyncsdk.New(cfg.API.BaseURL, opts.Token)
	client.Timeout = cfg.Timeout(client.Timeout)
	if opts.Timeout > 0 {
		client.Timeout = opts.Timeout
	}
	e := engine.New(conn, cfg, client)
	e.Logger = opts.Logger
	return &Env{DB: conn, Config: cfg, Engine: e}, nil
}

func (e *Env) Close() error {
	if e == nil || e.DB == nil {
		return nil
	}
	return e.DB.Close()
}
