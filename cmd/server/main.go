package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"

	"github.com/pautaops/pauta/internal/catalog"
	"github.com/pautaops/pauta/internal/collection"
	"github.com/pautaops/pauta/internal/config"
	"github.com/pautaops/pauta/internal/edit"
	"github.com/pautaops/pauta/internal/logging"
	"github.com/pautaops/pauta/internal/store"
	"github.com/pautaops/pauta/internal/web"
)

func main() {
	// Load .env file if it exists (Overload overwrites existing env vars)
	if err := godotenv.Overload(); err != nil {
		slog.Info("no .env file found, using environment variables")
	} else {
		slog.Info("loaded .env file (overwriting existing env vars)")
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	logging.Setup(cfg.Logging.Level, cfg.Logging.Format)

	slog.Info("configuration loaded",
		"port", cfg.Server.Port,
		"edit_policy", cfg.Edit.Policy,
		"import_max_file_size", cfg.Import.MaxFileSize,
		"database", cfg.Database.URL != "",
	)

	ctx := context.Background()

	var pool *pgxpool.Pool
	if cfg.Database.URL != "" {
		poolConfig, err := pgxpool.ParseConfig(cfg.Database.URL)
		if err != nil {
			slog.Error("failed to parse database URL", "error", err)
			os.Exit(1)
		}
		poolConfig.MaxConns = int32(cfg.Database.MaxConns)
		poolConfig.MinConns = int32(cfg.Database.MinConns)
		poolConfig.MaxConnLifetime = cfg.Database.MaxConnLifetime
		poolConfig.MaxConnIdleTime = cfg.Database.MaxConnIdleTime

		pool, err = pgxpool.NewWithConfig(ctx, poolConfig)
		if err != nil {
			slog.Error("failed to connect to database", "error", err)
			os.Exit(1)
		}
		defer pool.Close()

		if err := pool.Ping(ctx); err != nil {
			slog.Error("failed to ping database", "error", err)
			os.Exit(1)
		}
		slog.Info("connected to database")
	} else {
		slog.Warn("DATABASE_URL not set, records will not survive a restart")
	}

	policy := edit.DiscardSibling
	if cfg.Edit.Policy == "reject" {
		policy = edit.RejectSibling
	}

	resources := map[string]*web.Resource{
		"pi": buildResource(ctx, catalog.PI, pool, policy),
		"pc": buildResource(ctx, catalog.PC, pool, policy),
	}

	server := web.NewServer(cfg, resources)

	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh

		slog.Info("shutting down...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			slog.Error("shutdown error", "error", err)
		}
	}()

	slog.Info("server starting", "addr", cfg.Server.Addr())
	if err := server.Start(); err != nil {
		slog.Info("server stopped", "error", err)
	}
}

// buildResource wires one record variant: store, preloaded collection, and
// edit controller.
func buildResource(ctx context.Context, cat *catalog.Catalog, pool *pgxpool.Pool, policy edit.Policy) *web.Resource {
	var st store.Store
	if pool != nil {
		st = store.NewPostgres(pool, cat)
	} else {
		st = store.NewMemory(cat)
	}

	recs := collection.New(cat.IDKey)
	if loaded, err := st.GetAll(ctx); err != nil {
		slog.Error("initial load failed", "variant", cat.Variant, "error", err)
	} else {
		recs.ReplaceAll(loaded)
		slog.Info("records loaded", "variant", cat.Variant, "count", len(loaded))
	}

	return &web.Resource{
		Catalog: cat,
		Store:   st,
		Records: recs,
		Edits:   edit.NewController(cat, st, recs, policy, nil),
	}
}
