package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	goredis "github.com/redis/go-redis/v9"

	"github.com/dmitrymomot/iconkit/assets"
	"github.com/dmitrymomot/iconkit/pkg/catalog"
	"github.com/dmitrymomot/iconkit/pkg/httpserver"
	"github.com/dmitrymomot/iconkit/pkg/logger"
	"github.com/dmitrymomot/iconkit/pkg/redis"
	"github.com/dmitrymomot/iconkit/pkg/resource"
)

var errUnknownSource = errors.New("unknown icon source")

// app holds what every command needs: logger, store and catalog.
type app struct {
	cfg     Config
	log     *slog.Logger
	store   resource.Store
	catalog *catalog.Catalog
	checks  []httpserver.Check
	closers []func() error
}

func loggerOptions(cfg Config, w io.Writer) []logger.Option {
	opts := []logger.Option{
		logger.WithEnvironment(cfg.Env, "iconkit"),
		logger.WithOutput(w),
	}
	if lvl, ok := logger.ParseLevel(cfg.LogLevel); ok && cfg.LogLevel != "" {
		opts = append(opts, logger.WithLevel(lvl))
	}
	return opts
}

func newLogger(cfg Config, w io.Writer) *slog.Logger {
	return logger.New(loggerOptions(cfg, w)...)
}

// openApp connects the configured source and opens the catalog over it.
func openApp(ctx context.Context, cfg Config, log *slog.Logger) (*app, error) {
	a := &app{cfg: cfg, log: log}

	store, err := a.openStore(ctx, cfg.Source)
	if err != nil {
		_ = a.Close()
		return nil, err
	}
	a.store = store

	entries, err := loadCatalog(cfg.Catalog)
	if err != nil {
		_ = a.Close()
		return nil, err
	}
	a.catalog, err = catalog.Open(store, entries, catalog.WithLogger(log))
	if err != nil {
		_ = a.Close()
		return nil, err
	}

	log.DebugContext(ctx, "catalog opened",
		slog.String("source", cfg.Source),
		slog.Int("libraries", a.catalog.Len()),
	)
	return a, nil
}

// openStore builds the resource store for source. Redis clients are closed by Close.
func (a *app) openStore(ctx context.Context, source string) (resource.Store, error) {
	switch source {
	case sourceEmbed:
		return resource.NewFSStore(assets.Icons()), nil

	case sourceDir:
		return resource.NewDirStore(a.cfg.Dir)

	case sourceS3:
		return resource.NewS3Store(ctx, a.cfg.S3, resource.WithS3RequestTimeout(a.cfg.Timeout))

	case sourceRedis:
		client, err := a.connectRedis(ctx)
		if err != nil {
			return nil, err
		}
		return resource.NewRedisStore(client, resource.WithRedisPrefix(a.cfg.RedisPrefix)), nil

	default:
		return nil, fmt.Errorf("%w: %q (want %s, %s, %s or %s)",
			errUnknownSource, source, sourceEmbed, sourceDir, sourceS3, sourceRedis)
	}
}

func (a *app) connectRedis(ctx context.Context) (*goredis.Client, error) {
	client, err := redis.Connect(ctx, a.cfg.Redis)
	if err != nil {
		return nil, err
	}
	a.closers = append(a.closers, client.Close)
	a.checks = append(a.checks, httpserver.Check{Name: "redis", Check: redis.Healthcheck(client)})
	return client, nil
}

// loadCatalog reads a catalog file, or the bundled catalog when path is empty.
func loadCatalog(path string) ([]catalog.Entry, error) {
	if path == "" {
		return catalog.ParseFile(assets.FS, assets.CatalogFile)
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}
	return catalog.ParseFile(os.DirFS(filepath.Dir(abs)), filepath.Base(abs))
}

func (a *app) Close() error {
	var errs []error
	for _, c := range a.closers {
		errs = append(errs, c())
	}
	a.closers = nil
	return errors.Join(errs...)
}
