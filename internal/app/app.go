package app

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/five82/gallery/internal/catalog"
	"github.com/five82/gallery/internal/config"
	"github.com/five82/gallery/internal/favorites"
	"github.com/five82/gallery/internal/logging"
	"github.com/five82/gallery/internal/prefs"
	"github.com/five82/gallery/internal/storage"
	"github.com/five82/gallery/internal/ui"
)

// Options configure the gallery application.
type Options struct {
	ConfigPath     string
	PrefsPath      string // empty uses default ~/.config/gallery/prefs.toml
	CatalogPath    string // overrides catalog_path
	StorageBackend string // overrides storage_backend
	Verbose        bool
}

// Env holds everything loaded at startup. The TUI and the CLI subcommands
// share it.
type Env struct {
	Config    config.Config
	Catalog   catalog.Catalog
	Storage   storage.Storage
	Favorites *favorites.Store
	Logger    *zap.Logger
}

// Open loads config, logger, catalog, storage and favorites. Malformed
// favorites are logged and start out empty.
func Open(opts Options) (*Env, error) {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if path := strings.TrimSpace(opts.CatalogPath); path != "" {
		expanded, err := config.ExpandPath(path)
		if err != nil {
			return nil, fmt.Errorf("resolve catalog path: %w", err)
		}
		cfg.CatalogPath = expanded
	}
	cfg = cfg.WithBackend(opts.StorageBackend)

	logger, err := logging.New(cfg.LogPath, opts.Verbose)
	if err != nil {
		return nil, fmt.Errorf("init logging: %w", err)
	}

	cat, err := catalog.Load(cfg.CatalogPath)
	if err != nil {
		logger.Error("load catalog", zap.String("path", cfg.CatalogPath), zap.Error(err))
		_ = logger.Sync()
		return nil, err
	}

	store, err := storage.Open(cfg.StorageBackend, cfg.StoragePath)
	if err != nil {
		logger.Error("open storage",
			zap.String("backend", cfg.StorageBackend),
			zap.String("path", cfg.StoragePath),
			zap.Error(err),
		)
		_ = logger.Sync()
		return nil, fmt.Errorf("open storage: %w", err)
	}

	favs := favorites.New(store)
	if err := favs.Load(); err != nil {
		logger.Warn("favorites reset",
			zap.Bool("malformed", errors.Is(err, favorites.ErrMalformed)),
			zap.Error(err),
		)
	}

	logger.Info("gallery opened",
		zap.Int("artworks", len(cat)),
		zap.String("storage", cfg.StorageBackend),
		zap.Int("favorites", favs.Len()),
	)

	return &Env{
		Config:    cfg,
		Catalog:   cat,
		Storage:   store,
		Favorites: favs,
		Logger:    logger,
	}, nil
}

// Close releases storage and flushes the logger.
func (e *Env) Close() error {
	err := e.Storage.Close()
	_ = e.Logger.Sync()
	if err != nil {
		return fmt.Errorf("close storage: %w", err)
	}
	return nil
}

// Run boots the gallery TUI until the user quits or the context is cancelled.
func Run(ctx context.Context, opts Options) error {
	env, err := Open(opts)
	if err != nil {
		return err
	}
	defer func() { _ = env.Close() }()

	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}
	userPrefs := prefs.Load(prefsPath)

	uiOpts := ui.Options{
		Catalog:     env.Catalog,
		Favorites:   env.Favorites,
		Logger:      env.Logger,
		ThemeName:   userPrefs.Theme,
		Layout:      userPrefs.Layout,
		PrefsPath:   prefsPath,
		PlaylistURL: env.Config.PlaylistURL,
	}
	if err := ui.Run(ctx, uiOpts); err != nil {
		env.Logger.Error("ui exited", zap.Error(err))
		return fmt.Errorf("run ui: %w", err)
	}
	env.Logger.Info("gallery closed")
	return nil
}
