package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/five82/gallery/internal/storage"
)

// Config captures the gallery's runtime settings.
type Config struct {
	CatalogPath    string // empty selects the embedded catalog
	StorageBackend string
	StoragePath    string
	LogPath        string
	PlaylistURL    string
}

const (
	defaultConfigPath  = "~/.config/gallery/config.toml"
	defaultDataDir     = "~/.local/share/gallery"
	defaultPlaylistURL = "https://open.spotify.com/embed/playlist/0iJEh2BsvSw8V3lDTkiUK7"
)

// Default returns the settings used when no config file exists.
func Default() Config {
	dataDir := mustExpand(defaultDataDir)
	return Config{
		StorageBackend: storage.BackendFile,
		StoragePath:    defaultStoragePath(storage.BackendFile),
		LogPath:        filepath.Join(dataDir, "gallery.log"),
		PlaylistURL:    defaultPlaylistURL,
	}
}

// Load locates and parses the gallery config, falling back to defaults when missing.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Default()

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var raw struct {
		CatalogPath    string `toml:"catalog_path"`
		StorageBackend string `toml:"storage_backend"`
		StoragePath    string `toml:"storage_path"`
		LogPath        string `toml:"log_path"`
		PlaylistURL    string `toml:"playlist_url"`
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	if catalog := strings.TrimSpace(raw.CatalogPath); catalog != "" {
		cfg.CatalogPath = mustExpand(catalog)
	}

	cfg = cfg.WithBackend(raw.StorageBackend)
	if path := strings.TrimSpace(raw.StoragePath); path != "" {
		cfg.StoragePath = mustExpand(path)
	}
	if path := strings.TrimSpace(raw.LogPath); path != "" {
		cfg.LogPath = mustExpand(path)
	}
	if url := strings.TrimSpace(raw.PlaylistURL); url != "" {
		cfg.PlaylistURL = url
	}

	return cfg, nil
}

// WithBackend switches the storage backend. A storage path still at the old
// backend's default moves to the new backend's default.
func (c Config) WithBackend(backend string) Config {
	backend = strings.ToLower(strings.TrimSpace(backend))
	if backend == "" || backend == c.StorageBackend {
		return c
	}
	if c.StoragePath == defaultStoragePath(c.StorageBackend) {
		c.StoragePath = defaultStoragePath(backend)
	}
	c.StorageBackend = backend
	return c
}

func defaultStoragePath(backend string) string {
	name := "storage.json"
	if backend == storage.BackendSQLite {
		name = "storage.db"
	}
	return filepath.Join(mustExpand(defaultDataDir), name)
}

// ExpandPath resolves "~" and relative paths to an absolute path.
func ExpandPath(path string) (string, error) {
	return expandPath(path)
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func mustExpand(path string) string {
	expanded, err := expandPath(path)
	if err != nil {
		return path
	}
	return expanded
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
