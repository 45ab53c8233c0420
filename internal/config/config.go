package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"go.uber.org/fx"
)

// Module provides process configuration.
var Module = fx.Provide(Load)

// Config holds application configuration.
type Config struct {
	AppName     string
	AppVersion  string
	Environment string

	// ListenAddr is the local bind address for the HTTP surface.
	// The app is a single-session desktop engine; keep it on loopback.
	ListenAddr string

	// DataDir holds the persisted JSON collections.
	DataDir string

	// OutputDir is where generated PDF artifacts are written.
	OutputDir string
}

// Load loads configuration from environment variables and .env file.
func Load() Config {
	_ = godotenv.Load()

	cfg := Config{
		AppName:     getenv("APP_SERVICE", "megabooks"),
		AppVersion:  getenv("APP_VERSION", "0.1.0"),
		Environment: getenv("ENVIRONMENT", "development"),
		ListenAddr:  getenv("LISTEN_ADDR", "127.0.0.1:8087"),
		DataDir:     getenv("DATA_DIR", "."),
		OutputDir:   getenv("OUTPUT_DIR", "."),
	}

	return cfg
}

// DataPath resolves a persisted collection file inside DataDir.
func (c Config) DataPath(name string) string {
	return filepath.Join(c.DataDir, name)
}

func getenv(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}
