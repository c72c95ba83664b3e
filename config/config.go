// Package config resolves settings from defaults, an optional yaml file,
// a .env file and RECIPES_* environment variables, in that order.
package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// LogConfig controls the zerolog output.
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"` // "json" | "console"
}

// Config is the full application configuration.
type Config struct {
	DataFile string    `yaml:"data_file"` // recipes JSON file served by the API
	Addr     string    `yaml:"addr"`      // API listen address
	WebAddr  string    `yaml:"web_addr"`  // web UI listen address
	APIURL   string    `yaml:"api_url"`   // API base URL used by the web UI and CLI
	Storage  string    `yaml:"storage"`   // local storage file holding favorites
	Log      LogConfig `yaml:"log"`
}

// Default returns a Config populated with the stock settings.
func Default() *Config {
	return &Config{
		DataFile: filepath.Join("data", "recipes.json"),
		Addr:     ":3001",
		WebAddr:  ":3000",
		APIURL:   "http://localhost:3001",
		Storage:  defaultStoragePath(),
		Log: LogConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

func defaultStoragePath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return filepath.Join(".recipe-saver", "storage.json")
	}
	return filepath.Join(dir, "recipe-saver", "storage.json")
}

// Load builds the configuration. path may be empty; a missing yaml file or
// .env file is not an error. Keys absent from the yaml keep their defaults.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, fs.ErrNotExist):
		case err != nil:
			return nil, err
		default:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, err
			}
		}
	}

	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, err
	}

	applyEnv(cfg)
	return cfg, nil
}

func applyEnv(cfg *Config) {
	overrides := []struct {
		key string
		dst *string
	}{
		{"RECIPES_DATA_FILE", &cfg.DataFile},
		{"RECIPES_ADDR", &cfg.Addr},
		{"RECIPES_WEB_ADDR", &cfg.WebAddr},
		{"RECIPES_API_URL", &cfg.APIURL},
		{"RECIPES_STORAGE", &cfg.Storage},
		{"RECIPES_LOG_LEVEL", &cfg.Log.Level},
		{"RECIPES_LOG_FORMAT", &cfg.Log.Format},
	}
	for _, o := range overrides {
		if v := os.Getenv(o.key); v != "" {
			*o.dst = v
		}
	}
}
