package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
	"github.com/sirupsen/logrus"
)

// Config holds the settings shared by the atomsite commands.
type Config struct {
	Address     string
	APIURL      string
	CatalogPath string
	LogLevel    logrus.Level
}

const (
	defaultConfigPath = "~/.config/atomsite/config.toml"
	defaultAddress    = ":5000"
	defaultLogLevel   = logrus.InfoLevel

	// APIURLEnv overrides api_url when set.
	APIURLEnv = "ATOMSITE_API_URL"
)

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{
		Address:  defaultAddress,
		APIURL:   strings.TrimSpace(os.Getenv(APIURLEnv)),
		LogLevel: defaultLogLevel,
	}
}

// Load reads the TOML config at path, or the default location when path
// is empty. A missing file yields Default().
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
		Address     string `toml:"address"`
		APIURL      string `toml:"api_url"`
		CatalogPath string `toml:"catalog_path"`
		LogLevel    string `toml:"log_level"`
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	if addr := strings.TrimSpace(raw.Address); addr != "" {
		cfg.Address = addr
	}
	if cfg.APIURL == "" {
		cfg.APIURL = strings.TrimSpace(raw.APIURL)
	}
	if p := strings.TrimSpace(raw.CatalogPath); p != "" {
		// relative catalog paths are relative to the config file
		if !strings.HasPrefix(p, "~") && !filepath.IsAbs(p) {
			p = filepath.Join(filepath.Dir(resolved), p)
		}
		cfg.CatalogPath, err = expandPath(p)
		if err != nil {
			return Config{}, fmt.Errorf("catalog_path: %w", err)
		}
	}
	if lvl := strings.TrimSpace(raw.LogLevel); lvl != "" {
		cfg.LogLevel, err = logrus.ParseLevel(lvl)
		if err != nil {
			return Config{}, fmt.Errorf("log_level: %w", err)
		}
	}

	return cfg, nil
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
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
