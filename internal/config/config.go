package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App struct {
		Name     string `envconfig:"APP_NAME" default:"ledgerconv"`
		LogLevel string `envconfig:"LOG_LEVEL" default:"info"`
	}

	Formats struct {
		// Dir is where format definition TOML files live. Empty means the
		// OS config directory (e.g. ~/.config/ledgerconv/formats).
		Dir string `envconfig:"FORMATS_DIR"`
	}

	Output struct {
		PayeeMaxLength int `envconfig:"PAYEE_MAX_LENGTH" default:"100"`
		MemoMaxLength  int `envconfig:"MEMO_MAX_LENGTH" default:"200"`
	}
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}

	if cfg.Formats.Dir == "" {
		base, err := os.UserConfigDir()
		if err != nil {
			return nil, fmt.Errorf("resolving config directory: %w", err)
		}

		cfg.Formats.Dir = filepath.Join(base, "ledgerconv", "formats")
	}

	return &cfg, nil
}
