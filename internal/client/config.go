package client

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/kelseyhightower/envconfig"
)

const envPrefix = "VENUELY"

type Config struct {
	APIURL         string `envconfig:"API_URL"         default:"http://localhost:8080"`
	SessionFile    string `envconfig:"SESSION_FILE"`
	TimeoutSeconds int    `envconfig:"TIMEOUT_SECONDS" default:"15"`
	SiteURL        string `envconfig:"SITE_URL"        default:"http://localhost:5173"`
}

// LoadConfig reads VENUELY_* variables. The session file defaults to ~/.venuely/session.json.
func LoadConfig() (Config, error) {
	var cfg Config

	if err := envconfig.Process(envPrefix, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to load console config: %w", err)
	}

	if cfg.SessionFile == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return cfg, fmt.Errorf("failed to locate home directory: %w", err)
		}

		cfg.SessionFile = filepath.Join(home, ".venuely", "session.json")
	}

	return cfg, nil
}
