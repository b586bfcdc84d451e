package config

import (
	"fmt"
	"os"
	"strings"
)

// Config keeps runtime settings for the bot.
type Config struct {
	MaxToken       string
	MaxAPIURL      string
	DatabaseURL    string
	RitualImageDir string
}

// Load reads configuration from environment variables with sane defaults.
func Load() (Config, error) {
	cfg := Config{
		MaxToken:       strings.TrimSpace(os.Getenv("MAX_BOT_TOKEN")),
		MaxAPIURL:      strings.TrimSpace(os.Getenv("MAX_API_URL")),
		DatabaseURL:    strings.TrimSpace(os.Getenv("DATABASE_URL")),
		RitualImageDir: strings.TrimSpace(os.Getenv("RITUAL_IMAGE_DIR")),
	}

	if cfg.MaxAPIURL == "" {
		cfg.MaxAPIURL = "https://botapi.max.ru"
	}

	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = "tasker.db"
	}

	if cfg.RitualImageDir == "" {
		cfg.RitualImageDir = "assets/rituals"
	}

	if cfg.MaxToken == "" {
		return cfg, fmt.Errorf("MAX_BOT_TOKEN is required")
	}

	return cfg, nil
}
