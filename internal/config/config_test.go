package config

import "testing"

func TestLoadRequiresToken(t *testing.T) {
	t.Setenv("MAX_BOT_TOKEN", "")
	if _, err := Load(); err == nil {
		t.Error("expected an error without MAX_BOT_TOKEN")
	}
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("MAX_BOT_TOKEN", "token")
	t.Setenv("MAX_API_URL", "")
	t.Setenv("DATABASE_URL", "")
	t.Setenv("RITUAL_IMAGE_DIR", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.MaxAPIURL != "https://botapi.max.ru" {
		t.Errorf("MaxAPIURL = %q", cfg.MaxAPIURL)
	}
	if cfg.DatabaseURL != "tasker.db" {
		t.Errorf("DatabaseURL = %q", cfg.DatabaseURL)
	}
	if cfg.RitualImageDir != "assets/rituals" {
		t.Errorf("RitualImageDir = %q", cfg.RitualImageDir)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("MAX_BOT_TOKEN", " token ")
	t.Setenv("DATABASE_URL", "data/bot.db")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.MaxToken != "token" {
		t.Errorf("token not trimmed: %q", cfg.MaxToken)
	}
	if cfg.DatabaseURL != "data/bot.db" {
		t.Errorf("DatabaseURL = %q", cfg.DatabaseURL)
	}
}
