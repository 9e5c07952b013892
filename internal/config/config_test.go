package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/adrg/xdg"
	"github.com/gofiber/fiber/v2/log"
)

func writeFile(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.json"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if *cfg != DefaultConfig {
		t.Errorf("Load = %+v, want defaults %+v", *cfg, DefaultConfig)
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := writeFile(t, `{"log_level": "debug", "server": {"addr": ":8080"}, "game": {"random_seed": 5}}`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Server.Addr != ":8080" {
		t.Errorf("Addr = %q, want :8080", cfg.Server.Addr)
	}
	if cfg.Server.AllowOrigins != DefaultConfig.Server.AllowOrigins {
		t.Errorf("AllowOrigins = %q, want the default", cfg.Server.AllowOrigins)
	}
	if cfg.Game.RandomSeed != 5 || !cfg.Game.ComputerOpponent {
		t.Errorf("Game = %+v, want seed 5 with the default opponent", cfg.Game)
	}
	if level, _ := cfg.Level(); level != log.LevelDebug {
		t.Errorf("Level() = %v, want debug", level)
	}
}

func TestLoadInvalid(t *testing.T) {
	tests := []struct {
		name     string
		contents string
	}{
		{"malformed json", `{"log_level": `},
		{"unknown level", `{"log_level": "loud"}`},
		{"empty address", `{"server": {"addr": ""}}`},
		{"control symbol", `{"symbols": {"white": 7}}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeFile(t, tt.contents))
			var invalid *InvalidConfig
			if !errors.As(err, &invalid) {
				t.Errorf("Load error = %v, want *InvalidConfig", err)
			}
		})
	}
}

func TestLevel(t *testing.T) {
	tests := []struct {
		in   string
		want log.Level
	}{
		{"", log.LevelInfo},
		{"TRACE", log.LevelTrace},
		{"warn", log.LevelWarn},
		{"error", log.LevelError},
	}
	for _, tt := range tests {
		cfg := Config{LogLevel: tt.in}
		got, err := cfg.Level()
		if err != nil || got != tt.want {
			t.Errorf("Level(%q) = %v, %v, want %v", tt.in, got, err, tt.want)
		}
	}
}

func TestSaveAndReadBack(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	cfg := DefaultConfig
	cfg.Game.ComputerOpponent = false
	cfg.Symbols.Empty = '.'
	if err := saveCfgFile(path, &cfg, 0o600); err != nil {
		t.Fatalf("saveCfgFile: %v", err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if *got != cfg {
		t.Errorf("read back %+v, want %+v", *got, cfg)
	}
}

func TestSaveThenInitConfig(t *testing.T) {
	t.Cleanup(xdg.Reload)
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	xdg.Reload()

	cfg := DefaultConfig
	cfg.Server.Addr = ":4000"
	if err := cfg.Save(); err != nil {
		t.Fatalf("Save: %v", err)
	}
	got, err := InitConfig()
	if err != nil {
		t.Fatalf("InitConfig: %v", err)
	}
	if got.Server.Addr != ":4000" {
		t.Errorf("Addr = %q, want :4000", got.Server.Addr)
	}
}
