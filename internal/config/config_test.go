package config

import (
	"log/slog"
	"strings"
	"testing"

	"github.com/talgya/expedition/internal/movement"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Seed != 42 || cfg.Rows != 40 || cfg.Columns != 60 {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
	if cfg.NothingProportion != 0.5 || cfg.SubordinateMaps != 1 {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
	if cfg.Pace() != movement.Normal {
		t.Fatalf("expected normal pace, got %v", cfg.Pace())
	}
	if cfg.Level() != slog.LevelInfo {
		t.Fatalf("expected info level, got %v", cfg.Level())
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("EXPLORER_SEED", "7")
	t.Setenv("EXPLORER_ROWS", "10")
	t.Setenv("EXPLORER_LOG_LEVEL", "DEBUG")
	t.Setenv("EXPLORER_REGENERATE", "true")
	t.Setenv("EXPLORER_SPEED", "Careful")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Seed != 7 || cfg.Rows != 10 || !cfg.Regenerate {
		t.Fatalf("overrides not applied: %+v", cfg)
	}
	if cfg.Pace() != movement.Careful {
		t.Fatalf("expected careful pace, got %v", cfg.Pace())
	}
	if cfg.Level() != slog.LevelDebug {
		t.Fatalf("expected debug level, got %v", cfg.Level())
	}
}

func TestLoadRejectsBadValues(t *testing.T) {
	tests := []struct {
		name, key, value, want string
	}{
		{"not a number", "EXPLORER_ROWS", "many", "parse env:"},
		{"zero rows", "EXPLORER_ROWS", "0", "must be positive"},
		{"certain nothing", "EXPLORER_NOTHING_PROPORTION", "1", "outside"},
		{"unknown speed", "EXPLORER_SPEED", "sprint", "unknown speed"},
		{"negative maps", "EXPLORER_SUBORDINATE_MAPS", "-1", "negative"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)
			_, err := Load()
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Fatalf("expected %q in %v", tt.want, err)
			}
		})
	}
}
