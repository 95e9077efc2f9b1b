package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/fleet-dashboard/backend/internal/domain/valueobject"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("DATA_SOURCE", DataSourceFile)
	t.Setenv("DASHBOARD_CONFIG", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Dashboard.DateMin != valueobject.DefaultDateMin || cfg.Dashboard.MonthMax != valueobject.DefaultMonthMax {
		t.Errorf("expected default windows, got %+v", cfg.Dashboard)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("expected defaults to validate, got %v", err)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("DASHBOARD_CONFIG", "")
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("DATASET_LOAD_TIMEOUT", "5s")
	t.Setenv("REDIS_DB", "not-a-number")
	t.Setenv("DATE_MIN", "2025-12-10")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Server.Port != 9090 {
		t.Errorf("expected port 9090, got %d", cfg.Server.Port)
	}
	if cfg.Data.LoadTimeout != 5*time.Second {
		t.Errorf("expected 5s timeout, got %s", cfg.Data.LoadTimeout)
	}
	if cfg.Redis.DB != 0 {
		t.Errorf("expected invalid REDIS_DB to fall back to 0, got %d", cfg.Redis.DB)
	}
	if cfg.Dashboard.DateMin != "2025-12-10" {
		t.Errorf("expected DATE_MIN 2025-12-10, got %s", cfg.Dashboard.DateMin)
	}
}

func TestLoad_YAMLOverlay(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dashboard.yaml")
	content := "month_min: \"2026-01-01\"\nmonth_max: \"2026-01-31\"\nchannel_highlight: phone\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("failed to write overlay: %v", err)
	}
	t.Setenv("DASHBOARD_CONFIG", path)
	t.Setenv("COLLATION_LANGUAGE", "en")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Dashboard.MonthMin != "2026-01-01" || cfg.Dashboard.MonthMax != "2026-01-31" {
		t.Errorf("expected overlay month window, got %s..%s", cfg.Dashboard.MonthMin, cfg.Dashboard.MonthMax)
	}
	if cfg.Dashboard.Highlight != "phone" {
		t.Errorf("expected highlight phone, got %s", cfg.Dashboard.Highlight)
	}
	if cfg.Dashboard.Language != "en" {
		t.Errorf("expected fields absent from the overlay to keep env values, got %s", cfg.Dashboard.Language)
	}

	t.Run("missing file", func(t *testing.T) {
		t.Setenv("DASHBOARD_CONFIG", filepath.Join(t.TempDir(), "absent.yaml"))
		if _, err := Load(); err == nil {
			t.Error("expected error for missing overlay")
		}
	})
}

func TestConfig_Validate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			Server: ServerConfig{Port: 8080},
			Data:   DataConfig{Source: DataSourceRedis},
			Dashboard: DashboardConfig{
				DateMin:  valueobject.DefaultDateMin,
				DateMax:  valueobject.DefaultDateMax,
				MonthMin: valueobject.DefaultMonthMin,
				MonthMax: valueobject.DefaultMonthMax,
			},
		}
	}

	tests := []struct {
		name        string
		mutate      func(c *Config)
		expectedErr string
	}{
		{name: "valid", mutate: func(c *Config) {}},
		{name: "unknown source", mutate: func(c *Config) { c.Data.Source = "s3" }, expectedErr: "unsupported DATA_SOURCE"},
		{name: "bad port", mutate: func(c *Config) { c.Server.Port = 0 }, expectedErr: "invalid SERVER_PORT"},
		{name: "reversed range", mutate: func(c *Config) { c.Dashboard.DateMax = "2025-11-01" }, expectedErr: "DATE_MIN/DATE_MAX"},
		{name: "malformed month", mutate: func(c *Config) { c.Dashboard.MonthMin = "12/01/2025" }, expectedErr: "MONTH_MIN/MONTH_MAX"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.expectedErr == "" {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.expectedErr) {
				t.Errorf("expected error containing %q, got %v", tt.expectedErr, err)
			}
		})
	}
}
