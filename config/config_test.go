package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_DefaultsWithSecret(t *testing.T) {
	t.Setenv("FOODBRIDGE_AUTH_JWT_SECRET", "test-secret-at-least-16-chars")

	cfg, err := Load(filepath.Join(t.TempDir(), "nonexistent.yaml"))
	if err == nil {
		t.Fatal("expected error for explicit nonexistent config file")
	}

	cfg, err = loadFromDir(t)
	if err != nil {
		t.Fatalf("Load should succeed on defaults: %v", err)
	}
	if cfg.Server.Port != 8080 {
		t.Errorf("expected default port 8080, got %d", cfg.Server.Port)
	}
	if cfg.Dashboard.HoursTarget != 100 {
		t.Errorf("expected default hours_target 100, got %v", cfg.Dashboard.HoursTarget)
	}
	if cfg.AI.Timeout.Seconds() != 20 {
		t.Errorf("expected default ai timeout 20s, got %v", cfg.AI.Timeout)
	}
}

// loadFromDir runs Load from an empty working directory so no stray
// config.yaml on the developer machine leaks into the test.
func loadFromDir(t *testing.T) (*Config, error) {
	t.Helper()
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(t.TempDir()); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = os.Chdir(wd) })
	return Load("")
}

func TestLoad_FileOverridesDefaults(t *testing.T) {
	t.Setenv("FOODBRIDGE_AUTH_JWT_SECRET", "test-secret-at-least-16-chars")

	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := "server:\n  port: 9090\ndashboard:\n  hours_target: 50\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load should succeed: %v", err)
	}
	if cfg.Server.Port != 9090 {
		t.Errorf("expected port 9090 from file, got %d", cfg.Server.Port)
	}
	if cfg.Dashboard.HoursTarget != 50 {
		t.Errorf("expected hours_target 50 from file, got %v", cfg.Dashboard.HoursTarget)
	}
}

func TestValidate_RejectsBadConfig(t *testing.T) {
	cases := []struct {
		name string
		mut  func(*Config)
	}{
		{"empty secret", func(c *Config) { c.Auth.JWTSecret = "" }},
		{"short secret", func(c *Config) { c.Auth.JWTSecret = "short" }},
		{"bad port", func(c *Config) { c.Server.Port = 0 }},
		{"zero hours target", func(c *Config) { c.Dashboard.HoursTarget = 0 }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := &Config{
				Server:    ServerConfig{Port: 8080},
				Auth:      AuthConfig{JWTSecret: "test-secret-at-least-16-chars"},
				Dashboard: DashboardConfig{HoursTarget: 100},
			}
			tc.mut(cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("expected validation error, got nil")
			}
		})
	}
}
