package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "pokedex.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}
	return path
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "does-not-exist.yaml")

	config, err := Load(path)
	if err != nil {
		t.Fatalf("expected no error for missing file, got %v", err)
	}

	want := Default()
	if *config != *want {
		t.Errorf("expected defaults %+v, got %+v", want, config)
	}
}

func TestLoadOverlaysFileOnDefaults(t *testing.T) {
	path := writeConfigFile(t, "database: /data/dex.db\nlogLevel: debug\n")

	config, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if config.DatabasePath != "/data/dex.db" {
		t.Errorf("expected database path from file, got %q", config.DatabasePath)
	}
	if config.LogLevel != "debug" {
		t.Errorf("expected log level from file, got %q", config.LogLevel)
	}
	if config.WindowWidth != 600 || config.WindowHeight != 500 {
		t.Errorf("expected default window size, got %dx%d", config.WindowWidth, config.WindowHeight)
	}
}

func TestLoadRejectsInvalidContent(t *testing.T) {
	testCases := []struct {
		name    string
		content string
	}{
		{
			name:    "malformed yaml",
			content: "database: [unclosed",
		},
		{
			name:    "empty database path",
			content: "database: \"\"\n",
		},
		{
			name:    "negative window size",
			content: "windowWidth: -10\n",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			path := writeConfigFile(t, tc.content)
			if _, err := Load(path); err == nil {
				t.Error("expected error, got nil")
			}
		})
	}
}

func TestApplyEnvOverridesFileValues(t *testing.T) {
	t.Setenv("POKEDEX_DB", "/env/override.db")
	t.Setenv("POKEDEX_LOG_LEVEL", "warn")

	config := Default()
	config.ApplyEnv()

	if config.DatabasePath != "/env/override.db" {
		t.Errorf("expected database path from env, got %q", config.DatabasePath)
	}
	if config.LogLevel != "warn" {
		t.Errorf("expected log level from env, got %q", config.LogLevel)
	}
}

func TestApplyEnvIgnoresUnsetVariables(t *testing.T) {
	t.Setenv("POKEDEX_DB", "")
	t.Setenv("POKEDEX_LOG_LEVEL", "")

	config := Default()
	config.ApplyEnv()

	want := Default()
	if *config != *want {
		t.Errorf("expected defaults to survive empty env, got %+v", config)
	}
}
