package env

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestNewRoadConfigFromYAML(t *testing.T) {
	cfg, err := NewRoadConfigFromYAML(writeConfig(t, "road:\n  display_columns: 20\n"))
	if err != nil {
		t.Fatalf("NewRoadConfigFromYAML: %v", err)
	}
	if got := cfg.DisplayColumns(); got != 20 {
		t.Errorf("DisplayColumns() = %d, want 20", got)
	}
}

func TestNewRoadConfigDefaults(t *testing.T) {
	cfg, err := NewRoadConfigFromYAML(writeConfig(t, "road: {}\n"))
	if err != nil {
		t.Fatalf("NewRoadConfigFromYAML: %v", err)
	}
	if got := cfg.DisplayColumns(); got != 14 {
		t.Errorf("DisplayColumns() = %d, want 14", got)
	}
}

func TestNewRoadConfigNegative(t *testing.T) {
	if _, err := NewRoadConfigFromYAML(writeConfig(t, "road:\n  display_columns: -3\n")); err == nil {
		t.Fatal("expected error for negative display_columns")
	}
}

func TestNewRoadConfigMissingFile(t *testing.T) {
	if _, err := NewRoadConfigFromYAML(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Fatal("expected error for missing file")
	}
}
