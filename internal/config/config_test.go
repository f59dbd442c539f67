package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadFile_MissingUsesDefaults(t *testing.T) {
	cfg, info, err := LoadFile(filepath.Join(t.TempDir(), "config.toml"))
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if info.PortSpecified {
		t.Fatalf("PortSpecified should be false")
	}
	if cfg.Policy.DoubleBookOffset != 2 {
		t.Fatalf("DoubleBookOffset=%d, want 2", cfg.Policy.DoubleBookOffset)
	}
	if cfg.Server.Port != DefaultConfig().Server.Port {
		t.Fatalf("Port=%d", cfg.Server.Port)
	}
}

func TestLoadFile_OverridesAndPortDetection(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
[server]
port = 9090

[policy]
double_book_offset = 3

[excel]
sheet = "技能表"
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}

	cfg, info, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if !info.PortSpecified || cfg.Server.Port != 9090 {
		t.Fatalf("port=%d specified=%v", cfg.Server.Port, info.PortSpecified)
	}
	if cfg.Policy.DoubleBookOffset != 3 {
		t.Fatalf("DoubleBookOffset=%d, want 3", cfg.Policy.DoubleBookOffset)
	}
	if cfg.Excel.Sheet != "技能表" {
		t.Fatalf("Sheet=%q", cfg.Excel.Sheet)
	}
	// 未出现的字段保持默认
	if cfg.Log.Level != "info" {
		t.Fatalf("Log.Level=%q", cfg.Log.Level)
	}
}

func TestLoadFile_EnvOverride(t *testing.T) {
	t.Setenv("WA_DOUBLE_BOOK_OFFSET", "4")
	t.Setenv("WA_PORT", "18080")
	t.Setenv("WA_LOG_LEVEL", "debug")

	cfg, info, err := LoadFile(filepath.Join(t.TempDir(), "none.toml"))
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if cfg.Policy.DoubleBookOffset != 4 {
		t.Fatalf("DoubleBookOffset=%d, want 4", cfg.Policy.DoubleBookOffset)
	}
	if cfg.Server.Port != 18080 || !info.PortSpecified {
		t.Fatalf("Port=%d specified=%v", cfg.Server.Port, info.PortSpecified)
	}
	if cfg.Log.Level != "debug" {
		t.Fatalf("Log.Level=%q", cfg.Log.Level)
	}
}

func TestLoadFile_InvalidToml(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("[server\nport = "), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, _, err := LoadFile(path); err == nil {
		t.Fatalf("expected parse error")
	}
}

func TestSaveConfigRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	cfg := DefaultConfig()
	cfg.Policy.DoubleBookOffset = 5

	if err := SaveConfig(path, cfg); err != nil {
		t.Fatalf("SaveConfig: %v", err)
	}
	loaded, info, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if loaded.Policy.DoubleBookOffset != 5 {
		t.Fatalf("DoubleBookOffset=%d, want 5", loaded.Policy.DoubleBookOffset)
	}
	if !info.PortSpecified {
		t.Fatalf("saved config should carry port")
	}
}
