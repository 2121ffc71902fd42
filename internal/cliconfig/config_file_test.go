package cliconfig

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
	"time"
)

func TestApplyFileConfig(t *testing.T) {
	trueVal := true
	falseVal := false

	tests := []struct {
		name       string
		fileConfig FileConfig
		changed    map[string]bool
		initial    Config
		expected   Config
		wantErr    bool
	}{
		{
			name: "applies all config values",
			fileConfig: FileConfig{
				MaxDimension:  4096,
				Layout:        "single-row",
				RowLength:     8,
				FailFast:      &trueVal,
				Recursive:     &trueVal,
				Extensions:    []string{".png", ".webp"},
				DeleteSources: &trueVal,
				Overwrite:     &falseVal,
				WatchDebounce: "1s",
				Verbose:       &trueVal,
			},
			changed: map[string]bool{},
			initial: DefaultConfig(),
			expected: Config{
				MaxDimension:  4096,
				Layout:        "single-row",
				RowLength:     8,
				FailFast:      true,
				Recursive:     true,
				Extensions:    []string{".png", ".webp"},
				DeleteSources: true,
				Overwrite:     false,
				WatchDebounce: time.Second,
				Verbose:       true,
			},
		},
		{
			name: "respects changed flags",
			fileConfig: FileConfig{
				MaxDimension: 4096,
				Layout:       "single-row",
				FailFast:     &trueVal,
			},
			changed: map[string]bool{"max-dimension": true, "fail-fast": true},
			initial: DefaultConfig(),
			expected: Config{
				MaxDimension:  8192, // unchanged because flag was set
				Layout:        "single-row",
				Extensions:    []string{".png"},
				WatchDebounce: 250 * time.Millisecond,
			},
		},
		{
			name:       "returns error for invalid duration",
			fileConfig: FileConfig{WatchDebounce: "soon"},
			changed:    map[string]bool{},
			initial:    DefaultConfig(),
			wantErr:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := tt.initial
			err := ApplyFileConfig(&cfg, tt.fileConfig, tt.changed)

			if tt.wantErr && err == nil {
				t.Error("ApplyFileConfig() expected error but got nil")
				return
			}
			if !tt.wantErr && err != nil {
				t.Errorf("ApplyFileConfig() unexpected error: %v", err)
				return
			}

			if !tt.wantErr && !reflect.DeepEqual(cfg, tt.expected) {
				t.Errorf("ApplyFileConfig() = %+v, want %+v", cfg, tt.expected)
			}
		})
	}
}

func TestLoadFileConfig(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "test-config.toml")

	tomlContent := `
max_dimension = 4096
layout = "grid"
row_length = 6
extensions = [".png", ".tiff"]
watch_debounce = "500ms"
fail_fast = true
`

	if err := os.WriteFile(configPath, []byte(tomlContent), 0644); err != nil {
		t.Fatalf("Failed to create test config file: %v", err)
	}

	fc, err := LoadFileConfig(configPath)
	if err != nil {
		t.Fatalf("LoadFileConfig() error = %v", err)
	}

	if fc.MaxDimension != 4096 {
		t.Errorf("MaxDimension = %v, want 4096", fc.MaxDimension)
	}
	if fc.Layout != "grid" {
		t.Errorf("Layout = %v, want grid", fc.Layout)
	}
	if fc.RowLength != 6 {
		t.Errorf("RowLength = %v, want 6", fc.RowLength)
	}
	if !reflect.DeepEqual(fc.Extensions, []string{".png", ".tiff"}) {
		t.Errorf("Extensions = %v", fc.Extensions)
	}
	if fc.WatchDebounce != "500ms" {
		t.Errorf("WatchDebounce = %v, want 500ms", fc.WatchDebounce)
	}
	if fc.FailFast == nil || *fc.FailFast != true {
		t.Errorf("FailFast = %v, want true", fc.FailFast)
	}
	if fc.Recursive != nil {
		t.Errorf("Recursive = %v, want unset", *fc.Recursive)
	}
}

func TestLoadFileConfig_InvalidFile(t *testing.T) {
	_, err := LoadFileConfig("/nonexistent/path/config.toml")
	if err == nil {
		t.Error("LoadFileConfig() expected error for nonexistent file")
	}
}

func TestLoadFileConfig_InvalidTOML(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "invalid.toml")

	invalidContent := `
layout = "grid"
this is not valid toml
`

	if err := os.WriteFile(configPath, []byte(invalidContent), 0644); err != nil {
		t.Fatalf("Failed to create test config file: %v", err)
	}

	_, err := LoadFileConfig(configPath)
	if err == nil {
		t.Error("LoadFileConfig() expected error for invalid TOML")
	}
}

func TestDefaultConfigPath(t *testing.T) {
	path := DefaultConfigPath()

	if path != "" && !strings.Contains(path, ".spritegrid") {
		t.Errorf("DefaultConfigPath() = %v, should contain .spritegrid", path)
	}
}

func TestFileExists(t *testing.T) {
	tmpDir := t.TempDir()
	existingFile := filepath.Join(tmpDir, "exists.txt")

	if err := os.WriteFile(existingFile, []byte("test"), 0644); err != nil {
		t.Fatalf("Failed to create test file: %v", err)
	}

	if !FileExists(existingFile) {
		t.Error("FileExists() = false, want true for existing file")
	}

	if FileExists(filepath.Join(tmpDir, "nonexistent.txt")) {
		t.Error("FileExists() = true, want false for nonexistent file")
	}
}

func TestLoadFileConfig_YAML(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	yamlContent := `
max_dimension: 2048
layout: single-row
extensions: [".png", ".webp"]
watch_debounce: 1s
delete_sources: true
`

	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("Failed to create test config file: %v", err)
	}

	fc, err := LoadFileConfig(configPath)
	if err != nil {
		t.Fatalf("LoadFileConfig() error = %v", err)
	}

	cfg := DefaultConfig()
	if err := ApplyFileConfig(&cfg, fc, map[string]bool{}); err != nil {
		t.Fatalf("ApplyFileConfig() error = %v", err)
	}

	if cfg.MaxDimension != 2048 {
		t.Errorf("MaxDimension = %v, want 2048", cfg.MaxDimension)
	}
	if cfg.Layout != "single-row" {
		t.Errorf("Layout = %v, want single-row", cfg.Layout)
	}
	if !reflect.DeepEqual(cfg.Extensions, []string{".png", ".webp"}) {
		t.Errorf("Extensions = %v", cfg.Extensions)
	}
	if cfg.WatchDebounce != time.Second {
		t.Errorf("WatchDebounce = %v, want 1s", cfg.WatchDebounce)
	}
	if !cfg.DeleteSources {
		t.Error("DeleteSources = false, want true")
	}
}
