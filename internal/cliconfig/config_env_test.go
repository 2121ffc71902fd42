package cliconfig

import (
	"reflect"
	"testing"
	"time"
)

func TestApplyEnvConfig(t *testing.T) {
	tests := []struct {
		name     string
		envVars  map[string]string
		changed  map[string]bool
		initial  Config
		expected Config
		wantErr  bool
	}{
		{
			name: "applies all valid env vars",
			envVars: map[string]string{
				"SPRITEGRID_MAX_DIMENSION":  "2048",
				"SPRITEGRID_LAYOUT":         "single-row",
				"SPRITEGRID_ROW_LENGTH":     "4",
				"SPRITEGRID_EXTENSIONS":     ".png, .bmp,",
				"SPRITEGRID_WATCH_DEBOUNCE": "2s",
				"SPRITEGRID_FAIL_FAST":      "true",
				"SPRITEGRID_RECURSIVE":      "1",
				"SPRITEGRID_DELETE_SOURCES": "true",
				"SPRITEGRID_OVERWRITE":      "0",
				"SPRITEGRID_VERBOSE":        "true",
			},
			changed: map[string]bool{},
			initial: Config{},
			expected: Config{
				MaxDimension:  2048,
				Layout:        "single-row",
				RowLength:     4,
				Extensions:    []string{".png", ".bmp"},
				WatchDebounce: 2 * time.Second,
				FailFast:      true,
				Recursive:     true,
				DeleteSources: true,
				Overwrite:     false,
				Verbose:       true,
			},
		},
		{
			name: "respects changed flags",
			envVars: map[string]string{
				"SPRITEGRID_MAX_DIMENSION": "2048",
				"SPRITEGRID_LAYOUT":        "single-row",
			},
			changed: map[string]bool{"max-dimension": true},
			initial: Config{MaxDimension: 1024},
			expected: Config{
				MaxDimension: 1024,
				Layout:       "single-row",
			},
		},
		{
			name: "returns error for invalid duration",
			envVars: map[string]string{
				"SPRITEGRID_WATCH_DEBOUNCE": "not-a-duration",
			},
			changed: map[string]bool{},
			wantErr: true,
		},
		{
			name: "returns error for invalid int",
			envVars: map[string]string{
				"SPRITEGRID_MAX_DIMENSION": "big",
			},
			changed: map[string]bool{},
			wantErr: true,
		},
		{
			name: "handles bool 'false' as false",
			envVars: map[string]string{
				"SPRITEGRID_FAIL_FAST": "false",
			},
			changed:  map[string]bool{},
			initial:  Config{FailFast: true},
			expected: Config{FailFast: false},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.envVars {
				t.Setenv(k, v)
			}

			cfg := tt.initial
			err := ApplyEnvConfig(&cfg, tt.changed)

			if tt.wantErr && err == nil {
				t.Error("ApplyEnvConfig() expected error but got nil")
				return
			}
			if !tt.wantErr && err != nil {
				t.Errorf("ApplyEnvConfig() unexpected error: %v", err)
				return
			}
			if !tt.wantErr && !reflect.DeepEqual(cfg, tt.expected) {
				t.Errorf("ApplyEnvConfig() = %+v, want %+v", cfg, tt.expected)
			}
		})
	}
}

// Integration test: precedence order (CLI > Env > File)
func TestConfigPrecedence(t *testing.T) {
	trueVal := true

	fileConf := FileConfig{
		MaxDimension: 4096,
		Layout:       "single-row",
		RowLength:    3,
		Recursive:    &trueVal,
	}

	t.Setenv("SPRITEGRID_MAX_DIMENSION", "2048")
	t.Setenv("SPRITEGRID_LAYOUT", "grid")

	// Simulate CLI flags
	changed := map[string]bool{
		"max-dimension": true,
	}

	cfg := DefaultConfig()
	cfg.MaxDimension = 1024 // This should remain (CLI wins)

	if err := ApplyFileConfig(&cfg, fileConf, changed); err != nil {
		t.Fatalf("ApplyFileConfig failed: %v", err)
	}
	if err := ApplyEnvConfig(&cfg, changed); err != nil {
		t.Fatalf("ApplyEnvConfig failed: %v", err)
	}

	if cfg.MaxDimension != 1024 {
		t.Errorf("MaxDimension = %v, want 1024 (CLI should win)", cfg.MaxDimension)
	}
	if cfg.Layout != "grid" {
		t.Errorf("Layout = %v, want grid (env should override file)", cfg.Layout)
	}
	if cfg.RowLength != 3 {
		t.Errorf("RowLength = %v, want 3 (file should set)", cfg.RowLength)
	}
	if !cfg.Recursive {
		t.Errorf("Recursive = %v, want true (file should set)", cfg.Recursive)
	}
}
