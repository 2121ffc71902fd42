package cliconfig

import "os"

// ApplyEnvConfig applies configuration from environment variables (SPRITEGRID_*).
// It respects flags that have been explicitly set (changed map).
// Returns error if any environment variable has an invalid format.
func ApplyEnvConfig(cfg *Config, changed map[string]bool) error {
	s := newConfigSetter(changed)

	s.setString("layout", os.Getenv("SPRITEGRID_LAYOUT"), &cfg.Layout)
	s.setStringsFromString("extensions", os.Getenv("SPRITEGRID_EXTENSIONS"), &cfg.Extensions)

	if err := s.setIntFromString("max-dimension", os.Getenv("SPRITEGRID_MAX_DIMENSION"), &cfg.MaxDimension); err != nil {
		return err
	}
	if err := s.setIntFromString("row-length", os.Getenv("SPRITEGRID_ROW_LENGTH"), &cfg.RowLength); err != nil {
		return err
	}
	if err := s.setDuration("debounce", os.Getenv("SPRITEGRID_WATCH_DEBOUNCE"), &cfg.WatchDebounce); err != nil {
		return err
	}

	s.setBoolFromString("fail-fast", os.Getenv("SPRITEGRID_FAIL_FAST"), &cfg.FailFast)
	s.setBoolFromString("recursive", os.Getenv("SPRITEGRID_RECURSIVE"), &cfg.Recursive)
	s.setBoolFromString("delete-sources", os.Getenv("SPRITEGRID_DELETE_SOURCES"), &cfg.DeleteSources)
	s.setBoolFromString("overwrite", os.Getenv("SPRITEGRID_OVERWRITE"), &cfg.Overwrite)
	s.setBoolFromString("verbose", os.Getenv("SPRITEGRID_VERBOSE"), &cfg.Verbose)

	return nil
}
