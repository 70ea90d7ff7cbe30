package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/buhanec/yafwi"
)

const configFileName = "yafwi.toml"

// projectConfig is the content of yafwi.toml:
//
//	[[types]]
//	name = "word"
//	width = 16
//	unsigned = true
//
//	[trace]
//	level = "detail"
//	format = "ndjson"
//	output = "trace.log"
type projectConfig struct {
	Types []typeConfig `toml:"types"`
	Trace traceConfig  `toml:"trace"`
}

type typeConfig struct {
	Name     string `toml:"name"`
	Width    uint   `toml:"width"`
	Unsigned bool   `toml:"unsigned"`
}

type traceConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"`
	Output string `toml:"output"`
}

func findConfig(startDir string) (string, bool, error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, configFileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false, nil
}

func loadConfig(path string) (projectConfig, error) {
	var cfg projectConfig
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return projectConfig{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return projectConfig{}, fmt.Errorf("%s: unknown key %q", path, undecoded[0].String())
	}
	for i, tc := range cfg.Types {
		if strings.TrimSpace(tc.Name) == "" {
			return projectConfig{}, fmt.Errorf("%s: types[%d]: missing name", path, i)
		}
		if tc.Width == 0 {
			return projectConfig{}, fmt.Errorf("%s: types[%d] (%s): missing width", path, i, tc.Name)
		}
	}
	return cfg, nil
}

// resolveConfig loads the file named by --config, or the nearest yafwi.toml
// above the working directory. A missing implicit config is not an error.
func resolveConfig(explicit string) (projectConfig, string, error) {
	if explicit != "" {
		cfg, err := loadConfig(explicit)
		return cfg, explicit, err
	}
	path, ok, err := findConfig(".")
	if err != nil || !ok {
		return projectConfig{}, "", err
	}
	cfg, err := loadConfig(path)
	return cfg, path, err
}

// registerTypes generates every configured type and binds its name.
func registerTypes(reg *yafwi.Registry, cfg projectConfig) error {
	for _, tc := range cfg.Types {
		t, err := reg.Generate(tc.Width, tc.Unsigned)
		if err != nil {
			return fmt.Errorf("type %q: %w", tc.Name, err)
		}
		if err := reg.Alias(tc.Name, t); err != nil {
			return fmt.Errorf("type %q: %w", tc.Name, err)
		}
	}
	return nil
}
