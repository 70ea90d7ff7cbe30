package main

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/buhanec/yafwi"
)

func writeConfig(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, configFileName)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

const sampleConfig = `
[[types]]
name = "word"
width = 16
unsigned = true

[[types]]
name = "i24"
width = 24

[trace]
level = "detail"
format = "ndjson"
`

func TestFindConfigWalksUp(t *testing.T) {
	root := t.TempDir()
	want := writeConfig(t, root, sampleConfig)
	nested := filepath.Join(root, "a", "b")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	got, ok, err := findConfig(nested)
	if err != nil || !ok {
		t.Fatalf("findConfig: %v, %v", ok, err)
	}
	if got != want {
		t.Fatalf("findConfig = %q, want %q", got, want)
	}
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, t.TempDir(), sampleConfig)
	cfg, err := loadConfig(path)
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}
	if len(cfg.Types) != 2 || cfg.Types[0] != (typeConfig{Name: "word", Width: 16, Unsigned: true}) {
		t.Fatalf("unexpected types %+v", cfg.Types)
	}
	if cfg.Trace.Level != "detail" || cfg.Trace.Format != "ndjson" {
		t.Fatalf("unexpected trace section %+v", cfg.Trace)
	}
}

func TestLoadConfigRejectsBadInput(t *testing.T) {
	cases := []struct {
		content string
		want    string
	}{
		{"[[types]]\nwidth = 8\n", "missing name"},
		{"[[types]]\nname = \"x\"\n", "missing width"},
		{"[package]\nname = \"x\"\n", "unknown key"},
		{"[[types]\n", "failed to parse TOML"},
	}
	for _, tc := range cases {
		path := writeConfig(t, t.TempDir(), tc.content)
		if _, err := loadConfig(path); err == nil || !strings.Contains(err.Error(), tc.want) {
			t.Fatalf("%q: expected error containing %q, got %v", tc.content, tc.want, err)
		}
	}
}

func TestRegisterTypes(t *testing.T) {
	reg := yafwi.NewRegistry()
	cfg := projectConfig{Types: []typeConfig{
		{Name: "word", Width: 16, Unsigned: true},
		{Name: "i24", Width: 24},
	}}
	if err := registerTypes(reg, cfg); err != nil {
		t.Fatalf("registerTypes: %v", err)
	}
	if got, ok := reg.Lookup("word"); !ok || got != yafwi.Uint16 {
		t.Fatalf("word = %v, %v", got, ok)
	}
	if got, ok := reg.Lookup("i24"); !ok || got.String() != "int24" {
		t.Fatalf("i24 = %v, %v", got, ok)
	}

	conflict := projectConfig{Types: []typeConfig{{Name: "byte", Width: 16}}}
	if err := registerTypes(reg, conflict); !errors.Is(err, yafwi.ErrAliasConflict) {
		t.Fatalf("expected ErrAliasConflict, got %v", err)
	}
	invalid := projectConfig{Types: []typeConfig{{Name: "huge", Width: 1 << 30}}}
	if err := registerTypes(reg, invalid); !errors.Is(err, yafwi.ErrInvalidWidth) {
		t.Fatalf("expected ErrInvalidWidth, got %v", err)
	}
}
