package main

import (
	"bytes"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"
	"testing"

	"github.com/pawndev/retrobridge/internal/config"
	"github.com/pawndev/retrobridge/pkg/retrobridge/constants"
)

func TestPrintCommands(t *testing.T) {
	var out bytes.Buffer
	if err := printCommands(&out); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	if len(lines) != len(constants.Commands())+1 {
		t.Fatalf("expected a header and %d rows, got %d lines", len(constants.Commands()), len(lines))
	}

	want := []string{"QUIT", "RESET", "LOAD_STATE", "SAVE_STATE", "SAVE_SLOT_PLUS", "SAVE_SLOT_MINUS", "SWAP_DISK"}
	for i, name := range want {
		fields := strings.Fields(lines[i+1])
		if len(fields) != 2 || fields[0] != strconv.Itoa(i) || fields[1] != name {
			t.Errorf("row %d: expected %d %s, got %q", i, i, name, lines[i+1])
		}
	}
}

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "retrobridge.toml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	return path
}

func changedSet(names ...string) func(string) bool {
	return func(name string) bool {
		return slices.Contains(names, name)
	}
}

func TestLoadConfigFlagsOverride(t *testing.T) {
	t.Setenv(constants.LogLevelEnvVar, "")
	path := writeConfig(t, `
[ui]
presenter = "sdl"
language = "en"

[core]
path = "/cores/a"
endpoint = "pipe"

[launch.extras]
ROM = "a.cue"
`)

	f := runFlags{
		multiDisk: true,
		presenter: "term",
		corePath:  "/cores/b",
		language:  "es",
		extras:    []string{"ROM=b.cue", "REGION=pal"},
	}

	cfg, err := loadConfig(path, f, changedSet("presenter", "core", "lang"), []string{"--fast"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.UI.Presenter != config.PresenterTerm {
		t.Errorf("expected presenter term, got %q", cfg.UI.Presenter)
	}
	if cfg.Core.Path != "/cores/b" {
		t.Errorf("expected core path from flag, got %q", cfg.Core.Path)
	}
	if cfg.UI.Language != "es" {
		t.Errorf("expected language es, got %q", cfg.UI.Language)
	}
	if !slices.Equal(cfg.Core.Args, []string{"--fast"}) {
		t.Errorf("expected core args from command line, got %v", cfg.Core.Args)
	}

	extras := cfg.Launch.Extras
	if extras["ROM"] != "b.cue" || extras["REGION"] != "pal" || extras[constants.ExtraMultiDisk] != "true" {
		t.Errorf("unexpected launch extras %v", extras)
	}
}

func TestLoadConfigUnchangedFlagsKeepFile(t *testing.T) {
	t.Setenv(constants.LogLevelEnvVar, "")
	path := writeConfig(t, "[ui]\npresenter = \"term\"\n")

	// a default flag value the user never set must not win over the file
	cfg, err := loadConfig(path, runFlags{presenter: "sdl"}, changedSet(), nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.UI.Presenter != config.PresenterTerm {
		t.Errorf("expected presenter from file, got %q", cfg.UI.Presenter)
	}
	if _, ok := cfg.Launch.Extras[constants.ExtraMultiDisk]; ok {
		t.Error("expected no multidisk extra")
	}
}

func TestLoadConfigInvalidFlag(t *testing.T) {
	path := writeConfig(t, "")

	if _, err := loadConfig(path, runFlags{endpoint: "tcp://x"}, changedSet("endpoint"), nil); err == nil {
		t.Error("expected validation error for a bad endpoint")
	}
}
