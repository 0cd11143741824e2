package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gocat/internal/transform"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	return path
}

func TestLoadFullDisplayTable(t *testing.T) {
	path := writeConfig(t, `
[display]
numbering = "nonblank"
show_ends = true
squeeze_blank = true
show_tabs = true
show_nonprinting = true
`)
	opts, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	want := transform.Options{
		Numbering:       transform.NumberNonBlank,
		ShowEnds:        true,
		SqueezeBlank:    true,
		ShowTabs:        true,
		ShowNonprinting: true,
	}
	if opts != want {
		t.Fatalf("Load = %+v, want %+v", opts, want)
	}
}

func TestLoadEmptyFileIsZeroOptions(t *testing.T) {
	path := writeConfig(t, "")
	opts, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if opts != (transform.Options{}) {
		t.Fatalf("expected zero options, got %+v", opts)
	}
}

func TestLoadRejectsUnknownNumbering(t *testing.T) {
	path := writeConfig(t, "[display]\nnumbering = \"sometimes\"\n")
	_, err := Load(path)
	if err == nil {
		t.Fatal("expected an error for unknown numbering mode")
	}
	if !strings.Contains(err.Error(), "sometimes") {
		t.Fatalf("error %q does not name the bad value", err)
	}
}

func TestLoadRejectsMalformedTOML(t *testing.T) {
	path := writeConfig(t, "[display\n")
	_, err := Load(path)
	if err == nil {
		t.Fatal("expected a parse error")
	}
	if !strings.Contains(err.Error(), path) {
		t.Fatalf("error %q does not mention the path", err)
	}
}

func TestMergeFlagsWinNumbering(t *testing.T) {
	defaults := transform.Options{Numbering: transform.NumberNonBlank}
	flags := transform.Options{Numbering: transform.NumberAll}
	if got := Merge(defaults, flags); got.Numbering != transform.NumberAll {
		t.Fatalf("flag numbering must win, got %v", got.Numbering)
	}
}

func TestMergeDefaultsFillNumbering(t *testing.T) {
	defaults := transform.Options{Numbering: transform.NumberNonBlank}
	if got := Merge(defaults, transform.Options{}); got.Numbering != transform.NumberNonBlank {
		t.Fatalf("configured numbering must apply, got %v", got.Numbering)
	}
}

func TestMergeBooleansOnlyEnable(t *testing.T) {
	defaults := transform.Options{ShowEnds: true}
	flags := transform.Options{ShowTabs: true}
	got := Merge(defaults, flags)
	if !got.ShowEnds || !got.ShowTabs {
		t.Fatalf("booleans must OR together, got %+v", got)
	}
}

func TestLocatePrefersExplicitEnv(t *testing.T) {
	path := writeConfig(t, "")
	t.Setenv("GOCAT_CONFIG", path)
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	got, ok := Locate()
	if !ok || got != path {
		t.Fatalf("Locate = (%q, %v), want (%q, true)", got, ok, path)
	}
}

func TestLocateFallsBackToXDG(t *testing.T) {
	t.Setenv("GOCAT_CONFIG", "")
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	if _, ok := Locate(); ok {
		t.Fatal("no config file exists yet, Locate must report false")
	}

	path := filepath.Join(dir, "gocat", "config.toml")
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("failed to create config dir: %v", err)
	}
	if err := os.WriteFile(path, nil, 0o644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	got, ok := Locate()
	if !ok || got != path {
		t.Fatalf("Locate = (%q, %v), want (%q, true)", got, ok, path)
	}
}
