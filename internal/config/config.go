// Package config loads the optional defaults file. The file supplies
// persistent display options which are layered under the invocation flags;
// flags only ever enable things, never disable them.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"gocat/internal/transform"
)

// File is the on-disk schema of the defaults file.
type File struct {
	Display Display `toml:"display"`
}

// Display mirrors the invocation flags as persistent defaults.
type Display struct {
	Numbering       string `toml:"numbering"` // "none" | "all" | "nonblank"
	ShowEnds        bool   `toml:"show_ends"`
	SqueezeBlank    bool   `toml:"squeeze_blank"`
	ShowTabs        bool   `toml:"show_tabs"`
	ShowNonprinting bool   `toml:"show_nonprinting"`
}

// Locate returns the path of the defaults file, if one exists.
// Candidates in order: $GOCAT_CONFIG, then
// $XDG_CONFIG_HOME/gocat/config.toml, then ~/.config/gocat/config.toml.
func Locate() (string, bool) {
	var candidates []string
	if p := os.Getenv("GOCAT_CONFIG"); p != "" {
		candidates = append(candidates, p)
	}
	base := os.Getenv("XDG_CONFIG_HOME")
	if base == "" {
		if home, err := os.UserHomeDir(); err == nil {
			base = filepath.Join(home, ".config")
		}
	}
	if base != "" {
		candidates = append(candidates, filepath.Join(base, "gocat", "config.toml"))
	}
	for _, p := range candidates {
		if info, err := os.Stat(p); err == nil && !info.IsDir() {
			return p, true
		}
	}
	return "", false
}

// Load decodes the defaults file at path into display options.
func Load(path string) (transform.Options, error) {
	var f File
	if _, err := toml.DecodeFile(path, &f); err != nil {
		return transform.Options{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	opts, err := f.Display.options()
	if err != nil {
		return transform.Options{}, fmt.Errorf("%s: %w", path, err)
	}
	return opts, nil
}

func (d Display) options() (transform.Options, error) {
	opts := transform.Options{
		ShowEnds:        d.ShowEnds,
		SqueezeBlank:    d.SqueezeBlank,
		ShowTabs:        d.ShowTabs,
		ShowNonprinting: d.ShowNonprinting,
	}
	switch d.Numbering {
	case "", "none":
		// default
	case "all":
		opts.Numbering = transform.NumberAll
	case "nonblank":
		opts.Numbering = transform.NumberNonBlank
	default:
		return transform.Options{}, fmt.Errorf("unknown numbering mode %q (must be none, all, or nonblank)", d.Numbering)
	}
	return opts, nil
}

// Merge layers invocation options over configured defaults. Booleans OR
// together; an explicit flag numbering mode wins over the configured one.
func Merge(defaults, flags transform.Options) transform.Options {
	out := flags
	if out.Numbering == transform.NumberNone {
		out.Numbering = defaults.Numbering
	}
	out.ShowEnds = out.ShowEnds || defaults.ShowEnds
	out.SqueezeBlank = out.SqueezeBlank || defaults.SqueezeBlank
	out.ShowTabs = out.ShowTabs || defaults.ShowTabs
	out.ShowNonprinting = out.ShowNonprinting || defaults.ShowNonprinting
	return out
}
