// Package report writes per-source failures to the error stream. Failures
// are reported, never swallowed; whether a failure is fatal stays with the
// caller.
package report

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"golang.org/x/term"
)

// Reporter prefixes every message with the tool name, in bold red when the
// destination allows color.
type Reporter struct {
	out    io.Writer
	prefix func(format string, a ...any) string
}

// New builds a reporter for out. mode is "auto", "on" or "off"; auto
// colors only when out is a terminal.
func New(out io.Writer, mode string) *Reporter {
	useColor := mode == "on" || (mode == "auto" && isTerminal(out))
	prefix := fmt.Sprintf
	if useColor {
		prefix = color.New(color.FgRed, color.Bold).SprintfFunc()
	}
	return &Reporter{out: out, prefix: prefix}
}

// ModeFromEnv reads $GOCAT_COLOR; anything but "on" or "off" means "auto".
func ModeFromEnv() string {
	switch mode := os.Getenv("GOCAT_COLOR"); mode {
	case "on", "off":
		return mode
	}
	return "auto"
}

// Errorf reports one failure line: "gocat: <formatted message>".
func (r *Reporter) Errorf(format string, args ...any) {
	fmt.Fprintf(r.out, "%s %s\n", r.prefix("gocat:"), fmt.Sprintf(format, args...))
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
