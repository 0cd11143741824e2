package main

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"gocat/internal/version"
)

type usageFlag struct {
	names string
	desc  string
}

var usageFlags = []usageFlag{
	{"-b", "number nonempty output lines, overridden by -n"},
	{"-e, -E", "display $ at end of each line"},
	{"-n", "number all output lines"},
	{"-s", "suppress repeated empty output lines"},
	{"-t, -T", "display TAB characters as ^I"},
	{"-u", "(ignored) accepted for compatibility"},
	{"-v", "use ^ notation for non-printing characters"},
	{"-h, -?, --help", "display this help and exit"},
}

// printUsage renders the usage text with an aligned flag table.
func printUsage(out io.Writer) {
	bold := color.New(color.Bold)

	fmt.Fprintf(out, "%s gocat [OPTION]... [FILE]...\n", bold.Sprint("Usage:"))
	fmt.Fprintln(out, "Concatenate FILE(s) to standard output.")
	fmt.Fprintln(out)
	fmt.Fprintln(out, "With no FILE, read standard input.")
	fmt.Fprintln(out)
	fmt.Fprintln(out, bold.Sprint("Options:"))

	width := 0
	for _, f := range usageFlags {
		if w := runewidth.StringWidth(f.names); w > width {
			width = w
		}
	}
	for _, f := range usageFlags {
		fmt.Fprintf(out, "    %s  %s\n", runewidth.FillRight(f.names, width), f.desc)
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, "Examples:")
	fmt.Fprintln(out, "    gocat f g        Output f's contents, then g's contents.")
	fmt.Fprintln(out, "    gocat            Copy standard input to standard output.")
	fmt.Fprintln(out)
	fmt.Fprintf(out, "gocat %s\n", version.Version)
}
