package transform

import "strings"

// appendBody renders one line's characters into out according to opts.
// The tab rule is checked before the nonprinting rule, so a tab is never
// caret-escaped even when both options are on.
func appendBody(out *strings.Builder, line string, opts Options) {
	if !opts.ShowTabs && !opts.ShowNonprinting {
		out.WriteString(line)
		return
	}
	for _, r := range line {
		switch {
		case r == '\t':
			if opts.ShowTabs {
				out.WriteString("^I")
			} else {
				out.WriteRune(r)
			}
		case opts.ShowNonprinting && !isASCIIGraphic(r) && !isASCIIWhitespace(r):
			// Caret-нотация: символ C печатается как '^' и символ
			// с кодом C+64.
			out.WriteByte('^')
			out.WriteRune(r + 64)
		default:
			out.WriteRune(r)
		}
	}
}

// isASCIIGraphic reports printable ASCII excluding space (U+0021..U+007E).
func isASCIIGraphic(r rune) bool {
	return r >= '!' && r <= '~'
}

// isASCIIWhitespace matches space, tab, newline, form feed and carriage
// return, the ASCII whitespace set.
func isASCIIWhitespace(r rune) bool {
	switch r {
	case ' ', '\t', '\n', '\x0c', '\r':
		return true
	}
	return false
}
