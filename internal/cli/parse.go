// Package cli scans invocation tokens into an immutable option set and an
// ordered list of source paths. The grammar is the historical cat surface:
// single-dash flags matched by exact membership, order-independent and
// repetition-tolerant (presence, not count, matters).
package cli

import "gocat/internal/transform"

// recognized is the exact flag token set. Membership is literal: combined
// short flags ("-ns") or any other dash token are ordinary path tokens.
var recognized = map[string]bool{
	"-b": true,
	"-e": true, "-E": true,
	"-n": true,
	"-s": true,
	"-t": true, "-T": true,
	"-u": true,
	"-v": true,
	"-h": true, "-?": true, "--help": true,
}

// IsFlag reports whether the token belongs to the recognized flag set.
// Note "-" is not in the set: it is a literal path attempt, not a stdin
// alias, in this variant.
func IsFlag(tok string) bool {
	return recognized[tok]
}

// WantsHelp reports whether the invocation asks for usage text. Only the
// first token counts; a help flag later in the list is an inert recognized
// flag. Historical quirk, kept on purpose.
func WantsHelp(tokens []string) bool {
	if len(tokens) == 0 {
		return false
	}
	switch tokens[0] {
	case "-h", "-?", "--help":
		return true
	}
	return false
}

// Parse scans the whole token list once and splits it into display options
// and source paths in their original relative order. Every flag check
// covers the entire list, so -n beats -b no matter where either appears.
// -u is recognized and discarded (compatibility placeholder).
func Parse(tokens []string) (transform.Options, []string) {
	seen := make(map[string]bool, len(recognized))
	var sources []string
	for _, tok := range tokens {
		if IsFlag(tok) {
			seen[tok] = true
			continue
		}
		sources = append(sources, tok)
	}

	var opts transform.Options
	switch {
	case seen["-n"]:
		opts.Numbering = transform.NumberAll
	case seen["-b"]:
		opts.Numbering = transform.NumberNonBlank
	}
	opts.ShowEnds = seen["-e"] || seen["-E"]
	opts.SqueezeBlank = seen["-s"]
	opts.ShowTabs = seen["-t"] || seen["-T"]
	opts.ShowNonprinting = seen["-v"]

	return opts, sources
}
