// Package expand implements raw-char decoding, brace expansion,
// top-level '|' splitting, and tilde expansion, bounded by a per-call
// pattern budget.
package expand

import (
	"fmt"
	"strings"

	"github.com/Crystalix007/globcore/internal/platform"
)

// Raw is one caller-supplied pattern prior to expansion.
type Raw struct {
	Text    string
	IsBytes bool
}

// Expanded is one fully pre-expanded, still-textual pattern plus the
// polarity/type metadata the rest of the pipeline needs.
type Expanded struct {
	Pattern string
	Exclude bool
	IsBytes bool
}

// Options selects which expansion stages run.
type Options struct {
	Platform    platform.Platform
	RawChars    bool
	Brace       bool
	Split       bool
	Tilde       bool
	Extglob     bool
	Negate      bool
	NegateAll   bool
	MinusNegate bool
	NoUnique    bool
}

// Expand runs the pre-expansion pipeline over every raw pattern,
// producing the bounded, deduplicated list of Expanded patterns the
// lexer/parser consumes. limit <= 0 means unbounded.
func Expand(raws []Raw, opts Options, limit int) ([]Expanded, error) {
	if len(raws) == 0 {
		return nil, nil
	}
	for _, r := range raws[1:] {
		if r.IsBytes != raws[0].IsBytes {
			return nil, fmt.Errorf("mixed string/[]byte patterns in one batch")
		}
	}

	budget := limit
	if limit <= 0 {
		budget = -1
	}

	var out []Expanded
	for _, raw := range raws {
		expanded, err := expandOne(raw, opts, &budget)
		if err != nil {
			return nil, err
		}
		out = append(out, expanded...)
		if budget >= 0 {
			budget -= len(expanded)
			if budget < 0 {
				return nil, fmt.Errorf("pattern expansion exceeds limit %d", limit)
			}
		}
	}

	if !opts.NoUnique {
		out = dedupe(out)
	}
	return out, nil
}

func expandOne(raw Raw, opts Options, budget *int) ([]Expanded, error) {
	text := raw.Text
	if opts.RawChars {
		text = decodeRawChars(text)
	}

	var braced []string
	if opts.Brace {
		var err error
		braced, err = expandBraces(text, budget)
		if err != nil {
			return nil, err
		}
	} else {
		braced = []string{text}
	}

	var split []string
	if opts.Split {
		for _, b := range braced {
			split = append(split, splitTopPipe(b)...)
		}
	} else {
		split = braced
	}

	out := make([]Expanded, 0, len(split))
	for _, s := range split {
		if opts.Tilde {
			if expandedHome, ok, err := platform.ExpandTilde(s); err != nil {
				return nil, err
			} else if ok {
				s = expandedHome
			}
		}

		exclude, pattern := tagNegation(s, opts)
		out = append(out, Expanded{Pattern: pattern, Exclude: exclude, IsBytes: raw.IsBytes})
	}
	return out, nil
}

// splitTopPipe splits s on top-level '|' characters: not inside a
// '[...]' sequence or an extglob group, and not escaped with a
// backslash.
func splitTopPipe(s string) []string {
	runes := []rune(s)
	var out []string
	start := 0
	for i := 0; i < len(runes); i++ {
		switch {
		case runes[i] == '\\' && i+1 < len(runes):
			i++
		case runes[i] == '[':
			i = skipBracketExpr(runes, i) - 1
		case isExtKindRune(runes[i]) && i+1 < len(runes) && runes[i+1] == '(':
			i = skipParenGroup(runes, i+1) - 1
		case runes[i] == '|':
			out = append(out, string(runes[start:i]))
			start = i + 1
		}
	}
	out = append(out, string(runes[start:]))
	return out
}

// tagNegation strips and classifies a leading negate sigil ('!' or,
// under MINUSNEGATE, '-'): the pattern becomes an exclude with the
// sigil removed, unless it is actually the opening of an extglob
// "!(" group, in which case NEGATE does not apply.
func tagNegation(s string, opts Options) (exclude bool, pattern string) {
	if !opts.Negate || s == "" {
		return false, s
	}

	sigil := byte('!')
	if opts.MinusNegate {
		sigil = '-'
	}

	if s[0] != sigil {
		return false, s
	}

	if sigil == '!' && opts.Extglob && strings.HasPrefix(s, "!(") {
		return false, s
	}

	return true, s[1:]
}

func dedupe(in []Expanded) []Expanded {
	seen := make(map[Expanded]bool, len(in))
	out := make([]Expanded, 0, len(in))
	for _, e := range in {
		if seen[e] {
			continue
		}
		seen[e] = true
		out = append(out, e)
	}
	return out
}
