package expand

import (
	"fmt"
	"strconv"
	"strings"
)

// part is one piece of a parsed brace expression: either literal text or
// a group of alternatives, each of which is itself a sequence of parts
// (braces can nest arbitrarily).
type part struct {
	lit   string
	group *group // nil for a literal part
}

type group struct {
	alts [][]part
}

// expandBraces performs classical `{a,b}` alternation and `{n..m[..step]}`
// numeric/alpha ranges with full nesting, bounded by budget. budget is
// only read here (a negative value means unbounded): the call fails as
// soon as the running result count exceeds it, aborting early rather
// than building the full cross product first. Expand decrements budget
// afterwards by the number of patterns produced.
func expandBraces(s string, budget *int) ([]string, error) {
	parts, err := parseBraceParts([]rune(s))
	if err != nil {
		return nil, err
	}
	return expandParts(parts, budget)
}

func parseBraceParts(s []rune) ([]part, error) {
	var parts []part
	litStart := 0
	i := 0

	flush := func(end int) {
		if end > litStart {
			parts = append(parts, part{lit: string(s[litStart:end])})
		}
	}

	for i < len(s) {
		c := s[i]

		switch {
		case c == '\\' && i+1 < len(s):
			i += 2

		case c == '[':
			i = skipBracketExpr(s, i)

		case isExtKindRune(c) && i+1 < len(s) && s[i+1] == '(':
			i = skipParenGroup(s, i+1)

		case c == '{':
			close, commaIdx, ok := matchBrace(s, i)
			if !ok {
				i++
				continue
			}

			flush(i)
			inner := s[i+1 : close]
			altTexts := splitOnCommas(inner, commaIdx, i+1)

			var g group
			if len(altTexts) == 1 {
				if rng, ok := tryRange(altTexts[0]); ok {
					for _, lit := range rng {
						g.alts = append(g.alts, []part{{lit: lit}})
					}
				} else {
					// A single-item, non-range brace body is not an
					// expansion at all; bash keeps the braces literal.
					parts = append(parts, part{lit: "{" + string(inner) + "}"})
					i = close + 1
					litStart = i
					continue
				}
			} else {
				for _, alt := range altTexts {
					sub, err := parseBraceParts(alt)
					if err != nil {
						return nil, err
					}
					g.alts = append(g.alts, sub)
				}
			}

			parts = append(parts, part{group: &g})
			i = close + 1
			litStart = i

		default:
			i++
		}
	}
	flush(len(s))
	return parts, nil
}

// matchBrace finds the '}' matching the '{' at s[open], returning its
// index and the indices (relative to s) of top-level commas within the
// group. ok is false if the brace never closes.
func matchBrace(s []rune, open int) (close int, commas []int, ok bool) {
	depth := 0
	for i := open; i < len(s); i++ {
		switch {
		case s[i] == '\\' && i+1 < len(s):
			i++
		case s[i] == '[':
			i = skipBracketExpr(s, i) - 1
		case isExtKindRune(s[i]) && i+1 < len(s) && s[i+1] == '(':
			i = skipParenGroup(s, i+1) - 1
		case s[i] == '{':
			depth++
		case s[i] == '}':
			depth--
			if depth == 0 {
				return i, commas, true
			}
		case s[i] == ',' && depth == 1:
			commas = append(commas, i)
		}
	}
	return 0, nil, false
}

// splitOnCommas splits s[base:close] (base is the offset into the
// original source that commas are indexed against) on the given
// absolute comma indices.
func splitOnCommas(inner []rune, commas []int, base int) [][]rune {
	if len(commas) == 0 {
		return [][]rune{inner}
	}
	var out [][]rune
	start := base
	for _, c := range commas {
		out = append(out, inner[start-base:c-base])
		start = c + 1
	}
	out = append(out, inner[start-base:])
	return out
}

// skipBracketExpr returns the index just past a '[...]' sequence
// starting at s[open] == '[', or open+1 if it never closes (so callers
// treat the '[' as an ordinary literal character).
func skipBracketExpr(s []rune, open int) int {
	i := open + 1
	if i < len(s) && (s[i] == '!' || s[i] == '^') {
		i++
	}
	if i < len(s) && s[i] == ']' {
		i++
	}
	for i < len(s) {
		if s[i] == '[' && i+1 < len(s) && s[i+1] == ':' {
			if end := indexOfRunes(s, i+2, ":]"); end != -1 {
				i = end + 2
				continue
			}
		}
		if s[i] == ']' {
			return i + 1
		}
		i++
	}
	return open + 1
}

// skipParenGroup returns the index just past the ')' matching the '('
// at s[open], or open+1 if it never closes.
func skipParenGroup(s []rune, open int) int {
	depth := 0
	for i := open; i < len(s); i++ {
		switch s[i] {
		case '\\':
			i++
		case '(':
			depth++
		case ')':
			depth--
			if depth == 0 {
				return i + 1
			}
		}
	}
	return open + 1
}

func indexOfRunes(s []rune, from int, sub string) int {
	subRunes := []rune(sub)
	for i := from; i+len(subRunes) <= len(s); i++ {
		match := true
		for j, r := range subRunes {
			if s[i+j] != r {
				match = false
				break
			}
		}
		if match {
			return i
		}
	}
	return -1
}

func isExtKindRune(c rune) bool {
	switch c {
	case '?', '*', '+', '@', '!':
		return true
	}
	return false
}

// tryRange recognizes a "n..m" or "n..m..step" numeric range (with
// optional zero-padding preserved from the wider of the two bounds) or
// a single-character "a..z" alpha range. ok is false if text is not a
// range, in which case the caller falls back to comma-alternative
// handling.
func tryRange(text []rune) ([]string, bool) {
	s := string(text)
	segs := strings.Split(s, "..")
	if len(segs) != 2 && len(segs) != 3 {
		return nil, false
	}

	if lo, hi, ok := parseAlphaRange(segs); ok {
		return lo, hi
	}

	return numericRange(segs)
}

func parseAlphaRange(segs []string) ([]string, bool, bool) {
	if len(segs) > 2 {
		return nil, false, false
	}
	if len(segs[0]) != 1 || len(segs[1]) != 1 {
		return nil, false, false
	}
	lo, hi := rune(segs[0][0]), rune(segs[1][0])
	if !isAlpha(lo) || !isAlpha(hi) {
		return nil, false, false
	}
	var out []string
	if lo <= hi {
		for c := lo; c <= hi; c++ {
			out = append(out, string(c))
		}
	} else {
		for c := lo; c >= hi; c-- {
			out = append(out, string(c))
		}
	}
	return out, true, true
}

func isAlpha(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

func numericRange(segs []string) ([]string, bool) {
	lo, loErr := strconv.Atoi(segs[0])
	hi, hiErr := strconv.Atoi(segs[1])
	if loErr != nil || hiErr != nil {
		return nil, false
	}
	step := 1
	if len(segs) == 3 {
		s, err := strconv.Atoi(segs[2])
		if err != nil || s == 0 {
			return nil, false
		}
		step = abs(s)
	}

	width := 0
	if hasLeadingZero(segs[0]) || hasLeadingZero(segs[1]) {
		width = max(len(trimSign(segs[0])), len(trimSign(segs[1])))
	}

	var out []string
	if lo <= hi {
		for v := lo; v <= hi; v += step {
			out = append(out, formatPadded(v, width))
		}
	} else {
		for v := lo; v >= hi; v -= step {
			out = append(out, formatPadded(v, width))
		}
	}
	return out, true
}

func hasLeadingZero(s string) bool {
	s = strings.TrimPrefix(s, "-")
	return len(s) > 1 && s[0] == '0'
}

func trimSign(s string) string { return strings.TrimPrefix(s, "-") }

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func formatPadded(v, width int) string {
	if width == 0 {
		return strconv.Itoa(v)
	}
	neg := v < 0
	if neg {
		v = -v
	}
	digits := fmt.Sprintf("%0*d", width, v)
	if neg {
		return "-" + digits
	}
	return digits
}

// expandParts walks the literal/group part list, computing the cross
// product of every group's alternatives while enforcing budget,
// aborting as soon as the running result count would exceed it rather
// than building the whole product first.
func expandParts(parts []part, budget *int) ([]string, error) {
	results := []string{""}
	for _, p := range parts {
		if p.group == nil {
			for i := range results {
				results[i] += p.lit
			}
			continue
		}

		var altExpansions [][]string
		for _, alt := range p.group.alts {
			exp, err := expandParts(alt, budget)
			if err != nil {
				return nil, err
			}
			altExpansions = append(altExpansions, exp)
		}

		var flatAlts []string
		for _, exp := range altExpansions {
			flatAlts = append(flatAlts, exp...)
		}

		next := make([]string, 0, len(results)*len(flatAlts))
		for _, r := range results {
			for _, a := range flatAlts {
				next = append(next, r+a)
			}
		}
		results = next

		if *budget >= 0 && len(results) > *budget {
			return nil, fmt.Errorf("brace expansion exceeds pattern limit")
		}
	}
	return results, nil
}
