package ast

import (
	"fmt"
	"strings"

	"github.com/Crystalix007/globcore/internal/platform"
)

// Options controls which meta-syntax the parser recognizes.
type Options struct {
	Platform     platform.Platform
	Extglob      bool // ?(...) *(...) +(...) @(...) !(...)
	Globstar     bool // **
	GlobstarLong bool // ***
}

// Parse tokenizes a single expanded pattern into a flat Node stream.
// Unrecognized or unterminated meta-syntax degrades to literal text
// rather than erroring, so Parse returns a nil error for every input.
// POSIX class names inside a sequence are not checked here;
// ValidatePosixClasses reports unknown ones.
func Parse(pattern string, opts Options) ([]Node, error) {
	p := &parser{src: []rune(pattern), opts: opts}

	if prefixLen, ok := opts.Platform.DriveOrUNC(pattern); ok {
		// prefixLen is a byte offset into the original (ASCII-heavy)
		// string; drive/UNC prefixes are always ASCII so the rune index
		// equals the byte index here.
		p.nodes = append(p.nodes, Node{Kind: DriveOrUNC, Prefix: pattern[:prefixLen], Offset: 0})
		p.pos = prefixLen
	}

	if err := p.run(); err != nil {
		return nil, err
	}
	return p.nodes, nil
}

type parser struct {
	src   []rune
	pos   int
	opts  Options
	nodes []Node
	lit   strings.Builder
	litAt int
}

func (p *parser) run() error {
	for p.pos < len(p.src) {
		c := p.src[p.pos]

		switch {
		case c == '\\' && p.opts.Platform != platform.Windows:
			p.pos++
			if p.pos < len(p.src) {
				p.startLiteral()
				p.lit.WriteRune(p.src[p.pos])
				p.pos++
			}
			// A trailing unpaired backslash is dropped.

		case c == '[':
			p.flushLiteral()
			if !p.parseSequence() {
				// Never closes: treated as a literal '['.
				p.startLiteral()
				p.lit.WriteRune('[')
				p.pos++
			}

		case p.opts.Extglob && isExtKind(c) && p.pos+1 < len(p.src) && p.src[p.pos+1] == '(':
			p.flushLiteral()
			if !p.parseExtGroup() {
				p.startLiteral()
				p.lit.WriteRune(c)
				p.pos++
			}

		case p.opts.Platform.IsSeparator(byte(c)) && c < 128:
			p.flushLiteral()
			p.nodes = append(p.nodes, Node{Kind: Separator, Offset: p.pos})
			p.pos++

		case c == '*':
			p.flushLiteral()
			p.parseStars()

		case c == '?':
			p.flushLiteral()
			p.nodes = append(p.nodes, Node{Kind: AnyChar, Offset: p.pos})
			p.pos++

		default:
			p.startLiteral()
			p.lit.WriteRune(c)
			p.pos++
		}
	}
	p.flushLiteral()
	return nil
}

func (p *parser) startLiteral() {
	if p.lit.Len() == 0 {
		p.litAt = p.pos
	}
}

func (p *parser) flushLiteral() {
	if p.lit.Len() > 0 {
		p.nodes = append(p.nodes, Node{Kind: Literal, Text: p.lit.String(), Offset: p.litAt})
		p.lit.Reset()
	}
}

// parseStars handles '*', '**', and '***' with the segment-boundary
// tie-break: "**" is only recognized as a globstar when it is the sole
// content of a path segment; otherwise the stars are two (or three)
// single-star tokens.
func (p *parser) parseStars() {
	start := p.pos
	n := 0
	for p.pos < len(p.src) && p.src[p.pos] == '*' {
		n++
		p.pos++
	}

	atSegStart := p.isSegmentStart(start)
	atSegEnd := p.pos >= len(p.src) || p.opts.Platform.IsSeparator(byte(p.src[p.pos]))

	if n >= 2 && atSegStart && atSegEnd && p.opts.Globstar {
		long := n >= 3 && p.opts.GlobstarLong
		p.nodes = append(p.nodes, Node{Kind: Globstar, Long: long, Offset: start})
		return
	}

	// Not a recognized globstar: emit n individual AnyRun tokens.
	for k := 0; k < n; k++ {
		p.nodes = append(p.nodes, Node{Kind: AnyRun, Offset: start + k})
	}
}

func (p *parser) isSegmentStart(pos int) bool {
	if pos == 0 {
		return true
	}
	if len(p.nodes) == 0 {
		return true
	}
	return p.nodes[len(p.nodes)-1].Kind == Separator
}

func isExtKind(c rune) bool {
	switch c {
	case '?', '*', '+', '@', '!':
		return true
	}
	return false
}

// parseExtGroup parses an extended-glob group starting at the kind byte
// (p.src[p.pos]). Returns false (leaving p.pos unchanged) if the group
// never closes, so the caller can fall back to a literal.
func (p *parser) parseExtGroup() bool {
	start := p.pos
	kind := byte(p.src[p.pos])
	depth := 0
	i := p.pos + 1 // at '('

	closeIdx := -1
	for j := i; j < len(p.src); j++ {
		switch p.src[j] {
		case '\\':
			j++ // skip escaped char
		case '(':
			if j != i {
				// Every '(' after the group's own opening paren counts,
				// whether it opens a nested extglob or is a bare '(', so
				// parens stay balanced.
				depth++
			}
		case ')':
			if depth == 0 {
				closeIdx = j
			} else {
				depth--
			}
		}
		if closeIdx != -1 {
			break
		}
	}
	if closeIdx == -1 {
		return false
	}

	body := string(p.src[i+1 : closeIdx])
	alts, err := splitAlternatives(body)
	if err != nil {
		return false
	}

	var parsedAlts [][]Node
	for _, alt := range alts {
		sub, err := Parse(alt, p.opts)
		if err != nil {
			return false
		}
		parsedAlts = append(parsedAlts, sub)
	}

	p.nodes = append(p.nodes, Node{
		Kind:         ExtGroup,
		ExtKind:      kind,
		Alternatives: parsedAlts,
		Offset:       start,
	})
	p.pos = closeIdx + 1
	return true
}

// splitAlternatives splits an extglob body on top-level '|', respecting
// nested extglob groups and character sequences.
func splitAlternatives(body string) ([]string, error) {
	runes := []rune(body)
	var alts []string
	depthParen, depthBracket := 0, 0
	start := 0
	for i := 0; i < len(runes); i++ {
		switch runes[i] {
		case '\\':
			i++
		case '[':
			depthBracket++
		case ']':
			if depthBracket > 0 {
				depthBracket--
			}
		case '(':
			if depthBracket == 0 {
				depthParen++
			}
		case ')':
			if depthBracket == 0 && depthParen > 0 {
				depthParen--
			}
		case '|':
			if depthParen == 0 && depthBracket == 0 {
				alts = append(alts, string(runes[start:i]))
				start = i + 1
			}
		}
	}
	alts = append(alts, string(runes[start:]))
	return alts, nil
}

// parseSequence parses a '[...]' character sequence. Returns false,
// leaving p.pos unchanged, if it never closes.
func (p *parser) parseSequence() bool {
	start := p.pos
	i := p.pos + 1
	if i >= len(p.src) {
		return false
	}

	negated := false
	if p.src[i] == '!' || p.src[i] == '^' {
		negated = true
		i++
	}

	var items []SeqItem
	first := true
	for i < len(p.src) {
		c := p.src[i]

		if c == ']' && !first {
			p.nodes = append(p.nodes, Node{Kind: Sequence, Negated: negated, Items: items, Offset: start})
			p.pos = i + 1
			return true
		}
		first = false

		if c == '[' && i+1 < len(p.src) && p.src[i+1] == ':' {
			end := indexString(p.src, i+2, ":]")
			if end != -1 {
				name := string(p.src[i+2 : end])
				items = append(items, SeqItem{Kind: SeqClass, Class: name})
				i = end + 2
				continue
			}
		}

		if c == '\\' && i+1 < len(p.src) {
			c = p.src[i+1]
			i++
			items = append(items, literalOrRange(p.src, &i, c)...)
			continue
		}

		items = append(items, literalOrRange(p.src, &i, c)...)
	}

	return false
}

// literalOrRange consumes one sequence member starting at *i (pointing
// at the current rune c), producing either a single SeqChar or, if
// followed by "-x", a SeqRange. *i is set to the index just past the
// consumed runes.
func literalOrRange(src []rune, i *int, c rune) []SeqItem {
	idx := *i
	if idx+2 < len(src) && src[idx+1] == '-' && src[idx+2] != ']' {
		hi := src[idx+2]
		*i = idx + 3
		return []SeqItem{{Kind: SeqRange, Lo: c, Hi: hi}}
	}
	*i = idx + 1
	return []SeqItem{{Kind: SeqChar, Lo: c}}
}

func indexString(src []rune, from int, sub string) int {
	subRunes := []rune(sub)
	for i := from; i+len(subRunes) <= len(src); i++ {
		match := true
		for j, r := range subRunes {
			if src[i+j] != r {
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

// ValidatePosixClasses walks the already-parsed nodes and reports a
// pattern-syntax error for any POSIX class name outside the closed
// ASCII set.
func ValidatePosixClasses(nodes []Node) error {
	for _, n := range nodes {
		if n.Kind == Sequence {
			for _, item := range n.Items {
				if item.Kind == SeqClass && !PosixClasses[item.Class] {
					return fmt.Errorf("unknown POSIX class %q at offset %d", item.Class, n.Offset)
				}
			}
		}
		if n.Kind == ExtGroup {
			for _, alt := range n.Alternatives {
				if err := ValidatePosixClasses(alt); err != nil {
					return err
				}
			}
		}
	}
	return nil
}
