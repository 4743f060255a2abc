// Package translate lowers a parsed AST (package ast) into a regex
// source string targeting github.com/dlclark/regexp2, honoring the
// case/dot/separator/extglob/negate rules of the matching semantics
// this engine implements.
package translate

import (
	"fmt"
	"strings"

	"github.com/Crystalix007/globcore/internal/ast"
	"github.com/Crystalix007/globcore/internal/platform"
)

// Options controls how a single pattern is lowered to regex source.
type Options struct {
	Platform  platform.Platform
	CaseFold  bool // ASCII case-insensitive matching
	DotGlob   bool // wildcards may match a leading dot
	NodotDir  bool // wildcards never match "." or ".." exactly
	MatchBase bool // prepend an implicit "**/" when no separator is present
	Exclude   bool // wrap the body in a negative lookahead instead of anchoring it directly
}

// Translate lowers one parsed pattern into a regexp2 source string. The
// returned string is always fully anchored ("^...$"); Exclude patterns
// are additionally wrapped in a negative-lookahead form, "^(?!body).*$",
// which matches the paths the pattern does not cover, so a path that
// fails to match the wrapper is excluded.
func Translate(nodes []ast.Node, opts Options) (string, error) {
	nodes = applyMatchBase(nodes, opts)

	body, err := translateBody(nodes, opts)
	if err != nil {
		return "", err
	}

	prefix := ""
	if opts.CaseFold {
		prefix = "(?i)"
	}

	if opts.Exclude {
		return fmt.Sprintf("%s^(?!%s).*$", prefix, body), nil
	}
	return fmt.Sprintf("%s^%s$", prefix, body), nil
}

func applyMatchBase(nodes []ast.Node, opts Options) []ast.Node {
	if !opts.MatchBase || hasSeparator(nodes) {
		return nodes
	}
	prefixed := make([]ast.Node, 0, len(nodes)+2)
	prefixed = append(prefixed, ast.Node{Kind: ast.Globstar, Long: opts.MatchBase && opts.longImplicit()})
	prefixed = append(prefixed, ast.Node{Kind: ast.Separator})
	prefixed = append(prefixed, nodes...)
	return prefixed
}

// longImplicit decides whether an implicit MATCHBASE-prefixed globstar
// should behave as "***" (traversing symlinks) instead of plain "**".
// Options doesn't carry GLOBSTARLONG/FOLLOW directly: those are
// walker-facing concerns, not regex-shape concerns, since "***" and
// "**" compile to the identical regex fragment and only the walker's
// symlink-traversal decision differs. This always reports false. The
// matcher facade computes its walker hints from the parsed pattern
// before this prefix is added, so an implicit MATCHBASE globstar is
// reported to the walker neither as a globstar nor as "***", whatever
// GLOBSTARLONG or FOLLOW say. Kept named and documented rather than
// inlined so that decision has one obvious place to read.
func (o Options) longImplicit() bool { return false }

func hasSeparator(nodes []ast.Node) bool {
	for _, n := range nodes {
		if n.Kind == ast.Separator {
			return true
		}
	}
	return false
}

func translateBody(nodes []ast.Node, opts Options) (string, error) {
	var b strings.Builder
	sep := separatorClass(opts.Platform)
	component := componentPattern(opts.DotGlob)

	for i := 0; i < len(nodes); i++ {
		n := nodes[i]

		switch n.Kind {
		case ast.Separator:
			if i+1 < len(nodes) && nodes[i+1].Kind == ast.Globstar && i+1 == len(nodes)-1 {
				// Trailing globstar supplies its own leading separator;
				// suppress the explicit one before it.
				continue
			}
			b.WriteString(sep)

		case ast.Globstar:
			isFirst := !precededBySeparator(nodes, i)
			isLast := i == len(nodes)-1

			switch {
			case isFirst && isLast:
				b.WriteString(component)
				b.WriteString("(?:")
				b.WriteString(sep)
				b.WriteString(component)
				b.WriteString(")*")
			case isLast:
				b.WriteString("(?:")
				b.WriteString(sep)
				b.WriteString(component)
				b.WriteString(")*")
			default:
				// Leading or middle: swallow the following separator.
				b.WriteString("(?:")
				b.WriteString(component)
				b.WriteString(sep)
				b.WriteString(")*")
				if i+1 < len(nodes) && nodes[i+1].Kind == ast.Separator {
					i++
				}
			}

		default:
			atSegStart := i == 0 || nodes[i-1].Kind == ast.Separator || nodes[i-1].Kind == ast.DriveOrUNC
			atSegEnd := i == len(nodes)-1 || nodes[i+1].Kind == ast.Separator
			frag, err := emitNode(n, atSegStart, atSegStart && atSegEnd, opts)
			if err != nil {
				return "", err
			}
			b.WriteString(frag)
		}
	}
	return b.String(), nil
}

func precededBySeparator(nodes []ast.Node, idx int) bool {
	for i := 0; i < idx; i++ {
		if nodes[i].Kind == ast.Separator {
			return true
		}
	}
	return false
}

// separatorClass is the regex fragment matching one path separator: on
// Unix, '/'; on Windows, either '/' or '\\'.
func separatorClass(p platform.Platform) string {
	if p == platform.Windows {
		return `[/\\]`
	}
	return `/`
}

// componentPattern is a single non-separator path component eligible
// for globstar expansion, excluding "." and ".." always, and excluding
// any leading-dot component when dotGlob is false (the hidden-file
// rule, applied here to "**").
func componentPattern(dotGlob bool) string {
	if dotGlob {
		return `(?:(?!\.{1,2}(?:/|$))[^/]+)`
	}
	return `(?:(?!\.)[^/]+)`
}

// emitNode lowers one non-structural node (everything except Separator
// and Globstar, which translateBody handles directly) to a regex
// fragment. soleSegment is true when n is the only node in its path
// segment, the condition under which NODOTDIR additionally forbids a
// magic token from matching the literal segments "." or "..".
func emitNode(n ast.Node, atSegStart, soleSegment bool, opts Options) (string, error) {
	switch n.Kind {
	case ast.Literal:
		return regexQuoteLiteral(n.Text), nil

	case ast.AnyChar:
		frag := `[^/]`
		if atSegStart && !opts.DotGlob {
			frag = `(?:(?!\.)[^/])`
		}
		return guardNodotDir(frag, soleSegment, opts), nil

	case ast.AnyRun:
		frag := `[^/]*`
		if atSegStart && !opts.DotGlob {
			// The dot guard applies once, at the run's first character;
			// wrapping the whole star in the lookahead (rather than just
			// its first iteration) would reject any interior dot too.
			frag = `(?:(?!\.)[^/]*)`
		}
		return guardNodotDir(frag, soleSegment, opts), nil

	case ast.Sequence:
		frag, err := translateSequence(n, atSegStart, opts)
		if err != nil {
			return "", err
		}
		return guardNodotDir(frag, soleSegment, opts), nil

	case ast.ExtGroup:
		return translateExtGroup(n, atSegStart, opts)

	case ast.DriveOrUNC:
		return regexQuoteLiteral(n.Prefix), nil

	case ast.Tilde:
		// Tilde nodes are resolved away during pre-expansion; a Tilde
		// reaching the translator means GLOBTILDE was off, so it's
		// matched as the literal characters it would otherwise expand
		// from.
		lit := "~" + n.User
		return regexQuoteLiteral(lit), nil

	default:
		return "", fmt.Errorf("translate: unhandled node kind %d at offset %d", n.Kind, n.Offset)
	}
}

// guardNodotDir wraps frag with a negative lookahead rejecting an exact
// "." or ".." match when NODOTDIR is set and frag is the whole segment.
func guardNodotDir(frag string, soleSegment bool, opts Options) string {
	if !soleSegment || !opts.NodotDir {
		return frag
	}
	return `(?:(?!\.{1,2}(?:/|$))` + frag + `)`
}

func regexQuoteLiteral(s string) string {
	var b strings.Builder
	for _, r := range s {
		if strings.ContainsRune(`\.+*?()|[]{}^$`, r) {
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}
	return b.String()
}
