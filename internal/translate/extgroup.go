package translate

import (
	"fmt"
	"strings"

	"github.com/Crystalix007/globcore/internal/ast"
)

// translateExtGroup lowers one extended-glob group. Every kind is
// wrapped in exactly one capturing group so a caller can introspect
// which alternative matched, except '!' whose alternatives are bounded
// by a negative lookahead instead of being consumed.
func translateExtGroup(n ast.Node, atSegStart bool, opts Options) (string, error) {
	alts := make([]string, 0, len(n.Alternatives))
	for _, alt := range n.Alternatives {
		frag, err := translateBody(alt, opts)
		if err != nil {
			return "", err
		}
		alts = append(alts, frag)
	}

	var core string
	if len(alts) == 1 {
		core = alts[0]
	} else {
		core = "(?:" + strings.Join(alts, "|") + ")"
	}

	// The quantifier must bind to the whole alternative, not just its
	// last atom, so it always applies to a non-capturing group around
	// core rather than to core directly.
	quantified := "(?:" + core + ")"

	switch n.ExtKind {
	case '?':
		return "(" + quantified + "?)", nil
	case '*':
		return "(" + quantified + "*)", nil
	case '+':
		return "(" + quantified + "+)", nil
	case '@':
		return "(" + core + ")", nil
	case '!':
		rest := `[^/]*`
		if atSegStart && !opts.DotGlob {
			rest = `(?:(?!\.)[^/]*)`
		}
		return fmt.Sprintf(`(?:(?!%s(?:/|$))%s)`, core, rest), nil
	default:
		return "", fmt.Errorf("translate: unknown extglob kind %q", n.ExtKind)
	}
}
