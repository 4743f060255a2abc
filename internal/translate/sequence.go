package translate

import (
	"fmt"
	"strings"

	"github.com/Crystalix007/globcore/internal/ast"
)

// posixClassRanges are the ASCII ranges each closed-set POSIX class name
// expands to inside a regex character class.
var posixClassRanges = map[string]string{
	"alnum":  `A-Za-z0-9`,
	"alpha":  `A-Za-z`,
	"ascii":  `\x00-\x7F`,
	"blank":  ` \t`,
	"cntrl":  `\x00-\x1F\x7F`,
	"digit":  `0-9`,
	"graph":  `\x21-\x7E`,
	"lower":  `a-z`,
	"print":  `\x20-\x7E`,
	"punct":  `!-/:-@\[-` + "`" + `{-~`,
	"space":  ` \t\n\v\f\r`,
	"upper":  `A-Z`,
	"word":   `A-Za-z0-9_`,
	"xdigit": `0-9A-Fa-f`,
}

// translateSequence lowers a Sequence ('[...]') node to a regex
// character class.
func translateSequence(n ast.Node, atSegStart bool, opts Options) (string, error) {
	var body strings.Builder
	for _, item := range n.Items {
		switch item.Kind {
		case ast.SeqChar:
			body.WriteString(quoteClassRune(item.Lo))
		case ast.SeqRange:
			body.WriteString(quoteClassRune(item.Lo))
			body.WriteByte('-')
			body.WriteString(quoteClassRune(item.Hi))
		case ast.SeqClass:
			ranges, ok := posixClassRanges[item.Class]
			if !ok {
				return "", fmt.Errorf("unknown POSIX class %q", item.Class)
			}
			body.WriteString(ranges)
		}
	}

	class := body.String()
	// A lone '-' at the boundary of the class would otherwise form an
	// unintended range; quoteClassRune already escapes any '-' appearing
	// as a literal member, so nothing further is required here.

	var out strings.Builder
	out.WriteByte('[')
	if n.Negated {
		out.WriteByte('^')
		// Excluding separators from a negated class keeps "[!x]" from
		// accidentally spanning a path separator.
		out.WriteString(`/`)
	}
	out.WriteString(class)
	out.WriteByte(']')

	frag := out.String()
	if atSegStart && !opts.DotGlob {
		return `(?:(?!\.)` + frag + `)`, nil
	}
	return frag, nil
}

func quoteClassRune(r rune) string {
	switch r {
	case '\\', ']', '^', '-', '[':
		return `\` + string(r)
	default:
		return string(r)
	}
}
