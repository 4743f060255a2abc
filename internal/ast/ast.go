// Package ast defines the typed AST that the lexer/parser produces and
// the translator lowers into a regex source string.
package ast

// Kind discriminates the node variants a parsed pattern can contain.
// Go has no native sum type, so Node carries a Kind tag plus the fields
// relevant to that tag, the AST-node equivalent of a tagged union.
type Kind int

const (
	Literal    Kind = iota // a run of literal characters
	AnyChar                // '?'
	AnyRun                 // '*'
	Sequence               // '[...]'
	ExtGroup               // '?(...)','*(...)','+(...)','@(...)','!(...)'
	Separator              // a path separator
	Globstar               // '**' or '***'
	DriveOrUNC             // a drive letter or UNC sharepoint prefix
	Tilde                  // '~' or '~user'
)

// Node is one element of a parsed pattern's flat token stream. Patterns
// have no real nesting except inside ExtGroup alternatives and
// Sequence members, so a flat slice of Nodes (rather than a tree) is
// the natural representation — segments are just runs of Nodes split on
// Separator.
type Node struct {
	Kind   Kind
	Offset int // byte offset in the source pattern, for diagnostics

	// Literal
	Text string

	// Sequence
	Negated bool
	Items   []SeqItem

	// ExtGroup
	ExtKind      byte // one of '?','*','+','@','!'
	Alternatives [][]Node

	// Globstar
	Long bool // true for '***'

	// DriveOrUNC
	Prefix string

	// Tilde
	User string // empty for a bare '~'
}

// SeqItemKind discriminates the members a Sequence (character class) can
// contain.
type SeqItemKind int

const (
	SeqChar  SeqItemKind = iota // a single literal rune
	SeqRange                    // an inclusive rune range lo-hi
	SeqClass                    // a POSIX class name, e.g. "alpha"
)

// SeqItem is one member of a Sequence node.
type SeqItem struct {
	Kind  SeqItemKind
	Lo    rune
	Hi    rune
	Class string
}

// PosixClasses is the closed set of POSIX class names allowed inside a
// Sequence.
var PosixClasses = map[string]bool{
	"alnum": true, "alpha": true, "ascii": true, "blank": true,
	"cntrl": true, "digit": true, "graph": true, "lower": true,
	"print": true, "punct": true, "space": true, "upper": true,
	"word": true, "xdigit": true,
}

// Pattern is one compiled-from-source pattern: its parsed node stream
// plus the metadata pre-expansion attached to it.
type Pattern struct {
	Nodes   []Node
	Exclude bool // true if this pattern is an exclude (negated) pattern
	IsBytes bool // true if the original raw pattern was a []byte
}

// Segments splits Nodes on Separator tokens, returning one slice of
// Nodes per path segment (Separator tokens themselves are dropped).
func (p *Pattern) Segments() [][]Node {
	var segs [][]Node
	var cur []Node
	for _, n := range p.Nodes {
		if n.Kind == Separator {
			segs = append(segs, cur)
			cur = nil
			continue
		}
		cur = append(cur, n)
	}
	segs = append(segs, cur)
	return segs
}
