// Package matcher is the matcher facade: it expands, parses, and
// translates patterns into compiled regexes, and answers
// match/filter/compile queries against them.
package matcher

import "github.com/Crystalix007/globcore/internal/platform"

// Options is the fully-resolved (flag priority rules already applied)
// configuration for one compile call.
type Options struct {
	Platform     platform.Platform
	CaseFold     bool
	RawChars     bool
	Negate       bool
	NegateAll    bool
	MinusNegate  bool
	Globstar     bool
	GlobstarLong bool
	Follow       bool
	Realpath     bool
	DotGlob      bool
	NodotDir     bool
	ScanDotDir   bool
	Extglob      bool
	Brace        bool
	Split        bool
	NoUnique     bool
	GlobTilde    bool
	Mark         bool
	MatchBase    bool
	NoDir        bool
}
