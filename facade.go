package globcore

import (
	"github.com/Crystalix007/globcore/internal/expand"
	"github.com/Crystalix007/globcore/internal/matcher"
	"github.com/Crystalix007/globcore/internal/platform"
)

// DefaultLimit bounds pre-expansion when a caller passes a negative
// limit to Compile/Match/Filter/Glob/GlobSeq/Translate, requesting the
// default budget. Pass limit == 0 explicitly for unbounded expansion.
const DefaultLimit = 1000

// Compiled is a reusable matcher built from one or more patterns. Build
// one with Compile when the same pattern set will be evaluated against
// many paths; Match and Filter are the one-shot equivalents.
type Compiled struct {
	inner *matcher.Compiled
}

func toOptions(flags Flags) matcher.Options {
	flags = flags.normalize()
	plat := platform.Detect()
	if flags.Has(FORCEWIN) {
		plat = platform.Windows
	} else if flags.Has(FORCEUNIX) {
		plat = platform.Unix
	}

	return matcher.Options{
		Platform:     plat,
		CaseFold:     plat.CaseFold(flags.Has(CASE), flags.Has(IGNORECASE)),
		RawChars:     flags.Has(RAWCHARS),
		Negate:       flags.Has(NEGATE),
		NegateAll:    flags.Has(NEGATEALL),
		MinusNegate:  flags.Has(MINUSNEGATE),
		Globstar:     flags.Has(GLOBSTAR),
		GlobstarLong: flags.Has(GLOBSTARLONG),
		Follow:       flags.Has(FOLLOW),
		Realpath:     flags.Has(REALPATH),
		DotGlob:      flags.Has(DOTGLOB),
		NodotDir:     flags.Has(NODOTDIR),
		ScanDotDir:   flags.Has(SCANDOTDIR),
		Extglob:      flags.Has(EXTGLOB),
		Brace:        flags.Has(BRACE),
		Split:        flags.Has(SPLIT),
		NoUnique:     flags.Has(NOUNIQUE),
		GlobTilde:    flags.Has(GLOBTILDE),
		Mark:         flags.Has(MARK),
		MatchBase:    flags.Has(MATCHBASE),
		NoDir:        flags.Has(NODIR),
	}
}

func toRaws(patterns []string) []expand.Raw {
	raws := make([]expand.Raw, len(patterns))
	for i, p := range patterns {
		raws[i] = expand.Raw{Text: p}
	}
	return raws
}

// resolveLimit maps a caller-supplied limit onto the pre-expansion
// budget: negative requests DefaultLimit, and zero or positive values
// pass straight through to internal/expand.Expand (which already
// treats limit <= 0 as unbounded).
func resolveLimit(limit int) int {
	if limit < 0 {
		return DefaultLimit
	}
	return limit
}

// Compile expands, parses, and translates patterns into a reusable
// Compiled matcher.
func Compile(patterns []string, flags Flags, limit int) (*Compiled, error) {
	inner, err := matcher.Compile(toRaws(patterns), toOptions(flags), resolveLimit(limit))
	if err != nil {
		return nil, err
	}
	return &Compiled{inner: inner}, nil
}

// Match reports whether path satisfies c (matched by an include pattern
// and not matched by any exclude pattern).
func (c *Compiled) Match(path, root string) (bool, error) {
	return c.inner.Match(path, root)
}

// Filter narrows paths to the subset c.Match accepts, preserving order.
func (c *Compiled) Filter(paths []string, root string) ([]string, error) {
	return c.inner.Filter(paths, root)
}

// Match is the one-shot form of Compile(...).Match(path, root).
func Match(path string, patterns []string, flags Flags, root string, limit int) (bool, error) {
	c, err := Compile(patterns, flags, limit)
	if err != nil {
		return false, err
	}
	return c.Match(path, root)
}

// Filter is the one-shot form of Compile(...).Filter(paths, root).
func Filter(paths []string, patterns []string, flags Flags, root string, limit int) ([]string, error) {
	c, err := Compile(patterns, flags, limit)
	if err != nil {
		return nil, err
	}
	return c.Filter(paths, root)
}
