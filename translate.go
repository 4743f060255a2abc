package globcore

import (
	"github.com/Crystalix007/globcore/internal/ast"
	"github.com/Crystalix007/globcore/internal/expand"
	"github.com/Crystalix007/globcore/internal/globerr"
	"github.com/Crystalix007/globcore/internal/translate"
)

// Translate expands pattern (applying every pre-expansion stage the
// flags enable) and lowers each resulting concrete pattern to a regexp2
// source string, returning the include-set and exclude-set separately.
// It does no compilation or caching; Compile is the entry point for
// that.
func Translate(pattern string, flags Flags, limit int) (includes, excludes []string, err error) {
	opts := toOptions(flags)

	expOpts := expand.Options{
		Platform:    opts.Platform,
		RawChars:    opts.RawChars,
		Brace:       opts.Brace,
		Split:       opts.Split,
		Tilde:       opts.GlobTilde,
		Extglob:     opts.Extglob,
		Negate:      opts.Negate,
		NegateAll:   opts.NegateAll,
		MinusNegate: opts.MinusNegate,
		NoUnique:    opts.NoUnique,
	}

	expanded, err := expand.Expand([]expand.Raw{{Text: pattern}}, expOpts, resolveLimit(limit))
	if err != nil {
		return nil, nil, globerr.Wrap(globerr.KindLimit, pattern, err)
	}

	for _, e := range expanded {
		nodes, err := ast.Parse(e.Pattern, ast.Options{
			Platform:     opts.Platform,
			Extglob:      opts.Extglob,
			Globstar:     opts.Globstar,
			GlobstarLong: opts.GlobstarLong,
		})
		if err != nil {
			return nil, nil, globerr.Wrap(globerr.KindSyntax, e.Pattern, err)
		}
		if err := ast.ValidatePosixClasses(nodes); err != nil {
			return nil, nil, globerr.Wrap(globerr.KindSyntax, e.Pattern, err)
		}

		source, err := translate.Translate(nodes, translate.Options{
			Platform:  opts.Platform,
			CaseFold:  opts.CaseFold,
			DotGlob:   opts.DotGlob,
			NodotDir:  opts.NodotDir,
			MatchBase: opts.MatchBase,
			Exclude:   e.Exclude,
		})
		if err != nil {
			return nil, nil, globerr.Wrap(globerr.KindRegexCompile, e.Pattern, err)
		}

		if e.Exclude {
			excludes = append(excludes, source)
		} else {
			includes = append(includes, source)
		}
	}
	return includes, excludes, nil
}
