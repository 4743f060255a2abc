package matcher

import (
	"strings"

	"github.com/dlclark/regexp2"

	"github.com/Crystalix007/globcore/internal/ast"
	"github.com/Crystalix007/globcore/internal/expand"
	"github.com/Crystalix007/globcore/internal/globerr"
	"github.com/Crystalix007/globcore/internal/platform"
	"github.com/Crystalix007/globcore/internal/translate"
)

// compiledPattern pairs one compiled regex with the walker-relevant
// facts about the source pattern it came from: whether it used
// globstar/globstarlong, which decides symlink traversal during a real
// walk.
type compiledPattern struct {
	Regex        *regexp2.Regexp
	Source       string
	HasGlobstar  bool
	GlobstarLong bool
	Exclude      bool
	LiteralRoot  string // longest leading run of literal path segments, "" if none
}

// PatternCount reports how many include patterns c holds.
func (c *Compiled) PatternCount() int { return len(c.Includes) }

// IncludeWalkHints exposes one compiled include pattern's
// walker-relevant facts, without exposing the compiled regex itself;
// the walker filters candidates through Match instead of matching
// regexes directly.
func (c *Compiled) IncludeWalkHints(i int) (literalRoot string, hasGlobstar, globstarLong bool) {
	p := c.Includes[i]
	return p.LiteralRoot, p.HasGlobstar, p.GlobstarLong
}

// Compiled is the reusable matcher handle Compile returns.
type Compiled struct {
	Includes []compiledPattern
	Excludes []compiledPattern
	Opts     Options
	IsBytes  bool
}

// Compile expands, parses, and translates patterns into a reusable
// Compiled matcher, consulting the process-wide compile cache first.
func Compile(patterns []expand.Raw, opts Options, limit int) (*Compiled, error) {
	isBytes := false
	var texts []string
	for _, p := range patterns {
		texts = append(texts, p.Text)
		isBytes = isBytes || p.IsBytes
	}

	key := fingerprint(texts, isBytes, opts)
	if c, ok := compileCache.Get(key); ok {
		return c, nil
	}

	c, err := compileUncached(patterns, opts, limit)
	if err != nil {
		return nil, err
	}
	compileCache.Add(key, c)
	return c, nil
}

func compileUncached(patterns []expand.Raw, opts Options, limit int) (*Compiled, error) {
	for _, p := range patterns {
		if p.IsBytes != patterns[0].IsBytes {
			return nil, globerr.New(globerr.KindTypeMismatch, "", "mixed string/[]byte patterns in one batch")
		}
	}

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

	expanded, err := expand.Expand(patterns, expOpts, limit)
	if err != nil {
		return nil, globerr.Wrap(globerr.KindLimit, "", err)
	}

	c := &Compiled{Opts: opts}
	if len(patterns) > 0 {
		c.IsBytes = patterns[0].IsBytes
	}

	hasInclude := false
	for _, e := range expanded {
		if !e.Exclude {
			hasInclude = true
		}
	}

	if opts.NegateAll && !hasInclude && len(expanded) > 0 {
		everything, err := compileOne("**", false, opts)
		if err != nil {
			return nil, err
		}
		c.Includes = append(c.Includes, *everything)
	}

	for _, e := range expanded {
		cp, err := compileOne(e.Pattern, e.Exclude, opts)
		if err != nil {
			return nil, err
		}
		if e.Exclude {
			c.Excludes = append(c.Excludes, *cp)
		} else {
			c.Includes = append(c.Includes, *cp)
		}
	}

	return c, nil
}

func compileOne(pattern string, exclude bool, opts Options) (*compiledPattern, error) {
	nodes, err := ast.Parse(pattern, ast.Options{
		Platform:     opts.Platform,
		Extglob:      opts.Extglob,
		Globstar:     opts.Globstar,
		GlobstarLong: opts.GlobstarLong,
	})
	if err != nil {
		return nil, globerr.Wrap(globerr.KindSyntax, pattern, err)
	}
	if err := ast.ValidatePosixClasses(nodes); err != nil {
		return nil, globerr.Wrap(globerr.KindSyntax, pattern, err)
	}

	source, err := translate.Translate(nodes, translate.Options{
		Platform:  opts.Platform,
		CaseFold:  opts.CaseFold,
		DotGlob:   opts.DotGlob,
		NodotDir:  opts.NodotDir,
		MatchBase: opts.MatchBase,
		Exclude:   exclude,
	})
	if err != nil {
		return nil, globerr.Wrap(globerr.KindRegexCompile, pattern, err)
	}

	re, err := regexp2.Compile(source, regexp2.None)
	if err != nil {
		return nil, globerr.Wrap(globerr.KindRegexCompile, pattern, err)
	}

	return &compiledPattern{
		Regex:        re,
		Source:       source,
		HasGlobstar:  hasGlobstar(nodes),
		GlobstarLong: hasLongGlobstar(nodes),
		Exclude:      exclude,
		LiteralRoot:  literalRoot(nodes),
	}, nil
}

// literalRoot returns the longest leading run of path segments built
// entirely from Literal nodes, joined with '/'. The walker uses this to
// skip straight to the first directory level that could possibly
// contain a match instead of listing from the current directory.
func literalRoot(nodes []ast.Node) string {
	var segs []string
	var cur strings.Builder
	i := 0
	if len(nodes) > 0 && nodes[0].Kind == ast.DriveOrUNC {
		cur.WriteString(nodes[0].Prefix)
		i = 1
	}
	for ; i < len(nodes); i++ {
		n := nodes[i]
		switch n.Kind {
		case ast.Literal:
			cur.WriteString(n.Text)
		case ast.Separator:
			segs = append(segs, cur.String())
			cur.Reset()
		default:
			if cur.Len() > 0 || len(segs) > 0 {
				return strings.Join(segs, "/")
			}
			return ""
		}
	}
	if cur.Len() > 0 {
		segs = append(segs, cur.String())
	}
	return strings.Join(segs, "/")
}

func hasGlobstar(nodes []ast.Node) bool {
	for _, n := range nodes {
		if n.Kind == ast.Globstar {
			return true
		}
	}
	return false
}

func hasLongGlobstar(nodes []ast.Node) bool {
	for _, n := range nodes {
		if n.Kind == ast.Globstar && n.Long {
			return true
		}
	}
	return false
}

// fsFor resolves the filesystem capability implementation used during
// REALPATH evaluation. A package-level var (rather than a parameter
// threaded through every call) keeps the public Match/Filter signatures
// stable while still letting tests substitute a fake.
var fsFor platform.FS = platform.OS{}
