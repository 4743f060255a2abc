package main

import (
	"github.com/spf13/pflag"

	"github.com/Crystalix007/globcore"
)

// flagOptions maps 1:1 onto globcore.Flags, one bool per bit, so every
// subcommand shares the same set of --case, --brace, --globstar, etc.
// flags without repeating the wiring per subcommand.
type flagOptions struct {
	caseSensitive bool
	ignoreCase    bool
	rawChars      bool
	negate        bool
	negateAll     bool
	minusNegate   bool
	globstar      bool
	globstarLong  bool
	follow        bool
	realpath      bool
	dotGlob       bool
	nodotDir      bool
	scanDotDir    bool
	extglob       bool
	brace         bool
	split         bool
	noUnique      bool
	globTilde     bool
	mark          bool
	matchBase     bool
	noDir         bool
	forceWin      bool
	forceUnix     bool
	limit         int
}

func (f *flagOptions) register(fs *pflag.FlagSet) {
	fs.BoolVar(&f.caseSensitive, "case", false, "force case-sensitive matching")
	fs.BoolVar(&f.ignoreCase, "ignore-case", false, "force case-insensitive matching")
	fs.BoolVar(&f.rawChars, "raw-chars", false, "decode \\n, \\xFF, \\uFFFF style escapes before expansion")
	fs.BoolVar(&f.negate, "negate", false, "a leading '!' (or '-' with --minus-negate) makes a pattern an exclude")
	fs.BoolVar(&f.negateAll, "negate-all", false, "a pattern set of only excludes implicitly includes everything else")
	fs.BoolVar(&f.minusNegate, "minus-negate", false, "use '-' instead of '!' as the negate sigil")
	fs.BoolVar(&f.globstar, "globstar", true, "enable ** directory-spanning wildcards")
	fs.BoolVar(&f.globstarLong, "globstar-long", false, "enable *** (globstar that also traverses symlinks)")
	fs.BoolVar(&f.follow, "follow", false, "let ** traverse symlink directories")
	fs.BoolVar(&f.realpath, "realpath", false, "require matched paths to exist on disk")
	fs.BoolVar(&f.dotGlob, "dot-glob", false, "let wildcards match a leading dot")
	fs.BoolVar(&f.nodotDir, "no-dot-dir", false, "never match the literal segments . or .. even with --dot-glob")
	fs.BoolVar(&f.scanDotDir, "scan-dot-dir", false, "include synthetic . and .. entries while walking")
	fs.BoolVar(&f.extglob, "extglob", true, "enable ?(), *(), +(), @(), !() extended groups")
	fs.BoolVar(&f.brace, "brace", true, "enable {a,b} and {n..m[..step]} brace expansion")
	fs.BoolVar(&f.split, "split", false, "treat top-level '|' as a pattern separator")
	fs.BoolVar(&f.noUnique, "no-unique", false, "disable pattern/result deduplication")
	fs.BoolVar(&f.globTilde, "glob-tilde", false, "expand ~ and ~user to home directories")
	fs.BoolVar(&f.mark, "mark", false, "append a separator to directory results")
	fs.BoolVar(&f.matchBase, "match-base", false, "match the basename when the pattern has no separator")
	fs.BoolVar(&f.noDir, "no-dir", false, "omit directories from walk results")
	fs.BoolVar(&f.forceWin, "force-windows", false, "force Windows path semantics")
	fs.BoolVar(&f.forceUnix, "force-unix", false, "force Unix path semantics")
	fs.IntVar(&f.limit, "limit", -1, "pre-expansion pattern budget (default 1000; 0 = unbounded)")
}

func (f *flagOptions) flags() globcore.Flags {
	var fl globcore.Flags
	set := func(b bool, flag globcore.Flags) {
		if b {
			fl |= flag
		}
	}
	set(f.caseSensitive, globcore.CASE)
	set(f.ignoreCase, globcore.IGNORECASE)
	set(f.rawChars, globcore.RAWCHARS)
	set(f.negate, globcore.NEGATE)
	set(f.negateAll, globcore.NEGATEALL)
	set(f.minusNegate, globcore.MINUSNEGATE)
	set(f.globstar, globcore.GLOBSTAR)
	set(f.globstarLong, globcore.GLOBSTARLONG)
	set(f.follow, globcore.FOLLOW)
	set(f.realpath, globcore.REALPATH)
	set(f.dotGlob, globcore.DOTGLOB)
	set(f.nodotDir, globcore.NODOTDIR)
	set(f.scanDotDir, globcore.SCANDOTDIR)
	set(f.extglob, globcore.EXTGLOB)
	set(f.brace, globcore.BRACE)
	set(f.split, globcore.SPLIT)
	set(f.noUnique, globcore.NOUNIQUE)
	set(f.globTilde, globcore.GLOBTILDE)
	set(f.mark, globcore.MARK)
	set(f.matchBase, globcore.MATCHBASE)
	set(f.noDir, globcore.NODIR)
	set(f.forceWin, globcore.FORCEWIN)
	set(f.forceUnix, globcore.FORCEUNIX)
	return fl
}
