// Package globcore compiles Bash/Zsh-flavored glob patterns — braces,
// tilde expansion, POSIX character classes, extended-glob groups, and
// globstar directory spanning — into reusable matchers, and can drive a
// filesystem walker against them.
//
// Compile once and reuse the result for repeated matching:
//
//	c, err := globcore.Compile([]string{"**/*.go", "!vendor/**"}, globcore.GLOBSTAR|globcore.NEGATE, 0)
//	ok, err := c.Match("internal/walk/walk.go", "")
//
// Glob and GlobSeq additionally consult the filesystem, returning the
// paths under root that the compiled pattern set actually matches.
//
// See DESIGN.md for how this package's internals are grounded in the
// example corpus it was built from.
package globcore
