package globcore

import (
	"strings"

	"github.com/Crystalix007/globcore/internal/platform"
)

// metaChars are the characters that carry special meaning somewhere in
// the pattern grammar this package implements.
const metaChars = `-!*?()[]|{}\`

// Escape backslash-escapes every meta character in path so that
// compiling the result matches path literally. On Windows, '\' is
// never an escape introducer — it's always a path separator there, so
// doubling it would parse back as two separators instead of one — so
// it is left alone rather than escaped. Drive/UNC prefixes are kept
// intact but their brace/split/pipe characters are still escaped,
// because pre-expansion runs over the whole pattern string before the
// parser ever recognizes a drive prefix.
func Escape(path string, unix bool) string {
	var b strings.Builder
	b.Grow(len(path) + 8)

	prefixLen := 0
	if !unix {
		if n, ok := platform.Windows.DriveOrUNC(path); ok {
			prefixLen = n
		}
	}
	b.WriteString(path[:prefixLen])

	for _, r := range path[prefixLen:] {
		if r == '\\' && !unix {
			b.WriteRune(r)
			continue
		}
		if strings.ContainsRune(metaChars, r) {
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}
	return b.String()
}

// IsMagic reports whether pattern contains at least one meta character
// from the flag-dependent set of recognized glob syntax: sequences and
// wildcards always count; extended-glob headers only count when EXTGLOB
// is set; brace syntax only counts when BRACE is set.
func IsMagic(pattern string, flags Flags) bool {
	flags = flags.normalize()

	runes := []rune(pattern)
	for i := 0; i < len(runes); i++ {
		switch runes[i] {
		case '\\':
			i++
		case '*', '?', '[':
			return true
		case '{':
			if flags.Has(BRACE) {
				return true
			}
		case '(':
			if flags.Has(EXTGLOB) && i > 0 && isExtKind(runes[i-1]) {
				return true
			}
		}
	}
	return false
}

func isExtKind(r rune) bool {
	switch r {
	case '?', '*', '+', '@', '!':
		return true
	default:
		return false
	}
}
