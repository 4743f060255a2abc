// Package platform handles OS detection, case-fold policy, separator
// handling, drive/UNC recognition, tilde resolution, and the thin
// filesystem primitives the rest of the engine is built on.
package platform

import (
	"runtime"
	"strings"
)

// Platform selects the path-separator and case-fold semantics a
// pattern is compiled against.
type Platform int

const (
	Unix Platform = iota
	Windows
)

func (p Platform) String() string {
	if p == Windows {
		return "windows"
	}
	return "unix"
}

// Separator is the canonical path separator for p.
func (p Platform) Separator() byte {
	if p == Windows {
		return '\\'
	}
	return '/'
}

// Detect returns the host platform.
func Detect() Platform {
	if runtime.GOOS == "windows" {
		return Windows
	}
	return Unix
}

// IsSeparator reports whether b is a path separator under p. Windows
// accepts both '/' and '\\'; Unix accepts only '/'.
func (p Platform) IsSeparator(b byte) bool {
	if p == Windows {
		return b == '/' || b == '\\'
	}
	return b == '/'
}

// Normalize rewrites every '\\' in s to '/' on Windows, where inputs may
// use either slash style. On Unix it returns s unchanged: Unix paths
// never treat '\\' as a separator (it is the escape character there
// instead).
func (p Platform) Normalize(s string) string {
	if p != Windows {
		return s
	}
	return strings.ReplaceAll(s, "\\", "/")
}

// CaseFold resolves the effective case-sensitivity for a compile given
// the CASE/IGNORECASE flags (mutually exclusive, CASE wins) and, absent
// either, the platform default (Windows folds, Unix does not).
func (p Platform) CaseFold(forceCase, forceIgnoreCase bool) bool {
	if forceCase {
		return false
	}
	if forceIgnoreCase {
		return true
	}
	return p == Windows
}

// DriveOrUNC recognizes a Windows drive letter ("C:") or UNC sharepoint
// ("//server/share") prefix at the start of s. Only the forward-slash
// UNC form is recognized; "\\server\share" is not reported as a prefix.
// Returns the prefix length and whether one was found. Always returns
// (0, false) on Unix: Unix paths have no drive concept.
func (p Platform) DriveOrUNC(s string) (prefixLen int, ok bool) {
	if p != Windows {
		return 0, false
	}
	if n, ok := driveLetter(s); ok {
		return n, true
	}
	if n, ok := uncShare(s); ok {
		return n, true
	}
	return 0, false
}

func driveLetter(s string) (int, bool) {
	if len(s) >= 2 && isASCIILetter(s[0]) && s[1] == ':' {
		return 2, true
	}
	return 0, false
}

func isASCIILetter(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

// uncShare recognizes "//server/share". s is taken as given (no
// separator normalization happens first), so only the '/' form is
// matched.
func uncShare(s string) (int, bool) {
	if len(s) < 2 || s[0] != '/' || s[1] != '/' {
		return 0, false
	}
	rest := s[2:]
	if rest == "" {
		return 0, false
	}
	// server
	serverEnd := strings.IndexByte(rest, '/')
	if serverEnd <= 0 {
		return 0, false
	}
	shareAndRest := rest[serverEnd+1:]
	if shareAndRest == "" {
		return 0, false
	}
	shareEnd := strings.IndexByte(shareAndRest, '/')
	if shareEnd == -1 {
		return 2 + serverEnd + 1 + len(shareAndRest), true
	}
	return 2 + serverEnd + 1 + shareEnd, true
}
