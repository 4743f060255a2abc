package matcher

import (
	"fmt"
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"
)

// cacheSize bounds the process-wide compile cache.
const cacheSize = 256

// compileCache is the process-wide compiled-matcher cache, keyed by
// pattern fingerprint. golang-lru's Cache is safe for concurrent
// readers and serializes writers internally, so no additional lock is
// needed here.
var compileCache, _ = lru.New[string, *Compiled](cacheSize)

// fingerprint builds the (pattern-bytes, flag-bits, platform,
// case-policy) cache key. Pattern order is significant (it determines
// result order) so it is preserved rather than sorted.
func fingerprint(patterns []string, isBytes bool, opts Options) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%q|%t|%+v", patterns, isBytes, opts)
	return b.String()
}
