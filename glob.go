package globcore

import (
	"iter"

	"github.com/Crystalix007/globcore/internal/walk"
)

// Glob expands patterns into a reusable matcher and walks root,
// returning every matching path found on disk.
func Glob(patterns []string, flags Flags, root string, limit int) ([]string, error) {
	c, err := Compile(patterns, flags, limit)
	if err != nil {
		return nil, err
	}
	return walk.New().Glob(c.inner, root)
}

// GlobSeq is the lazy form of Glob, yielding matches one at a time. The
// returned Walker can be used to Kill the iteration from another
// goroutine, or to Reset it for reuse.
func GlobSeq(patterns []string, flags Flags, root string, limit int) (iter.Seq[string], *walk.Walker, error) {
	c, err := Compile(patterns, flags, limit)
	if err != nil {
		return nil, nil, err
	}
	w := walk.New()
	return w.GlobSeq(c.inner, root), w, nil
}
