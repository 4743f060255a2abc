// Package walk evaluates a compiled matcher against a real directory
// tree, the way suggest-file's walker package walks a tree and filters
// entries, generalized here to follow the compiled regex set instead of
// a fixed regular-file predicate.
package walk

import (
	"io/fs"
	"iter"
	"path"
	"strings"
	"sync/atomic"

	"github.com/Crystalix007/globcore/internal/matcher"
	"github.com/Crystalix007/globcore/internal/platform"
)

// Walker drives one or more glob evaluations against a filesystem,
// exposing cooperative kill/reset/is_aborted controls so a caller
// driving GlobSeq can stop mid-iteration.
type Walker struct {
	fs      platform.FS
	aborted atomic.Bool
	onError func(dir, name string, err error)
}

// New builds a Walker backed by the real OS filesystem.
func New() *Walker {
	return &Walker{fs: platform.OS{}}
}

// WithFS swaps in a fake filesystem, for tests.
func (w *Walker) WithFS(fs platform.FS) *Walker {
	w.fs = fs
	return w
}

// OnError installs a hook invoked when readdir/stat fails for a
// directory; the walk continues past the failing directory regardless
// of what the hook does.
func (w *Walker) OnError(fn func(dir, name string, err error)) *Walker {
	w.onError = fn
	return w
}

// Kill requests that any in-flight GlobSeq iteration stop at its next
// entry yield.
func (w *Walker) Kill() { w.aborted.Store(true) }

// Reset clears a prior Kill, allowing the Walker to be reused.
func (w *Walker) Reset() { w.aborted.Store(false) }

// IsAborted reports whether Kill has been called since the last Reset.
func (w *Walker) IsAborted() bool { return w.aborted.Load() }

// Glob evaluates c against root and returns every matching path,
// relative to root, in breadth-preserving, deduplicated order.
func (w *Walker) Glob(c *matcher.Compiled, root string) ([]string, error) {
	var out []string
	for p := range w.GlobSeq(c, root) {
		out = append(out, p)
	}
	return out, nil
}

// GlobSeq evaluates c against root lazily. Iteration stops early if the
// consumer breaks out of the range loop, or if Kill is called from
// another goroutine.
func (w *Walker) GlobSeq(c *matcher.Compiled, root string) iter.Seq[string] {
	return func(yield func(string) bool) {
		seen := make(map[string]bool)
		caseFold := c.Opts.Platform == platform.Windows

		for i := 0; i < c.PatternCount(); i++ {
			if w.IsAborted() {
				return
			}
			literalRoot, hasGlobstar, globstarLong := c.IncludeWalkHints(i)
			start := literalRoot
			if start == "" {
				start = "."
			}

			for candidate := range w.walkOne(root, start, hasGlobstar, globstarLong, c.Opts) {
				if w.IsAborted() {
					return
				}
				key := candidate
				if caseFold {
					key = strings.ToLower(key)
				}
				if !c.Opts.NoUnique {
					if seen[key] {
						continue
					}
					seen[key] = true
				}

				ok, err := c.Match(candidate, root)
				if err != nil || !ok {
					continue
				}

				result := w.decorate(root, candidate, c.Opts)
				if c.Opts.NoDir {
					if isDir, statErr := w.statIsDir(root, candidate); statErr == nil && isDir {
						continue
					}
				}
				if !yield(result) {
					return
				}
			}
		}
	}
}

// decorate applies MARK (trailing separator on directories).
func (w *Walker) decorate(root, rel string, opts matcher.Options) string {
	if !opts.Mark {
		return rel
	}
	if isDir, err := w.statIsDir(root, rel); err == nil && isDir {
		return rel + "/"
	}
	return rel
}

func (w *Walker) statIsDir(root, rel string) (bool, error) {
	full := joinRel(root, rel)
	info, err := w.fs.Stat(full)
	if err != nil {
		return false, err
	}
	return info.IsDir(), nil
}

// walkOne enumerates every candidate relative path under root/start,
// breadth-first, honoring symlink-traversal policy for directories
// reached past a globstar segment.
func (w *Walker) walkOne(root, start string, hasGlobstar, globstarLong bool, opts matcher.Options) iter.Seq[string] {
	return func(yield func(string) bool) {
		full := joinRel(root, start)
		if !platform.Exists(w.fs, full) {
			return
		}

		visited := make(map[platform.NodeKey]bool)
		type queueEntry struct{ rel string }
		queue := []queueEntry{{rel: start}}

		for len(queue) > 0 {
			if w.IsAborted() {
				return
			}
			cur := queue[0]
			queue = queue[1:]

			curFull := joinRel(root, cur.rel)
			info, err := w.fs.Stat(curFull)
			if err != nil {
				if w.onError != nil {
					w.onError(path.Dir(curFull), path.Base(curFull), err)
				}
				continue
			}
			if !info.IsDir() {
				if !yield(cur.rel) {
					return
				}
				continue
			}

			if !yield(cur.rel) {
				return
			}

			if opts.ScanDotDir {
				if !yield(joinPattern(cur.rel, ".")) {
					return
				}
				if !yield(joinPattern(cur.rel, "..")) {
					return
				}
			}

			if key, ok := platform.NodeKeyOf(info); ok {
				if visited[key] {
					continue
				}
				visited[key] = true
			}

			entries, err := w.fs.ReadDir(curFull)
			if err != nil {
				if w.onError != nil {
					w.onError(curFull, "", err)
				}
				continue
			}

			for _, e := range entries {
				childRel := joinPattern(cur.rel, e.Name())
				childFull := joinRel(root, childRel)

				if e.Type()&fs.ModeSymlink != 0 {
					// Symlink directories are only off-limits to traversal
					// when a globstar is doing the traversing; a plain
					// wildcard segment follows symlinks the way a shell
					// glob normally does.
					follow := !hasGlobstar || globstarLong || opts.Follow
					if !follow {
						if !yield(childRel) {
							return
						}
						continue
					}
					if !platform.Exists(w.fs, childFull) {
						continue
					}
				}
				queue = append(queue, queueEntry{rel: childRel})
			}
		}
	}
}

func joinRel(root, rel string) string {
	if rel == "." || rel == "" {
		if root == "" {
			return "."
		}
		return root
	}
	if root == "" || root == "." {
		return rel
	}
	return strings.TrimSuffix(root, "/") + "/" + rel
}

func joinPattern(parent, name string) string {
	if parent == "." || parent == "" {
		return name
	}
	return parent + "/" + name
}

