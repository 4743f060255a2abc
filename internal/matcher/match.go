package matcher

import (
	"strings"

	"github.com/Crystalix007/globcore/internal/platform"
)

// Match reports whether path is matched by c: at least one include
// pattern matches and no exclude pattern matches. When Opts.Realpath is
// set, path is additionally resolved against root and rejected outright
// if it does not exist.
func (c *Compiled) Match(path, root string) (bool, error) {
	if c.Opts.Realpath {
		full := joinRoot(root, path)
		if !platform.Exists(fsFor, full) {
			return false, nil
		}
	}

	cmp := normalizeForMatch(path, c.Opts)

	matched := false
	for _, inc := range c.Includes {
		ok, err := inc.Regex.MatchString(cmp)
		if err != nil {
			return false, err
		}
		if ok {
			matched = true
			break
		}
	}
	if !matched {
		return false, nil
	}

	// Exclude regexes use the ^(?!body).*$ wrapper, which matches the
	// paths the exclude pattern does not cover, so a failed match means
	// the path is excluded.
	for _, exc := range c.Excludes {
		ok, err := exc.Regex.MatchString(cmp)
		if err != nil {
			return false, err
		}
		if !ok {
			return false, nil
		}
	}
	return true, nil
}

// Filter narrows paths to those Match accepts, preserving input order.
func (c *Compiled) Filter(paths []string, root string) ([]string, error) {
	out := make([]string, 0, len(paths))
	for _, p := range paths {
		ok, err := c.Match(p, root)
		if err != nil {
			return nil, err
		}
		if ok {
			out = append(out, p)
		}
	}
	return out, nil
}

func normalizeForMatch(path string, opts Options) string {
	if opts.Platform == platform.Windows {
		return strings.ReplaceAll(path, "\\", "/")
	}
	return path
}

func joinRoot(root, path string) string {
	if root == "" {
		return path
	}
	if strings.HasPrefix(path, "/") {
		return path
	}
	return strings.TrimSuffix(root, "/") + "/" + path
}
