package platform

import (
	"io/fs"
	"os"
)

// FS is the filesystem capability the walker needs: directory listing
// plus following/non-following stat. Separating it from direct
// os.* calls lets the walker be driven by a fake in tests, the way
// avfs's BasicVFS/SymLinker interfaces separate a virtual filesystem's
// capabilities from any one backing implementation.
type FS interface {
	ReadDir(name string) ([]fs.DirEntry, error)
	Stat(name string) (fs.FileInfo, error)
	Lstat(name string) (fs.FileInfo, error)
}

// OS is the default FS backed directly by the os package.
type OS struct{}

func (OS) ReadDir(name string) ([]fs.DirEntry, error) { return os.ReadDir(name) }
func (OS) Stat(name string) (fs.FileInfo, error)      { return os.Stat(name) }
func (OS) Lstat(name string) (fs.FileInfo, error)     { return os.Lstat(name) }

// Exists reports whether name exists (following symlinks), swallowing
// the error so a missing root degrades to "no matches" rather than an
// error bubbling out of a walk.
func Exists(f FS, name string) bool {
	_, err := f.Stat(name)
	return err == nil
}

// IsDir reports whether name exists and is a directory (following
// symlinks).
func IsDir(f FS, name string) bool {
	info, err := f.Stat(name)
	return err == nil && info.IsDir()
}

// IsSymlink reports whether name is itself a symlink (not following).
func IsSymlink(f FS, name string) (bool, error) {
	info, err := f.Lstat(name)
	if err != nil {
		return false, err
	}
	return info.Mode()&fs.ModeSymlink != 0, nil
}

// FSPath accepts a string, []byte, or fmt.Stringer-like path carrier
// and returns its string form. Patterns and walk results in this
// engine are always string or []byte, but callers embedding a
// language-provided path-like object benefit from the Stringer
// fallback too.
func FSPath(v any) (string, bool) {
	switch t := v.(type) {
	case string:
		return t, true
	case []byte:
		return string(t), true
	case fspathStringer:
		return t.String(), true
	default:
		return "", false
	}
}

type fspathStringer interface {
	String() string
}
