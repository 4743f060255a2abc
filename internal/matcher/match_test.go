package matcher

import (
	"io/fs"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeFileInfo struct {
	name  string
	isDir bool
}

func (f fakeFileInfo) Name() string       { return f.name }
func (f fakeFileInfo) Size() int64        { return 0 }
func (f fakeFileInfo) Mode() fs.FileMode  { return 0 }
func (f fakeFileInfo) ModTime() time.Time { return time.Time{} }
func (f fakeFileInfo) IsDir() bool        { return f.isDir }
func (f fakeFileInfo) Sys() any           { return nil }

type fakeFS struct {
	existing map[string]bool
}

func (f fakeFS) ReadDir(name string) ([]fs.DirEntry, error) { return nil, nil }

func (f fakeFS) Stat(name string) (fs.FileInfo, error) {
	if f.existing[name] {
		return fakeFileInfo{name: name}, nil
	}
	return nil, fs.ErrNotExist
}

func (f fakeFS) Lstat(name string) (fs.FileInfo, error) { return f.Stat(name) }

func TestMatchRealpathRequiresExistence(t *testing.T) {
	prev := fsFor
	defer func() { fsFor = prev }()
	fsFor = fakeFS{existing: map[string]bool{"root/a.go": true}}

	c, err := Compile(rawsOf("*.go"), Options{Realpath: true}, 0)
	require.NoError(t, err)

	ok, err := c.Match("a.go", "root")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = c.Match("b.go", "root")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestMatchCaseFoldIgnoresCase(t *testing.T) {
	c, err := Compile(rawsOf("*.GO"), Options{CaseFold: true}, 0)
	require.NoError(t, err)

	ok, err := c.Match("main.go", "")
	require.NoError(t, err)
	assert.True(t, ok)
}
