package platform

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCaseFoldPriority(t *testing.T) {
	assert.False(t, Unix.CaseFold(true, true), "CASE must win over IGNORECASE")
	assert.True(t, Unix.CaseFold(false, true))
	assert.False(t, Unix.CaseFold(false, false), "unix defaults to case-sensitive")
	assert.True(t, Windows.CaseFold(false, false), "windows defaults to case-insensitive")
}

func TestIsSeparator(t *testing.T) {
	assert.True(t, Unix.IsSeparator('/'))
	assert.False(t, Unix.IsSeparator('\\'))
	assert.True(t, Windows.IsSeparator('/'))
	assert.True(t, Windows.IsSeparator('\\'))
}

func TestNormalizeOnlyRewritesOnWindows(t *testing.T) {
	assert.Equal(t, `a\b`, Unix.Normalize(`a\b`))
	assert.Equal(t, "a/b", Windows.Normalize(`a\b`))
}

func TestDriveOrUNCDriveLetter(t *testing.T) {
	n, ok := Windows.DriveOrUNC(`C:\Users`)
	require.True(t, ok)
	assert.Equal(t, 2, n)

	_, ok = Unix.DriveOrUNC(`C:\Users`)
	assert.False(t, ok, "unix never recognizes a drive prefix")
}

func TestDriveOrUNCShare(t *testing.T) {
	n, ok := Windows.DriveOrUNC("//server/share/sub")
	require.True(t, ok)
	assert.Equal(t, len("//server/share"), n)
}

func TestDriveOrUNCNoMatch(t *testing.T) {
	_, ok := Windows.DriveOrUNC("relative/path")
	assert.False(t, ok)
}

func TestExpandTildePassesThroughNonTilde(t *testing.T) {
	out, matched, err := ExpandTilde("relative/path")
	require.NoError(t, err)
	assert.False(t, matched)
	assert.Equal(t, "relative/path", out)
}

func TestExpandTildeBareExpandsHome(t *testing.T) {
	t.Setenv("HOME", "/home/tester")
	out, matched, err := ExpandTilde("~/projects")
	require.NoError(t, err)
	assert.True(t, matched)
	assert.Equal(t, "/home/tester/projects", out)
}
