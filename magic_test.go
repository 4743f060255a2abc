package globcore

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEscapeUnix(t *testing.T) {
	assert.Equal(t, `a\*b\?c`, Escape("a*b?c", true))
}

func TestEscapeWindowsKeepsDrivePrefix(t *testing.T) {
	out := Escape(`C:\Users\*`, false)
	assert.Equal(t, `C:\Users\\*`, out)
}

func TestEscapeWindowsSeparatorRoundTrips(t *testing.T) {
	path := `Program Files\App\data.txt`
	escaped := Escape(path, false)

	ok, err := Match(path, []string{escaped}, FORCEWIN, "", 0)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestIsMagicWildcards(t *testing.T) {
	assert.True(t, IsMagic("*.go", 0))
	assert.True(t, IsMagic("file?.go", 0))
	assert.True(t, IsMagic("[a-z].go", 0))
	assert.False(t, IsMagic("plain.go", 0))
}

func TestIsMagicBraceRequiresFlag(t *testing.T) {
	assert.False(t, IsMagic("{a,b}", 0))
	assert.True(t, IsMagic("{a,b}", BRACE))
}

func TestIsMagicExtglobRequiresFlag(t *testing.T) {
	assert.False(t, IsMagic("@(foo)", 0))
	assert.True(t, IsMagic("@(foo)", EXTGLOB))
}

func TestIsMagicEscapedStarIsNotMagic(t *testing.T) {
	assert.False(t, IsMagic(`\*`, 0))
}
