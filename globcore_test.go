package globcore

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompileMatchFilter(t *testing.T) {
	c, err := Compile([]string{"*.go"}, 0, 0)
	require.NoError(t, err)

	ok, err := c.Match("main.go", "")
	require.NoError(t, err)
	assert.True(t, ok)

	out, err := c.Filter([]string{"a.go", "a.txt"}, "")
	require.NoError(t, err)
	assert.Equal(t, []string{"a.go"}, out)
}

func TestOneShotMatchAndFilter(t *testing.T) {
	ok, err := Match("readme.md", []string{"*.md"}, 0, "", 0)
	require.NoError(t, err)
	assert.True(t, ok)

	out, err := Filter([]string{"a.md", "b.go"}, []string{"*.md"}, 0, "", 0)
	require.NoError(t, err)
	assert.Equal(t, []string{"a.md"}, out)
}

func TestFlagsNegateExcludesPattern(t *testing.T) {
	c, err := Compile([]string{"*.go", "!main.go"}, NEGATE, 0)
	require.NoError(t, err)

	ok, err := c.Match("helper.go", "")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = c.Match("main.go", "")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestFlagsBraceAndGlobstar(t *testing.T) {
	c, err := Compile([]string{"src/**/*.{go,md}"}, BRACE|GLOBSTAR, 0)
	require.NoError(t, err)

	ok, err := c.Match("src/pkg/a.go", "")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = c.Match("src/pkg/a.txt", "")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestCompileLimitExceededReturnsError(t *testing.T) {
	_, err := Compile([]string{"{a,b,c,d}"}, BRACE, 2)
	assert.Error(t, err)
}

func TestTranslateReturnsRegexSources(t *testing.T) {
	includes, excludes, err := Translate("*.go", 0, 0)
	require.NoError(t, err)
	assert.Len(t, includes, 1)
	assert.Empty(t, excludes)
}
