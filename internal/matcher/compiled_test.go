package matcher

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Crystalix007/globcore/internal/expand"
)

func rawsOf(texts ...string) []expand.Raw {
	out := make([]expand.Raw, 0, len(texts))
	for _, t := range texts {
		out = append(out, expand.Raw{Text: t})
	}
	return out
}

func TestCompileAndMatchBasic(t *testing.T) {
	c, err := Compile(rawsOf("*.go"), Options{}, 0)
	require.NoError(t, err)

	ok, err := c.Match("main.go", "")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = c.Match("main.txt", "")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestCompileCacheReturnsEquivalentMatcher(t *testing.T) {
	a, err := Compile(rawsOf("*.go"), Options{}, 0)
	require.NoError(t, err)
	b, err := Compile(rawsOf("*.go"), Options{}, 0)
	require.NoError(t, err)

	ok, err := b.Match("main.go", "")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, len(a.Includes), len(b.Includes))
}

func TestCompileExcludePattern(t *testing.T) {
	c, err := Compile(rawsOf("*.go", "!main.go"), Options{Negate: true}, 0)
	require.NoError(t, err)

	ok, err := c.Match("helper.go", "")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = c.Match("main.go", "")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestCompileNegateAllImplicitInclude(t *testing.T) {
	c, err := Compile(rawsOf("!*.log"), Options{Negate: true, NegateAll: true}, 0)
	require.NoError(t, err)

	ok, err := c.Match("main.go", "")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = c.Match("debug.log", "")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestFilterPreservesOrderAndDropsNonMatches(t *testing.T) {
	c, err := Compile(rawsOf("*.go"), Options{}, 0)
	require.NoError(t, err)

	out, err := c.Filter([]string{"a.go", "a.txt", "b.go"}, "")
	require.NoError(t, err)
	assert.Equal(t, []string{"a.go", "b.go"}, out)
}

func TestCompilePatternCountAndWalkHints(t *testing.T) {
	c, err := Compile(rawsOf("src/**/*.go"), Options{Globstar: true}, 0)
	require.NoError(t, err)
	require.Equal(t, 1, c.PatternCount())

	root, hasGlobstar, globstarLong := c.IncludeWalkHints(0)
	assert.Equal(t, "src", root)
	assert.True(t, hasGlobstar)
	assert.False(t, globstarLong)
}

func TestCompileLimitExceededReturnsError(t *testing.T) {
	_, err := Compile(rawsOf("{a,b,c,d}"), Options{Brace: true}, 2)
	assert.Error(t, err)
}
