package expand

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpandBracesNumericRange(t *testing.T) {
	budget := 100
	out, err := expandBraces("img{1..3}.png", &budget)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"img1.png", "img2.png", "img3.png"}, out)
}

func TestExpandBracesZeroPaddedRange(t *testing.T) {
	budget := 100
	out, err := expandBraces("f{01..03}", &budget)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"f01", "f02", "f03"}, out)
}

func TestExpandBracesSteppedRange(t *testing.T) {
	budget := 100
	out, err := expandBraces("{0..10..5}", &budget)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"0", "5", "10"}, out)
}

func TestExpandBracesAlphaRange(t *testing.T) {
	budget := 100
	out, err := expandBraces("{a..d}", &budget)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"a", "b", "c", "d"}, out)
}

func TestExpandBracesNested(t *testing.T) {
	budget := 100
	out, err := expandBraces("{a,b{1,2}}", &budget)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"a", "b1", "b2"}, out)
}

func TestExpandBracesDescendingRange(t *testing.T) {
	budget := 100
	out, err := expandBraces("{3..1}", &budget)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"3", "2", "1"}, out)
}
