package expand

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDecodeRawCharsControlEscapes(t *testing.T) {
	assert.Equal(t, "a\tb\nc", decodeRawChars(`a\tb\nc`))
}

func TestDecodeRawCharsHex(t *testing.T) {
	assert.Equal(t, "A", decodeRawChars(`\x41`))
}

func TestDecodeRawCharsShortUnicodeEscape(t *testing.T) {
	assert.Equal(t, string(rune(0x20AC)), decodeRawChars(`\u20AC`))
}

func TestDecodeRawCharsLongUnicodeEscape(t *testing.T) {
	assert.Equal(t, string(rune(0x1F600)), decodeRawChars(`\U0001F600`))
}

func TestDecodeRawCharsNamed(t *testing.T) {
	assert.Equal(t, string(rune(0x2022)), decodeRawChars(`\N{BULLET}`))
}

func TestDecodeRawCharsUnknownEscapeLeftIntact(t *testing.T) {
	assert.Equal(t, `\q`, decodeRawChars(`\q`))
}

func TestDecodeRawCharsUnresolvableNameLeftIntact(t *testing.T) {
	in := `\N{NOT A REAL NAME}`
	assert.Equal(t, in, decodeRawChars(in))
}
