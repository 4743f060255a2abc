package translate

import (
	"testing"

	"github.com/Crystalix007/globcore/internal/ast"
)

func TestTranslateSequenceRange(t *testing.T) {
	source := translateOf(t, "[a-c]", ast.Options{}, Options{})
	for _, ch := range []string{"a", "b", "c"} {
		if !mustMatch(t, source, ch) {
			t.Errorf("expected %q to match %q", ch, source)
		}
	}
	if mustMatch(t, source, "d") {
		t.Errorf("expected %q not to match %q", "d", source)
	}
}

func TestTranslateSequenceNegated(t *testing.T) {
	source := translateOf(t, "[!a-c]", ast.Options{}, Options{})
	if mustMatch(t, source, "a") {
		t.Errorf("negated class should reject %q", "a")
	}
	if !mustMatch(t, source, "z") {
		t.Errorf("negated class should accept %q", "z")
	}
	if mustMatch(t, source, "/") {
		t.Errorf("negated class must never span a separator")
	}
}

func TestTranslateSequencePosixClass(t *testing.T) {
	source := translateOf(t, "[[:digit:]]", ast.Options{}, Options{})
	if !mustMatch(t, source, "5") {
		t.Errorf("digit class should accept %q", "5")
	}
	if mustMatch(t, source, "x") {
		t.Errorf("digit class should reject %q", "x")
	}
}

func TestTranslateSequenceUnknownPosixClassErrors(t *testing.T) {
	nodes, err := ast.Parse("[[:bogus:]]", ast.Options{})
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if _, err := Translate(nodes, Options{}); err == nil {
		t.Fatal("expected an error translating an unknown POSIX class")
	}
}

func TestTranslateSequenceLiteralHyphenEscaped(t *testing.T) {
	source := translateOf(t, `[a\-c]`, ast.Options{}, Options{})
	if !mustMatch(t, source, "a") {
		t.Errorf("expected %q to match %q", "a", source)
	}
	if !mustMatch(t, source, "-") {
		t.Errorf("expected literal hyphen to match %q", source)
	}
	if mustMatch(t, source, "b") {
		t.Errorf("expected %q not to match a literal a/-/c set", "b")
	}
}
