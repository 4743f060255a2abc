package globerr

import (
	"errors"
	"testing"
)

func TestErrorMessageIncludesPatternWhenPresent(t *testing.T) {
	err := New(KindSyntax, "a[b", "unterminated sequence")
	if got := err.Error(); got == "" {
		t.Fatal("expected a non-empty message")
	}
	if err.Pattern != "a[b" {
		t.Fatalf("expected pattern %q, got %q", "a[b", err.Pattern)
	}
}

func TestWrapNilReturnsNil(t *testing.T) {
	if Wrap(KindLimit, "x", nil) != nil {
		t.Fatal("Wrap(nil) must return nil")
	}
}

func TestIsKindMatchesWrappedKind(t *testing.T) {
	wrapped := Wrap(KindRegexCompile, "*.go", errors.New("boom"))
	if !IsKind(wrapped, KindRegexCompile) {
		t.Fatal("expected IsKind to match the wrapped kind")
	}
	if IsKind(wrapped, KindSyntax) {
		t.Fatal("expected IsKind to reject a mismatched kind")
	}
}

func TestIsKindFalseForPlainError(t *testing.T) {
	if IsKind(errors.New("plain"), KindSyntax) {
		t.Fatal("expected IsKind to return false for a non-*Error")
	}
}
