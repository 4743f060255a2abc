// Package globerr defines the error kinds raised by the pattern
// compilation and matching pipeline.
package globerr

import (
	"fmt"

	"github.com/pkg/errors"
)

// Kind classifies the stage of the pipeline that raised an Error.
type Kind int

const (
	// KindSyntax covers malformed extended-group headers, non-ASCII POSIX
	// class names, and other pattern-syntax problems caught by the lexer.
	KindSyntax Kind = iota
	// KindLimit is raised when brace/split expansion would exceed the
	// caller's pattern limit.
	KindLimit
	// KindTypeMismatch is raised when a batch mixes string and []byte
	// patterns.
	KindTypeMismatch
	// KindArgument covers mutually-exclusive or otherwise invalid flag
	// combinations that the design resolves by priority rather than by
	// failing outright; it is reserved for combinations with no defined
	// priority (none currently reachable, kept for completeness).
	KindArgument
	// KindRegexCompile marks a translator output the regex engine
	// rejected — a programmer error, surfaced synchronously.
	KindRegexCompile
)

func (k Kind) String() string {
	switch k {
	case KindSyntax:
		return "pattern-syntax"
	case KindLimit:
		return "pattern-limit"
	case KindTypeMismatch:
		return "type-mismatch"
	case KindArgument:
		return "argument"
	case KindRegexCompile:
		return "regex-compilation"
	default:
		return "unknown"
	}
}

// Error is the typed error returned by pattern compilation. It wraps an
// underlying cause with github.com/pkg/errors so callers that want a
// stack trace can print one with "%+v".
type Error struct {
	Kind    Kind
	Pattern string
	cause   error
}

func (e *Error) Error() string {
	if e.Pattern != "" {
		return fmt.Sprintf("%s: %q: %v", e.Kind, e.Pattern, e.cause)
	}
	return fmt.Sprintf("%s: %v", e.Kind, e.cause)
}

func (e *Error) Unwrap() error { return e.cause }

// New builds a *Error of the given kind, attaching a stack trace to the
// formatted message via github.com/pkg/errors.
func New(kind Kind, pattern, format string, args ...any) *Error {
	return &Error{
		Kind:    kind,
		Pattern: pattern,
		cause:   errors.Errorf(format, args...),
	}
}

// Wrap attaches kind/pattern context to an existing error.
func Wrap(kind Kind, pattern string, err error) *Error {
	if err == nil {
		return nil
	}
	return &Error{Kind: kind, Pattern: pattern, cause: errors.WithStack(err)}
}

// IsKind reports whether err is a *Error of the given kind. Kind
// comparisons need errors.As rather than errors.Is; IsKind is the
// ergonomic helper for that.
func IsKind(err error, kind Kind) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}
