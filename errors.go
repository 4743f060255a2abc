package globcore

import "github.com/Crystalix007/globcore/internal/globerr"

// Error is a typed error raised during pattern compilation or
// translation. Use errors.As to recover one from an error chain.
type Error = globerr.Error

// ErrorKind classifies the pipeline stage that raised an Error.
type ErrorKind = globerr.Kind

const (
	ErrSyntax        = globerr.KindSyntax
	ErrLimit         = globerr.KindLimit
	ErrTypeMismatch  = globerr.KindTypeMismatch
	ErrArgument      = globerr.KindArgument
	ErrRegexCompile  = globerr.KindRegexCompile
)

// IsErrorKind reports whether err is an *Error of the given kind.
func IsErrorKind(err error, kind ErrorKind) bool {
	return globerr.IsKind(err, kind)
}
