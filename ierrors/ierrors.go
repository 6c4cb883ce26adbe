// Package ierrors provides the error helpers used throughout the module.
//
// Leaf errors are created with github.com/cockroachdb/errors. Every error that
// is created or wrapped here carries the stack of its origin, while its message,
// Is, As and Unwrap stay those of the plain error tree.
//
//nolint:goerr113
package ierrors

import (
	stderrors "errors"
	"fmt"

	"github.com/cockroachdb/errors"
)

// New returns an error that formats as the given text and records the caller's stack.
// Each call to New returns a distinct error value even if the text is identical.
func New(text string) error {
	return errors.NewWithDepth(1, text)
}

// Errorf formats according to a format specifier and returns the string as a
// value that satisfies error.
//
// If the format specifier includes a %w verb with an error operand,
// the returned error will implement an Unwrap method returning the operand.
func Errorf(format string, args ...any) error {
	return withStacktrace(fmt.Errorf(format, args...), 1)
}

// Unwrap returns the result of calling the Unwrap method on err, if err's
// type contains an Unwrap method returning error.
// Otherwise, Unwrap returns nil.
func Unwrap(err error) error {
	return stderrors.Unwrap(err)
}

// Is reports whether any error in err's tree matches target.
func Is(err, target error) bool {
	return stderrors.Is(err, target)
}

// As finds the first error in err's tree that matches target, and if one is found, sets
// target to that error value and returns true. Otherwise, it returns false.
//
// As panics if target is not a non-nil pointer to either a type that implements
// error, or to any interface type.
func As(err error, target any) bool {
	return stderrors.As(err, target)
}

// Join returns an error that wraps the given errors.
// Any nil error values are discarded.
// Join returns nil if errs contains no non-nil values.
func Join(errs ...error) error {
	return withStacktrace(stderrors.Join(errs...), 1)
}

// WithStack annotates err with the stack of the caller.
// WithStack returns nil if err is nil.
func WithStack(err error) error {
	return withStacktrace(err, 1)
}

// StackTrace returns the stack that is attached to err in a printable form.
// It returns an empty string if err carries no stack.
func StackTrace(err error) string {
	if err == nil {
		return ""
	}

	var withStack *errorWithStacktrace
	if stderrors.As(err, &withStack) {
		return withStack.stacktrace
	}

	if errors.GetReportableStackTrace(err) == nil {
		return ""
	}

	return fmt.Sprintf("%+v", err)
}
