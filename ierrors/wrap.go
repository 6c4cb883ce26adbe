package ierrors

import (
	"fmt"
)

// Wrap annotates an error with a message.
// The cause stays first in the rendered text ("<cause>: <message>").
func Wrap(err error, message string) error {
	return withStacktrace(fmt.Errorf("%w: %s", err, message), 1)
}

// Wrapf annotates an error with a message format specifier and arguments.
func Wrapf(err error, format string, args ...any) error {
	return withStacktrace(fmt.Errorf("%w: %s", err, fmt.Sprintf(format, args...)), 1)
}
