package ierrors

import (
	"fmt"
	"runtime"
	"strings"
)

// errorWithStacktrace attaches the stack of its origin to an error without changing its message.
type errorWithStacktrace struct {
	err        error
	stacktrace string
}

func (e *errorWithStacktrace) Error() string {
	return e.err.Error()
}

func (e *errorWithStacktrace) Unwrap() error {
	return e.err
}

// withStacktrace returns err annotated with the stack of the caller that is skip frames above withStacktrace.
func withStacktrace(err error, skip int) error {
	if err == nil {
		return nil
	}

	return &errorWithStacktrace{
		err:        err,
		stacktrace: stacktrace(skip + 1),
	}
}

func stacktrace(skip int) string {
	var programCounter [32]uintptr
	entries := runtime.Callers(skip+2, programCounter[:])
	frames := runtime.CallersFrames(programCounter[:entries])

	var stack strings.Builder
	for {
		frame, more := frames.Next()
		if (frame == runtime.Frame{}) {
			break
		}

		fmt.Fprintf(&stack, "%s\n\t%s:%d\n", frame.Function, frame.File, frame.Line)
		if !more {
			break
		}
	}

	return strings.TrimSuffix(stack.String(), "\n")
}
