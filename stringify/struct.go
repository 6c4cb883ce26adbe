// Package stringify renders values as indented, human readable text for debugging output.
package stringify

import (
	"strings"

	"github.com/kr/text"
)

// IndentationSize is the number of spaces nested values are indented by.
const IndentationSize = 4

// Struct renders a named block with one line per field.
func Struct(name string, fields ...*StructField) string {
	var builder strings.Builder
	builder.WriteString(name + " {\n")

	for _, field := range fields {
		builder.WriteString(text.Indent(field.String()+"\n", strings.Repeat(" ", IndentationSize)))
	}

	builder.WriteString("}")

	return builder.String()
}
