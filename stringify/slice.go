package stringify

import (
	"reflect"
	"strings"

	"github.com/kr/text"
)

// Slice renders a list of values.
func Slice(value []any) string {
	return sliceReflect(reflect.ValueOf(value))
}

func sliceReflect(value reflect.Value) string {
	items := make([]string, value.Len())
	multiLine := false
	for i := range items {
		items[i] = Interface(value.Index(i).Interface())
		multiLine = multiLine || strings.Contains(items[i], "\n")
	}

	if !multiLine {
		return "[" + strings.Join(items, ", ") + "]"
	}

	var builder strings.Builder
	builder.WriteString("[\n")
	for _, item := range items {
		builder.WriteString(text.Indent(item+",\n", strings.Repeat(" ", IndentationSize)))
	}
	builder.WriteString("]")

	return builder.String()
}
