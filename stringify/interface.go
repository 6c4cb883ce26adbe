package stringify

import (
	"fmt"
	"reflect"
	"strconv"
)

// Interface renders an arbitrary value. Nested slices and multi-line values are indented.
func Interface(value any) string {
	switch typedValue := value.(type) {
	case nil:
		return "nil"
	case bool:
		return strconv.FormatBool(typedValue)
	case string:
		return strconv.Quote(typedValue)
	case int:
		return strconv.Itoa(typedValue)
	case int64:
		return strconv.FormatInt(typedValue, 10)
	case uint64:
		return strconv.FormatUint(typedValue, 10)
	case float64:
		return Float64(typedValue)
	case float32:
		return Float32(typedValue)
	case fmt.Stringer:
		return typedValue.String()
	}

	if reflected := reflect.ValueOf(value); reflected.Kind() == reflect.Slice || reflected.Kind() == reflect.Array {
		return sliceReflect(reflected)
	}

	return fmt.Sprint(value)
}
