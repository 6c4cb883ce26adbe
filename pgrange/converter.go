package pgrange

import (
	"math"
	"reflect"
	"strconv"
	"strings"

	"github.com/spf13/cast"

	"github.com/iotaledger/pgrange/constraints"
)

// BoundConverter turns a raw bound into a value of the range's scalar domain. It reports exists == false if the raw
// bound denotes "no bound".
//
// A BoundConverter never fails: input that does not look like a number is coerced rather than rejected, and the only
// validation of a range happens once both of its bounds are known.
type BoundConverter[T constraints.Numeric] func(raw any) (bound T, exists bool)

// IntBound is the BoundConverter of IntRange.
//
// nil, "" and empty byte slices are unbounded. Text is coerced the way a permissive numeric cast would do it: the
// longest leading number is used and truncated towards zero ("12abc" is 12, "1.9" is 1, "abc" is 0). Values outside of
// the int64 domain saturate. Non textual scalars are converted with cast.ToInt64.
func IntBound(raw any) (bound int64, exists bool) {
	raw, exists = unwrapRaw(raw)
	if !exists {
		return 0, false
	}

	text, isText := raw.(string)
	if !isText {
		if float, isFloat := raw.(float64); isFloat {
			return truncate(float), true
		}

		return cast.ToInt64(raw), true
	}

	prefix := numericPrefix(text)
	if prefix == "" {
		return 0, true
	}

	if !strings.ContainsAny(prefix, ".eE") {
		// ParseInt saturates to the int64 limits on overflow, which is exactly what we want.
		value, _ := strconv.ParseInt(prefix, 10, 64)

		return value, true
	}

	float, _ := strconv.ParseFloat(prefix, 64)

	return truncate(float), true
}

// NumBound is the BoundConverter of NumRange.
//
// It follows the same rules as IntBound but keeps the fractional part. The spellings "Infinity", "-Infinity" and
// "NaN" (case-insensitive) are understood so that every float64 survives a round trip through range text.
// Non textual scalars are converted with cast.ToFloat64.
func NumBound(raw any) (bound float64, exists bool) {
	raw, exists = unwrapRaw(raw)
	if !exists {
		return 0, false
	}

	text, isText := raw.(string)
	if !isText {
		return cast.ToFloat64(raw), true
	}

	if special, isSpecial := specialFloat(text); isSpecial {
		return special, true
	}

	prefix := numericPrefix(text)
	if prefix == "" {
		return 0, true
	}

	// ParseFloat returns ±Inf or 0 together with an ErrRange on overflow or underflow.
	value, _ := strconv.ParseFloat(prefix, 64)

	return value, true
}

// DefaultBound returns the BoundConverter that is used for T when no converter was provided: NumBound for floating
// point domains and IntBound for integer domains.
func DefaultBound[T constraints.Numeric]() BoundConverter[T] {
	var zero T
	switch reflect.ValueOf(zero).Kind() { //nolint:exhaustive // only numeric kinds can occur
	case reflect.Float32, reflect.Float64:
		return func(raw any) (T, bool) {
			bound, exists := NumBound(raw)

			return T(bound), exists
		}
	default:
		return func(raw any) (T, bool) {
			bound, exists := IntBound(raw)

			return T(bound), exists
		}
	}
}

// unwrapRaw normalizes the representations of "no bound" and dereferences pointers and byte slices.
func unwrapRaw(raw any) (any, bool) {
	switch value := raw.(type) {
	case nil:
		return nil, false
	case string:
		if value == "" {
			return nil, false
		}

		return unquote(value), true
	case []byte:
		if len(value) == 0 {
			return nil, false
		}

		return unquote(string(value)), true
	}

	if reflected := reflect.ValueOf(raw); reflected.Kind() == reflect.Pointer {
		if reflected.IsNil() {
			return nil, false
		}

		return unwrapRaw(reflected.Elem().Interface())
	}

	return raw, true
}

// unquote strips surrounding whitespace and one pair of double quotes, which databases may emit around bound text.
func unquote(text string) string {
	text = strings.TrimSpace(text)
	if len(text) >= 2 && text[0] == '"' && text[len(text)-1] == '"' {
		return strings.TrimSpace(text[1 : len(text)-1])
	}

	return text
}

// numericPrefix returns the longest prefix of text that forms a decimal number
// ([+-]?(digits[.digits]|.digits)([eE][+-]?digits)?). It returns an empty string if text does not start with one.
func numericPrefix(text string) string {
	pos := 0
	if pos < len(text) && (text[pos] == '+' || text[pos] == '-') {
		pos++
	}

	integerDigits := countDigits(text[pos:])
	pos += integerDigits

	fractionDigits := 0
	if pos < len(text) && text[pos] == '.' {
		fractionDigits = countDigits(text[pos+1:])
		if integerDigits > 0 || fractionDigits > 0 {
			pos += 1 + fractionDigits
		}
	}

	if integerDigits == 0 && fractionDigits == 0 {
		return ""
	}

	if pos < len(text) && (text[pos] == 'e' || text[pos] == 'E') {
		exponent := pos + 1
		if exponent < len(text) && (text[exponent] == '+' || text[exponent] == '-') {
			exponent++
		}

		if exponentDigits := countDigits(text[exponent:]); exponentDigits > 0 {
			pos = exponent + exponentDigits
		}
	}

	return text[:pos]
}

func countDigits(text string) int {
	count := 0
	for count < len(text) && text[count] >= '0' && text[count] <= '9' {
		count++
	}

	return count
}

func specialFloat(text string) (float64, bool) {
	switch strings.ToLower(text) {
	case "infinity", "+infinity", "inf", "+inf":
		return math.Inf(1), true
	case "-infinity", "-inf":
		return math.Inf(-1), true
	case "nan":
		return math.NaN(), true
	default:
		return 0, false
	}
}

// truncate converts a float64 to int64 by dropping its fraction, saturating at the int64 limits. NaN becomes 0.
func truncate(value float64) int64 {
	switch {
	case math.IsNaN(value):
		return 0
	case value >= math.MaxInt64:
		return math.MaxInt64
	case value <= math.MinInt64:
		return math.MinInt64
	default:
		return int64(value)
	}
}
