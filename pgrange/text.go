package pgrange

import (
	"math"
	"reflect"
	"strconv"
	"strings"

	"github.com/iotaledger/pgrange/constraints"
	"github.com/iotaledger/pgrange/ierrors"
)

// scanState is the position of the range text scanner relative to the structure of the text.
type scanState uint8

const (
	// scanStart waits for the opening delimiter.
	scanStart scanState = iota
	// scanLower collects the lower bound text up to the separating comma.
	scanLower
	// scanUpper collects the upper bound text up to the closing delimiter.
	scanUpper
	// scanDone ignores everything after the closing delimiter.
	scanDone
)

// isEmptyText returns true for the spellings of a range without any bound text.
//
// "" is accepted as well although it has no delimiters: a database hands out an empty string for a NULL range
// column, which is read as no range rather than as malformed text.
func isEmptyText(text string) bool {
	switch text {
	case "", "(,)", "[,)", "(,]", "[,]":
		return true
	default:
		return false
	}
}

// FromString parses database range text such as "[1,10)" or "(,5.5]".
//
// A nil text, an empty text and the four spellings "(,)", "[,)", "(,]" and "[,]" are not scanned: they yield nil if
// returnNilOnEmpty is set and an unbounded Range otherwise.
//
// It returns ErrMalformedRangeText if the opening or the closing delimiter is missing and ErrInvalidRange if the
// parsed lower bound is greater than the upper bound. Bound text is passed through convert as is, so an empty bound
// text is unbounded.
func FromString[T constraints.Numeric](convert BoundConverter[T], text *string, returnNilOnEmpty bool) (*Range[T], error) {
	if text == nil || isEmptyText(*text) {
		if returnNilOnEmpty {
			return nil, nil //nolint:nilnil // nil is the parsed value of an empty range text
		}

		return Unbounded(convert), nil
	}

	var lowerText, upperText strings.Builder
	var lowerDelimiter, upperDelimiter byte

	state := scanStart

	for i := 0; i < len(*text) && state != scanDone; i++ {
		char := (*text)[i]

		switch state {
		case scanStart:
			if char == '(' || char == '[' {
				lowerDelimiter = char
				state = scanLower
			}
		case scanLower:
			if char == ',' {
				state = scanUpper

				continue
			}

			lowerText.WriteByte(char)
		case scanUpper:
			if char == ')' || char == ']' {
				upperDelimiter = char
				state = scanDone

				continue
			}

			upperText.WriteByte(char)
		case scanDone:
		}
	}

	if lowerDelimiter == 0 || upperDelimiter == 0 {
		return nil, ierrors.Wrapf(ErrMalformedRangeText, "expected range text format, got %q", *text)
	}

	return New(convert, lowerText.String(), upperText.String(), WithInclusivity[T](lowerDelimiter == '[', upperDelimiter == ']'))
}

// Text renders the Range in database range notation, for example "[1,10)". An absent bound renders as an empty
// string between its delimiter and the comma.
//
// ok is false if the Range has neither a lower nor an upper bound, in which case there is nothing to render.
func (r *Range[T]) Text() (text string, ok bool) {
	if r.lowerBound == nil && r.upperBound == nil {
		return "", false
	}

	var builder strings.Builder
	if r.lowerInclusive {
		builder.WriteByte('[')
	} else {
		builder.WriteByte('(')
	}

	if r.lowerBound != nil {
		builder.WriteString(FormatBound(*r.lowerBound))
	}

	builder.WriteByte(',')

	if r.upperBound != nil {
		builder.WriteString(FormatBound(*r.upperBound))
	}

	if r.upperInclusive {
		builder.WriteByte(']')
	} else {
		builder.WriteByte(')')
	}

	return builder.String(), true
}

// String returns the range text of the Range, or an empty string if it has no bounds at all.
func (r *Range[T]) String() string {
	text, _ := r.Text()

	return text
}

// FormatBound renders a bound so that the matching BoundConverter reads back the same value. Integers use base 10.
// Floats use the shortest exact representation and always keep a decimal point or an exponent.
func FormatBound[T constraints.Numeric](bound T) string {
	value := reflect.ValueOf(bound)

	switch value.Kind() { //nolint:exhaustive // only numeric kinds can occur
	case reflect.Float32, reflect.Float64:
		return formatFloat(value.Float(), value.Type().Bits())
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(value.Int(), 10)
	default:
		return strconv.FormatUint(value.Uint(), 10)
	}
}

func formatFloat(value float64, bitSize int) string {
	switch {
	case math.IsInf(value, 1):
		return "Infinity"
	case math.IsInf(value, -1):
		return "-Infinity"
	case math.IsNaN(value):
		return "NaN"
	}

	text := strconv.FormatFloat(value, 'g', -1, bitSize)
	if !strings.ContainsAny(text, ".e") {
		text += ".0"
	}

	return text
}
