package main

import (
	"encoding/json"
	"fmt"
	"io"
	"math"

	"gopkg.in/yaml.v2"

	"github.com/iotaledger/pgrange/constraints"
	"github.com/iotaledger/pgrange/ierrors"
	"github.com/iotaledger/pgrange/pgrange"
	"github.com/iotaledger/pgrange/stringify"
)

const (
	rangeKindInt = "int"
	rangeKindNum = "num"

	outputFormatText    = "text"
	outputFormatJSON    = "json"
	outputFormatYAML    = "yaml"
	outputFormatInspect = "inspect"

	// unboundedText is printed for ranges without any bound, which have no range text of their own.
	unboundedText = "(,)"
)

// rangeOutput is the printable form of a parsed range. A nil *rangeOutput stands for a null range.
type rangeOutput struct {
	Text  string `json:"text" yaml:"text"`
	Array []any  `json:"array" yaml:"array"`

	name           string
	lowerBound     any
	upperBound     any
	lowerInclusive bool
	upperInclusive bool
}

func newRangeOutput[T constraints.Numeric](name string, r *pgrange.Range[T]) *rangeOutput {
	if r == nil {
		return nil
	}

	text, ok := r.Text()
	if !ok {
		text = unboundedText
	}

	output := &rangeOutput{
		Text:           text,
		Array:          printableArray[T](r.Array()),
		name:           name,
		lowerInclusive: r.IsLowerInclusive(),
		upperInclusive: r.IsUpperInclusive(),
	}
	if lower, exists := r.LowerBound(); exists {
		output.lowerBound = lower
	}
	if upper, exists := r.UpperBound(); exists {
		output.upperBound = upper
	}

	return output
}

// printableArray replaces infinite and NaN bounds by their range text spelling, which JSON cannot encode as numbers.
func printableArray[T constraints.Numeric](tuple []any) []any {
	for i := 0; i < len(tuple) && i < 2; i++ {
		if bound, isBound := tuple[i].(T); isBound && (math.IsInf(float64(bound), 0) || math.IsNaN(float64(bound))) {
			tuple[i] = pgrange.FormatBound(bound)
		}
	}

	return tuple
}

func (o *rangeOutput) inspect() string {
	if o == nil {
		return "nil"
	}

	return stringify.Struct(o.name,
		stringify.NewStructField("lowerBound", o.lowerBound),
		stringify.NewStructField("upperBound", o.upperBound),
		stringify.NewStructField("lowerInclusive", o.lowerInclusive),
		stringify.NewStructField("upperInclusive", o.upperInclusive),
		stringify.NewStructField("text", o.Text),
	)
}

// writeRange prints a range in the given output format.
func writeRange(out io.Writer, format string, output *rangeOutput) error {
	switch format {
	case outputFormatText:
		if output == nil {
			_, err := fmt.Fprintln(out, "null")

			return err
		}

		_, err := fmt.Fprintln(out, output.Text)

		return err

	case outputFormatJSON:
		data, err := json.Marshal(output)
		if err != nil {
			return ierrors.Wrap(err, "unable to encode range as JSON")
		}

		_, err = fmt.Fprintln(out, string(data))

		return err

	case outputFormatYAML:
		data, err := yaml.Marshal(output)
		if err != nil {
			return ierrors.Wrap(err, "unable to encode range as YAML")
		}

		_, err = fmt.Fprint(out, "---\n"+string(data))

		return err

	case outputFormatInspect:
		_, err := fmt.Fprintln(out, output.inspect())

		return err

	default:
		return ierrors.Wrapf(ErrUnknownOutputFormat, "%q", format)
	}
}

// parseRange parses range text with the converter of the given range kind.
func parseRange(kind string, text string, returnNilOnEmpty bool) (*rangeOutput, error) {
	switch kind {
	case rangeKindInt:
		r, err := pgrange.FromString[int64](pgrange.IntBound, &text, returnNilOnEmpty)
		if err != nil {
			return nil, err
		}

		return newRangeOutput("IntRange", r), nil

	case rangeKindNum:
		r, err := pgrange.FromString[float64](pgrange.NumBound, &text, returnNilOnEmpty)
		if err != nil {
			return nil, err
		}

		return newRangeOutput("NumRange", r), nil

	default:
		return nil, ierrors.Wrapf(ErrUnknownRangeKind, "%q", kind)
	}
}

// rangeFromArray builds a range of the given kind from its tuple representation.
func rangeFromArray(kind string, tuple []any) (*rangeOutput, error) {
	switch kind {
	case rangeKindInt:
		r, err := pgrange.IntRangeFromArray(tuple)
		if err != nil {
			return nil, err
		}

		return newRangeOutput("IntRange", r), nil

	case rangeKindNum:
		r, err := pgrange.NumRangeFromArray(tuple)
		if err != nil {
			return nil, err
		}

		return newRangeOutput("NumRange", r), nil

	default:
		return nil, ierrors.Wrapf(ErrUnknownRangeKind, "%q", kind)
	}
}

// rangeContains parses range text and checks whether the coerced value lies within it.
func rangeContains(kind string, text string, value string) (bool, error) {
	switch kind {
	case rangeKindInt:
		r, err := pgrange.ParseIntRange(text)
		if err != nil {
			return false, err
		}
		bound, exists := pgrange.IntBound(value)
		if !exists {
			return false, ErrMissingValue
		}

		return r.Contains(bound), nil

	case rangeKindNum:
		r, err := pgrange.ParseNumRange(text)
		if err != nil {
			return false, err
		}
		bound, exists := pgrange.NumBound(value)
		if !exists {
			return false, ErrMissingValue
		}

		return r.Contains(bound), nil

	default:
		return false, ierrors.Wrapf(ErrUnknownRangeKind, "%q", kind)
	}
}
