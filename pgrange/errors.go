package pgrange

import (
	"github.com/iotaledger/pgrange/ierrors"
)

var (
	// ErrMalformedRangeText is returned when range text lacks its opening or closing delimiter.
	ErrMalformedRangeText = ierrors.New("malformed range text")
	// ErrInvalidRange is returned when the lower bound of a range is greater than its upper bound.
	ErrInvalidRange = ierrors.New("invalid range")
	// ErrMalformedRangeArray is returned when a range tuple does not have exactly four elements.
	ErrMalformedRangeArray = ierrors.New("malformed range array")
	// ErrParseBytesFailed is returned if information could not be parsed from a sequence of bytes.
	ErrParseBytesFailed = ierrors.New("failed to parse bytes")
)
