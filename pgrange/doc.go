// Package pgrange models intervals over a numeric scalar domain and converts them to and from the textual notation
// that relational databases use for their native range types.
//
// The accepted text format is
//
//	range      := emptytext | bounded
//	emptytext  := "(,)" | "[,)" | "(,]" | "[,]"
//	bounded    := lowerdelim boundtext "," boundtext upperdelim
//	lowerdelim := "(" | "["
//	upperdelim := ")" | "]"
//
// where "[" and "]" mark an inclusive ("closed") bound, "(" and ")" an exclusive ("open") one and an empty boundtext
// leaves that side unbounded:
//
//	[1,10)      {x | 1 <= x < 10}
//	(,5.5]      {x | x <= 5.5}
//	(,)         {x}
//
// The scanner splits on the first comma it finds, so bound text that itself contains a comma is split at the wrong
// place. Numeric bounds never need one, which is why this is accepted rather than handled.
//
// Range is generic over its scalar domain. The domain specific part is a single BoundConverter that turns a raw bound
// (text, a driver value or nil) into a scalar. IntRange and NumRange bind the core to int64 and float64.
package pgrange
