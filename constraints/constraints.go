// Package constraints defines the type sets that bound values of a range can be drawn from.
package constraints

// Signed is a constraint that permits any signed integer type.
type Signed interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}

// Unsigned is a constraint that permits any unsigned integer type.
type Unsigned interface {
	~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Integer is a constraint that permits any integer type.
type Integer interface {
	Signed | Unsigned
}

// Float is a constraint that permits any floating-point type.
type Float interface {
	~float32 | ~float64
}

// Numeric is a constraint that permits any ordered numeric scalar: the scalar domains a range bound can live in.
type Numeric interface {
	Integer | Float
}

// Equalable is a constraint that permits checking for equality of any object.
type Equalable[T any] interface {
	Equal(other T) bool
}

// Cloneable is a constraint that permits cloning of any object.
type Cloneable[T any] interface {
	// Clone returns an exact copy of the object.
	Clone() T
}
