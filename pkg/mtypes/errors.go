// Package mtypes holds the range-checked scalar newtypes, the single
// tagged error type, and the generic range helpers shared by the region,
// codec, and facade layers.
package mtypes

import "fmt"

// ErrorKind tags the reason a MemError was raised.
type ErrorKind int

const (
	// Invariant marks a violated contract: bad input shape, an
	// out-of-bounds index, a length mismatch, a payload too large.
	Invariant ErrorKind = iota
	// OutOfRange marks a numeric value that does not fit the requested
	// bit length, signed or unsigned.
	OutOfRange
	// LossyFloatTruncation marks an attempt to store a float in fewer
	// bits than its native width.
	LossyFloatTruncation
	// InvalidIndex marks a slice/index shape the core does not support.
	InvalidIndex
	// InvalidInitializer marks an input type the facade could not
	// dispatch to a codec.
	InvalidInitializer
	// UnlikeCompare marks an equality comparison between incompatible
	// facade types.
	UnlikeCompare
)

func (k ErrorKind) String() string {
	switch k {
	case Invariant:
		return "Invariant"
	case OutOfRange:
		return "OutOfRange"
	case LossyFloatTruncation:
		return "LossyFloatTruncation"
	case InvalidIndex:
		return "InvalidIndex"
	case InvalidInitializer:
		return "InvalidInitializer"
	case UnlikeCompare:
		return "UnlikeCompare"
	default:
		return "Unknown"
	}
}

// MemError is the single error type raised by every fallible operation in
// this module. There is no retry and no partial result: every invariant
// check is eager and fatal to the operation that raised it.
type MemError struct {
	Kind    ErrorKind
	Message string
}

func (e *MemError) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// NewError builds a MemError of the given kind with a formatted message.
func NewError(kind ErrorKind, format string, args ...any) *MemError {
	return &MemError{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// Ensure raises an Invariant MemError if condition is false. Ported from
// the original source's `ensure()` helper (mem_types.py), re-expressed as
// a returned error instead of a raised exception per the idiomatic Go
// error channel.
func Ensure(condition bool, format string, args ...any) error {
	return EnsureKind(condition, Invariant, format, args...)
}

// EnsureKind is Ensure with an explicit ErrorKind, for call sites whose
// violated contract is not a generic Invariant (e.g. a range check that
// must surface as OutOfRange per spec.md's boundary behaviors).
func EnsureKind(condition bool, kind ErrorKind, format string, args ...any) error {
	if condition {
		return nil
	}
	return NewError(kind, format, args...)
}
