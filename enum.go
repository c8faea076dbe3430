package tlswire

import (
	"fmt"

	"github.com/elliotcourant/tlswire/codec"
)

// MissingDataError is returned when an enumeration cannot be decoded because
// the cursor ran out of bytes. It names the enumeration so callers can tell
// which header field was cut off. This is a "need more input" condition, not
// a protocol violation.
type MissingDataError struct {
	Enum string
}

func (e *MissingDataError) Error() string {
	return fmt.Sprintf("tlswire: missing data for %s", e.Enum)
}

// Every wire enumeration in this package is a typed integer: the named
// constants are the closed set, and any other value of the backing width is
// the open variant carrying the peer's integer verbatim. That makes the
// integer <-> value mapping total in both directions for free; decoding never
// fails on an unrecognized value, only on truncation. Whether an unknown
// value is acceptable is the caller's decision, made in context.

func readEnum8[E ~uint8](r *codec.Reader, enum string) (E, error) {
	v, err := r.NextUint8()
	if err != nil {
		return 0, &MissingDataError{Enum: enum}
	}
	return E(v), nil
}

func readEnum16[E ~uint16](r *codec.Reader, enum string) (E, error) {
	v, err := r.NextUint16()
	if err != nil {
		return 0, &MissingDataError{Enum: enum}
	}
	return E(v), nil
}

func lookupName[E comparable](names map[E]string, v E) (string, bool) {
	name, ok := names[v]
	return name, ok
}
