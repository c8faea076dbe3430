package tlswire

import (
	"errors"
)

// The two "too short" errors signal that the input is not yet fully
// buffered; the caller should wait for more bytes and retry. Every other
// error is a protocol violation and the caller should drop the connection.
// They are kept as distinct sentinels so the two policies never get
// conflated.
var (
	// ErrTooShortForHeader means fewer than HeaderSize bytes were
	// available. Need more input.
	ErrTooShortForHeader = errors.New("tlswire: too short for record header")

	// ErrTooShortForLength means the header parsed and validated but the
	// declared payload has not fully arrived. Need more input.
	ErrTooShortForLength = errors.New("tlswire: too short for declared length")

	// ErrInvalidContentType means the header named a content type this
	// layer does not define. New content types must be added explicitly;
	// unknown ones are never admitted.
	ErrInvalidContentType = errors.New("tlswire: invalid content type")

	// ErrUnknownProtocolVersion means the version field is unnamed and
	// outside the 0x03xx legacy major version family.
	ErrUnknownProtocolVersion = errors.New("tlswire: unknown protocol version")

	// ErrInvalidEmptyPayload means a zero length record of a type other
	// than application data.
	ErrInvalidEmptyPayload = errors.New("tlswire: empty payload not permitted")

	// ErrMessageTooLarge means the declared length is at least MaxPayload.
	// Checked before any payload allocation or read.
	ErrMessageTooLarge = errors.New("tlswire: message too large")
)
