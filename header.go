package tlswire

import (
	"github.com/elliotcourant/tlswire/codec"
)

// Header is the validated triple from the front of a record: content type,
// legacy protocol version and the declared payload length. It is the gate
// that must pass before any payload bytes are consumed from the cursor.
type Header struct {
	Type    ContentType
	Version ProtocolVersion
	Length  uint16
}

// ReadHeader reads and validates a record header. Checks run in order and
// fail fast; on a header error no payload bytes have been consumed.
//
// Validation rules:
//   - the content type must be one of the named constants,
//   - a named version is always accepted, an unnamed one only if its high
//     byte is 0x03,
//   - length 0 is only legal for application data,
//   - length must be below MaxPayload.
func ReadHeader(r *codec.Reader) (Header, error) {
	typ, err := ReadContentType(r)
	if err != nil {
		return Header{}, ErrTooShortForHeader
	}
	// Don't accept any new content types.
	if !typ.Known() {
		return Header{}, ErrInvalidContentType
	}

	version, err := ReadProtocolVersion(r)
	if err != nil {
		return Header{}, ErrTooShortForHeader
	}
	// Accept only versions 0x03xx for any xx when the value is unnamed.
	if !version.Known() && uint16(version)&0xff00 != 0x0300 {
		return Header{}, ErrUnknownProtocolVersion
	}

	length, err := r.NextUint16()
	if err != nil {
		return Header{}, ErrTooShortForHeader
	}

	// Reject undersize messages
	//  implemented per section 5.1 of RFC8446 (TLSv1.3)
	//              per section 6.2.1 of RFC5246 (TLSv1.2)
	if typ != ContentTypeApplicationData && length == 0 {
		return Header{}, ErrInvalidEmptyPayload
	}

	// Reject oversize messages before any allocation happens on their
	// behalf.
	if length >= MaxPayload {
		return Header{}, ErrMessageTooLarge
	}

	return Header{
		Type:    typ,
		Version: version,
		Length:  length,
	}, nil
}
