// Package tlswire implements the record framing layer of a TLS style
// transport: the boundary between raw network bytes and typed records.
//
// The package parses attacker controlled input, so every decode path
// returns errors instead of panicking, validates the full header before
// consuming any payload bytes, and bounds allocation by the declared
// length limit. Unknown values of wire enumerations decode to their raw
// integer rather than failing, preserving forward compatibility; whether
// to accept them is decided where the value is used.
package tlswire

import (
	"encoding/binary"

	"github.com/elliotcourant/tlswire/codec"
)

const (
	// HeaderSize is content type, version and length on the wire.
	HeaderSize = 1 + 2 + 2

	// MaxPayload is the largest payload a record may declare. That's 2^14
	// payload bytes and a 2KB allowance for ciphertext overheads.
	MaxPayload = 16384 + 2048

	// MaxWireSize is the largest complete record.
	MaxWireSize = MaxPayload + HeaderSize
)

// PrefixedPayload is a growable payload buffer that physically reserves
// HeaderSize bytes ahead of the payload, so Record.Encode can stamp the
// header into the gap once the payload is final. The prefix exists because
// payload bytes are usually produced or transformed in place (encrypted)
// before the length is known; reserving it up front avoids a second
// allocation just to prepend the header.
//
// Callers only ever see the region after the prefix.
type PrefixedPayload struct {
	buf []byte
}

// NewPrefixedPayload reserves the zeroed header prefix plus capacity for an
// expected payload size.
func NewPrefixedPayload(capacity int) *PrefixedPayload {
	return &PrefixedPayload{
		buf: make([]byte, HeaderSize, HeaderSize+capacity),
	}
}

func newPrefixedPayloadFrom(content []byte) *PrefixedPayload {
	p := NewPrefixedPayload(len(content))
	p.Append(content...)
	return p
}

// Bytes returns the logical payload: exactly the bytes after the reserved
// prefix, never the prefix itself. The slice shares the payload's backing
// array, so an in-place transform such as
//
//	sealed := aead.Seal(p.Bytes()[:0], nonce, p.Bytes(), nil)
//	p.SetLen(len(sealed))
//
// operates without copying as long as it stays within capacity.
func (p *PrefixedPayload) Bytes() []byte {
	return p.buf[HeaderSize:]
}

// Append grows the logical payload.
func (p *PrefixedPayload) Append(b ...byte) {
	p.buf = append(p.buf, b...)
}

// Len is the logical payload length, excluding the prefix.
func (p *PrefixedPayload) Len() int {
	return len(p.buf) - HeaderSize
}

// SetLen fixes up the logical payload length after an in-place transform
// grew or shrank it within capacity. Panics if n is outside the buffer's
// capacity; that is caller misuse, not wire input.
func (p *PrefixedPayload) SetLen(n int) {
	if n < 0 || HeaderSize+n > cap(p.buf) {
		panic("tlswire: payload length outside buffer capacity")
	}
	p.buf = p.buf[:HeaderSize+n]
}

// Record is one length delimited unit of the wire protocol, TLSPlaintext in
// the standard. It owns all memory for its parts; the payload can be
// mutated in place for encryption or decryption before the record is
// encoded or converted.
type Record struct {
	Type    ContentType
	Version ProtocolVersion
	Payload *PrefixedPayload
}

func NewRecord(typ ContentType, version ProtocolVersion, payload *PrefixedPayload) *Record {
	return &Record{
		Type:    typ,
		Version: version,
		Payload: payload,
	}
}

// ReadRecord decodes one record from the cursor. The header is validated in
// full before any payload bytes are consumed; a header error leaves the
// payload untouched. When the header is valid but fewer than the declared
// number of payload bytes remain, the error is ErrTooShortForLength, which
// callers must treat as "wait for more input" rather than as a protocol
// violation.
func ReadRecord(r *codec.Reader) (*Record, error) {
	hdr, err := ReadHeader(r)
	if err != nil {
		return nil, err
	}

	content, err := r.Next(int(hdr.Length))
	if err != nil {
		return nil, ErrTooShortForLength
	}

	return &Record{
		Type:    hdr.Type,
		Version: hdr.Version,
		Payload: newPrefixedPayloadFrom(content),
	}, nil
}

// Encode finalizes the record into its wire bytes by overwriting the
// reserved prefix with the real header. The payload body is not copied; the
// only writes are the five prefix bytes. Encode consumes the record: the
// payload buffer is detached and the record must not be used again.
func (rec *Record) Encode() []byte {
	// Construction and decode both bound the payload below MaxPayload, so
	// the length cannot wrap.
	length := uint16(rec.Payload.Len())

	encoded := rec.Payload.buf
	rec.Payload = nil

	encoded[0] = byte(rec.Type)
	binary.BigEndian.PutUint16(encoded[1:3], uint16(rec.Version))
	binary.BigEndian.PutUint16(encoded[3:5], length)
	return encoded
}

// PlainRecord is a record known to hold plaintext, with no framing
// machinery attached.
type PlainRecord struct {
	Type    ContentType
	Version ProtocolVersion
	Payload []byte
}

// IntoPlain copies the record out of its prefixed layout. Only use this for
// records that are known to be plaintext; ciphertext should be decrypted in
// place through Payload.Bytes first.
func (rec *Record) IntoPlain() PlainRecord {
	payload := make([]byte, rec.Payload.Len())
	copy(payload, rec.Payload.Bytes())
	return PlainRecord{
		Type:    rec.Type,
		Version: rec.Version,
		Payload: payload,
	}
}
