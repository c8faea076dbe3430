package codec

import (
	"encoding/binary"
	"errors"
)

// ErrInsufficientData is returned by every Reader method when fewer bytes
// remain than the read requires. The reader is left unchanged when this
// happens, so a caller can retry the same read once more data has been
// buffered.
var ErrInsufficientData = errors.New("codec: insufficient data")

// Reader is a cursor over an already-buffered byte region. Unlike an
// io.Reader it never blocks, and unlike a plain slice index it reports
// truncation as a value instead of panicking; the bytes it walks are
// attacker-controlled.
type Reader struct {
	data   []byte
	offset int
}

func NewReader(src []byte) *Reader {
	return &Reader{
		data:   src,
		offset: 0,
	}
}

// Next takes exactly n bytes from the cursor. The returned slice aliases the
// reader's backing array and is only valid until the backing array is reused.
func (r *Reader) Next(n int) ([]byte, error) {
	if n < 0 || r.Remaining() < n {
		return nil, ErrInsufficientData
	}
	i := r.data[r.offset : r.offset+n]
	r.offset += n
	return i, nil
}

func (r *Reader) NextUint8() (uint8, error) {
	if r.Remaining() < 1 {
		return 0, ErrInsufficientData
	}
	i := r.data[r.offset]
	r.offset++
	return i, nil
}

func (r *Reader) NextUint16() (uint16, error) {
	i, err := r.Next(2)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint16(i), nil
}

func (r *Reader) NextUint32() (uint32, error) {
	i, err := r.Next(4)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint32(i), nil
}

// Remaining reports how many bytes have not yet been consumed.
func (r *Reader) Remaining() int {
	return len(r.data) - r.offset
}

// Rest takes every remaining byte.
func (r *Reader) Rest() []byte {
	i := r.data[r.offset:]
	r.offset = len(r.data)
	return i
}
