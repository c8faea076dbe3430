package tlswire

import (
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWire(t *testing.T) {
	t.Run("write then read back", func(t *testing.T) {
		stream := &bytes.Buffer{}
		wire := NewWire(stream, stream)

		err := wire.WriteRecord(NewRecord(ContentTypeHandshake, VersionTLS12, newPrefixedPayloadFrom([]byte("client hello"))))
		assert.NoError(t, err)
		err = wire.WriteRecord(NewRecord(ContentTypeApplicationData, VersionTLS12, NewPrefixedPayload(0)))
		assert.NoError(t, err)

		first, err := wire.ReadRecord()
		assert.NoError(t, err)
		assert.Equal(t, ContentTypeHandshake, first.Type)
		assert.Equal(t, []byte("client hello"), first.Payload.Bytes())

		second, err := wire.ReadRecord()
		assert.NoError(t, err)
		assert.Equal(t, ContentTypeApplicationData, second.Type)
		assert.Equal(t, 0, second.Payload.Len())
	})

	t.Run("header violations surface", func(t *testing.T) {
		stream := bytes.NewBuffer([]byte{0x00, 0x03, 0x01, 0x00, 0x05})
		wire := NewWire(stream, stream)

		_, err := wire.ReadRecord()
		assert.Equal(t, ErrInvalidContentType, err)
	})

	t.Run("oversize rejected before the body is read", func(t *testing.T) {
		stream := bytes.NewBuffer([]byte{0x16, 0x03, 0x01, 0x4a, 0x10})
		wire := NewWire(stream, stream)

		_, err := wire.ReadRecord()
		assert.Equal(t, ErrMessageTooLarge, err)
	})

	t.Run("eof on an empty stream", func(t *testing.T) {
		stream := &bytes.Buffer{}
		wire := NewWire(stream, stream)

		_, err := wire.ReadRecord()
		assert.Error(t, err)
		assert.NotEqual(t, ErrTooShortForHeader, err)
	})

	t.Run("header survives a stalled body", func(t *testing.T) {
		// Feed the header with only part of the body, then the rest. The
		// wire must resume with the header it already validated.
		rec := NewRecord(ContentTypeHandshake, VersionTLS12, newPrefixedPayloadFrom([]byte("finished")))
		encoded := rec.Encode()

		stream := &stallingReader{chunks: [][]byte{
			encoded[:HeaderSize+3],
			encoded[HeaderSize+3:],
		}}
		wire := NewWire(stream, io.Discard)

		decoded, err := wire.ReadRecord()
		assert.NoError(t, err)
		assert.Equal(t, []byte("finished"), decoded.Payload.Bytes())
	})
}

// stallingReader returns one chunk per Read call, like a socket delivering a
// record across multiple segments.
type stallingReader struct {
	chunks [][]byte
}

func (s *stallingReader) Read(p []byte) (int, error) {
	if len(s.chunks) == 0 {
		return 0, io.EOF
	}
	n := copy(p, s.chunks[0])
	if n == len(s.chunks[0]) {
		s.chunks = s.chunks[1:]
	} else {
		s.chunks[0] = s.chunks[0][n:]
	}
	return n, nil
}
