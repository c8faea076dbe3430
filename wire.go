package tlswire

import (
	"io"

	"github.com/elliotcourant/timber"
	"github.com/elliotcourant/tlswire/codec"
	"github.com/jackc/pgx/chunkreader"
)

// Wire frames records over a byte stream. It buffers reads through a chunk
// reader and keeps partial state between calls, so a header that arrives
// ahead of its payload is validated once and the payload picked up on the
// next call. The core record types stay free of I/O; Wire is the
// collaborator that feeds them.
//
// Wire is not safe for concurrent use.
type Wire struct {
	cr      *chunkreader.ChunkReader
	w       io.Writer
	logger  timber.Logger
	header  Header
	partial bool
}

func NewWire(r io.Reader, w io.Writer) *Wire {
	return &Wire{
		cr:     chunkreader.NewChunkReader(r),
		w:      w,
		logger: timber.New(),
	}
}

// ReadRecord blocks until one whole record has been read, or fails with the
// underlying stream error or a header validation error. Validation errors
// are protocol violations; the connection is no longer trustworthy once one
// is returned.
func (w *Wire) ReadRecord() (*Record, error) {
	if !w.partial {
		raw, err := w.cr.Next(HeaderSize)
		if err != nil {
			return nil, err
		}

		header, err := ReadHeader(codec.NewReader(raw))
		if err != nil {
			w.logger.Errorf("rejecting record header: %v", err)
			return nil, err
		}
		w.header = header
		w.partial = true
	}

	content, err := w.cr.Next(int(w.header.Length))
	if err != nil {
		return nil, err
	}
	w.partial = false

	w.logger.Debugf("read %s record, %d byte payload", w.header.Type, w.header.Length)

	return &Record{
		Type:    w.header.Type,
		Version: w.header.Version,
		Payload: newPrefixedPayloadFrom(content),
	}, nil
}

// WriteRecord encodes the record and writes it to the stream in one call.
// The record is consumed.
func (w *Wire) WriteRecord(rec *Record) error {
	_, err := w.w.Write(rec.Encode())
	return err
}
