package tlswire

import (
	"fmt"

	"github.com/elliotcourant/buffers"
	"github.com/elliotcourant/tlswire/codec"
)

// ContentType is the one byte wire tag identifying the category of a
// record's payload.
type ContentType uint8

const (
	ContentTypeChangeCipherSpec ContentType = 20
	ContentTypeAlert            ContentType = 21
	ContentTypeHandshake        ContentType = 22
	ContentTypeApplicationData  ContentType = 23
	ContentTypeHeartbeat        ContentType = 24
)

var contentTypeNames = map[ContentType]string{
	ContentTypeChangeCipherSpec: "ChangeCipherSpec",
	ContentTypeAlert:            "Alert",
	ContentTypeHandshake:        "Handshake",
	ContentTypeApplicationData:  "ApplicationData",
	ContentTypeHeartbeat:        "Heartbeat",
}

func ReadContentType(r *codec.Reader) (ContentType, error) {
	return readEnum8[ContentType](r, "ContentType")
}

func (t ContentType) Encode(buf buffers.BytesBuffer) {
	buf.AppendUint8(uint8(t))
}

// Name returns the identifier of a named variant, or false for an open
// value. Diagnostic use only.
func (t ContentType) Name() (string, bool) {
	return lookupName(contentTypeNames, t)
}

// Known reports whether t is one of the named content types.
func (t ContentType) Known() bool {
	_, ok := contentTypeNames[t]
	return ok
}

func (t ContentType) String() string {
	if name, ok := t.Name(); ok {
		return name
	}
	return fmt.Sprintf("ContentType(0x%02x)", uint8(t))
}
