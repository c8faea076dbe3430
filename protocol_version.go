package tlswire

import (
	"fmt"

	"github.com/elliotcourant/buffers"
	"github.com/elliotcourant/tlswire/codec"
)

// ProtocolVersion is the two byte wire tag identifying the protocol revision.
// In the record header it is a legacy compatibility field; real version
// negotiation happens in the handshake.
type ProtocolVersion uint16

const (
	VersionSSL20 ProtocolVersion = 0x0200
	VersionSSL30 ProtocolVersion = 0x0300
	VersionTLS10 ProtocolVersion = 0x0301
	VersionTLS11 ProtocolVersion = 0x0302
	VersionTLS12 ProtocolVersion = 0x0303
	VersionTLS13 ProtocolVersion = 0x0304

	VersionDTLS10 ProtocolVersion = 0xfeff
	VersionDTLS12 ProtocolVersion = 0xfefd
	VersionDTLS13 ProtocolVersion = 0xfefc
)

var protocolVersionNames = map[ProtocolVersion]string{
	VersionSSL20:  "SSLv2",
	VersionSSL30:  "SSLv3",
	VersionTLS10:  "TLSv1.0",
	VersionTLS11:  "TLSv1.1",
	VersionTLS12:  "TLSv1.2",
	VersionTLS13:  "TLSv1.3",
	VersionDTLS10: "DTLSv1.0",
	VersionDTLS12: "DTLSv1.2",
	VersionDTLS13: "DTLSv1.3",
}

func ReadProtocolVersion(r *codec.Reader) (ProtocolVersion, error) {
	return readEnum16[ProtocolVersion](r, "ProtocolVersion")
}

func (v ProtocolVersion) Encode(buf buffers.BytesBuffer) {
	buf.AppendUint16(uint16(v))
}

// Name returns the identifier of a named variant, or false for an open
// value. Diagnostic use only.
func (v ProtocolVersion) Name() (string, bool) {
	return lookupName(protocolVersionNames, v)
}

// Known reports whether v is one of the named protocol versions.
func (v ProtocolVersion) Known() bool {
	_, ok := protocolVersionNames[v]
	return ok
}

func (v ProtocolVersion) String() string {
	if name, ok := v.Name(); ok {
		return name
	}
	return fmt.Sprintf("ProtocolVersion(0x%04x)", uint16(v))
}
