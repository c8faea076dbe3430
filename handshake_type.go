package tlswire

import (
	"fmt"

	"github.com/elliotcourant/buffers"
	"github.com/elliotcourant/tlswire/codec"
)

// HandshakeType tags the messages carried inside handshake records. The
// framing layer never looks at it; it is defined here so every layer above
// shares one decoding of the value set.
type HandshakeType uint8

const (
	HandshakeTypeHelloRequest        HandshakeType = 0
	HandshakeTypeClientHello         HandshakeType = 1
	HandshakeTypeServerHello         HandshakeType = 2
	HandshakeTypeNewSessionTicket    HandshakeType = 4
	HandshakeTypeEndOfEarlyData      HandshakeType = 5
	HandshakeTypeEncryptedExtensions HandshakeType = 8
	HandshakeTypeCertificate         HandshakeType = 11
	HandshakeTypeServerKeyExchange   HandshakeType = 12
	HandshakeTypeCertificateRequest  HandshakeType = 13
	HandshakeTypeServerHelloDone     HandshakeType = 14
	HandshakeTypeCertificateVerify   HandshakeType = 15
	HandshakeTypeClientKeyExchange   HandshakeType = 16
	HandshakeTypeFinished            HandshakeType = 20
	HandshakeTypeKeyUpdate           HandshakeType = 24
	HandshakeTypeMessageHash         HandshakeType = 254
)

var handshakeTypeNames = map[HandshakeType]string{
	HandshakeTypeHelloRequest:        "HelloRequest",
	HandshakeTypeClientHello:         "ClientHello",
	HandshakeTypeServerHello:         "ServerHello",
	HandshakeTypeNewSessionTicket:    "NewSessionTicket",
	HandshakeTypeEndOfEarlyData:      "EndOfEarlyData",
	HandshakeTypeEncryptedExtensions: "EncryptedExtensions",
	HandshakeTypeCertificate:         "Certificate",
	HandshakeTypeServerKeyExchange:   "ServerKeyExchange",
	HandshakeTypeCertificateRequest:  "CertificateRequest",
	HandshakeTypeServerHelloDone:     "ServerHelloDone",
	HandshakeTypeCertificateVerify:   "CertificateVerify",
	HandshakeTypeClientKeyExchange:   "ClientKeyExchange",
	HandshakeTypeFinished:            "Finished",
	HandshakeTypeKeyUpdate:           "KeyUpdate",
	HandshakeTypeMessageHash:         "MessageHash",
}

func ReadHandshakeType(r *codec.Reader) (HandshakeType, error) {
	return readEnum8[HandshakeType](r, "HandshakeType")
}

func (t HandshakeType) Encode(buf buffers.BytesBuffer) {
	buf.AppendUint8(uint8(t))
}

func (t HandshakeType) Name() (string, bool) {
	return lookupName(handshakeTypeNames, t)
}

func (t HandshakeType) Known() bool {
	_, ok := handshakeTypeNames[t]
	return ok
}

func (t HandshakeType) String() string {
	if name, ok := t.Name(); ok {
		return name
	}
	return fmt.Sprintf("HandshakeType(0x%02x)", uint8(t))
}
