package tlswire

import (
	"fmt"

	"github.com/elliotcourant/buffers"
	"github.com/elliotcourant/tlswire/codec"
)

// AlertLevel is the severity byte of an alert record's payload.
type AlertLevel uint8

const (
	AlertLevelWarning AlertLevel = 1
	AlertLevelFatal   AlertLevel = 2
)

var alertLevelNames = map[AlertLevel]string{
	AlertLevelWarning: "Warning",
	AlertLevelFatal:   "Fatal",
}

func ReadAlertLevel(r *codec.Reader) (AlertLevel, error) {
	return readEnum8[AlertLevel](r, "AlertLevel")
}

func (l AlertLevel) Encode(buf buffers.BytesBuffer) {
	buf.AppendUint8(uint8(l))
}

func (l AlertLevel) Name() (string, bool) {
	return lookupName(alertLevelNames, l)
}

func (l AlertLevel) Known() bool {
	_, ok := alertLevelNames[l]
	return ok
}

func (l AlertLevel) String() string {
	if name, ok := l.Name(); ok {
		return name
	}
	return fmt.Sprintf("AlertLevel(0x%02x)", uint8(l))
}

// AlertDescription identifies the condition an alert record reports.
type AlertDescription uint8

const (
	AlertDescriptionCloseNotify            AlertDescription = 0
	AlertDescriptionUnexpectedMessage      AlertDescription = 10
	AlertDescriptionBadRecordMAC           AlertDescription = 20
	AlertDescriptionDecryptionFailed       AlertDescription = 21
	AlertDescriptionRecordOverflow         AlertDescription = 22
	AlertDescriptionDecompressionFailure   AlertDescription = 30
	AlertDescriptionHandshakeFailure       AlertDescription = 40
	AlertDescriptionBadCertificate         AlertDescription = 42
	AlertDescriptionUnsupportedCertificate AlertDescription = 43
	AlertDescriptionCertificateRevoked     AlertDescription = 44
	AlertDescriptionCertificateExpired     AlertDescription = 45
	AlertDescriptionCertificateUnknown     AlertDescription = 46
	AlertDescriptionIllegalParameter       AlertDescription = 47
	AlertDescriptionUnknownCA              AlertDescription = 48
	AlertDescriptionAccessDenied           AlertDescription = 49
	AlertDescriptionDecodeError            AlertDescription = 50
	AlertDescriptionDecryptError           AlertDescription = 51
	AlertDescriptionProtocolVersion        AlertDescription = 70
	AlertDescriptionInsufficientSecurity   AlertDescription = 71
	AlertDescriptionInternalError          AlertDescription = 80
	AlertDescriptionInappropriateFallback  AlertDescription = 86
	AlertDescriptionUserCanceled           AlertDescription = 90
	AlertDescriptionNoRenegotiation        AlertDescription = 100
	AlertDescriptionMissingExtension       AlertDescription = 109
	AlertDescriptionUnsupportedExtension   AlertDescription = 110
	AlertDescriptionUnrecognizedName       AlertDescription = 112
	AlertDescriptionUnknownPSKIdentity     AlertDescription = 115
	AlertDescriptionCertificateRequired    AlertDescription = 116
	AlertDescriptionNoApplicationProtocol  AlertDescription = 120
)

var alertDescriptionNames = map[AlertDescription]string{
	AlertDescriptionCloseNotify:            "CloseNotify",
	AlertDescriptionUnexpectedMessage:      "UnexpectedMessage",
	AlertDescriptionBadRecordMAC:           "BadRecordMAC",
	AlertDescriptionDecryptionFailed:       "DecryptionFailed",
	AlertDescriptionRecordOverflow:         "RecordOverflow",
	AlertDescriptionDecompressionFailure:   "DecompressionFailure",
	AlertDescriptionHandshakeFailure:       "HandshakeFailure",
	AlertDescriptionBadCertificate:         "BadCertificate",
	AlertDescriptionUnsupportedCertificate: "UnsupportedCertificate",
	AlertDescriptionCertificateRevoked:     "CertificateRevoked",
	AlertDescriptionCertificateExpired:     "CertificateExpired",
	AlertDescriptionCertificateUnknown:     "CertificateUnknown",
	AlertDescriptionIllegalParameter:       "IllegalParameter",
	AlertDescriptionUnknownCA:              "UnknownCA",
	AlertDescriptionAccessDenied:           "AccessDenied",
	AlertDescriptionDecodeError:            "DecodeError",
	AlertDescriptionDecryptError:           "DecryptError",
	AlertDescriptionProtocolVersion:        "ProtocolVersion",
	AlertDescriptionInsufficientSecurity:   "InsufficientSecurity",
	AlertDescriptionInternalError:          "InternalError",
	AlertDescriptionInappropriateFallback:  "InappropriateFallback",
	AlertDescriptionUserCanceled:           "UserCanceled",
	AlertDescriptionNoRenegotiation:        "NoRenegotiation",
	AlertDescriptionMissingExtension:       "MissingExtension",
	AlertDescriptionUnsupportedExtension:   "UnsupportedExtension",
	AlertDescriptionUnrecognizedName:       "UnrecognizedName",
	AlertDescriptionUnknownPSKIdentity:     "UnknownPSKIdentity",
	AlertDescriptionCertificateRequired:    "CertificateRequired",
	AlertDescriptionNoApplicationProtocol:  "NoApplicationProtocol",
}

func ReadAlertDescription(r *codec.Reader) (AlertDescription, error) {
	return readEnum8[AlertDescription](r, "AlertDescription")
}

func (d AlertDescription) Encode(buf buffers.BytesBuffer) {
	buf.AppendUint8(uint8(d))
}

func (d AlertDescription) Name() (string, bool) {
	return lookupName(alertDescriptionNames, d)
}

func (d AlertDescription) Known() bool {
	_, ok := alertDescriptionNames[d]
	return ok
}

func (d AlertDescription) String() string {
	if name, ok := d.Name(); ok {
		return name
	}
	return fmt.Sprintf("AlertDescription(0x%02x)", uint8(d))
}
