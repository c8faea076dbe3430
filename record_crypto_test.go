package tlswire

import (
	"testing"

	"github.com/elliotcourant/tlswire/codec"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/chacha20poly1305"
)

// The reserved prefix layout exists so a cipher can transform the payload in
// place and the header can be stamped afterwards. Exercise the whole cycle
// with a real AEAD.
func TestRecord_InPlaceTransform(t *testing.T) {
	key := make([]byte, chacha20poly1305.KeySize)
	for i := range key {
		key[i] = byte(i)
	}
	aead, err := chacha20poly1305.New(key)
	assert.NoError(t, err)
	nonce := make([]byte, chacha20poly1305.NonceSize)

	plaintext := []byte("application data that should never touch the wire in the clear")

	t.Run("encrypt in place then encode", func(t *testing.T) {
		payload := NewPrefixedPayload(len(plaintext) + aead.Overhead())
		payload.Append(plaintext...)

		body := payload.Bytes()
		sealed := aead.Seal(body[:0], nonce, body, nil)
		payload.SetLen(len(sealed))

		// Sealing stayed inside the reserved buffer, no reallocation.
		assert.True(t, &sealed[0] == &payload.Bytes()[0])
		assert.Equal(t, len(plaintext)+aead.Overhead(), payload.Len())

		encoded := NewRecord(ContentTypeApplicationData, VersionTLS12, payload).Encode()
		assert.Equal(t, byte(ContentTypeApplicationData), encoded[0])
		assert.Len(t, encoded, HeaderSize+len(plaintext)+aead.Overhead())

		t.Run("decode then decrypt in place", func(t *testing.T) {
			rec, err := ReadRecord(codec.NewReader(encoded))
			assert.NoError(t, err)

			ciphertext := rec.Payload.Bytes()
			opened, err := aead.Open(ciphertext[:0], nonce, ciphertext, nil)
			assert.NoError(t, err)
			rec.Payload.SetLen(len(opened))

			assert.Equal(t, plaintext, rec.Payload.Bytes())
			assert.True(t, &opened[0] == &rec.Payload.Bytes()[0])
		})
	})

	t.Run("tampered ciphertext fails to open", func(t *testing.T) {
		payload := NewPrefixedPayload(len(plaintext) + aead.Overhead())
		payload.Append(plaintext...)
		body := payload.Bytes()
		payload.SetLen(len(aead.Seal(body[:0], nonce, body, nil)))

		encoded := NewRecord(ContentTypeApplicationData, VersionTLS12, payload).Encode()
		encoded[HeaderSize] ^= 0x01

		rec, err := ReadRecord(codec.NewReader(encoded))
		assert.NoError(t, err)
		ciphertext := rec.Payload.Bytes()
		_, err = aead.Open(ciphertext[:0], nonce, ciphertext, nil)
		assert.Error(t, err)
	})
}
