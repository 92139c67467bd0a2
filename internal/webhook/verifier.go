// Package webhook authenticates and decodes notifications pushed by the
// verification service.
package webhook

import (
	"crypto/hmac"
	"crypto/sha1"
	"errors"
	"fmt"

	"github.com/otiai10/sumsub/internal/signature"
)

// HeaderPayloadDigest carries the hex HMAC-SHA1 of the raw request body.
const HeaderPayloadDigest = "X-Payload-Digest"

var (
	// ErrInvalidEncoding means the provided signature is not valid hex.
	ErrInvalidEncoding = errors.New("webhook: signature is not valid hexadecimal")
	// ErrSignatureMismatch means the digest does not match the payload.
	ErrSignatureMismatch = errors.New("webhook: signature does not match")
)

// Digest computes the HMAC-SHA1 of payload under secret.
func Digest(secret, payload []byte) []byte {
	mac := hmac.New(sha1.New, secret)
	mac.Write(payload)
	return mac.Sum(nil)
}

// DigestHex is Digest rendered as lowercase hex, the form carried in
// X-Payload-Digest.
func DigestHex(secret, payload []byte) string {
	return signature.EncodeHex(Digest(secret, payload))
}

// Verify checks that signatureHex is the HMAC-SHA1 of the raw payload.
//
// payload must be the body exactly as received, before any JSON decoding.
// A signature that is not valid hex is rejected with ErrInvalidEncoding
// without computing the digest. Any other mismatch, including a length
// mismatch, yields ErrSignatureMismatch; the comparison is constant-time.
//
// Parameters:
//   - secret: The webhook secret key
//   - payload: Raw request body
//   - signatureHex: Value of the X-Payload-Digest header
//
// Returns:
//   - nil if the signature is valid
//   - ErrInvalidEncoding or ErrSignatureMismatch otherwise
func Verify(secret, payload []byte, signatureHex string) error {
	provided, err := signature.DecodeHex(signatureHex)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidEncoding, err)
	}
	if !hmac.Equal(Digest(secret, payload), provided) {
		return ErrSignatureMismatch
	}
	return nil
}
