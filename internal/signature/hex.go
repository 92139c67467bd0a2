package signature

import (
	"encoding/hex"
	"errors"
	"fmt"
)

// ErrInvalidHex is returned when a string contains non-hex characters or
// has an odd number of characters.
var ErrInvalidHex = errors.New("signature: invalid hex encoding")

// EncodeHex renders b as lowercase hexadecimal.
func EncodeHex(b []byte) string {
	return hex.EncodeToString(b)
}

// DecodeHex decodes a hexadecimal string into raw bytes.
// Input with non-hex characters or an odd length is rejected as a whole;
// no partial result is returned.
func DecodeHex(s string) ([]byte, error) {
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidHex, err)
	}
	return b, nil
}
