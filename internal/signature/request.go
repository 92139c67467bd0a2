// Package signature implements the request signing scheme used to
// authenticate outbound calls to the verification API.
//
// A request signature is HMAC-SHA256 over the direct concatenation of
//
//	decimal(timestamp) + METHOD + pathAndQuery + body
//
// with no separators between the parts. The server recomputes the same
// digest from the request it received, so pathAndQuery and body must be the
// exact bytes that go on the wire.
package signature

import (
	"crypto/hmac"
	"crypto/sha256"
	"strconv"
)

// Input is everything that goes into a request signature.
// A nil Body means the request carries no signed body (GET, DELETE,
// multipart uploads).
type Input struct {
	Timestamp    uint64
	Method       string
	PathAndQuery string
	Body         []byte
}

// Sign computes the raw HMAC-SHA256 digest for a request.
//
// Parameters:
//   - secret: The app secret key
//   - timestamp: Unix time in seconds, sent alongside as X-App-Access-Ts
//   - method: Uppercase HTTP method, e.g. "POST"
//   - pathAndQuery: Request URI as sent, starting with "/"
//   - body: Serialized request body, or nil when the request has none
//
// Returns:
//   - The 32-byte digest
func Sign(secret []byte, timestamp uint64, method, pathAndQuery string, body []byte) []byte {
	mac := hmac.New(sha256.New, secret)
	mac.Write(strconv.AppendUint(nil, timestamp, 10))
	mac.Write([]byte(method))
	mac.Write([]byte(pathAndQuery))
	if body != nil {
		mac.Write(body)
	}
	return mac.Sum(nil)
}

// SignHex is Sign rendered as lowercase hex, the form used in the
// X-App-Access-Sig header.
//
// Example:
//
//	sig := SignHex([]byte("secret"), 1700000000, "GET", "/resources/status/api", nil)
func SignHex(secret []byte, timestamp uint64, method, pathAndQuery string, body []byte) string {
	return EncodeHex(Sign(secret, timestamp, method, pathAndQuery, body))
}

// SignInput signs a prepared Input.
func SignInput(secret []byte, in Input) string {
	return SignHex(secret, in.Timestamp, in.Method, in.PathAndQuery, in.Body)
}
