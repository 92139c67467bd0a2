package signature

import (
	"net/http"
	"strconv"
	"time"
)

// Header names expected by the remote service.
const (
	HeaderAppToken        = "X-App-Token"
	HeaderAccessSignature = "X-App-Access-Sig"
	HeaderAccessTimestamp = "X-App-Access-Ts"
)

// AuthHeaders holds the three authentication header values for a single
// request. They are bound to one (method, path, body, timestamp) tuple and
// must not be reused for another request or a retry.
type AuthHeaders struct {
	AppToken        string
	AccessSignature string
	AccessTimestamp string
}

// Apply writes the headers into h, replacing any previous values.
func (a AuthHeaders) Apply(h http.Header) {
	h.Set(HeaderAppToken, a.AppToken)
	h.Set(HeaderAccessSignature, a.AccessSignature)
	h.Set(HeaderAccessTimestamp, a.AccessTimestamp)
}

// Signer produces AuthHeaders for outbound requests.
//
// Signer is safe for concurrent use by multiple goroutines. The secret is
// copied on construction and never modified.
type Signer struct {
	appToken string
	secret   []byte
	now      func() time.Time
}

// SignerOption configures the Signer
type SignerOption func(*Signer)

// WithClock replaces the time source used for X-App-Access-Ts.
// Tests use it to pin the timestamp.
func WithClock(now func() time.Time) SignerOption {
	return func(s *Signer) {
		s.now = now
	}
}

// NewSigner creates a Signer for the given app token and secret key.
func NewSigner(appToken string, secret []byte, opts ...SignerOption) *Signer {
	s := &Signer{
		appToken: appToken,
		secret:   append([]byte(nil), secret...),
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// AppToken returns the app token the signer identifies itself with.
func (s *Signer) AppToken() string {
	return s.appToken
}

// Headers signs one request. The timestamp is read from the clock on every
// call, so calling Headers again for a retried request yields a fresh pair.
// A clock reading before the Unix epoch is signed as timestamp 0.
func (s *Signer) Headers(method, pathAndQuery string, body []byte) AuthHeaders {
	var ts uint64
	if sec := s.now().Unix(); sec > 0 {
		ts = uint64(sec)
	}
	return AuthHeaders{
		AppToken:        s.appToken,
		AccessSignature: SignHex(s.secret, ts, method, pathAndQuery, body),
		AccessTimestamp: strconv.FormatUint(ts, 10),
	}
}

// SignRequest signs req in place. The signed path is req.URL.RequestURI(),
// which is what net/http writes on the request line, so the signature always
// matches the transmitted path. body must be the exact bytes set as the
// request body, or nil for requests whose body is not signed.
func (s *Signer) SignRequest(req *http.Request, body []byte) {
	s.Headers(req.Method, req.URL.RequestURI(), body).Apply(req.Header)
}
