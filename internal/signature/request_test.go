package signature

import (
	"bytes"
	"crypto/hmac"
	"crypto/sha256"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func TestSignHex(t *testing.T) {
	tests := []struct {
		name     string
		secret   string
		ts       uint64
		method   string
		path     string
		body     []byte
		expected string
	}{
		{
			name:     "no body",
			secret:   "my_secret_key",
			ts:       1700000000,
			method:   "GET",
			path:     "/resources/status/api",
			expected: "af68a923fceb1b6f962ff96733b4e6821341679bf0b3a1eee00fb07baf84432a",
		},
		{
			name:     "json body with query",
			secret:   "my_secret_key",
			ts:       1700000000,
			method:   "POST",
			path:     "/resources/applicants?levelName=basic-kyc-level",
			body:     []byte(`{"externalUserId":"user-1"}`),
			expected: "f32617e15345544dcb1a21781fb0d24d9dd9881178ac4d84268154939c9aab7a",
		},
		{
			name:   "ndjson body",
			secret: "my_secret_key",
			ts:     1700000000,
			method: "POST",
			path:   "/resources/kyt/txns/-/importAddress",
			body: []byte(`{"address":"a1","currency":"BTC","network":"BTC"}` + "\n" +
				`{"address":"a2","currency":"ETH","network":"ETH"}`),
			expected: "acad50ac6f4d580e10d0cabe0d87407d1dbf0a912eef12e9152828cbc034cfe8",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SignHex([]byte(tt.secret), tt.ts, tt.method, tt.path, tt.body)
			if got != tt.expected {
				t.Errorf("SignHex() = %s, want %s", got, tt.expected)
			}
		})
	}
}

func TestSign_MatchesPlainConcatenation(t *testing.T) {
	secret := []byte("concat-secret")
	body := []byte(`{"a":1}`)

	mac := hmac.New(sha256.New, secret)
	mac.Write([]byte("1712345678" + "PATCH" + "/resources/applicants/abc/fixedInfo" + `{"a":1}`))
	want := mac.Sum(nil)

	got := Sign(secret, 1712345678, "PATCH", "/resources/applicants/abc/fixedInfo", body)
	if !bytes.Equal(got, want) {
		t.Errorf("Sign() = %x, want %x", got, want)
	}
	if len(got) != sha256.Size {
		t.Errorf("len(Sign()) = %d, want %d", len(got), sha256.Size)
	}
}

func TestSign_Deterministic(t *testing.T) {
	secret := []byte("consistent-secret")
	sig1 := SignHex(secret, 1700000000, "POST", "/resources/checks", []byte(`{"x":true}`))
	sig2 := SignHex(secret, 1700000000, "POST", "/resources/checks", []byte(`{"x":true}`))
	if sig1 != sig2 {
		t.Errorf("SignHex() inconsistent: sig1=%s, sig2=%s", sig1, sig2)
	}
}

func TestSign_SingleFieldPerturbations(t *testing.T) {
	secret := []byte("perturb-secret")
	base := Input{
		Timestamp:    1700000000,
		Method:       "POST",
		PathAndQuery: "/resources/applicants?levelName=basic",
		Body:         []byte(`{"externalUserId":"u1"}`),
	}
	baseSig := SignInput(secret, base)

	tests := []struct {
		name   string
		mutate func(in Input) Input
	}{
		{"timestamp +1", func(in Input) Input { in.Timestamp++; return in }},
		{"method", func(in Input) Input { in.Method = "PUT"; return in }},
		{"method case", func(in Input) Input { in.Method = "post"; return in }},
		{"path byte", func(in Input) Input { in.PathAndQuery = "/resources/applicants?levelName=basiC"; return in }},
		{"path case", func(in Input) Input { in.PathAndQuery = strings.ToUpper(in.PathAndQuery); return in }},
		{"query dropped", func(in Input) Input { in.PathAndQuery = "/resources/applicants"; return in }},
		{"body byte", func(in Input) Input { in.Body = []byte(`{"externalUserId":"u2"}`); return in }},
		{"body dropped", func(in Input) Input { in.Body = nil; return in }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SignInput(secret, tt.mutate(base)); got == baseSig {
				t.Errorf("signature did not change after mutating %s", tt.name)
			}
		})
	}

	t.Run("wrong secret", func(t *testing.T) {
		if got := SignInput([]byte("other-secret"), base); got == baseSig {
			t.Error("signature did not change with a different secret")
		}
	})
}

func TestSign_EmptyAndAbsentBody(t *testing.T) {
	// Both contribute zero bytes to the digest.
	secret := []byte("s")
	absent := SignHex(secret, 1, "GET", "/", nil)
	empty := SignHex(secret, 1, "GET", "/", []byte{})
	if absent != empty {
		t.Errorf("absent and empty body differ: %s vs %s", absent, empty)
	}
}

func TestSigner_Headers(t *testing.T) {
	clock := func() time.Time { return time.Unix(1700000000, 0) }
	signer := NewSigner("app-token", []byte("my_secret_key"), WithClock(clock))

	h := signer.Headers("GET", "/resources/status/api", nil)

	if h.AppToken != "app-token" {
		t.Errorf("AppToken = %q, want %q", h.AppToken, "app-token")
	}
	if h.AccessTimestamp != "1700000000" {
		t.Errorf("AccessTimestamp = %q, want %q", h.AccessTimestamp, "1700000000")
	}
	want := "af68a923fceb1b6f962ff96733b4e6821341679bf0b3a1eee00fb07baf84432a"
	if h.AccessSignature != want {
		t.Errorf("AccessSignature = %q, want %q", h.AccessSignature, want)
	}
}

func TestSigner_FreshTimestampPerCall(t *testing.T) {
	current := int64(1700000000)
	clock := func() time.Time {
		current++
		return time.Unix(current, 0)
	}
	signer := NewSigner("app-token", []byte("secret"), WithClock(clock))

	first := signer.Headers("POST", "/resources/checks", []byte(`{}`))
	second := signer.Headers("POST", "/resources/checks", []byte(`{}`))

	if first.AccessTimestamp == second.AccessTimestamp {
		t.Errorf("timestamp reused across calls: %s", first.AccessTimestamp)
	}
	if first.AccessSignature == second.AccessSignature {
		t.Error("signature reused across calls")
	}
}

func TestSigner_SecretCopied(t *testing.T) {
	secret := []byte("mutable")
	clock := func() time.Time { return time.Unix(1, 0) }
	signer := NewSigner("t", secret, WithClock(clock))
	before := signer.Headers("GET", "/", nil)

	secret[0] = 'X'

	after := signer.Headers("GET", "/", nil)
	if before.AccessSignature != after.AccessSignature {
		t.Error("signer observed mutation of the caller's secret slice")
	}
}

func TestSigner_SignRequest(t *testing.T) {
	clock := func() time.Time { return time.Unix(1700000000, 0) }
	signer := NewSigner("app-token", []byte("my_secret_key"), WithClock(clock))

	body := []byte(`{"externalUserId":"user-1"}`)
	req := httptest.NewRequest(http.MethodPost, "https://api.example.com/resources/applicants?levelName=basic-kyc-level", bytes.NewReader(body))
	signer.SignRequest(req, body)

	if got := req.Header.Get(HeaderAppToken); got != "app-token" {
		t.Errorf("%s = %q, want %q", HeaderAppToken, got, "app-token")
	}
	if got := req.Header.Get(HeaderAccessTimestamp); got != "1700000000" {
		t.Errorf("%s = %q, want %q", HeaderAccessTimestamp, got, "1700000000")
	}
	want := "f32617e15345544dcb1a21781fb0d24d9dd9881178ac4d84268154939c9aab7a"
	if got := req.Header.Get(HeaderAccessSignature); got != want {
		t.Errorf("%s = %q, want %q", HeaderAccessSignature, got, want)
	}
}

func TestSigner_ConcurrentUse(t *testing.T) {
	clock := func() time.Time { return time.Unix(1700000000, 0) }
	signer := NewSigner("app-token", []byte("my_secret_key"), WithClock(clock))
	want := signer.Headers("GET", "/resources/status/api", nil).AccessSignature

	done := make(chan string, 32)
	for i := 0; i < 32; i++ {
		go func() {
			done <- signer.Headers("GET", "/resources/status/api", nil).AccessSignature
		}()
	}
	for i := 0; i < 32; i++ {
		if got := <-done; got != want {
			t.Fatalf("concurrent signature = %s, want %s", got, want)
		}
	}
}

func BenchmarkSignHex(b *testing.B) {
	secret := []byte("benchmark-secret")
	body := []byte(`{"externalUserId":"bench","fixedInfo":{"firstName":"Jane","lastName":"Doe"}}`)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		SignHex(secret, 1700000000, "POST", "/resources/applicants?levelName=basic-kyc-level", body)
	}
}

func TestSigner_ClockBeforeEpoch(t *testing.T) {
	s := NewSigner("tok", []byte("my_secret_key"), WithClock(func() time.Time {
		return time.Unix(-5, 0)
	}))

	h := s.Headers("GET", "/resources/status/api", nil)
	if h.AccessTimestamp != "0" {
		t.Errorf("AccessTimestamp = %q, want 0", h.AccessTimestamp)
	}
	if want := SignHex([]byte("my_secret_key"), 0, "GET", "/resources/status/api", nil); h.AccessSignature != want {
		t.Errorf("AccessSignature = %s, want %s", h.AccessSignature, want)
	}
}
