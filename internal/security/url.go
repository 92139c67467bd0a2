// Package security holds checks applied to endpoints the client talks to.
package security

import (
	"fmt"
	"net"
	"net/url"
	"strings"
)

// IsLocalhost checks if the given host is localhost.
// Accepts: "localhost", "127.0.0.1", "::1", "[::1]", and any 127.x.x.x address
func IsLocalhost(host string) bool {
	// Remove brackets from IPv6
	host = strings.TrimPrefix(host, "[")
	host = strings.TrimSuffix(host, "]")

	if host == "localhost" {
		return true
	}

	ip := net.ParseIP(host)
	return ip != nil && ip.IsLoopback()
}

// ValidateBaseURL checks an API base URL before credentials are sent to it.
// It checks:
// - URL is absolute with an http or https scheme
// - HTTPS is used unless the host is localhost (for local test servers)
// - No query or fragment is present, since paths are appended to it
//
// Multipart uploads are not covered by the request signature, so plain HTTP
// would leave their contents unprotected.
func ValidateBaseURL(raw string) error {
	if raw == "" {
		return fmt.Errorf("URL is empty")
	}

	parsed, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("invalid URL: %w", err)
	}

	scheme := strings.ToLower(parsed.Scheme)
	if scheme != "http" && scheme != "https" {
		return fmt.Errorf("unsupported URL scheme: %q (only http and https are allowed)", parsed.Scheme)
	}

	host := parsed.Hostname()
	if host == "" {
		return fmt.Errorf("invalid URL: missing host")
	}

	if scheme == "http" && !IsLocalhost(host) {
		return fmt.Errorf("HTTPS is required for %s", host)
	}

	if parsed.RawQuery != "" || parsed.Fragment != "" {
		return fmt.Errorf("base URL must not carry a query or fragment")
	}

	return nil
}
