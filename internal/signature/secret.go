package signature

// MaskSecret shortens a token or secret for log output.
func MaskSecret(secret string) string {
	if len(secret) <= 12 {
		return "****"
	}
	return secret[:4] + "..." + secret[len(secret)-4:]
}
