package crypto

import (
	"crypto/sha256"
	"encoding/hex"
)

// TokenFingerprint returns a short hex fingerprint of a personal token, so
// the CLI can tell sessions apart without printing the secret itself.
//
// It hashes with SHA-256 and truncates to 6 bytes (12 hex chars).
func TokenFingerprint(token string) string {
	if token == "" {
		return ""
	}
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:6])
}
