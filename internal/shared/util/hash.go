package util

import (
	"crypto/sha256"
	"encoding/hex"
)

// Fingerprint returns a short stable hex identifier for content, so log lines can
// correlate identical resumes without recording their text.
func Fingerprint(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])[:16]
}
