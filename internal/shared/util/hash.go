package util

import (
	"crypto/sha256"
	"encoding/hex"
)

const promptHashLen = 12

// PromptHash returns a short stable identifier for a prompt so log lines can
// be correlated without carrying resume text.
func PromptHash(s string) string {
	sum := sha256.Sum256([]byte(s))
	return hex.EncodeToString(sum[:])[:promptHashLen]
}
