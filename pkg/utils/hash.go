package utils

import (
	"crypto/sha256"
	"encoding/hex"
)

// HashContent returns the hex encoded sha256 of data.
// The stored track checksum is not verified, the content hash identifies
// the exact file.
func HashContent(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}
