package util

import (
	"encoding/hex"

	"lukechampine.com/blake3"
)

// PathKey calculates the journal key for a path: the Blake3 hash of the
// absolute path as a hex string (64 chars for a 32-byte hash).
func PathKey(absPath string) string {
	hash := blake3.New(32, nil) // 32-byte output with no key
	hash.Write([]byte(absPath))
	return hex.EncodeToString(hash.Sum(nil))
}
