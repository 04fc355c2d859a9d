package util

import (
	"crypto/sha256"
	"fmt"
)

// maxKeyLen bounds storage keys; longer user keys are replaced by a hash.
const maxKeyLen = 250

// TextKey returns the storage key for a user key in namespace ns:
// "text:<ns>:<key>". Keys that would exceed maxKeyLen become
// "texth:<ns>:<16 hex chars of SHA-256(key)>", a keyspace no user key
// can reach.
func TextKey(ns, key string) string {
	k := "text:" + ns + ":" + key
	if len(k) <= maxKeyLen {
		return k
	}
	sum := sha256.Sum256([]byte(key))
	return fmt.Sprintf("texth:%s:%x", ns, sum[:8])
}
