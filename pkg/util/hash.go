package util

import (
	"fmt"
	"hash/fnv"
)

// HashString returns a uint64 hash of the input string using FNV-1a
func HashString(s string) uint64 {
	h := fnv.New64a()
	h.Write([]byte(s))
	return h.Sum64()
}

// ClientIdentity derives a compact opaque identity from a client IP and
// user agent, used to key click dedupe markers without storing raw request
// attributes.
func ClientIdentity(ip, userAgent string) string {
	return fmt.Sprintf("%016x", HashString(ip+"|"+userAgent))
}
