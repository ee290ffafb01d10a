package generator

import (
	"crypto/rand"
	"strings"
)

const (
	// Alphabet is the character set for short codes. Lowercase only so that
	// lookups stay case-insensitive after normalization.
	Alphabet = "0123456789abcdefghijklmnopqrstuvwxyz"
	// DefaultLength is the default short code length. 36^7 gives roughly
	// 78 billion combinations.
	DefaultLength = 7
	// MaxLength is the maximum allowed code length, custom aliases included.
	MaxLength = 10
)

// reserved lists path segments owned by the routing layer. Generated codes
// and custom aliases must never collide with them.
var reserved = map[string]struct{}{
	"api":     {},
	"admin":   {},
	"health":  {},
	"ready":   {},
	"stats":   {},
	"swagger": {},
	"metrics": {},
	"shorten": {},
}

// Generator produces random short codes from a fixed alphabet using a
// cryptographically strong source, so codes are unguessable and evenly
// distributed. Uniqueness is enforced by the store, not here.
type Generator struct {
	length int
}

// New creates a new Generator producing codes of the given length
func New(length int) *Generator {
	if length <= 0 || length > MaxLength {
		length = DefaultLength
	}
	return &Generator{length: length}
}

// Generate returns a new random code. It retries internally on the
// astronomically unlikely draw of a reserved word, so it never fails.
func (g *Generator) Generate() string {
	for {
		code := randomCode(g.length)
		if _, ok := reserved[code]; !ok {
			return code
		}
	}
}

// Length returns the configured code length
func (g *Generator) Length() int {
	return g.length
}

// randomCode draws length characters from Alphabet via crypto/rand.
// Rejection sampling keeps the distribution uniform across the alphabet.
func randomCode(length int) string {
	const maxAccept = 252 // largest multiple of 36 below 256

	out := make([]byte, 0, length)
	buf := make([]byte, length)

	for len(out) < length {
		if _, err := rand.Read(buf); err != nil {
			// crypto/rand never fails on supported platforms
			panic("generator: crypto/rand read failed: " + err.Error())
		}
		for _, b := range buf {
			if b >= maxAccept {
				continue
			}
			out = append(out, Alphabet[int(b)%len(Alphabet)])
			if len(out) == length {
				break
			}
		}
	}

	return string(out)
}

// Normalize canonicalizes a code or custom alias: trimmed, lowercase.
func Normalize(code string) string {
	return strings.ToLower(strings.TrimSpace(code))
}

// Valid reports whether a normalized code is acceptable as a short code:
// 1..MaxLength characters, all drawn from Alphabet, not a reserved segment.
func Valid(code string) bool {
	if len(code) == 0 || len(code) > MaxLength {
		return false
	}
	if _, ok := reserved[code]; ok {
		return false
	}
	for i := 0; i < len(code); i++ {
		if !strings.ContainsRune(Alphabet, rune(code[i])) {
			return false
		}
	}
	return true
}
