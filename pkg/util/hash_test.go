package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHashString_Consistency(t *testing.T) {
	input := "test string"

	hash1 := HashString(input)
	hash2 := HashString(input)

	assert.Equal(t, hash1, hash2, "hash should be consistent across calls")
}

func TestHashString_Distribution(t *testing.T) {
	hashes := make(map[uint64]bool)
	inputs := []string{
		"a", "b", "c", "aa", "ab", "abc", "test", "testing", "hello", "world",
	}

	for _, input := range inputs {
		hashes[HashString(input)] = true
	}

	assert.Len(t, hashes, len(inputs), "distinct inputs should hash apart")
}

func TestHashString_CaseSensitive(t *testing.T) {
	assert.NotEqual(t, HashString("HELLO"), HashString("hello"))
}

func TestClientIdentity(t *testing.T) {
	t.Run("stable for the same client", func(t *testing.T) {
		id1 := ClientIdentity("10.0.0.1", "Mozilla/5.0")
		id2 := ClientIdentity("10.0.0.1", "Mozilla/5.0")

		assert.Equal(t, id1, id2)
		assert.Len(t, id1, 16)
	})

	t.Run("different IPs differ", func(t *testing.T) {
		assert.NotEqual(t,
			ClientIdentity("10.0.0.1", "Mozilla/5.0"),
			ClientIdentity("10.0.0.2", "Mozilla/5.0"))
	})

	t.Run("different user agents differ", func(t *testing.T) {
		assert.NotEqual(t,
			ClientIdentity("10.0.0.1", "Mozilla/5.0"),
			ClientIdentity("10.0.0.1", "curl/8.0"))
	})

	t.Run("separator prevents ambiguity", func(t *testing.T) {
		// "ab" + "c" must not collide with "a" + "bc"
		assert.NotEqual(t, ClientIdentity("ab", "c"), ClientIdentity("a", "bc"))
	})
}
