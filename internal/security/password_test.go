package security

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fastHasher keeps the test suite quick; the encoding is identical.
func fastHasher() *Hasher {
	h := NewHasher()
	h.N = 1024
	return h
}

func TestHasher_RoundTrip(t *testing.T) {
	h := fastHasher()

	for _, password := range []string{"Secr3t!2024", "", "pässwörd", strings.Repeat("x", 512)} {
		stored, err := h.Hash(password)
		require.NoError(t, err)

		ok, err := h.Verify(password, stored)
		require.NoError(t, err)
		assert.True(t, ok, "password %q should verify", password)
	}
}

func TestHasher_Encoding(t *testing.T) {
	h := fastHasher()

	stored, err := h.Hash("Secr3t!2024")
	require.NoError(t, err)

	hashHex, saltHex, ok := strings.Cut(stored, ".")
	require.True(t, ok)
	assert.Len(t, hashHex, keyLength*2)
	assert.Len(t, saltHex, saltLength*2)
	assert.NotContains(t, stored, "Secr3t!2024")
}

func TestHasher_NonDeterministic(t *testing.T) {
	h := fastHasher()

	first, err := h.Hash("same-password")
	require.NoError(t, err)
	second, err := h.Hash("same-password")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestHasher_WrongPasswordRejected(t *testing.T) {
	h := fastHasher()

	stored, err := h.Hash("correct horse")
	require.NoError(t, err)

	ok, err := h.Verify("battery staple", stored)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestHasher_MalformedStoredHash(t *testing.T) {
	h := fastHasher()

	for _, stored := range []string{"", "!", "nodot", ".salt", "hash.", "zz.abcd"} {
		ok, err := h.Verify("anything", stored)
		assert.NoError(t, err, "stored %q", stored)
		assert.False(t, ok, "stored %q", stored)
	}
}

func TestHasher_DerivationFailure(t *testing.T) {
	h := fastHasher()
	h.N = 3 // not a power of two

	_, err := h.Hash("password")
	assert.ErrorIs(t, err, ErrCrypto)

	ok, err := h.Verify("password", "abcd.ef01")
	assert.ErrorIs(t, err, ErrCrypto)
	assert.False(t, ok)
}
