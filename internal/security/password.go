// Package security derives and verifies salted password hashes.
package security

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/scrypt"
)

// ErrCrypto is returned when key derivation itself fails. Callers must
// treat it as a failed authentication.
var ErrCrypto = errors.New("password hashing failed")

const (
	scryptN       = 16384
	scryptR       = 8
	scryptP       = 1
	keyLength     = 64
	saltLength    = 16
	hashSeparator = "."
)

// Hasher holds the scrypt cost parameters. The zero value is not usable,
// use NewHasher.
type Hasher struct {
	N          int
	R          int
	P          int
	KeyLength  int
	SaltLength int
}

// NewHasher returns a Hasher with the default cost parameters.
func NewHasher() *Hasher {
	return &Hasher{
		N:          scryptN,
		R:          scryptR,
		P:          scryptP,
		KeyLength:  keyLength,
		SaltLength: saltLength,
	}
}

// Hash derives a hash for password with a fresh random salt and returns it
// encoded as "<hash hex>.<salt hex>".
func (h *Hasher) Hash(password string) (string, error) {
	salt := make([]byte, h.SaltLength)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("%w: %v", ErrCrypto, err)
	}
	saltHex := hex.EncodeToString(salt)

	derived, err := h.derive(password, saltHex)
	if err != nil {
		return "", err
	}
	return hex.EncodeToString(derived) + hashSeparator + saltHex, nil
}

// Verify reports whether supplied matches the stored encoding. A malformed
// stored value yields false with a nil error.
func (h *Hasher) Verify(supplied, stored string) (bool, error) {
	hashHex, saltHex, ok := strings.Cut(stored, hashSeparator)
	if !ok || hashHex == "" || saltHex == "" {
		return false, nil
	}
	expected, err := hex.DecodeString(hashHex)
	if err != nil || len(expected) == 0 {
		return false, nil
	}

	// The hex salt string is the KDF input, which keeps hashes written by
	// earlier deployments verifiable.
	derived, err := h.deriveLen(supplied, saltHex, len(expected))
	if err != nil {
		return false, err
	}
	return subtle.ConstantTimeCompare(expected, derived) == 1, nil
}

func (h *Hasher) derive(password, salt string) ([]byte, error) {
	return h.deriveLen(password, salt, h.KeyLength)
}

func (h *Hasher) deriveLen(password, salt string, keyLen int) ([]byte, error) {
	key, err := scrypt.Key([]byte(password), []byte(salt), h.N, h.R, h.P, keyLen)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCrypto, err)
	}
	return key, nil
}
