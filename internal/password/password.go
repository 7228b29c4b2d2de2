// Package password implements salted, key-stretched password hashing for
// credential records. Records are (salt, hash) pairs of hex strings derived
// with PBKDF2-HMAC-SHA256.
package password

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"fmt"

	"golang.org/x/crypto/pbkdf2"
)

const (
	saltBytes = 16
	keyBytes  = 32

	// iterations is the PBKDF2 work factor. 120000 rounds of HMAC-SHA256
	// costs tens of milliseconds on current server hardware while keeping
	// offline brute force expensive. Changing it invalidates every stored
	// hash, so treat it as fixed.
	iterations = 120000
)

// NewRecord generates a fresh random salt and derives the hash for the
// given password. Both return values are hex-encoded.
func NewRecord(password string) (salt, hash string, err error) {
	raw := make([]byte, saltBytes)
	if _, err := rand.Read(raw); err != nil {
		return "", "", fmt.Errorf("generate salt: %w", err)
	}
	salt = hex.EncodeToString(raw)
	return salt, Derive(password, raw), nil
}

// Derive computes the hex-encoded PBKDF2 hash of password under salt.
func Derive(password string, salt []byte) string {
	key := pbkdf2.Key([]byte(password), salt, iterations, keyBytes, sha256.New)
	return hex.EncodeToString(key)
}

// Verify reports whether password matches the stored hex-encoded salt and
// hash. The comparison is constant-time over the full digest; it never
// returns early on a byte mismatch. Malformed salt or hash yields false.
func Verify(password, saltHex, hashHex string) bool {
	salt, err := hex.DecodeString(saltHex)
	if err != nil {
		return false
	}
	stored, err := hex.DecodeString(hashHex)
	if err != nil || len(stored) != keyBytes {
		return false
	}
	derived := pbkdf2.Key([]byte(password), salt, iterations, keyBytes, sha256.New)
	return subtle.ConstantTimeCompare(derived, stored) == 1
}
