// Package cryptox holds the password hashing used by the identity backends.
//
// A password is never stored. Instead a random salt is drawn, an argon2id key
// is derived from (password, salt), and the SHA-256 of that key is kept as
// the verifier. Checking a password repeats the derivation and compares
// verifiers in constant time.
package cryptox

import (
	"crypto/sha256"
	"crypto/subtle"

	"github.com/dmitrijs2005/esgportal/internal/common"
	"golang.org/x/crypto/argon2"
)

// SaltSize is the length of freshly generated salts.
const SaltSize = 32

// DeriveKey derives a 32-byte argon2id key from password and salt.
func DeriveKey(password []byte, salt []byte) []byte {
	return argon2.IDKey(password, salt, 1, 64*1024, 4, 32)
}

// MakeVerifier hashes a derived key into the value stored server-side.
func MakeVerifier(key []byte) []byte {
	hash := sha256.Sum256(key)
	return hash[:]
}

// HashPassword returns a new random salt and the verifier for password.
func HashPassword(password string) (salt []byte, verifier []byte) {
	salt = common.GenerateRandByteArray(SaltSize)
	return salt, MakeVerifier(DeriveKey([]byte(password), salt))
}

// CheckPassword reports whether password matches the stored salt/verifier.
func CheckPassword(password string, salt, verifier []byte) bool {
	if len(salt) == 0 || len(verifier) == 0 {
		return false
	}
	candidate := MakeVerifier(DeriveKey([]byte(password), salt))
	return subtle.ConstantTimeCompare(verifier, candidate) == 1
}
