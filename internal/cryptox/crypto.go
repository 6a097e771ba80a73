// Package cryptox implements the password scheme shared by the client and the
// sync server. The password never leaves the client: it is stretched with
// argon2id over a per-user salt, and only a SHA-256 verifier of the derived
// key is sent to the server.
package cryptox

import (
	"crypto/sha256"

	"github.com/dmitrijs2005/refugio/internal/common"
	"golang.org/x/crypto/argon2"
)

// SaltSize is the length of the per-user salt generated at sign-up.
const SaltSize = 32

// NewSalt returns a fresh random salt.
func NewSalt() []byte {
	return common.GenerateRandByteArray(SaltSize)
}

// DeriveKey stretches password with argon2id (1 pass, 64 MiB, 4 lanes) into a
// 32-byte key.
func DeriveKey(password []byte, salt []byte) []byte {
	return argon2.IDKey(password, salt, 1, 64*1024, 4, 32)
}

// MakeVerifier is what the server stores and compares against.
func MakeVerifier(key []byte) []byte {
	hash := sha256.Sum256(key)
	return hash[:]
}

// VerifierFor is DeriveKey followed by MakeVerifier. The intermediate key is
// wiped before returning.
func VerifierFor(password []byte, salt []byte) []byte {
	key := DeriveKey(password, salt)
	defer common.WipeByteArray(key)
	return MakeVerifier(key)
}
