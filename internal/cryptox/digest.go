// Package cryptox holds the password digest used by the local account store.
//
// The digest is an unsalted SHA-256 of the UTF-8 password bytes, hex encoded.
// It is intentionally demo-grade: no salt, no iteration count, readable by
// anything with access to the local store. It exists so plaintext passwords
// are never written to disk, not to resist an attacker. A real deployment
// must use a proper password-hashing function with a per-user salt (the auth
// backend uses bcrypt).
package cryptox

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
)

// PasswordDigest returns the hex-encoded SHA-256 digest of password.
func PasswordDigest(password string) string {
	sum := sha256.Sum256([]byte(password))
	return hex.EncodeToString(sum[:])
}

// VerifyPassword reports whether password digests to storedDigest.
// The comparison is constant time.
func VerifyPassword(password, storedDigest string) bool {
	candidate := PasswordDigest(password)
	return subtle.ConstantTimeCompare([]byte(candidate), []byte(storedDigest)) == 1
}
