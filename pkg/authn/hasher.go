package authn

import (
	"crypto/sha256"
	"encoding/hex"
)

// Hasher turns a plaintext secret into its stored digest. The same hasher
// must be used for storage and verification bit-for-bit.
type Hasher interface {
	Hash(secret string) string
}

// SHA256Hasher produces the lowercase hex SHA-256 digest of the UTF-8
// secret, matching the pass_sha256 field of the store file.
type SHA256Hasher struct{}

// NewSHA256Hasher creates a new SHA256Hasher
func NewSHA256Hasher() *SHA256Hasher {
	return &SHA256Hasher{}
}

// Hash implements Hasher
func (h *SHA256Hasher) Hash(secret string) string {
	sum := sha256.Sum256([]byte(secret))
	return hex.EncodeToString(sum[:])
}
