package cryptox

import (
	"fmt"
	"strings"
)

// Supported password hashing algorithms.
const (
	AlgorithmArgon2id = "argon2id"
	AlgorithmBcrypt   = "bcrypt"
)

// Hasher hashes new passwords with one algorithm and verifies digests of any
// supported algorithm, so switching algorithms never locks out existing users.
type Hasher struct {
	Algorithm  string // argon2id (default) or bcrypt
	BcryptCost int    // bcrypt work factor, DefaultBcryptCost when zero
}

// NewHasher validates the algorithm name and returns a Hasher.
func NewHasher(algorithm string, bcryptCost int) (Hasher, error) {
	algorithm = strings.ToLower(strings.TrimSpace(algorithm))
	switch algorithm {
	case "", AlgorithmArgon2id:
		return Hasher{Algorithm: AlgorithmArgon2id}, nil
	case AlgorithmBcrypt:
		return Hasher{Algorithm: AlgorithmBcrypt, BcryptCost: bcryptCost}, nil
	default:
		return Hasher{}, fmt.Errorf("cryptox: unsupported password algorithm %q", algorithm)
	}
}

// Hash derives a salted digest of plaintext.
func (h Hasher) Hash(plaintext string) (string, error) {
	if h.Algorithm == AlgorithmBcrypt {
		return hashBcrypt(plaintext, h.BcryptCost)
	}
	return hashArgon2id(plaintext)
}

// Verify reports whether plaintext matches digest. Malformed digests never
// match.
func (h Hasher) Verify(plaintext, digest string) bool {
	return CheckPassword(plaintext, digest) == nil
}

// CheckPassword compares plaintext against a digest produced by any
// supported algorithm. It returns ErrMismatch for a wrong password.
func CheckPassword(plaintext, digest string) error {
	switch {
	case strings.HasPrefix(digest, argon2idPrefix):
		return verifyArgon2id(plaintext, digest)
	case isBcryptDigest(digest):
		return verifyBcrypt(plaintext, digest)
	default:
		return ErrUnknownDigest
	}
}
