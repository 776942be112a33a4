package jwtx

import (
	"errors"
	"fmt"
	"math/rand/v2"

	"github.com/aussiebroadwan/pinboard/pkg/cryptox"
)

// KeyManager owns the in-memory signing keys of one server instance and the
// KeySet and Verifier built from them.
type KeyManager struct {
	Verifier Verifier
	KeySet   *KeySet

	signers []Signer
}

// KeyManagerOptions configures NewEphemeralKeyManager.
type KeyManagerOptions struct {
	// Issuer is both stamped into and required of every token.
	Issuer string

	// Audience values required by the verifier. Empty disables the check.
	Audience []string

	// NumKeys is the number of signing keys, clamped to [1, 10]. Zero means 3.
	NumKeys int
}

// NewEphemeralKeyManager generates Ed25519 signing keys that live only in
// memory. Tokens do not survive a restart.
func NewEphemeralKeyManager(opts KeyManagerOptions) (*KeyManager, error) {
	if opts.Issuer == "" {
		return nil, errors.New("jwtx: issuer is required")
	}

	n := opts.NumKeys
	switch {
	case n <= 0:
		n = 3
	case n > 10:
		n = 10
	}

	keyset := NewKeySet()
	signers := make([]Signer, 0, n)
	for i := range n {
		kid, err := newKeyID()
		if err != nil {
			return nil, err
		}
		pemKey, err := cryptox.GenerateSigningKey()
		if err != nil {
			return nil, fmt.Errorf("jwtx: generate key %d: %w", i+1, err)
		}
		signer, err := NewSignerEdDSA(kid, pemKey)
		if err != nil {
			return nil, fmt.Errorf("jwtx: load key %d: %w", i+1, err)
		}
		if err := keyset.AddSigner(signer); err != nil {
			return nil, fmt.Errorf("jwtx: publish key %d: %w", i+1, err)
		}
		signers = append(signers, signer)
	}

	return &KeyManager{
		Verifier: NewVerifierEdDSA(keyset, opts.Issuer, opts.Audience),
		KeySet:   keyset,
		signers:  signers,
	}, nil
}

// GetSigner returns one of the signing keys at random, spreading tokens
// across kids.
func (km *KeyManager) GetSigner() Signer {
	switch len(km.signers) {
	case 0:
		return nil
	case 1:
		return km.signers[0]
	}
	return km.signers[rand.IntN(len(km.signers))]
}

// NumSigners returns the number of signing keys.
func (km *KeyManager) NumSigners() int { return len(km.signers) }

// IsReady reports whether the manager can verify tokens.
func (km *KeyManager) IsReady() bool { return km.KeySet.IsReady() }

func newKeyID() (string, error) {
	token, err := cryptox.GenerateToken(cryptox.TokenSize128)
	if err != nil {
		return "", fmt.Errorf("jwtx: key id: %w", err)
	}
	return "pinboard-" + token, nil
}
