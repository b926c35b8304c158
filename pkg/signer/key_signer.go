package signer

import (
	"github.com/althea-net/deep-space/pkg/crypto/keys"
)

var _ Signer = (*KeySigner)(nil)

// KeySigner is a signer implementation that uses an in-memory private key to
// sign messages, for verification using the signer's corresponding public key.
type KeySigner struct {
	privKey *keys.PrivateKey
}

// NewKeySigner creates a new KeySigner instance backed by the given private key.
func NewKeySigner(privKey *keys.PrivateKey) *KeySigner {
	return &KeySigner{privKey: privKey}
}

// Sign signs the given message using the KeySigner's private key.
func (s *KeySigner) Sign(msg []byte) (signature []byte, err error) {
	return s.privKey.Sign(msg)
}

// PubKey returns the public key corresponding to the KeySigner's private key.
func (s *KeySigner) PubKey() *keys.PublicKey {
	return s.privKey.PublicKey()
}
