package signer

import "github.com/althea-net/deep-space/pkg/crypto/keys"

// Signer is an interface that abstracts the signing of a message, so that
// transaction assembly does not need to hold raw private key material. The
// Signer interface expects the full message bytes and returns a byte slice
// containing the signature or any error that occurred during signing.
type Signer interface {
	Sign(msg []byte) (signature []byte, err error)
	PubKey() *keys.PublicKey
}
