package hd

import (
	"crypto/hmac"
	"crypto/sha512"
	"encoding/binary"
	"errors"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
)

const (
	// HardenedKeyStart is the first hardened child index (2^31). Deriving a
	// hardened child commits to the parent private key rather than its public
	// key, so hardened subtrees cannot be derived from public material alone.
	HardenedKeyStart uint32 = 0x80000000

	// KeyLen is the length in bytes of the private key held by an ExtendedKey.
	KeyLen = 32

	// ChainCodeLen is the length in bytes of an ExtendedKey chain code.
	ChainCodeLen = 32

	// MinSeedLen and MaxSeedLen bound the seed sizes accepted by NewMaster,
	// per BIP32 (128 to 512 bits).
	MinSeedLen = 16
	MaxSeedLen = 64
)

// masterHMACKey is the fixed HMAC key used to expand a seed into the master
// extended key.
var masterHMACKey = []byte("Bitcoin seed")

// ExtendedKey is a node in the derivation tree: a secp256k1 private key plus
// the chain code that extends it, allowing children to be derived. It is
// immutable after construction.
type ExtendedKey struct {
	key       [KeyLen]byte
	chainCode [ChainCodeLen]byte
}

// NewMaster derives the root extended key from a seed by expanding it with
// HMAC-SHA512 keyed by "Bitcoin seed". The left half becomes the private key
// and the right half the chain code.
//
// Returns ErrInvalidSeed if the seed is outside 16 to 64 bytes, and
// ErrDeriveInvalidChild in the astronomically unlikely event that the left
// half is zero or not below the curve order.
func NewMaster(seed []byte) (*ExtendedKey, error) {
	if len(seed) < MinSeedLen || len(seed) > MaxSeedLen {
		return nil, ErrInvalidSeed.Wrapf("%d bytes, want %d to %d", len(seed), MinSeedLen, MaxSeedLen)
	}

	mac := hmac.New(sha512.New, masterHMACKey)
	mac.Write(seed)
	sum := mac.Sum(nil)

	var scalar secp256k1.ModNScalar
	overflow := scalar.SetByteSlice(sum[:KeyLen])
	if overflow || scalar.IsZero() {
		return nil, ErrDeriveInvalidChild.Wrap("master key")
	}
	scalar.Zero()

	master := &ExtendedKey{}
	copy(master.key[:], sum[:KeyLen])
	copy(master.chainCode[:], sum[KeyLen:])
	return master, nil
}

// Key returns a copy of the 32 byte private key.
func (k *ExtendedKey) Key() []byte {
	out := make([]byte, KeyLen)
	copy(out, k.key[:])
	return out
}

// ChainCode returns a copy of the 32 byte chain code.
func (k *ExtendedKey) ChainCode() []byte {
	out := make([]byte, ChainCodeLen)
	copy(out, k.chainCode[:])
	return out
}

// Child derives the child key at the given index. Indices at or above
// HardenedKeyStart derive hardened children from the parent private key;
// lower indices derive from the compressed parent public key. In both cases
// the HMAC-SHA512 left half is added to the parent key modulo the curve
// order and the right half becomes the child chain code.
//
// Returns ErrDeriveInvalidChild when the tweak is not below the curve order
// or the resulting key is zero (probability ~2^-127). Callers wanting the
// BIP32 skip-to-next-index behavior use ChildSkippingInvalid instead.
func (k *ExtendedKey) Child(index uint32) (*ExtendedKey, error) {
	data := make([]byte, 0, 1+KeyLen+4)
	if index >= HardenedKeyStart {
		data = append(data, 0x00)
		data = append(data, k.key[:]...)
	} else {
		data = append(data, k.pubKey().SerializeCompressed()...)
	}
	data = binary.BigEndian.AppendUint32(data, index)

	mac := hmac.New(sha512.New, k.chainCode[:])
	mac.Write(data)
	sum := mac.Sum(nil)

	var tweak secp256k1.ModNScalar
	if overflow := tweak.SetByteSlice(sum[:KeyLen]); overflow {
		return nil, ErrDeriveInvalidChild.Wrapf("index %d: tweak not below curve order", index)
	}

	var parent secp256k1.ModNScalar
	parent.SetByteSlice(k.key[:])
	tweak.Add(&parent)
	parent.Zero()

	if tweak.IsZero() {
		return nil, ErrDeriveInvalidChild.Wrapf("index %d: zero child key", index)
	}

	child := &ExtendedKey{}
	tweak.PutBytes(&child.key)
	tweak.Zero()
	copy(child.chainCode[:], sum[KeyLen:])
	return child, nil
}

// ChildSkippingInvalid derives the child at the given index, advancing to the
// next index whenever the child is invalid, as BIP32 prescribes for callers
// that prefer availability over strictness. It returns the derived key along
// with the index actually used. Skipping never crosses the hardened boundary.
func (k *ExtendedKey) ChildSkippingInvalid(index uint32) (*ExtendedKey, uint32, error) {
	hardened := index >= HardenedKeyStart
	for {
		child, err := k.Child(index)
		if err == nil {
			return child, index, nil
		}
		if !errors.Is(err, ErrDeriveInvalidChild) {
			return nil, 0, err
		}
		next := index + 1
		if next < index || (next >= HardenedKeyStart) != hardened {
			return nil, 0, ErrDeriveInvalidChild.Wrapf("no valid child at or above index %d", index)
		}
		index = next
	}
}

// Derive folds Child over the components of the given path, starting at k.
// The path "m" resolves to k itself.
func (k *ExtendedKey) Derive(path string) (*ExtendedKey, error) {
	indices, err := ParsePath(path)
	if err != nil {
		return nil, err
	}

	current := k
	for _, index := range indices {
		if current, err = current.Child(index); err != nil {
			return nil, err
		}
	}
	return current, nil
}

func (k *ExtendedKey) pubKey() *secp256k1.PublicKey {
	priv := secp256k1.PrivKeyFromBytes(k.key[:])
	defer priv.Zero()
	return priv.PubKey()
}
