package keys

import (
	"crypto/sha256"
	"encoding/hex"
	"math/big"
	"strings"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github.com/decred/dcrd/dcrec/secp256k1/v4/ecdsa"

	"github.com/althea-net/deep-space/pkg/crypto/hd"
	"github.com/althea-net/deep-space/pkg/crypto/mnemonic"
)

const (
	// PrivateKeyLen is the length in bytes of a serialized private key.
	PrivateKeyLen = 32

	// SignatureLen is the length in bytes of a compact r||s signature.
	SignatureLen = 64
)

// curveOrderMinusOne is N-1 where N is the secp256k1 group order, used to
// map arbitrary secrets into the valid scalar range [1, N-1].
var curveOrderMinusOne = new(big.Int).Sub(secp256k1.S256().N, big.NewInt(1))

// PrivateKey is a secp256k1 private key.
type PrivateKey struct {
	key *secp256k1.PrivateKey
}

// FromBytes constructs a private key from its 32 byte big-endian encoding.
// The scalar must be in [1, N-1]; zero and out-of-range values are rejected
// with ErrInvalidPrivateKey.
func FromBytes(bz []byte) (*PrivateKey, error) {
	if len(bz) != PrivateKeyLen {
		return nil, ErrInvalidPrivateKey.Wrapf("%d bytes, want %d", len(bz), PrivateKeyLen)
	}

	var scalar secp256k1.ModNScalar
	overflow := scalar.SetByteSlice(bz)
	if overflow || scalar.IsZero() {
		return nil, ErrInvalidPrivateKey.Wrap("scalar not in [1, N-1]")
	}

	priv := secp256k1.NewPrivateKey(&scalar)
	scalar.Zero()
	return &PrivateKey{key: priv}, nil
}

// FromHex constructs a private key from a hex string, with or without a 0x
// prefix.
func FromHex(s string) (*PrivateKey, error) {
	trimmed := strings.TrimPrefix(strings.TrimPrefix(s, "0x"), "0X")
	bz, err := hex.DecodeString(trimmed)
	if err != nil {
		return nil, ErrInvalidPrivateKey.Wrapf("decoding hex: %s", err)
	}
	return FromBytes(bz)
}

// FromSecret deterministically maps an arbitrary secret to a valid private
// key: sha256(secret) reduced modulo N-1, plus one, which lands in [1, N-1]
// for every input. Useful for reproducible test identities; real wallets
// should derive keys from a seed phrase instead.
func FromSecret(secret []byte) *PrivateKey {
	digest := sha256.Sum256(secret)

	d := new(big.Int).SetBytes(digest[:])
	d.Mod(d, curveOrderMinusOne)
	d.Add(d, big.NewInt(1))

	var bz [PrivateKeyLen]byte
	d.FillBytes(bz[:])

	key, err := FromBytes(bz[:])
	if err != nil {
		// The construction above cannot produce an invalid scalar.
		panic(err)
	}
	return key
}

// FromMnemonic derives the private key for the given seed phrase, passphrase
// and derivation path. An empty path selects the conventional Cosmos account
// path (hd.DefaultPath).
func FromMnemonic(phrase, passphrase, path string) (*PrivateKey, error) {
	seed, err := mnemonic.NewSeed(phrase, passphrase)
	if err != nil {
		return nil, err
	}

	master, err := hd.NewMaster(seed)
	if err != nil {
		return nil, err
	}

	if path == "" {
		path = hd.DefaultPath
	}
	derived, err := master.Derive(path)
	if err != nil {
		return nil, err
	}

	return FromBytes(derived.Key())
}

// Bytes returns the 32 byte big-endian encoding of the private key.
func (pk *PrivateKey) Bytes() []byte {
	return pk.key.Serialize()
}

// PublicKey returns the public key point for this private key.
func (pk *PrivateKey) PublicKey() *PublicKey {
	return &PublicKey{pub: pk.key.PubKey()}
}

// Sign signs sha256(msg) with a deterministic RFC6979 nonce and returns the
// 64 byte r||s signature with S in the lower half of the group order. The
// same (key, msg) pair always produces the same signature.
func (pk *PrivateKey) Sign(msg []byte) ([]byte, error) {
	digest := sha256.Sum256(msg)
	// SignCompact prepends a recovery code byte which the Cosmos wire format
	// does not carry.
	sig := ecdsa.SignCompact(pk.key, digest[:], false)
	return sig[1:], nil
}
