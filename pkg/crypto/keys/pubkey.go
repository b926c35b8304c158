package keys

import (
	"crypto/sha256"

	"github.com/cosmos/cosmos-sdk/crypto/keys/secp256k1"
	"github.com/cosmos/cosmos-sdk/types/bech32"
	dcrec "github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github.com/decred/dcrd/dcrec/secp256k1/v4/ecdsa"
	"golang.org/x/crypto/ripemd160" //nolint:staticcheck // required for Cosmos address derivation
)

// PublicKeyLen is the length in bytes of a compressed public key.
const PublicKeyLen = 33

// bech32PubKeyPrefix is the legacy amino type prefix for secp256k1 public
// keys, required for the historical bech32 public key rendering.
var bech32PubKeyPrefix = []byte{0xeb, 0x5a, 0xe9, 0x87, 0x21}

// PublicKey is a secp256k1 public key.
type PublicKey struct {
	pub *dcrec.PublicKey
}

// PublicKeyFromBytes parses a 33 byte compressed public key. Malformed
// encodings and points not on the curve are rejected with
// ErrInvalidPublicKey.
func PublicKeyFromBytes(bz []byte) (*PublicKey, error) {
	if len(bz) != PublicKeyLen {
		return nil, ErrInvalidPublicKey.Wrapf("%d bytes, want %d compressed", len(bz), PublicKeyLen)
	}
	pub, err := dcrec.ParsePubKey(bz)
	if err != nil {
		return nil, ErrInvalidPublicKey.Wrap(err.Error())
	}
	return &PublicKey{pub: pub}, nil
}

// Bytes returns the 33 byte compressed encoding.
func (pub *PublicKey) Bytes() []byte {
	return pub.pub.SerializeCompressed()
}

// Address derives the account address: ripemd160(sha256(compressed pubkey)).
func (pub *PublicKey) Address() Address {
	sha := sha256.Sum256(pub.Bytes())
	hasher := ripemd160.New()
	hasher.Write(sha[:])
	return Address(hasher.Sum(nil))
}

// CosmosPubKey returns the cosmos-sdk proto representation, as embedded in
// transaction signer infos.
func (pub *PublicKey) CosmosPubKey() *secp256k1.PubKey {
	return &secp256k1.PubKey{Key: pub.Bytes()}
}

// Bech32 renders the public key in the legacy amino bech32 form used by
// older tooling: the amino secp256k1 prefix followed by the compressed key,
// encoded with the given prefix (conventionally the account prefix plus
// "pub").
func (pub *PublicKey) Bech32(hrp string) (string, error) {
	if err := validatePrefix(hrp); err != nil {
		return "", err
	}
	payload := append([]byte{}, bech32PubKeyPrefix...)
	payload = append(payload, pub.Bytes()...)
	return bech32.ConvertAndEncode(hrp, payload)
}

// VerifySignature reports whether sig is a valid 64 byte r||s signature by
// this key over sha256(msg). Signatures with S in the upper half of the
// group order are rejected, matching the canonical form produced by Sign.
func (pub *PublicKey) VerifySignature(msg, sig []byte) bool {
	if len(sig) != SignatureLen {
		return false
	}

	var r, s dcrec.ModNScalar
	if r.SetByteSlice(sig[:32]) {
		return false
	}
	if s.SetByteSlice(sig[32:]) {
		return false
	}
	if s.IsOverHalfOrder() {
		return false
	}

	digest := sha256.Sum256(msg)
	return ecdsa.NewSignature(&r, &s).Verify(digest[:], pub.pub)
}
