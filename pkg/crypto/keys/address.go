package keys

import (
	"encoding/hex"

	"github.com/cosmos/cosmos-sdk/types/bech32"
)

// AddressLen is the length in bytes of an account address.
const AddressLen = 20

// Address is a 20 byte account identifier. The bech32 human readable prefix
// is a property of the chain, not the key material, so it is supplied at
// rendering time.
type Address []byte

// AddressFromBech32 decodes a bech32 account address, returning the raw
// bytes and the human readable prefix it was encoded with.
func AddressFromBech32(addr string) (Address, string, error) {
	hrp, bz, err := bech32.DecodeAndConvert(addr)
	if err != nil {
		return nil, "", ErrInvalidAddress.Wrapf("%q: %s", addr, err)
	}
	if len(bz) != AddressLen {
		return nil, "", ErrInvalidAddress.Wrapf("%q decodes to %d bytes, want %d", addr, len(bz), AddressLen)
	}
	return Address(bz), hrp, nil
}

// Bytes returns the raw 20 byte address.
func (a Address) Bytes() []byte {
	return a
}

// Bech32 renders the address with the given human readable prefix.
func (a Address) Bech32(hrp string) (string, error) {
	if len(a) != AddressLen {
		return "", ErrInvalidAddress.Wrapf("%d bytes, want %d", len(a), AddressLen)
	}
	if err := validatePrefix(hrp); err != nil {
		return "", err
	}
	return bech32.ConvertAndEncode(hrp, a)
}

// validatePrefix rejects empty and mixed-case prefixes. The bech32 checksum
// alphabet is case sensitive, so either one yields output that cannot be
// decoded back.
func validatePrefix(hrp string) error {
	if hrp == "" {
		return ErrInvalidPrefix.Wrap("empty")
	}
	var hasLower, hasUpper bool
	for _, c := range hrp {
		switch {
		case c >= 'a' && c <= 'z':
			hasLower = true
		case c >= 'A' && c <= 'Z':
			hasUpper = true
		}
	}
	if hasLower && hasUpper {
		return ErrInvalidPrefix.Wrapf("%q mixes upper and lower case", hrp)
	}
	return nil
}

// String returns the address as lowercase hex. Use Bech32 for the on-chain
// representation.
func (a Address) String() string {
	return hex.EncodeToString(a)
}
