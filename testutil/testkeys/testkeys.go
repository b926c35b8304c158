package testkeys

import (
	"fmt"

	"github.com/althea-net/deep-space/pkg/crypto/keys"
)

// Bech32Prefix is the account address prefix test fixtures are rendered with.
const Bech32Prefix = "cosmos"

// PreGeneratedAccount couples a deterministic signing key with its derived
// address renderings.
type PreGeneratedAccount struct {
	Key     *keys.PrivateKey
	Address keys.Address
	Bech32  string
}

// MustPreGeneratedAccountAtIndex returns the deterministic account at the
// given index. The same index always yields the same account, across test
// runs and processes.
func MustPreGeneratedAccountAtIndex(index uint32) *PreGeneratedAccount {
	key := keys.FromSecret([]byte(fmt.Sprintf("deep-space test account %d", index)))
	address := key.PublicKey().Address()

	bech32, err := address.Bech32(Bech32Prefix)
	if err != nil {
		panic(fmt.Sprintf("rendering pre-generated account %d: %v", index, err))
	}

	return &PreGeneratedAccount{
		Key:     key,
		Address: address,
		Bech32:  bech32,
	}
}
