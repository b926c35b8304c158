package query

import (
	"context"
	"time"

	"cosmossdk.io/depinject"
	accounttypes "github.com/cosmos/cosmos-sdk/x/auth/types"
	grpc "github.com/cosmos/gogoproto/grpc"

	"github.com/althea-net/deep-space/pkg/cache"
	"github.com/althea-net/deep-space/pkg/cache/memory"
	"github.com/althea-net/deep-space/pkg/client"
)

// accountCacheTTL bounds how long a cached account may serve reads. Account
// numbers and public keys never change once set, sequence numbers do, so
// sequence sensitive callers use GetAccountFresh.
const accountCacheTTL = 30 * time.Second

var _ client.AccountQueryClient = (*accQuerier)(nil)

// accQuerier is a wrapper around the accounttypes.QueryClient that enables the
// querying of onchain account information.
type accQuerier struct {
	clientConn     grpc.ClientConn
	accountQuerier accounttypes.QueryClient

	// accountCache caches accounts by bech32 address.
	accountCache cache.KeyValueCache[accounttypes.AccountI]
}

// NewAccountQuerier returns a new instance of a client.AccountQueryClient by
// injecting the dependencies provided by the depinject.Config.
//
// Required dependencies:
// - grpc.ClientConn
func NewAccountQuerier(deps depinject.Config) (client.AccountQueryClient, error) {
	aq := &accQuerier{}

	if err := depinject.Inject(
		deps,
		&aq.clientConn,
	); err != nil {
		return nil, err
	}

	accountCache, err := memory.NewKeyValueCache[accounttypes.AccountI](
		memory.WithTTL(accountCacheTTL),
	)
	if err != nil {
		return nil, err
	}
	aq.accountCache = accountCache

	aq.accountQuerier = accounttypes.NewQueryClient(aq.clientConn)

	return aq, nil
}

// GetAccount returns the account at the given address, served from the cache
// when a recent result is available. The sequence number in a cached account
// may lag the chain.
func (aq *accQuerier) GetAccount(
	ctx context.Context,
	address string,
) (accounttypes.AccountI, error) {
	if account, found := aq.accountCache.Get(address); found {
		return account, nil
	}
	return aq.GetAccountFresh(ctx, address)
}

// GetAccountFresh queries the chain for the account at the given address,
// bypassing the cache. The fetched account replaces any cached entry.
func (aq *accQuerier) GetAccountFresh(
	ctx context.Context,
	address string,
) (accounttypes.AccountI, error) {
	req := &accounttypes.QueryAccountRequest{Address: address}
	res, err := aq.accountQuerier.Account(ctx, req)
	if err != nil {
		return nil, ErrQueryAccountNotFound.Wrapf("address: %s [%v]", address, err)
	}

	var account accounttypes.AccountI
	if err = queryCodec.UnpackAny(res.Account, &account); err != nil {
		return nil, ErrQueryUnableToDeserializeAccount.Wrapf("address: %s [%v]", address, err)
	}

	aq.accountCache.Set(address, account)

	return account, nil
}
