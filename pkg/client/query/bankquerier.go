package query

import (
	"context"
	"time"

	"cosmossdk.io/depinject"
	cosmostypes "github.com/cosmos/cosmos-sdk/types"
	banktypes "github.com/cosmos/cosmos-sdk/x/bank/types"
	grpc "github.com/cosmos/gogoproto/grpc"

	"github.com/althea-net/deep-space/pkg/cache"
	"github.com/althea-net/deep-space/pkg/cache/memory"
	"github.com/althea-net/deep-space/pkg/client"
)

// balanceCacheTTL bounds how long a cached balance may serve reads. Balances
// can change every block so the window is kept near block time.
const balanceCacheTTL = 6 * time.Second

var _ client.BankQueryClient = (*bankQuerier)(nil)

// bankQuerier is a wrapper around the banktypes.QueryClient that enables the
// querying of onchain balance information.
type bankQuerier struct {
	clientConn  grpc.ClientConn
	bankQuerier banktypes.QueryClient

	// balanceCache caches balances keyed by address and denom.
	balanceCache cache.KeyValueCache[*cosmostypes.Coin]
}

// NewBankQuerier returns a new instance of a client.BankQueryClient by
// injecting the dependencies provided by the depinject.Config.
//
// Required dependencies:
// - grpc.ClientConn
func NewBankQuerier(deps depinject.Config) (client.BankQueryClient, error) {
	bq := &bankQuerier{}

	if err := depinject.Inject(
		deps,
		&bq.clientConn,
	); err != nil {
		return nil, err
	}

	balanceCache, err := memory.NewKeyValueCache[*cosmostypes.Coin](
		memory.WithTTL(balanceCacheTTL),
	)
	if err != nil {
		return nil, err
	}
	bq.balanceCache = balanceCache

	bq.bankQuerier = banktypes.NewQueryClient(bq.clientConn)

	return bq, nil
}

// GetBalance returns the balance of the given denom held by the account at
// the given address.
func (bq *bankQuerier) GetBalance(
	ctx context.Context,
	address, denom string,
) (*cosmostypes.Coin, error) {
	cacheKey := address + "/" + denom
	if balance, found := bq.balanceCache.Get(cacheKey); found {
		return balance, nil
	}

	req := &banktypes.QueryBalanceRequest{Address: address, Denom: denom}
	res, err := bq.bankQuerier.Balance(ctx, req)
	if err != nil {
		return nil, ErrQueryBalanceNotFound.Wrapf("address: %s, denom: %s [%s]", address, denom, err)
	}

	bq.balanceCache.Set(cacheKey, res.Balance)

	return res.Balance, nil
}

// GetAllBalances returns every balance held by the account at the given
// address. Results are not cached, the full set is unbounded.
func (bq *bankQuerier) GetAllBalances(
	ctx context.Context,
	address string,
) (cosmostypes.Coins, error) {
	req := &banktypes.QueryAllBalancesRequest{Address: address}
	res, err := bq.bankQuerier.AllBalances(ctx, req)
	if err != nil {
		return nil, ErrQueryBalanceNotFound.Wrapf("address: %s [%s]", address, err)
	}
	return res.Balances, nil
}
