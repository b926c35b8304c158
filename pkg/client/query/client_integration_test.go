//go:build integration

package query_test

import (
	"context"
	"testing"
	"time"

	"cosmossdk.io/depinject"
	"github.com/stretchr/testify/require"

	"github.com/althea-net/deep-space/pkg/client"
	"github.com/althea-net/deep-space/pkg/client/query"
	"github.com/althea-net/deep-space/pkg/deps/config"
	"github.com/althea-net/deep-space/testutil/testkeys"
)

// localnetGRPCEndpoint is where a localnet node's gRPC service is expected to
// listen when running integration tests.
const localnetGRPCEndpoint = "localhost:9090"

func newLocalnetDeps(t *testing.T) depinject.Config {
	t.Helper()

	deps, err := config.SupplyConfig(context.Background(), []config.SupplierFn{
		config.NewSupplyGRPCConnFn(localnetGRPCEndpoint),
		config.NewSupplyAccountQuerierFn(),
		config.NewSupplyBankQuerierFn(),
		config.NewSupplyNodeStatusQuerierFn(),
	})
	require.NoError(t, err)

	return deps
}

func TestNodeStatusQuerierAgainstLocalnet(t *testing.T) {
	ctx := context.Background()
	deps := newLocalnetDeps(t)

	var statusClient client.NodeStatusClient
	require.NoError(t, depinject.Inject(deps, &statusClient))

	chainID, err := statusClient.GetChainID(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, chainID)

	height, err := statusClient.GetLatestBlockHeight(ctx)
	require.NoError(t, err)
	require.Greater(t, height, int64(0))

	status, err := statusClient.GetChainStatus(ctx)
	require.NoError(t, err)
	require.Equal(t, client.ChainStateMoving, status.State)

	require.NoError(t, statusClient.WaitForNextBlock(ctx, 30*time.Second))
}

func TestAccountQuerierAgainstLocalnet(t *testing.T) {
	ctx := context.Background()
	deps := newLocalnetDeps(t)

	var accountQuerier client.AccountQueryClient
	require.NoError(t, depinject.Inject(deps, &accountQuerier))

	// An address no localnet funds; the lookup must classify as not found
	// rather than surface a raw transport error.
	unfunded := testkeys.MustPreGeneratedAccountAtIndex(9).Bech32

	_, err := accountQuerier.GetAccountFresh(ctx, unfunded)
	require.ErrorIs(t, err, query.ErrQueryAccountNotFound)
}

func TestBankQuerierAgainstLocalnet(t *testing.T) {
	ctx := context.Background()
	deps := newLocalnetDeps(t)

	var bankQuerier client.BankQueryClient
	require.NoError(t, depinject.Inject(deps, &bankQuerier))

	unfunded := testkeys.MustPreGeneratedAccountAtIndex(9).Bech32

	balances, err := bankQuerier.GetAllBalances(ctx, unfunded)
	require.NoError(t, err)
	require.True(t, balances.IsZero())
}
