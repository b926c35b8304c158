//go:generate mockgen -destination=../../testutil/mockclient/tx_context_mock.go -package=mockclient . TxContext
//go:generate mockgen -destination=../../testutil/mockclient/account_query_client_mock.go -package=mockclient . AccountQueryClient
//go:generate mockgen -destination=../../testutil/mockclient/bank_query_client_mock.go -package=mockclient . BankQueryClient
//go:generate mockgen -destination=../../testutil/mockclient/node_status_client_mock.go -package=mockclient . NodeStatusClient
//go:generate mockgen -destination=../../testutil/mockclient/sequence_client_mock.go -package=mockclient . AccountSequenceClient

package client

import (
	"context"
	"time"

	codectypes "github.com/cosmos/cosmos-sdk/codec/types"
	cosmostypes "github.com/cosmos/cosmos-sdk/types"
	accounttypes "github.com/cosmos/cosmos-sdk/x/auth/types"

	"github.com/althea-net/deep-space/pkg/crypto/keys"
	"github.com/althea-net/deep-space/pkg/tx"
)

// TxClient orchestrates the sender side of the transaction lifecycle: it
// allocates sequence numbers, signs, broadcasts, and waits for inclusion.
type TxClient interface {
	// SignAndBroadcast assembles a transaction from the given messages, signs
	// it with the client's signing key, broadcasts it, and waits for it to be
	// included in a block. A broadcast rejected for a stale sequence number
	// is re-signed against fresh chain state and retried once.
	SignAndBroadcast(ctx context.Context, msgs ...*codectypes.Any) (*SubmissionResult, error)

	// SendCoins assembles, signs, and broadcasts a bank send of the given
	// amount from the client's signing key to the recipient.
	SendCoins(ctx context.Context, recipient keys.Address, amount cosmostypes.Coin) (*SubmissionResult, error)

	// Submit broadcasts an already signed transaction and reports the node's
	// acceptance verdict without waiting for inclusion.
	Submit(ctx context.Context, signedTx *tx.SignedTx) (*SubmissionResult, error)

	// AwaitConfirmation polls the node until the transaction with the given
	// hash is included in a block or the confirmation timeout elapses.
	AwaitConfirmation(ctx context.Context, txHash string) (*SubmissionResult, error)

	// SimulateGas executes the given messages against current chain state
	// without committing them and returns a gas limit sized from the gas
	// the simulation consumed.
	SimulateGas(ctx context.Context, msgs ...*codectypes.Any) (uint64, error)
}

// TxClientOption is an option which is applied to a TxClient during construction.
type TxClientOption func(TxClient)

// TxContext consolidates the operational dependencies required to facilitate
// the wire side of the tx lifecycle: broadcast, status query, and simulation.
type TxContext interface {
	// BroadcastTxSync broadcasts the given tx bytes, waiting for the node's
	// CheckTx verdict but not for inclusion in a block.
	BroadcastTxSync(ctx context.Context, txBytes []byte) (*cosmostypes.TxResponse, error)

	// QueryTx retrieves a tx status based on its hash. Until the tx has been
	// indexed the node responds with a gRPC NotFound error.
	QueryTx(ctx context.Context, txHash string) (*cosmostypes.TxResponse, error)

	// SimulateTx executes the given tx bytes against current chain state
	// without committing them and returns the gas consumed.
	SimulateTx(ctx context.Context, txBytes []byte) (uint64, error)
}

// AccountQueryClient defines an interface that enables the querying of the
// on-chain account information.
type AccountQueryClient interface {
	// GetAccount queries the chain for the details of the account at the
	// given bech32 address. Implementations may serve cached results whose
	// sequence number lags the chain.
	GetAccount(ctx context.Context, address string) (accounttypes.AccountI, error)

	// GetAccountFresh queries the chain for the details of the account at
	// the given bech32 address, bypassing any caching.
	GetAccountFresh(ctx context.Context, address string) (accounttypes.AccountI, error)
}

// BankQueryClient defines an interface that enables the querying of the
// on-chain balance information.
type BankQueryClient interface {
	// GetBalance queries the chain for the balance of the given denom held
	// by the account at the given bech32 address.
	GetBalance(ctx context.Context, address, denom string) (*cosmostypes.Coin, error)

	// GetAllBalances queries the chain for every balance held by the account
	// at the given bech32 address.
	GetAllBalances(ctx context.Context, address string) (cosmostypes.Coins, error)
}

// NodeStatusClient defines an interface that enables the querying of the
// sync and block production state of the node being talked to.
type NodeStatusClient interface {
	// GetChainID returns the chain id reported in the latest block header.
	GetChainID(ctx context.Context) (string, error)

	// GetLatestBlockHeight returns the height of the latest committed block.
	GetLatestBlockHeight(ctx context.Context) (int64, error)

	// GetChainStatus reports whether the chain is reachable, synced, and
	// producing blocks.
	GetChainStatus(ctx context.Context) (ChainStatus, error)

	// WaitForNextBlock blocks until the chain commits a block beyond the
	// height first observed, or the timeout elapses.
	WaitForNextBlock(ctx context.Context, timeout time.Duration) error
}

// AccountSequenceClient hands out transaction sequence numbers for accounts,
// serializing allocation so that concurrent submitters for the same account
// on the same chain receive distinct, consecutive values.
type AccountSequenceClient interface {
	// NextSequence returns the account number and the next unused sequence
	// number for the given account, advancing the local counter. The first
	// call for an account seeds the counter from chain state.
	NextSequence(ctx context.Context, address, chainID string) (AccountSequence, error)

	// Resync discards the local counter for the given account and reseeds it
	// from chain state, recovering after the node reports a sequence
	// mismatch. It returns the refreshed values without consuming them.
	Resync(ctx context.Context, address, chainID string) (AccountSequence, error)
}
