package tx

import (
	"context"

	"cosmossdk.io/depinject"
	cosmostypes "github.com/cosmos/cosmos-sdk/types"
	txtypes "github.com/cosmos/cosmos-sdk/types/tx"
	grpc "github.com/cosmos/gogoproto/grpc"

	"github.com/althea-net/deep-space/pkg/client"
)

var _ client.TxContext = (*cosmosTxContext)(nil)

// cosmosTxContext is an implementation of the client.TxContext interface which
// drives the tx lifecycle RPCs of a cosmos-sdk node over a shared gRPC
// connection: broadcast, status query, and simulation.
type cosmosTxContext struct {
	clientConn  grpc.ClientConn
	txSvcClient txtypes.ServiceClient
}

// NewTxContext initializes a new cosmosTxContext with the given dependencies.
// It uses depinject to populate its members and returns a client.TxContext
// interface type.
//
// Required dependencies:
//   - grpc.ClientConn
func NewTxContext(deps depinject.Config) (client.TxContext, error) {
	txCtx := &cosmosTxContext{}

	if err := depinject.Inject(
		deps,
		&txCtx.clientConn,
	); err != nil {
		return nil, err
	}

	txCtx.txSvcClient = txtypes.NewServiceClient(txCtx.clientConn)

	return txCtx, nil
}

// BroadcastTxSync broadcasts the given tx bytes to the network, blocking until
// the check-tx ABCI operation completes and returns a TxResponse of the
// transaction status at that point in time. The node's acceptance verdict is
// carried in the response code; inclusion in a block is not awaited.
func (txCtx *cosmosTxContext) BroadcastTxSync(
	ctx context.Context,
	txBytes []byte,
) (*cosmostypes.TxResponse, error) {
	res, err := txCtx.txSvcClient.BroadcastTx(ctx, &txtypes.BroadcastTxRequest{
		TxBytes: txBytes,
		Mode:    txtypes.BroadcastMode_BROADCAST_MODE_SYNC,
	})
	if err != nil {
		return nil, err
	}

	return res.TxResponse, nil
}

// QueryTx queries the transaction with the given hex-encoded hash. A non-nil
// response means the transaction has been included in a block; until then the
// node answers with a NotFound RPC error which is surfaced to the caller.
func (txCtx *cosmosTxContext) QueryTx(
	ctx context.Context,
	txHash string,
) (*cosmostypes.TxResponse, error) {
	res, err := txCtx.txSvcClient.GetTx(ctx, &txtypes.GetTxRequest{Hash: txHash})
	if err != nil {
		return nil, err
	}

	return res.TxResponse, nil
}

// SimulateTx executes the given tx bytes against current chain state without
// committing them and returns the amount of gas the execution consumed.
func (txCtx *cosmosTxContext) SimulateTx(
	ctx context.Context,
	txBytes []byte,
) (uint64, error) {
	res, err := txCtx.txSvcClient.Simulate(ctx, &txtypes.SimulateRequest{TxBytes: txBytes})
	if err != nil {
		return 0, err
	}

	return res.GasInfo.GasUsed, nil
}
