package query

import (
	"context"
	"strings"
	"time"

	"cosmossdk.io/depinject"
	"github.com/cosmos/cosmos-sdk/client/grpc/cmtservice"
	grpc "github.com/cosmos/gogoproto/grpc"

	"github.com/althea-net/deep-space/pkg/client"
)

// statusPollInterval is how often WaitForNextBlock re-checks the chain.
const statusPollInterval = time.Second

var _ client.NodeStatusClient = (*nodeStatusQuerier)(nil)

// nodeStatusQuerier is a wrapper around the cmtservice.ServiceClient that
// enables querying the sync and block production state of the node being
// talked to.
type nodeStatusQuerier struct {
	clientConn     grpc.ClientConn
	serviceQuerier cmtservice.ServiceClient
}

// NewNodeStatusQuerier returns a new instance of a client.NodeStatusClient by
// injecting the dependencies provided by the depinject.Config.
//
// Required dependencies:
// - grpc.ClientConn
func NewNodeStatusQuerier(deps depinject.Config) (client.NodeStatusClient, error) {
	nsq := &nodeStatusQuerier{}

	if err := depinject.Inject(
		deps,
		&nsq.clientConn,
	); err != nil {
		return nil, err
	}

	nsq.serviceQuerier = cmtservice.NewServiceClient(nsq.clientConn)

	return nsq, nil
}

// GetChainID returns the chain id reported in the latest block header.
func (nsq *nodeStatusQuerier) GetChainID(ctx context.Context) (string, error) {
	header, err := nsq.latestHeader(ctx)
	if err != nil {
		return "", err
	}
	return header.ChainID, nil
}

// GetLatestBlockHeight returns the height of the latest committed block.
func (nsq *nodeStatusQuerier) GetLatestBlockHeight(ctx context.Context) (int64, error) {
	header, err := nsq.latestHeader(ctx)
	if err != nil {
		return 0, err
	}
	return header.Height, nil
}

// GetChainStatus reports the block production state of the node. A syncing
// node and a chain waiting for its first block are reported as states, not
// errors, so callers can distinguish them from transport failures.
func (nsq *nodeStatusQuerier) GetChainStatus(ctx context.Context) (client.ChainStatus, error) {
	syncRes, err := nsq.serviceQuerier.GetSyncing(ctx, &cmtservice.GetSyncingRequest{})
	if err != nil {
		return client.ChainStatus{}, ErrQueryNodeStatus.Wrapf("querying sync state [%s]", err)
	}
	if syncRes.Syncing {
		return client.ChainStatus{State: client.ChainStateSyncing}, nil
	}

	blockRes, err := nsq.serviceQuerier.GetLatestBlock(ctx, &cmtservice.GetLatestBlockRequest{})
	if err != nil {
		// A node that has not produced its first block answers with an error
		// naming a nil block rather than an empty response.
		if strings.Contains(err.Error(), "nil Block") {
			return client.ChainStatus{State: client.ChainStateWaitingToStart}, nil
		}
		return client.ChainStatus{}, ErrQueryNodeStatus.Wrapf("querying latest block [%s]", err)
	}

	block := blockRes.GetSdkBlock()
	if block == nil {
		return client.ChainStatus{State: client.ChainStateWaitingToStart}, nil
	}
	if block.LastCommit == nil {
		return client.ChainStatus{}, ErrQueryNodeStatus.Wrap("no commit in latest block")
	}

	return client.ChainStatus{
		State:  client.ChainStateMoving,
		Height: block.LastCommit.Height,
	}, nil
}

// WaitForNextBlock blocks until the chain commits a block beyond the height
// first observed, useful when waiting for an on chain event or some state to
// change. Transient status failures do not exit the wait early.
func (nsq *nodeStatusQuerier) WaitForNextBlock(ctx context.Context, timeout time.Duration) error {
	var lastHeight int64
	deadline := time.Now().Add(timeout)

	for time.Now().Before(deadline) {
		status, err := nsq.GetChainStatus(ctx)
		switch {
		case err != nil:
			// Keep polling.
		case status.State == client.ChainStateSyncing:
			return ErrQueryNodeNotSynced
		case status.State == client.ChainStateWaitingToStart:
			return ErrQueryChainNotRunning
		case lastHeight == 0:
			lastHeight = status.Height
		case status.Height > lastHeight:
			return nil
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(statusPollInterval):
		}
	}

	return ErrQueryNoBlockProduced.Wrapf("waited %s", timeout)
}

// latestHeader returns the latest committed block header, turning a syncing
// node or a chain with no blocks into the matching errors.
func (nsq *nodeStatusQuerier) latestHeader(ctx context.Context) (*cmtservice.Header, error) {
	syncRes, err := nsq.serviceQuerier.GetSyncing(ctx, &cmtservice.GetSyncingRequest{})
	if err != nil {
		return nil, ErrQueryNodeStatus.Wrapf("querying sync state [%s]", err)
	}
	if syncRes.Syncing {
		return nil, ErrQueryNodeNotSynced
	}

	blockRes, err := nsq.serviceQuerier.GetLatestBlock(ctx, &cmtservice.GetLatestBlockRequest{})
	if err != nil {
		if strings.Contains(err.Error(), "nil Block") {
			return nil, ErrQueryChainNotRunning
		}
		return nil, ErrQueryNodeStatus.Wrapf("querying latest block [%s]", err)
	}

	block := blockRes.GetSdkBlock()
	if block == nil {
		return nil, ErrQueryChainNotRunning
	}
	return &block.Header, nil
}
