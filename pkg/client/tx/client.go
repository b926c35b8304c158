package tx

import (
	"context"
	"errors"
	"sync"
	"time"

	"cosmossdk.io/depinject"
	errorsmod "cosmossdk.io/errors"
	"cosmossdk.io/log"
	"cosmossdk.io/math"
	codectypes "github.com/cosmos/cosmos-sdk/codec/types"
	cosmostypes "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"
	grpccodes "google.golang.org/grpc/codes"
	grpcstatus "google.golang.org/grpc/status"

	"github.com/althea-net/deep-space/pkg/client"
	"github.com/althea-net/deep-space/pkg/crypto/keys"
	"github.com/althea-net/deep-space/pkg/retry"
	"github.com/althea-net/deep-space/pkg/signer"
	txbuilder "github.com/althea-net/deep-space/pkg/tx"
)

const (
	// DefaultBech32Prefix is the account address prefix used when none is
	// configured.
	DefaultBech32Prefix = "cosmos"

	// DefaultTimeoutHeightOffset is the number of blocks beyond the current
	// height after which an unincluded transaction is discarded by the chain.
	DefaultTimeoutHeightOffset = 100

	// DefaultConfirmationTimeout bounds how long a broadcast transaction is
	// polled for before it is reported as timed out.
	DefaultConfirmationTimeout = 60 * time.Second

	// defaultPollInterval separates consecutive tx status queries while
	// awaiting confirmation.
	defaultPollInterval = time.Second

	// defaultUnavailableRetryLimit bounds consecutive transport failures
	// tolerated while polling for confirmation.
	defaultUnavailableRetryLimit = 3

	// defaultBroadcastRetryLimit bounds broadcast retries, covering both
	// transport failures and full-mempool rejections.
	defaultBroadcastRetryLimit = 3

	// broadcastRetryDelayMs and broadcastRetryMaxDelayMs shape the
	// exponential backoff between broadcast retries.
	broadcastRetryDelayMs    = 500
	broadcastRetryMaxDelayMs = 8000

	// simulationGasLimit is the gas limit attached to simulation-only
	// transactions. The node does not meter simulated execution against it
	// but rejects transactions without one.
	simulationGasLimit = uint64(9223372036854775807)

	// simulatedGasMultiplier scales simulated gas consumption into the gas
	// limit attached to the broadcast transaction, leaving headroom for
	// chain state drifting between simulation and execution.
	simulatedGasMultiplier = 2
)

var _ client.TxClient = (*txClient)(nil)

// txClient assembles, signs, broadcasts, and confirms transactions for a
// single signing key. Submission outcomes are classified from the node's
// CheckTx verdict; a stale-sequence rejection triggers one resynchronization
// against on-chain state followed by one re-signed retry.
type txClient struct {
	// signer produces signatures over sign doc bytes. Its public key
	// determines the signing address every transaction is submitted under.
	signer signer.Signer

	// signingAddress is the bech32 rendering of the signer's address,
	// computed once during construction.
	signingAddress string

	// bech32Prefix is the human readable prefix addresses are rendered with.
	bech32Prefix string

	// memo is attached to every transaction the client assembles.
	memo string

	// gasPrices is multiplied by the gas limit to derive the fee when no
	// fixed fee amount is configured.
	gasPrices cosmostypes.DecCoins

	// feeAmount, when set, is attached verbatim instead of deriving the fee
	// from gasPrices.
	feeAmount cosmostypes.Coins

	// gasLimit, when nonzero, is used directly and simulation is skipped.
	gasLimit uint64

	// timeoutHeightOffset is added to the latest block height to compute
	// the height after which an unincluded transaction is discarded. Zero
	// disables the timeout.
	timeoutHeightOffset uint64

	// pollInterval separates consecutive tx status queries while awaiting
	// confirmation.
	pollInterval time.Duration

	// confirmationTimeout bounds how long AwaitConfirmation polls before
	// reporting the transaction as timed out. Zero skips confirmation and
	// reports accepted transactions as pending.
	confirmationTimeout time.Duration

	// unavailableRetryLimit bounds consecutive transport failures tolerated
	// while polling for confirmation.
	unavailableRetryLimit int

	// broadcastRetryLimit bounds broadcast retries, covering transport
	// failures and full-mempool rejections. Re-broadcasting identical bytes
	// is safe: a copy already admitted to the mempool answers with a cache
	// hit which is treated as accepted.
	broadcastRetryLimit int

	logger log.Logger

	txCtx          client.TxContext
	statusClient   client.NodeStatusClient
	sequenceClient client.AccountSequenceClient
	accountQuerier client.AccountQueryClient

	// chainIDMu guards lazy resolution of chainID from the node. The
	// resolving network call itself runs with no lock held.
	chainIDMu sync.Mutex
	chainID   string
}

// NewTxClient constructs a new txClient with the given dependencies and
// options and returns it as a client.TxClient interface type.
//
// Required dependencies:
//   - client.TxContext
//   - client.NodeStatusClient
//   - client.AccountSequenceClient
//   - client.AccountQueryClient
//
// Available options:
//   - WithSigner / WithSigningKey (required)
//   - WithBech32Prefix
//   - WithChainID
//   - WithMemo
//   - WithGasPrices
//   - WithFeeAmount
//   - WithGasLimit
//   - WithTimeoutHeightOffset
//   - WithPollInterval
//   - WithConfirmationTimeout
//   - WithUnavailableRetryLimit
//   - WithBroadcastRetryLimit
//   - WithLogger
func NewTxClient(
	deps depinject.Config,
	opts ...client.TxClientOption,
) (client.TxClient, error) {
	txnClient := &txClient{
		bech32Prefix:          DefaultBech32Prefix,
		memo:                  txbuilder.DefaultMemo,
		timeoutHeightOffset:   DefaultTimeoutHeightOffset,
		pollInterval:          defaultPollInterval,
		confirmationTimeout:   DefaultConfirmationTimeout,
		unavailableRetryLimit: defaultUnavailableRetryLimit,
		broadcastRetryLimit:   defaultBroadcastRetryLimit,
	}

	if err := depinject.Inject(
		deps,
		&txnClient.txCtx,
		&txnClient.statusClient,
		&txnClient.sequenceClient,
		&txnClient.accountQuerier,
	); err != nil {
		return nil, err
	}

	for _, opt := range opts {
		opt(txnClient)
	}

	if err := txnClient.validateConfigAndSetDefaults(); err != nil {
		return nil, err
	}

	return txnClient, nil
}

// validateConfigAndSetDefaults ensures a signing key was configured, renders
// the signing address, and fills in any unset defaults.
func (txnClient *txClient) validateConfigAndSetDefaults() error {
	if txnClient.signer == nil {
		return ErrEmptySigningKey
	}

	signingAddress, err := txnClient.signer.PubKey().Address().Bech32(txnClient.bech32Prefix)
	if err != nil {
		return err
	}
	txnClient.signingAddress = signingAddress

	if txnClient.logger == nil {
		txnClient.logger = log.NewNopLogger()
	}

	return nil
}

// SignAndBroadcast submits the given messages as a single transaction signed
// by the client's signing key and waits for it to be included in a block:
//
//  1. Resolve the chain ID and current height from the node.
//  2. Allocate the signing account's next sequence number.
//  3. Assemble and sign the transaction, sizing the gas limit via simulation
//     unless a fixed gas limit is configured.
//  4. Broadcast it and classify the node's CheckTx verdict.
//  5. On a stale-sequence rejection, resynchronize sequence state from the
//     chain, then re-sign and re-broadcast exactly once.
//  6. Poll until the transaction is observed in a block or the confirmation
//     timeout elapses.
func (txnClient *txClient) SignAndBroadcast(
	ctx context.Context,
	msgs ...*codectypes.Any,
) (*client.SubmissionResult, error) {
	chainID, err := txnClient.resolveChainID(ctx)
	if err != nil {
		return nil, err
	}

	result, err := txnClient.submitOnce(ctx, msgs, chainID)
	if err != nil && errors.Is(err, ErrSequenceStale) {
		txnClient.logger.Info(
			"resyncing account sequence after stale rejection",
			"address", txnClient.signingAddress,
		)

		if _, resyncErr := txnClient.sequenceClient.Resync(ctx, txnClient.signingAddress, chainID); resyncErr != nil {
			return nil, resyncErr
		}

		result, err = txnClient.submitOnce(ctx, msgs, chainID)
	}
	if err != nil {
		return result, err
	}

	return txnClient.AwaitConfirmation(ctx, result.TxHash)
}

// SendCoins assembles, signs, and broadcasts a bank send of the given amount
// from the client's signing address to the recipient, then waits for it to be
// included in a block.
func (txnClient *txClient) SendCoins(
	ctx context.Context,
	recipient keys.Address,
	amount cosmostypes.Coin,
) (*client.SubmissionResult, error) {
	recipientBech32, err := recipient.Bech32(txnClient.bech32Prefix)
	if err != nil {
		return nil, err
	}

	msgSend := txbuilder.NewMsgSend(txnClient.signingAddress, recipientBech32, cosmostypes.NewCoins(amount))
	msgAny, err := txbuilder.PackMsg(msgSend)
	if err != nil {
		return nil, err
	}

	return txnClient.SignAndBroadcast(ctx, msgAny)
}

// Submit broadcasts an already signed transaction, retrying transport-level
// failures and full-mempool rejections with backoff, and classifies the
// node's CheckTx verdict. An accepted transaction yields a pending result; a
// rejected one yields a result carrying the node's code and raw log
// alongside the classified error.
func (txnClient *txClient) Submit(
	ctx context.Context,
	signedTx *txbuilder.SignedTx,
) (*client.SubmissionResult, error) {
	res, err := retry.Call(func() (*cosmostypes.TxResponse, error) {
		res, rpcErr := txnClient.txCtx.BroadcastTxSync(ctx, signedTx.Bytes())
		if rpcErr != nil && !isTransientRPCError(rpcErr) {
			return nil, errors.Join(retry.ErrNonRetryable, rpcErr)
		}
		if rpcErr == nil && res != nil && abciCodeIs(res, sdkerrors.ErrMempoolIsFull) {
			// A full mempool drains as blocks commit, so the same bytes
			// are rebroadcast after a backoff.
			return res, ErrBroadcastMempoolFull.Wrapf("tx %s", signedTx.Hash())
		}
		return res, rpcErr
	}, retry.WithExponentialBackoffFn(txnClient.broadcastRetryLimit, broadcastRetryDelayMs, broadcastRetryMaxDelayMs))
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		if res != nil && errors.Is(err, ErrBroadcastMempoolFull) {
			return classifyBroadcastResponse(res)
		}
		return nil, ErrNodeUnavailable.Wrapf("broadcasting tx %s [%s]", signedTx.Hash(), err)
	}
	if res == nil {
		return nil, ErrNodeUnavailable.Wrapf("broadcasting tx %s: empty broadcast response", signedTx.Hash())
	}

	return classifyBroadcastResponse(res)
}

// AwaitConfirmation polls the node until the transaction with the given hash
// is observed in a block, the confirmation timeout elapses, or transport
// failures exceed the unavailable retry limit. A query answering that the
// transaction is not yet indexed resets the failure budget and polling
// continues.
func (txnClient *txClient) AwaitConfirmation(
	ctx context.Context,
	txHash string,
) (*client.SubmissionResult, error) {
	if txnClient.confirmationTimeout <= 0 {
		return &client.SubmissionResult{Status: client.SubmissionPending, TxHash: txHash}, nil
	}

	deadline := time.Now().Add(txnClient.confirmationTimeout)
	consecutiveUnavailable := 0

	for {
		res, err := txnClient.txCtx.QueryTx(ctx, txHash)
		if err != nil && ctx.Err() != nil {
			return nil, ctx.Err()
		}

		switch {
		case err == nil && res != nil:
			return &client.SubmissionResult{
				Status: client.SubmissionIncluded,
				TxHash: txHash,
				Height: res.Height,
				Code:   res.Code,
				RawLog: res.RawLog,
			}, nil
		case err == nil:
			// The node answered but carried no response; the tx is not
			// indexed yet.
			consecutiveUnavailable = 0
		case isTxNotIndexedError(err):
			consecutiveUnavailable = 0
		case isTransientRPCError(err):
			consecutiveUnavailable++
			if consecutiveUnavailable > txnClient.unavailableRetryLimit {
				return nil, ErrNodeUnavailable.Wrapf("querying tx %s [%s]", txHash, err)
			}
		default:
			return nil, ErrConfirmationFailed.Wrapf("tx %s [%s]", txHash, err)
		}

		if time.Now().After(deadline) {
			return &client.SubmissionResult{Status: client.SubmissionTimedOut, TxHash: txHash},
				ErrConfirmationTimeout.Wrapf("tx %s not observed within %s", txHash, txnClient.confirmationTimeout)
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(txnClient.pollInterval):
		}
	}
}

// SimulateGas executes the given messages against current chain state without
// committing them and returns a gas limit scaled from the simulated
// consumption. The signing account's tracked sequence state is not consumed.
func (txnClient *txClient) SimulateGas(
	ctx context.Context,
	msgs ...*codectypes.Any,
) (uint64, error) {
	chainID, err := txnClient.resolveChainID(ctx)
	if err != nil {
		return 0, err
	}

	account, err := txnClient.accountQuerier.GetAccount(ctx, txnClient.signingAddress)
	if err != nil {
		return 0, ErrSequenceUnknownAccount.Wrapf("address: %s [%s]", txnClient.signingAddress, err)
	}

	timeoutHeight, err := txnClient.timeoutHeight(ctx)
	if err != nil {
		return 0, err
	}

	gasUsed, err := txnClient.simulateGas(ctx, msgs, timeoutHeight, chainID, client.AccountSequence{
		AccountNumber: account.GetAccountNumber(),
		Sequence:      account.GetSequence(),
	})
	if err != nil {
		return 0, err
	}

	return gasUsed * simulatedGasMultiplier, nil
}

// submitOnce allocates a sequence number, assembles and signs a transaction
// carrying the given messages, and broadcasts it.
func (txnClient *txClient) submitOnce(
	ctx context.Context,
	msgs []*codectypes.Any,
	chainID string,
) (*client.SubmissionResult, error) {
	seq, err := txnClient.sequenceClient.NextSequence(ctx, txnClient.signingAddress, chainID)
	if err != nil {
		return nil, err
	}

	signedTx, err := txnClient.assembleAndSign(ctx, msgs, chainID, seq)
	if err != nil {
		return nil, err
	}

	return txnClient.Submit(ctx, signedTx)
}

// assembleAndSign builds the transaction carrying the given messages under
// the allocated sequence, sizing its gas limit via simulation unless a fixed
// limit is configured, and signs it.
func (txnClient *txClient) assembleAndSign(
	ctx context.Context,
	msgs []*codectypes.Any,
	chainID string,
	seq client.AccountSequence,
) (*txbuilder.SignedTx, error) {
	timeoutHeight, err := txnClient.timeoutHeight(ctx)
	if err != nil {
		return nil, err
	}

	gasLimit := txnClient.gasLimit
	if gasLimit == 0 {
		gasUsed, simErr := txnClient.simulateGas(ctx, msgs, timeoutHeight, chainID, seq)
		if simErr != nil {
			return nil, simErr
		}
		gasLimit = gasUsed * simulatedGasMultiplier
	}

	unsignedTx := &txbuilder.UnsignedTx{
		Msgs:          msgs,
		Memo:          txnClient.memo,
		TimeoutHeight: timeoutHeight,
		Fee: txbuilder.Fee{
			Amount:   txnClient.feeForGas(gasLimit),
			GasLimit: gasLimit,
		},
	}

	return unsignedTx.SignWithSigner(txnClient.signer, txbuilder.SignerData{
		ChainID:       chainID,
		AccountNumber: seq.AccountNumber,
		Sequence:      seq.Sequence,
	})
}

// simulateGas signs a throwaway copy of the transaction with a maximal gas
// limit and asks the node how much gas executing it consumes.
func (txnClient *txClient) simulateGas(
	ctx context.Context,
	msgs []*codectypes.Any,
	timeoutHeight uint64,
	chainID string,
	seq client.AccountSequence,
) (uint64, error) {
	simTx := &txbuilder.UnsignedTx{
		Msgs:          msgs,
		Memo:          txnClient.memo,
		TimeoutHeight: timeoutHeight,
		Fee:           txbuilder.Fee{GasLimit: simulationGasLimit},
	}

	signedSimTx, err := simTx.SignWithSigner(txnClient.signer, txbuilder.SignerData{
		ChainID:       chainID,
		AccountNumber: seq.AccountNumber,
		Sequence:      seq.Sequence,
	})
	if err != nil {
		return 0, err
	}

	gasUsed, err := txnClient.txCtx.SimulateTx(ctx, signedSimTx.Bytes())
	if err != nil {
		if isTransientRPCError(err) {
			return 0, ErrNodeUnavailable.Wrapf("simulating tx [%s]", err)
		}
		return 0, err
	}

	return gasUsed, nil
}

// feeForGas derives the fee coins attached to a transaction with the given
// gas limit. A configured fixed fee amount takes precedence; otherwise the
// configured gas prices are scaled by the gas limit and rounded up per denom
// so the paid price is never below the configured one.
func (txnClient *txClient) feeForGas(gasLimit uint64) cosmostypes.Coins {
	if txnClient.feeAmount != nil {
		return txnClient.feeAmount
	}
	if txnClient.gasPrices == nil {
		return nil
	}

	gasLimitDec := math.LegacyNewDecFromInt(math.NewIntFromUint64(gasLimit))
	feeDec := txnClient.gasPrices.MulDec(gasLimitDec)

	feeCoins, remainder := feeDec.TruncateDecimal()
	for _, remainderCoin := range remainder {
		if remainderCoin.IsZero() {
			continue
		}
		feeCoins = feeCoins.Add(cosmostypes.NewCoin(remainderCoin.Denom, math.OneInt()))
	}

	return feeCoins
}

// timeoutHeight computes the block height after which an unincluded
// transaction is discarded by the chain. A zero offset disables the timeout.
func (txnClient *txClient) timeoutHeight(ctx context.Context) (uint64, error) {
	if txnClient.timeoutHeightOffset == 0 {
		return 0, nil
	}

	latestHeight, err := txnClient.statusClient.GetLatestBlockHeight(ctx)
	if err != nil {
		return 0, err
	}

	return uint64(latestHeight) + txnClient.timeoutHeightOffset, nil
}

// resolveChainID returns the configured chain ID, resolving it from the node
// on first use. The resolving query runs with no lock held; concurrent
// resolvers defer to whichever value landed first.
func (txnClient *txClient) resolveChainID(ctx context.Context) (string, error) {
	txnClient.chainIDMu.Lock()
	chainID := txnClient.chainID
	txnClient.chainIDMu.Unlock()

	if chainID != "" {
		return chainID, nil
	}

	fetched, err := txnClient.statusClient.GetChainID(ctx)
	if err != nil {
		return "", err
	}

	txnClient.chainIDMu.Lock()
	defer txnClient.chainIDMu.Unlock()

	if txnClient.chainID == "" {
		txnClient.chainID = fetched
	}

	return txnClient.chainID, nil
}

// classifyBroadcastResponse maps the node's CheckTx verdict onto a submission
// result. Acceptance and a mempool cache hit for already-broadcast bytes both
// count as pending; every other nonzero code is a rejection classified by the
// sdk error registry.
func classifyBroadcastResponse(res *cosmostypes.TxResponse) (*client.SubmissionResult, error) {
	result := &client.SubmissionResult{
		Status: client.SubmissionPending,
		TxHash: res.TxHash,
		Code:   res.Code,
		RawLog: res.RawLog,
	}

	if res.Code == 0 || abciCodeIs(res, sdkerrors.ErrTxInMempoolCache) {
		return result, nil
	}

	result.Status = client.SubmissionRejected

	var reason *errorsmod.Error
	switch {
	case abciCodeIs(res, sdkerrors.ErrWrongSequence):
		reason = ErrSequenceStale
	case abciCodeIs(res, sdkerrors.ErrUnauthorized):
		reason = ErrBroadcastInvalidSignature
	case abciCodeIs(res, sdkerrors.ErrInsufficientFee):
		reason = ErrBroadcastInsufficientFee
	case abciCodeIs(res, sdkerrors.ErrMempoolIsFull):
		reason = ErrBroadcastMempoolFull
	default:
		reason = ErrBroadcastRejected
	}

	return result, reason.Wrapf("tx %s: code %d: %s", res.TxHash, res.Code, res.RawLog)
}

// abciCodeIs reports whether the response carries the given registered
// error's codespace and ABCI code.
func abciCodeIs(res *cosmostypes.TxResponse, target *errorsmod.Error) bool {
	return res.Codespace == target.Codespace() && res.Code == target.ABCICode()
}

// isTransientRPCError reports whether the error is a transport-level failure
// worth retrying against the same node, as opposed to a definitive response.
// An error carrying no gRPC status at all is connection breakage rather than
// a node's answer and counts as transient too.
func isTransientRPCError(err error) bool {
	st, ok := grpcstatus.FromError(err)
	if !ok {
		return true
	}
	switch st.Code() {
	case grpccodes.Unavailable, grpccodes.DeadlineExceeded, grpccodes.ResourceExhausted:
		return true
	default:
		return false
	}
}

// isTxNotIndexedError reports whether the error is a node's way of answering
// that a transaction has not been indexed yet. Which code is used varies
// across node versions, so all three observed in the wild are tolerated. Only
// codes from a genuine status qualify: a statusless error reads as Unknown
// but is transport breakage, not a node answer.
func isTxNotIndexedError(err error) bool {
	st, ok := grpcstatus.FromError(err)
	if !ok {
		return false
	}
	switch st.Code() {
	case grpccodes.NotFound, grpccodes.Unknown, grpccodes.InvalidArgument:
		return true
	default:
		return false
	}
}
