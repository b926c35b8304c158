package tx_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"cosmossdk.io/depinject"
	"cosmossdk.io/math"
	codectypes "github.com/cosmos/cosmos-sdk/codec/types"
	cosmostypes "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"
	txtypes "github.com/cosmos/cosmos-sdk/types/tx"
	accounttypes "github.com/cosmos/cosmos-sdk/x/auth/types"
	banktypes "github.com/cosmos/cosmos-sdk/x/bank/types"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	grpccodes "google.golang.org/grpc/codes"
	grpcstatus "google.golang.org/grpc/status"

	"github.com/althea-net/deep-space/pkg/client"
	"github.com/althea-net/deep-space/pkg/client/tx"
	"github.com/althea-net/deep-space/pkg/crypto/keys"
	txbuilder "github.com/althea-net/deep-space/pkg/tx"
	"github.com/althea-net/deep-space/testutil/mockclient"
	"github.com/althea-net/deep-space/testutil/testkeys"
)

const (
	testClientChainID = "deep-space-test"
	testClientDenom   = "stake"

	// testTxHash stands in for a broadcast hash in tests which never produce
	// real tx bytes.
	testTxHash = "8E29C904DB0974D3A8A4E35F1F4DED1C21729FD2BB4E85F9B52E7EFDEE538E5C"
)

// testSigningKey returns the deterministic key tests submit under.
func testSigningKey(t *testing.T) *keys.PrivateKey {
	t.Helper()

	return testkeys.MustPreGeneratedAccountAtIndex(0).Key
}

func testSigningAddress(t *testing.T) string {
	t.Helper()

	return testkeys.MustPreGeneratedAccountAtIndex(0).Bech32
}

// txClientMocks bundles the mocked dependencies behind a TxClient under test.
type txClientMocks struct {
	txCtx          *mockclient.MockTxContext
	status         *mockclient.MockNodeStatusClient
	sequenceClient *mockclient.MockAccountSequenceClient
	accountQuerier *mockclient.MockAccountQueryClient
}

// newTxClientWithMocks constructs a TxClient over mocked dependencies with a
// pinned chain id, fixed gas and fee, and fast polling. Per-test options come
// last and take precedence.
func newTxClientWithMocks(t *testing.T, opts ...client.TxClientOption) (client.TxClient, txClientMocks) {
	t.Helper()

	ctrl := gomock.NewController(t)
	mocks := txClientMocks{
		txCtx:          mockclient.NewMockTxContext(ctrl),
		status:         mockclient.NewMockNodeStatusClient(ctrl),
		sequenceClient: mockclient.NewMockAccountSequenceClient(ctrl),
		accountQuerier: mockclient.NewMockAccountQueryClient(ctrl),
	}

	deps := depinject.Supply(
		mocks.txCtx,
		mocks.status,
		mocks.sequenceClient,
		mocks.accountQuerier,
	)

	defaultOpts := []client.TxClientOption{
		tx.WithSigningKey(testSigningKey(t)),
		tx.WithChainID(testClientChainID),
		tx.WithGasLimit(100000),
		tx.WithFeeAmount(cosmostypes.NewCoins(cosmostypes.NewInt64Coin(testClientDenom, 250))),
		tx.WithPollInterval(time.Millisecond),
		tx.WithConfirmationTimeout(time.Second),
	}

	txnClient, err := tx.NewTxClient(deps, append(defaultOpts, opts...)...)
	require.NoError(t, err)

	return txnClient, mocks
}

// testMsgs returns a single bank send message ready for submission.
func testMsgs(t *testing.T) []*codectypes.Any {
	t.Helper()

	recipient := testkeys.MustPreGeneratedAccountAtIndex(1).Bech32

	msgSend := txbuilder.NewMsgSend(
		testSigningAddress(t),
		recipient,
		cosmostypes.NewCoins(cosmostypes.NewInt64Coin(testClientDenom, 1000000)),
	)
	msgAny, err := txbuilder.PackMsg(msgSend)
	require.NoError(t, err)

	return []*codectypes.Any{msgAny}
}

// testSignedTx assembles and signs a transaction outside the client, for
// exercising Submit directly.
func testSignedTx(t *testing.T, sequence uint64) *txbuilder.SignedTx {
	t.Helper()

	unsignedTx := &txbuilder.UnsignedTx{
		Msgs:          testMsgs(t),
		Memo:          txbuilder.DefaultMemo,
		TimeoutHeight: 1100,
		Fee: txbuilder.Fee{
			Amount:   cosmostypes.NewCoins(cosmostypes.NewInt64Coin(testClientDenom, 250)),
			GasLimit: 100000,
		},
	}

	signedTx, err := unsignedTx.Sign(testSigningKey(t), txbuilder.SignerData{
		ChainID:       testClientChainID,
		AccountNumber: 7,
		Sequence:      sequence,
	})
	require.NoError(t, err)

	return signedTx
}

// decodeTx unmarshals broadcast tx bytes into their body and auth info.
func decodeTx(t *testing.T, txBytes []byte) (*txtypes.TxBody, *txtypes.AuthInfo) {
	t.Helper()

	var txRaw txtypes.TxRaw
	require.NoError(t, txRaw.Unmarshal(txBytes))

	var txBody txtypes.TxBody
	require.NoError(t, txBody.Unmarshal(txRaw.BodyBytes))

	var authInfo txtypes.AuthInfo
	require.NoError(t, authInfo.Unmarshal(txRaw.AuthInfoBytes))

	return &txBody, &authInfo
}

// expectBroadcastAccepted primes the tx context to accept one broadcast of a
// tx signed under the given sequence and returns a pointer to the hash the
// node reported back.
func expectBroadcastAccepted(t *testing.T, txCtxMock *mockclient.MockTxContext, wantSequence uint64) *string {
	t.Helper()

	broadcastHash := new(string)
	txCtxMock.EXPECT().
		BroadcastTxSync(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, txBytes []byte) (*cosmostypes.TxResponse, error) {
			_, authInfo := decodeTx(t, txBytes)
			require.Equal(t, wantSequence, authInfo.SignerInfos[0].Sequence)

			*broadcastHash = txbuilder.Hash(txBytes)
			return &cosmostypes.TxResponse{TxHash: *broadcastHash}, nil
		}).
		Times(1)

	return broadcastHash
}

// expectTxIncluded primes the tx context to answer one status query with
// inclusion at the given height.
func expectTxIncluded(t *testing.T, txCtxMock *mockclient.MockTxContext, broadcastHash *string, height int64) {
	t.Helper()

	txCtxMock.EXPECT().
		QueryTx(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, txHash string) (*cosmostypes.TxResponse, error) {
			require.Equal(t, *broadcastHash, txHash)
			return &cosmostypes.TxResponse{TxHash: txHash, Height: height}, nil
		}).
		Times(1)
}

func TestNewTxClientRequiresSigningKey(t *testing.T) {
	ctrl := gomock.NewController(t)
	deps := depinject.Supply(
		mockclient.NewMockTxContext(ctrl),
		mockclient.NewMockNodeStatusClient(ctrl),
		mockclient.NewMockAccountSequenceClient(ctrl),
		mockclient.NewMockAccountQueryClient(ctrl),
	)

	_, err := tx.NewTxClient(deps)
	require.ErrorIs(t, err, tx.ErrEmptySigningKey)
}

func TestSignAndBroadcastSucceeds(t *testing.T) {
	ctx := context.Background()
	txnClient, mocks := newTxClientWithMocks(t)

	mocks.status.EXPECT().
		GetLatestBlockHeight(gomock.Any()).
		Return(int64(1000), nil).
		Times(1)
	mocks.sequenceClient.EXPECT().
		NextSequence(gomock.Any(), testSigningAddress(t), testClientChainID).
		Return(client.AccountSequence{AccountNumber: 7, Sequence: 42}, nil).
		Times(1)

	broadcastHash := new(string)
	mocks.txCtx.EXPECT().
		BroadcastTxSync(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, txBytes []byte) (*cosmostypes.TxResponse, error) {
			txBody, authInfo := decodeTx(t, txBytes)

			require.Equal(t, txbuilder.DefaultMemo, txBody.Memo)
			require.Equal(t, uint64(1100), txBody.TimeoutHeight)
			require.Len(t, txBody.Messages, 1)
			require.Equal(t, txbuilder.MsgSendTypeURL, txBody.Messages[0].TypeUrl)

			require.Equal(t, uint64(42), authInfo.SignerInfos[0].Sequence)
			require.Equal(t, uint64(100000), authInfo.Fee.GasLimit)
			require.Equal(t, "250stake", authInfo.Fee.Amount.String())

			*broadcastHash = txbuilder.Hash(txBytes)
			return &cosmostypes.TxResponse{TxHash: *broadcastHash}, nil
		}).
		Times(1)

	expectTxIncluded(t, mocks.txCtx, broadcastHash, 1001)

	result, err := txnClient.SignAndBroadcast(ctx, testMsgs(t)...)
	require.NoError(t, err)
	require.Equal(t, client.SubmissionIncluded, result.Status)
	require.Equal(t, *broadcastHash, result.TxHash)
	require.Equal(t, int64(1001), result.Height)
}

func TestSignAndBroadcastRecoversStaleSequence(t *testing.T) {
	ctx := context.Background()
	txnClient, mocks := newTxClientWithMocks(t)
	signingAddress := testSigningAddress(t)

	mocks.status.EXPECT().
		GetLatestBlockHeight(gomock.Any()).
		Return(int64(1000), nil).
		Times(2)

	gomock.InOrder(
		mocks.sequenceClient.EXPECT().
			NextSequence(gomock.Any(), signingAddress, testClientChainID).
			Return(client.AccountSequence{AccountNumber: 7, Sequence: 41}, nil),
		mocks.sequenceClient.EXPECT().
			Resync(gomock.Any(), signingAddress, testClientChainID).
			Return(client.AccountSequence{AccountNumber: 7, Sequence: 45}, nil),
		mocks.sequenceClient.EXPECT().
			NextSequence(gomock.Any(), signingAddress, testClientChainID).
			Return(client.AccountSequence{AccountNumber: 7, Sequence: 45}, nil),
	)

	// The first broadcast is rejected for the stale sequence; the re-signed
	// retry must carry the refreshed one.
	mocks.txCtx.EXPECT().
		BroadcastTxSync(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, txBytes []byte) (*cosmostypes.TxResponse, error) {
			_, authInfo := decodeTx(t, txBytes)
			require.Equal(t, uint64(41), authInfo.SignerInfos[0].Sequence)

			return &cosmostypes.TxResponse{
				Code:      sdkerrors.ErrWrongSequence.ABCICode(),
				Codespace: sdkerrors.RootCodespace,
				RawLog:    "account sequence mismatch",
				TxHash:    txbuilder.Hash(txBytes),
			}, nil
		}).
		Times(1)

	broadcastHash := expectBroadcastAccepted(t, mocks.txCtx, 45)
	expectTxIncluded(t, mocks.txCtx, broadcastHash, 1002)

	result, err := txnClient.SignAndBroadcast(ctx, testMsgs(t)...)
	require.NoError(t, err)
	require.Equal(t, client.SubmissionIncluded, result.Status)
	require.Equal(t, *broadcastHash, result.TxHash)
}

func TestSignAndBroadcastStaleSequenceTwiceFails(t *testing.T) {
	ctx := context.Background()
	txnClient, mocks := newTxClientWithMocks(t)
	signingAddress := testSigningAddress(t)

	mocks.status.EXPECT().
		GetLatestBlockHeight(gomock.Any()).
		Return(int64(1000), nil).
		Times(2)

	gomock.InOrder(
		mocks.sequenceClient.EXPECT().
			NextSequence(gomock.Any(), signingAddress, testClientChainID).
			Return(client.AccountSequence{AccountNumber: 7, Sequence: 41}, nil),
		mocks.sequenceClient.EXPECT().
			Resync(gomock.Any(), signingAddress, testClientChainID).
			Return(client.AccountSequence{AccountNumber: 7, Sequence: 45}, nil),
		mocks.sequenceClient.EXPECT().
			NextSequence(gomock.Any(), signingAddress, testClientChainID).
			Return(client.AccountSequence{AccountNumber: 7, Sequence: 45}, nil),
	)

	// The node keeps rejecting for a stale sequence: recovery is attempted
	// exactly once, then the rejection surfaces.
	mocks.txCtx.EXPECT().
		BroadcastTxSync(gomock.Any(), gomock.Any()).
		Return(&cosmostypes.TxResponse{
			Code:      sdkerrors.ErrWrongSequence.ABCICode(),
			Codespace: sdkerrors.RootCodespace,
			RawLog:    "account sequence mismatch",
			TxHash:    testTxHash,
		}, nil).
		Times(2)

	result, err := txnClient.SignAndBroadcast(ctx, testMsgs(t)...)
	require.ErrorIs(t, err, tx.ErrSequenceStale)
	require.Equal(t, client.SubmissionRejected, result.Status)
	require.Equal(t, sdkerrors.ErrWrongSequence.ABCICode(), result.Code)
}

func TestSubmitClassifiesRejections(t *testing.T) {
	tests := []struct {
		desc        string
		code        uint32
		codespace   string
		expectedErr error
	}{
		{
			desc:        "wrong sequence",
			code:        sdkerrors.ErrWrongSequence.ABCICode(),
			codespace:   sdkerrors.RootCodespace,
			expectedErr: tx.ErrSequenceStale,
		},
		{
			desc:        "signature verification failure",
			code:        sdkerrors.ErrUnauthorized.ABCICode(),
			codespace:   sdkerrors.RootCodespace,
			expectedErr: tx.ErrBroadcastInvalidSignature,
		},
		{
			desc:        "insufficient fee",
			code:        sdkerrors.ErrInsufficientFee.ABCICode(),
			codespace:   sdkerrors.RootCodespace,
			expectedErr: tx.ErrBroadcastInsufficientFee,
		},
		{
			desc:        "out of gas is a generic rejection",
			code:        sdkerrors.ErrOutOfGas.ABCICode(),
			codespace:   sdkerrors.RootCodespace,
			expectedErr: tx.ErrBroadcastRejected,
		},
		{
			desc: "module codespace is a generic rejection",
			// The same numeric code under a module codespace must not be
			// mistaken for a sequence mismatch.
			code:        sdkerrors.ErrWrongSequence.ABCICode(),
			codespace:   "bank",
			expectedErr: tx.ErrBroadcastRejected,
		},
	}

	for _, test := range tests {
		t.Run(test.desc, func(t *testing.T) {
			ctx := context.Background()
			txnClient, mocks := newTxClientWithMocks(t)

			mocks.txCtx.EXPECT().
				BroadcastTxSync(gomock.Any(), gomock.Any()).
				Return(&cosmostypes.TxResponse{
					Code:      test.code,
					Codespace: test.codespace,
					RawLog:    test.desc,
					TxHash:    testTxHash,
				}, nil).
				Times(1)

			result, err := txnClient.Submit(ctx, testSignedTx(t, 42))
			require.ErrorIs(t, err, test.expectedErr)
			require.Equal(t, client.SubmissionRejected, result.Status)
			require.Equal(t, test.code, result.Code)
			require.Equal(t, test.desc, result.RawLog)
		})
	}
}

func TestSubmitTreatsMempoolCacheHitAsPending(t *testing.T) {
	ctx := context.Background()
	txnClient, mocks := newTxClientWithMocks(t)

	// A duplicate broadcast of bytes the mempool already holds is not a
	// failure: the original copy is still in flight.
	mocks.txCtx.EXPECT().
		BroadcastTxSync(gomock.Any(), gomock.Any()).
		Return(&cosmostypes.TxResponse{
			Code:      sdkerrors.ErrTxInMempoolCache.ABCICode(),
			Codespace: sdkerrors.RootCodespace,
			RawLog:    "tx already in mempool cache",
			TxHash:    testTxHash,
		}, nil).
		Times(1)

	result, err := txnClient.Submit(ctx, testSignedTx(t, 42))
	require.NoError(t, err)
	require.Equal(t, client.SubmissionPending, result.Status)
	require.Equal(t, testTxHash, result.TxHash)
}

func TestSubmitRetriesWhileMempoolIsFull(t *testing.T) {
	ctx := context.Background()
	txnClient, mocks := newTxClientWithMocks(t, tx.WithBroadcastRetryLimit(0))

	signedTx := testSignedTx(t, 42)

	// A full mempool is transient: rebroadcasting the same bytes lands
	// once a block drains it.
	mocks.txCtx.EXPECT().
		BroadcastTxSync(gomock.Any(), gomock.Any()).
		Return(&cosmostypes.TxResponse{
			Code:      sdkerrors.ErrMempoolIsFull.ABCICode(),
			Codespace: sdkerrors.RootCodespace,
			RawLog:    "mempool is full",
			TxHash:    signedTx.Hash(),
		}, nil).
		Times(1)
	mocks.txCtx.EXPECT().
		BroadcastTxSync(gomock.Any(), gomock.Any()).
		Return(&cosmostypes.TxResponse{TxHash: signedTx.Hash()}, nil).
		Times(1)

	result, err := txnClient.Submit(ctx, signedTx)
	require.NoError(t, err)
	require.Equal(t, client.SubmissionPending, result.Status)
	require.Equal(t, signedTx.Hash(), result.TxHash)
}

func TestSubmitReportsMempoolFullAfterRetryLimit(t *testing.T) {
	ctx := context.Background()
	txnClient, mocks := newTxClientWithMocks(t, tx.WithBroadcastRetryLimit(0))

	// The initial attempt plus the single retry the limit allows, both
	// answered with a full mempool.
	mocks.txCtx.EXPECT().
		BroadcastTxSync(gomock.Any(), gomock.Any()).
		Return(&cosmostypes.TxResponse{
			Code:      sdkerrors.ErrMempoolIsFull.ABCICode(),
			Codespace: sdkerrors.RootCodespace,
			RawLog:    "mempool is full",
			TxHash:    testTxHash,
		}, nil).
		Times(2)

	result, err := txnClient.Submit(ctx, testSignedTx(t, 42))
	require.ErrorIs(t, err, tx.ErrBroadcastMempoolFull)
	require.Equal(t, client.SubmissionRejected, result.Status)
	require.Equal(t, sdkerrors.ErrMempoolIsFull.ABCICode(), result.Code)
	require.Equal(t, "mempool is full", result.RawLog)
}

func TestSubmitRetriesTransientBroadcastFailures(t *testing.T) {
	ctx := context.Background()
	txnClient, mocks := newTxClientWithMocks(t)

	signedTx := testSignedTx(t, 42)

	mocks.txCtx.EXPECT().
		BroadcastTxSync(gomock.Any(), gomock.Any()).
		Return(nil, grpcstatus.Error(grpccodes.Unavailable, "connection refused")).
		Times(1)
	mocks.txCtx.EXPECT().
		BroadcastTxSync(gomock.Any(), gomock.Any()).
		Return(&cosmostypes.TxResponse{TxHash: signedTx.Hash()}, nil).
		Times(1)

	result, err := txnClient.Submit(ctx, signedTx)
	require.NoError(t, err)
	require.Equal(t, client.SubmissionPending, result.Status)
	require.Equal(t, signedTx.Hash(), result.TxHash)
}

func TestSubmitRetriesStatuslessBroadcastErrors(t *testing.T) {
	ctx := context.Background()
	txnClient, mocks := newTxClientWithMocks(t)

	signedTx := testSignedTx(t, 42)

	// An error carrying no gRPC status is connection breakage and is retried
	// like any other transport failure.
	gomock.InOrder(
		mocks.txCtx.EXPECT().
			BroadcastTxSync(gomock.Any(), gomock.Any()).
			Return(nil, errors.New("connection reset by peer")),
		mocks.txCtx.EXPECT().
			BroadcastTxSync(gomock.Any(), gomock.Any()).
			Return(&cosmostypes.TxResponse{TxHash: signedTx.Hash()}, nil),
	)

	result, err := txnClient.Submit(ctx, signedTx)
	require.NoError(t, err)
	require.Equal(t, client.SubmissionPending, result.Status)
	require.Equal(t, signedTx.Hash(), result.TxHash)
}

func TestSubmitReportsNodeUnavailableAfterRetryLimit(t *testing.T) {
	ctx := context.Background()
	txnClient, mocks := newTxClientWithMocks(t, tx.WithBroadcastRetryLimit(0))

	// The initial attempt plus the single retry the limit allows.
	mocks.txCtx.EXPECT().
		BroadcastTxSync(gomock.Any(), gomock.Any()).
		Return(nil, grpcstatus.Error(grpccodes.Unavailable, "connection refused")).
		Times(2)

	_, err := txnClient.Submit(ctx, testSignedTx(t, 42))
	require.ErrorIs(t, err, tx.ErrNodeUnavailable)
}

func TestSubmitDoesNotRetryDefinitiveRPCErrors(t *testing.T) {
	ctx := context.Background()
	txnClient, mocks := newTxClientWithMocks(t)

	mocks.txCtx.EXPECT().
		BroadcastTxSync(gomock.Any(), gomock.Any()).
		Return(nil, grpcstatus.Error(grpccodes.Internal, "ante handler failure")).
		Times(1)

	_, err := txnClient.Submit(ctx, testSignedTx(t, 42))
	require.ErrorIs(t, err, tx.ErrNodeUnavailable)
}

func TestAwaitConfirmationTimesOut(t *testing.T) {
	txnClient, mocks := newTxClientWithMocks(t,
		tx.WithConfirmationTimeout(25*time.Millisecond),
	)

	mocks.txCtx.EXPECT().
		QueryTx(gomock.Any(), testTxHash).
		Return(nil, grpcstatus.Error(grpccodes.NotFound, "tx not found")).
		MinTimes(1)

	result, err := txnClient.AwaitConfirmation(context.Background(), testTxHash)
	require.ErrorIs(t, err, tx.ErrConfirmationTimeout)
	require.Equal(t, client.SubmissionTimedOut, result.Status)
	require.Equal(t, testTxHash, result.TxHash)
}

func TestAwaitConfirmationToleratesNotIndexedAnswers(t *testing.T) {
	txnClient, mocks := newTxClientWithMocks(t)

	// Nodes answer with differing codes while a tx is not indexed yet; all
	// of them keep the poll loop going.
	gomock.InOrder(
		mocks.txCtx.EXPECT().
			QueryTx(gomock.Any(), testTxHash).
			Return(nil, grpcstatus.Error(grpccodes.NotFound, "tx not found")),
		mocks.txCtx.EXPECT().
			QueryTx(gomock.Any(), testTxHash).
			Return(nil, grpcstatus.Error(grpccodes.InvalidArgument, "unknown tx hash")),
		mocks.txCtx.EXPECT().
			QueryTx(gomock.Any(), testTxHash).
			Return(&cosmostypes.TxResponse{TxHash: testTxHash, Height: 1001}, nil),
	)

	result, err := txnClient.AwaitConfirmation(context.Background(), testTxHash)
	require.NoError(t, err)
	require.Equal(t, client.SubmissionIncluded, result.Status)
	require.Equal(t, int64(1001), result.Height)
}

func TestAwaitConfirmationFailsAfterUnavailableLimit(t *testing.T) {
	txnClient, mocks := newTxClientWithMocks(t,
		tx.WithUnavailableRetryLimit(2),
	)

	mocks.txCtx.EXPECT().
		QueryTx(gomock.Any(), testTxHash).
		Return(nil, grpcstatus.Error(grpccodes.Unavailable, "connection refused")).
		Times(3)

	_, err := txnClient.AwaitConfirmation(context.Background(), testTxHash)
	require.ErrorIs(t, err, tx.ErrNodeUnavailable)
}

func TestAwaitConfirmationFailsFastOnStatuslessErrors(t *testing.T) {
	txnClient, mocks := newTxClientWithMocks(t,
		tx.WithUnavailableRetryLimit(0),
	)

	// An error without any gRPC status is transport breakage, not a node
	// answer: it consumes the failure budget instead of polling until the
	// deadline.
	mocks.txCtx.EXPECT().
		QueryTx(gomock.Any(), testTxHash).
		Return(nil, errors.New("connection reset by peer")).
		Times(1)

	_, err := txnClient.AwaitConfirmation(context.Background(), testTxHash)
	require.ErrorIs(t, err, tx.ErrNodeUnavailable)
}

func TestAwaitConfirmationTreatsStatusUnknownAsNotIndexed(t *testing.T) {
	txnClient, mocks := newTxClientWithMocks(t,
		tx.WithUnavailableRetryLimit(0),
	)

	// A genuine Unknown status is a node answering that the tx is not
	// indexed yet. With a zero failure budget the poll only survives it
	// because the answer resets the budget.
	gomock.InOrder(
		mocks.txCtx.EXPECT().
			QueryTx(gomock.Any(), testTxHash).
			Return(nil, grpcstatus.Error(grpccodes.Unknown, "tx not found")),
		mocks.txCtx.EXPECT().
			QueryTx(gomock.Any(), testTxHash).
			Return(&cosmostypes.TxResponse{TxHash: testTxHash, Height: 1001}, nil),
	)

	result, err := txnClient.AwaitConfirmation(context.Background(), testTxHash)
	require.NoError(t, err)
	require.Equal(t, client.SubmissionIncluded, result.Status)
	require.Equal(t, int64(1001), result.Height)
}

func TestAwaitConfirmationZeroTimeoutReportsPending(t *testing.T) {
	txnClient, _ := newTxClientWithMocks(t, tx.WithConfirmationTimeout(0))

	result, err := txnClient.AwaitConfirmation(context.Background(), testTxHash)
	require.NoError(t, err)
	require.Equal(t, client.SubmissionPending, result.Status)
	require.Equal(t, testTxHash, result.TxHash)
}

func TestSignAndBroadcastSimulatesGasAndDerivesFee(t *testing.T) {
	ctx := context.Background()
	gasPrices := cosmostypes.NewDecCoins(
		cosmostypes.NewDecCoinFromDec(testClientDenom, math.LegacyMustNewDecFromStr("0.025")),
	)
	txnClient, mocks := newTxClientWithMocks(t,
		tx.WithGasLimit(0),
		tx.WithFeeAmount(nil),
		tx.WithGasPrices(gasPrices),
	)

	mocks.status.EXPECT().
		GetLatestBlockHeight(gomock.Any()).
		Return(int64(1000), nil).
		Times(1)
	mocks.sequenceClient.EXPECT().
		NextSequence(gomock.Any(), testSigningAddress(t), testClientChainID).
		Return(client.AccountSequence{AccountNumber: 7, Sequence: 42}, nil).
		Times(1)

	mocks.txCtx.EXPECT().
		SimulateTx(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, txBytes []byte) (uint64, error) {
			_, authInfo := decodeTx(t, txBytes)
			// The simulation tx is signed under the same sequence with a
			// maximal gas limit.
			require.Equal(t, uint64(42), authInfo.SignerInfos[0].Sequence)
			require.Equal(t, uint64(9223372036854775807), authInfo.Fee.GasLimit)

			return 80000, nil
		}).
		Times(1)

	broadcastHash := new(string)
	mocks.txCtx.EXPECT().
		BroadcastTxSync(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, txBytes []byte) (*cosmostypes.TxResponse, error) {
			_, authInfo := decodeTx(t, txBytes)
			// Simulated consumption doubled, fee derived from gas prices.
			require.Equal(t, uint64(160000), authInfo.Fee.GasLimit)
			require.Equal(t, "4000stake", authInfo.Fee.Amount.String())

			*broadcastHash = txbuilder.Hash(txBytes)
			return &cosmostypes.TxResponse{TxHash: *broadcastHash}, nil
		}).
		Times(1)

	expectTxIncluded(t, mocks.txCtx, broadcastHash, 1001)

	result, err := txnClient.SignAndBroadcast(ctx, testMsgs(t)...)
	require.NoError(t, err)
	require.Equal(t, client.SubmissionIncluded, result.Status)
}

func TestSimulateGasDoesNotConsumeSequence(t *testing.T) {
	ctx := context.Background()
	txnClient, mocks := newTxClientWithMocks(t)

	mocks.accountQuerier.EXPECT().
		GetAccount(gomock.Any(), testSigningAddress(t)).
		Return(&accounttypes.BaseAccount{
			Address:       testSigningAddress(t),
			AccountNumber: 7,
			Sequence:      42,
		}, nil).
		Times(1)
	mocks.status.EXPECT().
		GetLatestBlockHeight(gomock.Any()).
		Return(int64(1000), nil).
		Times(1)
	mocks.txCtx.EXPECT().
		SimulateTx(gomock.Any(), gomock.Any()).
		Return(uint64(50000), nil).
		Times(1)

	// No sequence client expectations are registered: an allocation during
	// simulation would fail the test.
	gasLimit, err := txnClient.SimulateGas(ctx, testMsgs(t)...)
	require.NoError(t, err)
	require.Equal(t, uint64(100000), gasLimit)
}

func TestSendCoinsSubmitsBankSend(t *testing.T) {
	ctx := context.Background()
	txnClient, mocks := newTxClientWithMocks(t)

	recipientAccount := testkeys.MustPreGeneratedAccountAtIndex(1)

	mocks.status.EXPECT().
		GetLatestBlockHeight(gomock.Any()).
		Return(int64(1000), nil).
		Times(1)
	mocks.sequenceClient.EXPECT().
		NextSequence(gomock.Any(), testSigningAddress(t), testClientChainID).
		Return(client.AccountSequence{AccountNumber: 7, Sequence: 42}, nil).
		Times(1)

	broadcastHash := new(string)
	mocks.txCtx.EXPECT().
		BroadcastTxSync(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, txBytes []byte) (*cosmostypes.TxResponse, error) {
			txBody, _ := decodeTx(t, txBytes)
			require.Len(t, txBody.Messages, 1)
			require.Equal(t, txbuilder.MsgSendTypeURL, txBody.Messages[0].TypeUrl)

			var msgSend banktypes.MsgSend
			require.NoError(t, msgSend.Unmarshal(txBody.Messages[0].Value))
			require.Equal(t, testSigningAddress(t), msgSend.FromAddress)
			require.Equal(t, recipientAccount.Bech32, msgSend.ToAddress)
			require.Equal(t, "25stake", msgSend.Amount.String())

			*broadcastHash = txbuilder.Hash(txBytes)
			return &cosmostypes.TxResponse{TxHash: *broadcastHash}, nil
		}).
		Times(1)

	expectTxIncluded(t, mocks.txCtx, broadcastHash, 1001)

	result, err := txnClient.SendCoins(ctx, recipientAccount.Address, cosmostypes.NewInt64Coin(testClientDenom, 25))
	require.NoError(t, err)
	require.Equal(t, client.SubmissionIncluded, result.Status)
}

func TestChainIDResolvedOnceFromNode(t *testing.T) {
	ctx := context.Background()
	txnClient, mocks := newTxClientWithMocks(t, tx.WithChainID(""))
	signingAddress := testSigningAddress(t)

	// Resolved lazily on first use, then cached for the second submission.
	mocks.status.EXPECT().
		GetChainID(gomock.Any()).
		Return(testClientChainID, nil).
		Times(1)
	mocks.status.EXPECT().
		GetLatestBlockHeight(gomock.Any()).
		Return(int64(1000), nil).
		Times(2)

	// The resolved chain id flows into sequence allocation.
	gomock.InOrder(
		mocks.sequenceClient.EXPECT().
			NextSequence(gomock.Any(), signingAddress, testClientChainID).
			Return(client.AccountSequence{AccountNumber: 7, Sequence: 42}, nil),
		mocks.sequenceClient.EXPECT().
			NextSequence(gomock.Any(), signingAddress, testClientChainID).
			Return(client.AccountSequence{AccountNumber: 7, Sequence: 43}, nil),
	)

	firstHash := expectBroadcastAccepted(t, mocks.txCtx, 42)
	expectTxIncluded(t, mocks.txCtx, firstHash, 1001)

	result, err := txnClient.SignAndBroadcast(ctx, testMsgs(t)...)
	require.NoError(t, err)
	require.Equal(t, client.SubmissionIncluded, result.Status)

	secondHash := expectBroadcastAccepted(t, mocks.txCtx, 43)
	expectTxIncluded(t, mocks.txCtx, secondHash, 1002)

	result, err = txnClient.SignAndBroadcast(ctx, testMsgs(t)...)
	require.NoError(t, err)
	require.Equal(t, client.SubmissionIncluded, result.Status)
}
