package tx

import sdkerrors "cosmossdk.io/errors"

var (
	codespace = "txclient"

	// ErrEmptySigningKey is returned when a TxClient is constructed without a
	// signing key or signer.
	ErrEmptySigningKey = sdkerrors.Register(codespace, 1, "signing key is empty")

	// ErrSequenceUnknownAccount is returned when the signing account does not
	// exist on chain, so no sequence number can be established for it.
	ErrSequenceUnknownAccount = sdkerrors.Register(codespace, 2, "account unknown to the chain")

	// ErrSequenceStale is returned when the node rejects a transaction because
	// its sequence number no longer matches on-chain state.
	ErrSequenceStale = sdkerrors.Register(codespace, 3, "stale account sequence")

	// ErrBroadcastInvalidSignature is returned when the node rejects a
	// transaction during signature verification.
	ErrBroadcastInvalidSignature = sdkerrors.Register(codespace, 4, "node rejected tx signature")

	// ErrBroadcastInsufficientFee is returned when the attached fee does not
	// meet the node's minimum.
	ErrBroadcastInsufficientFee = sdkerrors.Register(codespace, 5, "insufficient fee")

	// ErrBroadcastMempoolFull is returned when the node's mempool cannot
	// accept further transactions.
	ErrBroadcastMempoolFull = sdkerrors.Register(codespace, 6, "node mempool is full")

	// ErrBroadcastRejected is returned when the node rejects a transaction
	// for a reason not covered by a more specific error.
	ErrBroadcastRejected = sdkerrors.Register(codespace, 7, "node rejected tx")

	// ErrNodeUnavailable is returned when the node cannot be reached or the
	// RPC repeatedly fails at the transport level.
	ErrNodeUnavailable = sdkerrors.Register(codespace, 8, "node unavailable")

	// ErrConfirmationTimeout is returned when a broadcast transaction is not
	// observed in a block before the confirmation timeout elapses.
	ErrConfirmationTimeout = sdkerrors.Register(codespace, 9, "tx confirmation timed out")

	// ErrConfirmationFailed is returned when the tx status query fails with an
	// error that will not resolve by polling again.
	ErrConfirmationFailed = sdkerrors.Register(codespace, 10, "tx status query failed")
)
