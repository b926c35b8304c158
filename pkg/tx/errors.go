package tx

import sdkerrors "cosmossdk.io/errors"

var (
	codespace           = "tx"
	ErrEmptyTx          = sdkerrors.Register(codespace, 1, "transaction contains no messages")
	ErrMalformedPayload = sdkerrors.Register(codespace, 2, "malformed message payload")
	ErrNoSigners        = sdkerrors.Register(codespace, 3, "transaction has no signers")
)
