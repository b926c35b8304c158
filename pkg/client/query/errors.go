package query

import sdkerrors "cosmossdk.io/errors"

var (
	codespace                          = "query"
	ErrQueryAccountNotFound            = sdkerrors.Register(codespace, 1, "account not found")
	ErrQueryUnableToDeserializeAccount = sdkerrors.Register(codespace, 2, "unable to deserialize account")
	ErrQueryBalanceNotFound            = sdkerrors.Register(codespace, 3, "balance not found")
	ErrQueryNodeStatus                 = sdkerrors.Register(codespace, 4, "unable to query node status")
	ErrQueryNodeNotSynced              = sdkerrors.Register(codespace, 5, "node is syncing and cannot provide current chain state")
	ErrQueryChainNotRunning            = sdkerrors.Register(codespace, 6, "chain has not produced its first block yet")
	ErrQueryNoBlockProduced            = sdkerrors.Register(codespace, 7, "no block produced within the wait period")
)
