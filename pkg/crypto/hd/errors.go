package hd

import sdkerrors "cosmossdk.io/errors"

var (
	codespace             = "hd"
	ErrInvalidSeed        = sdkerrors.Register(codespace, 1, "invalid seed length")
	ErrInvalidPath        = sdkerrors.Register(codespace, 2, "invalid derivation path")
	ErrDeriveInvalidChild = sdkerrors.Register(codespace, 3, "derived key material out of range")
)
