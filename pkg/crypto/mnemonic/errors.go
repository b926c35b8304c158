package mnemonic

import sdkerrors "cosmossdk.io/errors"

var (
	codespace              = "mnemonic"
	ErrMnemonicWordCount   = sdkerrors.Register(codespace, 1, "invalid mnemonic word count")
	ErrMnemonicUnknownWord = sdkerrors.Register(codespace, 2, "word not in wordlist")
	ErrMnemonicChecksum    = sdkerrors.Register(codespace, 3, "mnemonic checksum mismatch")
	ErrMnemonicEntropy     = sdkerrors.Register(codespace, 4, "invalid entropy size")
)
