package keys

import sdkerrors "cosmossdk.io/errors"

var (
	codespace            = "keys"
	ErrInvalidPrivateKey = sdkerrors.Register(codespace, 1, "invalid private key")
	ErrInvalidPublicKey  = sdkerrors.Register(codespace, 2, "invalid public key")
	ErrInvalidAddress    = sdkerrors.Register(codespace, 3, "invalid address")
	ErrInvalidPrefix     = sdkerrors.Register(codespace, 4, "invalid bech32 prefix")
)
