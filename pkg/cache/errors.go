package cache

import sdkerrors "cosmossdk.io/errors"

const codespace = "cache"

var (
	ErrKeyValueCacheConfigValidation = sdkerrors.Register(codespace, 1, "invalid key/value cache config")
)
