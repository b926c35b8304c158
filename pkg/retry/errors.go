package retry

import (
	sdkerrors "cosmossdk.io/errors"
)

var (
	codespace = "retry"
	// ErrNonRetryable allows the retry loop to stop retrying due to a non-retryable error.
	ErrNonRetryable = sdkerrors.Register(codespace, 1, "non-retryable error")
)
