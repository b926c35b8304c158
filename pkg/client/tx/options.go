package tx

import (
	"time"

	"cosmossdk.io/log"
	cosmostypes "github.com/cosmos/cosmos-sdk/types"

	"github.com/althea-net/deep-space/pkg/client"
	"github.com/althea-net/deep-space/pkg/crypto/keys"
	"github.com/althea-net/deep-space/pkg/signer"
)

// WithSigner sets the signer used to produce transaction signatures. The
// signer's public key determines the signing address.
func WithSigner(txSigner signer.Signer) client.TxClientOption {
	return func(txnClient client.TxClient) {
		txnClient.(*txClient).signer = txSigner
	}
}

// WithSigningKey sets the private key used for signing transactions.
func WithSigningKey(key *keys.PrivateKey) client.TxClientOption {
	return func(txnClient client.TxClient) {
		txnClient.(*txClient).signer = signer.NewKeySigner(key)
	}
}

// WithBech32Prefix sets the human readable prefix addresses are rendered with.
func WithBech32Prefix(prefix string) client.TxClientOption {
	return func(txnClient client.TxClient) {
		txnClient.(*txClient).bech32Prefix = prefix
	}
}

// WithChainID pins the chain ID instead of resolving it from the node on
// first use.
func WithChainID(chainID string) client.TxClientOption {
	return func(txnClient client.TxClient) {
		txnClient.(*txClient).chainID = chainID
	}
}

// WithMemo sets the memo attached to every transaction the client assembles.
func WithMemo(memo string) client.TxClientOption {
	return func(txnClient client.TxClient) {
		txnClient.(*txClient).memo = memo
	}
}

// WithGasPrices sets the gas prices used to derive the fee from the gas limit
// when no fixed fee amount is configured.
func WithGasPrices(gasPrices cosmostypes.DecCoins) client.TxClientOption {
	return func(txnClient client.TxClient) {
		txnClient.(*txClient).gasPrices = gasPrices
	}
}

// WithFeeAmount sets a fixed fee attached to every transaction, taking
// precedence over gas price derivation.
func WithFeeAmount(feeAmount cosmostypes.Coins) client.TxClientOption {
	return func(txnClient client.TxClient) {
		txnClient.(*txClient).feeAmount = feeAmount
	}
}

// WithGasLimit sets a fixed gas limit, skipping simulation.
func WithGasLimit(gasLimit uint64) client.TxClientOption {
	return func(txnClient client.TxClient) {
		txnClient.(*txClient).gasLimit = gasLimit
	}
}

// WithTimeoutHeightOffset sets the number of blocks beyond the current height
// after which an unincluded transaction is discarded by the chain. Zero
// disables the timeout.
func WithTimeoutHeightOffset(offset uint64) client.TxClientOption {
	return func(txnClient client.TxClient) {
		txnClient.(*txClient).timeoutHeightOffset = offset
	}
}

// WithPollInterval sets the interval between consecutive tx status queries
// while awaiting confirmation.
func WithPollInterval(interval time.Duration) client.TxClientOption {
	return func(txnClient client.TxClient) {
		txnClient.(*txClient).pollInterval = interval
	}
}

// WithConfirmationTimeout bounds how long a broadcast transaction is polled
// for before it is reported as timed out. Zero skips confirmation and reports
// accepted transactions as pending.
func WithConfirmationTimeout(timeout time.Duration) client.TxClientOption {
	return func(txnClient client.TxClient) {
		txnClient.(*txClient).confirmationTimeout = timeout
	}
}

// WithUnavailableRetryLimit bounds consecutive transport failures tolerated
// while polling for confirmation.
func WithUnavailableRetryLimit(limit int) client.TxClientOption {
	return func(txnClient client.TxClient) {
		txnClient.(*txClient).unavailableRetryLimit = limit
	}
}

// WithBroadcastRetryLimit bounds broadcast retries, covering transport
// failures and full-mempool rejections.
func WithBroadcastRetryLimit(limit int) client.TxClientOption {
	return func(txnClient client.TxClient) {
		txnClient.(*txClient).broadcastRetryLimit = limit
	}
}

// WithLogger sets the logger used to report submission lifecycle events.
func WithLogger(logger log.Logger) client.TxClientOption {
	return func(txnClient client.TxClient) {
		txnClient.(*txClient).logger = logger
	}
}
