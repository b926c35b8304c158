package tx

// Type URLs for common Msg implementations.
const (
	MsgSendTypeURL = "/cosmos.bank.v1beta1.MsgSend"

	Secp256k1PubKeyTypeURL = "/cosmos.crypto.secp256k1.PubKey"

	MsgDelegateTypeURL        = "/cosmos.staking.v1beta1.MsgDelegate"
	MsgUndelegateTypeURL      = "/cosmos.staking.v1beta1.MsgUndelegate"
	MsgBeginRedelegateTypeURL = "/cosmos.staking.v1beta1.MsgBeginRedelegate"

	MsgWithdrawDelegatorRewardTypeURL     = "/cosmos.distribution.v1beta1.MsgWithdrawDelegatorReward"
	MsgWithdrawValidatorCommissionTypeURL = "/cosmos.distribution.v1beta1.MsgWithdrawValidatorCommission"
	MsgFundCommunityPoolTypeURL           = "/cosmos.distribution.v1beta1.MsgFundCommunityPool"

	MsgSubmitProposalTypeURL = "/cosmos.gov.v1.MsgSubmitProposal"
	MsgVoteTypeURL           = "/cosmos.gov.v1.MsgVote"

	MsgTransferTypeURL = "/ibc.applications.transfer.v1.MsgTransfer"
)
