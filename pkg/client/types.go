package client

// AccountSequence is a sequence number allocation for a single account on a
// single chain, paired with the account number signatures must be made under.
type AccountSequence struct {
	AccountNumber uint64
	Sequence      uint64
}

// ChainState enumerates the block production states a node can report.
type ChainState int

const (
	// ChainStateWaitingToStart indicates the node is reachable but has not
	// produced its first block yet.
	ChainStateWaitingToStart ChainState = iota
	// ChainStateSyncing indicates the node is replaying history and its
	// chain state is not current.
	ChainStateSyncing
	// ChainStateMoving indicates the node is synced and producing blocks.
	ChainStateMoving
)

func (s ChainState) String() string {
	switch s {
	case ChainStateWaitingToStart:
		return "waiting_to_start"
	case ChainStateSyncing:
		return "syncing"
	case ChainStateMoving:
		return "moving"
	default:
		return "unknown"
	}
}

// ChainStatus reports the block production state of the node being talked
// to. Height is only meaningful when State is ChainStateMoving.
type ChainStatus struct {
	State  ChainState
	Height int64
}

// SubmissionStatus enumerates the terminal and intermediate states of a
// transaction submission.
type SubmissionStatus int

const (
	// SubmissionRejected indicates the node refused the transaction during
	// CheckTx, it was never a candidate for inclusion.
	SubmissionRejected SubmissionStatus = iota
	// SubmissionPending indicates the node accepted the transaction into its
	// mempool but it has not been observed in a block yet.
	SubmissionPending
	// SubmissionIncluded indicates the transaction was included in a block.
	SubmissionIncluded
	// SubmissionTimedOut indicates the transaction was not observed in a
	// block before the confirmation timeout elapsed. It may still be
	// included later.
	SubmissionTimedOut
)

func (s SubmissionStatus) String() string {
	switch s {
	case SubmissionRejected:
		return "rejected"
	case SubmissionPending:
		return "pending"
	case SubmissionIncluded:
		return "included"
	case SubmissionTimedOut:
		return "timed_out"
	default:
		return "unknown"
	}
}

// SubmissionResult is the outcome of submitting a transaction. TxHash is set
// for every submission that produced broadcast bytes. Height is only
// meaningful for included transactions. Code and RawLog carry the node's
// verdict for rejected or failed transactions.
type SubmissionResult struct {
	Status SubmissionStatus
	TxHash string
	Height int64
	Code   uint32
	RawLog string
}
