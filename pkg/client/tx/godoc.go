// Package tx provides the TxClient implementation which assembles, signs,
// broadcasts, and confirms transactions against a cosmos-sdk node, together
// with the TxContext and AccountSequenceClient implementations it builds on.
//
// Submission outcomes are classified from the node's CheckTx verdict into
// typed errors so that callers can distinguish rejections they caused
// (invalid signature, insufficient fee) from conditions of the node (mempool
// full, unavailable). A rejection for a stale sequence number is recovered
// internally: the client resynchronizes its sequence state from the chain and
// re-signs and re-broadcasts the transaction exactly once.
package tx
