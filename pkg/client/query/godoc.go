// Package query provides clients used to query the state of the blockchain:
// accounts, balances, and the sync and block production status of the node
// being talked to. These clients abstract the underlying request/response
// types and provide a single method to query for a specific piece of
// information from the chain.
package query
