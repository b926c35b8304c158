// Package client defines interfaces and types that facilitate interactions
// with a running blockchain, both transactional and observational. It is
// built to provide an abstraction layer for signing, broadcasting, and
// querying, so that the concrete gRPC plumbing stays behind narrow,
// mockable interfaces.
//
// The client package leverages external libraries like cosmos-sdk and
// cometbft, but there is a preference to minimize direct dependencies on
// these external libraries when defining interfaces, aiming for a cleaner
// decoupling.
package client
