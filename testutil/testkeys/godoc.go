// Package testkeys provides deterministic signing key fixtures for tests.
// Accounts are derived from indexed secrets so tests agree on addresses
// without sharing state.
package testkeys
