// Package hd implements BIP32 hierarchical key derivation over the secp256k1
// curve. A 64 byte seed (see pkg/crypto/mnemonic) is expanded into a tree of
// extended keys addressed by paths such as "m/44'/118'/0'/0/0".
//
// Extended keys are immutable once constructed and safe for concurrent use.
// The same (seed, path) pair always yields the same key, byte for byte,
// across processes and machines.
package hd
