// Package mnemonic implements BIP39 seed phrase handling: encoding entropy as
// a phrase, validating phrases, and stretching a phrase into the 64 byte seed
// consumed by the hierarchical key derivation in pkg/crypto/hd.
//
// Phrases use the english wordlist. All functions are pure and safe for
// concurrent use.
package mnemonic
