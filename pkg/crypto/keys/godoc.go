// Package keys provides secp256k1 private and public keys, deterministic
// ECDSA signing, and bech32 account addresses derived from compressed public
// keys (ripemd160 over sha256, the standard Cosmos construction).
//
// Keys are immutable and safe for concurrent use. Signing uses RFC6979
// deterministic nonces and always produces the low-half-order S form, so a
// given (key, message) pair yields one canonical signature.
package keys
