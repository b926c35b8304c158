package mnemonic

import (
	"strings"

	bip39 "github.com/tyler-smith/go-bip39"
)

// SeedLen is the length in bytes of the seed returned by NewSeed.
const SeedLen = 64

// validWordCounts enumerates the phrase lengths permitted by BIP39:
// 12, 15, 18, 21 or 24 words for 128 to 256 bits of entropy.
var validWordCounts = map[int]struct{}{12: {}, 15: {}, 18: {}, 21: {}, 24: {}}

// NewMnemonic encodes the given entropy as a seed phrase. Entropy must be
// 128 to 256 bits long in 32 bit increments; the checksum word is appended
// per BIP39.
func NewMnemonic(entropy []byte) (string, error) {
	phrase, err := bip39.NewMnemonic(entropy)
	if err != nil {
		return "", ErrMnemonicEntropy.Wrapf("%d bytes: %s", len(entropy), err)
	}
	return phrase, nil
}

// NewRandomMnemonic generates a seed phrase from fresh system entropy of the
// given bit size (128 to 256 in 32 bit increments). 24 word phrases use 256
// bits.
func NewRandomMnemonic(bits int) (string, error) {
	entropy, err := bip39.NewEntropy(bits)
	if err != nil {
		return "", ErrMnemonicEntropy.Wrapf("%d bits: %s", bits, err)
	}
	return NewMnemonic(entropy)
}

// Validate checks that the given phrase is a well formed BIP39 mnemonic: the
// word count is one of the permitted lengths, every word is a member of the
// wordlist, and the embedded checksum matches. Surrounding and repeated
// whitespace is ignored.
func Validate(phrase string) error {
	words := strings.Fields(phrase)
	if _, ok := validWordCounts[len(words)]; !ok {
		return ErrMnemonicWordCount.Wrapf("got %d words", len(words))
	}
	for _, word := range words {
		if _, ok := bip39.GetWordIndex(word); !ok {
			return ErrMnemonicUnknownWord.Wrapf("%q", word)
		}
	}
	if _, err := bip39.EntropyFromMnemonic(strings.Join(words, " ")); err != nil {
		return ErrMnemonicChecksum.Wrap(err.Error())
	}
	return nil
}

// NewSeed stretches the given phrase and passphrase into a 64 byte seed using
// PBKDF2-HMAC-SHA512 with 2048 rounds and the salt "mnemonic"+passphrase.
// The phrase is validated first and normalized to single spaces so that
// formatting differences cannot change the derived seed.
//
// An empty passphrase is the common case and matches the behavior of most
// wallets.
func NewSeed(phrase, passphrase string) ([]byte, error) {
	if err := Validate(phrase); err != nil {
		return nil, err
	}
	normalized := strings.Join(strings.Fields(phrase), " ")
	return bip39.NewSeed(normalized, passphrase), nil
}
