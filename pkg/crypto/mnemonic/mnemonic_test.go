package mnemonic_test

import (
	"encoding/hex"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/althea-net/deep-space/pkg/crypto/mnemonic"
)

// Vectors from the BIP39 reference test suite (passphrase "TREZOR").
const (
	vectorPhraseZeros = "abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon about"
	vectorSeedZeros   = "c55257c360c07c72029aebc1b53c05ed0362ada38ead3e3e9efa3708e53495531f09a6987599d18264c1e1c92f2cf141630c7a3c4ab7c81b2f001698e7463b04"

	vectorPhraseOnes = "zoo zoo zoo zoo zoo zoo zoo zoo zoo zoo zoo wrong"
	vectorSeedOnes   = "ac27495480225222079d7be181583751e86f571027b0497b5b5d11218e0a8a13332572917f0f8e5a589620c6f15b11c61dee327651a14c34e18231052e48c069"
)

func TestNewMnemonic(t *testing.T) {
	phrase, err := mnemonic.NewMnemonic(make([]byte, 16))
	require.NoError(t, err)
	require.Equal(t, vectorPhraseZeros, phrase)

	onesEntropy := make([]byte, 16)
	for i := range onesEntropy {
		onesEntropy[i] = 0xff
	}
	phrase, err = mnemonic.NewMnemonic(onesEntropy)
	require.NoError(t, err)
	require.Equal(t, vectorPhraseOnes, phrase)

	_, err = mnemonic.NewMnemonic(make([]byte, 15))
	require.ErrorIs(t, err, mnemonic.ErrMnemonicEntropy)
}

func TestNewRandomMnemonic(t *testing.T) {
	phrase, err := mnemonic.NewRandomMnemonic(256)
	require.NoError(t, err)
	require.Len(t, strings.Fields(phrase), 24)
	require.NoError(t, mnemonic.Validate(phrase))

	_, err = mnemonic.NewRandomMnemonic(100)
	require.ErrorIs(t, err, mnemonic.ErrMnemonicEntropy)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		desc        string
		phrase      string
		expectedErr error
	}{
		{
			desc:   "valid 12 word phrase",
			phrase: vectorPhraseZeros,
		},
		{
			desc:   "surrounding and repeated whitespace tolerated",
			phrase: "  " + strings.ReplaceAll(vectorPhraseZeros, " ", "   ") + "\n",
		},
		{
			desc:        "wrong word count",
			phrase:      vectorPhraseZeros + " abandon",
			expectedErr: mnemonic.ErrMnemonicWordCount,
		},
		{
			desc:        "empty phrase",
			phrase:      "",
			expectedErr: mnemonic.ErrMnemonicWordCount,
		},
		{
			desc:        "word outside the wordlist",
			phrase:      strings.Replace(vectorPhraseZeros, "about", "aboot", 1),
			expectedErr: mnemonic.ErrMnemonicUnknownWord,
		},
		{
			desc:        "checksum mismatch",
			phrase:      strings.Replace(vectorPhraseZeros, "about", "abandon", 1),
			expectedErr: mnemonic.ErrMnemonicChecksum,
		},
	}

	for _, test := range tests {
		t.Run(test.desc, func(t *testing.T) {
			err := mnemonic.Validate(test.phrase)
			if test.expectedErr != nil {
				require.ErrorIs(t, err, test.expectedErr)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestNewSeed(t *testing.T) {
	seed, err := mnemonic.NewSeed(vectorPhraseZeros, "TREZOR")
	require.NoError(t, err)
	require.Len(t, seed, mnemonic.SeedLen)
	require.Equal(t, vectorSeedZeros, hex.EncodeToString(seed))

	seed, err = mnemonic.NewSeed(vectorPhraseOnes, "TREZOR")
	require.NoError(t, err)
	require.Equal(t, vectorSeedOnes, hex.EncodeToString(seed))

	// Formatting differences must not change the seed.
	spaced, err := mnemonic.NewSeed("  "+strings.ReplaceAll(vectorPhraseZeros, " ", "  "), "TREZOR")
	require.NoError(t, err)
	require.Equal(t, vectorSeedZeros, hex.EncodeToString(spaced))

	// Different passphrases yield different seeds.
	other, err := mnemonic.NewSeed(vectorPhraseZeros, "")
	require.NoError(t, err)
	require.NotEqual(t, vectorSeedZeros, hex.EncodeToString(other))

	_, err = mnemonic.NewSeed("not a phrase", "")
	require.ErrorIs(t, err, mnemonic.ErrMnemonicWordCount)
}
