package tx

import (
	"encoding/hex"
	"strings"

	comettypes "github.com/cometbft/cometbft/types"
	codectypes "github.com/cosmos/cosmos-sdk/codec/types"
	cosmostypes "github.com/cosmos/cosmos-sdk/types"
	txtypes "github.com/cosmos/cosmos-sdk/types/tx"
	"github.com/cosmos/cosmos-sdk/types/tx/signing"

	"github.com/althea-net/deep-space/pkg/crypto/keys"
	"github.com/althea-net/deep-space/pkg/signer"
)

// DefaultMemo is attached to transactions whose caller did not provide one.
const DefaultMemo = "Sent with Deep Space"

// Fee describes the fee offered and the gas allowance for a transaction.
type Fee struct {
	// Amount is the fee offered, which may be empty on zero fee chains.
	Amount cosmostypes.Coins
	// GasLimit is the maximum gas the transaction may consume.
	GasLimit uint64
	// Payer and Granter optionally name another fee payer or a fee grant
	// to draw on. Left empty the first signer pays.
	Payer   string
	Granter string
}

// SignerData carries the chain scoped account values bound into the sign
// bytes. A signature produced under one SignerData is invalid under any
// other, which is what prevents cross chain and cross account replay.
type SignerData struct {
	ChainID       string
	AccountNumber uint64
	Sequence      uint64
}

// UnsignedTx collects everything a transaction contains apart from the
// account values that bind it to a specific chain and signer.
type UnsignedTx struct {
	Msgs          []*codectypes.Any
	Memo          string
	TimeoutHeight uint64
	Fee           Fee
}

// SignDocBytes produces the exact bytes signed for this transaction under
// SIGN_MODE_DIRECT.
func (u *UnsignedTx) SignDocBytes(pubKey *keys.PublicKey, signerData SignerData) ([]byte, error) {
	bodyBz, err := u.bodyBytes()
	if err != nil {
		return nil, err
	}
	authBz, err := u.authInfoBytes([]signerMeta{{pubKey: pubKey, sequence: signerData.Sequence}})
	if err != nil {
		return nil, err
	}
	return signDocBytes(bodyBz, authBz, signerData)
}

// Sign signs the transaction with the given private key.
func (u *UnsignedTx) Sign(key *keys.PrivateKey, signerData SignerData) (*SignedTx, error) {
	return u.SignWithSigner(signer.NewKeySigner(key), signerData)
}

// SignWithSigner signs the transaction with an arbitrary Signer
// implementation. The body and auth info encodings signed over are the same
// byte slices embedded in the returned transaction.
func (u *UnsignedTx) SignWithSigner(txSigner signer.Signer, signerData SignerData) (*SignedTx, error) {
	return u.SignWithSigners(SignerEntry{Signer: txSigner, SignerData: signerData})
}

// SignerEntry pairs one signer with the account values embedded in its sign
// doc. Entry order is signer info order and therefore signature order.
type SignerEntry struct {
	Signer     signer.Signer
	SignerData SignerData
}

// SignWithSigners signs a transaction carrying one signature per entry.
// Every signer signs over the same body and auth info bytes; each sign doc
// embeds that signer's own account number. The node verifies signatures
// positionally against the signer infos, so entry order must match the
// order the chain expects.
func (u *UnsignedTx) SignWithSigners(entries ...SignerEntry) (*SignedTx, error) {
	if len(entries) == 0 {
		return nil, ErrNoSigners
	}

	bodyBz, err := u.bodyBytes()
	if err != nil {
		return nil, err
	}

	metas := make([]signerMeta, len(entries))
	for i, entry := range entries {
		metas[i] = signerMeta{
			pubKey:   entry.Signer.PubKey(),
			sequence: entry.SignerData.Sequence,
		}
	}
	authBz, err := u.authInfoBytes(metas)
	if err != nil {
		return nil, err
	}

	sigs := make([][]byte, 0, len(entries))
	for _, entry := range entries {
		signBz, err := signDocBytes(bodyBz, authBz, entry.SignerData)
		if err != nil {
			return nil, err
		}
		sig, err := entry.Signer.Sign(signBz)
		if err != nil {
			return nil, err
		}
		sigs = append(sigs, sig)
	}

	raw := &txtypes.TxRaw{
		BodyBytes:     bodyBz,
		AuthInfoBytes: authBz,
		Signatures:    sigs,
	}
	txBz, err := raw.Marshal()
	if err != nil {
		return nil, ErrMalformedPayload.Wrapf("marshaling raw tx: %s", err)
	}

	return &SignedTx{txBytes: txBz, hash: Hash(txBz)}, nil
}

func (u *UnsignedTx) bodyBytes() ([]byte, error) {
	if len(u.Msgs) == 0 {
		return nil, ErrEmptyTx
	}

	body := &txtypes.TxBody{
		Messages:      u.Msgs,
		Memo:          u.Memo,
		TimeoutHeight: u.TimeoutHeight,
	}
	bz, err := body.Marshal()
	if err != nil {
		return nil, ErrMalformedPayload.Wrapf("marshaling tx body: %s", err)
	}
	return bz, nil
}

// signerMeta is the per signer portion of the auth info.
type signerMeta struct {
	pubKey   *keys.PublicKey
	sequence uint64
}

func (u *UnsignedTx) authInfoBytes(signers []signerMeta) ([]byte, error) {
	infos := make([]*txtypes.SignerInfo, len(signers))
	for i, meta := range signers {
		pubKeyAny, err := codectypes.NewAnyWithValue(meta.pubKey.CosmosPubKey())
		if err != nil {
			return nil, ErrMalformedPayload.Wrapf("packing public key: %s", err)
		}
		infos[i] = &txtypes.SignerInfo{
			PublicKey: pubKeyAny,
			ModeInfo: &txtypes.ModeInfo{
				Sum: &txtypes.ModeInfo_Single_{
					Single: &txtypes.ModeInfo_Single{
						Mode: signing.SignMode_SIGN_MODE_DIRECT,
					},
				},
			},
			Sequence: meta.sequence,
		}
	}

	authInfo := &txtypes.AuthInfo{
		SignerInfos: infos,
		Fee: &txtypes.Fee{
			Amount:   u.Fee.Amount,
			GasLimit: u.Fee.GasLimit,
			Payer:    u.Fee.Payer,
			Granter:  u.Fee.Granter,
		},
	}
	bz, err := authInfo.Marshal()
	if err != nil {
		return nil, ErrMalformedPayload.Wrapf("marshaling auth info: %s", err)
	}
	return bz, nil
}

func signDocBytes(bodyBz, authBz []byte, signerData SignerData) ([]byte, error) {
	doc := &txtypes.SignDoc{
		BodyBytes:     bodyBz,
		AuthInfoBytes: authBz,
		ChainId:       signerData.ChainID,
		AccountNumber: signerData.AccountNumber,
	}
	bz, err := doc.Marshal()
	if err != nil {
		return nil, ErrMalformedPayload.Wrapf("marshaling sign doc: %s", err)
	}
	return bz, nil
}

// SignedTx is a fully signed transaction ready for broadcast.
type SignedTx struct {
	txBytes []byte
	hash    string
}

// Bytes returns the broadcast encoding of the transaction.
func (tx *SignedTx) Bytes() []byte {
	return tx.txBytes
}

// Hash returns the transaction hash as uppercase hex, the form node APIs
// index transactions under.
func (tx *SignedTx) Hash() string {
	return tx.hash
}

// Hash computes the hash of an encoded transaction, in the uppercase hex form
// node APIs index transactions under.
func Hash(txBytes []byte) string {
	return strings.ToUpper(hex.EncodeToString(comettypes.Tx(txBytes).Hash()))
}
