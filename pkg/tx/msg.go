package tx

import (
	codectypes "github.com/cosmos/cosmos-sdk/codec/types"
	cosmostypes "github.com/cosmos/cosmos-sdk/types"
	banktypes "github.com/cosmos/cosmos-sdk/x/bank/types"
	"github.com/cosmos/gogoproto/proto"
)

// NewAnyMsg wraps an already encoded message payload in an Any without
// inspecting it. This lets callers submit messages for modules this package
// has no generated types for, the payload passes through to the chain
// untouched.
func NewAnyMsg(typeURL string, payload []byte) (*codectypes.Any, error) {
	if typeURL == "" {
		return nil, ErrMalformedPayload.Wrap("empty type URL")
	}
	return &codectypes.Any{TypeUrl: typeURL, Value: payload}, nil
}

// PackMsg wraps a concrete proto message in an Any under its canonical type URL.
func PackMsg(msg proto.Message) (*codectypes.Any, error) {
	anyMsg, err := codectypes.NewAnyWithValue(msg)
	if err != nil {
		return nil, ErrMalformedPayload.Wrapf("packing %T: %s", msg, err)
	}
	return anyMsg, nil
}

// NewMsgSend constructs a bank send message between two bech32 addresses.
func NewMsgSend(fromAddress, toAddress string, amount cosmostypes.Coins) *banktypes.MsgSend {
	return &banktypes.MsgSend{
		FromAddress: fromAddress,
		ToAddress:   toAddress,
		Amount:      amount,
	}
}
