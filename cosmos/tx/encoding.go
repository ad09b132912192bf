package tx

import (
	errorsmod "cosmossdk.io/errors"

	codectypes "github.com/cosmos/cosmos-sdk/codec/types"
	cryptotypes "github.com/cosmos/cosmos-sdk/crypto/types"
	sdk "github.com/cosmos/cosmos-sdk/types"
	txtypes "github.com/cosmos/cosmos-sdk/types/tx"
	"github.com/cosmos/cosmos-sdk/types/tx/signing"
	"github.com/cosmos/cosmos-sdk/x/auth/migrations/legacytx"
)

// EncodeTxRaw serializes a signed transaction for broadcast.
func EncodeTxRaw(txRaw *txtypes.TxRaw) ([]byte, error) {
	return txRaw.Marshal()
}

// DecodeTxRaw is the inverse of EncodeTxRaw.
func DecodeTxRaw(txBytes []byte) (*txtypes.TxRaw, error) {
	txRaw := &txtypes.TxRaw{}
	if err := txRaw.Unmarshal(txBytes); err != nil {
		return nil, err
	}
	return txRaw, nil
}

// Unwrap returns the typed payloads of the messages.
func Unwrap(msgs []Message) ([]sdk.Msg, error) {
	if len(msgs) == 0 {
		return nil, ErrNoMessages
	}

	result := make([]sdk.Msg, 0, len(msgs))
	for _, msg := range msgs {
		if msg.Value == nil {
			return nil, errorsmod.Wrapf(ErrTypeURLMismatch, "no payload for %s", msg.TypeURL)
		}

		actual := sdk.MsgTypeURL(msg.Value)
		if actual != msg.TypeURL {
			return nil, errorsmod.Wrapf(ErrTypeURLMismatch, "tagged %s, payload is %s", msg.TypeURL, actual)
		}
		result = append(result, msg.Value)
	}
	return result, nil
}

func encodeTxBody(msgs []sdk.Msg, memo string) ([]byte, error) {
	anys := make([]*codectypes.Any, 0, len(msgs))
	for _, msg := range msgs {
		packed, err := codectypes.NewAnyWithValue(msg)
		if err != nil {
			return nil, err
		}
		anys = append(anys, packed)
	}

	body := &txtypes.TxBody{
		Messages: anys,
		Memo:     memo,
	}
	return body.Marshal()
}

func encodeAuthInfo(pubKey cryptotypes.PubKey, sequence uint64, signMode signing.SignMode, fee legacytx.StdFee) ([]byte, error) {
	packedPubKey, err := codectypes.NewAnyWithValue(pubKey)
	if err != nil {
		return nil, err
	}

	authInfo := &txtypes.AuthInfo{
		SignerInfos: []*txtypes.SignerInfo{
			{
				PublicKey: packedPubKey,
				ModeInfo: &txtypes.ModeInfo{
					Sum: &txtypes.ModeInfo_Single_{
						Single: &txtypes.ModeInfo_Single{Mode: signMode},
					},
				},
				Sequence: sequence,
			},
		},
		Fee: &txtypes.Fee{
			Amount:   fee.Amount,
			GasLimit: fee.Gas,
			Payer:    fee.Payer,
			Granter:  fee.Granter,
		},
	}
	return authInfo.Marshal()
}
