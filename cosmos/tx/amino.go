package tx

import (
	"encoding/json"

	errorsmod "cosmossdk.io/errors"

	"github.com/cosmos/cosmos-sdk/codec"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/cosmos/cosmos-sdk/x/auth/migrations/legacytx"

	"github.com/tessellated-io/nolus-wallet/util"
)

// AminoConverter translates messages and fees to and from their legacy amino JSON form.
type AminoConverter struct {
	amino *codec.LegacyAmino
}

func NewAminoConverter(amino *codec.LegacyAmino) *AminoConverter {
	return &AminoConverter{amino: amino}
}

// ToAmino renders each message as sorted amino JSON, identical to what the chain verifies.
func (ac *AminoConverter) ToAmino(msgs []sdk.Msg) (result []json.RawMessage, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errorsmod.Wrap(ErrAminoConversion, util.PanicToError(r).Error())
		}
	}()

	result = make([]json.RawMessage, 0, len(msgs))
	for _, msg := range msgs {
		bz, err := ac.amino.MarshalJSON(msg)
		if err != nil {
			return nil, errorsmod.Wrapf(ErrAminoConversion, "%s: %s", sdk.MsgTypeURL(msg), err)
		}

		sorted, err := sdk.SortJSON(bz)
		if err != nil {
			return nil, errorsmod.Wrap(ErrAminoConversion, err.Error())
		}
		result = append(result, sorted)
	}

	return result, nil
}

// FromAmino decodes amino JSON messages, as returned by a signer, back into typed messages.
func (ac *AminoConverter) FromAmino(aminoMsgs []json.RawMessage) (result []sdk.Msg, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errorsmod.Wrap(ErrAminoConversion, util.PanicToError(r).Error())
		}
	}()

	result = make([]sdk.Msg, 0, len(aminoMsgs))
	for _, aminoMsg := range aminoMsgs {
		var msg sdk.Msg
		if err := ac.amino.UnmarshalJSON(aminoMsg, &msg); err != nil {
			return nil, errorsmod.Wrap(ErrAminoConversion, err.Error())
		}
		result = append(result, msg)
	}

	return result, nil
}

// FeeFromAmino decodes a signed fee.
func (ac *AminoConverter) FeeFromAmino(aminoFee json.RawMessage) (legacytx.StdFee, error) {
	var fee legacytx.StdFee
	if err := ac.amino.UnmarshalJSON(aminoFee, &fee); err != nil {
		return legacytx.StdFee{}, errorsmod.Wrap(ErrAminoConversion, err.Error())
	}
	return fee, nil
}
