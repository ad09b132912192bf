package tx

import (
	"time"

	errorsmod "cosmossdk.io/errors"
	wasmtypes "github.com/CosmWasm/wasmd/x/wasm/types"
	ibctransfertypes "github.com/cosmos/ibc-go/v7/modules/apps/transfer/types"
	"github.com/go-playground/validator/v10"

	sdk "github.com/cosmos/cosmos-sdk/types"
	banktypes "github.com/cosmos/cosmos-sdk/x/bank/types"
)

// Default IBC port for fungible token transfers.
const TransferPort = "transfer"

// IbcTransferRequest describes a cross chain token transfer.
type IbcTransferRequest struct {
	ToAddress      string `validate:"required"`
	Amount         sdk.Coin
	SourcePort     string `validate:"required"`
	SourceChannel  string `validate:"required"`
	TimeoutSeconds uint64 `validate:"gt=0"`
	Memo           string
}

// MessageBuilder turns transfer and execute intents into messages sent from a single address.
type MessageBuilder struct {
	fromAddress string
	clock       func() time.Time
	validate    *validator.Validate
}

func NewMessageBuilder(fromAddress string, clock func() time.Time) *MessageBuilder {
	if clock == nil {
		clock = time.Now
	}

	return &MessageBuilder{
		fromAddress: fromAddress,
		clock:       clock,
		validate:    validator.New(),
	}
}

func (mb *MessageBuilder) BuildBankTransfer(toAddress string, amount sdk.Coins) (Message, error) {
	if err := mb.validate.Var(toAddress, "required"); err != nil {
		return Message{}, errorsmod.Wrap(ErrInvalidRequest, "to address is required")
	}
	if err := mb.validate.Var(amount, "min=1"); err != nil {
		return Message{}, errorsmod.Wrap(ErrInvalidRequest, "amount is required")
	}

	return Message{
		TypeURL: TypeURLBankSend,
		Value: &banktypes.MsgSend{
			FromAddress: mb.fromAddress,
			ToAddress:   toAddress,
			Amount:      amount,
		},
	}, nil
}

// BuildIbcTransfer times the transfer out relative to the builder's clock. Height based timeouts are left unset.
func (mb *MessageBuilder) BuildIbcTransfer(request IbcTransferRequest) (Message, error) {
	if err := mb.validate.Struct(request); err != nil {
		return Message{}, errorsmod.Wrap(ErrInvalidRequest, err.Error())
	}
	if err := request.Amount.Validate(); err != nil {
		return Message{}, errorsmod.Wrap(ErrInvalidRequest, err.Error())
	}

	timeoutTimestamp := uint64(mb.clock().Unix()+int64(request.TimeoutSeconds)) * uint64(time.Second)

	return Message{
		TypeURL: TypeURLIbcTransfer,
		Value: &ibctransfertypes.MsgTransfer{
			SourcePort:       request.SourcePort,
			SourceChannel:    request.SourceChannel,
			Token:            request.Amount,
			Sender:           mb.fromAddress,
			Receiver:         request.ToAddress,
			TimeoutTimestamp: timeoutTimestamp,
			Memo:             request.Memo,
		},
	}, nil
}

func (mb *MessageBuilder) BuildExecuteContract(contract string, msg []byte, funds sdk.Coins) (Message, error) {
	if err := mb.validate.Var(contract, "required"); err != nil {
		return Message{}, errorsmod.Wrap(ErrInvalidRequest, "contract address is required")
	}

	executeMsg := wasmtypes.RawContractMessage(msg)
	if err := executeMsg.ValidateBasic(); err != nil {
		return Message{}, errorsmod.Wrap(ErrInvalidRequest, err.Error())
	}

	return Message{
		TypeURL: TypeURLExecuteContract,
		Value: &wasmtypes.MsgExecuteContract{
			Sender:   mb.fromAddress,
			Contract: contract,
			Msg:      executeMsg,
			Funds:    funds,
		},
	}, nil
}
