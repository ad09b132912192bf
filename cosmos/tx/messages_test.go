package tx_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	sdkmath "cosmossdk.io/math"
	wasmtypes "github.com/CosmWasm/wasmd/x/wasm/types"
	ibctransfertypes "github.com/cosmos/ibc-go/v7/modules/apps/transfer/types"

	sdk "github.com/cosmos/cosmos-sdk/types"
	banktypes "github.com/cosmos/cosmos-sdk/x/bank/types"

	"github.com/tessellated-io/nolus-wallet/cosmos/tx"
)

const (
	fromAddress = "nolus1sender"
	toAddress   = "nolus1receiver"
)

func TestBuildBankTransfer(t *testing.T) {
	builder := tx.NewMessageBuilder(fromAddress, nil)
	amount := sdk.NewCoins(sdk.NewCoin("unls", sdkmath.NewInt(10)), sdk.NewCoin("uosmo", sdkmath.NewInt(3)))

	msg, err := builder.BuildBankTransfer(toAddress, amount)
	require.NoError(t, err)

	assert.Equal(t, tx.TypeURLBankSend, msg.TypeURL)
	assert.Equal(t, tx.TypeURLBankSend, sdk.MsgTypeURL(msg.Value))

	msgSend, ok := msg.Value.(*banktypes.MsgSend)
	require.True(t, ok)
	assert.Equal(t, fromAddress, msgSend.FromAddress)
	assert.Equal(t, toAddress, msgSend.ToAddress)
	assert.Equal(t, amount, msgSend.Amount)
}

func TestBuildBankTransfer_RejectsEmptyInputs(t *testing.T) {
	builder := tx.NewMessageBuilder(fromAddress, nil)

	_, err := builder.BuildBankTransfer("", sdk.NewCoins(sdk.NewCoin("unls", sdkmath.NewInt(1))))
	assert.ErrorIs(t, err, tx.ErrInvalidRequest)

	_, err = builder.BuildBankTransfer(toAddress, sdk.Coins{})
	assert.ErrorIs(t, err, tx.ErrInvalidRequest)
}

func TestBuildIbcTransfer_Timeout(t *testing.T) {
	cases := []struct {
		name           string
		now            time.Time
		timeoutSeconds uint64
	}{
		{"one minute", time.Unix(1_000, 0), 60},
		{"sub second clock is truncated", time.Unix(1_700_000_000, 999_999_999), 600},
		{"one day", time.Unix(1_650_000_000, 0), 86_400},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			builder := tx.NewMessageBuilder(fromAddress, func() time.Time { return c.now })

			msg, err := builder.BuildIbcTransfer(tx.IbcTransferRequest{
				ToAddress:      "osmo1receiver",
				Amount:         sdk.NewCoin("unls", sdkmath.NewInt(5)),
				SourcePort:     tx.TransferPort,
				SourceChannel:  "channel-0",
				TimeoutSeconds: c.timeoutSeconds,
				Memo:           "memo",
			})
			require.NoError(t, err)
			assert.Equal(t, tx.TypeURLIbcTransfer, msg.TypeURL)

			transfer, ok := msg.Value.(*ibctransfertypes.MsgTransfer)
			require.True(t, ok)

			expected := uint64(c.now.Unix()+int64(c.timeoutSeconds)) * 1_000_000_000
			assert.Equal(t, expected, transfer.TimeoutTimestamp)
			assert.True(t, transfer.TimeoutHeight.IsZero())
			assert.Equal(t, fromAddress, transfer.Sender)
			assert.Equal(t, "memo", transfer.Memo)
		})
	}
}

func TestBuildIbcTransfer_Validation(t *testing.T) {
	builder := tx.NewMessageBuilder(fromAddress, nil)
	valid := tx.IbcTransferRequest{
		ToAddress:      "osmo1receiver",
		Amount:         sdk.NewCoin("unls", sdkmath.NewInt(5)),
		SourcePort:     tx.TransferPort,
		SourceChannel:  "channel-0",
		TimeoutSeconds: 60,
	}

	_, err := builder.BuildIbcTransfer(valid)
	require.NoError(t, err)

	missingChannel := valid
	missingChannel.SourceChannel = ""
	_, err = builder.BuildIbcTransfer(missingChannel)
	assert.ErrorIs(t, err, tx.ErrInvalidRequest)

	noTimeout := valid
	noTimeout.TimeoutSeconds = 0
	_, err = builder.BuildIbcTransfer(noTimeout)
	assert.ErrorIs(t, err, tx.ErrInvalidRequest)

	badDenom := valid
	badDenom.Amount = sdk.Coin{Denom: "!", Amount: sdkmath.NewInt(1)}
	_, err = builder.BuildIbcTransfer(badDenom)
	assert.ErrorIs(t, err, tx.ErrInvalidRequest)
}

func TestBuildExecuteContract(t *testing.T) {
	builder := tx.NewMessageBuilder(fromAddress, nil)
	funds := sdk.NewCoins(sdk.NewCoin("unls", sdkmath.NewInt(7)))

	msg, err := builder.BuildExecuteContract("nolus1contract", []byte(`{"open_lease":{"currency":"OSMO"}}`), funds)
	require.NoError(t, err)
	assert.Equal(t, tx.TypeURLExecuteContract, msg.TypeURL)

	execute, ok := msg.Value.(*wasmtypes.MsgExecuteContract)
	require.True(t, ok)
	assert.Equal(t, fromAddress, execute.Sender)
	assert.Equal(t, "nolus1contract", execute.Contract)
	assert.Equal(t, funds, execute.Funds)

	_, err = builder.BuildExecuteContract("", []byte(`{}`), nil)
	assert.ErrorIs(t, err, tx.ErrInvalidRequest)

	_, err = builder.BuildExecuteContract("nolus1contract", []byte(`{`), nil)
	assert.ErrorIs(t, err, tx.ErrInvalidRequest)
}
