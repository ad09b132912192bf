package tx

import (
	"context"
	"errors"
	"fmt"
	"time"

	errorsmod "cosmossdk.io/errors"

	txtypes "github.com/cosmos/cosmos-sdk/types/tx"

	"github.com/tessellated-io/nolus-wallet/cosmos/rpc"
	"github.com/tessellated-io/nolus-wallet/log"
)

// Broadcaster submits signed transactions and optionally waits for them to land. Broadcasts are never retried,
// since a signed transaction is only valid for one sequence.
type Broadcaster struct {
	logger  *log.Logger
	wrapped TxBroadcaster
}

// NewDefaultBroadcaster broadcasts in sync mode and polls for inclusion.
func NewDefaultBroadcaster(
	rpcClient rpc.RpcClient,
	logger *log.Logger,

	txPollAttempts uint,
	txPollDelay time.Duration,
) *Broadcaster {
	logger = logger.ApplyPrefix("[broadcast]")

	txb1 := NewDefaultTxBroadcaster(rpcClient, logger)
	txb2 := NewPollingTxBroadcaster(txPollAttempts, txPollDelay, logger, txb1)

	return &Broadcaster{
		logger:  logger,
		wrapped: txb2,
	}
}

// Broadcast submits the transaction and returns the node's check result. A non-zero code is returned as an error.
func (b *Broadcaster) Broadcast(ctx context.Context, txBytes []byte) (*txtypes.BroadcastTxResponse, error) {
	result, err := b.wrapped.broadcast(ctx, txBytes)
	if err != nil {
		return nil, err
	}

	isSuccess, err := IsSuccess(result)
	if err != nil {
		return nil, err
	}

	if !isSuccess {
		codespace := result.TxResponse.Codespace
		code := result.TxResponse.Code
		logger := b.logger.With("tx_hash", result.TxResponse.TxHash, "codespace", codespace, "code", code)
		if IsGasRelatedError(codespace, code) {
			logger.Error("broadcast rejected due to gas, consider raising the gas price or multiplier")
		} else {
			logger.Error("broadcasted, but got non-success response code")
		}
		return result, errorsmod.ABCIError(codespace, code, result.TxResponse.RawLog)
	}

	return result, nil
}

// WaitForInclusion polls until the transaction is in a block. Transactions which land but fail are returned
// along with an error.
func (b *Broadcaster) WaitForInclusion(ctx context.Context, txHash string) (*txtypes.GetTxResponse, error) {
	txStatus, err := b.wrapped.checkTxStatus(ctx, txHash)
	if err != nil {
		return nil, err
	}

	if txStatus == nil {
		return nil, errorsmod.Wrap(ErrTxNotIncluded, txHash)
	}

	if !IsSuccessTxStatus(txStatus) {
		err := errorsmod.ABCIError(txStatus.TxResponse.Codespace, txStatus.TxResponse.Code, txStatus.TxResponse.RawLog)
		b.logger.Error("transaction landed on chain but failed", "tx_hash", txHash, "error", err.Error())
		return txStatus, err
	}

	b.logger.Info("transaction landed on chain, successfully", "tx_hash", txHash, "height", txStatus.TxResponse.Height)
	return txStatus, nil
}

// TxBroadcaster is a layer in the broadcast stack.
type TxBroadcaster interface {
	broadcast(ctx context.Context, txBytes []byte) (*txtypes.BroadcastTxResponse, error)

	// Pass back a tx status. If tx status is "not found" then pass back (nil, nil)
	checkTxStatus(ctx context.Context, txHash string) (*txtypes.GetTxResponse, error)
}

// default broadcaster simply broadcasts transactions
type defaultBroadcaster struct {
	logger    *log.Logger
	rpcClient rpc.RpcClient
}

var _ TxBroadcaster = (*defaultBroadcaster)(nil)

func NewDefaultTxBroadcaster(rpcClient rpc.RpcClient, logger *log.Logger) TxBroadcaster {
	return &defaultBroadcaster{
		logger:    logger,
		rpcClient: rpcClient,
	}
}

func (b *defaultBroadcaster) broadcast(ctx context.Context, txBytes []byte) (*txtypes.BroadcastTxResponse, error) {
	result, err := b.rpcClient.Broadcast(ctx, txBytes)

	// Log results, regardless of what happened
	if result != nil && result.TxResponse != nil {
		b.logger.Info("📣 attempted to broadcast transaction", "logs", result.TxResponse.RawLog, "tx_hash", result.TxResponse.TxHash, "codespace", result.TxResponse.Codespace, "code", result.TxResponse.Code)
	}

	return result, err
}

func (b *defaultBroadcaster) checkTxStatus(ctx context.Context, txHash string) (*txtypes.GetTxResponse, error) {
	logger := b.logger.With("tx_hash", txHash)

	txStatus, err := b.rpcClient.GetTxStatus(ctx, txHash)
	if err == nil {
		logger.Info("got a settled tx status", "code", txStatus.TxResponse.Code, "codespace", txStatus.TxResponse.Codespace)
		logger.Debug("full tx logs", "logs", txStatus.TxResponse.RawLog)

		return txStatus, nil
	}

	if rpc.IsNotFound(err) {
		// No error, but nothing was found
		logger.Debug("tx not included in chain")
		return nil, nil
	}

	logger.Debug("error querying tx status", "error", err.Error())
	return nil, err
}

// Polling broadcaster polls for tx inclusion
type pollingTxBroadcaster struct {
	// Parameters
	attempts uint
	delay    time.Duration

	// Services
	logger             *log.Logger
	wrappedBroadcaster TxBroadcaster
}

var _ TxBroadcaster = (*pollingTxBroadcaster)(nil)

func NewPollingTxBroadcaster(
	attempts uint,
	delay time.Duration,
	logger *log.Logger,
	wrappedBroadcaster TxBroadcaster,
) TxBroadcaster {
	return &pollingTxBroadcaster{
		attempts: attempts,
		delay:    delay,

		logger:             logger,
		wrappedBroadcaster: wrappedBroadcaster,
	}
}

func (b *pollingTxBroadcaster) broadcast(ctx context.Context, txBytes []byte) (*txtypes.BroadcastTxResponse, error) {
	// Pass through, there's no polling to be done on initial broadcast.
	return b.wrappedBroadcaster.broadcast(ctx, txBytes)
}

func (b *pollingTxBroadcaster) checkTxStatus(ctx context.Context, txHash string) (*txtypes.GetTxResponse, error) {
	logger := b.logger.With("tx_hash", txHash)
	logger.Info("polling for inclusion")

	var i uint
	for i = 0; i < b.attempts; i++ {
		// Initially sleep to give time to settle
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(b.delay):
		}

		// Ask internal clients for results.
		txStatus, err := b.wrappedBroadcaster.checkTxStatus(ctx, txHash)
		if err != nil {
			// something more fundamental has gone wrong.
			return nil, err
		}
		if txStatus != nil {
			return txStatus, nil
		}

		logger.Info("transaction still not included", "attempt", i+1, "max_attempts", b.attempts)
	}

	logger.Error("polling finished", "error", fmt.Sprintf("transaction not included after exhausting all polling attempts: %s", txHash))

	// Not found after polling is not a transport error.
	return nil, nil
}

// Helpers

func IsSuccess(broadcastResult *txtypes.BroadcastTxResponse) (bool, error) {
	if broadcastResult == nil {
		return false, errors.New("received nil broadcast tx result")
	}
	if broadcastResult.TxResponse == nil {
		return false, errors.New("received nil tx response in broadcast tx result")
	}

	// Note: Zero codes do not have a codespace on them
	return broadcastResult.TxResponse.Code == 0, nil
}

func IsSuccessTxStatus(txStatus *txtypes.GetTxResponse) bool {
	return txStatus.TxResponse != nil && txStatus.TxResponse.Code == 0
}
