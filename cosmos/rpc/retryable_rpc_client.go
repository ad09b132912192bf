package rpc

import (
	"context"
	"errors"
	"time"

	retry "github.com/avast/retry-go/v4"

	sdk "github.com/cosmos/cosmos-sdk/types"
	txtypes "github.com/cosmos/cosmos-sdk/types/tx"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"

	"github.com/tessellated-io/nolus-wallet/log"
)

// Implements retryable read-only rpcs and returns the last error. Broadcasts and simulations pass straight through,
// and not found responses are never retried.
type retryableRpcClient struct {
	wrappedClient RpcClient

	attempts retry.Option
	delay    retry.Option
	retryIf  retry.Option

	logger *log.Logger
}

// Ensure that retryableRpcClient implements RpcClient
var _ RpcClient = (*retryableRpcClient)(nil)

// NewRetryableRpcClient returns a new retryableRpcClient
func NewRetryableRpcClient(attempts uint, delay time.Duration, rpcClient RpcClient, logger *log.Logger) RpcClient {
	return &retryableRpcClient{
		wrappedClient: rpcClient,

		attempts: retry.Attempts(attempts),
		delay:    retry.Delay(delay),
		retryIf:  retry.RetryIf(func(err error) bool { return !IsNotFound(err) }),

		logger: logger,
	}
}

// RpcClient Interface

func (r *retryableRpcClient) Broadcast(ctx context.Context, txBytes []byte) (*txtypes.BroadcastTxResponse, error) {
	return r.wrappedClient.Broadcast(ctx, txBytes)
}

func (r *retryableRpcClient) Simulate(ctx context.Context, txBytes []byte) (*txtypes.SimulateResponse, error) {
	return r.wrappedClient.Simulate(ctx, txBytes)
}

func (r *retryableRpcClient) GetTxStatus(ctx context.Context, txHash string) (*txtypes.GetTxResponse, error) {
	var result *txtypes.GetTxResponse
	var err error

	err = r.do(ctx, "get_tx_status", func() error {
		result, err = r.wrappedClient.GetTxStatus(ctx, txHash)
		return err
	})

	return result, err
}

func (r *retryableRpcClient) Account(ctx context.Context, address string) (authtypes.AccountI, error) {
	var result authtypes.AccountI
	var err error

	err = r.do(ctx, "account", func() error {
		result, err = r.wrappedClient.Account(ctx, address)
		return err
	})

	return result, err
}

func (r *retryableRpcClient) ChainID(ctx context.Context) (string, error) {
	var result string
	var err error

	err = r.do(ctx, "chain_id", func() error {
		result, err = r.wrappedClient.ChainID(ctx)
		return err
	})

	return result, err
}

func (r *retryableRpcClient) GetBalance(ctx context.Context, address, denom string) (*sdk.Coin, error) {
	var result *sdk.Coin
	var err error

	err = r.do(ctx, "get_balance", func() error {
		result, err = r.wrappedClient.GetBalance(ctx, address, denom)
		return err
	})

	return result, err
}

func (r *retryableRpcClient) AllBalances(ctx context.Context, address string) (sdk.Coins, error) {
	var result sdk.Coins
	var err error

	err = r.do(ctx, "all_balances", func() error {
		result, err = r.wrappedClient.AllBalances(ctx, address)
		return err
	})

	return result, err
}

func (r *retryableRpcClient) DelegatedBalance(ctx context.Context, delegator, stakingDenom string) (*sdk.Coin, error) {
	var result *sdk.Coin
	var err error

	err = r.do(ctx, "delegated_balance", func() error {
		result, err = r.wrappedClient.DelegatedBalance(ctx, delegator, stakingDenom)
		return err
	})

	return result, err
}

func (r *retryableRpcClient) do(ctx context.Context, method string, fn func() error) error {
	err := retry.Do(func() error {
		err := fn()
		if err != nil && !IsNotFound(err) {
			r.logger.Warn("failed call in rpc client, will retry", "error", err.Error(), "method", method)
		}
		return err
	}, r.delay, r.attempts, r.retryIf, retry.Context(ctx))
	if err != nil {
		// If err is an error from a context, unwrapping will write out nil
		unwrappedErr := errors.Unwrap(err)
		if unwrappedErr != nil {
			return unwrappedErr
		}
	}

	return err
}
