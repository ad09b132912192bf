package registry

import (
	"context"
	"errors"
	"time"

	retry "github.com/avast/retry-go/v4"

	"github.com/tessellated-io/nolus-wallet/log"
)

// Implements a retryable and returns the last error
type retryableChainRegistryClient struct {
	wrappedClient ChainRegistryClient

	attempts retry.Option
	delay    retry.Option

	logger *log.Logger
}

// Ensure that retryableChainRegistryClient implements ChainRegistryClient
var _ ChainRegistryClient = (*retryableChainRegistryClient)(nil)

// NewRetryableChainRegistryClient returns a new retryableChainRegistryClient
func NewRetryableChainRegistryClient(attempts uint, delay time.Duration, chainRegistryClient ChainRegistryClient, logger *log.Logger) ChainRegistryClient {
	return &retryableChainRegistryClient{
		wrappedClient: chainRegistryClient,

		attempts: retry.Attempts(attempts),
		delay:    retry.Delay(delay),

		logger: logger,
	}
}

// ChainRegistryClient Interface

func (r *retryableChainRegistryClient) AllChainNames(ctx context.Context) ([]string, error) {
	var result []string
	var err error

	err = retry.Do(func() error {
		result, err = r.wrappedClient.AllChainNames(ctx)
		if err != nil {
			r.logger.Error("failed call in registry client, will retry", "error", err.Error(), "method", "all_chain_names")
		}
		return err
	}, r.delay, r.attempts, retry.Context(ctx))

	return result, unwrapRetryError(err)
}

func (r *retryableChainRegistryClient) ChainInfo(ctx context.Context, chainName string) (*ChainInfo, error) {
	var result *ChainInfo
	var err error

	err = retry.Do(func() error {
		result, err = r.wrappedClient.ChainInfo(ctx, chainName)
		if err != nil {
			r.logger.Error("failed call in registry client, will retry", "error", err.Error(), "method", "chain_info")
		}
		return err
	}, r.delay, r.attempts, retry.Context(ctx))

	return result, unwrapRetryError(err)
}

func unwrapRetryError(err error) error {
	if err == nil {
		return nil
	}

	// If err is an error from a context, unwrapping will write out nil
	if unwrappedErr := errors.Unwrap(err); unwrappedErr != nil {
		return unwrappedErr
	}
	return err
}
