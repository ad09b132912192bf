package tx

import (
	"context"
	"sync"

	errorsmod "cosmossdk.io/errors"

	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"

	"github.com/tessellated-io/nolus-wallet/cosmos/rpc"
	"github.com/tessellated-io/nolus-wallet/log"
)

// AccountResolver reads account metadata from chain. Accounts are fetched fresh on every call, since a stale
// sequence is rejected by the chain.
type AccountResolver struct {
	rpcClient rpc.RpcClient
	logger    *log.Logger

	// Chain ID never changes, so it is resolved at most once.
	chainIDLock sync.Mutex
	chainID     string
}

// NewAccountResolver makes a resolver. An empty chainID is discovered from the node on first use.
func NewAccountResolver(chainID string, rpcClient rpc.RpcClient, logger *log.Logger) *AccountResolver {
	return &AccountResolver{
		rpcClient: rpcClient,
		logger:    logger.ApplyPrefix("[accounts]"),

		chainID: chainID,
	}
}

// Account returns the on-chain account, or nil if the chain has never seen the address.
func (ar *AccountResolver) Account(ctx context.Context, address string) (authtypes.AccountI, error) {
	account, err := ar.rpcClient.Account(ctx, address)
	if err != nil {
		if rpc.IsNotFound(err) {
			ar.logger.Debug("account not found on chain", "address", address)
			return nil, nil
		}
		return nil, errorsmod.Wrapf(ErrAccountLookup, "%s: %s", address, err)
	}

	return account, nil
}

// Sequence returns the current sequence of the address.
func (ar *AccountResolver) Sequence(ctx context.Context, address string) (uint64, error) {
	account, err := ar.Account(ctx, address)
	if err != nil {
		return 0, err
	}
	if account == nil {
		return 0, errorsmod.Wrap(ErrAccountNotFound, address)
	}

	return account.GetSequence(), nil
}

// SignerData snapshots account number, sequence and chain id for a single signing operation.
func (ar *AccountResolver) SignerData(ctx context.Context, address string) (*SignerData, error) {
	account, err := ar.Account(ctx, address)
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, errorsmod.Wrap(ErrAccountNotFound, address)
	}

	chainID, err := ar.ChainID(ctx)
	if err != nil {
		return nil, err
	}

	return &SignerData{
		AccountNumber: account.GetAccountNumber(),
		Sequence:      account.GetSequence(),
		ChainID:       chainID,
	}, nil
}

// ChainID returns the configured chain id, asking the node if none was configured.
func (ar *AccountResolver) ChainID(ctx context.Context) (string, error) {
	ar.chainIDLock.Lock()
	defer ar.chainIDLock.Unlock()

	if ar.chainID != "" {
		return ar.chainID, nil
	}

	chainID, err := ar.rpcClient.ChainID(ctx)
	if err != nil {
		return "", err
	}
	ar.logger.Debug("discovered chain id", "chain_id", chainID)

	ar.chainID = chainID
	return chainID, nil
}
