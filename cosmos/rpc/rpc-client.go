package rpc

import (
	"context"
	"errors"
	"regexp"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"
	txtypes "github.com/cosmos/cosmos-sdk/types/tx"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"
)

// RpcClient is the wallet's view of a chain node.
type RpcClient interface {
	Broadcast(ctx context.Context, txBytes []byte) (*txtypes.BroadcastTxResponse, error)
	GetTxStatus(ctx context.Context, txHash string) (*txtypes.GetTxResponse, error)

	Simulate(ctx context.Context, txBytes []byte) (*txtypes.SimulateResponse, error)

	Account(ctx context.Context, address string) (authtypes.AccountI, error)
	ChainID(ctx context.Context) (string, error)

	GetBalance(ctx context.Context, address, denom string) (*sdk.Coin, error)
	AllBalances(ctx context.Context, address string) (sdk.Coins, error)
	DelegatedBalance(ctx context.Context, delegator, stakingDenom string) (*sdk.Coin, error)
}

// Nodes report missing accounts as a gRPC NotFound, which is flattened into the log when queried over ABCI.
var notFoundPattern = regexp.MustCompile(`(?i)rpc error: code = NotFound`)

// IsNotFound reports whether the error means the queried object does not exist.
func IsNotFound(err error) bool {
	if err == nil {
		return false
	}

	if grpcErr, ok := status.FromError(err); ok && grpcErr.Code() == codes.NotFound {
		return true
	}

	if errors.Is(err, sdkerrors.ErrKeyNotFound) {
		return true
	}

	return notFoundPattern.MatchString(err.Error())
}
