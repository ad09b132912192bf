package tx_test

import (
	"context"
	"errors"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	sdk "github.com/cosmos/cosmos-sdk/types"
	txtypes "github.com/cosmos/cosmos-sdk/types/tx"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"

	"github.com/tessellated-io/nolus-wallet/cosmos/rpc"
)

var errNotImplemented = errors.New("not implemented")

// fakeRpcClient answers from canned values. Unset behaviour fails loudly.
type fakeRpcClient struct {
	account    authtypes.AccountI
	accountErr error

	chainID      string
	chainIDCalls int

	gasUsed   uint64
	simulated [][]byte
	noGasInfo bool

	broadcastResponse *txtypes.BroadcastTxResponse
	txStatuses        []*txtypes.GetTxResponse
	txStatusErr       error
	txStatusCalls     int
}

var _ rpc.RpcClient = (*fakeRpcClient)(nil)

func (f *fakeRpcClient) Broadcast(_ context.Context, _ []byte) (*txtypes.BroadcastTxResponse, error) {
	return f.broadcastResponse, nil
}

// GetTxStatus reports not found until the queued statuses are reached.
func (f *fakeRpcClient) GetTxStatus(_ context.Context, _ string) (*txtypes.GetTxResponse, error) {
	f.txStatusCalls++
	if f.txStatusErr != nil {
		return nil, f.txStatusErr
	}
	if len(f.txStatuses) == 0 {
		return nil, status.Error(codes.NotFound, "tx not found")
	}

	next := f.txStatuses[0]
	f.txStatuses = f.txStatuses[1:]
	if next == nil {
		return nil, status.Error(codes.NotFound, "tx not found")
	}
	return next, nil
}

func (f *fakeRpcClient) Simulate(_ context.Context, txBytes []byte) (*txtypes.SimulateResponse, error) {
	f.simulated = append(f.simulated, txBytes)
	if f.noGasInfo {
		return &txtypes.SimulateResponse{}, nil
	}
	return &txtypes.SimulateResponse{GasInfo: &sdk.GasInfo{GasUsed: f.gasUsed}}, nil
}

func (f *fakeRpcClient) Account(_ context.Context, _ string) (authtypes.AccountI, error) {
	if f.accountErr != nil {
		return nil, f.accountErr
	}
	if f.account == nil {
		return nil, status.Error(codes.NotFound, "account not found")
	}
	return f.account, nil
}

func (f *fakeRpcClient) ChainID(_ context.Context) (string, error) {
	f.chainIDCalls++
	return f.chainID, nil
}

func (f *fakeRpcClient) GetBalance(_ context.Context, _, _ string) (*sdk.Coin, error) {
	return nil, errNotImplemented
}

func (f *fakeRpcClient) AllBalances(_ context.Context, _ string) (sdk.Coins, error) {
	return nil, errNotImplemented
}

func (f *fakeRpcClient) DelegatedBalance(_ context.Context, _, _ string) (*sdk.Coin, error) {
	return nil, errNotImplemented
}
