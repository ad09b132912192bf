package wallet_test

import (
	"context"
	"errors"
	"sync"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	sdkmath "cosmossdk.io/math"

	sdk "github.com/cosmos/cosmos-sdk/types"
	txtypes "github.com/cosmos/cosmos-sdk/types/tx"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"

	"github.com/tessellated-io/nolus-wallet/coding"
	"github.com/tessellated-io/nolus-wallet/cosmos/rpc"
	"github.com/tessellated-io/nolus-wallet/crypto"
)

const (
	testChainID       = "nolus-test"
	testAccountNumber = uint64(7)
	testSequence      = uint64(3)
	testGasUsed       = uint64(100_000)
)

// fakeRpcClient serves one funded account and records what was simulated and broadcast.
type fakeRpcClient struct {
	lock sync.Mutex

	accounts  map[string]*authtypes.BaseAccount
	balances  sdk.Coins
	delegated sdk.Coin

	simulated      [][]byte
	broadcasted    [][]byte
	accountLookups int

	// When set, Simulate reports on simulateEntered and blocks until simulateGate is closed.
	simulateEntered chan struct{}
	simulateGate    chan struct{}
}

var _ rpc.RpcClient = (*fakeRpcClient)(nil)

func newFakeRpcClient(addresses ...string) *fakeRpcClient {
	accounts := make(map[string]*authtypes.BaseAccount)
	for _, address := range addresses {
		accounts[address] = &authtypes.BaseAccount{
			Address:       address,
			AccountNumber: testAccountNumber,
			Sequence:      testSequence,
		}
	}

	return &fakeRpcClient{
		accounts:  accounts,
		balances:  sdk.NewCoins(sdk.NewCoin("unls", sdkmath.NewInt(1_000_000))),
		delegated: sdk.NewCoin("unls", sdkmath.NewInt(42)),
	}
}

func (f *fakeRpcClient) Broadcast(_ context.Context, txBytes []byte) (*txtypes.BroadcastTxResponse, error) {
	f.lock.Lock()
	defer f.lock.Unlock()

	f.broadcasted = append(f.broadcasted, txBytes)
	return &txtypes.BroadcastTxResponse{
		TxResponse: &sdk.TxResponse{TxHash: coding.TxHash(txBytes), Code: 0},
	}, nil
}

func (f *fakeRpcClient) GetTxStatus(_ context.Context, txHash string) (*txtypes.GetTxResponse, error) {
	return &txtypes.GetTxResponse{
		TxResponse: &sdk.TxResponse{TxHash: txHash, Height: 10},
	}, nil
}

func (f *fakeRpcClient) Simulate(_ context.Context, txBytes []byte) (*txtypes.SimulateResponse, error) {
	f.lock.Lock()
	f.simulated = append(f.simulated, txBytes)
	entered, gate := f.simulateEntered, f.simulateGate
	f.lock.Unlock()

	if gate != nil {
		entered <- struct{}{}
		<-gate
	}

	return &txtypes.SimulateResponse{
		GasInfo: &sdk.GasInfo{GasUsed: testGasUsed},
	}, nil
}

func (f *fakeRpcClient) Account(_ context.Context, address string) (authtypes.AccountI, error) {
	f.lock.Lock()
	defer f.lock.Unlock()

	f.accountLookups++
	account, ok := f.accounts[address]
	if !ok {
		return nil, status.Error(codes.NotFound, "account "+address+" not found")
	}
	return account, nil
}

func (f *fakeRpcClient) accountLookupCount() int {
	f.lock.Lock()
	defer f.lock.Unlock()

	return f.accountLookups
}

func (f *fakeRpcClient) ChainID(_ context.Context) (string, error) {
	return testChainID, nil
}

func (f *fakeRpcClient) GetBalance(_ context.Context, _, denom string) (*sdk.Coin, error) {
	coin := sdk.NewCoin(denom, f.balances.AmountOf(denom))
	return &coin, nil
}

func (f *fakeRpcClient) AllBalances(_ context.Context, _ string) (sdk.Coins, error) {
	return f.balances, nil
}

func (f *fakeRpcClient) DelegatedBalance(_ context.Context, _, _ string) (*sdk.Coin, error) {
	return &f.delegated, nil
}

// emptyBackend holds no keys.
type emptyBackend struct{}

func (emptyBackend) GetAccounts(_ context.Context) ([]crypto.AccountData, error) {
	return nil, nil
}

// enumerateOnlyBackend lists accounts but cannot sign.
type enumerateOnlyBackend struct {
	accounts []crypto.AccountData
}

func (e enumerateOnlyBackend) GetAccounts(_ context.Context) ([]crypto.AccountData, error) {
	return e.accounts, nil
}

type failingBackend struct{}

func (failingBackend) GetAccounts(_ context.Context) ([]crypto.AccountData, error) {
	return nil, errors.New("backend locked")
}

// gatedBackend holds several in-memory keys and parks every direct signature until released.
type gatedBackend struct {
	signers []*crypto.DirectSigner

	entered chan string
	release chan struct{}
}

func (g *gatedBackend) GetAccounts(ctx context.Context) ([]crypto.AccountData, error) {
	var accounts []crypto.AccountData
	for _, signer := range g.signers {
		signerAccounts, err := signer.GetAccounts(ctx)
		if err != nil {
			return nil, err
		}
		accounts = append(accounts, signerAccounts...)
	}
	return accounts, nil
}

func (g *gatedBackend) SignDirect(ctx context.Context, signerAddress string, signDoc *txtypes.SignDoc) (*crypto.DirectSignResponse, error) {
	g.entered <- signerAddress
	<-g.release

	for _, signer := range g.signers {
		accounts, err := signer.GetAccounts(ctx)
		if err != nil {
			return nil, err
		}
		if accounts[0].Address == signerAddress {
			return signer.SignDirect(ctx, signerAddress, signDoc)
		}
	}
	return nil, crypto.ErrUnknownSignerAddress
}
