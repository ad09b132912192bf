package rpc

import (
	"context"
	"fmt"

	"google.golang.org/grpc"

	sdkmath "cosmossdk.io/math"

	"github.com/cosmos/cosmos-sdk/client/grpc/tmservice"
	"github.com/cosmos/cosmos-sdk/codec"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/cosmos/cosmos-sdk/types/query"
	txtypes "github.com/cosmos/cosmos-sdk/types/tx"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"
	banktypes "github.com/cosmos/cosmos-sdk/x/bank/types"
	stakingtypes "github.com/cosmos/cosmos-sdk/x/staking/types"

	"github.com/tessellated-io/nolus-wallet/arrays"
	"github.com/tessellated-io/nolus-wallet/cosmos/util"
	pgrpc "github.com/tessellated-io/nolus-wallet/grpc"
	"github.com/tessellated-io/nolus-wallet/log"
)

// Page size to use
const pageSize = 100

// grpcClient is the private and default implementation.
type grpcClient struct {
	cdc *codec.ProtoCodec

	authClient    authtypes.QueryClient
	bankClient    banktypes.QueryClient
	nodeClient    tmservice.ServiceClient
	stakingClient stakingtypes.QueryClient
	txClient      txtypes.ServiceClient

	log *log.Logger
}

// A struct that came back from an RPC query
type paginatedRpcResponse[dataType any] struct {
	data    []dataType
	nextKey []byte
}

// Ensure that grpcClient implements RpcClient
var _ RpcClient = (*grpcClient)(nil)

// NewGrpcClient makes a new RpcClient against a node's gRPC endpoint.
func NewGrpcClient(nodeGrpcUri string, cdc *codec.ProtoCodec, log *log.Logger) (RpcClient, error) {
	conn, err := pgrpc.GetGrpcConnection(nodeGrpcUri, grpc.WithDefaultCallOptions(grpc.ForceCodec(cdc.GRPCCodec())))
	if err != nil {
		log.Error("Unable to connect to gRPC", "grpc_url", nodeGrpcUri)
		return nil, err
	}

	return newGrpcClient(conn, cdc, log), nil
}

// NewGrpcClientWithConn makes a new RpcClient over an existing connection.
func NewGrpcClientWithConn(conn grpc.ClientConnInterface, cdc *codec.ProtoCodec, log *log.Logger) RpcClient {
	return newGrpcClient(conn, cdc, log)
}

func newGrpcClient(conn grpc.ClientConnInterface, cdc *codec.ProtoCodec, log *log.Logger) *grpcClient {
	return &grpcClient{
		cdc: cdc,

		authClient:    authtypes.NewQueryClient(conn),
		bankClient:    banktypes.NewQueryClient(conn),
		nodeClient:    tmservice.NewServiceClient(conn),
		stakingClient: stakingtypes.NewQueryClient(conn),
		txClient:      txtypes.NewServiceClient(conn),

		log: log,
	}
}

func (r *grpcClient) GetBalance(ctx context.Context, address, denom string) (*sdk.Coin, error) {
	balances, err := r.AllBalances(ctx, address)
	if err != nil {
		return nil, err
	}

	coin, err := util.ExtractCoin(denom, balances)
	if err != nil {
		// No balance in a denom is a zero balance.
		zero := sdk.NewCoin(denom, sdkmath.ZeroInt())
		return &zero, nil
	}
	return coin, nil
}

func (r *grpcClient) AllBalances(ctx context.Context, address string) (sdk.Coins, error) {
	getBalancesFunc := func(ctx context.Context, pageKey []byte) (*paginatedRpcResponse[sdk.Coin], error) {
		pagination := &query.PageRequest{
			Key:   pageKey,
			Limit: pageSize,
		}

		request := &banktypes.QueryAllBalancesRequest{
			Address:    address,
			Pagination: pagination,
		}

		response, err := r.bankClient.AllBalances(ctx, request)
		if err != nil {
			return nil, err
		}

		return &paginatedRpcResponse[sdk.Coin]{
			data:    response.Balances,
			nextKey: nextKey(response.Pagination),
		}, nil
	}

	balances, err := retrievePaginatedData(ctx, r.log, "balances", getBalancesFunc)
	if err != nil {
		return nil, err
	}
	r.log.Debug("retrieved balances", "num_balances", len(balances), "address", address)

	return sdk.Coins(balances), nil
}

func (r *grpcClient) DelegatedBalance(ctx context.Context, delegator, stakingDenom string) (*sdk.Coin, error) {
	fetchDelegationPageFunc := func(ctx context.Context, pageKey []byte) (*paginatedRpcResponse[stakingtypes.DelegationResponse], error) {
		pagination := &query.PageRequest{
			Key:   pageKey,
			Limit: pageSize,
		}

		request := &stakingtypes.QueryDelegatorDelegationsRequest{
			DelegatorAddr: delegator,
			Pagination:    pagination,
		}
		response, err := r.stakingClient.DelegatorDelegations(ctx, request)
		if err != nil {
			return nil, err
		}

		return &paginatedRpcResponse[stakingtypes.DelegationResponse]{
			data:    response.DelegationResponses,
			nextKey: nextKey(response.Pagination),
		}, nil
	}

	delegations, err := retrievePaginatedData(ctx, r.log, "delegations", fetchDelegationPageFunc)
	if err != nil {
		return nil, err
	}

	sumFunc := func(total sdkmath.Int, delegation stakingtypes.DelegationResponse) sdkmath.Int {
		if delegation.Balance.Denom != stakingDenom {
			return total
		}
		return total.Add(delegation.Balance.Amount)
	}
	total := arrays.Reduce(delegations, sumFunc, sdkmath.ZeroInt())
	r.log.Debug("retrieved delegations", "delegator", delegator, "num_delegations", len(delegations), "total", total.String())

	coin := sdk.NewCoin(stakingDenom, total)
	return &coin, nil
}

func (r *grpcClient) Broadcast(
	ctx context.Context,
	txBytes []byte,
) (*txtypes.BroadcastTxResponse, error) {
	// Form a query
	query := &txtypes.BroadcastTxRequest{
		Mode:    txtypes.BroadcastMode_BROADCAST_MODE_SYNC,
		TxBytes: txBytes,
	}

	// Send tx
	return r.txClient.BroadcastTx(
		ctx,
		query,
	)
}

func (r *grpcClient) GetTxStatus(ctx context.Context, txHash string) (*txtypes.GetTxResponse, error) {
	request := &txtypes.GetTxRequest{Hash: txHash}
	return r.txClient.GetTx(ctx, request)
}

func (r *grpcClient) Account(ctx context.Context, address string) (authtypes.AccountI, error) {
	// Make a query
	query := &authtypes.QueryAccountRequest{Address: address}
	res, err := r.authClient.Account(
		ctx,
		query,
	)
	if err != nil {
		return nil, err
	}

	// Deserialize response
	var account authtypes.AccountI
	if err := r.cdc.UnpackAny(res.Account, &account); err != nil {
		return nil, err
	}

	return account, nil
}

func (r *grpcClient) ChainID(ctx context.Context) (string, error) {
	response, err := r.nodeClient.GetNodeInfo(ctx, &tmservice.GetNodeInfoRequest{})
	if err != nil {
		return "", err
	}
	if response.DefaultNodeInfo == nil {
		return "", fmt.Errorf("node info response carried no node info")
	}

	return response.DefaultNodeInfo.Network, nil
}

func (r *grpcClient) Simulate(
	ctx context.Context,
	txBytes []byte,
) (*txtypes.SimulateResponse, error) {
	// Form a query
	query := &txtypes.SimulateRequest{
		TxBytes: txBytes,
	}
	simulationResponse, err := r.txClient.Simulate(ctx, query)
	if err != nil {
		return nil, err
	}

	return simulationResponse, nil
}

// Pagination

func nextKey(pagination *query.PageResponse) []byte {
	if pagination == nil {
		return nil
	}
	return pagination.NextKey
}

// NOTE: Implemented as a private standalone func since go doesn't seem to support generics on struct methods.
func retrievePaginatedData[DataType any](
	ctx context.Context,
	logger *log.Logger,
	noun string,
	retrievePageFn func(
		ctx context.Context,
		nextKey []byte,
	) (*paginatedRpcResponse[DataType], error),
) ([]DataType, error) {
	// Running list of data
	data := []DataType{}

	// Loop through all pages
	var nextKey []byte
	for {
		rpcResponse, err := retrievePageFn(ctx, nextKey)
		if err != nil {
			return nil, err
		}

		// Append the data
		data = append(data, rpcResponse.data...)
		logger.Debug(fmt.Sprintf("fetched page of %s", noun), "num_in_page", len(rpcResponse.data), "total_fetched", len(data))

		// Update next key or break out of loop if we have finished
		if len(rpcResponse.nextKey) == 0 {
			break
		}
		nextKey = rpcResponse.nextKey
	}

	return data, nil
}
