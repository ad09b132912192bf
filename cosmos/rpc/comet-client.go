package rpc

import (
	"context"
	"encoding/hex"
	"fmt"
	"strings"

	errorsmod "cosmossdk.io/errors"
	cmtbytes "github.com/cometbft/cometbft/libs/bytes"
	rpcclient "github.com/cometbft/cometbft/rpc/client"
	rpchttp "github.com/cometbft/cometbft/rpc/client/http"
	coretypes "github.com/cometbft/cometbft/rpc/core/types"
	cmttypes "github.com/cometbft/cometbft/types"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/cosmos/cosmos-sdk/codec"
	sdk "github.com/cosmos/cosmos-sdk/types"
	txtypes "github.com/cosmos/cosmos-sdk/types/tx"

	"github.com/tessellated-io/nolus-wallet/log"
)

// CometRPC is the subset of the CometBFT RPC the wallet uses.
type CometRPC interface {
	ABCIQueryWithOptions(ctx context.Context, path string, data cmtbytes.HexBytes, opts rpcclient.ABCIQueryOptions) (*coretypes.ResultABCIQuery, error)
	Status(ctx context.Context) (*coretypes.ResultStatus, error)
	BroadcastTxSync(ctx context.Context, tx cmttypes.Tx) (*coretypes.ResultBroadcastTx, error)
	Tx(ctx context.Context, hash []byte, prove bool) (*coretypes.ResultTx, error)
}

// cometClient queries over ABCI and broadcasts over the CometBFT RPC, for nodes which only expose port 26657.
type cometClient struct {
	*grpcClient

	comet CometRPC
}

// Ensure that cometClient implements RpcClient
var _ RpcClient = (*cometClient)(nil)

// NewCometClient makes a new RpcClient against a node's CometBFT RPC endpoint.
func NewCometClient(nodeRpcUri string, cdc *codec.ProtoCodec, log *log.Logger) (RpcClient, error) {
	comet, err := rpchttp.New(nodeRpcUri, "/websocket")
	if err != nil {
		log.Error("Unable to create CometBFT RPC client", "rpc_url", nodeRpcUri)
		return nil, err
	}

	return NewCometClientWithRPC(comet, cdc, log), nil
}

// NewCometClientWithRPC makes a new RpcClient over an existing CometBFT RPC client.
func NewCometClientWithRPC(comet CometRPC, cdc *codec.ProtoCodec, log *log.Logger) RpcClient {
	conn := &abciClientConn{
		cdc:   cdc,
		comet: comet,
	}

	return &cometClient{
		grpcClient: newGrpcClient(conn, cdc, log),
		comet:      comet,
	}
}

func (c *cometClient) Broadcast(ctx context.Context, txBytes []byte) (*txtypes.BroadcastTxResponse, error) {
	result, err := c.comet.BroadcastTxSync(ctx, txBytes)
	if err != nil {
		return nil, err
	}

	return &txtypes.BroadcastTxResponse{
		TxResponse: &sdk.TxResponse{
			TxHash:    result.Hash.String(),
			Code:      result.Code,
			Codespace: result.Codespace,
			RawLog:    result.Log,
		},
	}, nil
}

func (c *cometClient) GetTxStatus(ctx context.Context, txHash string) (*txtypes.GetTxResponse, error) {
	hash, err := hex.DecodeString(txHash)
	if err != nil {
		return nil, err
	}

	result, err := c.comet.Tx(ctx, hash, false)
	if err != nil {
		if strings.Contains(err.Error(), "not found") {
			return nil, status.Error(codes.NotFound, err.Error())
		}
		return nil, err
	}

	return &txtypes.GetTxResponse{
		TxResponse: &sdk.TxResponse{
			Height:    result.Height,
			TxHash:    result.Hash.String(),
			Codespace: result.TxResult.Codespace,
			Code:      result.TxResult.Code,
			RawLog:    result.TxResult.Log,
			GasWanted: result.TxResult.GasWanted,
			GasUsed:   result.TxResult.GasUsed,
		},
	}, nil
}

func (c *cometClient) ChainID(ctx context.Context) (string, error) {
	result, err := c.comet.Status(ctx)
	if err != nil {
		return "", err
	}

	return result.NodeInfo.Network, nil
}

// abciClientConn routes unary gRPC query calls through ABCI queries, using the method name as the query path.
type abciClientConn struct {
	cdc   *codec.ProtoCodec
	comet CometRPC
}

var _ grpc.ClientConnInterface = (*abciClientConn)(nil)

func (a *abciClientConn) Invoke(ctx context.Context, method string, args, reply interface{}, _ ...grpc.CallOption) error {
	request, ok := args.(codec.ProtoMarshaler)
	if !ok {
		return fmt.Errorf("abci query %s: request is not a protobuf message", method)
	}
	response, ok := reply.(codec.ProtoMarshaler)
	if !ok {
		return fmt.Errorf("abci query %s: response is not a protobuf message", method)
	}

	requestBytes, err := a.cdc.Marshal(request)
	if err != nil {
		return err
	}

	result, err := a.comet.ABCIQueryWithOptions(ctx, method, requestBytes, rpcclient.ABCIQueryOptions{})
	if err != nil {
		return err
	}

	if !result.Response.IsOK() {
		return errorsmod.ABCIError(result.Response.Codespace, result.Response.Code, result.Response.Log)
	}

	return a.cdc.Unmarshal(result.Response.Value, response)
}

func (a *abciClientConn) NewStream(_ context.Context, _ *grpc.StreamDesc, method string, _ ...grpc.CallOption) (grpc.ClientStream, error) {
	return nil, fmt.Errorf("streaming is not supported over abci: %s", method)
}
