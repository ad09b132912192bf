package tx

import (
	"context"
	"fmt"

	cryptotypes "github.com/cosmos/cosmos-sdk/crypto/types"
	txtypes "github.com/cosmos/cosmos-sdk/types/tx"
	"github.com/cosmos/cosmos-sdk/types/tx/signing"
	"github.com/cosmos/cosmos-sdk/x/auth/migrations/legacytx"

	"github.com/tessellated-io/nolus-wallet/cosmos/rpc"
	"github.com/tessellated-io/nolus-wallet/log"
)

// SimulationManager manages simulating gas from transactions.
type SimulationManager interface {
	SimulateTx(ctx context.Context, msgs []Message, memo string, pubKey cryptotypes.PubKey, sequence uint64, gasFactor float64) (*SimulationResult, error)
	SimulateTxBytes(ctx context.Context, txBytes []byte, gasFactor float64) (*SimulationResult, error)
}

// simulationManager is the default implementation
type simulationManager struct {
	rpcClient rpc.RpcClient
	logger    *log.Logger
}

// Ensure type conformance
var _ SimulationManager = (*simulationManager)(nil)

// NewSimulationManager makes a new default simulationManager
func NewSimulationManager(rpcClient rpc.RpcClient, logger *log.Logger) SimulationManager {
	return &simulationManager{
		rpcClient: rpcClient,
		logger:    logger.ApplyPrefix("[simulation]"),
	}
}

// Simulation Manager interface

// SimulateTx simulates an unsigned transaction. The signer info carries the public key and sequence with an
// unspecified sign mode, and the single signature is empty.
func (sm *simulationManager) SimulateTx(ctx context.Context, msgs []Message, memo string, pubKey cryptotypes.PubKey, sequence uint64, gasFactor float64) (*SimulationResult, error) {
	sdkMsgs, err := Unwrap(msgs)
	if err != nil {
		return nil, err
	}

	bodyBytes, err := encodeTxBody(sdkMsgs, memo)
	if err != nil {
		return nil, err
	}

	authInfoBytes, err := encodeAuthInfo(pubKey, sequence, signing.SignMode_SIGN_MODE_UNSPECIFIED, legacytx.StdFee{})
	if err != nil {
		return nil, err
	}

	txBytes, err := EncodeTxRaw(&txtypes.TxRaw{
		BodyBytes:     bodyBytes,
		AuthInfoBytes: authInfoBytes,
		Signatures:    [][]byte{{}},
	})
	if err != nil {
		return nil, err
	}

	return sm.SimulateTxBytes(ctx, txBytes, gasFactor)
}

func (sm *simulationManager) SimulateTxBytes(ctx context.Context, txBytes []byte, gasFactor float64) (*SimulationResult, error) {
	simulationResponse, err := sm.rpcClient.Simulate(ctx, txBytes)
	if err != nil {
		return nil, err
	}

	if simulationResponse.GasInfo == nil {
		return nil, fmt.Errorf("simulation response carried no gas info")
	}

	gasUsed := simulationResponse.GasInfo.GasUsed
	result := &SimulationResult{
		GasUsed:           gasUsed,
		GasRecommendation: AdjustGas(gasUsed, gasFactor),
	}
	sm.logger.Debug("simulated gas", "gas_used", result.GasUsed, "gas_factor", gasFactor, "gas_recommendation", result.GasRecommendation)

	return result, nil
}
