package tx

import (
	"context"

	"github.com/tessellated-io/nolus-wallet/coding"
	"github.com/tessellated-io/nolus-wallet/log"
)

// TxProvider simulates, prices and signs transactions.
type TxProvider interface {
	ProvideTx(ctx context.Context, request TxRequest) (*SimulatedTx, error)
}

// TxRequest is everything needed to produce a signed transaction for one signer.
type TxRequest struct {
	SignerAddress string
	PubKey        []byte
	Messages      []Message
	Memo          string

	GasFactor float64
	GasPrice  string

	// Used for both simulation and signing.
	SignerData SignerData
}

// txProvider is the default implementation of the TxProvider interface
type txProvider struct {
	pubKeyEncoder     PubKeyEncoder
	simulationManager SimulationManager
	signer            *Signer

	logger *log.Logger
}

// Assert type conformance
var _ TxProvider = (*txProvider)(nil)

func NewTxProvider(pubKeyEncoder PubKeyEncoder, simulationManager SimulationManager, signer *Signer, logger *log.Logger) TxProvider {
	return &txProvider{
		pubKeyEncoder:     pubKeyEncoder,
		simulationManager: simulationManager,
		signer:            signer,

		logger: logger,
	}
}

// ProvideTx simulates the messages, derives gas and fee from the simulation, then signs with the same signer data.
func (txp *txProvider) ProvideTx(ctx context.Context, request TxRequest) (*SimulatedTx, error) {
	logger := txp.logger.With("signer", request.SignerAddress, "sequence", request.SignerData.Sequence)

	if err := ValidateGasMultiplier(request.GasFactor); err != nil {
		return nil, err
	}

	pubKey, err := txp.pubKeyEncoder(request.PubKey)
	if err != nil {
		return nil, err
	}

	simulationResult, err := txp.simulationManager.SimulateTx(ctx, request.Messages, request.Memo, pubKey, request.SignerData.Sequence, request.GasFactor)
	if err != nil {
		return nil, err
	}

	fee, err := CalculateFee(simulationResult.GasRecommendation, request.GasPrice)
	if err != nil {
		return nil, err
	}
	logger.Debug("calculated fee", "gas_limit", fee.Gas, "fee", fee.Amount.String())

	signerData := request.SignerData
	txRaw, err := txp.signer.Sign(ctx, request.SignerAddress, request.Messages, fee, request.Memo, &signerData)
	if err != nil {
		return nil, err
	}

	txBytes, err := EncodeTxRaw(txRaw)
	if err != nil {
		return nil, err
	}

	txHash := coding.TxHash(txBytes)
	logger.Info("signed transaction", "tx_hash", txHash, "gas_limit", fee.Gas)

	return &SimulatedTx{
		TxHash:  txHash,
		TxBytes: txBytes,
		UsedFee: fee,
	}, nil
}
