package wallet

import (
	"context"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/tessellated-io/nolus-wallet/cosmos/tx"
)

// SimulateBankTransferTx prices and signs a bank send from the bound account. An empty gasPrice uses the network's.
func (w *Wallet) SimulateBankTransferTx(ctx context.Context, toAddress string, amount sdk.Coins, gasMultiplier float64, gasPrice, memo string) (*tx.SimulatedTx, error) {
	address, _, err := w.boundAccount()
	if err != nil {
		return nil, err
	}

	msg, err := w.messageBuilder(address).BuildBankTransfer(toAddress, amount)
	if err != nil {
		return nil, err
	}

	return w.simulate(ctx, msg, gasMultiplier, gasPrice, memo)
}

// SimulateSendIbcTokensTx prices and signs an IBC transfer. The request memo travels with the packet, the
// transaction itself carries none.
func (w *Wallet) SimulateSendIbcTokensTx(ctx context.Context, request tx.IbcTransferRequest, gasMultiplier float64, gasPrice string) (*tx.SimulatedTx, error) {
	address, _, err := w.boundAccount()
	if err != nil {
		return nil, err
	}

	if request.SourcePort == "" {
		request.SourcePort = tx.TransferPort
	}

	msg, err := w.messageBuilder(address).BuildIbcTransfer(request)
	if err != nil {
		return nil, err
	}

	return w.simulate(ctx, msg, gasMultiplier, gasPrice, "")
}

// SimulateExecuteContractTx prices and signs a CosmWasm contract execution.
func (w *Wallet) SimulateExecuteContractTx(ctx context.Context, contract string, executeMsg []byte, funds sdk.Coins, gasMultiplier float64, gasPrice, memo string) (*tx.SimulatedTx, error) {
	address, _, err := w.boundAccount()
	if err != nil {
		return nil, err
	}

	msg, err := w.messageBuilder(address).BuildExecuteContract(contract, executeMsg, funds)
	if err != nil {
		return nil, err
	}

	return w.simulate(ctx, msg, gasMultiplier, gasPrice, memo)
}

// simulate holds the address's sequence guard from resolving signer data until the signature is produced, so the
// same sequence is simulated and signed.
func (w *Wallet) simulate(ctx context.Context, msg tx.Message, gasMultiplier float64, gasPrice, memo string) (*tx.SimulatedTx, error) {
	address, pubKey, err := w.boundAccount()
	if err != nil {
		return nil, err
	}

	if gasPrice == "" {
		gasPrice = w.network.GasPrice
	}

	guard := w.sequenceGuard(address)
	guard.Lock()
	defer guard.Unlock()

	signerData, err := w.resolver.SignerData(ctx, address)
	if err != nil {
		return nil, err
	}

	w.logger.Debug("simulating transaction", "type_url", msg.TypeURL, "sequence", signerData.Sequence, "gas_multiplier", gasMultiplier, "gas_price", gasPrice)

	return w.txProvider.ProvideTx(ctx, tx.TxRequest{
		SignerAddress: address,
		PubKey:        pubKey,
		Messages:      []tx.Message{msg},
		Memo:          memo,

		GasFactor: gasMultiplier,
		GasPrice:  gasPrice,

		SignerData: *signerData,
	})
}
