package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/tessellated-io/nolus-wallet/cosmos/tx"
	cosmosutil "github.com/tessellated-io/nolus-wallet/cosmos/util"
	"github.com/tessellated-io/nolus-wallet/wallet"
)

var (
	memo      string
	broadcast bool
	wait      bool

	counterpartyKey string
	sourceChannel   string
	timeoutSeconds  uint64

	funds string
)

var txCmd = &cobra.Command{
	Use:   "tx",
	Short: "Simulate, sign and optionally broadcast transactions",
}

var sendCmd = &cobra.Command{
	Use:   "send [to-address] [amount]",
	Short: "Send tokens, e.g. send nolus1... 1000unls",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		amount, err := cosmosutil.ParseAmount(args[1])
		if err != nil {
			return err
		}

		w, err := buildWallet(cmd.Context())
		if err != nil {
			return err
		}

		result, err := w.SimulateBankTransferTx(cmd.Context(), args[0], amount, cfg.GasMultiplier, cfg.GasPrice, memo)
		if err != nil {
			return err
		}
		return finish(cmd, w, result)
	},
}

var ibcCmd = &cobra.Command{
	Use:   "ibc [to-address] [amount]",
	Short: "Send tokens to a counterparty network over IBC",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		amount, err := cosmosutil.ParseAmount(args[1])
		if err != nil {
			return err
		}
		if len(amount) != 1 {
			return fmt.Errorf("ibc transfers carry exactly one coin, got %s", amount)
		}

		w, err := buildWallet(cmd.Context())
		if err != nil {
			return err
		}

		channel := sourceChannel
		if channel == "" {
			counterparty, ok := w.Network().Counterparty(counterpartyKey)
			if !ok {
				return fmt.Errorf("unknown counterparty %s on %s", counterpartyKey, w.Network().Name)
			}
			channel = counterparty.SourceChannel
		}

		request := tx.IbcTransferRequest{
			ToAddress:      args[0],
			Amount:         amount[0],
			SourcePort:     tx.TransferPort,
			SourceChannel:  channel,
			TimeoutSeconds: timeoutSeconds,
			Memo:           memo,
		}
		result, err := w.SimulateSendIbcTokensTx(cmd.Context(), request, cfg.GasMultiplier, cfg.GasPrice)
		if err != nil {
			return err
		}
		return finish(cmd, w, result)
	},
}

var executeCmd = &cobra.Command{
	Use:   "execute [contract] [json-msg]",
	Short: "Execute a CosmWasm contract",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		w, err := buildWallet(cmd.Context())
		if err != nil {
			return err
		}

		fundsCoins, err := parseOptionalAmount(funds)
		if err != nil {
			return err
		}

		result, err := w.SimulateExecuteContractTx(cmd.Context(), args[0], []byte(args[1]), fundsCoins, cfg.GasMultiplier, cfg.GasPrice, memo)
		if err != nil {
			return err
		}
		return finish(cmd, w, result)
	},
}

func parseOptionalAmount(amount string) (sdk.Coins, error) {
	if amount == "" {
		return sdk.NewCoins(), nil
	}
	return cosmosutil.ParseAmount(amount)
}

// finish prints the signed transaction, then broadcasts it when asked.
func finish(cmd *cobra.Command, w *wallet.Wallet, result *tx.SimulatedTx) error {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "tx_hash: %s\n", result.TxHash)
	fmt.Fprintf(out, "gas:     %d\n", result.UsedFee.Gas)
	fmt.Fprintf(out, "fee:     %s\n", result.UsedFee.Amount.String())

	if !broadcast {
		return nil
	}

	response, err := w.Broadcast(cmd.Context(), result.TxBytes)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "broadcast, code %d\n", response.TxResponse.Code)

	if !wait {
		return nil
	}

	status, err := w.WaitForInclusion(cmd.Context(), result.TxHash)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "included at height %d\n", status.TxResponse.Height)
	return nil
}

func init() {
	txCmd.PersistentFlags().StringVar(&memo, "memo", "", "Memo to attach")
	txCmd.PersistentFlags().BoolVar(&broadcast, "broadcast", false, "Broadcast the signed transaction")
	txCmd.PersistentFlags().BoolVar(&wait, "wait", false, "Wait for the broadcast transaction to be included")

	ibcCmd.Flags().StringVar(&counterpartyKey, "counterparty", "OSMO", "Counterparty network key")
	ibcCmd.Flags().StringVar(&sourceChannel, "channel", "", "Source channel, overriding the counterparty's")
	ibcCmd.Flags().Uint64Var(&timeoutSeconds, "timeout", 600, "Timeout in seconds from now")

	executeCmd.Flags().StringVar(&funds, "funds", "", "Funds sent along, e.g. 1000unls")

	txCmd.AddCommand(sendCmd)
	txCmd.AddCommand(ibcCmd)
	txCmd.AddCommand(executeCmd)
	rootCmd.AddCommand(txCmd)
}
