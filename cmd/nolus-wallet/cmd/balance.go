package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var denom string

var balanceCmd = &cobra.Command{
	Use:   "balance",
	Short: "Print liquid and delegated balances of the wallet",
	RunE: func(cmd *cobra.Command, args []string) error {
		w, err := buildWallet(cmd.Context())
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if denom != "" {
			balance, err := w.Balance(cmd.Context(), denom)
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "%s: %s\n", w.Address(), balance.String())
			return nil
		}

		balances, err := w.Balances(cmd.Context())
		if err != nil {
			return err
		}

		fmt.Fprintf(out, "address:   %s\n", w.Address())
		fmt.Fprintf(out, "balances:  %s\n", balances.Native.String())
		fmt.Fprintf(out, "delegated: %s\n", balances.Delegated.String())
		return nil
	},
}

func init() {
	balanceCmd.Flags().StringVar(&denom, "denom", "", "Only print the liquid balance of this denom")
	rootCmd.AddCommand(balanceCmd)
}
