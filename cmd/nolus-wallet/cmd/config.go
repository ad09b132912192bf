package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tessellated-io/nolus-wallet/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the wallet configuration",
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default config file to the home directory",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := config.WriteDefault(home, logger); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "config written to %s\n", home)
		return nil
	},
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "network:        %s\n", cfg.Network)
		fmt.Fprintf(out, "log_level:      %s\n", cfg.LogLevel)
		fmt.Fprintf(out, "gas_multiplier: %g\n", cfg.GasMultiplier)
		fmt.Fprintf(out, "gas_price:      %s\n", cfg.GasPrice)
		fmt.Fprintf(out, "sign_mode:      %s\n", cfg.SignMode)
		fmt.Fprintf(out, "key_backend:    %s\n", cfg.KeyBackend)
		fmt.Fprintf(out, "coin_type:      %d\n", cfg.CoinType)
		return nil
	},
}

func init() {
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configShowCmd)
	rootCmd.AddCommand(configCmd)
}
