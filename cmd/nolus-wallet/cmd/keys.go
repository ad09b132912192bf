package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tessellated-io/nolus-wallet/config"
	"github.com/tessellated-io/nolus-wallet/crypto"
)

var keysCmd = &cobra.Command{
	Use:   "keys",
	Short: "Manage wallet keys",
}

var keysNewCmd = &cobra.Command{
	Use:   "new",
	Short: "Generate a mnemonic and store it in the configured mnemonic file",
	RunE: func(cmd *cobra.Command, args []string) error {
		if cfg.KeyBackend != config.KeyBackendMnemonic {
			return fmt.Errorf("keys new requires the %s key backend, configured: %s", config.KeyBackendMnemonic, cfg.KeyBackend)
		}

		descriptor, err := currentNetwork()
		if err != nil {
			return err
		}
		if err := checkCoinType(descriptor); err != nil {
			return err
		}

		exists, err := config.FileExists(cfg.MnemonicFile)
		if err != nil {
			return err
		}
		if exists {
			return fmt.Errorf("mnemonic file already exists: %s", cfg.MnemonicFile)
		}

		mnemonic, err := crypto.GenerateMnemonic()
		if err != nil {
			return err
		}

		bytesSigner, err := crypto.NewSoftSigner(cfg.CoinType, mnemonic)
		if err != nil {
			return err
		}

		if err := config.CreateDirectoryIfNeeded(home, logger); err != nil {
			return err
		}
		if err := config.SafeWrite(cfg.MnemonicFile, []byte(mnemonic+"\n"), logger); err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "address: %s\nmnemonic written to %s, back it up\n", bytesSigner.GetAddress(descriptor.AddressPrefix), cfg.MnemonicFile)
		return nil
	},
}

var addressCmd = &cobra.Command{
	Use:   "address",
	Short: "Print the wallet address",
	RunE: func(cmd *cobra.Command, args []string) error {
		w, err := buildWallet(cmd.Context())
		if err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), w.Address())
		return nil
	},
}

func init() {
	keysCmd.AddCommand(keysNewCmd)
	rootCmd.AddCommand(keysCmd)
	rootCmd.AddCommand(addressCmd)
}
