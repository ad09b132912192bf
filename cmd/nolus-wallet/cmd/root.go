package cmd

import (
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/tessellated-io/nolus-wallet/config"
	"github.com/tessellated-io/nolus-wallet/log"
)

var (
	home       string
	configFile string

	cfg    *config.Config
	logger *log.Logger
)

var rootCmd = &cobra.Command{
	Use:           "nolus-wallet",
	Short:         "Sign, simulate and send transactions on Nolus networks",
	SilenceUsage:  true,
	SilenceErrors: false,

	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// config init runs before any config exists
		if cmd == configInitCmd {
			logger = log.NewLogger("info")
			return nil
		}

		if configFile == "" {
			configFile = filepath.Join(home, config.DefaultConfigFile)
		}

		// A fresh viper per run keeps values from an earlier config file out of this one.
		v := viper.New()
		if err := bindFlags(v, cmd.Root().PersistentFlags()); err != nil {
			return err
		}
		config.SetDefaults(v, home)

		bootstrapLogger := log.NewLogger(v.GetString("log_level"))
		loaded, err := config.Load(v, configFile, bootstrapLogger)
		if err != nil {
			return err
		}

		cfg = loaded
		logger = log.NewLoggerWithPrefixes(cfg.LogLevel, []string{"[nolus-wallet]"})
		return nil
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&home, "home", config.ExpandHomeDir(config.DefaultHome), "Home directory of the wallet")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "Config file (default is <home>/config.yml)")

	rootCmd.PersistentFlags().String("network", "", "Network to use: localnet, devnet or testnet")
	rootCmd.PersistentFlags().String("log-level", "", "Log level: debug, info, warn or error")
	rootCmd.PersistentFlags().Float64("gas-multiplier", 0, "Multiplier applied to simulated gas")
	rootCmd.PersistentFlags().String("gas-price", "", "Gas price, e.g. 0.0025unls")
}

// Config keys and the persistent flags that override them.
var flagBindings = map[string]string{
	"network":        "network",
	"log_level":      "log-level",
	"gas_multiplier": "gas-multiplier",
	"gas_price":      "gas-price",
}

func bindFlags(v *viper.Viper, flags *pflag.FlagSet) error {
	for key, flag := range flagBindings {
		if err := v.BindPFlag(key, flags.Lookup(flag)); err != nil {
			return err
		}
	}
	return nil
}
