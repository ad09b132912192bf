package config

import (
	"fmt"
	"path/filepath"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"

	"github.com/tessellated-io/nolus-wallet/log"
)

const (
	DefaultHome       = "~/.nolus-wallet"
	DefaultConfigFile = "config.yml"

	KeyBackendMnemonic = "mnemonic"
	KeyBackendKeyring  = "keyring"
)

// Config selects a network and the wallet's defaults. It never describes a network itself.
type Config struct {
	Network       string  `yaml:"network" mapstructure:"network" validate:"required" comment:"Network to use: localnet, devnet or testnet"`
	LogLevel      string  `yaml:"log_level" mapstructure:"log_level" validate:"oneof=debug info warn error" comment:"Log level: debug, info, warn or error"`
	GasMultiplier float64 `yaml:"gas_multiplier" mapstructure:"gas_multiplier" validate:"gt=0" comment:"Multiplier applied to simulated gas"`
	GasPrice      string  `yaml:"gas_price" mapstructure:"gas_price" comment:"Gas price override, e.g. 0.0025unls. Empty uses the network default"`
	SignMode      string  `yaml:"sign_mode" mapstructure:"sign_mode" validate:"oneof=direct amino" comment:"Signing mode for mnemonic keys: direct or amino"`

	KeyBackend   string `yaml:"key_backend" mapstructure:"key_backend" validate:"oneof=mnemonic keyring" comment:"Where keys come from: mnemonic or keyring"`
	MnemonicFile string `yaml:"mnemonic_file" mapstructure:"mnemonic_file" validate:"required_if=KeyBackend mnemonic" comment:"File holding the wallet mnemonic"`
	CoinType     uint32 `yaml:"coin_type" mapstructure:"coin_type" validate:"oneof=118 60" comment:"BIP44 coin type used to derive the key: 118 or 60"`
	KeyringDir   string `yaml:"keyring_dir" mapstructure:"keyring_dir" validate:"required_if=KeyBackend keyring" comment:"Directory of a cosmos-sdk file keyring"`
}

// Default returns the config written by `config init`.
func Default(home string) *Config {
	return &Config{
		Network:       "devnet",
		LogLevel:      "info",
		GasMultiplier: 1.5,
		GasPrice:      "",
		SignMode:      "direct",

		KeyBackend:   KeyBackendMnemonic,
		MnemonicFile: filepath.Join(home, "mnemonic"),
		CoinType:     118,
		KeyringDir:   filepath.Join(home, "keyring"),
	}
}

// SetDefaults registers default values so a partial file or bare flags still produce a complete config.
func SetDefaults(v *viper.Viper, home string) {
	defaults := Default(home)

	v.SetDefault("network", defaults.Network)
	v.SetDefault("log_level", defaults.LogLevel)
	v.SetDefault("gas_multiplier", defaults.GasMultiplier)
	v.SetDefault("gas_price", defaults.GasPrice)
	v.SetDefault("sign_mode", defaults.SignMode)
	v.SetDefault("key_backend", defaults.KeyBackend)
	v.SetDefault("mnemonic_file", defaults.MnemonicFile)
	v.SetDefault("coin_type", defaults.CoinType)
	v.SetDefault("keyring_dir", defaults.KeyringDir)
}

// Load reads the config file if it exists, layers it under anything already bound to v, and validates the result.
func Load(v *viper.Viper, configFile string, logger *log.Logger) (*Config, error) {
	exists, err := FileExists(configFile)
	if err != nil {
		return nil, err
	}

	if exists {
		v.SetConfigFile(ExpandHomeDir(configFile))
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", configFile, err)
		}
		logger.Debug("loaded config file", "file", configFile)
	} else {
		logger.Debug("no config file found, using defaults and flags", "file", configFile)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.MnemonicFile = ExpandHomeDir(cfg.MnemonicFile)
	cfg.KeyringDir = ExpandHomeDir(cfg.KeyringDir)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// WriteDefault writes a commented default config, leaving any existing file alone.
func WriteDefault(home string, logger *log.Logger) error {
	err := CreateDirectoryIfNeeded(home, logger)
	if err != nil {
		return err
	}

	configFile := filepath.Join(home, DefaultConfigFile)
	return WriteYamlWithComments(Default(home), "Nolus wallet configuration", configFile, logger)
}
