package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/cosmos/cosmos-sdk/crypto/keyring"
	evmoshd "github.com/evmos/evmos/v14/crypto/hd"

	"github.com/tessellated-io/nolus-wallet/config"
	"github.com/tessellated-io/nolus-wallet/cosmos/rest"
	"github.com/tessellated-io/nolus-wallet/cosmos/rpc"
	"github.com/tessellated-io/nolus-wallet/cosmos/tx"
	"github.com/tessellated-io/nolus-wallet/crypto"
	"github.com/tessellated-io/nolus-wallet/networks"
	"github.com/tessellated-io/nolus-wallet/wallet"
)

const (
	queryAttempts = 3
	queryDelay    = 1 * time.Second
)

func currentNetwork() (*networks.Descriptor, error) {
	return networks.NewRegistry().Get(cfg.Network)
}

// buildWallet wires the configured network and key backend into a wallet bound to its first account.
func buildWallet(ctx context.Context) (*wallet.Wallet, error) {
	descriptor, err := currentNetwork()
	if err != nil {
		return nil, err
	}
	if cfg.GasPrice != "" {
		overridden := *descriptor
		overridden.GasPrice = cfg.GasPrice
		descriptor = &overridden
	}

	encoding := tx.NewEncodingConfig()

	var rpcClient rpc.RpcClient
	if descriptor.GrpcURL != "" {
		rpcClient, err = rpc.NewGrpcClient(descriptor.GrpcURL, encoding.Codec, logger)
	} else {
		rpcClient, err = rpc.NewCometClient(descriptor.RpcURL, encoding.Codec, logger)
	}
	if err != nil {
		return nil, err
	}
	rpcClient = rpc.NewRetryableRpcClient(queryAttempts, queryDelay, rpcClient, logger)

	backend, err := keyBackend(descriptor, encoding)
	if err != nil {
		return nil, err
	}

	opts := []wallet.Option{}
	if descriptor.ApiURL != "" {
		opts = append(opts, wallet.WithRestClient(rest.NewClient(descriptor.ApiURL, encoding.Codec, logger)))
	}

	w := wallet.NewWallet(descriptor, backend, rpcClient, logger, opts...)
	if err := w.UseAccount(ctx); err != nil {
		return nil, err
	}
	return w, nil
}

// checkCoinType fails when the configured coin type derives keys the network cannot verify.
func checkCoinType(descriptor *networks.Descriptor) error {
	algo, err := crypto.AlgoForCoinType(cfg.CoinType)
	if err != nil {
		return err
	}

	if expected := tx.KeyAlgoForPrefix(descriptor.AddressPrefix); algo != expected {
		return fmt.Errorf("coin_type %d derives %s keys, %s accounts need %s", cfg.CoinType, algo, descriptor.AddressPrefix, expected)
	}
	return nil
}

func keyBackend(descriptor *networks.Descriptor, encoding tx.EncodingConfig) (crypto.OfflineSigner, error) {
	switch cfg.KeyBackend {
	case config.KeyBackendMnemonic:
		if err := checkCoinType(descriptor); err != nil {
			return nil, err
		}

		mnemonic, err := os.ReadFile(cfg.MnemonicFile)
		if err != nil {
			return nil, fmt.Errorf("failed to read mnemonic, run `keys new` first: %w", err)
		}

		bytesSigner, err := crypto.NewSoftSigner(cfg.CoinType, string(mnemonic))
		if err != nil {
			return nil, err
		}

		if cfg.SignMode == "amino" {
			return crypto.NewAminoSigner(bytesSigner, descriptor.AddressPrefix), nil
		}
		return crypto.NewDirectSigner(bytesSigner, descriptor.AddressPrefix), nil

	case config.KeyBackendKeyring:
		kr, err := keyring.New("nolus-wallet", keyring.BackendFile, cfg.KeyringDir, os.Stdin, encoding.Codec, evmoshd.EthSecp256k1Option())
		if err != nil {
			return nil, err
		}
		return crypto.NewKeyringSigner(kr, descriptor.AddressPrefix), nil
	}

	return nil, fmt.Errorf("unknown key backend: %s", cfg.KeyBackend)
}
