package networks

import (
	"context"

	registry "github.com/tessellated-io/nolus-wallet/cosmos/chain-registry"
)

// Discover builds a descriptor for a chain from the chain registry. Counterparties are not published there and
// are left empty.
func Discover(ctx context.Context, client registry.ChainRegistryClient, chainName string) (*Descriptor, error) {
	chainInfo, err := client.ChainInfo(ctx, chainName)
	if err != nil {
		return nil, err
	}

	return FromChainInfo(chainInfo)
}

func FromChainInfo(chainInfo *registry.ChainInfo) (*Descriptor, error) {
	rpcURL, err := chainInfo.RpcURL()
	if err != nil {
		return nil, err
	}

	feeDenom, err := chainInfo.FeeDenom()
	if err != nil {
		return nil, err
	}

	gasPrice, err := chainInfo.GasPrice()
	if err != nil {
		return nil, err
	}

	stakingDenom, err := chainInfo.StakingDenom()
	if err != nil {
		stakingDenom = feeDenom
	}

	// Optional endpoints
	apiURL, _ := chainInfo.RestURL()
	grpcURL, _ := chainInfo.GrpcURL()

	return &Descriptor{
		Name:    chainInfo.ChainName,
		ChainID: chainInfo.ChainID,

		RpcURL:  rpcURL,
		ApiURL:  apiURL,
		GrpcURL: grpcURL,

		AddressPrefix: chainInfo.Bech32Prefix,
		FeeDenom:      feeDenom,
		StakingDenom:  stakingDenom,
		GasPrice:      gasPrice,
	}, nil
}
