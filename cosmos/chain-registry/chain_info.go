package registry

import (
	"errors"
	"strconv"
)

var (
	ErrNoStakingTokenFound = errors.New("no staking tokens found in registry")
	ErrNoFeeTokenFound     = errors.New("no fee tokens found in registry")
	ErrNoEndpointFound     = errors.New("no endpoint found in registry")
)

// Convenience helper methods

func (ci *ChainInfo) FeeDenom() (string, error) {
	feeToken, err := ci.FeeToken()
	if err != nil {
		return "", err
	}

	return feeToken.Denom, nil
}

func (ci *ChainInfo) StakingDenom() (string, error) {
	stakingTokens := ci.Staking.StakingTokens
	if len(stakingTokens) == 0 {
		return "", ErrNoStakingTokenFound
	}

	return stakingTokens[0].Denom, nil
}

func (ci *ChainInfo) FeeToken() (*FeeToken, error) {
	feeTokens := ci.Fees.FeeTokens
	if len(feeTokens) == 0 {
		return nil, ErrNoFeeTokenFound
	}
	return &feeTokens[0], nil
}

// GasPrice renders the average gas price of the fee token, falling back to the fixed minimum, e.g. "0.0025unls".
func (ci *ChainInfo) GasPrice() (string, error) {
	feeToken, err := ci.FeeToken()
	if err != nil {
		return "", err
	}

	price := feeToken.AverageGasPrice
	if price == 0 {
		price = feeToken.FixedMinGasPrice
	}
	return strconv.FormatFloat(price, 'f', -1, 64) + feeToken.Denom, nil
}

func (ci *ChainInfo) RpcURL() (string, error) {
	return firstAddress(ci.APIs.RPC)
}

func (ci *ChainInfo) RestURL() (string, error) {
	return firstAddress(ci.APIs.Rest)
}

func (ci *ChainInfo) GrpcURL() (string, error) {
	return firstAddress(ci.APIs.GRPC)
}

func firstAddress(addresses []APIAddress) (string, error) {
	if len(addresses) == 0 {
		return "", ErrNoEndpointFound
	}
	return addresses[0].Address, nil
}
