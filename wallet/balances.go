package wallet

import (
	"context"

	"golang.org/x/sync/errgroup"

	sdk "github.com/cosmos/cosmos-sdk/types"
)

// Balances of an account, liquid and staked.
type Balances struct {
	Native    sdk.Coins
	Delegated *sdk.Coin
}

// Balances fetches liquid and delegated balances of the bound account concurrently.
func (w *Wallet) Balances(ctx context.Context) (*Balances, error) {
	address, _, err := w.boundAccount()
	if err != nil {
		return nil, err
	}

	balances := &Balances{}
	group, groupCtx := errgroup.WithContext(ctx)

	group.Go(func() error {
		var err error
		if w.restClient != nil {
			balances.Native, err = w.restClient.AllBalances(groupCtx, address)
		} else {
			balances.Native, err = w.rpcClient.AllBalances(groupCtx, address)
		}
		return err
	})

	group.Go(func() error {
		var err error
		balances.Delegated, err = w.rpcClient.DelegatedBalance(groupCtx, address, w.stakingDenom())
		return err
	})

	if err := group.Wait(); err != nil {
		return nil, err
	}

	w.logger.Debug("fetched balances", "address", address, "native", balances.Native.String(), "delegated", balances.Delegated.String())
	return balances, nil
}

// Balance returns the bound account's liquid balance of a single denom, the fee denom when empty.
func (w *Wallet) Balance(ctx context.Context, denom string) (*sdk.Coin, error) {
	address, _, err := w.boundAccount()
	if err != nil {
		return nil, err
	}

	if denom == "" {
		denom = w.network.FeeDenom
	}
	return w.rpcClient.GetBalance(ctx, address, denom)
}

func (w *Wallet) stakingDenom() string {
	if w.network.StakingDenom != "" {
		return w.network.StakingDenom
	}
	return w.network.FeeDenom
}
