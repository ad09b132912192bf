package util

import (
	"errors"
	"fmt"
	"strings"

	sdk "github.com/cosmos/cosmos-sdk/types"
)

var ErrDenomNotFound = errors.New("denom not found")

func ExtractCoin(targetDenom string, coins []sdk.Coin) (*sdk.Coin, error) {
	for _, coin := range coins {
		if strings.EqualFold(targetDenom, coin.Denom) {
			return &coin, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrDenomNotFound, targetDenom)
}

// ParseAmount parses a comma separated coin list such as "1000unls,5uosmo". Zero amounts are rejected.
func ParseAmount(amount string) (sdk.Coins, error) {
	coins, err := sdk.ParseCoinsNormalized(strings.TrimSpace(amount))
	if err != nil {
		return nil, err
	}
	if coins.Empty() {
		return nil, fmt.Errorf("no non-zero coins in amount %q", amount)
	}
	return coins, nil
}
