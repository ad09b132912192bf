package tx

import (
	"math"
	"strings"

	errorsmod "cosmossdk.io/errors"
	sdkmath "cosmossdk.io/math"

	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/cosmos/cosmos-sdk/x/auth/migrations/legacytx"
)

// ParseGasPrice parses a gas price such as "0.0025unls".
func ParseGasPrice(gasPrice string) (sdk.DecCoin, error) {
	parsed, err := sdk.ParseDecCoin(strings.TrimSpace(gasPrice))
	if err != nil {
		return sdk.DecCoin{}, errorsmod.Wrapf(ErrInvalidGasPrice, "%q: %s", gasPrice, err)
	}
	return parsed, nil
}

// AdjustGas scales simulated gas usage by the multiplier, rounding to the nearest unit.
func AdjustGas(gasUsed uint64, gasMultiplier float64) uint64 {
	return uint64(math.Round(float64(gasUsed) * gasMultiplier))
}

// ValidateGasMultiplier rejects multipliers that would produce a zero or undefined gas limit.
func ValidateGasMultiplier(gasMultiplier float64) error {
	if math.IsNaN(gasMultiplier) || math.IsInf(gasMultiplier, 0) || gasMultiplier <= 0 {
		return errorsmod.Wrapf(ErrInvalidGasMultiplier, "%v", gasMultiplier)
	}
	return nil
}

// CalculateFee prices the gas limit at the gas price, rounding the fee amount up.
func CalculateFee(gasLimit uint64, gasPrice string) (legacytx.StdFee, error) {
	price, err := ParseGasPrice(gasPrice)
	if err != nil {
		return legacytx.StdFee{}, err
	}

	amount := price.Amount.MulInt(sdkmath.NewIntFromUint64(gasLimit)).Ceil().TruncateInt()
	return legacytx.NewStdFee(gasLimit, sdk.NewCoins(sdk.NewCoin(price.Denom, amount))), nil
}

// Helper function to know if an error had to do with gas.
func IsGasRelatedError(codespace string, code uint32) bool {
	return IsGasPriceError(codespace, code) || isGasAmountError(codespace, code)
}

// Helper function to determine if an error is related to too small of a gas price
func IsGasPriceError(codespace string, code uint32) bool {
	return codespace == "sdk" && code == 13
}

// Helper function to determine if an error is related to to few gas units
func isGasAmountError(codespace string, code uint32) bool {
	return codespace == "sdk" && code == 11
}
