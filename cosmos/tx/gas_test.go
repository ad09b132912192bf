package tx_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tessellated-io/nolus-wallet/cosmos/tx"
)

func TestAdjustGas(t *testing.T) {
	cases := []struct {
		gasUsed    uint64
		multiplier float64
		expected   uint64
	}{
		{100_000, 1.5, 150_000},
		{100_001, 1.5, 150_002},
		{3, 1.5, 5},
		{10, 1.0, 10},
		{0, 2.0, 0},
		{84_321, 1.3, 109_617},
	}

	for _, c := range cases {
		assert.Equal(t, c.expected, tx.AdjustGas(c.gasUsed, c.multiplier), "gas used %d x %f", c.gasUsed, c.multiplier)
	}
}

func TestCalculateFee(t *testing.T) {
	fee, err := tx.CalculateFee(150_000, "0.0025unls")
	require.NoError(t, err)
	assert.Equal(t, uint64(150_000), fee.Gas)
	assert.Equal(t, "375unls", fee.Amount.String())

	// Fractional fees round up
	fee, err = tx.CalculateFee(101, "0.0025unls")
	require.NoError(t, err)
	assert.Equal(t, "1unls", fee.Amount.String())

	fee, err = tx.CalculateFee(200_000, " 0.025uosmo ")
	require.NoError(t, err)
	assert.Equal(t, "5000uosmo", fee.Amount.String())
}

func TestCalculateFee_IsDeterministic(t *testing.T) {
	first, err := tx.CalculateFee(123_457, "0.0033unls")
	require.NoError(t, err)

	second, err := tx.CalculateFee(123_457, "0.0033unls")
	require.NoError(t, err)

	assert.Equal(t, first.Amount.String(), second.Amount.String())
	assert.Equal(t, "408unls", first.Amount.String())
}

func TestParseGasPrice_Invalid(t *testing.T) {
	for _, gasPrice := range []string{"", "unls", "0.0025", "-1unls"} {
		_, err := tx.ParseGasPrice(gasPrice)
		assert.ErrorIs(t, err, tx.ErrInvalidGasPrice, gasPrice)
	}

	_, err := tx.CalculateFee(100, "free")
	assert.ErrorIs(t, err, tx.ErrInvalidGasPrice)
}

func TestIsGasRelatedError(t *testing.T) {
	assert.True(t, tx.IsGasRelatedError("sdk", 13))
	assert.True(t, tx.IsGasRelatedError("sdk", 11))
	assert.True(t, tx.IsGasPriceError("sdk", 13))
	assert.False(t, tx.IsGasPriceError("sdk", 11))
	assert.False(t, tx.IsGasRelatedError("wasm", 13))
	assert.False(t, tx.IsGasRelatedError("sdk", 5))
}
