package tx_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"

	"github.com/tessellated-io/nolus-wallet/cosmos/tx"
	"github.com/tessellated-io/nolus-wallet/log"
)

func TestAccountResolver_NotFoundIsNil(t *testing.T) {
	resolver := tx.NewAccountResolver("nolus-test", &fakeRpcClient{}, log.Discard())

	account, err := resolver.Account(context.Background(), fromAddress)
	require.NoError(t, err)
	assert.Nil(t, account)

	_, err = resolver.Sequence(context.Background(), fromAddress)
	assert.ErrorIs(t, err, tx.ErrAccountNotFound)

	_, err = resolver.SignerData(context.Background(), fromAddress)
	assert.ErrorIs(t, err, tx.ErrAccountNotFound)
}

func TestAccountResolver_NotFoundOverAbci(t *testing.T) {
	rpcClient := &fakeRpcClient{accountErr: errors.New("rpc error: code = NotFound desc = account nolus1sender not found: key not found")}
	resolver := tx.NewAccountResolver("nolus-test", rpcClient, log.Discard())

	account, err := resolver.Account(context.Background(), fromAddress)
	require.NoError(t, err)
	assert.Nil(t, account)
}

func TestAccountResolver_LookupFailure(t *testing.T) {
	rpcClient := &fakeRpcClient{accountErr: errors.New("connection refused")}
	resolver := tx.NewAccountResolver("nolus-test", rpcClient, log.Discard())

	_, err := resolver.Account(context.Background(), fromAddress)
	assert.ErrorIs(t, err, tx.ErrAccountLookup)
	assert.Contains(t, err.Error(), "connection refused")

	_, err = resolver.Sequence(context.Background(), fromAddress)
	assert.ErrorIs(t, err, tx.ErrAccountLookup)
}

func TestAccountResolver_SignerData(t *testing.T) {
	rpcClient := &fakeRpcClient{
		account: &authtypes.BaseAccount{Address: fromAddress, AccountNumber: 11, Sequence: 4},
		chainID: "nolus-discovered",
	}
	resolver := tx.NewAccountResolver("", rpcClient, log.Discard())

	sequence, err := resolver.Sequence(context.Background(), fromAddress)
	require.NoError(t, err)
	assert.Equal(t, uint64(4), sequence)

	signerData, err := resolver.SignerData(context.Background(), fromAddress)
	require.NoError(t, err)
	assert.Equal(t, tx.SignerData{AccountNumber: 11, Sequence: 4, ChainID: "nolus-discovered"}, *signerData)

	// Chain id is discovered once
	_, err = resolver.SignerData(context.Background(), fromAddress)
	require.NoError(t, err)
	assert.Equal(t, 1, rpcClient.chainIDCalls)
}

func TestAccountResolver_ConfiguredChainID(t *testing.T) {
	rpcClient := &fakeRpcClient{chainID: "ignored"}
	resolver := tx.NewAccountResolver("nolus-configured", rpcClient, log.Discard())

	chainID, err := resolver.ChainID(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "nolus-configured", chainID)
	assert.Zero(t, rpcClient.chainIDCalls)
}
