package registry_test

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	registry "github.com/tessellated-io/nolus-wallet/cosmos/chain-registry"
	"github.com/tessellated-io/nolus-wallet/log"
)

const osmosisChainJson = `{
	"chain_name": "osmosis",
	"chain_id": "osmosis-1",
	"bech32_prefix": "osmo",
	"slip44": 118,
	"fees": {"fee_tokens": [{"denom": "uosmo", "fixed_min_gas_price": 0.0025, "average_gas_price": 0.025}]},
	"staking": {"staking_tokens": [{"denom": "uosmo"}]},
	"apis": {
		"rpc": [{"address": "https://rpc.osmosis.zone", "provider": "osmosis"}],
		"rest": [{"address": "https://lcd.osmosis.zone", "provider": "osmosis"}],
		"grpc": []
	}
}`

func newRegistryServer(t *testing.T) *httptest.Server {
	t.Helper()

	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/osmosis/chain.json":
			fmt.Fprint(w, osmosisChainJson)
		case "/all":
			fmt.Fprint(w, `["osmosis","nolus"]`)
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
}

func TestCanRetrieveChain(t *testing.T) {
	server := newRegistryServer(t)
	defer server.Close()

	client := registry.NewChainRegistryClient(log.Discard(), server.URL)

	info, err := client.ChainInfo(context.Background(), "osmosis")
	require.NoError(t, err)

	assert.Equal(t, "osmosis-1", info.ChainID)
	assert.Equal(t, "osmo", info.Bech32Prefix)

	gasPrice, err := info.GasPrice()
	require.NoError(t, err)
	assert.Equal(t, "0.025uosmo", gasPrice)

	stakingDenom, err := info.StakingDenom()
	require.NoError(t, err)
	assert.Equal(t, "uosmo", stakingDenom)

	rpcURL, err := info.RpcURL()
	require.NoError(t, err)
	assert.Equal(t, "https://rpc.osmosis.zone", rpcURL)

	_, err = info.GrpcURL()
	assert.ErrorIs(t, err, registry.ErrNoEndpointFound)
}

func TestCanRetrieveAllChains(t *testing.T) {
	server := newRegistryServer(t)
	defer server.Close()

	client := registry.NewChainRegistryClient(log.Discard(), server.URL)

	names, err := client.AllChainNames(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"osmosis", "nolus"}, names)
}

func TestRetryableClient_ReturnsLastError(t *testing.T) {
	server := newRegistryServer(t)
	defer server.Close()

	client := registry.NewRetryableChainRegistryClient(2, time.Millisecond, registry.NewChainRegistryClient(log.Discard(), server.URL), log.Discard())

	_, err := client.ChainInfo(context.Background(), "unknown")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "404")
}

func TestGasPrice_FallsBackToMinimum(t *testing.T) {
	info := &registry.ChainInfo{
		Fees: registry.Fee{FeeTokens: []registry.FeeToken{{Denom: "unls", FixedMinGasPrice: 0.0025}}},
	}

	gasPrice, err := info.GasPrice()
	require.NoError(t, err)
	assert.Equal(t, "0.0025unls", gasPrice)

	_, err = (&registry.ChainInfo{}).GasPrice()
	assert.ErrorIs(t, err, registry.ErrNoFeeTokenFound)
}
