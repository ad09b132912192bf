package networks

import (
	"fmt"
	"sort"
)

const (
	Localnet = "localnet"
	Devnet   = "devnet"
	Testnet  = "testnet"

	DefaultNetwork = Devnet
)

const (
	nolusPrefix   = "nolus"
	nolusDenom    = "unls"
	nolusGasPrice = "0.0025unls"
)

var osmosis = Counterparty{
	Key:               "OSMO",
	Prefix:            "osmo",
	Value:             "osmo",
	Label:             "Osmosis",
	SourceChannel:     "channel-0",
	EstimationSeconds: 20,
	Native:            false,
}

func nolusNetwork(name, rpcURL, apiURL string) *Descriptor {
	return &Descriptor{
		Name:          name,
		RpcURL:        rpcURL,
		ApiURL:        apiURL,
		AddressPrefix: nolusPrefix,
		FeeDenom:      nolusDenom,
		StakingDenom:  nolusDenom,
		GasPrice:      nolusGasPrice,

		Counterparties: []Counterparty{osmosis},
	}
}

// Registry holds the networks the wallet knows about, indexed by name.
type Registry struct {
	byName map[string]*Descriptor
}

// NewRegistry returns a registry of the built in Nolus networks.
func NewRegistry() *Registry {
	registry := &Registry{
		byName: make(map[string]*Descriptor),
	}

	registry.Add(nolusNetwork(Localnet, "http://127.0.0.1:26657", "http://127.0.0.1:1317"))
	registry.Add(nolusNetwork(Devnet, "https://net-dev.nolus.io:26612", "https://net-dev.nolus.io:26614"))
	registry.Add(nolusNetwork(Testnet, "https://net-rila.nolus.io:26657", "https://net-rila.nolus.io:1317"))

	return registry
}

// Add registers a descriptor, replacing any network with the same name.
func (r *Registry) Add(descriptor *Descriptor) {
	r.byName[descriptor.Name] = descriptor
}

func (r *Registry) Get(name string) (*Descriptor, error) {
	descriptor, ok := r.byName[name]
	if !ok {
		return nil, fmt.Errorf("unknown network: %s", name)
	}
	return descriptor, nil
}

// Names returns the known network names, sorted.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.byName))
	for name := range r.byName {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
