package networks

// Descriptor is the static configuration of one network the wallet can talk to.
type Descriptor struct {
	Name    string `yaml:"name"`
	ChainID string `yaml:"chain_id"`

	RpcURL  string `yaml:"rpc_url"`
	ApiURL  string `yaml:"api_url"`
	GrpcURL string `yaml:"grpc_url"`

	AddressPrefix string `yaml:"address_prefix"`
	FeeDenom      string `yaml:"fee_denom"`
	StakingDenom  string `yaml:"staking_denom"`
	GasPrice      string `yaml:"gas_price"`

	Counterparties []Counterparty `yaml:"counterparties"`
}

// Counterparty describes a network reachable over IBC.
type Counterparty struct {
	Key    string `yaml:"key"`
	Prefix string `yaml:"prefix"`
	Value  string `yaml:"value"`
	Label  string `yaml:"label"`

	// Channel on the source network that leads to this counterparty.
	SourceChannel string `yaml:"source_channel"`

	// Rough transfer time, in seconds.
	EstimationSeconds uint64 `yaml:"estimation_seconds"`

	Native bool `yaml:"native"`
}

// Counterparty finds a counterparty by key, e.g. "OSMO".
func (d *Descriptor) Counterparty(key string) (*Counterparty, bool) {
	for i := range d.Counterparties {
		if d.Counterparties[i].Key == key {
			return &d.Counterparties[i], true
		}
	}
	return nil, false
}
