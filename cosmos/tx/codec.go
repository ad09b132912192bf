package tx

import (
	wasmtypes "github.com/CosmWasm/wasmd/x/wasm/types"
	ibctransfertypes "github.com/cosmos/ibc-go/v7/modules/apps/transfer/types"
	ethcryptocodec "github.com/evmos/evmos/v14/crypto/codec"

	"github.com/cosmos/cosmos-sdk/codec"
	codectypes "github.com/cosmos/cosmos-sdk/codec/types"
	"github.com/cosmos/cosmos-sdk/std"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"
	banktypes "github.com/cosmos/cosmos-sdk/x/bank/types"
	stakingtypes "github.com/cosmos/cosmos-sdk/x/staking/types"
)

// EncodingConfig bundles the codecs needed to build, sign and decode the wallet's transactions.
type EncodingConfig struct {
	InterfaceRegistry codectypes.InterfaceRegistry
	Codec             *codec.ProtoCodec
	Amino             *codec.LegacyAmino
}

// NewEncodingConfig registers every message and key type the wallet handles.
func NewEncodingConfig() EncodingConfig {
	registry := codectypes.NewInterfaceRegistry()
	std.RegisterInterfaces(registry)
	ethcryptocodec.RegisterInterfaces(registry)
	authtypes.RegisterInterfaces(registry)
	banktypes.RegisterInterfaces(registry)
	stakingtypes.RegisterInterfaces(registry)
	ibctransfertypes.RegisterInterfaces(registry)
	wasmtypes.RegisterInterfaces(registry)

	amino := codec.NewLegacyAmino()
	std.RegisterLegacyAminoCodec(amino)
	authtypes.RegisterLegacyAminoCodec(amino)
	banktypes.RegisterLegacyAminoCodec(amino)
	ibctransfertypes.RegisterLegacyAminoCodec(amino)
	wasmtypes.RegisterLegacyAminoCodec(amino)

	return EncodingConfig{
		InterfaceRegistry: registry,
		Codec:             codec.NewProtoCodec(registry),
		Amino:             amino,
	}
}
