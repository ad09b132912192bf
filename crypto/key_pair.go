package crypto

import (
	"github.com/cosmos/cosmos-sdk/crypto/hd"
	"github.com/cosmos/cosmos-sdk/crypto/keyring"
	cryptotypes "github.com/cosmos/cosmos-sdk/crypto/types"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/cosmos/cosmos-sdk/types/bech32"
)

// Coin types used for derivation.
const (
	CoinTypeCosmos = 118
	CoinTypeEth    = 60
)

type KeyPair struct {
	Public  cryptotypes.PubKey
	Private cryptotypes.PrivKey
}

var _ BytesSigner = (*KeyPair)(nil)

// NewCosmosKeyPairFromMnemonic returns a key pair derived from the given mnemonic, with coin type 118 (cosmos)
func NewCosmosKeyPairFromMnemonic(mnemonic string) (*KeyPair, error) {
	return NewKeyPairFromMnemonic(mnemonic, CoinTypeCosmos)
}

// NewKeyPairFromMnemonic returns a secp256k1 key pair derived from the first account of the given coin type.
func NewKeyPairFromMnemonic(mnemonic string, coinType uint32) (*KeyPair, error) {
	if err := ValidateMnemonic(mnemonic); err != nil {
		return nil, err
	}
	mnemonic = NormalizeMnemonic(mnemonic)

	bip44Path := hd.CreateHDPath(coinType, 0, 0).String()

	algo := hd.Secp256k1
	derivedPriv, err := algo.Derive()(mnemonic, keyring.DefaultBIP39Passphrase, bip44Path)
	if err != nil {
		return nil, err
	}
	privKey := algo.Generate()(derivedPriv)

	return &KeyPair{
		Public:  privKey.PubKey(),
		Private: privKey,
	}, nil
}

func (kp *KeyPair) GetAddress(prefix string) string {
	address := sdk.AccAddress(kp.Public.Address())
	encoded, _ := bech32.ConvertAndEncode(prefix, address)
	return encoded
}

func (kp *KeyPair) SignBytes(
	bytesToSign []byte,
) ([]byte, error) {
	return kp.Private.Sign(bytesToSign)
}

func (kp *KeyPair) GetPublicKey() cryptotypes.PubKey {
	return kp.Public
}

func (kp *KeyPair) Algo() string {
	return AlgoSecp256k1
}
