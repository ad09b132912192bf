package crypto

import (
	"context"
	"fmt"

	"github.com/evmos/evmos/v14/crypto/ethsecp256k1"

	"github.com/cosmos/cosmos-sdk/crypto/keyring"
	cryptotypes "github.com/cosmos/cosmos-sdk/crypto/types"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/cosmos/cosmos-sdk/types/bech32"
	txtypes "github.com/cosmos/cosmos-sdk/types/tx"
	"github.com/cosmos/cosmos-sdk/x/auth/migrations/legacytx"
)

// KeyringSigner exposes every key of a cosmos-sdk keyring, and supports both signing modes.
type KeyringSigner struct {
	keyring keyring.Keyring
	prefix  string
}

var (
	_ OfflineDirectSigner = (*KeyringSigner)(nil)
	_ OfflineAminoSigner  = (*KeyringSigner)(nil)
)

func NewKeyringSigner(kr keyring.Keyring, prefix string) *KeyringSigner {
	return &KeyringSigner{
		keyring: kr,
		prefix:  prefix,
	}
}

func (ks *KeyringSigner) GetAccounts(_ context.Context) ([]AccountData, error) {
	records, err := ks.keyring.List()
	if err != nil {
		return nil, err
	}

	accounts := make([]AccountData, 0, len(records))
	for _, record := range records {
		pubKey, err := record.GetPubKey()
		if err != nil {
			return nil, err
		}
		address, err := record.GetAddress()
		if err != nil {
			return nil, err
		}
		encoded, err := bech32.ConvertAndEncode(ks.prefix, address)
		if err != nil {
			return nil, err
		}

		accounts = append(accounts, AccountData{
			Address: encoded,
			Algo:    algoForPubKey(pubKey),
			PubKey:  pubKey.Bytes(),
		})
	}

	return accounts, nil
}

func (ks *KeyringSigner) SignDirect(_ context.Context, signerAddress string, signDoc *txtypes.SignDoc) (*DirectSignResponse, error) {
	signBytes, err := DirectSignBytes(signDoc)
	if err != nil {
		return nil, err
	}

	signature, err := ks.sign(signerAddress, signBytes)
	if err != nil {
		return nil, err
	}

	return &DirectSignResponse{
		Signed:    signDoc,
		Signature: signature,
	}, nil
}

func (ks *KeyringSigner) SignAmino(_ context.Context, signerAddress string, signDoc legacytx.StdSignDoc) (*AminoSignResponse, error) {
	signBytes, err := AminoSignBytes(signDoc)
	if err != nil {
		return nil, err
	}

	signature, err := ks.sign(signerAddress, signBytes)
	if err != nil {
		return nil, err
	}

	return &AminoSignResponse{
		Signed:    signDoc,
		Signature: signature,
	}, nil
}

func (ks *KeyringSigner) sign(signerAddress string, signBytes []byte) ([]byte, error) {
	_, addressBytes, err := bech32.DecodeAndConvert(signerAddress)
	if err != nil {
		return nil, err
	}

	if _, err := ks.keyring.KeyByAddress(sdk.AccAddress(addressBytes)); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrUnknownSignerAddress, signerAddress)
	}

	signature, _, err := ks.keyring.SignByAddress(sdk.AccAddress(addressBytes), signBytes)
	return signature, err
}

func algoForPubKey(pubKey cryptotypes.PubKey) string {
	if _, ok := pubKey.(*ethsecp256k1.PubKey); ok {
		return AlgoEthSecp256k1
	}
	return AlgoSecp256k1
}
