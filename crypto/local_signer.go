package crypto

import (
	"context"
	"fmt"

	txtypes "github.com/cosmos/cosmos-sdk/types/tx"
	"github.com/cosmos/cosmos-sdk/x/auth/migrations/legacytx"
)

// localAccount is a single in-memory key exposed under one address prefix.
type localAccount struct {
	bytesSigner BytesSigner
	prefix      string
}

func (la *localAccount) GetAccounts(_ context.Context) ([]AccountData, error) {
	return []AccountData{
		{
			Address: la.bytesSigner.GetAddress(la.prefix),
			Algo:    la.bytesSigner.Algo(),
			PubKey:  la.bytesSigner.GetPublicKey().Bytes(),
		},
	}, nil
}

func (la *localAccount) sign(signerAddress string, signBytes []byte) ([]byte, error) {
	address := la.bytesSigner.GetAddress(la.prefix)
	if address != signerAddress {
		return nil, fmt.Errorf("%w: %s", ErrUnknownSignerAddress, signerAddress)
	}

	return la.bytesSigner.SignBytes(signBytes)
}

// DirectSigner is an in-memory backend that only supports direct signing.
type DirectSigner struct {
	localAccount
}

var _ OfflineDirectSigner = (*DirectSigner)(nil)

func NewDirectSigner(bytesSigner BytesSigner, prefix string) *DirectSigner {
	return &DirectSigner{
		localAccount: localAccount{bytesSigner: bytesSigner, prefix: prefix},
	}
}

func (ds *DirectSigner) SignDirect(_ context.Context, signerAddress string, signDoc *txtypes.SignDoc) (*DirectSignResponse, error) {
	signBytes, err := DirectSignBytes(signDoc)
	if err != nil {
		return nil, err
	}

	signature, err := ds.sign(signerAddress, signBytes)
	if err != nil {
		return nil, err
	}

	return &DirectSignResponse{
		Signed:    signDoc,
		Signature: signature,
	}, nil
}

// AminoSigner is an in-memory backend that only supports legacy amino JSON signing, like a hardware wallet.
type AminoSigner struct {
	localAccount
}

var _ OfflineAminoSigner = (*AminoSigner)(nil)

func NewAminoSigner(bytesSigner BytesSigner, prefix string) *AminoSigner {
	return &AminoSigner{
		localAccount: localAccount{bytesSigner: bytesSigner, prefix: prefix},
	}
}

func (as *AminoSigner) SignAmino(_ context.Context, signerAddress string, signDoc legacytx.StdSignDoc) (*AminoSignResponse, error) {
	signBytes, err := AminoSignBytes(signDoc)
	if err != nil {
		return nil, err
	}

	signature, err := as.sign(signerAddress, signBytes)
	if err != nil {
		return nil, err
	}

	return &AminoSignResponse{
		Signed:    signDoc,
		Signature: signature,
	}, nil
}
