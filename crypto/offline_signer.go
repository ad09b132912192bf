package crypto

import (
	"context"
	"errors"

	"github.com/cosmos/cosmos-sdk/codec/legacy"
	sdk "github.com/cosmos/cosmos-sdk/types"
	txtypes "github.com/cosmos/cosmos-sdk/types/tx"
	"github.com/cosmos/cosmos-sdk/x/auth/migrations/legacytx"
)

var ErrUnknownSignerAddress = errors.New("signer does not hold a key for address")

// AccountData describes an account a key backend can sign for.
type AccountData struct {
	Address string
	Algo    string
	PubKey  []byte
}

// OfflineSigner enumerates the accounts held by a key backend.
type OfflineSigner interface {
	GetAccounts(ctx context.Context) ([]AccountData, error)
}

// DirectSignResponse carries the sign doc the backend actually signed, which the caller must use verbatim.
type DirectSignResponse struct {
	Signed    *txtypes.SignDoc
	Signature []byte
}

// OfflineDirectSigner signs canonical protobuf sign docs.
type OfflineDirectSigner interface {
	OfflineSigner
	SignDirect(ctx context.Context, signerAddress string, signDoc *txtypes.SignDoc) (*DirectSignResponse, error)
}

// AminoSignResponse carries the legacy sign doc the backend actually signed. Backends may alter fee or memo.
type AminoSignResponse struct {
	Signed    legacytx.StdSignDoc
	Signature []byte
}

// OfflineAminoSigner signs legacy amino JSON sign docs.
type OfflineAminoSigner interface {
	OfflineSigner
	SignAmino(ctx context.Context, signerAddress string, signDoc legacytx.StdSignDoc) (*AminoSignResponse, error)
}

// DirectSignBytes returns the bytes a direct signature commits to.
func DirectSignBytes(signDoc *txtypes.SignDoc) ([]byte, error) {
	return signDoc.Marshal()
}

// AminoSignBytes returns the sorted amino JSON bytes a legacy signature commits to.
func AminoSignBytes(signDoc legacytx.StdSignDoc) ([]byte, error) {
	bz, err := legacy.Cdc.MarshalJSON(signDoc)
	if err != nil {
		return nil, err
	}
	return sdk.SortJSON(bz)
}
