package tx

import (
	errorsmod "cosmossdk.io/errors"
	"github.com/evmos/evmos/v14/crypto/ethsecp256k1"

	"github.com/cosmos/cosmos-sdk/crypto/keys/secp256k1"
	cryptotypes "github.com/cosmos/cosmos-sdk/crypto/types"

	"github.com/tessellated-io/nolus-wallet/crypto"
)

// PubKeyEncoder turns raw compressed public key bytes into a typed public key.
type PubKeyEncoder func(raw []byte) (cryptotypes.PubKey, error)

type keyScheme struct {
	algo    string
	encoder PubKeyEncoder
}

var defaultKeyScheme = keyScheme{algo: crypto.AlgoSecp256k1, encoder: EncodeSecp256k1PubKey}

// Address prefixes of chains whose accounts use eth_secp256k1 keys.
var keySchemes = map[string]keyScheme{
	"evmos": {algo: crypto.AlgoEthSecp256k1, encoder: EncodeEthSecp256k1PubKey},
}

func keySchemeForPrefix(prefix string) keyScheme {
	if scheme, ok := keySchemes[prefix]; ok {
		return scheme
	}
	return defaultKeyScheme
}

// PubKeyEncoderForPrefix selects the key encoding for a chain by its address prefix, defaulting to secp256k1.
func PubKeyEncoderForPrefix(prefix string) PubKeyEncoder {
	return keySchemeForPrefix(prefix).encoder
}

// KeyAlgoForPrefix is the key algorithm accounts of a chain must use.
func KeyAlgoForPrefix(prefix string) string {
	return keySchemeForPrefix(prefix).algo
}

func EncodeSecp256k1PubKey(raw []byte) (cryptotypes.PubKey, error) {
	if len(raw) != secp256k1.PubKeySize {
		return nil, errorsmod.Wrapf(ErrInvalidPubKey, "expected %d bytes, got %d", secp256k1.PubKeySize, len(raw))
	}
	return &secp256k1.PubKey{Key: raw}, nil
}

func EncodeEthSecp256k1PubKey(raw []byte) (cryptotypes.PubKey, error) {
	if len(raw) != ethsecp256k1.PubKeySize {
		return nil, errorsmod.Wrapf(ErrInvalidPubKey, "expected %d bytes, got %d", ethsecp256k1.PubKeySize, len(raw))
	}
	return &ethsecp256k1.PubKey{Key: raw}, nil
}
