package crypto

import (
	"fmt"
)

// NewSoftSigner returns an in-memory signer for the given SLIP44 coin type.
func NewSoftSigner(slip44 uint32, mnemonic string) (BytesSigner, error) {
	switch slip44 {
	case CoinTypeCosmos:
		return NewCosmosKeyPairFromMnemonic(mnemonic)
	case CoinTypeEth:
		return NewEthermintKeyPairFromMnemonic(mnemonic)
	}

	return nil, fmt.Errorf("unknown slip44 value: %d", slip44)
}

// AlgoForCoinType is the key algorithm NewSoftSigner derives for a coin type.
func AlgoForCoinType(slip44 uint32) (string, error) {
	switch slip44 {
	case CoinTypeCosmos:
		return AlgoSecp256k1, nil
	case CoinTypeEth:
		return AlgoEthSecp256k1, nil
	}

	return "", fmt.Errorf("unknown slip44 value: %d", slip44)
}
