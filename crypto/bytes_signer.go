package crypto

import cryptotypes "github.com/cosmos/cosmos-sdk/crypto/types"

// Key algorithm tags reported by signers.
const (
	AlgoSecp256k1    = "secp256k1"
	AlgoEthSecp256k1 = "ethsecp256k1"
)

// BytesSigner signs raw bytes with a single private key.
type BytesSigner interface {
	GetAddress(prefix string) string
	SignBytes(
		bytesToSign []byte,
	) ([]byte, error)
	GetPublicKey() cryptotypes.PubKey
	Algo() string
}
