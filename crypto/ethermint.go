package crypto

import (
	btcec "github.com/btcsuite/btcd/btcec/v2"
	"github.com/evmos/evmos/v14/crypto/hd"
	"golang.org/x/crypto/sha3"

	sdkhd "github.com/cosmos/cosmos-sdk/crypto/hd"
	"github.com/cosmos/cosmos-sdk/crypto/keyring"
	cryptotypes "github.com/cosmos/cosmos-sdk/crypto/types"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/cosmos/cosmos-sdk/types/bech32"
)

// EthermintKeyPair is an eth_secp256k1 key pair, addressed by the keccak hash of the uncompressed public key.
type EthermintKeyPair struct {
	Public  cryptotypes.PubKey
	Private cryptotypes.PrivKey
}

var _ BytesSigner = (*EthermintKeyPair)(nil)

// NewEthermintKeyPairFromMnemonic returns a key pair derived from the given mnemonic with coin type 60.
func NewEthermintKeyPairFromMnemonic(mnemonic string) (*EthermintKeyPair, error) {
	if err := ValidateMnemonic(mnemonic); err != nil {
		return nil, err
	}
	mnemonic = NormalizeMnemonic(mnemonic)

	algo := hd.EthSecp256k1
	bip44Path := sdkhd.CreateHDPath(CoinTypeEth, 0, 0).String()
	derivedPriv, err := algo.Derive()(mnemonic, keyring.DefaultBIP39Passphrase, bip44Path)
	if err != nil {
		return nil, err
	}
	privKey := algo.Generate()(derivedPriv)

	return &EthermintKeyPair{
		Public:  privKey.PubKey(),
		Private: privKey,
	}, nil
}

func (e *EthermintKeyPair) GetAddress(prefix string) string {
	parsed, err := btcec.ParsePubKey(e.Public.Bytes())
	if err != nil {
		panic(err)
	}
	decompressedPublicKey := parsed.SerializeUncompressed()

	hash := sha3.NewLegacyKeccak256()
	hash.Write(decompressedPublicKey[1:]) // Remove the prefix byte from the uncompressed public key
	addressBytes := hash.Sum(nil)[12:]

	address := sdk.AccAddress(addressBytes)
	encoded, _ := bech32.ConvertAndEncode(prefix, address)
	return encoded
}

func (e *EthermintKeyPair) SignBytes(
	bytesToSign []byte,
) ([]byte, error) {
	return e.Private.Sign(bytesToSign)
}

func (e *EthermintKeyPair) GetPublicKey() cryptotypes.PubKey {
	return e.Public
}

func (e *EthermintKeyPair) Algo() string {
	return AlgoEthSecp256k1
}
