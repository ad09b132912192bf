package tx_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	sdkmath "cosmossdk.io/math"

	sdk "github.com/cosmos/cosmos-sdk/types"
	txtypes "github.com/cosmos/cosmos-sdk/types/tx"
	"github.com/cosmos/cosmos-sdk/types/tx/signing"
	"github.com/cosmos/cosmos-sdk/x/auth/migrations/legacytx"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"

	"github.com/tessellated-io/nolus-wallet/cosmos/tx"
	"github.com/tessellated-io/nolus-wallet/crypto"
	"github.com/tessellated-io/nolus-wallet/log"
)

const testMnemonic = "abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon about"

// memoRewritingSigner signs a different memo than it was asked to, as some wallets do.
type memoRewritingSigner struct {
	*crypto.AminoSigner
	memo string
}

func (m *memoRewritingSigner) SignAmino(ctx context.Context, signerAddress string, signDoc legacytx.StdSignDoc) (*crypto.AminoSignResponse, error) {
	signDoc.Memo = m.memo
	return m.AminoSigner.SignAmino(ctx, signerAddress, signDoc)
}

type signerFixture struct {
	keyPair   *crypto.KeyPair
	address   string
	rpcClient *fakeRpcClient
	msgs      []tx.Message
	fee       legacytx.StdFee
}

func newSignerFixture(t *testing.T) *signerFixture {
	t.Helper()

	keyPair, err := crypto.NewCosmosKeyPairFromMnemonic(testMnemonic)
	require.NoError(t, err)
	address := keyPair.GetAddress("nolus")

	msg, err := tx.NewMessageBuilder(address, nil).BuildBankTransfer(toAddress, sdk.NewCoins(sdk.NewCoin("unls", sdkmath.NewInt(100))))
	require.NoError(t, err)

	return &signerFixture{
		keyPair: keyPair,
		address: address,
		rpcClient: &fakeRpcClient{
			account: &authtypes.BaseAccount{Address: address, AccountNumber: 5, Sequence: 9},
			chainID: "nolus-test",
		},
		msgs: []tx.Message{msg},
		fee:  legacytx.NewStdFee(150_000, sdk.NewCoins(sdk.NewCoin("unls", sdkmath.NewInt(375)))),
	}
}

func (f *signerFixture) signer(backend crypto.OfflineSigner) *tx.Signer {
	resolver := tx.NewAccountResolver("", f.rpcClient, log.Discard())
	converter := tx.NewAminoConverter(tx.NewEncodingConfig().Amino)
	return tx.NewSigner(backend, resolver, converter, tx.EncodeSecp256k1PubKey, log.Discard())
}

func decodeAuthInfo(t *testing.T, txRaw *txtypes.TxRaw) *txtypes.AuthInfo {
	t.Helper()

	var authInfo txtypes.AuthInfo
	require.NoError(t, authInfo.Unmarshal(txRaw.AuthInfoBytes))
	return &authInfo
}

func TestSigner_Direct(t *testing.T) {
	f := newSignerFixture(t)
	signer := f.signer(crypto.NewDirectSigner(f.keyPair, "nolus"))

	txRaw, err := signer.Sign(context.Background(), f.address, f.msgs, f.fee, "memo", nil)
	require.NoError(t, err)
	require.Len(t, txRaw.Signatures, 1)

	authInfo := decodeAuthInfo(t, txRaw)
	assert.Equal(t, signing.SignMode_SIGN_MODE_DIRECT, authInfo.SignerInfos[0].ModeInfo.GetSingle().Mode)
	assert.Equal(t, uint64(9), authInfo.SignerInfos[0].Sequence)

	signBytes, err := crypto.DirectSignBytes(&txtypes.SignDoc{
		BodyBytes:     txRaw.BodyBytes,
		AuthInfoBytes: txRaw.AuthInfoBytes,
		ChainId:       "nolus-test",
		AccountNumber: 5,
	})
	require.NoError(t, err)
	assert.True(t, f.keyPair.GetPublicKey().VerifySignature(signBytes, txRaw.Signatures[0]))
}

func TestSigner_Amino(t *testing.T) {
	f := newSignerFixture(t)
	signer := f.signer(crypto.NewAminoSigner(f.keyPair, "nolus"))

	txRaw, err := signer.Sign(context.Background(), f.address, f.msgs, f.fee, "memo", nil)
	require.NoError(t, err)
	require.Len(t, txRaw.Signatures, 1)

	authInfo := decodeAuthInfo(t, txRaw)
	assert.Equal(t, signing.SignMode_SIGN_MODE_LEGACY_AMINO_JSON, authInfo.SignerInfos[0].ModeInfo.GetSingle().Mode)
	assert.Equal(t, uint64(9), authInfo.SignerInfos[0].Sequence)
	assert.Equal(t, "375unls", authInfo.Fee.Amount.String())
	assert.Equal(t, uint64(150_000), authInfo.Fee.GasLimit)

	// The signature is over the legacy sign doc the chain rebuilds from the tx.
	aminoMsgs, err := tx.NewAminoConverter(tx.NewEncodingConfig().Amino).ToAmino([]sdk.Msg{f.msgs[0].Value})
	require.NoError(t, err)
	signBytes, err := crypto.AminoSignBytes(legacytx.StdSignDoc{
		AccountNumber: 5,
		Sequence:      9,
		ChainID:       "nolus-test",
		Memo:          "memo",
		Fee:           f.fee.Bytes(),
		Msgs:          aminoMsgs,
	})
	require.NoError(t, err)
	assert.True(t, f.keyPair.GetPublicKey().VerifySignature(signBytes, txRaw.Signatures[0]))
}

func TestSigner_AminoUsesSignedDocument(t *testing.T) {
	f := newSignerFixture(t)
	backend := &memoRewritingSigner{AminoSigner: crypto.NewAminoSigner(f.keyPair, "nolus"), memo: "rewritten"}
	signer := f.signer(backend)

	txRaw, err := signer.Sign(context.Background(), f.address, f.msgs, f.fee, "original", nil)
	require.NoError(t, err)

	var body txtypes.TxBody
	require.NoError(t, body.Unmarshal(txRaw.BodyBytes))
	assert.Equal(t, "rewritten", body.Memo)
}

func TestSigner_DirectAndAminoAgreeOnShape(t *testing.T) {
	f := newSignerFixture(t)
	signerData := &tx.SignerData{AccountNumber: 5, Sequence: 9, ChainID: "nolus-test"}

	direct, err := f.signer(crypto.NewDirectSigner(f.keyPair, "nolus")).Sign(context.Background(), f.address, f.msgs, f.fee, "", signerData)
	require.NoError(t, err)

	amino, err := f.signer(crypto.NewAminoSigner(f.keyPair, "nolus")).Sign(context.Background(), f.address, f.msgs, f.fee, "", signerData)
	require.NoError(t, err)

	for _, txRaw := range []*txtypes.TxRaw{direct, amino} {
		require.Len(t, txRaw.Signatures, 1)
		assert.NotEmpty(t, txRaw.Signatures[0])
		assert.NotEmpty(t, txRaw.BodyBytes)
		assert.NotEmpty(t, txRaw.AuthInfoBytes)
	}

	// Identical bodies, differing only in the sign mode of the auth info.
	assert.Equal(t, direct.BodyBytes, amino.BodyBytes)
	assert.NotEqual(t, direct.AuthInfoBytes, amino.AuthInfoBytes)

	// Explicit signer data skips the chain entirely.
	assert.Zero(t, f.rpcClient.chainIDCalls)
}

func TestSigner_Errors(t *testing.T) {
	f := newSignerFixture(t)
	signer := f.signer(crypto.NewDirectSigner(f.keyPair, "nolus"))

	_, err := signer.Sign(context.Background(), "nolus1stranger", f.msgs, f.fee, "", nil)
	assert.ErrorIs(t, err, tx.ErrSignerAccountMismatch)

	_, err = signer.Sign(context.Background(), f.address, nil, f.fee, "", nil)
	assert.ErrorIs(t, err, tx.ErrNoMessages)

	f.rpcClient.account = nil
	_, err = signer.Sign(context.Background(), f.address, f.msgs, f.fee, "", nil)
	assert.ErrorIs(t, err, tx.ErrAccountNotFound)
}
