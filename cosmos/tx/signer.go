package tx

import (
	"context"

	errorsmod "cosmossdk.io/errors"

	sdk "github.com/cosmos/cosmos-sdk/types"
	txtypes "github.com/cosmos/cosmos-sdk/types/tx"
	"github.com/cosmos/cosmos-sdk/types/tx/signing"
	"github.com/cosmos/cosmos-sdk/x/auth/migrations/legacytx"

	"github.com/tessellated-io/nolus-wallet/arrays"
	"github.com/tessellated-io/nolus-wallet/coding"
	"github.com/tessellated-io/nolus-wallet/crypto"
	"github.com/tessellated-io/nolus-wallet/log"
)

// Signer produces signed transactions, choosing direct or amino signing by what the key backend supports.
type Signer struct {
	backend       crypto.OfflineSigner
	resolver      *AccountResolver
	converter     *AminoConverter
	pubKeyEncoder PubKeyEncoder

	logger *log.Logger
}

func NewSigner(
	backend crypto.OfflineSigner,
	resolver *AccountResolver,
	converter *AminoConverter,
	pubKeyEncoder PubKeyEncoder,
	logger *log.Logger,
) *Signer {
	return &Signer{
		backend:       backend,
		resolver:      resolver,
		converter:     converter,
		pubKeyEncoder: pubKeyEncoder,

		logger: logger.ApplyPrefix("[signer]"),
	}
}

// Sign signs the messages with the given fee and memo. When signerData is nil, account number, sequence and chain
// id are fetched once and used for the whole call.
func (s *Signer) Sign(
	ctx context.Context,
	signerAddress string,
	msgs []Message,
	fee legacytx.StdFee,
	memo string,
	signerData *SignerData,
) (*txtypes.TxRaw, error) {
	sdkMsgs, err := Unwrap(msgs)
	if err != nil {
		return nil, err
	}

	directSigner, isDirect := s.backend.(crypto.OfflineDirectSigner)
	aminoSigner, isAmino := s.backend.(crypto.OfflineAminoSigner)
	if !isDirect && !isAmino {
		return nil, ErrUnsupportedSigner
	}

	account, err := s.findAccount(ctx, signerAddress)
	if err != nil {
		return nil, err
	}

	if signerData == nil {
		signerData, err = s.resolver.SignerData(ctx, signerAddress)
		if err != nil {
			return nil, err
		}
	}

	logger := s.logger.With("signer", signerAddress, "account_number", signerData.AccountNumber, "sequence", signerData.Sequence, "chain_id", signerData.ChainID)
	if isDirect {
		logger.Debug("signing in direct mode")
		return s.signDirect(ctx, directSigner, account, sdkMsgs, fee, memo, *signerData)
	}

	logger.Debug("signing in amino mode")
	return s.signAmino(ctx, aminoSigner, account, sdkMsgs, fee, memo, *signerData)
}

func (s *Signer) findAccount(ctx context.Context, signerAddress string) (crypto.AccountData, error) {
	accounts, err := s.backend.GetAccounts(ctx)
	if err != nil {
		return crypto.AccountData{}, err
	}

	account, found := arrays.Find(accounts, func(account crypto.AccountData) bool { return account.Address == signerAddress })
	if !found {
		return crypto.AccountData{}, errorsmod.Wrap(ErrSignerAccountMismatch, signerAddress)
	}
	return account, nil
}

func (s *Signer) signDirect(
	ctx context.Context,
	backend crypto.OfflineDirectSigner,
	account crypto.AccountData,
	msgs []sdk.Msg,
	fee legacytx.StdFee,
	memo string,
	signerData SignerData,
) (*txtypes.TxRaw, error) {
	pubKey, err := s.pubKeyEncoder(account.PubKey)
	if err != nil {
		return nil, err
	}

	bodyBytes, err := encodeTxBody(msgs, memo)
	if err != nil {
		return nil, err
	}

	authInfoBytes, err := encodeAuthInfo(pubKey, signerData.Sequence, signing.SignMode_SIGN_MODE_DIRECT, fee)
	if err != nil {
		return nil, err
	}

	signDoc := &txtypes.SignDoc{
		BodyBytes:     bodyBytes,
		AuthInfoBytes: authInfoBytes,
		ChainId:       signerData.ChainID,
		AccountNumber: signerData.AccountNumber,
	}

	response, err := backend.SignDirect(ctx, account.Address, signDoc)
	if err != nil {
		return nil, err
	}
	s.logger.Debug("received direct signature", "signature", coding.PayloadFingerprint(response.Signature))

	return &txtypes.TxRaw{
		BodyBytes:     response.Signed.BodyBytes,
		AuthInfoBytes: response.Signed.AuthInfoBytes,
		Signatures:    [][]byte{response.Signature},
	}, nil
}

func (s *Signer) signAmino(
	ctx context.Context,
	backend crypto.OfflineAminoSigner,
	account crypto.AccountData,
	msgs []sdk.Msg,
	fee legacytx.StdFee,
	memo string,
	signerData SignerData,
) (*txtypes.TxRaw, error) {
	pubKey, err := s.pubKeyEncoder(account.PubKey)
	if err != nil {
		return nil, err
	}

	aminoMsgs, err := s.converter.ToAmino(msgs)
	if err != nil {
		return nil, err
	}

	signDoc := legacytx.StdSignDoc{
		AccountNumber: signerData.AccountNumber,
		Sequence:      signerData.Sequence,
		ChainID:       signerData.ChainID,
		Memo:          memo,
		Fee:           fee.Bytes(),
		Msgs:          aminoMsgs,
	}

	response, err := backend.SignAmino(ctx, account.Address, signDoc)
	if err != nil {
		return nil, err
	}
	s.logger.Debug("received amino signature", "signature", coding.PayloadFingerprint(response.Signature))

	// The backend may have altered the document, so the transaction is rebuilt from what was signed.
	signed := response.Signed
	signedMsgs, err := s.converter.FromAmino(signed.Msgs)
	if err != nil {
		return nil, err
	}

	signedFee, err := s.converter.FeeFromAmino(signed.Fee)
	if err != nil {
		return nil, err
	}

	bodyBytes, err := encodeTxBody(signedMsgs, signed.Memo)
	if err != nil {
		return nil, err
	}

	authInfoBytes, err := encodeAuthInfo(pubKey, signed.Sequence, signing.SignMode_SIGN_MODE_LEGACY_AMINO_JSON, signedFee)
	if err != nil {
		return nil, err
	}

	return &txtypes.TxRaw{
		BodyBytes:     bodyBytes,
		AuthInfoBytes: authInfoBytes,
		Signatures:    [][]byte{response.Signature},
	}, nil
}
