package tx

import errorsmod "cosmossdk.io/errors"

const codespace = "signing"

var (
	ErrAccountLookup         = errorsmod.Register(codespace, 2, "failed to look up account")
	ErrAccountNotFound       = errorsmod.Register(codespace, 3, "account does not exist on chain")
	ErrSignerAccountMismatch = errorsmod.Register(codespace, 4, "failed to retrieve account from signer")
	ErrUnsupportedSigner     = errorsmod.Register(codespace, 5, "signer supports neither direct nor amino signing")
	ErrInvalidGasPrice       = errorsmod.Register(codespace, 6, "invalid gas price")
	ErrTypeURLMismatch       = errorsmod.Register(codespace, 7, "message type url does not match its payload")
	ErrInvalidPubKey         = errorsmod.Register(codespace, 8, "invalid public key")
	ErrAminoConversion       = errorsmod.Register(codespace, 9, "failed to convert message to or from amino json")
	ErrNoMessages            = errorsmod.Register(codespace, 10, "no messages to sign")
	ErrInvalidRequest        = errorsmod.Register(codespace, 11, "invalid message request")
	ErrTxNotIncluded         = errorsmod.Register(codespace, 12, "transaction not included in a block")
	ErrInvalidGasMultiplier  = errorsmod.Register(codespace, 13, "gas multiplier must be a positive number")
)
