package wallet

import errorsmod "cosmossdk.io/errors"

const codespace = "wallet"

var (
	ErrMissingAccount  = errorsmod.Register(codespace, 2, "missing account")
	ErrMissingAddress  = errorsmod.Register(codespace, 3, "sender address is missing")
	ErrKeyAlgoMismatch = errorsmod.Register(codespace, 4, "key algorithm does not match the network")
)
