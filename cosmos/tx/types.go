package tx

import (
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/cosmos/cosmos-sdk/x/auth/migrations/legacytx"
)

// Type URLs of the messages the wallet builds.
const (
	TypeURLBankSend        = "/cosmos.bank.v1beta1.MsgSend"
	TypeURLIbcTransfer     = "/ibc.applications.transfer.v1.MsgTransfer"
	TypeURLExecuteContract = "/cosmwasm.wasm.v1.MsgExecuteContract"
)

// Message is an unsigned message tagged with its protobuf type url.
type Message struct {
	TypeURL string
	Value   sdk.Msg
}

// SignerData is the snapshot of chain state a signature commits to. It is resolved once per signing
// operation and never reused across operations.
type SignerData struct {
	AccountNumber uint64
	Sequence      uint64
	ChainID       string
}

// SimulationResult is the outcome of simulating a transaction.
type SimulationResult struct {
	GasUsed           uint64
	GasRecommendation uint64
}

// SimulatedTx is a signed transaction ready for broadcast, along with the fee it pays.
type SimulatedTx struct {
	TxHash  string
	TxBytes []byte
	UsedFee legacytx.StdFee
}
