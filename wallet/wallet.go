package wallet

import (
	"context"
	"sync"
	"time"

	errorsmod "cosmossdk.io/errors"

	txtypes "github.com/cosmos/cosmos-sdk/types/tx"
	"github.com/cosmos/cosmos-sdk/x/auth/migrations/legacytx"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"

	"github.com/tessellated-io/nolus-wallet/cosmos/rest"
	"github.com/tessellated-io/nolus-wallet/cosmos/rpc"
	"github.com/tessellated-io/nolus-wallet/cosmos/tx"
	cosmosutil "github.com/tessellated-io/nolus-wallet/cosmos/util"
	"github.com/tessellated-io/nolus-wallet/crypto"
	"github.com/tessellated-io/nolus-wallet/log"
	"github.com/tessellated-io/nolus-wallet/networks"
)

// Wallet signs and submits transactions for one account of a key backend on one network.
type Wallet struct {
	network    *networks.Descriptor
	backend    crypto.OfflineSigner
	rpcClient  rpc.RpcClient
	restClient *rest.Client

	resolver    *tx.AccountResolver
	signer      *tx.Signer
	txProvider  tx.TxProvider
	broadcaster *tx.Broadcaster

	clock          func() time.Time
	txPollAttempts uint
	txPollDelay    time.Duration

	// Bound by UseAccount
	accountLock sync.RWMutex
	address     string
	pubKey      []byte
	algo        string

	// One guard per signing address, so simulate and sign for an address never interleave.
	guardsLock     sync.Mutex
	sequenceGuards map[string]*sync.Mutex

	logger *log.Logger
}

func NewWallet(
	network *networks.Descriptor,
	backend crypto.OfflineSigner,
	rpcClient rpc.RpcClient,
	logger *log.Logger,
	opts ...Option,
) *Wallet {
	w := &Wallet{
		network:   network,
		backend:   backend,
		rpcClient: rpcClient,

		clock:          time.Now,
		txPollAttempts: defaultTxPollAttempts,
		txPollDelay:    defaultTxPollDelay,

		sequenceGuards: make(map[string]*sync.Mutex),

		logger: logger.ApplyPrefix("[wallet]"),
	}
	for _, opt := range opts {
		opt(w)
	}

	encoding := tx.NewEncodingConfig()
	pubKeyEncoder := tx.PubKeyEncoderForPrefix(network.AddressPrefix)

	w.resolver = tx.NewAccountResolver(network.ChainID, rpcClient, w.logger)
	w.signer = tx.NewSigner(backend, w.resolver, tx.NewAminoConverter(encoding.Amino), pubKeyEncoder, w.logger)
	w.txProvider = tx.NewTxProvider(pubKeyEncoder, tx.NewSimulationManager(rpcClient, w.logger), w.signer, w.logger)
	w.broadcaster = tx.NewDefaultBroadcaster(rpcClient, w.logger, w.txPollAttempts, w.txPollDelay)

	return w
}

// UseAccount binds the wallet to the first account the key backend offers.
func (w *Wallet) UseAccount(ctx context.Context) error {
	accounts, err := w.backend.GetAccounts(ctx)
	if err != nil {
		return err
	}
	if len(accounts) == 0 {
		return ErrMissingAccount
	}

	account := accounts[0]
	if expected := tx.KeyAlgoForPrefix(w.network.AddressPrefix); account.Algo != "" && account.Algo != expected {
		return errorsmod.Wrapf(ErrKeyAlgoMismatch, "%s keys cannot sign for %s accounts, expected %s", account.Algo, w.network.AddressPrefix, expected)
	}

	w.accountLock.Lock()
	defer w.accountLock.Unlock()

	w.address = account.Address
	w.pubKey = account.PubKey
	w.algo = account.Algo

	w.logger.Info("using account", "address", account.Address, "algo", account.Algo)
	return nil
}

func (w *Wallet) Address() string {
	w.accountLock.RLock()
	defer w.accountLock.RUnlock()

	return w.address
}

func (w *Wallet) PubKey() []byte {
	w.accountLock.RLock()
	defer w.accountLock.RUnlock()

	return w.pubKey
}

func (w *Wallet) Algo() string {
	w.accountLock.RLock()
	defer w.accountLock.RUnlock()

	return w.algo
}

func (w *Wallet) Network() *networks.Descriptor {
	return w.network
}

// GetAccount returns the on-chain account of address, or nil if it has never been funded.
func (w *Wallet) GetAccount(ctx context.Context, address string) (authtypes.AccountI, error) {
	return w.resolver.Account(ctx, address)
}

// Sign signs messages with a caller supplied fee. A nil signerData is resolved from chain.
func (w *Wallet) Sign(
	ctx context.Context,
	signerAddress string,
	msgs []tx.Message,
	fee legacytx.StdFee,
	memo string,
	signerData *tx.SignerData,
) (*txtypes.TxRaw, error) {
	guard := w.sequenceGuard(signerAddress)
	guard.Lock()
	defer guard.Unlock()

	return w.signer.Sign(ctx, signerAddress, msgs, fee, memo, signerData)
}

// TransferAmount sends coins, e.g. "1000unls", from the bound account with a fixed fee and broadcasts the result.
func (w *Wallet) TransferAmount(ctx context.Context, receiver, amount string, fee legacytx.StdFee, memo string) (*txtypes.BroadcastTxResponse, error) {
	address, _, err := w.boundAccount()
	if err != nil {
		return nil, err
	}

	coins, err := cosmosutil.ParseAmount(amount)
	if err != nil {
		return nil, err
	}

	msg, err := w.messageBuilder(address).BuildBankTransfer(receiver, coins)
	if err != nil {
		return nil, err
	}

	guard := w.sequenceGuard(address)
	guard.Lock()
	defer guard.Unlock()

	txRaw, err := w.signer.Sign(ctx, address, []tx.Message{msg}, fee, memo, nil)
	if err != nil {
		return nil, err
	}

	txBytes, err := tx.EncodeTxRaw(txRaw)
	if err != nil {
		return nil, err
	}

	return w.broadcaster.Broadcast(ctx, txBytes)
}

// Broadcast submits signed transaction bytes in sync mode.
func (w *Wallet) Broadcast(ctx context.Context, txBytes []byte) (*txtypes.BroadcastTxResponse, error) {
	return w.broadcaster.Broadcast(ctx, txBytes)
}

// WaitForInclusion polls until the transaction lands in a block.
func (w *Wallet) WaitForInclusion(ctx context.Context, txHash string) (*txtypes.GetTxResponse, error) {
	return w.broadcaster.WaitForInclusion(ctx, txHash)
}

func (w *Wallet) boundAccount() (string, []byte, error) {
	w.accountLock.RLock()
	defer w.accountLock.RUnlock()

	if w.address == "" {
		return "", nil, errorsmod.Wrap(ErrMissingAddress, "call UseAccount first")
	}
	return w.address, w.pubKey, nil
}

func (w *Wallet) messageBuilder(address string) *tx.MessageBuilder {
	return tx.NewMessageBuilder(address, w.clock)
}

func (w *Wallet) sequenceGuard(address string) *sync.Mutex {
	w.guardsLock.Lock()
	defer w.guardsLock.Unlock()

	guard, ok := w.sequenceGuards[address]
	if !ok {
		guard = &sync.Mutex{}
		w.sequenceGuards[address] = guard
	}
	return guard
}
