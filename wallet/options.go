package wallet

import (
	"time"

	"github.com/tessellated-io/nolus-wallet/cosmos/rest"
)

const (
	defaultTxPollAttempts uint = 20
	defaultTxPollDelay         = 3 * time.Second
)

type Option func(*Wallet)

// WithRestClient reads native balances over REST instead of the chain client.
func WithRestClient(restClient *rest.Client) Option {
	return func(w *Wallet) {
		w.restClient = restClient
	}
}

// WithClock sets the clock IBC timeouts are computed from.
func WithClock(clock func() time.Time) Option {
	return func(w *Wallet) {
		w.clock = clock
	}
}

// WithTxPolling sets how long WaitForInclusion polls before giving up.
func WithTxPolling(attempts uint, delay time.Duration) Option {
	return func(w *Wallet) {
		w.txPollAttempts = attempts
		w.txPollDelay = delay
	}
}
