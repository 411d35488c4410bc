package whitelist

import (
	"context"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
)

// Inspector reads the state of the whitelist registry.
type Inspector interface {
	// NumWhitelisted gets the number of addresses currently registered.
	NumWhitelisted(ctx context.Context) (int, error)

	// MaxWhitelisted gets the registration capacity of the registry.
	MaxWhitelisted(ctx context.Context) (int, error)

	// IsWhitelisted reports whether addr is registered.
	IsWhitelisted(ctx context.Context, addr common.Address) (bool, error)
}

// Executor submits the registry's self-registration transaction and awaits
// its confirmation.
type Executor interface {
	// SubmitJoin submits the registration transaction for the signing
	// account and returns without waiting for it to be mined.
	SubmitJoin(ctx context.Context) (*types.Transaction, error)

	// Confirm waits for tx to be mined and returns its receipt, whatever
	// the receipt status.
	Confirm(ctx context.Context, tx *types.Transaction) (*types.Receipt, error)
}

// WalletProvider establishes wallet sessions against the registry's network.
//
// Connect must verify the endpoint's chain id against the required network
// and fail with a *WrongNetworkError on mismatch.
type WalletProvider interface {
	Connect(ctx context.Context) (*Conn, error)
}

// Conn is an established wallet session: the connected account plus the
// registry gateways bound to it. It is owned by whoever created it and must
// be released with Close.
type Conn struct {
	account   common.Address
	inspector Inspector
	executor  Executor
	closeFn   func()
}

// NewConn assembles a wallet session. executor is nil for read-only
// sessions, which also have a zero account. closeFn releases the underlying
// client and may be nil.
func NewConn(account common.Address, inspector Inspector, executor Executor, closeFn func()) *Conn {
	return &Conn{
		account:   account,
		inspector: inspector,
		executor:  executor,
		closeFn:   closeFn,
	}
}

// Account returns the connected account address. It is the zero address for
// read-only sessions.
func (c *Conn) Account() common.Address {
	return c.account
}

// Inspector returns the read gateway to the registry.
func (c *Conn) Inspector() Inspector {
	return c.inspector
}

// Executor returns the write gateway to the registry, or nil for read-only
// sessions.
func (c *Conn) Executor() Executor {
	return c.executor
}

// ReadOnly reports whether the session lacks a signing account.
func (c *Conn) ReadOnly() bool {
	return c.executor == nil
}

// Close releases the session's underlying client. It is safe to call on a
// nil Conn.
func (c *Conn) Close() {
	if c == nil || c.closeFn == nil {
		return
	}
	c.closeFn()
}
