// Package wallet connects signing accounts to the whitelist registry's
// network. Provider is the concrete whitelist.WalletProvider: it dials a
// JSON-RPC endpoint, refuses endpoints on the wrong network, and hands back
// an established session.
package wallet

import (
	"context"
	"fmt"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/ethclient"
	chainsel "github.com/smartcontractkit/chain-selectors"
	"go.uber.org/zap"

	"github.com/mar-cial/whitelist"
	"github.com/mar-cial/whitelist/registry"
)

var _ whitelist.WalletProvider = &Provider{}

// Provider establishes wallet sessions over a JSON-RPC endpoint. Sessions
// are read-only unless a Signer is configured.
type Provider struct {
	rpcURL       string
	contract     common.Address
	chain        chainsel.Chain
	signer       Signer
	pollInterval time.Duration
	lggr         *zap.SugaredLogger
}

// NewProvider creates a Provider for the registry contract deployed on the
// network identified by chainSelector. The selector must name a known chain.
func NewProvider(rpcURL string, contract common.Address, chainSelector uint64) (*Provider, error) {
	chain, exists := chainsel.ChainBySelector(chainSelector)
	if !exists {
		return nil, fmt.Errorf("unknown chain selector %d", chainSelector)
	}

	return &Provider{
		rpcURL:   rpcURL,
		contract: contract,
		chain:    chain,
		lggr:     zap.NewNop().Sugar(),
	}, nil
}

// WithSigner sets the signing account. Sessions connected afterwards can
// submit the registration transaction.
func (p *Provider) WithSigner(s Signer) *Provider {
	p.signer = s
	return p
}

// WithPollInterval sets how often connected sessions poll for transaction
// receipts.
func (p *Provider) WithPollInterval(d time.Duration) *Provider {
	p.pollInterval = d
	return p
}

// WithLogger sets the logger handed to connected sessions.
func (p *Provider) WithLogger(lggr *zap.SugaredLogger) *Provider {
	if lggr != nil {
		p.lggr = lggr
	}

	return p
}

// Chain returns the network the provider requires.
func (p *Provider) Chain() chainsel.Chain {
	return p.chain
}

// Connect dials the endpoint, verifies it serves the required network, and
// builds a session bound to the registry contract. A mismatched network
// yields a *whitelist.WrongNetworkError.
func (p *Provider) Connect(ctx context.Context) (*whitelist.Conn, error) {
	client, err := ethclient.DialContext(ctx, p.rpcURL)
	if err != nil {
		return nil, fmt.Errorf("dial %q: %w", p.rpcURL, err)
	}

	chainID, err := client.ChainID(ctx)
	if err != nil {
		client.Close()
		return nil, fmt.Errorf("query chain id: %w", err)
	}

	if chainID.Cmp(big.NewInt(int64(p.chain.EvmChainID))) != 0 {
		client.Close()
		return nil, whitelist.NewWrongNetworkError(chainID.Uint64(), p.chain.EvmChainID, p.chain.Name)
	}

	conn, err := p.buildConn(client)
	if err != nil {
		client.Close()
		return nil, err
	}

	return conn, nil
}

func (p *Provider) buildConn(client *ethclient.Client) (*whitelist.Conn, error) {
	if p.signer == nil {
		inspector, err := registry.NewInspector(client, p.contract)
		if err != nil {
			return nil, err
		}

		return whitelist.NewConn(common.Address{}, inspector, nil, client.Close), nil
	}

	account, err := p.signer.Address()
	if err != nil {
		return nil, fmt.Errorf("resolve signing account: %w", err)
	}

	auth, err := p.signer.TransactOpts(big.NewInt(int64(p.chain.EvmChainID)))
	if err != nil {
		return nil, fmt.Errorf("build transact opts: %w", err)
	}

	executor, err := registry.NewExecutor(client, p.contract, auth, p.lggr)
	if err != nil {
		return nil, err
	}
	executor = executor.WithPollInterval(p.pollInterval)

	return whitelist.NewConn(account, executor, executor, client.Close), nil
}
