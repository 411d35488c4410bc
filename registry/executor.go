package registry

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"go.uber.org/zap"
)

// DefaultPollInterval is how often Confirm checks for a receipt when no
// interval is configured.
const DefaultPollInterval = time.Second

// Executor extends Inspector with the ability to submit the registry's
// self-registration transaction and await its confirmation.
type Executor struct {
	*Inspector
	auth         *bind.TransactOpts
	pollInterval time.Duration
	lggr         *zap.SugaredLogger
}

// NewExecutor creates a new Executor for the registry contract at address.
// auth carries the signing account; a nil logger disables logging.
func NewExecutor(client ContractDeployBackend, address common.Address, auth *bind.TransactOpts, lggr *zap.SugaredLogger) (*Executor, error) {
	inspector, err := NewInspector(client, address)
	if err != nil {
		return nil, err
	}

	if lggr == nil {
		lggr = zap.NewNop().Sugar()
	}

	return &Executor{
		Inspector:    inspector,
		auth:         auth,
		pollInterval: DefaultPollInterval,
		lggr:         lggr,
	}, nil
}

// WithPollInterval sets how often Confirm polls for a receipt.
func (e *Executor) WithPollInterval(d time.Duration) *Executor {
	if d > 0 {
		e.pollInterval = d
	}

	return e
}

// SubmitJoin submits the addAddressToWhitelist transaction for the signing
// account and returns the pending transaction without waiting for it to be
// mined.
func (e *Executor) SubmitJoin(ctx context.Context) (*types.Transaction, error) {
	opts := *e.auth
	opts.Context = ctx

	tx, err := e.contract.AddAddressToWhitelist(&opts)
	if err != nil {
		return nil, fmt.Errorf("submit addAddressToWhitelist: %w", err)
	}

	e.lggr.Infow("submitted join transaction", "tx", tx.Hash().Hex(), "from", e.auth.From.Hex())

	return tx, nil
}

// Confirm waits for tx to be mined and returns its receipt, whatever the
// receipt status. It polls the backend on an interval and stops when the
// context is canceled.
func (e *Executor) Confirm(ctx context.Context, tx *types.Transaction) (*types.Receipt, error) {
	return e.waitMined(ctx, tx.Hash())
}

func (e *Executor) waitMined(ctx context.Context, txHash common.Hash) (*types.Receipt, error) {
	queryTicker := time.NewTicker(e.pollInterval)
	defer queryTicker.Stop()

	for {
		receipt, err := e.client.TransactionReceipt(ctx, txHash)
		if err == nil {
			e.lggr.Infow("transaction mined", "tx", txHash.Hex(), "status", receipt.Status)
			return receipt, nil
		}

		if errors.Is(err, ethereum.NotFound) {
			e.lggr.Debugw("transaction not yet mined", "tx", txHash.Hex())
		} else {
			// Transient lookup failures are retried on the next tick.
			e.lggr.Warnw("error retrieving receipt", "tx", txHash.Hex(), "err", err)
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-queryTicker.C:
		}
	}
}
