package whitelist

import (
	"context"
	"math/big"
	"sync"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
)

// fakeProvider is a fake implementation of WalletProvider.
type fakeProvider struct {
	mu    sync.Mutex
	conn  *Conn
	err   error
	calls int
}

// newFakeProvider returns a new fakeProvider. The args provided will be
// returned when Connect is called.
func newFakeProvider(conn *Conn, err error) *fakeProvider {
	return &fakeProvider{conn: conn, err: err}
}

// Connect implements the WalletProvider interface.
func (p *fakeProvider) Connect(_ context.Context) (*Conn, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.calls++

	return p.conn, p.err
}

func (p *fakeProvider) connectCalls() int {
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.calls
}

func (p *fakeProvider) set(conn *Conn, err error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.conn, p.err = conn, err
}

// fakeInspector is a fake implementation of Inspector with scripted results.
type fakeInspector struct {
	mu          sync.Mutex
	count       int
	countErr    error
	limit       int
	member      bool
	memberErr   error
	countCalls  int
	memberCalls int
	lastAddr    common.Address
}

// NumWhitelisted implements the Inspector interface.
func (f *fakeInspector) NumWhitelisted(_ context.Context) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.countCalls++
	if f.countErr != nil {
		return 0, f.countErr
	}

	return f.count, nil
}

// MaxWhitelisted implements the Inspector interface.
func (f *fakeInspector) MaxWhitelisted(_ context.Context) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.limit, nil
}

// IsWhitelisted implements the Inspector interface.
func (f *fakeInspector) IsWhitelisted(_ context.Context, addr common.Address) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.memberCalls++
	f.lastAddr = addr
	if f.memberErr != nil {
		return false, f.memberErr
	}

	return f.member, nil
}

func (f *fakeInspector) setCount(n int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.count = n
}

func (f *fakeInspector) setCountErr(err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.countErr = err
}

func (f *fakeInspector) setMember(member bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.member = member
}

func (f *fakeInspector) setMemberErr(err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.memberErr = err
}

func (f *fakeInspector) calls() (count, member int) {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.countCalls, f.memberCalls
}

func (f *fakeInspector) lastMemberAddr() common.Address {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.lastAddr
}

// fakeExecutor is a fake implementation of Executor. The hooks run inside
// SubmitJoin and Confirm so tests can observe session state mid-flight.
type fakeExecutor struct {
	mu         sync.Mutex
	tx         *types.Transaction
	submitErr  error
	receipt    *types.Receipt
	confirmErr error
	submits    int
	confirms   int
	onSubmit   func()
	onConfirm  func()
	block      chan struct{}
}

// newFakeExecutor returns a fakeExecutor that confirms tx with receipt.
func newFakeExecutor() *fakeExecutor {
	tx := types.NewTransaction(1, common.HexToAddress("0x22"), big.NewInt(0), 21000, big.NewInt(1), nil)

	return &fakeExecutor{
		tx:      tx,
		receipt: &types.Receipt{Status: types.ReceiptStatusSuccessful, TxHash: tx.Hash()},
	}
}

// SubmitJoin implements the Executor interface.
func (f *fakeExecutor) SubmitJoin(_ context.Context) (*types.Transaction, error) {
	f.mu.Lock()
	f.submits++
	hook := f.onSubmit
	tx, err := f.tx, f.submitErr
	f.mu.Unlock()

	if hook != nil {
		hook()
	}
	if err != nil {
		return nil, err
	}

	return tx, nil
}

// Confirm implements the Executor interface. When block is set, Confirm
// waits on it before returning, keeping the join in flight.
func (f *fakeExecutor) Confirm(ctx context.Context, _ *types.Transaction) (*types.Receipt, error) {
	f.mu.Lock()
	f.confirms++
	hook := f.onConfirm
	block := f.block
	receipt, err := f.receipt, f.confirmErr
	f.mu.Unlock()

	if hook != nil {
		hook()
	}
	if block != nil {
		select {
		case <-block:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	if err != nil {
		return nil, err
	}

	return receipt, nil
}

func (f *fakeExecutor) submitCalls() int {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.submits
}

func (f *fakeExecutor) confirmCalls() int {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.confirms
}

// closeRecorder counts Conn teardowns.
type closeRecorder struct {
	mu     sync.Mutex
	closes int
}

func (c *closeRecorder) close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.closes++
}

func (c *closeRecorder) count() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.closes
}
