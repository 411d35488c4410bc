package web

import (
	"context"
	"math/big"
	"sync"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"

	"github.com/mar-cial/whitelist"
)

type fakeInspector struct {
	mu     sync.Mutex
	count  int
	member bool
}

func (f *fakeInspector) NumWhitelisted(_ context.Context) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.count, nil
}

func (f *fakeInspector) MaxWhitelisted(_ context.Context) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	return 10, nil
}

func (f *fakeInspector) IsWhitelisted(_ context.Context, _ common.Address) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.member, nil
}

func (f *fakeInspector) setCount(n int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.count = n
}

// fakeExecutor confirms every submission immediately. onConfirm runs before
// the receipt is returned.
type fakeExecutor struct {
	onConfirm func()
}

func (f *fakeExecutor) SubmitJoin(_ context.Context) (*types.Transaction, error) {
	return types.NewTransaction(1, common.Address{}, big.NewInt(0), 21000, big.NewInt(1), nil), nil
}

func (f *fakeExecutor) Confirm(_ context.Context, tx *types.Transaction) (*types.Receipt, error) {
	if f.onConfirm != nil {
		f.onConfirm()
	}

	return &types.Receipt{Status: types.ReceiptStatusSuccessful, TxHash: tx.Hash()}, nil
}

type fakeProvider struct {
	conn *whitelist.Conn
	err  error
}

func (f *fakeProvider) Connect(_ context.Context) (*whitelist.Conn, error) {
	return f.conn, f.err
}
