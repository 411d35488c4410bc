package registry

import (
	"context"
	"errors"
	"math/big"
	"sync"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
)

var _ ContractDeployBackend = &fakeBackend{}

// fakeBackend is a fake ContractDeployBackend with scripted contract-call
// and receipt results. Transact plumbing answers with fixed values: nonce 7,
// gas price 1, gas limit 50000, no base fee.
type fakeBackend struct {
	mu sync.Mutex

	callOutput []byte
	callErr    error
	lastCall   ethereum.CallMsg

	sendErr error
	sentTxs []*types.Transaction

	// receiptResults is consumed one entry per TransactionReceipt call,
	// with the last entry sticky. Empty means not yet mined.
	receiptResults []receiptResult
}

type receiptResult struct {
	receipt *types.Receipt
	err     error
}

func newFakeBackend() *fakeBackend {
	return &fakeBackend{}
}

func (f *fakeBackend) setCallOutput(out []byte) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.callOutput = out
}

func (f *fakeBackend) setCallErr(err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.callErr = err
}

func (f *fakeBackend) setSendErr(err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sendErr = err
}

func (f *fakeBackend) pushReceipt(receipt *types.Receipt, err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.receiptResults = append(f.receiptResults, receiptResult{receipt: receipt, err: err})
}

func (f *fakeBackend) lastCallMsg() ethereum.CallMsg {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.lastCall
}

func (f *fakeBackend) sent() []*types.Transaction {
	f.mu.Lock()
	defer f.mu.Unlock()

	return append([]*types.Transaction(nil), f.sentTxs...)
}

func (f *fakeBackend) CodeAt(_ context.Context, _ common.Address, _ *big.Int) ([]byte, error) {
	return []byte{0x01}, nil
}

func (f *fakeBackend) CallContract(_ context.Context, call ethereum.CallMsg, _ *big.Int) ([]byte, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.lastCall = call
	if f.callErr != nil {
		return nil, f.callErr
	}

	return f.callOutput, nil
}

func (f *fakeBackend) HeaderByNumber(_ context.Context, _ *big.Int) (*types.Header, error) {
	return &types.Header{}, nil
}

func (f *fakeBackend) PendingCodeAt(_ context.Context, _ common.Address) ([]byte, error) {
	return []byte{0x01}, nil
}

func (f *fakeBackend) PendingNonceAt(_ context.Context, _ common.Address) (uint64, error) {
	return 7, nil
}

func (f *fakeBackend) SuggestGasPrice(_ context.Context) (*big.Int, error) {
	return big.NewInt(1), nil
}

func (f *fakeBackend) SuggestGasTipCap(_ context.Context) (*big.Int, error) {
	return big.NewInt(1), nil
}

func (f *fakeBackend) EstimateGas(_ context.Context, _ ethereum.CallMsg) (uint64, error) {
	return 50000, nil
}

func (f *fakeBackend) SendTransaction(_ context.Context, tx *types.Transaction) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.sendErr != nil {
		return f.sendErr
	}
	f.sentTxs = append(f.sentTxs, tx)

	return nil
}

func (f *fakeBackend) FilterLogs(_ context.Context, _ ethereum.FilterQuery) ([]types.Log, error) {
	return nil, errors.New("log filtering is not supported")
}

func (f *fakeBackend) SubscribeFilterLogs(_ context.Context, _ ethereum.FilterQuery, _ chan<- types.Log) (ethereum.Subscription, error) {
	return nil, errors.New("log subscriptions are not supported")
}

func (f *fakeBackend) TransactionReceipt(_ context.Context, _ common.Hash) (*types.Receipt, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if len(f.receiptResults) == 0 {
		return nil, ethereum.NotFound
	}

	res := f.receiptResults[0]
	if len(f.receiptResults) > 1 {
		f.receiptResults = f.receiptResults[1:]
	}

	return res.receipt, res.err
}
