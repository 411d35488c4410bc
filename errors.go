package whitelist

import (
	"errors"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
)

var (
	// ErrNotConnected is returned by operations that need an established
	// wallet session before one exists.
	ErrNotConnected = errors.New("wallet not connected")

	// ErrSignerRequired is returned when an operation needs a signing
	// account but the session is read-only.
	ErrSignerRequired = errors.New("operation requires a signer")

	// ErrJoinInFlight is returned when a join is requested while a previous
	// join transaction is still awaiting confirmation.
	ErrJoinInFlight = errors.New("join transaction already in flight")
)

// WrongNetworkError is returned when the wallet's active network does not
// match the network the registry contract is deployed on.
type WrongNetworkError struct {
	HaveChainID uint64
	WantChainID uint64
	WantName    string
}

// NewWrongNetworkError creates a new WrongNetworkError.
func NewWrongNetworkError(have, want uint64, wantName string) *WrongNetworkError {
	return &WrongNetworkError{HaveChainID: have, WantChainID: want, WantName: wantName}
}

func (e *WrongNetworkError) Error() string {
	if e.WantName != "" {
		return fmt.Sprintf("wrong network: connected to chain id %d, change the network to %s (chain id %d)", e.HaveChainID, e.WantName, e.WantChainID)
	}

	return fmt.Sprintf("wrong network: connected to chain id %d, expected chain id %d", e.HaveChainID, e.WantChainID)
}

// JoinRevertedError is returned when a join transaction was mined but
// reverted, leaving the registry unchanged.
type JoinRevertedError struct {
	TxHash common.Hash
}

// NewJoinRevertedError creates a new JoinRevertedError.
func NewJoinRevertedError(txHash common.Hash) *JoinRevertedError {
	return &JoinRevertedError{TxHash: txHash}
}

func (e *JoinRevertedError) Error() string {
	return fmt.Sprintf("join transaction %s reverted", e.TxHash.Hex())
}
