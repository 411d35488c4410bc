// Package bindings contains the Go binding for the Whitelist registry
// contract, generated with abigen from the ABI in abi/Whitelist.json.
//
// The contract is already deployed, so the binding carries no deploy
// bytecode. Regenerate after changing the ABI:
//
//	go generate ./registry/bindings
package bindings

//go:generate abigen --abi abi/Whitelist.json --pkg bindings --type Whitelist --out Whitelist.go
