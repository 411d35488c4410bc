package registry

import (
	"context"
	"fmt"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"

	"github.com/mar-cial/whitelist/registry/bindings"
)

// Inspector gives read-only access to the state of the whitelist registry
// contract at a fixed address.
type Inspector struct {
	contract *bindings.Whitelist
	client   ContractDeployBackend
	address  common.Address
}

// NewInspector creates a new Inspector bound to the registry contract at
// address.
func NewInspector(client ContractDeployBackend, address common.Address) (*Inspector, error) {
	contract, err := bindings.NewWhitelist(address, client)
	if err != nil {
		return nil, fmt.Errorf("bind whitelist contract: %w", err)
	}

	return &Inspector{
		contract: contract,
		client:   client,
		address:  address,
	}, nil
}

// Address returns the registry contract address.
func (i *Inspector) Address() common.Address {
	return i.address
}

// NumWhitelisted gets the number of addresses currently registered.
func (i *Inspector) NumWhitelisted(ctx context.Context) (int, error) {
	count, err := i.contract.NumAddressesWhitelisted(&bind.CallOpts{Context: ctx})
	if err != nil {
		return 0, fmt.Errorf("call numAddressesWhitelisted: %w", err)
	}

	return int(count), nil
}

// MaxWhitelisted gets the registration capacity of the registry.
func (i *Inspector) MaxWhitelisted(ctx context.Context) (int, error) {
	limit, err := i.contract.MaxWhitelistedAddresses(&bind.CallOpts{Context: ctx})
	if err != nil {
		return 0, fmt.Errorf("call maxWhitelistedAddresses: %w", err)
	}

	return int(limit), nil
}

// IsWhitelisted reports whether addr is registered.
func (i *Inspector) IsWhitelisted(ctx context.Context, addr common.Address) (bool, error) {
	member, err := i.contract.WhitelistedAddresses(&bind.CallOpts{Context: ctx}, addr)
	if err != nil {
		return false, fmt.Errorf("call whitelistedAddresses: %w", err)
	}

	return member, nil
}
