package registry

import (
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
)

// ContractDeployBackend is the client capability the registry gateway needs:
// contract calls plus receipt lookups. *ethclient.Client satisfies it.
type ContractDeployBackend interface {
	bind.ContractBackend
	bind.DeployBackend
}
