package main

import (
	"context"
	"log"

	"github.com/ethereum/go-ethereum/common"
	chainsel "github.com/smartcontractkit/chain-selectors"

	"github.com/mar-cial/whitelist"
	"github.com/mar-cial/whitelist/wallet"
)

func main() {
	registryAddr := common.HexToAddress("0x123")
	provider, err := wallet.NewProvider(
		"https://ethereum-sepolia-rpc.publicnode.com",
		registryAddr,
		chainsel.ETHEREUM_TESTNET_SEPOLIA.Selector,
	)
	if err != nil {
		log.Fatalf("failed to build provider: %v", err)
	}

	session := whitelist.NewSession(provider)
	defer session.Close()

	if err := session.Connect(context.Background()); err != nil {
		log.Fatalf("failed to connect: %v", err)
	}

	snap := session.Snapshot()
	log.Printf("registered addresses: %d", snap.State.NumberOfWhitelisted)
	for _, line := range snap.Alerts.Lines() {
		log.Printf("alert: %s", line)
	}
}
