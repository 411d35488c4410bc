//go:build e2e
// +build e2e

package e2e

import (
	"context"
	"sync"
	"testing"

	"go.uber.org/zap"

	"github.com/mar-cial/whitelist"
	"github.com/mar-cial/whitelist/config"
)

// Shared test setup
var (
	sharedSetup *TestSetup
	setupOnce   sync.Once
)

// TestSetup holds common setup for the E2E test suites. The registry
// endpoint, contract and optional signer come from the environment, the same
// way the CLI is configured.
type TestSetup struct {
	Config *config.Config
	Conn   *whitelist.Conn
}

// InitializeSharedTestSetup dials the configured registry only once.
func InitializeSharedTestSetup(t *testing.T) *TestSetup {
	t.Helper()

	setupOnce.Do(func() {
		cfg, err := config.Load(config.DefaultEnvFile)
		if err != nil {
			t.Fatalf("Failed to load configuration: %v", err)
		}

		provider, err := cfg.Provider(zap.NewNop().Sugar())
		if err != nil {
			t.Fatalf("Failed to build provider: %v", err)
		}

		conn, err := provider.Connect(context.Background())
		if err != nil {
			t.Fatalf("Failed to connect: %v", err)
		}

		sharedSetup = &TestSetup{Config: cfg, Conn: conn}
	})

	return sharedSetup
}
