// Package config loads the client's configuration from the environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/ethereum/go-ethereum/accounts"
	"github.com/ethereum/go-ethereum/common"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	chainsel "github.com/smartcontractkit/chain-selectors"
	"go.uber.org/zap"

	"github.com/mar-cial/whitelist/wallet"
)

// DefaultEnvFile is where Load looks for an env file unless told otherwise.
const DefaultEnvFile = ".env"

// Config carries everything the client needs to reach the whitelist
// registry. PrivateKey, KeystorePath and Ledger are mutually exclusive; with
// none of them set the client runs read-only.
type Config struct {
	RPCURL           string        `env:"RPC_URL"           validate:"required,url"`
	ContractAddress  string        `env:"CONTRACT_ADDRESS"  validate:"required,eth_addr"`
	ChainSelector    uint64        `env:"CHAIN_SELECTOR"    envDefault:"16015286601757825753" validate:"required"`
	PrivateKey       string        `env:"PRIVATE_KEY"`
	KeystorePath     string        `env:"KEYSTORE_PATH"`
	KeystorePassword string        `env:"KEYSTORE_PASSWORD"`
	Ledger           bool          `env:"LEDGER"`
	LedgerPath       string        `env:"LEDGER_DERIVATION_PATH" envDefault:"m/44'/60'/0'/0/0"`
	ListenAddr       string        `env:"LISTEN_ADDR"       envDefault:":8080" validate:"required"`
	PollInterval     time.Duration `env:"POLL_INTERVAL"     envDefault:"1s" validate:"gt=0"`
}

// Load reads configuration from the process environment, after loading the
// env file at envFile. A missing env file is skipped so configuration can
// come entirely from the environment.
func Load(envFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !os.IsNotExist(err) {
			return nil, fmt.Errorf("load env file %q: %w", envFile, err)
		}
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks the configuration beyond what parsing enforces.
func (c *Config) Validate() error {
	validate := validator.New()
	if err := validate.Struct(c); err != nil {
		return err
	}

	if _, exists := chainsel.ChainBySelector(c.ChainSelector); !exists {
		return fmt.Errorf("unknown chain selector %d", c.ChainSelector)
	}

	sources := 0
	for _, set := range []bool{c.PrivateKey != "", c.KeystorePath != "", c.Ledger} {
		if set {
			sources++
		}
	}
	if sources > 1 {
		return errors.New("PRIVATE_KEY, KEYSTORE_PATH and LEDGER are mutually exclusive")
	}

	if c.KeystorePassword != "" && c.KeystorePath == "" {
		return errors.New("KEYSTORE_PASSWORD is set without KEYSTORE_PATH")
	}

	if c.Ledger {
		if _, err := accounts.ParseDerivationPath(c.LedgerPath); err != nil {
			return fmt.Errorf("parse LEDGER_DERIVATION_PATH: %w", err)
		}
	}

	return nil
}

// ContractAddr returns the registry contract address.
func (c *Config) ContractAddr() common.Address {
	return common.HexToAddress(c.ContractAddress)
}

// Signer builds the configured signing strategy. It is nil when no key
// source is set, leaving the client read-only.
func (c *Config) Signer() (wallet.Signer, error) {
	switch {
	case c.PrivateKey != "":
		return wallet.NewPrivateKeySignerFromHex(c.PrivateKey)
	case c.KeystorePath != "":
		return wallet.NewKeystoreSigner(c.KeystorePath, c.KeystorePassword)
	case c.Ledger:
		path, err := accounts.ParseDerivationPath(c.LedgerPath)
		if err != nil {
			return nil, fmt.Errorf("parse LEDGER_DERIVATION_PATH: %w", err)
		}

		return wallet.NewLedgerSigner(path), nil
	default:
		return nil, nil
	}
}

// Provider assembles the wallet provider the configuration describes.
func (c *Config) Provider(lggr *zap.SugaredLogger) (*wallet.Provider, error) {
	signer, err := c.Signer()
	if err != nil {
		return nil, err
	}

	provider, err := wallet.NewProvider(c.RPCURL, c.ContractAddr(), c.ChainSelector)
	if err != nil {
		return nil, err
	}

	provider = provider.WithPollInterval(c.PollInterval).WithLogger(lggr)
	if signer != nil {
		provider = provider.WithSigner(signer)
	}

	return provider, nil
}
