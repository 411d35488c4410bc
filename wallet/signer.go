package wallet

import (
	"crypto/ecdsa"
	"errors"
	"fmt"
	"math/big"
	"os"

	"github.com/ethereum/go-ethereum/accounts"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/accounts/keystore"
	"github.com/ethereum/go-ethereum/accounts/usbwallet"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
)

// Signer is a strategy for providing the transaction-signing account of a
// wallet session.
type Signer interface {
	// Address returns the signing account's address.
	Address() (common.Address, error)

	// TransactOpts builds transaction options that sign for chainID.
	TransactOpts(chainID *big.Int) (*bind.TransactOpts, error)
}

var _ Signer = &PrivateKeySigner{}

// PrivateKeySigner signs transactions with an in-memory private key.
type PrivateKeySigner struct {
	pk *ecdsa.PrivateKey
}

// NewPrivateKeySigner creates a new PrivateKeySigner.
func NewPrivateKeySigner(pk *ecdsa.PrivateKey) *PrivateKeySigner {
	return &PrivateKeySigner{pk: pk}
}

// NewPrivateKeySignerFromHex creates a PrivateKeySigner from a hex-encoded
// private key without the 0x prefix.
func NewPrivateKeySignerFromHex(hexKey string) (*PrivateKeySigner, error) {
	pk, err := crypto.HexToECDSA(hexKey)
	if err != nil {
		return nil, fmt.Errorf("parse private key: %w", err)
	}

	return NewPrivateKeySigner(pk), nil
}

// Address returns the address of the signing account.
func (s *PrivateKeySigner) Address() (common.Address, error) {
	return crypto.PubkeyToAddress(s.pk.PublicKey), nil
}

// TransactOpts builds keyed transaction options for chainID.
func (s *PrivateKeySigner) TransactOpts(chainID *big.Int) (*bind.TransactOpts, error) {
	auth, err := bind.NewKeyedTransactorWithChainID(s.pk, chainID)
	if err != nil {
		return nil, fmt.Errorf("build keyed transactor: %w", err)
	}

	return auth, nil
}

var _ Signer = &KeystoreSigner{}

// KeystoreSigner signs transactions with a key loaded from an encrypted geth
// keystore file. The passphrase is required once, at construction.
type KeystoreSigner struct {
	pk *ecdsa.PrivateKey
}

// NewKeystoreSigner decrypts the keystore file at path with the passphrase
// and creates a new KeystoreSigner.
func NewKeystoreSigner(path, passphrase string) (*KeystoreSigner, error) {
	encrypted, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read keystore file: %w", err)
	}

	key, err := keystore.DecryptKey(encrypted, passphrase)
	if err != nil {
		return nil, fmt.Errorf("decrypt keystore file: %w", err)
	}

	return &KeystoreSigner{pk: key.PrivateKey}, nil
}

// Address returns the address of the signing account.
func (s *KeystoreSigner) Address() (common.Address, error) {
	return crypto.PubkeyToAddress(s.pk.PublicKey), nil
}

// TransactOpts builds keyed transaction options for chainID.
func (s *KeystoreSigner) TransactOpts(chainID *big.Int) (*bind.TransactOpts, error) {
	auth, err := bind.NewKeyedTransactorWithChainID(s.pk, chainID)
	if err != nil {
		return nil, fmt.Errorf("build keyed transactor: %w", err)
	}

	return auth, nil
}

var _ Signer = &LedgerSigner{}

// LedgerSigner signs transactions with a Ledger device. The device is opened
// per operation and closed again, so the ethereum app must stay open on the
// Ledger while the client runs.
type LedgerSigner struct {
	derivationPath accounts.DerivationPath
}

// NewLedgerSigner creates a new LedgerSigner.
func NewLedgerSigner(derivationPath accounts.DerivationPath) *LedgerSigner {
	return &LedgerSigner{derivationPath: derivationPath}
}

// Address returns the account derived from the first connected Ledger.
func (s *LedgerSigner) Address() (common.Address, error) {
	wallet, account, err := s.openAccount()
	if err != nil {
		return common.Address{}, err
	}
	defer wallet.Close()

	return account.Address, nil
}

// TransactOpts builds transaction options that sign on the device for
// chainID. Every signature opens the Ledger anew.
func (s *LedgerSigner) TransactOpts(chainID *big.Int) (*bind.TransactOpts, error) {
	address, err := s.Address()
	if err != nil {
		return nil, err
	}

	return &bind.TransactOpts{
		From: address,
		Signer: func(addr common.Address, tx *types.Transaction) (*types.Transaction, error) {
			if addr != address {
				return nil, bind.ErrNotAuthorized
			}

			wallet, account, err := s.openAccount()
			if err != nil {
				return nil, err
			}
			defer wallet.Close()

			return wallet.SignTx(account, tx, chainID)
		},
	}, nil
}

// openAccount loads the wallet and account from the Ledger. The caller is
// responsible for closing the wallet.
func (s *LedgerSigner) openAccount() (accounts.Wallet, accounts.Account, error) {
	hub, err := usbwallet.NewLedgerHub()
	if err != nil {
		return nil, accounts.Account{}, fmt.Errorf("open ledger hub: %w", err)
	}

	wallets := hub.Wallets()
	if len(wallets) == 0 {
		return nil, accounts.Account{}, errors.New("no ledger found")
	}
	wallet := wallets[0]

	if err = wallet.Open(""); err != nil {
		return nil, accounts.Account{}, fmt.Errorf("open ledger wallet: %w", err)
	}

	account, err := wallet.Derive(s.derivationPath, true)
	if err != nil {
		wallet.Close()
		return nil, accounts.Account{}, fmt.Errorf("derive account at %v (is the ethereum app open?): %w", s.derivationPath, err)
	}

	return wallet, account, nil
}
