package wallet

import (
	"errors"

	walletRepo "qserve/database/repository/wallet"
	"qserve/models"
	"qserve/utils"
)

// WalletService manages the general-purpose balance account.
type WalletService interface {
	GetAccount(ownerID string) (*models.WalletAccount, error)
	Deposit(ownerID string, amount float64) (*models.WalletAccount, error)
	Withdraw(ownerID string, amount float64) (*models.WalletAccount, error)
}

// DefaultWalletService is the production implementation.
type DefaultWalletService struct {
	Repo walletRepo.WalletRepository
}

// GetAccount retrieves the owner's wallet.
func (s *DefaultWalletService) GetAccount(ownerID string) (*models.WalletAccount, error) {
	acct, err := s.Repo.GetByOwner(ownerID)
	if err != nil {
		return nil, utils.Wrap(utils.CodeInternal, "failed to fetch wallet", err)
	}
	if acct == nil {
		return nil, utils.E(utils.CodeNotFound, "wallet account not found")
	}
	return acct, nil
}

// Deposit adds amount to the owner's balance.
func (s *DefaultWalletService) Deposit(ownerID string, amount float64) (*models.WalletAccount, error) {
	if amount <= 0 {
		return nil, utils.E(utils.CodeValidation, "amount must be positive")
	}
	if _, err := s.GetAccount(ownerID); err != nil {
		return nil, err
	}
	if err := s.Repo.Credit(ownerID, amount); err != nil {
		return nil, utils.Wrap(utils.CodeInternal, "deposit failed", err)
	}
	return s.GetAccount(ownerID)
}

// Withdraw subtracts amount from the owner's balance. A balance below the
// requested amount rejects the withdrawal; balances are never floored.
func (s *DefaultWalletService) Withdraw(ownerID string, amount float64) (*models.WalletAccount, error) {
	if amount <= 0 {
		return nil, utils.E(utils.CodeValidation, "amount must be positive")
	}
	if _, err := s.GetAccount(ownerID); err != nil {
		return nil, err
	}
	if err := s.Repo.Debit(ownerID, amount); err != nil {
		if errors.Is(err, walletRepo.ErrInsufficientFunds) {
			return nil, utils.E(utils.CodeInsufficientBalance, "insufficient wallet balance")
		}
		return nil, utils.Wrap(utils.CodeInternal, "withdrawal failed", err)
	}
	return s.GetAccount(ownerID)
}
