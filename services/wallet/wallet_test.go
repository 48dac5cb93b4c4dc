package wallet

import (
	"testing"

	walletRepo "qserve/database/repository/wallet"
	"qserve/models"
	"qserve/utils"

	"github.com/stretchr/testify/require"
)

type mockWalletRepo struct {
	getByOwnerFn func(ownerID string) (*models.WalletAccount, error)
	creditFn     func(ownerID string, amount float64) error
	debitFn      func(ownerID string, amount float64) error
}

var _ walletRepo.WalletRepository = (*mockWalletRepo)(nil)

func (m *mockWalletRepo) Create(acct *models.WalletAccount) error { return nil }

func (m *mockWalletRepo) GetByOwner(ownerID string) (*models.WalletAccount, error) {
	if m.getByOwnerFn == nil {
		return nil, nil
	}
	return m.getByOwnerFn(ownerID)
}

func (m *mockWalletRepo) Credit(ownerID string, amount float64) error {
	if m.creditFn == nil {
		return nil
	}
	return m.creditFn(ownerID, amount)
}

func (m *mockWalletRepo) Debit(ownerID string, amount float64) error {
	if m.debitFn == nil {
		return nil
	}
	return m.debitFn(ownerID, amount)
}

// --- tests ---

func TestGetAccount_NotFound(t *testing.T) {
	svc := &DefaultWalletService{Repo: &mockWalletRepo{}}

	_, err := svc.GetAccount("u1")
	require.Error(t, err)
	require.Equal(t, utils.CodeNotFound, utils.CodeOf(err))
}

func TestDeposit_Credits(t *testing.T) {
	balance := 100.0
	svc := &DefaultWalletService{Repo: &mockWalletRepo{
		getByOwnerFn: func(ownerID string) (*models.WalletAccount, error) {
			return &models.WalletAccount{OwnerID: ownerID, Balance: balance}, nil
		},
		creditFn: func(ownerID string, amount float64) error {
			balance += amount
			return nil
		},
	}}

	acct, err := svc.Deposit("u1", 50)
	require.NoError(t, err)
	require.Equal(t, 150.0, acct.Balance)
}

func TestWithdraw_InsufficientBalanceRejected(t *testing.T) {
	svc := &DefaultWalletService{Repo: &mockWalletRepo{
		getByOwnerFn: func(ownerID string) (*models.WalletAccount, error) {
			return &models.WalletAccount{OwnerID: ownerID, Balance: 20}, nil
		},
		debitFn: func(ownerID string, amount float64) error {
			return walletRepo.ErrInsufficientFunds
		},
	}}

	_, err := svc.Withdraw("u1", 100)
	require.Error(t, err)
	require.Equal(t, utils.CodeInsufficientBalance, utils.CodeOf(err))
}

func TestWithdraw_RejectsNonPositiveAmounts(t *testing.T) {
	svc := &DefaultWalletService{Repo: &mockWalletRepo{}}

	for _, amount := range []float64{0, -10} {
		_, err := svc.Withdraw("u1", amount)
		require.Error(t, err)
		require.Equal(t, utils.CodeValidation, utils.CodeOf(err))
	}
}
