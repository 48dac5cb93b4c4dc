package qpay

import (
	"errors"
	"regexp"
	"time"

	qpayRepo "qserve/database/repository/qpay"
	"qserve/models"
	"qserve/utils"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"golang.org/x/crypto/bcrypt"
)

var pinPattern = regexp.MustCompile(`^\d{4}$`)

// QPayService manages the PIN-gated payment account.
type QPayService interface {
	RegisterAccount(ownerID, pin string) (*models.QPayAccount, error)
	GetAccount(ownerID string) (*models.QPayAccount, error)
	VerifyPin(ownerID, pin string) (bool, error)
	Deposit(ownerID string, amount float64) (*models.QPayAccount, error)
	Withdraw(ownerID string, amount float64) (*models.QPayAccount, error)
	SetDiscount(ownerID string, percent float64) error
	AddCashback(ownerID string, amount float64) error
}

// DefaultQPayService is the production implementation.
type DefaultQPayService struct {
	Repo qpayRepo.QPayRepository
}

// RegisterAccount opens a QPay account gated by a 4-digit PIN. One per user.
func (s *DefaultQPayService) RegisterAccount(ownerID, pin string) (*models.QPayAccount, error) {
	if !pinPattern.MatchString(pin) {
		return nil, utils.E(utils.CodeInvalidPin, "pin must be exactly 4 digits")
	}

	existing, err := s.Repo.GetByOwner(ownerID)
	if err != nil {
		return nil, utils.Wrap(utils.CodeInternal, "failed to check for existing account", err)
	}
	if existing != nil {
		return nil, utils.E(utils.CodeConflict, "a qpay account already exists for this user")
	}

	pinHash, err := bcrypt.GenerateFromPassword([]byte(pin), bcrypt.DefaultCost)
	if err != nil {
		return nil, utils.Wrap(utils.CodeInternal, "failed to open qpay account", err)
	}

	acct := models.QPayAccount{
		ID:          uuid.New().String(),
		OwnerID:     ownerID,
		PinHash:     string(pinHash),
		Balance:     0,
		LastLoginAt: time.Now(),
	}
	if err := s.Repo.Create(&acct); err != nil {
		return nil, utils.Wrap(utils.CodeInternal, "failed to open qpay account", err)
	}
	return &acct, nil
}

// GetAccount retrieves the owner's QPay account and touches lastLoginAt.
func (s *DefaultQPayService) GetAccount(ownerID string) (*models.QPayAccount, error) {
	acct, err := s.Repo.GetByOwner(ownerID)
	if err != nil {
		return nil, utils.Wrap(utils.CodeInternal, "failed to fetch qpay account", err)
	}
	if acct == nil {
		return nil, utils.E(utils.CodeNotFound, "qpay account not found")
	}
	_ = s.Repo.Update(ownerID, bson.M{"last_login_at": time.Now()})
	return acct, nil
}

// VerifyPin reports whether the PIN matches the owner's account.
func (s *DefaultQPayService) VerifyPin(ownerID, pin string) (bool, error) {
	acct, err := s.Repo.GetByOwner(ownerID)
	if err != nil {
		return false, utils.Wrap(utils.CodeInternal, "failed to fetch qpay account", err)
	}
	if acct == nil {
		return false, utils.E(utils.CodeNotFound, "qpay account not found")
	}
	return bcrypt.CompareHashAndPassword([]byte(acct.PinHash), []byte(pin)) == nil, nil
}

// Deposit adds amount to the owner's balance.
func (s *DefaultQPayService) Deposit(ownerID string, amount float64) (*models.QPayAccount, error) {
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

// Withdraw subtracts amount from the owner's balance, rejecting any debit
// that would take it below zero.
func (s *DefaultQPayService) Withdraw(ownerID string, amount float64) (*models.QPayAccount, error) {
	if amount <= 0 {
		return nil, utils.E(utils.CodeValidation, "amount must be positive")
	}
	if _, err := s.GetAccount(ownerID); err != nil {
		return nil, err
	}
	if err := s.Repo.Debit(ownerID, amount); err != nil {
		if errors.Is(err, qpayRepo.ErrInsufficientFunds) {
			return nil, utils.E(utils.CodeInsufficientBalance, "insufficient qpay balance")
		}
		return nil, utils.Wrap(utils.CodeInternal, "withdrawal failed", err)
	}
	return s.GetAccount(ownerID)
}

// SetDiscount updates the account's discount percentage.
func (s *DefaultQPayService) SetDiscount(ownerID string, percent float64) error {
	if percent < 0 || percent > 100 {
		return utils.E(utils.CodeValidation, "discount must be between 0 and 100")
	}
	if _, err := s.GetAccount(ownerID); err != nil {
		return err
	}
	if err := s.Repo.Update(ownerID, bson.M{"discount_percent": percent}); err != nil {
		return utils.Wrap(utils.CodeInternal, "failed to update discount", err)
	}
	return nil
}

// AddCashback accumulates cashback on the account.
func (s *DefaultQPayService) AddCashback(ownerID string, amount float64) error {
	if amount < 0 {
		return utils.E(utils.CodeValidation, "cashback must not be negative")
	}
	acct, err := s.GetAccount(ownerID)
	if err != nil {
		return err
	}
	if err := s.Repo.Update(ownerID, bson.M{"cashback": acct.Cashback + amount}); err != nil {
		return utils.Wrap(utils.CodeInternal, "failed to update cashback", err)
	}
	return nil
}
