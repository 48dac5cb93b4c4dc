package user

import (
	"encoding/json"
	"errors"
	"testing"

	"qserve/config"
	userRepo "qserve/database/repository/user"
	walletRepo "qserve/database/repository/wallet"
	"qserve/models"
	"qserve/utils"

	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"golang.org/x/crypto/bcrypt"
)

type mockUserRepo struct {
	createFn       func(u *models.User) error
	updateFn       func(id string, updateDoc bson.M) error
	getByIDFn      func(id string) (*models.User, error)
	getByEmailFn   func(email string) (*models.User, error)
	getProvidersFn func(occupation string) ([]models.User, error)
	deleteFn       func(id string) error
}

var _ userRepo.UserRepository = (*mockUserRepo)(nil)

func (m *mockUserRepo) Create(u *models.User) error {
	if m.createFn == nil {
		return nil
	}
	return m.createFn(u)
}

func (m *mockUserRepo) Update(id string, updateDoc bson.M) error {
	if m.updateFn == nil {
		return nil
	}
	return m.updateFn(id, updateDoc)
}

func (m *mockUserRepo) GetByID(id string) (*models.User, error) {
	if m.getByIDFn == nil {
		return nil, nil
	}
	return m.getByIDFn(id)
}

func (m *mockUserRepo) GetByEmail(email string) (*models.User, error) {
	if m.getByEmailFn == nil {
		return nil, nil
	}
	return m.getByEmailFn(email)
}

func (m *mockUserRepo) GetProviders(occupation string) ([]models.User, error) {
	if m.getProvidersFn == nil {
		return nil, nil
	}
	return m.getProvidersFn(occupation)
}

func (m *mockUserRepo) Delete(id string) error {
	if m.deleteFn == nil {
		return nil
	}
	return m.deleteFn(id)
}

type mockWalletRepo struct {
	createFn func(acct *models.WalletAccount) error
}

var _ walletRepo.WalletRepository = (*mockWalletRepo)(nil)

func (m *mockWalletRepo) Create(acct *models.WalletAccount) error {
	if m.createFn == nil {
		return nil
	}
	return m.createFn(acct)
}

func (m *mockWalletRepo) GetByOwner(ownerID string) (*models.WalletAccount, error) {
	return nil, nil
}

func (m *mockWalletRepo) Credit(ownerID string, amount float64) error { return nil }

func (m *mockWalletRepo) Debit(ownerID string, amount float64) error { return nil }

func TestMain(m *testing.M) {
	config.AppConfig.JWTSecret = "test-secret"
	m.Run()
}

// --- tests ---

func TestRegister_HashesPasswordAndIssuesToken(t *testing.T) {
	var created *models.User
	var wallet *models.WalletAccount
	svc := &DefaultUserService{
		Repo: &mockUserRepo{
			createFn: func(u *models.User) error {
				created = u
				return nil
			},
		},
		Wallets: &mockWalletRepo{
			createFn: func(acct *models.WalletAccount) error {
				wallet = acct
				return nil
			},
		},
	}

	resp, err := svc.Register(RegisterRequest{
		Name:        "Anika",
		Email:       "anika@example.com",
		PhoneNumber: "01700000000",
		Password:    "supersecret",
	})
	require.NoError(t, err)
	require.NotNil(t, created)
	require.Equal(t, models.RoleCustomer, created.Role)

	// The stored hash must verify against the plaintext and never equal it.
	require.NotEqual(t, "supersecret", created.PasswordHash)
	require.NoError(t, bcrypt.CompareHashAndPassword([]byte(created.PasswordHash), []byte("supersecret")))

	userID, role, err := utils.ExtractClaims(resp.Token)
	require.NoError(t, err)
	require.Equal(t, created.ID, userID)
	require.Equal(t, models.RoleCustomer, role)

	require.NotNil(t, wallet)
	require.Equal(t, created.ID, wallet.OwnerID)
	require.Equal(t, models.DefaultWalletCurrency, wallet.Currency)
	require.Zero(t, wallet.Balance)
}

func TestRegister_ProviderRequiresOccupation(t *testing.T) {
	svc := &DefaultUserService{Repo: &mockUserRepo{}, Wallets: &mockWalletRepo{}}

	_, err := svc.Register(RegisterRequest{
		Name:        "Rafi",
		Email:       "rafi@example.com",
		PhoneNumber: "01800000000",
		Password:    "supersecret",
		Role:        models.RoleProvider,
	})
	require.Error(t, err)
	require.Equal(t, utils.CodeValidation, utils.CodeOf(err))
}

func TestRegister_ProviderRequiresCharge(t *testing.T) {
	svc := &DefaultUserService{Repo: &mockUserRepo{}, Wallets: &mockWalletRepo{}}

	// A JSON body without a charge field decodes to a nil pointer.
	var req RegisterRequest
	require.NoError(t, json.Unmarshal([]byte(`{
		"name": "Rafi",
		"email": "rafi@example.com",
		"phone_number": "01800000000",
		"password": "supersecret",
		"role": "provider",
		"occupation": "plumber"
	}`), &req))

	_, err := svc.Register(req)
	require.Error(t, err)
	require.Equal(t, utils.CodeValidation, utils.CodeOf(err))

	negative := -10.0
	req.Charge = &negative
	_, err = svc.Register(req)
	require.Error(t, err)
	require.Equal(t, utils.CodeValidation, utils.CodeOf(err))

	zero := 0.0
	req.Charge = &zero
	_, err = svc.Register(req)
	require.NoError(t, err)
}

func TestRegister_UnknownRole(t *testing.T) {
	svc := &DefaultUserService{Repo: &mockUserRepo{}, Wallets: &mockWalletRepo{}}

	_, err := svc.Register(RegisterRequest{
		Name:        "Rafi",
		Email:       "rafi@example.com",
		PhoneNumber: "01800000000",
		Password:    "supersecret",
		Role:        "superuser",
	})
	require.Error(t, err)
	require.Equal(t, utils.CodeValidation, utils.CodeOf(err))
}

func TestRegister_DuplicateEmail(t *testing.T) {
	svc := &DefaultUserService{
		Repo: &mockUserRepo{
			getByEmailFn: func(email string) (*models.User, error) {
				return &models.User{ID: "u1", Email: email}, nil
			},
		},
		Wallets: &mockWalletRepo{},
	}

	_, err := svc.Register(RegisterRequest{
		Name:        "Anika",
		Email:       "anika@example.com",
		PhoneNumber: "01700000000",
		Password:    "supersecret",
	})
	require.Error(t, err)
	require.Equal(t, utils.CodeConflict, utils.CodeOf(err))
}

func TestRegister_WalletFailureDoesNotFailRegistration(t *testing.T) {
	svc := &DefaultUserService{
		Repo: &mockUserRepo{},
		Wallets: &mockWalletRepo{
			createFn: func(acct *models.WalletAccount) error {
				return errors.New("store down")
			},
		},
	}

	resp, err := svc.Register(RegisterRequest{
		Name:        "Anika",
		Email:       "anika@example.com",
		PhoneNumber: "01700000000",
		Password:    "supersecret",
	})
	require.NoError(t, err)
	require.NotEmpty(t, resp.Token)
}

func TestAuthenticate_Success(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("supersecret"), bcrypt.DefaultCost)
	require.NoError(t, err)

	svc := &DefaultUserService{
		Repo: &mockUserRepo{
			getByEmailFn: func(email string) (*models.User, error) {
				return &models.User{
					ID:           "u1",
					Name:         "Anika",
					Email:        email,
					Role:         models.RoleCustomer,
					PasswordHash: string(hash),
				}, nil
			},
		},
		Wallets: &mockWalletRepo{},
	}

	resp, err := svc.Authenticate("anika@example.com", "supersecret")
	require.NoError(t, err)
	require.Equal(t, "u1", resp.ID)

	userID, role, err := utils.ExtractClaims(resp.Token)
	require.NoError(t, err)
	require.Equal(t, "u1", userID)
	require.Equal(t, models.RoleCustomer, role)
}

func TestAuthenticate_WrongPassword(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("supersecret"), bcrypt.DefaultCost)
	require.NoError(t, err)

	svc := &DefaultUserService{
		Repo: &mockUserRepo{
			getByEmailFn: func(email string) (*models.User, error) {
				return &models.User{ID: "u1", PasswordHash: string(hash)}, nil
			},
		},
		Wallets: &mockWalletRepo{},
	}

	_, err = svc.Authenticate("anika@example.com", "wrong")
	require.Error(t, err)
	require.Equal(t, utils.CodeInvalidCredentials, utils.CodeOf(err))
}

func TestAuthenticate_UnknownEmail(t *testing.T) {
	svc := &DefaultUserService{Repo: &mockUserRepo{}, Wallets: &mockWalletRepo{}}

	_, err := svc.Authenticate("nobody@example.com", "supersecret")
	require.Error(t, err)
	require.Equal(t, utils.CodeInvalidCredentials, utils.CodeOf(err))
}
