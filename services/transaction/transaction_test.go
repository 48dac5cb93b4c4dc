package transaction

import (
	"context"
	"regexp"
	"testing"
	"time"

	bookingRepo "qserve/database/repository/booking"
	moneyRequestRepo "qserve/database/repository/moneyrequest"
	qpayRepo "qserve/database/repository/qpay"
	transactionRepo "qserve/database/repository/transaction"
	userRepo "qserve/database/repository/user"
	"qserve/models"
	"qserve/services/notification"
	"qserve/utils"

	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"golang.org/x/crypto/bcrypt"
)

type mockTransactionRepo struct {
	executeTransferFn func(ctx context.Context, tx *models.Transaction) error
	getByIDFn         func(id string) (*models.Transaction, error)
	historyFn         func(userID string, filter models.TransactionFilter, offset, limit int64) ([]models.Transaction, error)
}

var _ transactionRepo.TransactionRepository = (*mockTransactionRepo)(nil)

func (m *mockTransactionRepo) ExecuteTransfer(ctx context.Context, tx *models.Transaction) error {
	if m.executeTransferFn == nil {
		return nil
	}
	return m.executeTransferFn(ctx, tx)
}

func (m *mockTransactionRepo) GetByID(id string) (*models.Transaction, error) {
	if m.getByIDFn == nil {
		return nil, nil
	}
	return m.getByIDFn(id)
}

func (m *mockTransactionRepo) History(userID string, filter models.TransactionFilter, offset, limit int64) ([]models.Transaction, error) {
	if m.historyFn == nil {
		return nil, nil
	}
	return m.historyFn(userID, filter, offset, limit)
}

type mockQPayRepo struct {
	accounts map[string]*models.QPayAccount
}

var _ qpayRepo.QPayRepository = (*mockQPayRepo)(nil)

func (m *mockQPayRepo) Create(acct *models.QPayAccount) error { return nil }

func (m *mockQPayRepo) GetByOwner(ownerID string) (*models.QPayAccount, error) {
	return m.accounts[ownerID], nil
}

func (m *mockQPayRepo) Credit(ownerID string, amount float64) error { return nil }
func (m *mockQPayRepo) Debit(ownerID string, amount float64) error  { return nil }
func (m *mockQPayRepo) Update(ownerID string, updateDoc bson.M) error {
	return nil
}

type mockBookingRepo struct {
	getByIDFn      func(id string) (*models.Booking, error)
	updateStatusFn func(id, status string) error
}

var _ bookingRepo.BookingRepository = (*mockBookingRepo)(nil)

func (m *mockBookingRepo) Create(b *models.Booking) error { return nil }

func (m *mockBookingRepo) GetByID(id string) (*models.Booking, error) {
	if m.getByIDFn == nil {
		return nil, nil
	}
	return m.getByIDFn(id)
}

func (m *mockBookingRepo) UpdateStatus(id, status string) error {
	if m.updateStatusFn == nil {
		return nil
	}
	return m.updateStatusFn(id, status)
}

func (m *mockBookingRepo) ListByCustomer(customerID string) ([]models.Booking, error) {
	return nil, nil
}

func (m *mockBookingRepo) ListByProvider(providerID string) ([]models.Booking, error) {
	return nil, nil
}

type mockRequestRepo struct {
	getActiveByBookingFn func(bookingID string) (*models.MoneyRequest, error)
	setStatusFn          func(id, status string, paidDate *time.Time) error
}

var _ moneyRequestRepo.MoneyRequestRepository = (*mockRequestRepo)(nil)

func (m *mockRequestRepo) Create(req *models.MoneyRequest) error { return nil }

func (m *mockRequestRepo) GetByID(id string) (*models.MoneyRequest, error) { return nil, nil }

func (m *mockRequestRepo) GetActiveByBooking(bookingID string) (*models.MoneyRequest, error) {
	if m.getActiveByBookingFn == nil {
		return nil, nil
	}
	return m.getActiveByBookingFn(bookingID)
}

func (m *mockRequestRepo) SetStatus(id, status string, paidDate *time.Time) error {
	if m.setStatusFn == nil {
		return nil
	}
	return m.setStatusFn(id, status, paidDate)
}

func (m *mockRequestRepo) ListByUser(userID string) ([]models.MoneyRequest, error) {
	return nil, nil
}

type mockUserRepo struct {
	getByIDFn func(id string) (*models.User, error)
}

var _ userRepo.UserRepository = (*mockUserRepo)(nil)

func (m *mockUserRepo) Create(u *models.User) error                   { return nil }
func (m *mockUserRepo) Update(id string, updateDoc bson.M) error      { return nil }
func (m *mockUserRepo) GetByEmail(email string) (*models.User, error) { return nil, nil }
func (m *mockUserRepo) GetProviders(occupation string) ([]models.User, error) {
	return nil, nil
}
func (m *mockUserRepo) Delete(id string) error { return nil }

func (m *mockUserRepo) GetByID(id string) (*models.User, error) {
	if m.getByIDFn == nil {
		return nil, nil
	}
	return m.getByIDFn(id)
}

type noopNotifier struct{}

var _ notification.NotificationService = noopNotifier{}

func (noopNotifier) Notify(userID, title, body string, data map[string]string) {}

func mustPinHash(t *testing.T, pin string) string {
	t.Helper()

	h, err := bcrypt.GenerateFromPassword([]byte(pin), bcrypt.DefaultCost)
	require.NoError(t, err)
	return string(h)
}

func testAccounts(t *testing.T) *mockQPayRepo {
	t.Helper()

	return &mockQPayRepo{accounts: map[string]*models.QPayAccount{
		"sender":   {ID: "a1", OwnerID: "sender", PinHash: mustPinHash(t, "1234"), Balance: 500},
		"receiver": {ID: "a2", OwnerID: "receiver", Balance: 0},
	}}
}

func newService(txRepo *mockTransactionRepo, qp *mockQPayRepo) *DefaultTransactionService {
	return &DefaultTransactionService{
		Repo:         txRepo,
		QPay:         qp,
		Bookings:     &mockBookingRepo{},
		Requests:     &mockRequestRepo{},
		Users:        &mockUserRepo{},
		Notification: noopNotifier{},
	}
}

var txIDPattern = regexp.MustCompile(`^TXN\d{8}[0-9A-F]{8}$`)

// --- tests ---

func TestSendMoney_Success(t *testing.T) {
	var executed *models.Transaction
	svc := newService(
		&mockTransactionRepo{executeTransferFn: func(ctx context.Context, tx *models.Transaction) error {
			executed = tx
			return nil
		}},
		testAccounts(t),
	)

	tx, err := svc.SendMoney(context.Background(), SendMoneyRequest{
		SenderID:   "sender",
		ReceiverID: "receiver",
		Amount:     100,
		Pin:        "1234",
	})
	require.NoError(t, err)
	require.NotNil(t, executed)
	require.Equal(t, models.DefaultTransactionCurrency, tx.Currency)
	require.Regexp(t, txIDPattern, tx.TransactionID)
}

func TestSendMoney_IncorrectPin(t *testing.T) {
	svc := newService(&mockTransactionRepo{}, testAccounts(t))

	_, err := svc.SendMoney(context.Background(), SendMoneyRequest{
		SenderID:   "sender",
		ReceiverID: "receiver",
		Amount:     100,
		Pin:        "4321",
	})
	require.Error(t, err)
	require.Equal(t, utils.CodeInvalidPin, utils.CodeOf(err))
}

func TestSendMoney_InsufficientBalance(t *testing.T) {
	svc := newService(&mockTransactionRepo{}, testAccounts(t))

	_, err := svc.SendMoney(context.Background(), SendMoneyRequest{
		SenderID:   "sender",
		ReceiverID: "receiver",
		Amount:     1000,
		Pin:        "1234",
	})
	require.Error(t, err)
	require.Equal(t, utils.CodeInsufficientBalance, utils.CodeOf(err))
}

func TestSendMoney_AtomicCheckStillRejectsOverdraft(t *testing.T) {
	// The pre-check passes but the store-side balance check fails, as it
	// would under a concurrent debit.
	svc := newService(
		&mockTransactionRepo{executeTransferFn: func(ctx context.Context, tx *models.Transaction) error {
			return transactionRepo.ErrInsufficientFunds
		}},
		testAccounts(t),
	)

	_, err := svc.SendMoney(context.Background(), SendMoneyRequest{
		SenderID:   "sender",
		ReceiverID: "receiver",
		Amount:     100,
		Pin:        "1234",
	})
	require.Error(t, err)
	require.Equal(t, utils.CodeInsufficientBalance, utils.CodeOf(err))
}

func TestSendMoney_RegeneratesCollidingTransactionID(t *testing.T) {
	var seen []string
	svc := newService(
		&mockTransactionRepo{executeTransferFn: func(ctx context.Context, tx *models.Transaction) error {
			seen = append(seen, tx.TransactionID)
			if len(seen) == 1 {
				return transactionRepo.ErrDuplicateTransactionID
			}
			return nil
		}},
		testAccounts(t),
	)

	tx, err := svc.SendMoney(context.Background(), SendMoneyRequest{
		SenderID:   "sender",
		ReceiverID: "receiver",
		Amount:     100,
		Pin:        "1234",
	})
	require.NoError(t, err)
	require.Len(t, seen, 2)
	require.NotEqual(t, seen[0], seen[1])
	require.Equal(t, seen[1], tx.TransactionID)
}

func TestSendMoney_SelfTransferRejected(t *testing.T) {
	svc := newService(&mockTransactionRepo{}, testAccounts(t))

	_, err := svc.SendMoney(context.Background(), SendMoneyRequest{
		SenderID:   "sender",
		ReceiverID: "sender",
		Amount:     100,
		Pin:        "1234",
	})
	require.Error(t, err)
	require.Equal(t, utils.CodeValidation, utils.CodeOf(err))
}

func TestSendMoney_ReceiverWithoutAccount(t *testing.T) {
	qp := testAccounts(t)
	delete(qp.accounts, "receiver")
	svc := newService(&mockTransactionRepo{}, qp)

	_, err := svc.SendMoney(context.Background(), SendMoneyRequest{
		SenderID:   "sender",
		ReceiverID: "receiver",
		Amount:     100,
		Pin:        "1234",
	})
	require.Error(t, err)
	require.Equal(t, utils.CodeNotFound, utils.CodeOf(err))
}

func TestSendMoney_BookingSnapshotAndSettlement(t *testing.T) {
	var bookingStatus string
	var requestStatus string
	svc := newService(&mockTransactionRepo{}, testAccounts(t))
	svc.Bookings = &mockBookingRepo{
		getByIDFn: func(id string) (*models.Booking, error) {
			return &models.Booking{
				ID:         id,
				CustomerID: "sender",
				ProviderID: "receiver",
				Title:      "Fix kitchen sink",
				Status:     models.BookingRequest,
				Date:       time.Now(),
			}, nil
		},
		updateStatusFn: func(id, status string) error {
			bookingStatus = status
			return nil
		},
	}
	svc.Requests = &mockRequestRepo{
		getActiveByBookingFn: func(bookingID string) (*models.MoneyRequest, error) {
			return &models.MoneyRequest{ID: "mr1", BookingID: bookingID, Status: models.MoneyRequestPending}, nil
		},
		setStatusFn: func(id, status string, paidDate *time.Time) error {
			requestStatus = status
			return nil
		},
	}

	tx, err := svc.SendMoney(context.Background(), SendMoneyRequest{
		SenderID:   "sender",
		ReceiverID: "receiver",
		Amount:     100,
		Pin:        "1234",
		BookingID:  "b1",
	})
	require.NoError(t, err)
	require.NotNil(t, tx.ServiceDetails)
	require.Equal(t, "Fix kitchen sink", tx.ServiceDetails.Title)
	require.Equal(t, "mr1", tx.RequestID)
	require.Equal(t, models.BookingPaid, bookingStatus)
	require.Equal(t, models.MoneyRequestPaid, requestStatus)
}

func TestSendMoney_BookingMustBelongToParties(t *testing.T) {
	svc := newService(&mockTransactionRepo{}, testAccounts(t))
	svc.Bookings = &mockBookingRepo{
		getByIDFn: func(id string) (*models.Booking, error) {
			return &models.Booking{ID: id, CustomerID: "someone-else", ProviderID: "receiver"}, nil
		},
	}

	_, err := svc.SendMoney(context.Background(), SendMoneyRequest{
		SenderID:   "sender",
		ReceiverID: "receiver",
		Amount:     100,
		Pin:        "1234",
		BookingID:  "b1",
	})
	require.Error(t, err)
	require.Equal(t, utils.CodeForbidden, utils.CodeOf(err))
}

func TestGetHistory_AnnotatesDirection(t *testing.T) {
	svc := newService(
		&mockTransactionRepo{historyFn: func(userID string, filter models.TransactionFilter, offset, limit int64) ([]models.Transaction, error) {
			return []models.Transaction{
				{ID: "t1", SenderID: "me", ReceiverID: "other"},
				{ID: "t2", SenderID: "other", ReceiverID: "me"},
			}, nil
		}},
		testAccounts(t),
	)

	views, err := svc.GetHistory("me", models.TransactionFilter{}, 0, 0)
	require.NoError(t, err)
	require.Len(t, views, 2)
	require.Equal(t, "sent", views[0].Direction)
	require.Equal(t, "received", views[1].Direction)
}

func TestGetHistory_ClampsPageSize(t *testing.T) {
	var gotLimit int64
	svc := newService(
		&mockTransactionRepo{historyFn: func(userID string, filter models.TransactionFilter, offset, limit int64) ([]models.Transaction, error) {
			gotLimit = limit
			return nil, nil
		}},
		testAccounts(t),
	)

	_, err := svc.GetHistory("me", models.TransactionFilter{}, 0, 0)
	require.NoError(t, err)
	require.Equal(t, int64(defaultPageSize), gotLimit)

	_, err = svc.GetHistory("me", models.TransactionFilter{}, 0, 9999)
	require.NoError(t, err)
	require.Equal(t, int64(maxPageSize), gotLimit)
}

func TestGetHistory_RejectsUnknownStatus(t *testing.T) {
	svc := newService(&mockTransactionRepo{}, testAccounts(t))

	for _, status := range []string{models.TransactionPending, models.TransactionCompleted, models.TransactionFailed, models.TransactionCancelled} {
		_, err := svc.GetHistory("me", models.TransactionFilter{Status: status}, 0, 0)
		require.NoError(t, err)
	}

	_, err := svc.GetHistory("me", models.TransactionFilter{Status: "refunded"}, 0, 0)
	require.Error(t, err)
	require.Equal(t, utils.CodeValidation, utils.CodeOf(err))
}

func TestGetByID_PartyOnly(t *testing.T) {
	svc := newService(
		&mockTransactionRepo{getByIDFn: func(id string) (*models.Transaction, error) {
			return &models.Transaction{ID: id, SenderID: "sender", ReceiverID: "receiver"}, nil
		}},
		testAccounts(t),
	)

	_, err := svc.GetByID("t1", "sender")
	require.NoError(t, err)

	_, err = svc.GetByID("t1", "stranger")
	require.Error(t, err)
	require.Equal(t, utils.CodeForbidden, utils.CodeOf(err))
}

func TestReceipt_RendersPDF(t *testing.T) {
	now := time.Now()
	svc := newService(
		&mockTransactionRepo{getByIDFn: func(id string) (*models.Transaction, error) {
			return &models.Transaction{
				ID:            id,
				TransactionID: "TXN20260901ABCDEF01",
				SenderID:      "sender",
				ReceiverID:    "receiver",
				Amount:        100,
				Currency:      models.DefaultTransactionCurrency,
				Status:        models.TransactionCompleted,
				CreatedAt:     now,
				CompletedAt:   &now,
			}, nil
		}},
		testAccounts(t),
	)

	pdf, err := svc.Receipt("t1", "sender")
	require.NoError(t, err)
	require.True(t, len(pdf) > 4)
	require.Equal(t, "%PDF", string(pdf[:4]))
}
