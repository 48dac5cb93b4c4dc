package moneyrequest

import (
	"testing"
	"time"

	bookingRepo "qserve/database/repository/booking"
	moneyRequestRepo "qserve/database/repository/moneyrequest"
	"qserve/models"
	"qserve/services/notification"
	"qserve/utils"

	"github.com/stretchr/testify/require"
)

type mockRequestRepo struct {
	createFn             func(req *models.MoneyRequest) error
	getByIDFn            func(id string) (*models.MoneyRequest, error)
	getActiveByBookingFn func(bookingID string) (*models.MoneyRequest, error)
	setStatusFn          func(id, status string, paidDate *time.Time) error
	listByUserFn         func(userID string) ([]models.MoneyRequest, error)
}

var _ moneyRequestRepo.MoneyRequestRepository = (*mockRequestRepo)(nil)

func (m *mockRequestRepo) Create(req *models.MoneyRequest) error {
	if m.createFn == nil {
		return nil
	}
	return m.createFn(req)
}

func (m *mockRequestRepo) GetByID(id string) (*models.MoneyRequest, error) {
	if m.getByIDFn == nil {
		return nil, nil
	}
	return m.getByIDFn(id)
}

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
	if m.listByUserFn == nil {
		return nil, nil
	}
	return m.listByUserFn(userID)
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

type noopNotifier struct{}

var _ notification.NotificationService = noopNotifier{}

func (noopNotifier) Notify(userID, title, body string, data map[string]string) {}

func completedBooking() *models.Booking {
	return &models.Booking{
		ID:         "b1",
		CustomerID: "cust",
		ProviderID: "prov",
		Title:      "Fix kitchen sink",
		Status:     models.BookingCompleted,
	}
}

func newService(requests *mockRequestRepo, bookings *mockBookingRepo) *DefaultMoneyRequestService {
	return &DefaultMoneyRequestService{Repo: requests, Bookings: bookings, Notification: noopNotifier{}}
}

// --- tests ---

func TestCreate_MovesBookingToRequestState(t *testing.T) {
	var flipped string
	var created *models.MoneyRequest
	svc := newService(
		&mockRequestRepo{createFn: func(req *models.MoneyRequest) error {
			created = req
			return nil
		}},
		&mockBookingRepo{
			getByIDFn: func(id string) (*models.Booking, error) { return completedBooking(), nil },
			updateStatusFn: func(id, status string) error {
				flipped = status
				return nil
			},
		},
	)

	mr, err := svc.Create(CreateRequest{ProviderID: "prov", BookingID: "b1", Amount: 120, Description: "labour"})
	require.NoError(t, err)
	require.NotNil(t, created)
	require.Equal(t, models.MoneyRequestPending, mr.Status)
	require.Equal(t, "cust", mr.CustomerID)
	require.Equal(t, models.BookingRequest, flipped)
}

func TestCreate_RequiresCompletedBooking(t *testing.T) {
	for _, status := range []string{models.BookingPending, models.BookingConfirmed, models.BookingCancelled, models.BookingRequest, models.BookingPaid} {
		svc := newService(
			&mockRequestRepo{},
			&mockBookingRepo{getByIDFn: func(id string) (*models.Booking, error) {
				b := completedBooking()
				b.Status = status
				return b, nil
			}},
		)

		_, err := svc.Create(CreateRequest{ProviderID: "prov", BookingID: "b1", Amount: 120})
		require.Error(t, err, "status %s should be rejected", status)
		require.Equal(t, utils.CodeInvalidState, utils.CodeOf(err))
	}
}

func TestCreate_ProviderOnly(t *testing.T) {
	svc := newService(
		&mockRequestRepo{},
		&mockBookingRepo{getByIDFn: func(id string) (*models.Booking, error) {
			return completedBooking(), nil
		}},
	)

	_, err := svc.Create(CreateRequest{ProviderID: "cust", BookingID: "b1", Amount: 120})
	require.Error(t, err)
	require.Equal(t, utils.CodeForbidden, utils.CodeOf(err))
}

func TestCreate_OneActiveRequestPerBooking(t *testing.T) {
	svc := newService(
		&mockRequestRepo{getActiveByBookingFn: func(bookingID string) (*models.MoneyRequest, error) {
			return &models.MoneyRequest{ID: "mr1", BookingID: bookingID, Status: models.MoneyRequestPending}, nil
		}},
		&mockBookingRepo{getByIDFn: func(id string) (*models.Booking, error) {
			return completedBooking(), nil
		}},
	)

	_, err := svc.Create(CreateRequest{ProviderID: "prov", BookingID: "b1", Amount: 120})
	require.Error(t, err)
	require.Equal(t, utils.CodeConflict, utils.CodeOf(err))
}

func TestMarkAsPaid_CustomerOnly(t *testing.T) {
	svc := newService(
		&mockRequestRepo{getByIDFn: func(id string) (*models.MoneyRequest, error) {
			return &models.MoneyRequest{ID: id, ProviderID: "prov", CustomerID: "cust", Status: models.MoneyRequestPending}, nil
		}},
		&mockBookingRepo{},
	)

	_, err := svc.MarkAsPaid("mr1", "prov")
	require.Error(t, err)
	require.Equal(t, utils.CodeForbidden, utils.CodeOf(err))
}

func TestMarkAsPaid_SetsPaidDateAndFlipsBooking(t *testing.T) {
	var flipped string
	svc := newService(
		&mockRequestRepo{getByIDFn: func(id string) (*models.MoneyRequest, error) {
			return &models.MoneyRequest{ID: id, BookingID: "b1", ProviderID: "prov", CustomerID: "cust", Status: models.MoneyRequestPending}, nil
		}},
		&mockBookingRepo{updateStatusFn: func(id, status string) error {
			flipped = status
			return nil
		}},
	)

	mr, err := svc.MarkAsPaid("mr1", "cust")
	require.NoError(t, err)
	require.Equal(t, models.MoneyRequestPaid, mr.Status)
	require.NotNil(t, mr.PaidDate)
	require.Equal(t, models.BookingPaid, flipped)
}

func TestMarkAsPaid_AlreadyPaid(t *testing.T) {
	svc := newService(
		&mockRequestRepo{getByIDFn: func(id string) (*models.MoneyRequest, error) {
			return &models.MoneyRequest{ID: id, CustomerID: "cust", Status: models.MoneyRequestPaid}, nil
		}},
		&mockBookingRepo{},
	)

	_, err := svc.MarkAsPaid("mr1", "cust")
	require.Error(t, err)
	require.Equal(t, utils.CodeConflict, utils.CodeOf(err))
}

func TestMarkAsPaid_CancelledRequest(t *testing.T) {
	svc := newService(
		&mockRequestRepo{getByIDFn: func(id string) (*models.MoneyRequest, error) {
			return &models.MoneyRequest{ID: id, CustomerID: "cust", Status: models.MoneyRequestCancelled}, nil
		}},
		&mockBookingRepo{},
	)

	_, err := svc.MarkAsPaid("mr1", "cust")
	require.Error(t, err)
	require.Equal(t, utils.CodeInvalidState, utils.CodeOf(err))
}

func TestCancel_RevertsBookingToCompleted(t *testing.T) {
	var flipped string
	svc := newService(
		&mockRequestRepo{getByIDFn: func(id string) (*models.MoneyRequest, error) {
			return &models.MoneyRequest{ID: id, BookingID: "b1", ProviderID: "prov", CustomerID: "cust", Status: models.MoneyRequestPending}, nil
		}},
		&mockBookingRepo{updateStatusFn: func(id, status string) error {
			flipped = status
			return nil
		}},
	)

	mr, err := svc.Cancel("mr1", "prov")
	require.NoError(t, err)
	require.Equal(t, models.MoneyRequestCancelled, mr.Status)
	require.Equal(t, models.BookingCompleted, flipped)
}

func TestCancel_PaidRequestCannotBeCancelled(t *testing.T) {
	svc := newService(
		&mockRequestRepo{getByIDFn: func(id string) (*models.MoneyRequest, error) {
			return &models.MoneyRequest{ID: id, ProviderID: "prov", Status: models.MoneyRequestPaid}, nil
		}},
		&mockBookingRepo{},
	)

	_, err := svc.Cancel("mr1", "prov")
	require.Error(t, err)
	require.Equal(t, utils.CodeConflict, utils.CodeOf(err))
}

func TestGetByID_PartyOnly(t *testing.T) {
	svc := newService(
		&mockRequestRepo{getByIDFn: func(id string) (*models.MoneyRequest, error) {
			return &models.MoneyRequest{ID: id, ProviderID: "prov", CustomerID: "cust"}, nil
		}},
		&mockBookingRepo{},
	)

	_, err := svc.GetByID("mr1", "stranger")
	require.Error(t, err)
	require.Equal(t, utils.CodeForbidden, utils.CodeOf(err))
}
