package testutil

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/sails-app/sails-api/libs/go/db"
	"github.com/sails-app/sails-api/libs/go/helpers"
	"github.com/sails-app/sails-api/libs/go/mocks"
	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

// MockDatabase provides utilities for database mocking in unit tests
type MockDatabase struct {
	ctrl    *gomock.Controller
	Querier *mocks.MockQuerier
	t       *testing.T
}

// NewMockDatabase creates a new mock database for unit testing
func NewMockDatabase(t *testing.T) *MockDatabase {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	return &MockDatabase{
		ctrl:    ctrl,
		Querier: mocks.NewMockQuerier(ctrl),
		t:       t,
	}
}

// ExpectOrdersForExposure expects the single bulk order read for userID
func (m *MockDatabase) ExpectOrdersForExposure(userID uuid.UUID, rows []db.ListOrdersForExposureRow, err error) *gomock.Call {
	return m.Querier.EXPECT().
		ListOrdersForExposure(gomock.Any(), gomock.Cond(func(arg db.ListOrdersForExposureParams) bool {
			return arg.UserID == userID && arg.OrderDateFrom.Valid
		})).
		Return(rows, err).
		Times(1)
}

// ExpectRegistrations expects the registered states for userID to be read
func (m *MockDatabase) ExpectRegistrations(userID uuid.UUID, stateCodes ...string) *gomock.Call {
	registrations := make([]db.NexusRegistration, 0, len(stateCodes))
	for _, code := range stateCodes {
		registrations = append(registrations, db.NexusRegistration{UserID: userID, StateCode: code})
	}
	return m.Querier.EXPECT().
		ListNexusRegistrations(gomock.Any(), userID).
		Return(registrations, nil).
		Times(1)
}

// ExpectExposureAlerts expects the previously alerted states for userID to be read
func (m *MockDatabase) ExpectExposureAlerts(userID uuid.UUID, alerts []db.ExposureAlert) *gomock.Call {
	return m.Querier.EXPECT().
		ListExposureAlerts(gomock.Any(), userID).
		Return(alerts, nil).
		Times(1)
}

// TxRunner returns a runner that hands the mock Querier to fn without a transaction
func (m *MockDatabase) TxRunner() *InlineTxRunner {
	return &InlineTxRunner{Querier: m.Querier}
}

// InlineTxRunner satisfies helpers.TxRunner for unit tests
type InlineTxRunner struct {
	Querier db.Querier
	// BeginErr, when set, is returned before fn runs
	BeginErr error
}

func (r *InlineTxRunner) RunInTransaction(ctx context.Context, fn func(q db.Querier) error) error {
	if r.BeginErr != nil {
		return r.BeginErr
	}
	return fn(r.Querier)
}

// CreateTestOrderRow creates an order row shipped to a US state
func CreateTestOrderRow(stateCode, amount string, orderDate time.Time) db.ListOrdersForExposureRow {
	return db.ListOrdersForExposureRow{
		ShippingState:   helpers.StringToNullableText(stateCode),
		ShippingCountry: helpers.StringToNullableText("US"),
		OrderDate:       helpers.TimeToNullableTimestamptz(orderDate),
		TotalAmount:     helpers.DecimalToNumeric(decimal.RequireFromString(amount)),
		Status:          "paid",
	}
}

// CreateTestUser creates a user with realistic data
func CreateTestUser(email string) db.User {
	return db.User{
		ID:        uuid.New(),
		Email:     email,
		Name:      helpers.StringToNullableText("Test Seller"),
		CreatedAt: helpers.TimeToNullableTimestamptz(time.Now()),
		UpdatedAt: helpers.TimeToNullableTimestamptz(time.Now()),
	}
}
