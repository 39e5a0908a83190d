package handlers_test

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"
	pkgerrors "github.com/pkg/errors"
	"github.com/sails-app/sails-api/apps/api/handlers"
	"github.com/sails-app/sails-api/libs/go/mocks"
	"github.com/sails-app/sails-api/libs/go/services"
	"github.com/sails-app/sails-api/libs/go/types/api/responses"
	"github.com/sails-app/sails-api/libs/go/types/business"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func sampleReport() *business.ExposureReport {
	salesThreshold := decimal.NewFromInt(500000)
	txThreshold := int64(200)
	return &business.ExposureReport{
		Exposures: []business.StateExposure{
			{
				StateCode:           "CA",
				StateName:           "California",
				HasSalesTax:         true,
				MeasurementPeriod:   business.PeriodCalendarYearOrRolling,
				SalesThreshold:      &salesThreshold,
				CurrentSales:        decimal.NewFromInt(450000),
				CurrentTransactions: 12,
				SalesPercentage:     90,
				HighestPercentage:   90,
				Status:              business.StatusWarning,
				Totals:              business.ExposureTotals{Rolling12MonthSales: decimal.NewFromInt(450000), Rolling12MonthTransactions: 12},
			},
			{
				StateCode:            "TX",
				StateName:            "Texas",
				HasSalesTax:          true,
				MeasurementPeriod:    business.PeriodRolling12Months,
				SalesThreshold:       &salesThreshold,
				TransactionThreshold: &txThreshold,
				Status:               business.StatusSafe,
			},
			{
				StateCode:         "OR",
				StateName:         "Oregon",
				MeasurementPeriod: business.PeriodRolling12Months,
				Status:            business.StatusSafe,
				Notes:             "No statewide sales tax",
			},
		},
		Summary: business.ExposureSummary{
			TotalStates:     3,
			StatesWithSales: 1,
			WarningCount:    1,
			SafeCount:       1,
			NoSalesTaxCount: 1,
		},
		GeneratedAt: time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC),
	}
}

func TestNexusHandler_GetExposure(t *testing.T) {
	userID := uuid.New()

	tests := []struct {
		name       string
		caller     uuid.UUID
		setupMock  func(m *mocks.MockNexusService)
		wantStatus int
		check      func(t *testing.T, body []byte)
	}{
		{
			name:   "report with registered flags",
			caller: userID,
			setupMock: func(m *mocks.MockNexusService) {
				m.EXPECT().GetExposureReport(gomock.Any(), userID).Return(sampleReport(), nil)
				m.EXPECT().ListRegistrations(gomock.Any(), userID).Return([]string{"TX"}, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:       "unauthenticated",
			caller:     uuid.Nil,
			setupMock:  func(m *mocks.MockNexusService) {},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:   "order read failure",
			caller: userID,
			setupMock: func(m *mocks.MockNexusService) {
				m.EXPECT().GetExposureReport(gomock.Any(), userID).
					Return(nil, pkgerrors.Wrap(errors.New("pq: relation orders does not exist"), "failed to load orders for exposure report"))
			},
			wantStatus: http.StatusInternalServerError,
		},
		{
			name:   "registration read failure",
			caller: userID,
			setupMock: func(m *mocks.MockNexusService) {
				m.EXPECT().GetExposureReport(gomock.Any(), userID).Return(sampleReport(), nil)
				m.EXPECT().ListRegistrations(gomock.Any(), userID).Return(nil, errors.New("timeout"))
			},
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := mocks.NewMockNexusServiceForTest(t)
			tt.setupMock(svc)

			router := newTestRouter(tt.caller)
			router.GET("/nexus/exposure", handlers.NewNexusHandler(svc).GetExposure)

			w := perform(router, http.MethodGet, "/nexus/exposure", nil)
			require.Equal(t, tt.wantStatus, w.Code)

			if tt.wantStatus != http.StatusOK {
				resp := decode[responses.ErrorResponse](t, w)
				assert.Equal(t, testCorrelationID, resp.CorrelationID)
				assert.NotContains(t, resp.Error, "pq:")
				return
			}

			resp := decode[responses.NexusExposureResponse](t, w)
			require.Len(t, resp.Exposures, 3)
			assert.Equal(t, []string{"CA", "TX", "OR"}, []string{
				resp.Exposures[0].StateCode, resp.Exposures[1].StateCode, resp.Exposures[2].StateCode,
			})
			assert.False(t, resp.Exposures[0].Registered)
			assert.True(t, resp.Exposures[1].Registered)
			assert.Equal(t, "warning", resp.Exposures[0].Status)
			assert.Equal(t, 90.0, resp.Exposures[0].HighestPercentage)
			assert.True(t, decimal.NewFromInt(450000).Equal(resp.Exposures[0].Rolling12MonthSales))
			assert.Nil(t, resp.Exposures[2].SalesThreshold)
			assert.Equal(t, "No statewide sales tax", resp.Exposures[2].Notes)
			assert.Equal(t, 3, resp.Summary.TotalStates)
			assert.Equal(t, 1, resp.Summary.NoSalesTaxCount)
			assert.True(t, resp.GeneratedAt.Equal(time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)))
		})
	}
}

func TestNexusHandler_ExposureJSONShape(t *testing.T) {
	userID := uuid.New()
	svc := mocks.NewMockNexusServiceForTest(t)
	svc.EXPECT().GetExposureReport(gomock.Any(), userID).Return(sampleReport(), nil)
	svc.EXPECT().ListRegistrations(gomock.Any(), userID).Return(nil, nil)

	router := newTestRouter(userID)
	router.GET("/nexus/exposure", handlers.NewNexusHandler(svc).GetExposure)

	w := perform(router, http.MethodGet, "/nexus/exposure", nil)
	require.Equal(t, http.StatusOK, w.Code)

	raw := decode[map[string]any](t, w)
	assert.Contains(t, raw, "exposures")
	assert.Contains(t, raw, "summary")
	assert.Contains(t, raw, "generated_at")

	first := raw["exposures"].([]any)[0].(map[string]any)
	for _, key := range []string{
		"state_code", "state_name", "has_sales_tax", "measurement_period",
		"sales_threshold", "transaction_threshold", "current_sales",
		"current_transactions", "sales_percentage", "transaction_percentage",
		"highest_percentage", "status", "registered",
	} {
		assert.Contains(t, first, key)
	}
}

func TestNexusHandler_ListThresholds(t *testing.T) {
	svc := mocks.NewMockNexusServiceForTest(t)
	svc.EXPECT().ListThresholds().Return([]business.StateThreshold{
		{StateCode: "AK", StateName: "Alaska", MeasurementPeriod: business.PeriodRolling12Months},
		{StateCode: "AL", StateName: "Alabama", HasSalesTax: true, MeasurementPeriod: business.PeriodCalendarYearOrRolling},
	})

	router := newTestRouter(uuid.New())
	router.GET("/nexus/thresholds", handlers.NewNexusHandler(svc).ListThresholds)

	w := perform(router, http.MethodGet, "/nexus/thresholds", nil)
	require.Equal(t, http.StatusOK, w.Code)

	resp := decode[struct {
		Object string                    `json:"object"`
		Data   []business.StateThreshold `json:"data"`
	}](t, w)
	assert.Equal(t, "list", resp.Object)
	require.Len(t, resp.Data, 2)
	assert.Equal(t, "AK", resp.Data[0].StateCode)
}

func TestNexusHandler_GetRegistrations(t *testing.T) {
	userID := uuid.New()

	t.Run("empty list renders as array", func(t *testing.T) {
		svc := mocks.NewMockNexusServiceForTest(t)
		svc.EXPECT().ListRegistrations(gomock.Any(), userID).Return(nil, nil)

		router := newTestRouter(userID)
		router.GET("/nexus/registrations", handlers.NewNexusHandler(svc).GetRegistrations)

		w := perform(router, http.MethodGet, "/nexus/registrations", nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"state_codes":[]}`, w.Body.String())
	})

	t.Run("storage failure", func(t *testing.T) {
		svc := mocks.NewMockNexusServiceForTest(t)
		svc.EXPECT().ListRegistrations(gomock.Any(), userID).Return(nil, errors.New("conn closed"))

		router := newTestRouter(userID)
		router.GET("/nexus/registrations", handlers.NewNexusHandler(svc).GetRegistrations)

		w := perform(router, http.MethodGet, "/nexus/registrations", nil)
		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Equal(t, "Internal server error", decode[responses.ErrorResponse](t, w).Error)
	})
}

func TestNexusHandler_UpdateRegistrations(t *testing.T) {
	userID := uuid.New()

	tests := []struct {
		name       string
		body       any
		setupMock  func(m *mocks.MockNexusService)
		wantStatus int
		wantBody   string
	}{
		{
			name: "replaces registrations",
			body: map[string]any{"state_codes": []string{"tx", "CA", "TX"}},
			setupMock: func(m *mocks.MockNexusService) {
				m.EXPECT().ReplaceRegistrations(gomock.Any(), userID, []string{"tx", "CA", "TX"}).
					Return([]string{"CA", "TX"}, nil)
			},
			wantStatus: http.StatusOK,
			wantBody:   `{"state_codes":["CA","TX"]}`,
		},
		{
			name: "empty list clears registrations",
			body: `{"state_codes":[]}`,
			setupMock: func(m *mocks.MockNexusService) {
				m.EXPECT().ReplaceRegistrations(gomock.Any(), userID, []string{}).Return([]string{}, nil)
			},
			wantStatus: http.StatusOK,
			wantBody:   `{"state_codes":[]}`,
		},
		{
			name:       "missing field",
			body:       `{}`,
			setupMock:  func(m *mocks.MockNexusService) {},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "malformed json",
			body:       `{"state_codes":`,
			setupMock:  func(m *mocks.MockNexusService) {},
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "unknown state",
			body: map[string]any{"state_codes": []string{"CA", "ZZ"}},
			setupMock: func(m *mocks.MockNexusService) {
				m.EXPECT().ReplaceRegistrations(gomock.Any(), userID, []string{"CA", "ZZ"}).
					Return(nil, pkgerrors.Wrapf(services.ErrUnknownState, "%q", "ZZ"))
			},
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "transaction failure",
			body: map[string]any{"state_codes": []string{"CA"}},
			setupMock: func(m *mocks.MockNexusService) {
				m.EXPECT().ReplaceRegistrations(gomock.Any(), userID, []string{"CA"}).
					Return(nil, errors.New("deadlock detected"))
			},
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := mocks.NewMockNexusServiceForTest(t)
			tt.setupMock(svc)

			router := newTestRouter(userID)
			router.PUT("/nexus/registrations", handlers.NewNexusHandler(svc).UpdateRegistrations)

			w := perform(router, http.MethodPut, "/nexus/registrations", tt.body)
			require.Equal(t, tt.wantStatus, w.Code)
			if tt.wantBody != "" {
				assert.JSONEq(t, tt.wantBody, w.Body.String())
			}
			if tt.name == "unknown state" {
				assert.Contains(t, decode[responses.ErrorResponse](t, w).Error, "ZZ")
			}
			if tt.name == "transaction failure" {
				assert.NotContains(t, w.Body.String(), "deadlock")
			}
		})
	}
}
