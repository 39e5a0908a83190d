package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sails-app/sails-api/libs/go/interfaces"
	"github.com/sails-app/sails-api/libs/go/services"
	"github.com/sails-app/sails-api/libs/go/types/api/requests"
	"github.com/sails-app/sails-api/libs/go/types/api/responses"
	"github.com/sails-app/sails-api/libs/go/types/business"
)

// NexusHandler serves exposure reports and registered states
type NexusHandler struct {
	nexusService interfaces.NexusService
}

func NewNexusHandler(nexusService interfaces.NexusService) *NexusHandler {
	return &NexusHandler{nexusService: nexusService}
}

// GetExposure godoc
// @Summary Get the caller's sales tax nexus exposure
// @Description Evaluates every state against its economic nexus thresholds using the caller's imported orders
// @Tags nexus
// @Produce json
// @Success 200 {object} responses.NexusExposureResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /nexus/exposure [get]
func (h *NexusHandler) GetExposure(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	report, err := h.nexusService.GetExposureReport(c.Request.Context(), userID)
	if err != nil {
		sendError(c, http.StatusInternalServerError, "Failed to calculate nexus exposure", err)
		return
	}

	registered, err := h.nexusService.ListRegistrations(c.Request.Context(), userID)
	if err != nil {
		sendError(c, http.StatusInternalServerError, "Failed to load nexus registrations", err)
		return
	}

	sendSuccess(c, http.StatusOK, toNexusExposureResponse(report, registered))
}

// ListThresholds godoc
// @Summary List economic nexus thresholds
// @Tags nexus
// @Produce json
// @Success 200 {object} ListResponse
// @Security BearerAuth
// @Router /nexus/thresholds [get]
func (h *NexusHandler) ListThresholds(c *gin.Context) {
	sendList(c, h.nexusService.ListThresholds())
}

// GetRegistrations godoc
// @Summary List the states the caller is registered to collect tax in
// @Tags nexus
// @Produce json
// @Success 200 {object} responses.NexusRegistrationsResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /nexus/registrations [get]
func (h *NexusHandler) GetRegistrations(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	stateCodes, err := h.nexusService.ListRegistrations(c.Request.Context(), userID)
	if err != nil {
		handleDBError(c, err, "Registrations not found")
		return
	}

	sendSuccess(c, http.StatusOK, responses.NexusRegistrationsResponse{StateCodes: nonNil(stateCodes)})
}

// UpdateRegistrations godoc
// @Summary Replace the caller's registered states
// @Tags nexus
// @Accept json
// @Produce json
// @Param registrations body requests.UpdateNexusRegistrationsRequest true "Registered states"
// @Success 200 {object} responses.NexusRegistrationsResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /nexus/registrations [put]
func (h *NexusHandler) UpdateRegistrations(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var req requests.UpdateNexusRegistrationsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	stateCodes, err := h.nexusService.ReplaceRegistrations(c.Request.Context(), userID, req.StateCodes)
	if err != nil {
		if errors.Is(err, services.ErrUnknownState) {
			sendError(c, http.StatusBadRequest, err.Error(), err)
			return
		}
		sendError(c, http.StatusInternalServerError, "Failed to update nexus registrations", err)
		return
	}

	sendSuccess(c, http.StatusOK, responses.NexusRegistrationsResponse{StateCodes: nonNil(stateCodes)})
}

func toNexusExposureResponse(report *business.ExposureReport, registered []string) responses.NexusExposureResponse {
	registeredSet := make(map[string]struct{}, len(registered))
	for _, code := range registered {
		registeredSet[code] = struct{}{}
	}

	exposures := make([]responses.StateExposureResponse, 0, len(report.Exposures))
	for _, e := range report.Exposures {
		_, isRegistered := registeredSet[e.StateCode]
		exposures = append(exposures, responses.StateExposureResponse{
			StateCode:                  e.StateCode,
			StateName:                  e.StateName,
			HasSalesTax:                e.HasSalesTax,
			MeasurementPeriod:          string(e.MeasurementPeriod),
			SalesThreshold:             e.SalesThreshold,
			TransactionThreshold:       e.TransactionThreshold,
			CurrentSales:               e.CurrentSales,
			CurrentTransactions:        e.CurrentTransactions,
			SalesPercentage:            e.SalesPercentage,
			TransactionPercentage:      e.TransactionPercentage,
			HighestPercentage:          e.HighestPercentage,
			Status:                     string(e.Status),
			Registered:                 isRegistered,
			Rolling12MonthSales:        e.Totals.Rolling12MonthSales,
			Rolling12MonthTransactions: e.Totals.Rolling12MonthTransactions,
			CalendarYearSales:          e.Totals.CalendarYearSales,
			CalendarYearTransactions:   e.Totals.CalendarYearTransactions,
			Notes:                      e.Notes,
		})
	}

	s := report.Summary
	return responses.NexusExposureResponse{
		Exposures: exposures,
		Summary: responses.ExposureSummaryResponse{
			TotalStates:      s.TotalStates,
			StatesWithSales:  s.StatesWithSales,
			ExceededCount:    s.ExceededCount,
			WarningCount:     s.WarningCount,
			ApproachingCount: s.ApproachingCount,
			SafeCount:        s.SafeCount,
			NoSalesTaxCount:  s.NoSalesTaxCount,
		},
		GeneratedAt: report.GeneratedAt,
	}
}

func nonNil(codes []string) []string {
	if codes == nil {
		return []string{}
	}
	return codes
}
