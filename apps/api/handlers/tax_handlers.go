package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sails-app/sails-api/libs/go/interfaces"
	"github.com/sails-app/sails-api/libs/go/services"
	"github.com/sails-app/sails-api/libs/go/types/api/params"
	"github.com/sails-app/sails-api/libs/go/types/api/requests"
	"github.com/sails-app/sails-api/libs/go/types/api/responses"
)

// TaxHandler exposes state base sales tax rates
type TaxHandler struct {
	taxService interfaces.TaxService
}

func NewTaxHandler(taxService interfaces.TaxService) *TaxHandler {
	return &TaxHandler{taxService: taxService}
}

// GetStateRate godoc
// @Summary Get a state's base sales tax rate
// @Tags tax
// @Produce json
// @Param state_code path string true "Two letter state code"
// @Success 200 {object} responses.StateTaxRateResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /tax/rates/{state_code} [get]
func (h *TaxHandler) GetStateRate(c *gin.Context) {
	rate, err := h.taxService.GetStateRate(c.Param("state_code"))
	if err != nil {
		h.handleTaxError(c, err)
		return
	}

	sendSuccess(c, http.StatusOK, responses.StateTaxRateResponse{
		StateCode:   rate.StateCode,
		StateName:   rate.StateName,
		HasSalesTax: rate.HasSalesTax,
		Rate:        rate.Rate,
	})
}

// CalculateTax godoc
// @Summary Apply a state's base rate to an amount
// @Tags tax
// @Accept json
// @Produce json
// @Param calculation body requests.TaxCalculationRequest true "Amount and state"
// @Success 200 {object} responses.TaxCalculationResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /tax/calculate [post]
func (h *TaxHandler) CalculateTax(c *gin.Context) {
	var req requests.TaxCalculationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	calc, err := h.taxService.CalculateTax(params.TaxCalculationParams{
		StateCode: req.StateCode,
		Amount:    *req.Amount,
	})
	if err != nil {
		h.handleTaxError(c, err)
		return
	}

	sendSuccess(c, http.StatusOK, responses.TaxCalculationResponse{
		StateCode: calc.StateCode,
		Amount:    calc.Amount,
		Rate:      calc.Rate,
		TaxAmount: calc.TaxAmount,
		Total:     calc.Total,
	})
}

func (h *TaxHandler) handleTaxError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrUnknownState):
		sendError(c, http.StatusNotFound, "State not found", err)
	case errors.Is(err, services.ErrInvalidAmount):
		sendError(c, http.StatusBadRequest, err.Error(), err)
	default:
		sendError(c, http.StatusInternalServerError, "Internal server error", err)
	}
}
