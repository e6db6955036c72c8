package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/darkron008/Tip-and-hours-Calculator/internal/calculator"
)

// CalcTipRequest is the body of POST /api/calc/tip. Amounts travel as
// strings so cents survive the round trip exactly.
type CalcTipRequest struct {
	Amount  string `json:"amount" binding:"required"`
	Percent string `json:"percent" binding:"required"`
}

// CalcTipResponse carries the tip and the grand total.
type CalcTipResponse struct {
	Amount  string `json:"amount"`
	Percent string `json:"percent"`
	Tip     string `json:"tip"`
	Total   string `json:"total"`
}

// CalcTip computes a tip and total for a single bill.
// POST /api/calc/tip
func (h *Handler) CalcTip(c *gin.Context) {
	var req CalcTipRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "amount and percent are required"})
		return
	}

	amount, err := decimal.NewFromString(req.Amount)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid amount"})
		return
	}
	percent, err := decimal.NewFromString(req.Percent)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid percent"})
		return
	}

	tip, err := calculator.Tip(amount, percent)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	total, err := calculator.Total(amount, percent)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, CalcTipResponse{
		Amount:  amount.StringFixed(2),
		Percent: percent.String(),
		Tip:     tip.StringFixed(2),
		Total:   total.StringFixed(2),
	})
}

// CalcPayRequest is the body of POST /api/calc/pay.
type CalcPayRequest struct {
	Hours string `json:"hours" binding:"required"`
	Rate  string `json:"rate" binding:"required"`
}

// CalcPayResponse carries the gross pay.
type CalcPayResponse struct {
	Hours string `json:"hours"`
	Rate  string `json:"rate"`
	Pay   string `json:"pay"`
}

// CalcPay computes gross pay for hours at an hourly rate.
// POST /api/calc/pay
func (h *Handler) CalcPay(c *gin.Context) {
	var req CalcPayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "hours and rate are required"})
		return
	}

	hours, err := decimal.NewFromString(req.Hours)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid hours"})
		return
	}
	rate, err := decimal.NewFromString(req.Rate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid rate"})
		return
	}

	pay, err := calculator.Pay(hours, rate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, CalcPayResponse{
		Hours: hours.String(),
		Rate:  rate.String(),
		Pay:   pay.StringFixed(2),
	})
}
