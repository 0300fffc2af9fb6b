package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/dgsoftwash/booking-api/internal/httperr"
	ucReport "github.com/dgsoftwash/booking-api/internal/usecase/report"
)

type AdminReportHandler struct {
	revenue  *ucReport.Revenue
	payments *ucReport.Payments
}

func NewAdminReportHandler(
	revenue *ucReport.Revenue,
	payments *ucReport.Payments,
) *AdminReportHandler {
	return &AdminReportHandler{revenue: revenue, payments: payments}
}

func (h *AdminReportHandler) Revenue(c *gin.Context) {
	year, err := strconv.Atoi(c.Param("year"))
	if err != nil {
		httperr.BadRequest(c, "invalid_year", "Invalid year.")
		return
	}

	report, err := h.revenue.Execute(c.Request.Context(), year)
	if err != nil {
		httperr.Internal(c, "report_failed", "Failed to build revenue report.")
		return
	}

	c.JSON(http.StatusOK, report)
}

func (h *AdminReportHandler) Payments(c *gin.Context) {
	year, err := strconv.Atoi(c.Param("year"))
	if err != nil {
		httperr.BadRequest(c, "invalid_year", "Invalid year.")
		return
	}

	month := 0
	if monthStr := c.Query("month"); monthStr != "" {
		month, err = strconv.Atoi(monthStr)
		if err != nil || month < 1 || month > 12 {
			httperr.BadRequest(c, "invalid_month", "Invalid month.")
			return
		}
	}

	ledger, err := h.payments.Execute(c.Request.Context(), year, month, c.Query("method"))
	if err != nil {
		httperr.Internal(c, "report_failed", "Failed to build payments ledger.")
		return
	}

	c.JSON(http.StatusOK, ledger)
}
