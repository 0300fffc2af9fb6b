package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/dgsoftwash/booking-api/internal/httperr"
	"github.com/dgsoftwash/booking-api/internal/httpresp"
	"github.com/dgsoftwash/booking-api/internal/models"
)

type AdminExpenseHandler struct {
	db *gorm.DB
}

func NewAdminExpenseHandler(db *gorm.DB) *AdminExpenseHandler {
	return &AdminExpenseHandler{db: db}
}

func (h *AdminExpenseHandler) List(c *gin.Context) {
	q := h.db.Model(&models.Expense{})

	if yearStr := c.Query("year"); yearStr != "" {
		year, err := strconv.Atoi(yearStr)
		if err != nil {
			httperr.BadRequest(c, "invalid_year", "Invalid year.")
			return
		}
		if monthStr := c.Query("month"); monthStr != "" {
			month, err := strconv.Atoi(monthStr)
			if err != nil || month < 1 || month > 12 {
				httperr.BadRequest(c, "invalid_month", "Invalid month.")
				return
			}
			q = q.Where("date LIKE ?", fmt.Sprintf("%04d-%02d-%%", year, month))
		} else {
			q = q.Where("date LIKE ?", fmt.Sprintf("%04d-%%", year))
		}
	}

	var expenses []models.Expense
	if err := q.Order("date DESC").Find(&expenses).Error; err != nil {
		httperr.Internal(c, "failed_to_list_expenses", "Failed to list expenses.")
		return
	}

	httpresp.List(c, expenses)
}

type CreateExpenseRequest struct {
	Date     string  `json:"date" binding:"required"`
	Category string  `json:"category"`
	Amount   float64 `json:"amount" binding:"required"`
	Notes    string  `json:"notes"`
}

func (h *AdminExpenseHandler) Create(c *gin.Context) {
	var req CreateExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid expense request.")
		return
	}

	expense := models.Expense{
		Date:     req.Date,
		Category: req.Category,
		Amount:   req.Amount,
		Notes:    req.Notes,
	}

	if err := h.db.Create(&expense).Error; err != nil {
		httperr.Internal(c, "failed_to_create_expense", "Failed to create expense.")
		return
	}

	httpresp.Created(c, expense)
}

func (h *AdminExpenseHandler) Delete(c *gin.Context) {
	id := c.Param("id")

	if err := h.db.Delete(&models.Expense{}, id).Error; err != nil {
		httperr.Internal(c, "failed_to_delete_expense", "Failed to delete expense.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
