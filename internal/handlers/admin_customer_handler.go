package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/dgsoftwash/booking-api/internal/httperr"
	"github.com/dgsoftwash/booking-api/internal/httpresp"
	"github.com/dgsoftwash/booking-api/internal/models"
	"github.com/dgsoftwash/booking-api/internal/validators"
)

type AdminCustomerHandler struct {
	db *gorm.DB
}

func NewAdminCustomerHandler(db *gorm.DB) *AdminCustomerHandler {
	return &AdminCustomerHandler{db: db}
}

type CustomerListRow struct {
	models.Customer
	BookingCount int    `json:"booking_count"`
	LastService  string `json:"last_service"`
	LastDate     string `json:"last_date"`
}

// ======================================================
// LIST (with booking aggregates)
// ======================================================

func (h *AdminCustomerHandler) List(c *gin.Context) {
	query := strings.ToLower(strings.TrimSpace(c.Query("query")))

	q := h.db.Model(&models.Customer{})
	if query != "" {
		like := "%" + query + "%"
		q = q.Where(
			"LOWER(name) LIKE ? OR phone LIKE ? OR LOWER(email) LIKE ?",
			like, like, like,
		)
	}

	var customers []models.Customer
	if err := q.Order("created_at DESC").Find(&customers).Error; err != nil {
		httperr.Internal(c, "failed_to_list_customers", "Failed to list customers.")
		return
	}

	// One bookings pass for every listed customer; newest row per
	// customer arrives first and supplies the last-service columns.
	ids := make([]uint, 0, len(customers))
	for _, cust := range customers {
		ids = append(ids, cust.ID)
	}

	type bookingAgg struct {
		count       int
		lastService string
		lastDate    string
	}
	aggs := make(map[uint]*bookingAgg, len(customers))

	if len(ids) > 0 {
		var bookings []models.Booking
		if err := h.db.
			Where("customer_id IN ?", ids).
			Order("date DESC, time DESC").
			Find(&bookings).Error; err != nil {
			httperr.Internal(c, "failed_to_list_customers", "Failed to list customers.")
			return
		}
		for _, b := range bookings {
			if b.CustomerID == nil {
				continue
			}
			agg, ok := aggs[*b.CustomerID]
			if !ok {
				agg = &bookingAgg{lastService: b.Service, lastDate: b.Date}
				aggs[*b.CustomerID] = agg
			}
			agg.count++
		}
	}

	rows := make([]CustomerListRow, 0, len(customers))
	for _, cust := range customers {
		row := CustomerListRow{Customer: cust}
		if agg, ok := aggs[cust.ID]; ok {
			row.BookingCount = agg.count
			row.LastService = agg.lastService
			row.LastDate = agg.lastDate
		}
		rows = append(rows, row)
	}

	httpresp.List(c, rows)
}

// ======================================================
// DETAIL (with booking history)
// ======================================================

func (h *AdminCustomerHandler) Detail(c *gin.Context) {
	id := c.Param("id")

	var customer models.Customer
	if err := h.db.First(&customer, id).Error; err != nil {
		httperr.NotFound(c, "customer_not_found", "Customer not found.")
		return
	}

	var bookings []models.Booking
	if err := h.db.
		Where("customer_id = ?", customer.ID).
		Order("date DESC, time DESC").
		Find(&bookings).Error; err != nil {
		httperr.Internal(c, "failed_to_load_history", "Failed to load booking history.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"customer": customer, "bookings": bookings})
}

// ======================================================
// CREATE
// ======================================================

type CreateCustomerRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
	Notes   string `json:"notes"`
}

func (h *AdminCustomerHandler) Create(c *gin.Context) {
	var req CreateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid customer request.")
		return
	}

	customer := models.Customer{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   validators.NormalizePhone(req.Phone),
		Address: req.Address,
		Notes:   req.Notes,
	}

	if err := h.db.Create(&customer).Error; err != nil {
		httperr.Internal(c, "failed_to_create_customer", "Failed to create customer.")
		return
	}

	httpresp.Created(c, customer)
}

// ======================================================
// NOTES UPDATE
// ======================================================

type UpdateCustomerNotesRequest struct {
	Notes string `json:"notes"`
}

func (h *AdminCustomerHandler) UpdateNotes(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Invalid customer id.")
		return
	}

	var req UpdateCustomerNotesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid notes request.")
		return
	}

	if err := h.db.
		Model(&models.Customer{}).
		Where("id = ?", id).
		Update("notes", req.Notes).Error; err != nil {
		httperr.Internal(c, "failed_to_update_notes", "Failed to update notes.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
