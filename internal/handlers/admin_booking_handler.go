package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/dgsoftwash/booking-api/internal/audit"
	domain "github.com/dgsoftwash/booking-api/internal/domain/schedule"
	"github.com/dgsoftwash/booking-api/internal/httperr"
	"github.com/dgsoftwash/booking-api/internal/models"
	ucBooking "github.com/dgsoftwash/booking-api/internal/usecase/booking"
	"github.com/dgsoftwash/booking-api/internal/validators"
)

type AdminBookingHandler struct {
	db     *gorm.DB
	create *ucBooking.Create
	cancel *ucBooking.Cancel
	audit  *audit.Dispatcher
}

func NewAdminBookingHandler(
	db *gorm.DB,
	create *ucBooking.Create,
	cancel *ucBooking.Cancel,
	dispatcher *audit.Dispatcher,
) *AdminBookingHandler {
	return &AdminBookingHandler{
		db:     db,
		create: create,
		cancel: cancel,
		audit:  dispatcher,
	}
}

// ======================================================
// LIST
// ======================================================

func (h *AdminBookingHandler) List(c *gin.Context) {
	var bookings []models.Booking
	if err := h.db.
		Order("date DESC, time ASC").
		Find(&bookings).Error; err != nil {
		httperr.Internal(c, "failed_to_list_bookings", "Failed to list bookings.")
		return
	}

	var blocked []models.Block
	if err := h.db.
		Order("date DESC").
		Find(&blocked).Error; err != nil {
		httperr.Internal(c, "failed_to_list_blocks", "Failed to list blocks.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"bookings": bookings, "blocked": blocked})
}

// ======================================================
// CREATE (manual entry, same allocator as the public flow)
// ======================================================

type AdminCreateBookingRequest struct {
	Date     string `json:"date" binding:"required"`
	Time     string `json:"time" binding:"required"`
	Service  string `json:"service" binding:"required"`
	Duration int    `json:"duration"`
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
	Price    string `json:"price"`
	Notes    string `json:"notes"`
}

func (h *AdminBookingHandler) Create(c *gin.Context) {
	var req AdminCreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid booking request.")
		return
	}

	result, err := h.create.Execute(c.Request.Context(), ucBooking.CreateInput{
		Date:          req.Date,
		Time:          req.Time,
		Service:       req.Service,
		TotalDuration: req.Duration,
		Name:          req.Name,
		Email:         req.Email,
		Phone:         validators.NormalizePhone(req.Phone),
		Address:       req.Address,
		Price:         req.Price,
		Notes:         req.Notes,
	})
	if err != nil {
		if be, ok := httperr.AsBusiness(err); ok {
			httperr.BadRequest(c, be.Code, be.Message)
			return
		}
		httperr.Internal(c, "booking_failed", "Failed to create booking.")
		return
	}

	first := result.Bookings[0]
	h.audit.Dispatch(audit.Event{
		Action:   "booking_created",
		Entity:   "booking",
		EntityID: &first.ID,
	})

	c.JSON(http.StatusCreated, gin.H{"success": true, "bookings": result.Bookings})
}

// ======================================================
// DELETE
// ======================================================

func (h *AdminBookingHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Invalid booking id.")
		return
	}

	if err := h.cancel.ByID(c.Request.Context(), uint(id)); err != nil {
		httperr.Internal(c, "failed_to_delete_booking", "Failed to delete booking.")
		return
	}

	bid := uint(id)
	h.audit.Dispatch(audit.Event{
		Action:   "booking_deleted",
		Entity:   "booking",
		EntityID: &bid,
	})

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// ======================================================
// BLOCK / UNBLOCK / CANCEL by (date, time|"all")
// ======================================================

type BlockRequest struct {
	Action string `json:"action" binding:"required"` // block | unblock | cancel
	Date   string `json:"date" binding:"required"`
	Time   string `json:"time" binding:"required"` // slot or "all"
}

func (h *AdminBookingHandler) Block(c *gin.Context) {
	var req BlockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid block request.")
		return
	}

	if req.Time != models.BlockAllDay && !domain.IsValidSlot(req.Time) {
		httperr.BadRequest(c, "invalid_slot", "Invalid time slot.")
		return
	}

	switch req.Action {
	case "block":
		var count int64
		h.db.Model(&models.Block{}).
			Where("date = ? AND time = ?", req.Date, req.Time).
			Count(&count)
		if count == 0 {
			block := models.Block{Date: req.Date, Time: req.Time, Reason: "Admin blocked"}
			if err := h.db.Create(&block).Error; err != nil {
				httperr.Internal(c, "failed_to_block", "Failed to create block.")
				return
			}
		}

	case "unblock":
		if err := h.db.
			Where("date = ? AND time = ?", req.Date, req.Time).
			Delete(&models.Block{}).Error; err != nil {
			httperr.Internal(c, "failed_to_unblock", "Failed to remove block.")
			return
		}

	case "cancel":
		if err := h.cancel.At(c.Request.Context(), req.Date, req.Time); err != nil {
			httperr.Internal(c, "failed_to_cancel", "Failed to cancel booking.")
			return
		}

	default:
		httperr.BadRequest(c, "invalid_action", "Unknown action.")
		return
	}

	h.audit.Dispatch(audit.Event{
		Action:   "schedule_" + req.Action,
		Entity:   "block",
		Metadata: gin.H{"date": req.Date, "time": req.Time},
	})

	c.JSON(http.StatusOK, gin.H{"success": true})
}
