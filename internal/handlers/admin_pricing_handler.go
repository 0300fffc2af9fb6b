package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/dgsoftwash/booking-api/internal/audit"
	"github.com/dgsoftwash/booking-api/internal/httperr"
	"github.com/dgsoftwash/booking-api/internal/httpresp"
	ucPricing "github.com/dgsoftwash/booking-api/internal/usecase/pricing"
)

type AdminPricingHandler struct {
	update *ucPricing.Update
	repo   ucPricing.Repository
	audit  *audit.Dispatcher
}

func NewAdminPricingHandler(
	update *ucPricing.Update,
	repo ucPricing.Repository,
	dispatcher *audit.Dispatcher,
) *AdminPricingHandler {
	return &AdminPricingHandler{update: update, repo: repo, audit: dispatcher}
}

// ======================================================
// IMMEDIATE EDITS
// ======================================================

type PricingUpdateRequest struct {
	Field string `json:"field" binding:"required"`
	Value string `json:"value" binding:"required"`
}

func (h *AdminPricingHandler) UpdateService(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Invalid service id.")
		return
	}

	var req PricingUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid update request.")
		return
	}

	if err := h.update.Service(c.Request.Context(), uint(id), req.Field, req.Value); err != nil {
		if be, ok := httperr.AsBusiness(err); ok {
			httperr.BadRequest(c, be.Code, be.Message)
			return
		}
		httperr.Internal(c, "failed_to_update_service", "Failed to update service.")
		return
	}

	sid := uint(id)
	h.audit.Dispatch(audit.Event{
		Action:   "service_updated",
		Entity:   "service",
		EntityID: &sid,
		Metadata: req,
	})

	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (h *AdminPricingHandler) UpdateDiscount(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Invalid discount id.")
		return
	}

	var req PricingUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid update request.")
		return
	}

	if err := h.update.Discount(c.Request.Context(), uint(id), req.Field, req.Value); err != nil {
		if be, ok := httperr.AsBusiness(err); ok {
			httperr.BadRequest(c, be.Code, be.Message)
			return
		}
		httperr.Internal(c, "failed_to_update_discount", "Failed to update discount.")
		return
	}

	did := uint(id)
	h.audit.Dispatch(audit.Event{
		Action:   "discount_updated",
		Entity:   "discount",
		EntityID: &did,
		Metadata: req,
	})

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// ======================================================
// SCHEDULED CHANGES
// ======================================================

type ScheduleChangeRequest struct {
	ServiceID     *uint  `json:"service_id"`
	DiscountID    *uint  `json:"discount_id"`
	Field         string `json:"field" binding:"required"`
	NewValue      string `json:"new_value" binding:"required"`
	EffectiveDate string `json:"effective_date" binding:"required"`
}

func (h *AdminPricingHandler) ListSchedules(c *gin.Context) {
	rows, err := h.repo.ListSchedules(c.Request.Context())
	if err != nil {
		httperr.Internal(c, "failed_to_list_schedules", "Failed to list scheduled changes.")
		return
	}
	httpresp.List(c, rows)
}

func (h *AdminPricingHandler) CreateSchedule(c *gin.Context) {
	var req ScheduleChangeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid schedule request.")
		return
	}

	row, err := h.update.Schedule(c.Request.Context(), ucPricing.ScheduleInput{
		ServiceID:     req.ServiceID,
		DiscountID:    req.DiscountID,
		Field:         req.Field,
		NewValue:      req.NewValue,
		EffectiveDate: req.EffectiveDate,
	})
	if err != nil {
		if be, ok := httperr.AsBusiness(err); ok {
			httperr.BadRequest(c, be.Code, be.Message)
			return
		}
		httperr.Internal(c, "failed_to_schedule", "Failed to schedule change.")
		return
	}

	h.audit.Dispatch(audit.Event{
		Action:   "pricing_change_scheduled",
		Entity:   "pricing_schedule",
		EntityID: &row.ID,
	})

	c.JSON(http.StatusCreated, row)
}

func (h *AdminPricingHandler) DeleteSchedule(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Invalid schedule id.")
		return
	}

	if err := h.update.DeleteSchedule(c.Request.Context(), uint(id)); err != nil {
		httperr.Internal(c, "failed_to_delete_schedule", "Failed to delete scheduled change.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
