package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/dgsoftwash/booking-api/internal/audit"
	"github.com/dgsoftwash/booking-api/internal/httperr"
	"github.com/dgsoftwash/booking-api/internal/httpresp"
	"github.com/dgsoftwash/booking-api/internal/metrics"
	ucWorkOrder "github.com/dgsoftwash/booking-api/internal/usecase/workorder"
)

type AdminWorkOrderHandler struct {
	repo    ucWorkOrder.Repository
	update  *ucWorkOrder.UpdateStatus
	actions *ucWorkOrder.Actions
	audit   *audit.Dispatcher
}

func NewAdminWorkOrderHandler(
	repo ucWorkOrder.Repository,
	update *ucWorkOrder.UpdateStatus,
	actions *ucWorkOrder.Actions,
	dispatcher *audit.Dispatcher,
) *AdminWorkOrderHandler {
	return &AdminWorkOrderHandler{
		repo:    repo,
		update:  update,
		actions: actions,
		audit:   dispatcher,
	}
}

func (h *AdminWorkOrderHandler) List(c *gin.Context) {
	orders, err := h.repo.List(c.Request.Context())
	if err != nil {
		httperr.Internal(c, "failed_to_list_work_orders", "Failed to list work orders.")
		return
	}
	httpresp.List(c, orders)
}

func (h *AdminWorkOrderHandler) Detail(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Invalid work order id.")
		return
	}

	wo, err := h.repo.Get(c.Request.Context(), uint(id))
	if err != nil {
		httperr.NotFound(c, "work_order_not_found", "Work order not found.")
		return
	}
	c.JSON(http.StatusOK, wo)
}

// ======================================================
// CREATE (standalone, no booking)
// ======================================================

type CreateWorkOrderRequest struct {
	CustomerID *uint  `json:"customer_id"`
	Service    string `json:"service" binding:"required"`
	Price      string `json:"price"`
	AdminNotes string `json:"admin_notes"`
}

func (h *AdminWorkOrderHandler) Create(c *gin.Context) {
	var req CreateWorkOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid work order request.")
		return
	}

	wo, err := h.actions.CreateStandalone(
		c.Request.Context(),
		req.CustomerID,
		req.Service,
		req.Price,
		req.AdminNotes,
	)
	if err != nil {
		httperr.Internal(c, "failed_to_create_work_order", "Failed to create work order.")
		return
	}

	h.audit.Dispatch(audit.Event{
		Action:   "work_order_created",
		Entity:   "work_order",
		EntityID: &wo.ID,
	})

	c.JSON(http.StatusCreated, wo)
}

// ======================================================
// STATUS / FIELDS PATCH
// ======================================================

type UpdateWorkOrderRequest struct {
	JobComplete *bool `json:"job_complete"`
	Invoiced    *bool `json:"invoiced"`
	InvoicePaid *bool `json:"invoice_paid"`
	Paid        *bool `json:"paid"`

	PaymentMethod   *string  `json:"payment_method"`
	CompletionNotes *string  `json:"completion_notes"`
	AdminNotes      *string  `json:"admin_notes"`
	Mileage         *float64 `json:"mileage"`
}

func (h *AdminWorkOrderHandler) Update(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Invalid work order id.")
		return
	}

	var req UpdateWorkOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid update request.")
		return
	}

	result, err := h.update.Execute(c.Request.Context(), uint(id), ucWorkOrder.UpdateInput{
		JobComplete:     req.JobComplete,
		Invoiced:        req.Invoiced,
		InvoicePaid:     req.InvoicePaid,
		Paid:            req.Paid,
		PaymentMethod:   req.PaymentMethod,
		CompletionNotes: req.CompletionNotes,
		AdminNotes:      req.AdminNotes,
		Mileage:         req.Mileage,
	})
	if err != nil {
		httperr.Internal(c, "failed_to_update_work_order", "Failed to update work order.")
		return
	}

	if result.EmailSent != "" {
		metrics.NotificationsSent.WithLabelValues(string(result.EmailSent)).Inc()
	}

	woID := uint(id)
	h.audit.Dispatch(audit.Event{
		Action:   "work_order_updated",
		Entity:   "work_order",
		EntityID: &woID,
	})

	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"work_order": result.WorkOrder,
		"email_sent": result.EmailSent,
	})
}

// ======================================================
// OUTBOUND ACTIONS (notification-primary)
// ======================================================

func (h *AdminWorkOrderHandler) RequestReview(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Invalid work order id.")
		return
	}

	if err := h.actions.RequestReview(c.Request.Context(), uint(id)); err != nil {
		if be, ok := httperr.AsBusiness(err); ok {
			httperr.BadRequest(c, be.Code, be.Message)
			return
		}
		httperr.Internal(c, "review_request_failed", "Failed to send review request.")
		return
	}

	metrics.NotificationsSent.WithLabelValues("review_request").Inc()
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (h *AdminWorkOrderHandler) SendReminder(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Invalid work order id.")
		return
	}

	if err := h.actions.SendReminder(c.Request.Context(), uint(id)); err != nil {
		if be, ok := httperr.AsBusiness(err); ok {
			httperr.BadRequest(c, be.Code, be.Message)
			return
		}
		httperr.Internal(c, "reminder_failed", "Failed to send reminder.")
		return
	}

	metrics.NotificationsSent.WithLabelValues("sms_reminder").Inc()
	c.JSON(http.StatusOK, gin.H{"success": true})
}
