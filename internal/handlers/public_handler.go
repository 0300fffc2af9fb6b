package handlers

import (
	"fmt"
	"net/http"
	"regexp"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/dgsoftwash/booking-api/internal/httperr"
	"github.com/dgsoftwash/booking-api/internal/metrics"
	"github.com/dgsoftwash/booking-api/internal/notify"
	ucAvailability "github.com/dgsoftwash/booking-api/internal/usecase/availability"
	ucBooking "github.com/dgsoftwash/booking-api/internal/usecase/booking"
	ucPricing "github.com/dgsoftwash/booking-api/internal/usecase/pricing"
	"github.com/dgsoftwash/booking-api/internal/validators"
)

var dateRe = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

type PublicHandler struct {
	daySlots *ucAvailability.DaySlots
	month    *ucAvailability.Month
	create   *ucBooking.Create
	catalog  *ucPricing.GetCatalog
	quote    *ucPricing.Quote

	notify        *notify.Dispatcher
	businessInbox string
}

func NewPublicHandler(
	daySlots *ucAvailability.DaySlots,
	month *ucAvailability.Month,
	create *ucBooking.Create,
	catalog *ucPricing.GetCatalog,
	quote *ucPricing.Quote,
	dispatcher *notify.Dispatcher,
	businessInbox string,
) *PublicHandler {
	return &PublicHandler{
		daySlots:      daySlots,
		month:         month,
		create:        create,
		catalog:       catalog,
		quote:         quote,
		notify:        dispatcher,
		businessInbox: businessInbox,
	}
}

////////////////////////////////////////////////////////
// AVAILABILITY
////////////////////////////////////////////////////////

func (h *PublicHandler) DaySlots(c *gin.Context) {
	date := c.Param("date")
	if !dateRe.MatchString(date) {
		httperr.BadRequest(c, "invalid_date", "Invalid date format.")
		return
	}

	slots, err := h.daySlots.Execute(c.Request.Context(), date)
	if err != nil {
		httperr.Internal(c, "availability_failed", "Failed to load availability.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"slots": slots})
}

func (h *PublicHandler) MonthOverview(c *gin.Context) {
	year, err1 := strconv.Atoi(c.Param("year"))
	month, err2 := strconv.Atoi(c.Param("month"))
	if err1 != nil || err2 != nil || month < 1 || month > 12 {
		httperr.BadRequest(c, "invalid_month", "Invalid year or month.")
		return
	}

	days, err := h.month.Execute(c.Request.Context(), year, month)
	if err != nil {
		httperr.Internal(c, "availability_failed", "Failed to load availability.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"days": days})
}

////////////////////////////////////////////////////////
// PRICING
////////////////////////////////////////////////////////

func (h *PublicHandler) Pricing(c *gin.Context) {
	catalog, err := h.catalog.Execute(c.Request.Context())
	if err != nil {
		httperr.Internal(c, "pricing_failed", "Failed to load pricing.")
		return
	}
	c.JSON(http.StatusOK, catalog)
}

type QuoteRequest struct {
	Services  []string `json:"services" binding:"required"`
	Discounts []string `json:"discounts"`
}

func (h *PublicHandler) Quote(c *gin.Context) {
	var req QuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid quote request.")
		return
	}

	result, err := h.quote.Execute(c.Request.Context(), ucPricing.QuoteInput{
		Services:  req.Services,
		Discounts: req.Discounts,
	})
	if err != nil {
		httperr.Internal(c, "quote_failed", "Failed to compute quote.")
		return
	}

	c.JSON(http.StatusOK, result)
}

////////////////////////////////////////////////////////
// CONTACT / BOOKING SUBMIT
////////////////////////////////////////////////////////

type ContactRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
	Service string `json:"service"`
	Message string `json:"message"`

	AppointmentDate string `json:"appointmentDate"`
	AppointmentTime string `json:"appointmentTime"`
	TotalDuration   int    `json:"totalDuration"`
	BookingPrice    string `json:"bookingPrice"`
	BookingNotes    string `json:"bookingNotes"`
}

type ContactResponse struct {
	Success    bool   `json:"success"`
	Message    string `json:"message"`
	Day2Notice string `json:"day2Notice,omitempty"`
}

// Contact handles the public form. With appointment fields present it
// books; without them it only forwards the message to the business
// inbox. Booking rejections are expected outcomes and come back as
// {success:false} with a customer-readable message, never a 500.
func (h *PublicHandler) Contact(c *gin.Context) {
	var req ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusOK, ContactResponse{
			Success: false,
			Message: "Please fill in your name and contact details.",
		})
		return
	}

	if req.Email != "" && !validators.IsEmailShaped(req.Email) {
		c.JSON(http.StatusOK, ContactResponse{
			Success: false,
			Message: "That email address doesn't look right. Please double-check it.",
		})
		return
	}

	if req.AppointmentDate == "" || req.AppointmentTime == "" {
		h.notify.DispatchEmail(notify.ContactEmail(
			h.businessInbox, req.Name, req.Email, req.Phone, req.Message,
		))
		metrics.NotificationsSent.WithLabelValues("contact").Inc()

		c.JSON(http.StatusOK, ContactResponse{
			Success: true,
			Message: "Thank you for your message! We will get back to you soon.",
		})
		return
	}

	if !dateRe.MatchString(req.AppointmentDate) {
		c.JSON(http.StatusOK, ContactResponse{
			Success: false,
			Message: "Invalid appointment date.",
		})
		return
	}

	result, err := h.create.Execute(c.Request.Context(), ucBooking.CreateInput{
		Date:          req.AppointmentDate,
		Time:          req.AppointmentTime,
		Service:       req.Service,
		TotalDuration: req.TotalDuration,
		Name:          req.Name,
		Email:         req.Email,
		Phone:         validators.NormalizePhone(req.Phone),
		Address:       req.Address,
		Price:         req.BookingPrice,
		Notes:         req.BookingNotes,
	})
	if err != nil {
		if be, ok := httperr.AsBusiness(err); ok {
			metrics.BookingOutcomes.WithLabelValues("rejected").Inc()
			c.JSON(http.StatusOK, ContactResponse{Success: false, Message: be.Message})
			return
		}
		httperr.Internal(c, "booking_failed", "Something went wrong saving your booking. Please try again.")
		return
	}

	if result.Adjusted {
		metrics.BookingOutcomes.WithLabelValues("adjusted").Inc()
	} else {
		metrics.BookingOutcomes.WithLabelValues("created").Inc()
	}

	h.notify.DispatchEmail(notify.BookingEmail(
		h.businessInbox, req.Name, req.Service, req.AppointmentDate, req.AppointmentTime,
	))
	metrics.NotificationsSent.WithLabelValues("booking").Inc()

	resp := ContactResponse{
		Success: true,
		Message: "You're booked! We'll see you then.",
	}
	if result.MultiDay {
		resp.Message = "You're booked! This job runs across two days."
		if result.Adjusted {
			resp.Day2Notice = fmt.Sprintf(
				"Day 2 is scheduled for %s starting at %s (the earliest open time that day).",
				result.Day2Date, result.Day2Time,
			)
		} else {
			resp.Day2Notice = fmt.Sprintf("Day 2 is scheduled for %s starting at %s.", result.Day2Date, result.Day2Time)
		}
	}

	c.JSON(http.StatusOK, resp)
}
