package api

import (
	"errors"
	"net/http"

	reqdto "slotbooking/internal/handler/dto/request"
	resdto "slotbooking/internal/handler/dto/response"
	"slotbooking/internal/handler/httperr"
	"slotbooking/internal/usecase"

	"github.com/gin-gonic/gin"
)

type SlotsHandler struct {
	availability usecase.AvailabilityQueries
	bookings     usecase.BookingCommands
	cancels      usecase.CancellationCommands
}

func NewSlotsHandler(
	availability usecase.AvailabilityQueries,
	bookings usecase.BookingCommands,
	cancels usecase.CancellationCommands,
) *SlotsHandler {
	return &SlotsHandler{
		availability: availability,
		bookings:     bookings,
		cancels:      cancels,
	}
}

// @Summary List open slots or signup history
// @Description Without query params, returns open future slots grouped by date. With phone or email, returns that requester's active signups. Phone wins when both are given.
// @Tags slots
// @Produce json
// @Param phone query string false "Requester phone for history lookup"
// @Param email query string false "Requester email for history lookup"
// @Success 200 {object} resdto.ListSlotsResponse
// @Failure 400 {object} httperr.Response
// @Router /slots [get]
func (h *SlotsHandler) List(c *gin.Context) {
	if phone := c.Query("phone"); phone != "" {
		h.history(c, phone)
		return
	}
	if email := c.Query("email"); email != "" {
		h.historyByEmail(c, email)
		return
	}

	view, err := h.availability.ListOpenSlots(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load availability", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromAvailabilityView(view))
}

func (h *SlotsHandler) history(c *gin.Context, phone string) {
	entries, err := h.availability.ListHistory(c.Request.Context(), phone)
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidPhone) {
			httperr.AbortWithError(c, http.StatusBadRequest, err, err.Error(), nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load signup history", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromHistoryEntries(entries))
}

func (h *SlotsHandler) historyByEmail(c *gin.Context, email string) {
	entries, err := h.availability.ListHistoryByEmail(c.Request.Context(), email)
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidEmail) {
			httperr.AbortWithError(c, http.StatusBadRequest, err, err.Error(), nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load signup history", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromHistoryEntries(entries))
}

// @Summary Create booking
// @Description Books one or more slots for a requester. The request either fully succeeds or changes nothing.
// @Tags slots
// @Accept json
// @Produce json
// @Param request body reqdto.CreateBookingRequest true "Booking request"
// @Success 200 {object} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 429 {object} httperr.Response
// @Router /slots [post]
func (h *SlotsHandler) Create(c *gin.Context) {
	var req reqdto.CreateBookingRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request format", nil)
		return
	}

	result, err := h.bookings.CreateBooking(c.Request.Context(), req.ToParams())
	if err != nil {
		var conflict *usecase.ConflictError
		switch {
		case errors.Is(err, usecase.ErrValidation):
			httperr.AbortWithError(c, http.StatusBadRequest, err, err.Error(), nil)
		case errors.Is(err, usecase.ErrTooManyRequests):
			httperr.AbortWithError(c, http.StatusTooManyRequests, err,
				"Too many booking attempts in flight for this phone", nil)
		case errors.As(err, &conflict):
			httperr.AbortWithError(c, http.StatusConflict, err,
				"Some requested slots could not be booked", resdto.FromConflictError(conflict))
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromBookingResult(result))
}

// @Summary Cancel signup
// @Description Cancels a signup. The phone must match the one stored on the signup.
// @Tags slots
// @Accept json
// @Produce json
// @Param request body reqdto.CancelRequest true "Cancellation request"
// @Success 200 {object} resdto.CancelResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /slots [patch]
func (h *SlotsHandler) Cancel(c *gin.Context) {
	var req reqdto.CancelRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request format", nil)
		return
	}

	view, err := h.cancels.CancelSignup(c.Request.Context(), req.ToParams())
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrValidation):
			httperr.AbortWithError(c, http.StatusBadRequest, err, err.Error(), nil)
		case errors.Is(err, usecase.ErrSignupNotFound), errors.Is(err, usecase.ErrSlotNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, err.Error(), nil)
		case errors.Is(err, usecase.ErrNotOwner):
			httperr.AbortWithError(c, http.StatusForbidden, err, "Phone does not match this signup", nil)
		case errors.Is(err, usecase.ErrAlreadyCancelled):
			httperr.AbortWithError(c, http.StatusConflict, err, "Signup is already cancelled", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromCancelledSlotView(view))
}
