package api

import (
	"errors"
	"net/http"
	"strconv"

	"slotbooking/internal/domain/slot"
	reqdto "slotbooking/internal/handler/dto/request"
	resdto "slotbooking/internal/handler/dto/response"
	"slotbooking/internal/handler/httperr"
	"slotbooking/internal/usecase"

	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	admin usecase.AdminCommands
}

func NewAdminHandler(admin usecase.AdminCommands) *AdminHandler {
	return &AdminHandler{admin: admin}
}

// @Summary Batch-add slots
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.AddSlotsRequest true "Slot rows"
// @Success 200 {object} resdto.AddSlotsResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Router /admin/slots [post]
func (h *AdminHandler) AddSlots(c *gin.Context) {
	var req reqdto.AddSlotsRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request format", nil)
		return
	}

	added, err := h.admin.AddSlots(c.Request.Context(), req.ToParams())
	if err != nil {
		if errors.Is(err, usecase.ErrValidation) {
			httperr.AbortWithError(c, http.StatusBadRequest, err, err.Error(), nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.AddSlotsResponse{Ok: true, Added: added})
}

// @Summary Remove a slot row
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path int true "Slot row ID"
// @Success 200 {object} resdto.RemoveSlotResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Router /admin/slots/{id} [delete]
func (h *AdminHandler) RemoveSlot(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id < 1 {
		httperr.AbortWithError(c, http.StatusBadRequest, usecase.ErrValidation, "Invalid slot ID", nil)
		return
	}

	if err := h.admin.RemoveSlot(c.Request.Context(), slot.ID(id)); err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.RemoveSlotResponse{Ok: true})
}
