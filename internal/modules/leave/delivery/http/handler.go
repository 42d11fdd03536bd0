package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/zaheerabbaspac-hue/PAC/internal/modules/leave/dto"
	"github.com/zaheerabbaspac-hue/PAC/internal/modules/leave/service"
	"github.com/zaheerabbaspac-hue/PAC/pkg/response"
	"github.com/zaheerabbaspac-hue/PAC/pkg/validator"
)

type LeaveHandler struct {
	service service.LeaveService
}

func NewLeaveHandler(service service.LeaveService) *LeaveHandler {
	return &LeaveHandler{service: service}
}

func (h *LeaveHandler) Apply(c *gin.Context) {
	userID, err := response.GetUserID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	var req dto.ApplyLeaveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": validator.FormatValidationError(err)})
		return
	}

	leave, err := h.service.Apply(c.Request.Context(), userID, req)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"data": leave})
}

func (h *LeaveHandler) ListMine(c *gin.Context) {
	userID, err := response.GetUserID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	leaves, err := h.service.ListMine(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, leaves)
}

func (h *LeaveHandler) ListPending(c *gin.Context) {
	leaves, err := h.service.ListPending(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, leaves)
}

func (h *LeaveHandler) Approve(c *gin.Context) { h.decide(c, true) }
func (h *LeaveHandler) Reject(c *gin.Context)  { h.decide(c, false) }

func (h *LeaveHandler) decide(c *gin.Context, approve bool) {
	id, err := uuid.Parse(c.Param("leave_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid uuid format"})
		return
	}

	if err := h.service.Decide(c.Request.Context(), id, approve); err != nil {
		response.Error(c, err)
		return
	}
	response.Message(c, "leave request updated")
}
