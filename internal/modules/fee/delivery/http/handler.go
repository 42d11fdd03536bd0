package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/zaheerabbaspac-hue/PAC/internal/modules/fee/dto"
	"github.com/zaheerabbaspac-hue/PAC/internal/modules/fee/service"
	"github.com/zaheerabbaspac-hue/PAC/pkg/response"
	"github.com/zaheerabbaspac-hue/PAC/pkg/validator"
)

type FeeHandler struct {
	service service.FeeService
}

func NewFeeHandler(service service.FeeService) *FeeHandler {
	return &FeeHandler{service: service}
}

func (h *FeeHandler) Create(c *gin.Context) {
	var req dto.CreateFeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": validator.FormatValidationError(err)})
		return
	}

	fee, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"data": fee})
}

func (h *FeeHandler) ListAll(c *gin.Context) {
	fees, err := h.service.ListAll(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, fees)
}

// ListMine serves the calling student's own fee records.
func (h *FeeHandler) ListMine(c *gin.Context) {
	userID, err := response.GetUserID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	fees, err := h.service.ListByStudent(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, fees)
}

func (h *FeeHandler) ListByStudent(c *gin.Context) {
	studentID, err := uuid.Parse(c.Param("student_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid uuid format"})
		return
	}

	fees, err := h.service.ListByStudent(c.Request.Context(), studentID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, fees)
}

func (h *FeeHandler) MarkPaid(c *gin.Context) {
	id, err := uuid.Parse(c.Param("fee_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid uuid format"})
		return
	}

	if err := h.service.MarkPaid(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.Message(c, "fee marked paid")
}
