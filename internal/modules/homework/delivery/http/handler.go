package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/zaheerabbaspac-hue/PAC/internal/entity"
	"github.com/zaheerabbaspac-hue/PAC/internal/modules/homework/dto"
	"github.com/zaheerabbaspac-hue/PAC/internal/modules/homework/service"
	"github.com/zaheerabbaspac-hue/PAC/pkg/response"
	"github.com/zaheerabbaspac-hue/PAC/pkg/validator"
)

type HomeworkHandler struct {
	service service.HomeworkService
}

func NewHomeworkHandler(service service.HomeworkService) *HomeworkHandler {
	return &HomeworkHandler{service: service}
}

func (h *HomeworkHandler) Create(c *gin.Context) {
	userID, err := response.GetUserID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	var req dto.CreateHomeworkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": validator.FormatValidationError(err)})
		return
	}

	homework, err := h.service.Create(c.Request.Context(), userID, req)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"data": homework})
}

func (h *HomeworkHandler) ListBySelector(c *gin.Context) {
	selector := c.Query("selector")
	if selector == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "selector is required"})
		return
	}

	homework, err := h.service.ListBySelector(c.Request.Context(), selector)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, homework)
}

// ListMine serves a student their own class's homework; the profile comes
// from the role middleware.
func (h *HomeworkHandler) ListMine(c *gin.Context) {
	profileVal, exists := c.Get("profile")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "profile not found"})
		return
	}
	profile := profileVal.(*entity.Profile)

	homework, err := h.service.ListForStudent(c.Request.Context(), profile)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, homework)
}

func (h *HomeworkHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("homework_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid uuid format"})
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.Message(c, "homework deleted")
}
