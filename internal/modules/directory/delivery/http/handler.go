package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/zaheerabbaspac-hue/PAC/internal/modules/directory/dto"
	directory "github.com/zaheerabbaspac-hue/PAC/internal/modules/directory/service"
	userRepo "github.com/zaheerabbaspac-hue/PAC/internal/modules/user/repository"
	"github.com/zaheerabbaspac-hue/PAC/pkg/response"
)

type DirectoryHandler struct {
	service  directory.DirectoryService
	userRepo userRepo.UserRepository
}

func NewDirectoryHandler(service directory.DirectoryService, users userRepo.UserRepository) *DirectoryHandler {
	return &DirectoryHandler{service: service, userRepo: users}
}

func (h *DirectoryHandler) ListClasses(c *gin.Context) {
	classes, err := h.service.ListClasses(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, classes)
}

func (h *DirectoryHandler) CreateClass(c *gin.Context) {
	var req dto.CreateClassRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// Empty names are a silent no-op, matching the store semantics.
	if err := h.service.AddClass(c.Request.Context(), req.Name, req.Code); err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, "class saved")
}

func (h *DirectoryHandler) CreateSection(c *gin.Context) {
	classID, err := uuid.Parse(c.Param("class_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid uuid format"})
		return
	}

	var req dto.CreateSectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.service.AddSection(c.Request.Context(), classID, req.Name, req.Code); err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, "section saved")
}

func (h *DirectoryHandler) DeleteClass(c *gin.Context) {
	classID, err := uuid.Parse(c.Param("class_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid uuid format"})
		return
	}

	if err := h.service.DeleteClass(c.Request.Context(), classID); err != nil {
		response.Error(c, err)
		return
	}
	response.Message(c, "class deleted")
}

func (h *DirectoryHandler) DeleteSection(c *gin.Context) {
	classID, err := uuid.Parse(c.Param("class_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid uuid format"})
		return
	}
	sectionID, err := uuid.Parse(c.Param("section_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid uuid format"})
		return
	}

	if err := h.service.DeleteSection(c.Request.Context(), classID, sectionID); err != nil {
		response.Error(c, err)
		return
	}
	response.Message(c, "section deleted")
}

func (h *DirectoryHandler) ListOptions(c *gin.Context) {
	options, err := h.service.ListOptions(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, options)
}

// GetRoster returns the students addressed by a class selector value
// (?selector=Class 10-A).
func (h *DirectoryHandler) GetRoster(c *gin.Context) {
	selector := c.Query("selector")
	if selector == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "selector is required"})
		return
	}

	options, err := h.service.ListOptions(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	roster, err := h.userRepo.ListStudentsByClass(c.Request.Context(), "")
	if err != nil {
		response.Error(c, err)
		return
	}

	students := directory.FilterRoster(roster, selector, options)
	if students == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "unknown class selector"})
		return
	}
	response.OK(c, dto.RosterResponse{Selector: selector, Students: students})
}
