package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/zaheerabbaspac-hue/PAC/internal/entity"
	"github.com/zaheerabbaspac-hue/PAC/internal/modules/notice/dto"
	"github.com/zaheerabbaspac-hue/PAC/internal/modules/notice/service"
	"github.com/zaheerabbaspac-hue/PAC/pkg/response"
	"github.com/zaheerabbaspac-hue/PAC/pkg/validator"
)

type NoticeHandler struct {
	service service.NoticeService
}

func NewNoticeHandler(service service.NoticeService) *NoticeHandler {
	return &NoticeHandler{service: service}
}

func (h *NoticeHandler) Create(c *gin.Context) {
	userID, err := response.GetUserID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	var req dto.CreateNoticeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": validator.FormatValidationError(err)})
		return
	}

	notice, err := h.service.Create(c.Request.Context(), userID, req)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"data": notice})
}

// List serves the notices visible to the caller's role.
func (h *NoticeHandler) List(c *gin.Context) {
	profileVal, exists := c.Get("profile")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "profile not found"})
		return
	}
	profile := profileVal.(*entity.Profile)

	notices, err := h.service.ListForRole(c.Request.Context(), profile.Role)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, notices)
}

func (h *NoticeHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("notice_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid uuid format"})
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.Message(c, "notice deleted")
}
