package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/zaheerabbaspac-hue/PAC/internal/modules/navigation/dto"
	"github.com/zaheerabbaspac-hue/PAC/internal/modules/navigation/service"
	"github.com/zaheerabbaspac-hue/PAC/pkg/response"
	"github.com/zaheerabbaspac-hue/PAC/pkg/validator"
)

type NavigationHandler struct {
	service service.NavigatorService
}

func NewNavigationHandler(service service.NavigatorService) *NavigationHandler {
	return &NavigationHandler{service: service}
}

func (h *NavigationHandler) State(c *gin.Context) {
	userID, err := response.GetUserID(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, h.service.State(c.Request.Context(), userID))
}

func (h *NavigationHandler) Event(c *gin.Context) {
	userID, err := response.GetUserID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	var req dto.EventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": validator.FormatValidationError(err)})
		return
	}

	state, err := h.service.Event(c.Request.Context(), userID, req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, state)
}
