package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/zaheerabbaspac-hue/PAC/internal/modules/attendance/dto"
	"github.com/zaheerabbaspac-hue/PAC/internal/modules/attendance/service"
	"github.com/zaheerabbaspac-hue/PAC/pkg/response"
	"github.com/zaheerabbaspac-hue/PAC/pkg/validator"
)

type AttendanceHandler struct {
	service service.AttendanceService
}

func NewAttendanceHandler(service service.AttendanceService) *AttendanceHandler {
	return &AttendanceHandler{service: service}
}

// GetDaySheet serves the marking sheet (?selector=Class 10-A&date=2026-08-29).
func (h *AttendanceHandler) GetDaySheet(c *gin.Context) {
	selector := c.Query("selector")
	date := c.Query("date")
	if selector == "" || date == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "selector and date are required"})
		return
	}

	sheet, err := h.service.BuildDaySheet(c.Request.Context(), selector, date)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, sheet)
}

func (h *AttendanceHandler) SaveDay(c *gin.Context) {
	userID, err := response.GetUserID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	var req dto.SaveAttendanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": validator.FormatValidationError(err)})
		return
	}

	if err := h.service.SaveDay(c.Request.Context(), userID, req); err != nil {
		response.Error(c, err)
		return
	}
	response.Message(c, "attendance saved")
}

// MyHistory returns the calling student's own attendance records.
func (h *AttendanceHandler) MyHistory(c *gin.Context) {
	userID, err := response.GetUserID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	records, err := h.service.StudentHistory(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, records)
}

// StudentHistory returns a named student's records (teacher/admin view).
func (h *AttendanceHandler) StudentHistory(c *gin.Context) {
	studentID, err := uuid.Parse(c.Param("student_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid uuid format"})
		return
	}

	records, err := h.service.StudentHistory(c.Request.Context(), studentID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, records)
}
