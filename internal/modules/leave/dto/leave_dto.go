package dto

type ApplyLeaveRequest struct {
	FromDate string `json:"from_date" binding:"required,datetime=2006-01-02"`
	ToDate   string `json:"to_date" binding:"required,datetime=2006-01-02"`
	Reason   string `json:"reason" binding:"required,max=500"`
}
