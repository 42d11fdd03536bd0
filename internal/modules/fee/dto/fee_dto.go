package dto

type CreateFeeRequest struct {
	StudentID string `json:"student_id" binding:"required,uuid"`
	Term      string `json:"term" binding:"required,max=50"`
	Amount    int64  `json:"amount" binding:"required,min=1"`
	DueDate   string `json:"due_date" binding:"required,datetime=2006-01-02"`
}
