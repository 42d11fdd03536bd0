package dto

type CreateHomeworkRequest struct {
	Selector    string `json:"selector" binding:"required"`
	Title       string `json:"title" binding:"required,max=200"`
	Subject     string `json:"subject" binding:"omitempty,max=100"`
	Description string `json:"description"`
	DueDate     string `json:"due_date" binding:"omitempty,datetime=2006-01-02"`
}
