package dto

type UpdateProfileRequest struct {
	Name       string `json:"name" binding:"omitempty,min=2,max=100"`
	Class      string `json:"class" binding:"omitempty,max=50"`
	Section    string `json:"section" binding:"omitempty,max=50"`
	Subject    string `json:"subject" binding:"omitempty,max=100"`
	ParentName string `json:"parent_name" binding:"omitempty,max=100"`
}
