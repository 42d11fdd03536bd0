package dto

type CreateSystemUserRequest struct {
	Name     string `json:"name" binding:"required,min=2,max=100"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8,max=72"`
	Role     string `json:"role" binding:"required,oneof=admin teacher"`
	Subject  string `json:"subject"`
}

type SetStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=approved rejected"`
}

// AnalyticsResponse is the dashboard headcount summary.
type AnalyticsResponse struct {
	Students int64 `json:"students"`
	Teachers int64 `json:"teachers"`
	Parents  int64 `json:"parents"`
	Admins   int64 `json:"admins"`
	Classes  int64 `json:"classes"`
	Notices  int64 `json:"notices"`
	Pending  int64 `json:"pending"`
}
