package dto

type EventRequest struct {
	Event string `json:"event" binding:"required,oneof=splashElapsed advanceOnboarding skipOnboarding select logout"`
	View  string `json:"view"`
}

// StateResponse mirrors what the client shell needs to render: the current
// view, its chrome flags and whether a logout grace window is open.
type StateResponse struct {
	View       string `json:"view"`
	Namespace  string `json:"namespace"`
	NavBar     string `json:"nav_bar"`
	FullScreen bool   `json:"full_screen"`
	LoggingOut bool   `json:"logging_out"`
}
