package dto

import (
	"time"

	"github.com/zaheerabbaspac-hue/PAC/internal/entity"
)

type RegisterRequest struct {
	Name       string `json:"name" binding:"required,min=2,max=100"`
	Email      string `json:"email" binding:"required,email"`
	Password   string `json:"password" binding:"required,min=8,max=72"`
	Role       string `json:"role" binding:"required"`
	Class      string `json:"class"`
	Section    string `json:"section"`
	Subject    string `json:"subject"`
	ParentName string `json:"parent_name"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// AuthResponse carries everything the client needs to land: the API token,
// the resolved profile (nil when none is provisioned yet) and the view the
// role maps to. SearchToken is a Meilisearch tenant token scoped to the role;
// empty when search is unavailable.
type AuthResponse struct {
	Token       string          `json:"token"`
	ExpiresAt   time.Time       `json:"expires_at"`
	Profile     *entity.Profile `json:"profile,omitempty"`
	HomeView    string          `json:"home_view"`
	SearchToken string          `json:"search_token,omitempty"`
}
