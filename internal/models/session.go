package model

import (
	"time"
)

// Session est une session authentifiée (token opaque porté en header
// Authorization). Soft delete à la déconnexion ou à l'expiration.
type Session struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
	IsActive  bool      `json:"isActive"`
	IP        string    `json:"ipAddress,omitempty"`
	UserAgent string    `json:"userAgent,omitempty"`
	DateFields
}
