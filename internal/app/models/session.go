package models

import "time"

type Session struct {
	SessionID string
	UserID    string
	ProfileID string
	Email     string
	Role      string
	ExpiresAt time.Time
}
