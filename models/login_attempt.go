package models

import "time"

// LoginAttempt is an append-only log row, one per login call. Rows are never
// updated or deleted here; there is no retention policy.
type LoginAttempt struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	IPAddress   string    `gorm:"column:ip_address;size:64;index" json:"ip_address"`
	Username    string    `gorm:"size:150;index" json:"username,omitempty"`
	Success     bool      `json:"success"`
	AttemptedAt time.Time `gorm:"column:attempted_at;index" json:"attempted_at"`
}
