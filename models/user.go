package models

import (
	"time"
)

const (
	RoleAdmin  = "admin"
	RoleEditor = "editor"
)

type User struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Username     string    `gorm:"uniqueIndex;size:150" json:"username"`
	PasswordHash string    `gorm:"column:password_hash;size:255" json:"-"` // bcrypt hash, never returned in JSON
	Role         string    `gorm:"size:32;default:admin" json:"role"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// PublicUser is the shape returned by the login endpoint; the password hash
// stays inside the auth service.
type PublicUser struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

func (u User) Public() PublicUser {
	return PublicUser{ID: u.ID, Username: u.Username, Role: u.Role}
}
