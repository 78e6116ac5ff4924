package models

import "time"

type Slide struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	Title      string    `gorm:"size:255" json:"title"`
	Subtitle   string    `gorm:"size:512" json:"subtitle"`
	ImageURL   string    `gorm:"column:image_url;size:512" json:"image_url"`
	LinkURL    string    `gorm:"column:link_url;size:512" json:"link_url"`
	OrderIndex int       `gorm:"column:order_index;index" json:"order_index"`
	IsActive   bool      `gorm:"column:is_active" json:"is_active"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
