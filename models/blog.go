package models

import "time"

const (
	BlogStatusDraft     = "draft"
	BlogStatusPublished = "published"
)

type Blog struct {
	ID          uint       `gorm:"primaryKey" json:"id"`
	Title       string     `gorm:"size:255" json:"title"`
	Slug        string     `gorm:"uniqueIndex;size:255" json:"slug"`
	Excerpt     string     `gorm:"type:text" json:"excerpt"`
	Content     string     `gorm:"type:text" json:"content"`
	ImageURL    string     `gorm:"column:image_url;size:512" json:"image_url"`
	Author      string     `gorm:"size:150" json:"author"`
	Status      string     `gorm:"size:32;default:draft;index" json:"status"`
	PublishedAt *time.Time `gorm:"column:published_at" json:"published_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}
