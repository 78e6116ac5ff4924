package models

import "time"

type SiteSetting struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	CompanyName  string    `gorm:"size:255" json:"company_name"`
	Tagline      string    `gorm:"size:512" json:"tagline"`
	Email        string    `gorm:"size:150" json:"email"`
	Phone        string    `gorm:"size:50" json:"phone"`
	Address      string    `gorm:"type:text" json:"address"`
	FacebookURL  string    `gorm:"column:facebook_url;size:512" json:"facebook_url"`
	InstagramURL string    `gorm:"column:instagram_url;size:512" json:"instagram_url"`
	YoutubeURL   string    `gorm:"column:youtube_url;size:512" json:"youtube_url"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
