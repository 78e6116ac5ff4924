package models

import (
	"time"

	"gorm.io/datatypes"
)

type Product struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Title       string `gorm:"size:255" json:"title"`
	Slug        string `gorm:"uniqueIndex;size:255" json:"slug"`
	Reference   string `gorm:"size:100" json:"reference"`
	Category    string `gorm:"size:100;index" json:"category"`
	Subcategory string `gorm:"size:100" json:"subcategory"`

	ShortDescription string `gorm:"type:text" json:"short_description"`
	LongDescription  string `gorm:"type:text" json:"long_description"`
	ImageURL         string `gorm:"column:image_url;size:512" json:"image_url"`

	// Array-valued fields stored as serialized JSON text. Malformed content
	// reads back as an empty array, not an error (utils.ParseArrayField).
	Images          datatypes.JSON `json:"-"`
	Specifications  datatypes.JSON `json:"-"`
	Benefits        datatypes.JSON `json:"-"`
	Downloads       datatypes.JSON `json:"-"`
	Compatibility   datatypes.JSON `json:"-"`
	RelatedProducts datatypes.JSON `gorm:"column:related_products" json:"-"`

	IsNew    bool `gorm:"column:is_new;index" json:"is_new"`
	Featured bool `json:"featured"`
	IsActive bool `gorm:"column:is_active;index" json:"is_active"`

	MetaTitle       string `gorm:"size:255" json:"meta_title"`
	MetaDescription string `gorm:"size:512" json:"meta_description"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Specification is one row of a product's technical table.
type Specification struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// Download is a linked datasheet/manual entry.
type Download struct {
	Label string `json:"label"`
	URL   string `json:"url"`
}
