package models

import (
	"spiderhome-backend/utils"
)

// ProductPayload is the request body for product create/update. Missing
// optional fields coerce to their zero values ("" / [] / false).
type ProductPayload struct {
	Title            string          `json:"title"`
	Slug             string          `json:"slug"`
	Reference        string          `json:"reference"`
	Category         string          `json:"category"`
	Subcategory      string          `json:"subcategory"`
	ShortDescription string          `json:"short_description"`
	LongDescription  string          `json:"long_description"`
	ImageURL         string          `json:"image_url"`
	Images           []string        `json:"images"`
	Specifications   []Specification `json:"specifications"`
	Benefits         []string        `json:"benefits"`
	Downloads        []Download      `json:"downloads"`
	Compatibility    []string        `json:"compatibility"`
	RelatedProducts  []uint          `json:"related_products"`
	IsNew            bool            `json:"is_new"`
	Featured         bool            `json:"featured"`
	IsActive         bool            `json:"is_active"`
	MetaTitle        string          `json:"meta_title"`
	MetaDescription  string          `json:"meta_description"`
}

// Apply copies the payload onto a product row, serializing array fields. The
// slug is left to the caller (it goes through the uniqueness resolver).
func (p ProductPayload) Apply(product *Product) {
	product.Title = p.Title
	product.Reference = p.Reference
	product.Category = p.Category
	product.Subcategory = p.Subcategory
	product.ShortDescription = p.ShortDescription
	product.LongDescription = p.LongDescription
	product.ImageURL = p.ImageURL
	product.Images = utils.MarshalArrayField(p.Images)
	product.Specifications = utils.MarshalArrayField(p.Specifications)
	product.Benefits = utils.MarshalArrayField(p.Benefits)
	product.Downloads = utils.MarshalArrayField(p.Downloads)
	product.Compatibility = utils.MarshalArrayField(p.Compatibility)
	product.RelatedProducts = utils.MarshalArrayField(p.RelatedProducts)
	product.IsNew = p.IsNew
	product.Featured = p.Featured
	product.IsActive = p.IsActive
	product.MetaTitle = p.MetaTitle
	product.MetaDescription = p.MetaDescription
}

// ProductView is the response shape: the stored row with its array columns
// parsed back into real arrays.
type ProductView struct {
	Product
	Images          []string        `json:"images"`
	Specifications  []Specification `json:"specifications"`
	Benefits        []string        `json:"benefits"`
	Downloads       []Download      `json:"downloads"`
	Compatibility   []string        `json:"compatibility"`
	RelatedProducts []uint          `json:"related_products"`
}

func NewProductView(p Product) ProductView {
	return ProductView{
		Product:         p,
		Images:          utils.ParseArrayField[string](p.Images),
		Specifications:  utils.ParseArrayField[Specification](p.Specifications),
		Benefits:        utils.ParseArrayField[string](p.Benefits),
		Downloads:       utils.ParseArrayField[Download](p.Downloads),
		Compatibility:   utils.ParseArrayField[string](p.Compatibility),
		RelatedProducts: utils.ParseArrayField[uint](p.RelatedProducts),
	}
}

func NewProductViews(products []Product) []ProductView {
	views := make([]ProductView, 0, len(products))
	for _, p := range products {
		views = append(views, NewProductView(p))
	}
	return views
}
