package dto

import "art_studio/internal/domain/models"

// ArtworkInput carries a create or update payload. Nil fields are left
// untouched on update.
type ArtworkInput struct {
	Title       *string   `json:"title" validate:"omitempty,min=1,max=255"`
	Category    *string   `json:"category" validate:"omitempty,max=100"`
	Images      *[]string `json:"images" validate:"omitempty,min=1,dive,required"`
	Description *string   `json:"description"`
	Medium      *string   `json:"medium" validate:"omitempty,max=255"`
	Context     *string   `json:"context"`
	Date        *string   `json:"date" validate:"omitempty,max=50"`
	Featured    *bool     `json:"featured"`
	Active      *bool     `json:"active"`
	Order       *int      `json:"order" validate:"omitempty,min=0"`
	Price       *float64  `json:"price" validate:"omitempty,min=0"`
	Currency    *string   `json:"currency" validate:"omitempty,max=10"`
}

// Apply copies every set field onto a.
func (in ArtworkInput) Apply(a *models.Artwork) {
	setString(&a.Title, in.Title)
	setString(&a.Category, in.Category)
	if in.Images != nil {
		a.Images = append([]string(nil), (*in.Images)...)
	}
	setString(&a.Description, in.Description)
	setString(&a.Medium, in.Medium)
	setString(&a.Context, in.Context)
	setString(&a.Date, in.Date)
	setBool(&a.Featured, in.Featured)
	setBool(&a.Active, in.Active)
	setInt(&a.Order, in.Order)
	if in.Price != nil {
		p := *in.Price
		a.Price = &p
	}
	setString(&a.Currency, in.Currency)
}

type ArtworkQuery struct {
	ID       string
	Search   string
	Category string
	Limit    int
	Featured *bool
	All      bool
}

func setString(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}

func setBool(dst *bool, v *bool) {
	if v != nil {
		*dst = *v
	}
}

func setInt(dst *int, v *int) {
	if v != nil {
		*dst = *v
	}
}
