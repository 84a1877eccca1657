package models

import (
	"time"

	"github.com/google/uuid"
)

// Artwork is a portfolio piece shown in the public gallery.
type Artwork struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Category    string    `json:"category"`
	Images      []string  `json:"images"` // ordered, first one is the cover
	Description string    `json:"description"`
	Medium      string    `json:"medium"`
	Context     string    `json:"context"`
	Date        string    `json:"date"`
	Featured    bool      `json:"featured"`
	Active      bool      `json:"active"`
	Order       int       `json:"order"`
	Price       *float64  `json:"price,omitempty"`
	Currency    string    `json:"currency,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// ArtworkFilter narrows artwork listings.
type ArtworkFilter struct {
	Search          string
	Category        string
	Featured        *bool
	IncludeInactive bool
	Limit           int
}
