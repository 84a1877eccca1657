package models

import (
	"time"

	"github.com/google/uuid"
)

// Service is an offering of the studio (bridal mehndi, workshops, ...).
type Service struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	PriceStart  string    `json:"priceStart"`
	Currency    string    `json:"currency"`
	Image       string    `json:"image"`
	Active      bool      `json:"active"`
	Order       int       `json:"order"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type ServiceFilter struct {
	Search          string
	IncludeInactive bool
	Limit           int
}
