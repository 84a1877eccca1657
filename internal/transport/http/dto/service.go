package dto

import "art_studio/internal/domain/models"

type ServiceInput struct {
	Title       *string `json:"title" validate:"omitempty,min=1,max=255"`
	Description *string `json:"description"`
	PriceStart  *string `json:"priceStart" validate:"omitempty,max=50"`
	Currency    *string `json:"currency" validate:"omitempty,max=10"`
	Image       *string `json:"image"`
	Active      *bool   `json:"active"`
	Order       *int    `json:"order" validate:"omitempty,min=0"`
}

func (in ServiceInput) Apply(s *models.Service) {
	setString(&s.Title, in.Title)
	setString(&s.Description, in.Description)
	setString(&s.PriceStart, in.PriceStart)
	setString(&s.Currency, in.Currency)
	setString(&s.Image, in.Image)
	setBool(&s.Active, in.Active)
	setInt(&s.Order, in.Order)
}
