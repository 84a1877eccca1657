package dto

import "art_studio/internal/domain/models"

type AwardInput struct {
	Title        *string `json:"title" validate:"omitempty,min=1,max=255"`
	Organization *string `json:"organization" validate:"omitempty,max=255"`
	Year         *int    `json:"year" validate:"omitempty,min=1900,max=2100"`
	Description  *string `json:"description"`
	Category     *string `json:"category" validate:"omitempty,max=100"`
	Image        *string `json:"image"`
}

func (in AwardInput) Apply(a *models.Award) {
	setString(&a.Title, in.Title)
	setString(&a.Organization, in.Organization)
	setInt(&a.Year, in.Year)
	setString(&a.Description, in.Description)
	setString(&a.Category, in.Category)
	setString(&a.Image, in.Image)
}
