package dto

import "art_studio/internal/domain/models"

type TestimonialInput struct {
	ClientName *string `json:"clientName" validate:"omitempty,min=1,max=255"`
	Role       *string `json:"role" validate:"omitempty,max=255"`
	Content    *string `json:"content" validate:"omitempty,min=1"`
	Image      *string `json:"image"`
	Date       *string `json:"date" validate:"omitempty,max=50"`
}

func (in TestimonialInput) Apply(t *models.Testimonial) {
	setString(&t.ClientName, in.ClientName)
	setString(&t.Role, in.Role)
	setString(&t.Content, in.Content)
	setString(&t.Image, in.Image)
	setString(&t.Date, in.Date)
}
