package dto

import "art_studio/internal/domain/models"

type ProfileInput struct {
	Name        *string             `json:"name" validate:"omitempty,max=255"`
	Title       *string             `json:"title" validate:"omitempty,max=255"`
	Bio         *string             `json:"bio"`
	Email       *string             `json:"email" validate:"omitempty,email"`
	Phone       *string             `json:"phone" validate:"omitempty,max=50"`
	Location    *string             `json:"location" validate:"omitempty,max=255"`
	SocialLinks *models.SocialLinks `json:"socialLinks"`
	HomeImage   *string             `json:"homeImage"`
	AboutImage  *string             `json:"aboutImage"`
}

func (in ProfileInput) Apply(p *models.Profile) {
	setString(&p.Name, in.Name)
	setString(&p.Title, in.Title)
	setString(&p.Bio, in.Bio)
	setString(&p.Email, in.Email)
	setString(&p.Phone, in.Phone)
	setString(&p.Location, in.Location)
	if in.SocialLinks != nil {
		p.SocialLinks = *in.SocialLinks
	}
	setString(&p.HomeImage, in.HomeImage)
	setString(&p.AboutImage, in.AboutImage)
}
