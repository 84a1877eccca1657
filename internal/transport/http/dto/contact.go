package dto

import "art_studio/internal/domain/models"

type ContactInput struct {
	Name      string `json:"name" validate:"required,max=255"`
	Email     string `json:"email" validate:"required,email,max=255"`
	Phone     string `json:"phone" validate:"required,max=50"`
	Service   string `json:"service" validate:"required,max=255"`
	EventDate string `json:"eventDate" validate:"required,max=50"`
	Message   string `json:"message" validate:"required"`
}

func (in ContactInput) ToModel() models.ContactRequest {
	return models.ContactRequest{
		Name:      in.Name,
		Email:     in.Email,
		Phone:     in.Phone,
		Service:   in.Service,
		EventDate: in.EventDate,
		Message:   in.Message,
	}
}

type ContactStatusInput struct {
	ID     string `json:"id" validate:"required,uuid"`
	Status string `json:"status" validate:"required,oneof=new read archived"`
}
