package dto

import "art_studio/internal/domain/models"

type ReorderRequest struct {
	Items []models.OrderUpdate `json:"items" validate:"required,min=1,dive"`
}
