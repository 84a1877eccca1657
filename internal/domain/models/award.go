package models

import (
	"time"

	"github.com/google/uuid"
)

type Award struct {
	ID           uuid.UUID `json:"id"`
	Title        string    `json:"title"`
	Organization string    `json:"organization"`
	Year         int       `json:"year"`
	Description  string    `json:"description"`
	Category     string    `json:"category"`
	Image        string    `json:"image"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

type AwardFilter struct {
	Search string
	Year   int
	Limit  int
}
