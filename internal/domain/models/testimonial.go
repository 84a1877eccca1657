package models

import (
	"time"

	"github.com/google/uuid"
)

type Testimonial struct {
	ID         uuid.UUID `json:"id"`
	ClientName string    `json:"clientName"`
	Role       string    `json:"role"`
	Content    string    `json:"content"`
	Image      string    `json:"image"`
	Date       string    `json:"date"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

type TestimonialFilter struct {
	Search string
	Limit  int
}
