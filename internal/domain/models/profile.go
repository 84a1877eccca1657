package models

import (
	"time"

	"github.com/google/uuid"
)

// Profile is the artist profile. Exactly one record is active at a time.
type Profile struct {
	ID          uuid.UUID   `json:"id"`
	Name        string      `json:"name"`
	Title       string      `json:"title"`
	Bio         string      `json:"bio"`
	Email       string      `json:"email"`
	Phone       string      `json:"phone"`
	Location    string      `json:"location"`
	SocialLinks SocialLinks `json:"socialLinks"`
	HomeImage   string      `json:"homeImage"`
	AboutImage  string      `json:"aboutImage"`
	IsActive    bool        `json:"isActive"`
	CreatedAt   time.Time   `json:"createdAt"`
	UpdatedAt   time.Time   `json:"updatedAt"`
}

type SocialLinks struct {
	Instagram string `json:"instagram"`
	Facebook  string `json:"facebook"`
	Youtube   string `json:"youtube"`
	Pinterest string `json:"pinterest"`
	Whatsapp  string `json:"whatsapp"`
	Website   string `json:"website"`
}
