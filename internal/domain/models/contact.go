package models

import (
	"time"

	"github.com/google/uuid"
)

type ContactStatus string

const (
	ContactStatusNew      ContactStatus = "new"
	ContactStatusRead     ContactStatus = "read"
	ContactStatusArchived ContactStatus = "archived"
)

func (s ContactStatus) Valid() bool {
	switch s {
	case ContactStatusNew, ContactStatusRead, ContactStatusArchived:
		return true
	}
	return false
}

// ContactRequest is a visitor enquiry from the public contact form.
type ContactRequest struct {
	ID        uuid.UUID     `json:"id"`
	Name      string        `json:"name"`
	Email     string        `json:"email"`
	Phone     string        `json:"phone"`
	Service   string        `json:"service"`
	EventDate string        `json:"eventDate"`
	Message   string        `json:"message"`
	Status    ContactStatus `json:"status"`
	CreatedAt time.Time     `json:"timestamp"`
}

type ContactFilter struct {
	Status ContactStatus
	Search string
	Limit  int
}
