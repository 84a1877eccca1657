package models

import (
	"fmt"

	"github.com/google/uuid"
)

// OrderUpdate sets the manual sort position of one record.
type OrderUpdate struct {
	ID    string `json:"id" validate:"required,uuid"`
	Order int    `json:"order" validate:"min=0"`
}

// ValidateOrder rejects empty batches, malformed ids and ids listed twice.
func ValidateOrder(updates []OrderUpdate) error {
	if len(updates) == 0 {
		return fmt.Errorf("%w: no items to reorder", ErrValidation)
	}

	seen := make(map[uuid.UUID]struct{}, len(updates))
	for _, u := range updates {
		id, err := uuid.Parse(u.ID)
		if err != nil {
			return fmt.Errorf("%w: invalid id %q", ErrValidation, u.ID)
		}
		if u.Order < 0 {
			return fmt.Errorf("%w: order must not be negative", ErrValidation)
		}
		if _, dup := seen[id]; dup {
			return fmt.Errorf("%w: id %s listed twice", ErrValidation, id)
		}
		seen[id] = struct{}{}
	}

	return nil
}
