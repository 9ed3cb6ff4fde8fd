package models

import "fmt"

// Listing is a marketplace item.
type Listing struct {
	ID          int64   `json:"id,omitempty"`
	Title       string  `json:"title" validate:"required"`
	Description string  `json:"description"`
	Price       float64 `json:"price" validate:"gte=0"`
	CreatedBy   int64   `json:"createdBy" validate:"gt=0"`
}

func (l Listing) String() string {
	return fmt.Sprintf("%s - %.2f (by #%d) %s", l.Title, l.Price, l.CreatedBy, l.Description)
}
