package model

import "fmt"

// SlotsPerCategory is the fixed number of display positions in every
// department gallery.
const SlotsPerCategory = 30

// Placeholder display values shown in empty gallery positions.
const (
	PlaceholderName        = "Disponib Talè"
	PlaceholderDescription = "Mèt boutik la ap prepare yon bèl atik pou ou nan fenèt sa a."
)

// Slot is one display position in a department gallery: either a real
// product or a synthetic placeholder. Slots are derived on demand and never
// persisted.
type Slot struct {
	Product
	IsPlaceholder bool `json:"isPlaceholder,omitempty"`
}

// NewPlaceholderSlot returns the placeholder occupying the given position of
// a department gallery. Placeholder identities live in their own namespace;
// real product identities are numeric strings, so the two can never collide.
func NewPlaceholderSlot(category Category, index int) Slot {
	return Slot{
		Product: Product{
			ID:          fmt.Sprintf("placeholder-%s-%d", category, index),
			Name:        PlaceholderName,
			Category:    category,
			Price:       0,
			Image:       "",
			Description: PlaceholderDescription,
		},
		IsPlaceholder: true,
	}
}
