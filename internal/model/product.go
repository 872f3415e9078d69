package model

import "fmt"

// Category identifies one of the fixed storefront departments.
type Category string

// The closed set of departments. CategoryAll is a browse filter only and is
// never a valid product category.
const (
	CategoryAll      Category = "Tout"
	CategoryRad      Category = "Rad"
	CategorySandal   Category = "Sandal"
	CategoryCheve    Category = "Cheve"
	CategoryBijou    Category = "Bijou"
	CategoryKosmetik Category = "Kosmetik"
	CategoryElektrik Category = "Elektrik"
)

// Categories returns the product departments in display order.
func Categories() []Category {
	return []Category{
		CategoryRad,
		CategorySandal,
		CategoryCheve,
		CategoryBijou,
		CategoryKosmetik,
		CategoryElektrik,
	}
}

// Valid reports whether c is a real product department.
func (c Category) Valid() bool {
	switch c {
	case CategoryRad, CategorySandal, CategoryCheve, CategoryBijou, CategoryKosmetik, CategoryElektrik:
		return true
	}
	return false
}

// Product represents an item in the storefront catalogue.
type Product struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Category    Category `json:"category"`
	Price       float64  `json:"price"`
	Image       string   `json:"image"`
	Description string   `json:"description"`
	Seller      string   `json:"seller,omitempty"`
}

// ProductDraft carries the editable fields of a product before it is
// committed to the catalogue. Build validates the draft and fills defaults,
// producing a fully populated Product.
type ProductDraft struct {
	Name        string   `json:"name"`
	Category    Category `json:"category"`
	Price       float64  `json:"price"`
	Image       string   `json:"image"`
	Description string   `json:"description"`
	Seller      string   `json:"seller"`
}

// Build validates the draft and returns a complete product with the given
// identity. An omitted seller falls back to defaultSeller; an omitted image
// falls back to a generated placeholder URI seeded by the identity.
func (d ProductDraft) Build(id, defaultSeller string) (Product, error) {
	if d.Name == "" {
		return Product{}, NewDomainError(ErrCodeMissingField, "product name is required")
	}
	if d.Description == "" {
		return Product{}, NewDomainError(ErrCodeMissingField, "product description is required")
	}
	if !d.Category.Valid() {
		return Product{}, ErrInvalidCategory
	}
	if d.Price < 0 {
		return Product{}, ErrInvalidPrice
	}

	seller := d.Seller
	if seller == "" {
		seller = defaultSeller
	}

	image := d.Image
	if image == "" {
		image = fmt.Sprintf("https://picsum.photos/seed/item-%s/600/800", id)
	}

	return Product{
		ID:          id,
		Name:        d.Name,
		Category:    d.Category,
		Price:       d.Price,
		Image:       image,
		Description: d.Description,
		Seller:      seller,
	}, nil
}
