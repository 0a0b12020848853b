package model

import (
	"fmt"
	"strings"
	"time"
)

// PetType enumerates the kinds of pets the catalog carries.
type PetType string

const (
	PetDog   PetType = "DOG"
	PetCat   PetType = "CAT"
	PetBird  PetType = "BIRD"
	PetOther PetType = "OTHER"
)

// ProductStatus enumerates the adoption lifecycle of a catalog entry.
// AVAILABLE products can be added to carts; ADOPTED is set when an admin
// accepts a reservation referencing the product.
type ProductStatus string

const (
	StatusAvailable ProductStatus = "AVAILABLE"
	StatusPending   ProductStatus = "PENDING"
	StatusAdopted   ProductStatus = "ADOPTED"
)

// ParsePetType normalizes a free-form type string to a PetType. The stored
// value is always the upper-case enum form; unrecognized input is rejected
// so that lowercase/uppercase variants never leak into the database.
func ParsePetType(s string) (PetType, error) {
	switch PetType(strings.ToUpper(strings.TrimSpace(s))) {
	case PetDog:
		return PetDog, nil
	case PetCat:
		return PetCat, nil
	case PetBird:
		return PetBird, nil
	case PetOther:
		return PetOther, nil
	}
	return "", fmt.Errorf("unknown pet type %q", s)
}

// ParseProductStatus normalizes a free-form status string to a
// ProductStatus, rejecting anything outside the enumeration.
func ParseProductStatus(s string) (ProductStatus, error) {
	switch ProductStatus(strings.ToUpper(strings.TrimSpace(s))) {
	case StatusAvailable:
		return StatusAvailable, nil
	case StatusPending:
		return StatusPending, nil
	case StatusAdopted:
		return StatusAdopted, nil
	}
	return "", fmt.Errorf("unknown product status %q", s)
}

// Product represents an adoptable pet record as stored in the `products`
// table. Code is the external identifier used by carts and reservations;
// it is immutable once assigned. Prices are stored in cents and exposed
// as a derived decimal for API responses.
//
// Fields:
//
//	Code        – unique external identifier (e.g. "P042").
//	Name        – display name of the pet.
//	Type        – pet category (DOG, CAT, BIRD, OTHER).
//	Breed       – breed description.
//	Age         – free-form age text ("2 years").
//	Gender      – free-form gender text.
//	Description – longer description shown on the detail page.
//	PriceCents  – adoption fee in cents.
//	Price       – derived decimal fee, populated on load.
//	ImagePath   – serving path of the product image, owned by the file store.
//	Status      – adoption lifecycle state.
//	CreatedAt   – creation timestamp.
type Product struct {
	Code        string        `json:"code"`
	Name        string        `json:"name"`
	Type        PetType       `json:"type"`
	Breed       string        `json:"breed"`
	Age         string        `json:"age"`
	Gender      string        `json:"gender"`
	Description string        `json:"description"`
	PriceCents  int64         `json:"price_cents"`
	Price       float64       `json:"price"`
	ImagePath   string        `json:"image_path"`
	Status      ProductStatus `json:"status"`
	CreatedAt   time.Time     `json:"created_at"`
}

// Info returns the snapshot of the product that carts and reservations
// capture. Later edits to the product do not change snapshots already taken.
func (p *Product) Info() ProductInfo {
	return ProductInfo{
		Code:       p.Code,
		Name:       p.Name,
		Type:       p.Type,
		Breed:      p.Breed,
		PriceCents: p.PriceCents,
		Price:      float64(p.PriceCents) / 100.0,
		ImagePath:  p.ImagePath,
	}
}
