package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePetType(t *testing.T) {
	tests := []struct {
		in   string
		want PetType
		ok   bool
	}{
		{"DOG", PetDog, true},
		{"dog", PetDog, true},
		{" Cat ", PetCat, true},
		{"bIrD", PetBird, true},
		{"other", PetOther, true},
		{"fish", "", false},
		{"", "", false},
	}
	for _, tt := range tests {
		got, err := ParsePetType(tt.in)
		if tt.ok {
			require.NoError(t, err, "input %q", tt.in)
			assert.Equal(t, tt.want, got)
		} else {
			assert.Error(t, err, "input %q", tt.in)
		}
	}
}

func TestParseProductStatus(t *testing.T) {
	tests := []struct {
		in   string
		want ProductStatus
		ok   bool
	}{
		{"AVAILABLE", StatusAvailable, true},
		{"available", StatusAvailable, true},
		{" pending ", StatusPending, true},
		{"Adopted", StatusAdopted, true},
		{"SOLD", "", false},
		{"", "", false},
	}
	for _, tt := range tests {
		got, err := ParseProductStatus(tt.in)
		if tt.ok {
			require.NoError(t, err, "input %q", tt.in)
			assert.Equal(t, tt.want, got)
		} else {
			assert.Error(t, err, "input %q", tt.in)
		}
	}
}

func TestProductInfoSnapshot(t *testing.T) {
	p := Product{
		Code:       "P007",
		Name:       "Rex",
		Type:       PetDog,
		Breed:      "Husky",
		PriceCents: 125050,
		ImagePath:  "/product-images/P007.jpg",
	}
	info := p.Info()
	assert.Equal(t, "P007", info.Code)
	assert.Equal(t, int64(125050), info.PriceCents)
	assert.Equal(t, 1250.50, info.Price)

	// The snapshot must be detached: changing the product afterwards does
	// not affect it.
	p.PriceCents = 1
	assert.Equal(t, int64(125050), info.PriceCents)
}
