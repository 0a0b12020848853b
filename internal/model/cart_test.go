package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dogInfo() ProductInfo {
	return ProductInfo{Code: "P001", Name: "Bruno", Type: PetDog, Breed: "Beagle", PriceCents: 10000}
}

func catInfo() ProductInfo {
	return ProductInfo{Code: "P002", Name: "Misty", Type: PetCat, Breed: "Siamese", PriceCents: 7550}
}

func TestNewCartIsEmpty(t *testing.T) {
	c := NewCart()
	assert.True(t, c.IsEmpty())
	assert.NotNil(t, c.Lines, "lines must encode as [] not null")
	assert.Equal(t, 0, c.QuantityTotal)
	assert.Equal(t, int64(0), c.AmountCents)
}

func TestCartAddAccumulates(t *testing.T) {
	c := NewCart()
	c.Add(dogInfo(), 2)

	require.Len(t, c.Lines, 1)
	assert.Equal(t, 2, c.QuantityTotal)
	assert.Equal(t, int64(20000), c.AmountCents)
	assert.Equal(t, 200.0, c.AmountTotal)

	// Adding the same code again grows the existing line instead of
	// appending a duplicate.
	c.Add(dogInfo(), 1)
	require.Len(t, c.Lines, 1)
	assert.Equal(t, 3, c.Lines[0].Quantity)
	assert.Equal(t, int64(30000), c.AmountCents)
}

func TestCartUpdateAbsolute(t *testing.T) {
	c := NewCart()
	c.Add(dogInfo(), 2)

	c.Update("P001", 1)
	assert.Equal(t, 1, c.Lines[0].Quantity)
	assert.Equal(t, int64(10000), c.AmountCents)
	assert.Equal(t, 100.0, c.AmountTotal)
}

func TestCartUpdateZeroRemoves(t *testing.T) {
	for _, qty := range []int{0, -1, -100} {
		c := NewCart()
		c.Add(dogInfo(), 2)
		c.Update("P001", qty)
		assert.True(t, c.IsEmpty(), "quantity %d should remove the line", qty)
		assert.Empty(t, c.Lines)
	}
}

func TestCartUpdateUnknownCodeNoop(t *testing.T) {
	c := NewCart()
	c.Add(dogInfo(), 2)
	c.Update("P999", 5)

	require.Len(t, c.Lines, 1)
	assert.Equal(t, 2, c.Lines[0].Quantity)
}

func TestCartAddThenRemoveRestoresState(t *testing.T) {
	c := NewCart()
	c.Add(dogInfo(), 1)
	before := *c

	c.Add(catInfo(), 3)
	c.Remove("P002")

	assert.Equal(t, before.QuantityTotal, c.QuantityTotal)
	assert.Equal(t, before.AmountCents, c.AmountCents)
	require.Len(t, c.Lines, 1)
	assert.Equal(t, "P001", c.Lines[0].Product.Code)
}

func TestCartRemoveUnknownCodeNoop(t *testing.T) {
	c := NewCart()
	c.Add(dogInfo(), 1)
	c.Remove("P999")

	require.Len(t, c.Lines, 1)
	assert.Equal(t, 1, c.QuantityTotal)
}

func TestCartClearIdempotent(t *testing.T) {
	c := NewCart()
	c.Add(dogInfo(), 2)
	c.Add(catInfo(), 1)

	c.Clear()
	assert.True(t, c.IsEmpty())
	assert.Equal(t, int64(0), c.AmountCents)

	// Clearing again must be harmless.
	c.Clear()
	assert.True(t, c.IsEmpty())
}

func TestCartTotalsLaw(t *testing.T) {
	// quantity_total and amount_total always equal the sums over the lines.
	c := NewCart()
	c.Add(dogInfo(), 2)
	c.Add(catInfo(), 3)

	var qty int
	var cents int64
	for _, l := range c.Lines {
		qty += l.Quantity
		cents += int64(l.Quantity) * l.Product.PriceCents
	}
	assert.Equal(t, qty, c.QuantityTotal)
	assert.Equal(t, cents, c.AmountCents)
	assert.Equal(t, float64(cents)/100.0, c.AmountTotal)
}

func TestCartUnavailableLinesExcludedFromTotals(t *testing.T) {
	c := NewCart()
	c.Add(dogInfo(), 2)
	c.Add(catInfo(), 1)
	c.Lines[1].Unavailable = true
	c.Recompute()

	assert.Equal(t, 2, c.QuantityTotal)
	assert.Equal(t, int64(20000), c.AmountCents)
	require.Len(t, c.Lines, 2, "unavailable lines stay visible")
	assert.False(t, c.IsEmpty())

	c.Lines[0].Unavailable = true
	c.Recompute()
	assert.True(t, c.IsEmpty(), "a cart of only unavailable lines is effectively empty")
	assert.Equal(t, int64(0), c.AmountCents)
}
