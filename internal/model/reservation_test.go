package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseReservationStatus(t *testing.T) {
	tests := []struct {
		in   string
		want ReservationStatus
		ok   bool
	}{
		{"PENDING", ReservationPending, true},
		{"accepted", ReservationAccepted, true},
		{" Rejected ", ReservationRejected, true},
		{"CANCELLED", "", false},
		{"", "", false},
	}
	for _, tt := range tests {
		got, err := ParseReservationStatus(tt.in)
		if tt.ok {
			require.NoError(t, err, "input %q", tt.in)
			assert.Equal(t, tt.want, got)
		} else {
			assert.Error(t, err, "input %q", tt.in)
		}
	}
}

func TestReservationStatusTransitions(t *testing.T) {
	assert.False(t, ReservationPending.IsTerminal())
	assert.True(t, ReservationAccepted.IsTerminal())
	assert.True(t, ReservationRejected.IsTerminal())

	assert.True(t, ReservationPending.CanTransitionTo(ReservationAccepted))
	assert.True(t, ReservationPending.CanTransitionTo(ReservationRejected))
	assert.False(t, ReservationPending.CanTransitionTo(ReservationPending))

	// Terminal states never move again, including back to PENDING.
	for _, from := range []ReservationStatus{ReservationAccepted, ReservationRejected} {
		for _, to := range []ReservationStatus{ReservationPending, ReservationAccepted, ReservationRejected} {
			assert.False(t, from.CanTransitionTo(to), "%s -> %s must be illegal", from, to)
		}
	}
}

func TestItemsFromCartFreezesLines(t *testing.T) {
	c := NewCart()
	c.Add(dogInfo(), 2)
	c.Add(catInfo(), 1)

	items := ItemsFromCart(c)
	require.Len(t, items, 2)

	// Insertion order preserved.
	assert.Equal(t, "P001", items[0].Product.Code)
	assert.Equal(t, "P002", items[1].Product.Code)
	assert.Equal(t, 2, items[0].Quantity)
	assert.Equal(t, int64(20000), items[0].AmountCents)
	assert.Equal(t, 200.0, items[0].Amount)

	// The items hold their own snapshot: mutating the cart afterwards
	// changes nothing.
	c.Update("P001", 9)
	assert.Equal(t, 2, items[0].Quantity)
}

func TestItemsFromCartSkipsUnavailable(t *testing.T) {
	c := NewCart()
	c.Add(dogInfo(), 1)
	c.Add(catInfo(), 1)
	c.Lines[0].Unavailable = true
	c.Recompute()

	items := ItemsFromCart(c)
	require.Len(t, items, 1)
	assert.Equal(t, "P002", items[0].Product.Code)
}
