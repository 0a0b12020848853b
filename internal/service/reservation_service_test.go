package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/petmart/petmart-api/internal/model"
)

// stubCartStore serves a fixed cart and counts how often it is read or
// mutated, so tests can assert that a rejected reservation never touches
// the cart.
type stubCartStore struct {
	cart   *model.Cart
	loads  int
	clears int
}

func (s *stubCartStore) Load(ctx context.Context, userID uint64) (*model.Cart, error) {
	s.loads++
	return s.cart, nil
}

func (s *stubCartStore) AddLine(ctx context.Context, userID uint64, info model.ProductInfo, quantity int) error {
	return nil
}

func (s *stubCartStore) SetQuantity(ctx context.Context, userID uint64, code string, quantity int) error {
	return nil
}

func (s *stubCartStore) RemoveLine(ctx context.Context, userID uint64, code string) error {
	return nil
}

func (s *stubCartStore) Clear(ctx context.Context, userID uint64) error {
	s.clears++
	return nil
}

func newReservationServiceWithCart(cart *model.Cart) (*ReservationService, *stubCartStore) {
	store := &stubCartStore{cart: cart}
	carts := NewCartService(store, nil)
	return NewReservationService(nil, nil, carts, nil), store
}

// reservableCustomer validates against the real clock, so the visit date is
// derived from it rather than hard coded.
func reservableCustomer() model.CustomerInfo {
	return model.CustomerInfo{
		Name:               "Asha Rao",
		Email:              "asha@example.com",
		Phone:              "9876543210",
		Address:            "12 Lake View Road",
		PreferredVisitDate: time.Now().UTC().AddDate(0, 0, 7).Format("2006-01-02"),
	}
}

func TestReservationCreateEmptyCart(t *testing.T) {
	svc, store := newReservationServiceWithCart(model.NewCart())

	res, err := svc.Create(context.Background(), 7, reservableCustomer())
	require.ErrorIs(t, err, ErrEmptyCart)
	require.Nil(t, res)
	require.Equal(t, 1, store.loads)
	require.Zero(t, store.clears)
}

func TestReservationCreateOnlyUnavailableLines(t *testing.T) {
	// A cart holding nothing but lines whose products have left the catalog
	// is effectively empty and must be rejected the same way.
	cart := model.NewCart()
	cart.Add(model.ProductInfo{Code: "P001", Name: "Bruno", Type: model.PetDog, PriceCents: 10050}, 1)
	cart.Lines[0].Unavailable = true
	cart.Recompute()

	svc, store := newReservationServiceWithCart(cart)

	res, err := svc.Create(context.Background(), 7, reservableCustomer())
	require.ErrorIs(t, err, ErrEmptyCart)
	require.Nil(t, res)
	require.Zero(t, store.clears)
}

func TestReservationCreateValidationLeavesCartUntouched(t *testing.T) {
	cart := model.NewCart()
	cart.Add(model.ProductInfo{Code: "P001", Name: "Bruno", Type: model.PetDog, PriceCents: 10050}, 1)

	svc, store := newReservationServiceWithCart(cart)

	bad := reservableCustomer()
	bad.Phone = "12345"

	res, err := svc.Create(context.Background(), 7, bad)
	require.Error(t, err)
	require.Nil(t, res)

	var verr *model.ValidationError
	require.ErrorAs(t, err, &verr)
	require.Contains(t, verr.Fields, "phone")

	// The cart was neither read nor cleared: a failed submission leaves it
	// exactly as it was.
	require.Zero(t, store.loads)
	require.Zero(t, store.clears)
}
