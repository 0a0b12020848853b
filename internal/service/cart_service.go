package service

import (
	"context"
	"sync"

	"github.com/petmart/petmart-api/internal/model"
	"github.com/petmart/petmart-api/internal/repository"
)

// cartStripes is the number of mutex stripes used to serialize cart
// mutations per identity. Two users only contend when their IDs map to the
// same stripe.
const cartStripes = 64

// CartStore is the persistence surface the cart engine needs. It is
// satisfied by repository.CartRepo.
type CartStore interface {
	Load(ctx context.Context, userID uint64) (*model.Cart, error)
	AddLine(ctx context.Context, userID uint64, info model.ProductInfo, quantity int) error
	SetQuantity(ctx context.Context, userID uint64, code string, quantity int) error
	RemoveLine(ctx context.Context, userID uint64, code string) error
	Clear(ctx context.Context, userID uint64) error
}

// CartService serializes cart mutations per identity and keeps the derived
// totals consistent: every mutation ends with a fresh load of the cart so
// the caller always receives the recomputed state.
type CartService struct {
	carts    CartStore
	products *repository.ProductRepo
	locks    [cartStripes]sync.Mutex
}

// NewCartService returns a CartService over the given store and catalog.
func NewCartService(carts CartStore, products *repository.ProductRepo) *CartService {
	return &CartService{carts: carts, products: products}
}

func (s *CartService) lock(userID uint64) *sync.Mutex {
	return &s.locks[userID%cartStripes]
}

// Get returns the current cart for the identity, including any lines whose
// product has since left the catalog (flagged, excluded from totals).
func (s *CartService) Get(ctx context.Context, userID uint64) (*model.Cart, error) {
	return s.carts.Load(ctx, userID)
}

// Add puts quantity units of the coded product into the cart. Adding a
// product already present accumulates onto the existing line. Quantities
// below one are rejected with ErrInvalidQuantity, unknown codes with
// repository.ErrProductNotFound. The catalog data on the line is snapshotted
// at add time.
func (s *CartService) Add(ctx context.Context, userID uint64, code string, quantity int) (*model.Cart, error) {
	if quantity < 1 {
		return nil, ErrInvalidQuantity
	}
	p, err := s.products.GetByCode(ctx, code)
	if err != nil {
		return nil, err
	}
	mu := s.lock(userID)
	mu.Lock()
	defer mu.Unlock()
	if err := s.carts.AddLine(ctx, userID, p.Info(), quantity); err != nil {
		return nil, err
	}
	return s.carts.Load(ctx, userID)
}

// Update sets the absolute quantity of a line. A quantity of zero or less
// removes the line; updating a code not in the cart changes nothing. Either
// way the recomputed cart is returned.
func (s *CartService) Update(ctx context.Context, userID uint64, code string, quantity int) (*model.Cart, error) {
	mu := s.lock(userID)
	mu.Lock()
	defer mu.Unlock()
	var err error
	if quantity <= 0 {
		err = s.carts.RemoveLine(ctx, userID, code)
	} else {
		err = s.carts.SetQuantity(ctx, userID, code, quantity)
	}
	if err != nil {
		return nil, err
	}
	return s.carts.Load(ctx, userID)
}

// Remove deletes the line for the coded product. Removing an absent code is
// a no-op.
func (s *CartService) Remove(ctx context.Context, userID uint64, code string) (*model.Cart, error) {
	mu := s.lock(userID)
	mu.Lock()
	defer mu.Unlock()
	if err := s.carts.RemoveLine(ctx, userID, code); err != nil {
		return nil, err
	}
	return s.carts.Load(ctx, userID)
}

// Clear empties the cart. Clearing an already empty cart succeeds.
func (s *CartService) Clear(ctx context.Context, userID uint64) (*model.Cart, error) {
	mu := s.lock(userID)
	mu.Lock()
	defer mu.Unlock()
	if err := s.carts.Clear(ctx, userID); err != nil {
		return nil, err
	}
	return s.carts.Load(ctx, userID)
}
