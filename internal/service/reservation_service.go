package service

import (
	"context"
	"log"
	"time"

	"github.com/petmart/petmart-api/internal/model"
	"github.com/petmart/petmart-api/internal/queue"
	"github.com/petmart/petmart-api/internal/repository"
)

// CatalogInvalidator drops cached catalog responses after a write that
// changes what the catalog shows.
type CatalogInvalidator interface {
	Invalidate(ctx context.Context) error
}

// ReservationService owns the reservation lifecycle: creating a reservation
// from a cart snapshot, moving it through the PENDING -> ACCEPTED/REJECTED
// state machine, and the side effects of each step.
type ReservationService struct {
	reservations *repository.ReservationRepo
	products     *repository.ProductRepo
	carts        *CartService
	invalidator  CatalogInvalidator
}

// NewReservationService wires a ReservationService. The invalidator may be
// nil when no response cache is configured.
func NewReservationService(
	reservations *repository.ReservationRepo,
	products *repository.ProductRepo,
	carts *CartService,
	invalidator CatalogInvalidator,
) *ReservationService {
	return &ReservationService{
		reservations: reservations,
		products:     products,
		carts:        carts,
		invalidator:  invalidator,
	}
}

// Create submits a reservation for the identity's current cart. The cart
// must have at least one effective line and the customer details must pass
// validation; validation reports every failing field at once. On success
// the cart lines are frozen as reservation items, the reservation starts
// in PENDING, the cart is cleared, and a reservation.created event is
// published. Cart clearing and event publishing are best effort: their
// failure is logged but never undoes the stored reservation.
func (s *ReservationService) Create(ctx context.Context, userID uint64, customer model.CustomerInfo) (*model.Reservation, error) {
	if err := customer.Validate(time.Now().UTC()); err != nil {
		return nil, err
	}

	// Hold the identity's cart lock across the read-snapshot-clear sequence
	// so a concurrent cart mutation cannot slip between the snapshot and
	// the stored reservation.
	mu := s.carts.lock(userID)
	mu.Lock()
	defer mu.Unlock()

	cart, err := s.carts.carts.Load(ctx, userID)
	if err != nil {
		return nil, err
	}
	if cart.IsEmpty() {
		return nil, ErrEmptyCart
	}

	res := &model.Reservation{
		UserID:        userID,
		Customer:      customer,
		Items:         model.ItemsFromCart(cart),
		QuantityTotal: cart.QuantityTotal,
		AmountCents:   cart.AmountCents,
		Amount:        cart.AmountTotal,
		Status:        model.ReservationPending,
	}

	tx, err := s.reservations.DB().BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	if err := s.reservations.CreateTx(ctx, tx, res); err != nil {
		_ = tx.Rollback()
		return nil, err
	}
	if err := tx.Commit(); err != nil {
		return nil, err
	}

	// The reservation is durable at this point. Anything below must not
	// fail the request.
	if err := s.carts.carts.Clear(ctx, userID); err != nil {
		log.Printf("reservation %d: clearing cart for user %d failed: %v", res.ID, userID, err)
	}

	go func() {
		pubCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = PublishReservationCreated(pubCtx, buildCreatedEvent(res))
	}()

	return res, nil
}

func buildCreatedEvent(res *model.Reservation) queue.ReservationCreatedEvent {
	items := make([]queue.ReservationItemSummary, 0, len(res.Items))
	for _, it := range res.Items {
		items = append(items, queue.ReservationItemSummary{
			ProductCode: it.Product.Code,
			Name:        it.Product.Name,
			Quantity:    it.Quantity,
		})
	}
	return queue.ReservationCreatedEvent{
		ReservationID:    res.ID,
		UserID:           res.UserID,
		CustomerName:     res.Customer.Name,
		CustomerEmail:    res.Customer.Email,
		VisitDate:        res.Customer.PreferredVisitDate,
		Items:            items,
		QuantityTotal:    res.QuantityTotal,
		TotalAmountCents: res.AmountCents,
		CreatedAt:        res.ReservationDate.UTC().Format(time.RFC3339),
	}
}

// SetStatus moves a PENDING reservation to ACCEPTED or REJECTED. The raw
// status string is parsed case-insensitively; PENDING itself is not a valid
// target. When two transitions race on the same id the database guard lets
// the first one through and the second receives ErrInvalidTransition.
// Accepting a reservation marks each reserved pet ADOPTED in the catalog;
// a pet that has meanwhile left the catalog is logged and skipped, and the
// reservation outcome stands either way.
func (s *ReservationService) SetStatus(ctx context.Context, id uint64, rawStatus string) (*model.Reservation, error) {
	status, err := model.ParseReservationStatus(rawStatus)
	if err != nil {
		return nil, err
	}
	if !model.ReservationPending.CanTransitionTo(status) {
		return nil, repository.ErrInvalidTransition
	}
	if err := s.reservations.UpdateStatusIfPending(ctx, id, status); err != nil {
		return nil, err
	}

	res, err := s.reservations.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if status == model.ReservationAccepted {
		changed := false
		for _, it := range res.Items {
			if err := s.products.UpdateStatus(ctx, it.Product.Code, model.StatusAdopted); err != nil {
				log.Printf("reservation %d: marking product %s adopted failed: %v", id, it.Product.Code, err)
				continue
			}
			changed = true
		}
		if changed && s.invalidator != nil {
			if err := s.invalidator.Invalidate(ctx); err != nil {
				log.Printf("reservation %d: catalog cache invalidation failed: %v", id, err)
			}
		}
	}
	return res, nil
}

// ListAll returns every reservation for the admin view, PENDING first.
func (s *ReservationService) ListAll(ctx context.Context) ([]model.Reservation, error) {
	return s.reservations.ListAll(ctx)
}

// ListByUser returns the identity's own reservations, newest first.
func (s *ReservationService) ListByUser(ctx context.Context, userID uint64) ([]model.Reservation, error) {
	return s.reservations.ListByUser(ctx, userID)
}

// Withdraw deletes one of the identity's own PENDING reservations.
func (s *ReservationService) Withdraw(ctx context.Context, id, userID uint64) error {
	return s.reservations.DeleteIfPendingForUser(ctx, id, userID)
}
