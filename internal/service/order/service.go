package order

import (
	"context"
	"errors"
	"io"
	"log"
	"time"

	"github.com/google/uuid"

	"zomio-storefront/internal/domain"
	orderrepo "zomio-storefront/internal/repository/order"
)

// transitions is the delivery lifecycle. Anything not listed is rejected;
// delivered and cancelled are terminal.
var transitions = map[domain.OrderStatus][]domain.OrderStatus{
	domain.StatusPending:    {domain.StatusConfirmed, domain.StatusCancelled},
	domain.StatusConfirmed:  {domain.StatusDelivering, domain.StatusCancelled},
	domain.StatusDelivering: {domain.StatusDelivered},
	domain.StatusDelivered:  {},
	domain.StatusCancelled:  {},
}

// CanTransition reports whether the lifecycle allows moving from one status
// to another.
func CanTransition(from, to domain.OrderStatus) bool {
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// Service owns order creation and the admin-facing lifecycle operations.
type Service struct {
	repo   orderrepo.Repository
	now    func() time.Time
	logger *log.Logger
}

// New creates an order Service.
func New(repo orderrepo.Repository, logger *log.Logger) *Service {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Service{repo: repo, now: time.Now, logger: logger}
}

// Create appends a new order built from a snapshot of the given items and
// returns its id. Cash on delivery settles on physical delivery, so its
// payment starts pending; every other method is treated as settled at order
// time. Items and customer info are assumed validated by the checkout flow.
func (s *Service) Create(ctx context.Context, items []domain.CartItem, info domain.CustomerInfo, method domain.PaymentMethod) (string, error) {
	var total int64
	for _, item := range items {
		total += item.LineTotal()
	}

	paymentStatus := domain.PaymentCompleted
	if method == domain.PaymentCOD {
		paymentStatus = domain.PaymentPending
	}

	o := domain.Order{
		ID:            uuid.NewString(),
		Items:         domain.CloneItems(items),
		CustomerInfo:  info,
		TotalAmount:   total,
		Status:        domain.StatusPending,
		PaymentMethod: method,
		PaymentStatus: paymentStatus,
		CreatedAt:     s.now(),
	}
	if err := s.repo.Append(ctx, o); err != nil {
		return "", err
	}
	s.logger.Printf("order svc: create id=%s items=%d total=%d payment=%s", o.ID, len(o.Items), total, paymentStatus)
	return o.ID, nil
}

// Get returns the order with the given id.
func (s *Service) Get(ctx context.Context, id string) (*domain.Order, error) {
	return s.repo.GetByID(ctx, id)
}

// All returns every order in creation order.
func (s *Service) All(ctx context.Context) ([]domain.Order, error) {
	return s.repo.All(ctx)
}

// UpdateStatus moves an order along the delivery lifecycle. Illegal moves
// fail with domain.ErrInvalidTransition; unknown ids with ErrNotFound.
func (s *Service) UpdateStatus(ctx context.Context, id string, status domain.OrderStatus) error {
	if !status.Valid() {
		return domain.ErrInvalidTransition
	}
	current, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if !CanTransition(current.Status, status) {
		s.logger.Printf("order svc: reject transition id=%s from=%s to=%s", id, current.Status, status)
		return domain.ErrInvalidTransition
	}
	return s.repo.SetStatus(ctx, id, status)
}

// UpdatePaymentStatus overwrites an order's payment status.
func (s *Service) UpdatePaymentStatus(ctx context.Context, id string, status domain.PaymentStatus) error {
	if !status.Valid() {
		return errors.New("unknown payment status")
	}
	return s.repo.SetPaymentStatus(ctx, id, status)
}

// ByArea returns orders destined for the given area, oldest first.
func (s *Service) ByArea(ctx context.Context, area string) ([]domain.Order, error) {
	return s.repo.ByArea(ctx, area)
}

// ByStatus returns orders in the given lifecycle state, oldest first.
func (s *Service) ByStatus(ctx context.Context, status domain.OrderStatus) ([]domain.Order, error) {
	return s.repo.ByStatus(ctx, status)
}

// TotalRevenue sums the total over orders whose payment completed.
func (s *Service) TotalRevenue(ctx context.Context) (int64, error) {
	return s.repo.TotalRevenue(ctx)
}
