package checkout

import (
	"context"
	"errors"
	"io"
	"log"
	"strconv"

	"zomio-storefront/internal/domain"
)

// ErrEmptyCart is returned when checkout is attempted with nothing in the
// cart.
var ErrEmptyCart = errors.New("cart is empty")

// ValidationError carries the per-field error mapping back to the form.
type ValidationError struct {
	Fields Fields
}

func (e *ValidationError) Error() string {
	return "checkout validation failed"
}

type cartService interface {
	Items(ctx context.Context) ([]domain.CartItem, error)
	Clear(ctx context.Context) error
}

type orderService interface {
	Create(ctx context.Context, items []domain.CartItem, info domain.CustomerInfo, method domain.PaymentMethod) (string, error)
}

// Forwarder pushes a placed order's fields to the spreadsheet endpoint.
type Forwarder interface {
	AppendOrder(ctx context.Context, name, phone, address string, items []string) error
}

// Service runs the checkout flow: validate the form, snapshot the cart into
// a new order, forward it, then clear the cart.
type Service struct {
	cart      cartService
	orders    orderService
	forwarder Forwarder
	areas     []string
	logger    *log.Logger
}

// New creates a checkout Service. forwarder may be nil when order
// forwarding is not configured.
func New(cart cartService, orders orderService, forwarder Forwarder, areas []string, logger *log.Logger) *Service {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Service{cart: cart, orders: orders, forwarder: forwarder, areas: areas, logger: logger}
}

// Submit places an order from the current cart. On validation failure it
// returns a *ValidationError; on creation failure the cart is left intact
// so the customer can retry. A forwarding failure is logged but does not
// fail the submission — the sheet is a best-effort mirror, not the ledger.
func (s *Service) Submit(ctx context.Context, info domain.CustomerInfo, method domain.PaymentMethod) (string, error) {
	if fields := Validate(info, s.areas); len(fields) > 0 {
		return "", &ValidationError{Fields: fields}
	}
	if !method.Valid() {
		return "", errors.New("unknown payment method")
	}

	items, err := s.cart.Items(ctx)
	if err != nil {
		return "", err
	}
	if len(items) == 0 {
		return "", ErrEmptyCart
	}

	orderID, err := s.orders.Create(ctx, items, info, method)
	if err != nil {
		return "", err
	}

	if s.forwarder != nil {
		if err := s.forwarder.AppendOrder(ctx, info.Name, info.Phone, info.Address, itemLabels(items)); err != nil {
			s.logger.Printf("checkout svc: forward order=%s error=%v", orderID, err)
		}
	}

	if err := s.cart.Clear(ctx); err != nil {
		s.logger.Printf("checkout svc: clear cart order=%s error=%v", orderID, err)
	}
	s.logger.Printf("checkout svc: placed order=%s area=%s method=%s", orderID, info.Area, method)
	return orderID, nil
}

func itemLabels(items []domain.CartItem) []string {
	labels := make([]string, 0, len(items))
	for _, item := range items {
		label := item.Product.Name
		if item.SelectedSize != "" {
			label += " (" + item.SelectedSize + ")"
		}
		if item.Quantity > 1 {
			label += " x" + strconv.Itoa(item.Quantity)
		}
		labels = append(labels, label)
	}
	return labels
}
