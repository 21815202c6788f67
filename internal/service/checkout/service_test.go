package checkout

import (
	"context"
	"errors"
	"testing"

	"zomio-storefront/internal/domain"
)

type stubCart struct {
	items    []domain.CartItem
	itemsErr error
	cleared  bool
}

func (s *stubCart) Items(_ context.Context) ([]domain.CartItem, error) {
	return s.items, s.itemsErr
}

func (s *stubCart) Clear(_ context.Context) error {
	s.cleared = true
	return nil
}

type stubOrders struct {
	createID    string
	createErr   error
	lastItems   []domain.CartItem
	lastInfo    domain.CustomerInfo
	lastMethod  domain.PaymentMethod
	createCalls int
}

func (s *stubOrders) Create(_ context.Context, items []domain.CartItem, info domain.CustomerInfo, method domain.PaymentMethod) (string, error) {
	s.createCalls++
	s.lastItems = items
	s.lastInfo = info
	s.lastMethod = method
	return s.createID, s.createErr
}

type stubForwarder struct {
	err       error
	lastItems []string
	calls     int
}

func (s *stubForwarder) AppendOrder(_ context.Context, _, _, _ string, items []string) error {
	s.calls++
	s.lastItems = items
	return s.err
}

func cartItems() []domain.CartItem {
	return []domain.CartItem{
		{ID: "i1", Product: domain.Product{ID: "p1", Name: "Rose Milk", Price: 25}, Quantity: 2, SelectedSize: "500ml"},
		{ID: "i2", Product: domain.Product{ID: "p2", Name: "Samosa", Price: 15}, Quantity: 1},
	}
}

func info() domain.CustomerInfo {
	return domain.CustomerInfo{Name: "Rajesh", Phone: "9876543210", Address: "123 Main Road", Area: "Chittoor"}
}

func TestSubmit_PlacesOrderAndClearsCart(t *testing.T) {
	cart := &stubCart{items: cartItems()}
	orders := &stubOrders{createID: "order-1"}
	fwd := &stubForwarder{}
	svc := New(cart, orders, fwd, testAreas, nil)

	id, err := svc.Submit(context.Background(), info(), domain.PaymentCOD)
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if id != "order-1" {
		t.Fatalf("expected order-1, got %s", id)
	}
	if !cart.cleared {
		t.Fatalf("expected cart to be cleared")
	}
	if fwd.calls != 1 {
		t.Fatalf("expected 1 forward call, got %d", fwd.calls)
	}
	if len(fwd.lastItems) != 2 || fwd.lastItems[0] != "Rose Milk (500ml) x2" || fwd.lastItems[1] != "Samosa" {
		t.Fatalf("unexpected forwarded items %v", fwd.lastItems)
	}
}

func TestSubmit_ValidationFailureLeavesCart(t *testing.T) {
	cart := &stubCart{items: cartItems()}
	orders := &stubOrders{createID: "order-1"}
	svc := New(cart, orders, nil, testAreas, nil)

	bad := info()
	bad.Phone = "1234567890"
	_, err := svc.Submit(context.Background(), bad, domain.PaymentCOD)

	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if _, ok := verr.Fields["phone"]; !ok {
		t.Fatalf("expected phone error, got %v", verr.Fields)
	}
	if orders.createCalls != 0 {
		t.Fatalf("order should not be created")
	}
	if cart.cleared {
		t.Fatalf("cart should be left intact")
	}
}

func TestSubmit_EmptyCart(t *testing.T) {
	cart := &stubCart{}
	svc := New(cart, &stubOrders{createID: "x"}, nil, testAreas, nil)

	_, err := svc.Submit(context.Background(), info(), domain.PaymentCOD)
	if !errors.Is(err, ErrEmptyCart) {
		t.Fatalf("expected ErrEmptyCart, got %v", err)
	}
}

func TestSubmit_CreateFailureLeavesCart(t *testing.T) {
	cart := &stubCart{items: cartItems()}
	orders := &stubOrders{createErr: errors.New("ledger down")}
	svc := New(cart, orders, nil, testAreas, nil)

	if _, err := svc.Submit(context.Background(), info(), domain.PaymentCOD); err == nil {
		t.Fatalf("expected error")
	}
	if cart.cleared {
		t.Fatalf("cart should be left intact for retry")
	}
}

func TestSubmit_ForwarderFailureDoesNotFailOrder(t *testing.T) {
	cart := &stubCart{items: cartItems()}
	orders := &stubOrders{createID: "order-1"}
	fwd := &stubForwarder{err: domain.ErrUpstream}
	svc := New(cart, orders, fwd, testAreas, nil)

	id, err := svc.Submit(context.Background(), info(), domain.PaymentUPI)
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if id != "order-1" {
		t.Fatalf("expected order-1, got %s", id)
	}
	if !cart.cleared {
		t.Fatalf("expected cart cleared despite forwarder outage")
	}
}

func TestSubmit_NilForwarder(t *testing.T) {
	cart := &stubCart{items: cartItems()}
	orders := &stubOrders{createID: "order-1"}
	svc := New(cart, orders, nil, testAreas, nil)

	if _, err := svc.Submit(context.Background(), info(), domain.PaymentCOD); err != nil {
		t.Fatalf("Submit: %v", err)
	}
}

func TestSubmit_UnknownPaymentMethod(t *testing.T) {
	cart := &stubCart{items: cartItems()}
	svc := New(cart, &stubOrders{createID: "x"}, nil, testAreas, nil)

	if _, err := svc.Submit(context.Background(), info(), "cheque"); err == nil {
		t.Fatalf("expected error for unknown payment method")
	}
	if cart.cleared {
		t.Fatalf("cart should be left intact")
	}
}
