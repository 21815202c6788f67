package order

import (
	"context"
	"errors"
	"testing"
	"time"

	"zomio-storefront/internal/domain"
)

type stubRepo struct {
	appended        []domain.Order
	appendErr       error
	getOrder        *domain.Order
	getErr          error
	lastStatusID    string
	lastStatus      domain.OrderStatus
	setStatusErr    error
	lastPaymentID   string
	lastPayment     domain.PaymentStatus
	setPaymentErr   error
	byAreaOrders    []domain.Order
	byStatusOrders  []domain.Order
	revenue         int64
}

func (s *stubRepo) Append(_ context.Context, o domain.Order) error {
	if s.appendErr != nil {
		return s.appendErr
	}
	s.appended = append(s.appended, o)
	return nil
}

func (s *stubRepo) GetByID(_ context.Context, _ string) (*domain.Order, error) {
	return s.getOrder, s.getErr
}

func (s *stubRepo) All(_ context.Context) ([]domain.Order, error) {
	return s.appended, nil
}

func (s *stubRepo) SetStatus(_ context.Context, id string, status domain.OrderStatus) error {
	s.lastStatusID = id
	s.lastStatus = status
	return s.setStatusErr
}

func (s *stubRepo) SetPaymentStatus(_ context.Context, id string, status domain.PaymentStatus) error {
	s.lastPaymentID = id
	s.lastPayment = status
	return s.setPaymentErr
}

func (s *stubRepo) ByArea(_ context.Context, _ string) ([]domain.Order, error) {
	return s.byAreaOrders, nil
}

func (s *stubRepo) ByStatus(_ context.Context, _ domain.OrderStatus) ([]domain.Order, error) {
	return s.byStatusOrders, nil
}

func (s *stubRepo) TotalRevenue(_ context.Context) (int64, error) {
	return s.revenue, nil
}

func testItems() []domain.CartItem {
	return []domain.CartItem{
		{ID: "i1", Product: domain.Product{ID: "p1", Name: "Rose Milk", Price: 25}, Quantity: 2, SelectedSize: "500ml"},
		{ID: "i2", Product: domain.Product{ID: "p2", Name: "Samosa", Price: 15}, Quantity: 1},
	}
}

func testInfo() domain.CustomerInfo {
	return domain.CustomerInfo{Name: "Rajesh", Phone: "9876543210", Address: "123 Main Road", Area: "Chittoor"}
}

func TestCreate_CODPaymentStartsPending(t *testing.T) {
	repo := &stubRepo{}
	svc := New(repo, nil)

	id, err := svc.Create(context.Background(), testItems(), testInfo(), domain.PaymentCOD)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if id == "" {
		t.Fatalf("expected non-empty order id")
	}
	if len(repo.appended) != 1 {
		t.Fatalf("expected 1 appended order, got %d", len(repo.appended))
	}
	o := repo.appended[0]
	if o.PaymentStatus != domain.PaymentPending {
		t.Fatalf("expected pending payment for cod, got %s", o.PaymentStatus)
	}
	if o.Status != domain.StatusPending {
		t.Fatalf("expected pending status, got %s", o.Status)
	}
	if o.TotalAmount != 25*2+15 {
		t.Fatalf("unexpected total %d", o.TotalAmount)
	}
}

func TestCreate_NonCODPaymentCompletes(t *testing.T) {
	for _, method := range []domain.PaymentMethod{domain.PaymentUPI, domain.PaymentCard, domain.PaymentNetbanking} {
		repo := &stubRepo{}
		svc := New(repo, nil)
		if _, err := svc.Create(context.Background(), testItems(), testInfo(), method); err != nil {
			t.Fatalf("Create(%s): %v", method, err)
		}
		if got := repo.appended[0].PaymentStatus; got != domain.PaymentCompleted {
			t.Fatalf("method %s: expected completed payment, got %s", method, got)
		}
	}
}

func TestCreate_SnapshotsItems(t *testing.T) {
	repo := &stubRepo{}
	svc := New(repo, nil)

	items := testItems()
	if _, err := svc.Create(context.Background(), items, testInfo(), domain.PaymentCOD); err != nil {
		t.Fatalf("Create: %v", err)
	}

	// Later cart mutation must not affect the placed order.
	items[0].Quantity = 99
	items[0].Product.Price = 999

	o := repo.appended[0]
	if o.Items[0].Quantity != 2 || o.Items[0].Product.Price != 25 {
		t.Fatalf("order items not snapshotted: %+v", o.Items[0])
	}
	if o.TotalAmount != 25*2+15 {
		t.Fatalf("total recomputed after mutation: %d", o.TotalAmount)
	}
}

func TestCreate_SetsCreatedAtFromClock(t *testing.T) {
	repo := &stubRepo{}
	svc := New(repo, nil)
	fixed := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return fixed }

	if _, err := svc.Create(context.Background(), testItems(), testInfo(), domain.PaymentCOD); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if !repo.appended[0].CreatedAt.Equal(fixed) {
		t.Fatalf("expected createdAt %v, got %v", fixed, repo.appended[0].CreatedAt)
	}
}

func TestUpdateStatus_AllowedTransitions(t *testing.T) {
	cases := []struct {
		from, to domain.OrderStatus
	}{
		{domain.StatusPending, domain.StatusConfirmed},
		{domain.StatusPending, domain.StatusCancelled},
		{domain.StatusConfirmed, domain.StatusDelivering},
		{domain.StatusConfirmed, domain.StatusCancelled},
		{domain.StatusDelivering, domain.StatusDelivered},
	}
	for _, tc := range cases {
		repo := &stubRepo{getOrder: &domain.Order{ID: "o1", Status: tc.from}}
		svc := New(repo, nil)
		if err := svc.UpdateStatus(context.Background(), "o1", tc.to); err != nil {
			t.Fatalf("%s -> %s: unexpected error %v", tc.from, tc.to, err)
		}
		if repo.lastStatus != tc.to {
			t.Fatalf("%s -> %s: repo not updated", tc.from, tc.to)
		}
	}
}

func TestUpdateStatus_RejectedTransitions(t *testing.T) {
	cases := []struct {
		from, to domain.OrderStatus
	}{
		{domain.StatusPending, domain.StatusDelivering},
		{domain.StatusPending, domain.StatusDelivered},
		{domain.StatusConfirmed, domain.StatusDelivered},
		{domain.StatusDelivering, domain.StatusCancelled},
		{domain.StatusDelivered, domain.StatusPending},
		{domain.StatusDelivered, domain.StatusCancelled},
		{domain.StatusCancelled, domain.StatusConfirmed},
	}
	for _, tc := range cases {
		repo := &stubRepo{getOrder: &domain.Order{ID: "o1", Status: tc.from}}
		svc := New(repo, nil)
		err := svc.UpdateStatus(context.Background(), "o1", tc.to)
		if !errors.Is(err, domain.ErrInvalidTransition) {
			t.Fatalf("%s -> %s: expected ErrInvalidTransition, got %v", tc.from, tc.to, err)
		}
		if repo.lastStatusID != "" {
			t.Fatalf("%s -> %s: repo should not be touched", tc.from, tc.to)
		}
	}
}

func TestUpdateStatus_UnknownOrder(t *testing.T) {
	repo := &stubRepo{getErr: domain.ErrNotFound}
	svc := New(repo, nil)
	err := svc.UpdateStatus(context.Background(), "missing", domain.StatusConfirmed)
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestUpdatePaymentStatus_RejectsUnknownValue(t *testing.T) {
	repo := &stubRepo{}
	svc := New(repo, nil)
	if err := svc.UpdatePaymentStatus(context.Background(), "o1", "refunded"); err == nil {
		t.Fatalf("expected error for unknown payment status")
	}
	if err := svc.UpdatePaymentStatus(context.Background(), "o1", domain.PaymentCompleted); err != nil {
		t.Fatalf("UpdatePaymentStatus: %v", err)
	}
	if repo.lastPayment != domain.PaymentCompleted {
		t.Fatalf("repo not updated")
	}
}
