package shop

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/jardinverde/gardenia/internal/entity"
	"github.com/jardinverde/gardenia/internal/session"
	"github.com/jardinverde/gardenia/internal/store"
)

func newTestRecorder(t *testing.T) (*Recorder, *session.Session) {
	t.Helper()
	remote := store.NewMemoryRemote()
	hub := store.NewHub(remote)
	if err := hub.Start(context.Background()); err != nil {
		t.Fatalf("hub start: %v", err)
	}
	if err := hub.OpenProtected(context.Background()); err != nil {
		t.Fatalf("open protected: %v", err)
	}
	t.Cleanup(hub.Close)

	sess := &session.Session{
		Token:   "token-uid-0",
		Profile: entity.Profile{ID: "uid-0", Role: entity.RoleAdmin},
		State:   session.StateEstablished,
	}
	return NewRecorder(hub, session.NewGate(remote)), sess
}

func TestRecordSaleTotals(t *testing.T) {
	recorder, sess := newTestRecorder(t)

	items := []entity.CartItem{
		{Product: entity.Product{ID: "p1", Name: "Monstera", Price: 15000}, Quantity: 2},
		{Product: entity.Product{ID: "p2", Name: "Ficus", Price: 9000}, Quantity: 1},
	}

	sale, err := recorder.RecordSale(context.Background(), sess, items, ContactParams{
		Name: "Marta", Email: "marta@example.com", Phone: "1155550000",
	})
	if err != nil {
		t.Fatalf("record sale: %v", err)
	}

	if sale.Total != 39000 {
		t.Errorf("expected total 39000, got %.2f", sale.Total)
	}
	if sale.Status != entity.SalePendingPayment {
		t.Errorf("expected pending_payment, got %q", sale.Status)
	}
	if len(recorder.List()) != 1 {
		t.Error("sale not mirrored")
	}
}

func TestRecordSaleEmptyCart(t *testing.T) {
	recorder, sess := newTestRecorder(t)

	_, err := recorder.RecordSale(context.Background(), sess, nil, ContactParams{Name: "Marta"})
	if !errors.Is(err, ErrEmptyCart) {
		t.Fatalf("expected ErrEmptyCart, got %v", err)
	}
}

func TestSaleSnapshotIsImmutable(t *testing.T) {
	recorder, sess := newTestRecorder(t)

	p := entity.Product{ID: "p1", Name: "Monstera", Price: 15000, Images: []string{"monstera.jpg"}}
	items := []entity.CartItem{{Product: p, Quantity: 1}}

	sale, err := recorder.RecordSale(context.Background(), sess, items, ContactParams{Name: "Marta"})
	if err != nil {
		t.Fatalf("record sale: %v", err)
	}

	// Later catalog edits must not reach into the recorded sale.
	items[0].Product.Price = 1
	items[0].Product.Images[0] = "otra.jpg"

	if sale.Items[0].Product.Price != 15000 {
		t.Errorf("sale line price mutated: %.2f", sale.Items[0].Product.Price)
	}
	if sale.Items[0].Product.Images[0] != "monstera.jpg" {
		t.Errorf("sale line images aliased: %v", sale.Items[0].Product.Images)
	}
}

func TestRecordSaleLeavesCartUntouched(t *testing.T) {
	recorder, sess := newTestRecorder(t)
	carts, err := OpenCartStore(filepath.Join(t.TempDir(), "carts.db"))
	if err != nil {
		t.Fatalf("open cart store: %v", err)
	}
	t.Cleanup(func() { _ = carts.Close() })

	items, err := carts.Add("visitante", entity.Product{ID: "p1", Name: "Monstera", Price: 15000})
	if err != nil {
		t.Fatalf("add: %v", err)
	}

	if _, err := recorder.RecordSale(context.Background(), sess, items, ContactParams{Name: "Marta"}); err != nil {
		t.Fatalf("record sale: %v", err)
	}

	after, err := carts.Get("visitante")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if len(after) != 1 {
		t.Error("recording a sale must never clear the cart")
	}
}

func TestMarkCompleted(t *testing.T) {
	recorder, sess := newTestRecorder(t)

	sale, err := recorder.RecordSale(context.Background(), sess,
		[]entity.CartItem{{Product: entity.Product{ID: "p1", Price: 100}, Quantity: 1}},
		ContactParams{Name: "Marta"})
	if err != nil {
		t.Fatalf("record sale: %v", err)
	}

	if err := recorder.MarkCompleted(context.Background(), sess, sale.ID); err != nil {
		t.Fatalf("mark completed: %v", err)
	}
	got := recorder.List()
	if len(got) != 1 || got[0].Status != entity.SaleCompleted {
		t.Errorf("expected completed sale, got %+v", got)
	}

	if err := recorder.MarkCompleted(context.Background(), sess, "nadie"); !errors.Is(err, ErrSaleNotFound) {
		t.Fatalf("expected ErrSaleNotFound, got %v", err)
	}
}

func TestAnonymousCheckoutRejected(t *testing.T) {
	recorder, _ := newTestRecorder(t)

	_, err := recorder.RecordSale(context.Background(), nil,
		[]entity.CartItem{{Product: entity.Product{ID: "p1", Price: 100}, Quantity: 1}},
		ContactParams{Name: "Marta"})
	if !errors.Is(err, session.ErrNoSession) {
		t.Fatalf("expected ErrNoSession, got %v", err)
	}
	if len(recorder.List()) != 0 {
		t.Error("rejected sale must not be mirrored")
	}
}
