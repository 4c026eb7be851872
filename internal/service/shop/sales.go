package shop

import (
	"context"
	"errors"
	"sort"

	"github.com/google/uuid"

	"github.com/jardinverde/gardenia/internal/entity"
	"github.com/jardinverde/gardenia/internal/platform/timeutil"
	"github.com/jardinverde/gardenia/internal/session"
	"github.com/jardinverde/gardenia/internal/store"
)

// Recorder errors
var (
	ErrEmptyCart    = errors.New("cart is empty")
	ErrSaleNotFound = errors.New("sale not found")
)

// ContactParams is the checkout contact form.
type ContactParams struct {
	Name  string
	Email string
	Phone string
}

// Recorder converts carts into persisted sales.
type Recorder struct {
	hub  *store.Hub
	gate *session.Gate
}

// NewRecorder creates a sale recorder.
func NewRecorder(hub *store.Hub, gate *session.Gate) *Recorder {
	return &Recorder{hub: hub, gate: gate}
}

// List returns the mirrored sales, newest first.
func (r *Recorder) List() []entity.Sale {
	out := r.hub.Sales.Items()
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date > out[j].Date
	})
	return out
}

// RecordSale snapshots the cart and contact form into an immutable sale
// with status pending_payment. The cart itself is left untouched; the
// caller clears it once the checkout flow is really done with it.
func (r *Recorder) RecordSale(ctx context.Context, sess *session.Session, items []entity.CartItem, contact ContactParams) (entity.Sale, error) {
	if len(items) == 0 {
		return entity.Sale{}, ErrEmptyCart
	}

	lines := make([]entity.CartItem, 0, len(items))
	var total float64
	for _, it := range items {
		lines = append(lines, entity.CartItem{
			Product:  snapshotProduct(it.Product),
			Quantity: it.Quantity,
		})
		total += it.Product.Price * float64(it.Quantity)
	}

	sale := entity.Sale{
		ID:            uuid.NewString(),
		Date:          timeutil.NowStamp(),
		CustomerName:  contact.Name,
		CustomerEmail: contact.Email,
		CustomerPhone: contact.Phone,
		Items:         lines,
		Total:         total,
		Status:        entity.SalePendingPayment,
	}

	if err := r.gate.Set(ctx, sess, store.ColSales, sale.ID, sale); err != nil {
		return entity.Sale{}, err
	}
	return sale, nil
}

// MarkCompleted moves a sale out of pending_payment.
func (r *Recorder) MarkCompleted(ctx context.Context, sess *session.Session, id string) error {
	sale, ok := r.hub.Sales.Find(func(s entity.Sale) bool { return s.ID == id })
	if !ok {
		return ErrSaleNotFound
	}
	sale.Status = entity.SaleCompleted
	return r.gate.Set(ctx, sess, store.ColSales, id, sale)
}
