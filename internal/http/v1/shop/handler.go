package shop

import (
	"context"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	catalogsvc "github.com/jardinverde/gardenia/internal/service/catalog"
	shopsvc "github.com/jardinverde/gardenia/internal/service/shop"
	"github.com/jardinverde/gardenia/internal/session"
)

// Register registers cart and sale endpoints. Carts are keyed by the
// caller-chosen X-Cart-Id header so visitors can shop without a session;
// recording the sale at checkout still goes through the access gate.
func Register(api huma.API, carts *shopsvc.CartStore, recorder *shopsvc.Recorder, catalog *catalogsvc.Service) {
	huma.Register(api, huma.Operation{
		OperationID: "get-cart",
		Method:      http.MethodGet,
		Path:        "/cart",
		Summary:     "Get cart contents",
		Tags:        []string{"Shop"},
	}, func(ctx context.Context, input *CartInput) (*CartOutput, error) {
		items, err := carts.Get(input.CartID)
		if err != nil {
			return nil, mapShopError(err)
		}
		out := &CartOutput{}
		out.Body.Items = toHTTPItems(items)
		return out, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "add-cart-item",
		Method:      http.MethodPost,
		Path:        "/cart/items",
		Summary:     "Add a product to the cart",
		Description: "Adds one unit. A line for the same product is merged by incrementing its quantity.",
		Tags:        []string{"Shop"},
	}, func(ctx context.Context, input *CartAddInput) (*CartOutput, error) {
		p, err := catalog.Product(input.Body.ProductID)
		if err != nil {
			return nil, mapShopError(err)
		}
		items, err := carts.Add(input.CartID, p)
		if err != nil {
			return nil, mapShopError(err)
		}
		out := &CartOutput{}
		out.Body.Items = toHTTPItems(items)
		return out, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "remove-cart-item",
		Method:      http.MethodDelete,
		Path:        "/cart/items/{productId}",
		Summary:     "Remove a product line from the cart",
		Tags:        []string{"Shop"},
	}, func(ctx context.Context, input *CartRemoveInput) (*CartOutput, error) {
		items, err := carts.Remove(input.CartID, input.ProductID)
		if err != nil {
			return nil, mapShopError(err)
		}
		out := &CartOutput{}
		out.Body.Items = toHTTPItems(items)
		return out, nil
	})

	huma.Register(api, huma.Operation{
		OperationID:   "clear-cart",
		Method:        http.MethodDelete,
		Path:          "/cart",
		Summary:       "Empty the cart",
		Tags:          []string{"Shop"},
		DefaultStatus: http.StatusNoContent,
	}, func(ctx context.Context, input *CartInput) (*struct{}, error) {
		if err := carts.Clear(input.CartID); err != nil {
			return nil, mapShopError(err)
		}
		return nil, nil
	})

	huma.Register(api, huma.Operation{
		OperationID:   "checkout-cart",
		Method:        http.MethodPost,
		Path:          "/cart/checkout",
		Summary:       "Record a sale from the cart",
		Description:   "Snapshots the cart into an immutable sale record. The cart itself is left untouched.",
		Tags:          []string{"Shop"},
		DefaultStatus: http.StatusCreated,
		Security: []map[string][]string{
			{"bearerAuth": {}},
		},
	}, func(ctx context.Context, input *CheckoutInput) (*SaleOutput, error) {
		items, err := carts.Get(input.CartID)
		if err != nil {
			return nil, mapShopError(err)
		}
		sale, err := recorder.RecordSale(ctx, session.FromContext(ctx), items, shopsvc.ContactParams{
			Name:  input.Body.Name,
			Email: input.Body.Email,
			Phone: input.Body.Phone,
		})
		if err != nil {
			return nil, mapShopError(err)
		}
		return &SaleOutput{Body: toHTTPSale(sale)}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "list-sales",
		Method:      http.MethodGet,
		Path:        "/sales",
		Summary:     "List sales",
		Description: "Recorded sales, newest first.",
		Tags:        []string{"Shop"},
		Security: []map[string][]string{
			{"bearerAuth": {}},
		},
	}, func(ctx context.Context, _ *struct{}) (*SaleListOutput, error) {
		out := &SaleListOutput{}
		out.Body.Sales = toHTTPSales(recorder.List())
		return out, nil
	})

	huma.Register(api, huma.Operation{
		OperationID:   "complete-sale",
		Method:        http.MethodPut,
		Path:          "/sales/{id}/complete",
		Summary:       "Mark a sale as paid",
		Tags:          []string{"Shop"},
		DefaultStatus: http.StatusNoContent,
		Security: []map[string][]string{
			{"bearerAuth": {}},
		},
	}, func(ctx context.Context, input *SaleCompleteInput) (*struct{}, error) {
		if err := recorder.MarkCompleted(ctx, session.FromContext(ctx), input.ID); err != nil {
			return nil, mapShopError(err)
		}
		return nil, nil
	})
}

func mapShopError(err error) error {
	switch {
	case errors.Is(err, session.ErrNoSession):
		return huma.Error401Unauthorized("sign-in required")
	case errors.Is(err, catalogsvc.ErrProductNotFound):
		return huma.Error404NotFound("product not found")
	case errors.Is(err, shopsvc.ErrEmptyCart):
		return huma.Error422UnprocessableEntity("cart is empty")
	case errors.Is(err, shopsvc.ErrSaleNotFound):
		return huma.Error404NotFound("sale not found")
	default:
		return huma.Error500InternalServerError("internal error")
	}
}
