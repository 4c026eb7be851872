package shop

import (
	"github.com/jardinverde/gardenia/internal/entity"
	"github.com/jardinverde/gardenia/internal/http/v1/catalog"
)

// CartItem represents one cart line in responses. The product is the
// snapshot taken when the line was added.
type CartItem struct {
	Product  catalog.Product `json:"product"`
	Quantity int             `json:"quantity" doc:"Units of the product"`
}

// Sale represents a recorded sale in responses.
type Sale struct {
	ID            string     `json:"id"            doc:"Sale identifier"`
	Date          string     `json:"date"          doc:"Recording timestamp"`
	CustomerName  string     `json:"customerName"  doc:"Buyer name"`
	CustomerEmail string     `json:"customerEmail" doc:"Buyer email"`
	CustomerPhone string     `json:"customerPhone" doc:"Buyer phone"`
	Items         []CartItem `json:"items"         doc:"Sold lines, snapshotted at checkout"`
	Total         float64    `json:"total"         doc:"Sum of line price times quantity"`
	Status        string     `json:"status"        doc:"Payment status" enum:"pending_payment,completed"`
}

func toHTTPItem(i entity.CartItem) CartItem {
	return CartItem{
		Product: catalog.Product{
			ID:          i.Product.ID,
			Name:        i.Product.Name,
			Category:    i.Product.Category,
			Price:       i.Product.Price,
			Stock:       i.Product.Stock,
			Description: i.Product.Description,
			Images:      i.Product.Images,
			IsVisible:   i.Product.Visible,
		},
		Quantity: i.Quantity,
	}
}

func toHTTPItems(in []entity.CartItem) []CartItem {
	out := make([]CartItem, 0, len(in))
	for _, i := range in {
		out = append(out, toHTTPItem(i))
	}
	return out
}

func toHTTPSale(s entity.Sale) Sale {
	return Sale{
		ID:            s.ID,
		Date:          s.Date,
		CustomerName:  s.CustomerName,
		CustomerEmail: s.CustomerEmail,
		CustomerPhone: s.CustomerPhone,
		Items:         toHTTPItems(s.Items),
		Total:         s.Total,
		Status:        string(s.Status),
	}
}

func toHTTPSales(in []entity.Sale) []Sale {
	out := make([]Sale, 0, len(in))
	for _, s := range in {
		out = append(out, toHTTPSale(s))
	}
	return out
}
