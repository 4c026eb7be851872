package shop

// CartOutput for cart state responses.
type CartOutput struct {
	Body struct {
		Items []CartItem `json:"items"`
	}
}

// SaleOutput for POST /cart/checkout
type SaleOutput struct {
	Body Sale
}

// SaleListOutput for GET /sales
type SaleListOutput struct {
	Body struct {
		Sales []Sale `json:"sales"`
	}
}
