package shop

// CartInput for GET /cart and DELETE /cart
type CartInput struct {
	CartID string `header:"X-Cart-Id" minLength:"1" maxLength:"128" required:"true" doc:"Caller-chosen cart identifier"`
}

// CartAddInput for POST /cart/items
type CartAddInput struct {
	CartID string `header:"X-Cart-Id" minLength:"1" maxLength:"128" required:"true" doc:"Caller-chosen cart identifier"`
	Body   struct {
		ProductID string `json:"productId" required:"true" doc:"Product to add one unit of"`
	}
}

// CartRemoveInput for DELETE /cart/items/{productId}
type CartRemoveInput struct {
	CartID    string `header:"X-Cart-Id" minLength:"1" maxLength:"128" required:"true" doc:"Caller-chosen cart identifier"`
	ProductID string `path:"productId" doc:"Product line to drop"`
}

// CheckoutInput for POST /cart/checkout
type CheckoutInput struct {
	CartID string `header:"X-Cart-Id" minLength:"1" maxLength:"128" required:"true" doc:"Caller-chosen cart identifier"`
	Body   struct {
		Name  string `json:"name"  minLength:"1" maxLength:"200" required:"true" doc:"Buyer name"`
		Email string `json:"email" format:"email"                required:"true" doc:"Buyer email"`
		Phone string `json:"phone"                                               doc:"Buyer phone"`
	}
}

// SaleCompleteInput for PUT /sales/{id}/complete
type SaleCompleteInput struct {
	ID string `path:"id" doc:"Sale identifier"`
}
