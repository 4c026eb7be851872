package catalog

// ProductBody carries the writable product fields.
type ProductBody struct {
	Name        string   `json:"name"        minLength:"1" maxLength:"200" required:"true" doc:"Display name" example:"Monstera deliciosa"`
	Category    string   `json:"category"    minLength:"1"                 required:"true" doc:"Assigned category"`
	Price       float64  `json:"price"       minimum:"0"                   required:"true" doc:"Unit price"`
	Stock       int      `json:"stock"       minimum:"0"                                   doc:"Units in stock"`
	Description string   `json:"description"                                               doc:"Long description"`
	Images      []string `json:"images"                                                    doc:"Image URLs"`
	IsVisible   bool     `json:"isVisible"                                                 doc:"Shown in the public shop"`
}

// ProductCreateInput for POST /products
type ProductCreateInput struct {
	Body ProductBody
}

// ProductUpdateInput for PUT /products/{id}
type ProductUpdateInput struct {
	ID   string `path:"id" doc:"Product identifier"`
	Body ProductBody
}

// ProductDeleteInput for DELETE /products/{id}
type ProductDeleteInput struct {
	ID string `path:"id" doc:"Product identifier"`
}

// ProductListInput for GET /products
type ProductListInput struct {
	All bool `query:"all" doc:"Include hidden products (requires a session)"`
}

// CategoryAddInput for POST /categories
type CategoryAddInput struct {
	Body struct {
		Name string `json:"name" minLength:"1" maxLength:"100" required:"true" doc:"Category name" example:"Herramientas"`
	}
}

// CategoryDeleteInput for DELETE /categories/{name}
type CategoryDeleteInput struct {
	Name string `path:"name" doc:"Category name"`
}

// ProjectBody carries the writable project fields.
type ProjectBody struct {
	Title            string   `json:"title"            minLength:"1" maxLength:"200" required:"true" doc:"Display title"`
	Description      string   `json:"description"                                                    doc:"Long description"`
	ShortDescription string   `json:"shortDescription" maxLength:"300"                               doc:"Card blurb"`
	BeforeImage      string   `json:"beforeImage"                                                    doc:"Before photo URL"`
	AfterImage       string   `json:"afterImage"                                                     doc:"After photo URL"`
	Tags             []string `json:"tags"                                                           doc:"Project tags"`
	IsVisible        bool     `json:"isVisible"                                                      doc:"Shown in the public portfolio"`
	IsFeatured       bool     `json:"isFeatured"                                                     doc:"Pinned on the landing page"`
}

// ProjectCreateInput for POST /projects
type ProjectCreateInput struct {
	Body ProjectBody
}

// ProjectUpdateInput for PUT /projects/{id}
type ProjectUpdateInput struct {
	ID   string `path:"id" doc:"Project identifier"`
	Body ProjectBody
}

// ProjectDeleteInput for DELETE /projects/{id}
type ProjectDeleteInput struct {
	ID string `path:"id" doc:"Project identifier"`
}

// ProjectFeatureInput for POST /projects/{id}/featured
type ProjectFeatureInput struct {
	ID string `path:"id" doc:"Project identifier"`
}

// PaymentConfigInput for PUT /site/payment-config
type PaymentConfigInput struct {
	Body PaymentConfig
}

// HeroImagesInput for PUT /site/hero-images
type HeroImagesInput struct {
	Body struct {
		Images []string `json:"images" required:"true" doc:"Landing page hero image URLs"`
	}
}

// ShopEnabledInput for PUT /site/shop-enabled
type ShopEnabledInput struct {
	Body struct {
		Enabled bool `json:"enabled" doc:"Whether the public shop is open"`
	}
}
