package catalog

// ProductListOutput for GET /products
type ProductListOutput struct {
	Body struct {
		Products []Product `json:"products"`
	}
}

// ProductOutput for product create and update responses.
type ProductOutput struct {
	Body Product
}

// CategoryListOutput for GET /categories
type CategoryListOutput struct {
	Body struct {
		Categories []string `json:"categories"`
	}
}

// ProjectListOutput for GET /projects
type ProjectListOutput struct {
	Body struct {
		Projects []Project `json:"projects"`
	}
}

// ProjectOutput for project create, update and feature-toggle responses.
type ProjectOutput struct {
	Body Project
}

// SiteOutput for GET /site
type SiteOutput struct {
	Body SiteConfig
}
