package catalog

import (
	"context"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/jardinverde/gardenia/internal/entity"
	"github.com/jardinverde/gardenia/internal/session"
	catalogsvc "github.com/jardinverde/gardenia/internal/service/catalog"
)

// Register registers product, category, project and site-config endpoints.
func Register(api huma.API, svc *catalogsvc.Service) {
	registerProducts(api, svc)
	registerCategories(api, svc)
	registerProjects(api, svc)
	registerSite(api, svc)
}

func registerProducts(api huma.API, svc *catalogsvc.Service) {
	huma.Register(api, huma.Operation{
		OperationID: "list-products",
		Method:      http.MethodGet,
		Path:        "/products",
		Summary:     "List products",
		Description: "Lists visible products. With all=true and a session, hidden products are included.",
		Tags:        []string{"Catalog"},
	}, func(ctx context.Context, input *ProductListInput) (*ProductListOutput, error) {
		out := &ProductListOutput{}
		if input.All && session.FromContext(ctx) != nil {
			out.Body.Products = toHTTPProducts(svc.Products())
		} else {
			out.Body.Products = toHTTPProducts(svc.VisibleProducts())
		}
		return out, nil
	})

	huma.Register(api, huma.Operation{
		OperationID:   "create-product",
		Method:        http.MethodPost,
		Path:          "/products",
		Summary:       "Create product",
		Tags:          []string{"Catalog"},
		DefaultStatus: http.StatusCreated,
		Security: []map[string][]string{
			{"bearerAuth": {}},
		},
	}, func(ctx context.Context, input *ProductCreateInput) (*ProductOutput, error) {
		p, err := svc.AddProduct(ctx, session.FromContext(ctx), productParams(input.Body))
		if err != nil {
			return nil, mapCatalogError(err)
		}
		return &ProductOutput{Body: toHTTPProduct(p)}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "update-product",
		Method:      http.MethodPut,
		Path:        "/products/{id}",
		Summary:     "Update product",
		Tags:        []string{"Catalog"},
		Security: []map[string][]string{
			{"bearerAuth": {}},
		},
	}, func(ctx context.Context, input *ProductUpdateInput) (*ProductOutput, error) {
		p, err := svc.UpdateProduct(ctx, session.FromContext(ctx), input.ID, productParams(input.Body))
		if err != nil {
			return nil, mapCatalogError(err)
		}
		return &ProductOutput{Body: toHTTPProduct(p)}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID:   "delete-product",
		Method:        http.MethodDelete,
		Path:          "/products/{id}",
		Summary:       "Delete product",
		Tags:          []string{"Catalog"},
		DefaultStatus: http.StatusNoContent,
		Security: []map[string][]string{
			{"bearerAuth": {}},
		},
	}, func(ctx context.Context, input *ProductDeleteInput) (*struct{}, error) {
		if err := svc.DeleteProduct(ctx, session.FromContext(ctx), input.ID); err != nil {
			return nil, mapCatalogError(err)
		}
		return nil, nil
	})
}

func registerCategories(api huma.API, svc *catalogsvc.Service) {
	huma.Register(api, huma.Operation{
		OperationID: "list-categories",
		Method:      http.MethodGet,
		Path:        "/categories",
		Summary:     "List product categories",
		Tags:        []string{"Catalog"},
	}, func(ctx context.Context, _ *struct{}) (*CategoryListOutput, error) {
		out := &CategoryListOutput{}
		out.Body.Categories = svc.Categories()
		return out, nil
	})

	huma.Register(api, huma.Operation{
		OperationID:   "add-category",
		Method:        http.MethodPost,
		Path:          "/categories",
		Summary:       "Add product category",
		Tags:          []string{"Catalog"},
		DefaultStatus: http.StatusCreated,
		Security: []map[string][]string{
			{"bearerAuth": {}},
		},
	}, func(ctx context.Context, input *CategoryAddInput) (*CategoryListOutput, error) {
		if err := svc.AddCategory(ctx, session.FromContext(ctx), input.Body.Name); err != nil {
			return nil, mapCatalogError(err)
		}
		out := &CategoryListOutput{}
		out.Body.Categories = svc.Categories()
		return out, nil
	})

	huma.Register(api, huma.Operation{
		OperationID:   "delete-category",
		Method:        http.MethodDelete,
		Path:          "/categories/{name}",
		Summary:       "Delete product category",
		Tags:          []string{"Catalog"},
		DefaultStatus: http.StatusNoContent,
		Security: []map[string][]string{
			{"bearerAuth": {}},
		},
	}, func(ctx context.Context, input *CategoryDeleteInput) (*struct{}, error) {
		if err := svc.DeleteCategory(ctx, session.FromContext(ctx), input.Name); err != nil {
			return nil, mapCatalogError(err)
		}
		return nil, nil
	})
}

func registerProjects(api huma.API, svc *catalogsvc.Service) {
	huma.Register(api, huma.Operation{
		OperationID: "list-projects",
		Method:      http.MethodGet,
		Path:        "/projects",
		Summary:     "List portfolio projects",
		Tags:        []string{"Catalog"},
	}, func(ctx context.Context, _ *struct{}) (*ProjectListOutput, error) {
		out := &ProjectListOutput{}
		out.Body.Projects = toHTTPProjects(svc.Projects())
		return out, nil
	})

	huma.Register(api, huma.Operation{
		OperationID:   "create-project",
		Method:        http.MethodPost,
		Path:          "/projects",
		Summary:       "Create portfolio project",
		Tags:          []string{"Catalog"},
		DefaultStatus: http.StatusCreated,
		Security: []map[string][]string{
			{"bearerAuth": {}},
		},
	}, func(ctx context.Context, input *ProjectCreateInput) (*ProjectOutput, error) {
		p, err := svc.AddProject(ctx, session.FromContext(ctx), projectParams(input.Body))
		if err != nil {
			return nil, mapCatalogError(err)
		}
		return &ProjectOutput{Body: toHTTPProject(p)}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "update-project",
		Method:      http.MethodPut,
		Path:        "/projects/{id}",
		Summary:     "Update portfolio project",
		Tags:        []string{"Catalog"},
		Security: []map[string][]string{
			{"bearerAuth": {}},
		},
	}, func(ctx context.Context, input *ProjectUpdateInput) (*ProjectOutput, error) {
		p, err := svc.UpdateProject(ctx, session.FromContext(ctx), input.ID, projectParams(input.Body))
		if err != nil {
			return nil, mapCatalogError(err)
		}
		return &ProjectOutput{Body: toHTTPProject(p)}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "toggle-project-featured",
		Method:      http.MethodPost,
		Path:        "/projects/{id}/featured",
		Summary:     "Toggle project featured flag",
		Description: "Toggles the featured flag. At most five projects may be featured at a time.",
		Tags:        []string{"Catalog"},
		Security: []map[string][]string{
			{"bearerAuth": {}},
		},
	}, func(ctx context.Context, input *ProjectFeatureInput) (*ProjectOutput, error) {
		p, err := svc.ToggleFeatured(ctx, session.FromContext(ctx), input.ID)
		if err != nil {
			return nil, mapCatalogError(err)
		}
		return &ProjectOutput{Body: toHTTPProject(p)}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID:   "delete-project",
		Method:        http.MethodDelete,
		Path:          "/projects/{id}",
		Summary:       "Delete portfolio project",
		Tags:          []string{"Catalog"},
		DefaultStatus: http.StatusNoContent,
		Security: []map[string][]string{
			{"bearerAuth": {}},
		},
	}, func(ctx context.Context, input *ProjectDeleteInput) (*struct{}, error) {
		if err := svc.DeleteProject(ctx, session.FromContext(ctx), input.ID); err != nil {
			return nil, mapCatalogError(err)
		}
		return nil, nil
	})
}

func registerSite(api huma.API, svc *catalogsvc.Service) {
	huma.Register(api, huma.Operation{
		OperationID: "get-site-config",
		Method:      http.MethodGet,
		Path:        "/site",
		Summary:     "Get site configuration",
		Tags:        []string{"Site"},
	}, func(ctx context.Context, _ *struct{}) (*SiteOutput, error) {
		return &SiteOutput{Body: toHTTPSite(svc.Site())}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID:   "update-payment-config",
		Method:        http.MethodPut,
		Path:          "/site/payment-config",
		Summary:       "Update payment configuration",
		Tags:          []string{"Site"},
		DefaultStatus: http.StatusNoContent,
		Security: []map[string][]string{
			{"bearerAuth": {}},
		},
	}, func(ctx context.Context, input *PaymentConfigInput) (*struct{}, error) {
		err := svc.UpdatePaymentConfig(ctx, session.FromContext(ctx), entity.PaymentConfig{
			Alias:      input.Body.Alias,
			HolderName: input.Body.HolderName,
		})
		if err != nil {
			return nil, mapCatalogError(err)
		}
		return nil, nil
	})

	huma.Register(api, huma.Operation{
		OperationID:   "update-hero-images",
		Method:        http.MethodPut,
		Path:          "/site/hero-images",
		Summary:       "Update hero images",
		Tags:          []string{"Site"},
		DefaultStatus: http.StatusNoContent,
		Security: []map[string][]string{
			{"bearerAuth": {}},
		},
	}, func(ctx context.Context, input *HeroImagesInput) (*struct{}, error) {
		if err := svc.UpdateHeroImages(ctx, session.FromContext(ctx), input.Body.Images); err != nil {
			return nil, mapCatalogError(err)
		}
		return nil, nil
	})

	huma.Register(api, huma.Operation{
		OperationID:   "set-shop-enabled",
		Method:        http.MethodPut,
		Path:          "/site/shop-enabled",
		Summary:       "Open or close the public shop",
		Tags:          []string{"Site"},
		DefaultStatus: http.StatusNoContent,
		Security: []map[string][]string{
			{"bearerAuth": {}},
		},
	}, func(ctx context.Context, input *ShopEnabledInput) (*struct{}, error) {
		if err := svc.SetShopEnabled(ctx, session.FromContext(ctx), input.Body.Enabled); err != nil {
			return nil, mapCatalogError(err)
		}
		return nil, nil
	})
}

func productParams(b ProductBody) catalogsvc.ProductParams {
	return catalogsvc.ProductParams{
		Name:        b.Name,
		Category:    b.Category,
		Price:       b.Price,
		Stock:       b.Stock,
		Description: b.Description,
		Images:      b.Images,
		Visible:     b.IsVisible,
	}
}

func projectParams(b ProjectBody) catalogsvc.ProjectParams {
	return catalogsvc.ProjectParams{
		Title:            b.Title,
		Description:      b.Description,
		ShortDescription: b.ShortDescription,
		BeforeImage:      b.BeforeImage,
		AfterImage:       b.AfterImage,
		Tags:             b.Tags,
		Visible:          b.IsVisible,
		Featured:         b.IsFeatured,
	}
}

func mapCatalogError(err error) error {
	switch {
	case errors.Is(err, session.ErrNoSession):
		return huma.Error401Unauthorized("sign-in required")
	case errors.Is(err, catalogsvc.ErrProductNotFound):
		return huma.Error404NotFound("product not found")
	case errors.Is(err, catalogsvc.ErrProjectNotFound):
		return huma.Error404NotFound("project not found")
	case errors.Is(err, catalogsvc.ErrFeaturedLimit):
		return huma.Error409Conflict("featured project limit reached")
	default:
		return huma.Error500InternalServerError("internal error")
	}
}
