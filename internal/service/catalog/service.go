// Package catalog owns the storefront data: products, project portfolio,
// the category list and the site configuration singletons.
package catalog

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/jardinverde/gardenia/internal/entity"
	"github.com/jardinverde/gardenia/internal/session"
	"github.com/jardinverde/gardenia/internal/store"
)

// Service errors
var (
	ErrProductNotFound = errors.New("product not found")
	ErrProjectNotFound = errors.New("project not found")

	// ErrFeaturedLimit is returned when a write would push the number of
	// featured projects past the cap; the featured set stays unchanged.
	ErrFeaturedLimit = errors.New("featured project limit reached")
)

// ProductParams for creating or updating a product.
type ProductParams struct {
	Name        string
	Category    string
	Price       float64
	Stock       int
	Description string
	Images      []string
	Visible     bool
}

// ProjectParams for creating or updating a portfolio project.
type ProjectParams struct {
	Title            string
	Description      string
	ShortDescription string
	BeforeImage      string
	AfterImage       string
	Tags             []string
	Visible          bool
	Featured         bool
}

// Service mutates catalog collections through the access gate.
type Service struct {
	hub  *store.Hub
	gate *session.Gate
}

// NewService creates a catalog service.
func NewService(hub *store.Hub, gate *session.Gate) *Service {
	return &Service{hub: hub, gate: gate}
}

// Products returns the mirrored products in arrival order.
func (s *Service) Products() []entity.Product {
	return s.hub.Products.Items()
}

// VisibleProducts returns the products shown on the storefront.
func (s *Service) VisibleProducts() []entity.Product {
	var out []entity.Product
	for _, p := range s.hub.Products.Items() {
		if p.Visible {
			out = append(out, p)
		}
	}
	return out
}

// Product looks up a single product by id.
func (s *Service) Product(id string) (entity.Product, error) {
	p, ok := s.hub.Products.Find(func(p entity.Product) bool { return p.ID == id })
	if !ok {
		return entity.Product{}, ErrProductNotFound
	}
	return p, nil
}

// AddProduct creates a product.
func (s *Service) AddProduct(ctx context.Context, sess *session.Session, params ProductParams) (entity.Product, error) {
	p := s.productFromParams(uuid.NewString(), params)
	if err := s.gate.Set(ctx, sess, store.ColProducts, p.ID, p); err != nil {
		return entity.Product{}, err
	}
	return p, nil
}

// UpdateProduct replaces a product record.
func (s *Service) UpdateProduct(ctx context.Context, sess *session.Session, id string, params ProductParams) (entity.Product, error) {
	if _, ok := s.hub.Products.Find(func(p entity.Product) bool { return p.ID == id }); !ok {
		return entity.Product{}, ErrProductNotFound
	}
	p := s.productFromParams(id, params)
	if err := s.gate.Set(ctx, sess, store.ColProducts, id, p); err != nil {
		return entity.Product{}, err
	}
	return p, nil
}

// DeleteProduct removes a product from the catalog.
func (s *Service) DeleteProduct(ctx context.Context, sess *session.Session, id string) error {
	return s.gate.Delete(ctx, sess, store.ColProducts, id)
}

func (s *Service) productFromParams(id string, params ProductParams) entity.Product {
	return entity.Product{
		ID:          id,
		Name:        params.Name,
		Category:    params.Category,
		Price:       params.Price,
		Stock:       params.Stock,
		Description: params.Description,
		Images:      params.Images,
		Visible:     params.Visible,
	}
}

// Categories returns the current category list.
func (s *Service) Categories() []string {
	return s.hub.Categories.Get().List
}

// AddCategory appends a category and persists the list.
func (s *Service) AddCategory(ctx context.Context, sess *session.Session, category string) error {
	current := s.hub.Categories.Get().List
	list := make([]string, 0, len(current)+1)
	list = append(list, current...)
	list = append(list, category)
	return s.gate.Set(ctx, sess, store.ColConfig, store.DocCategories, entity.CategoryList{List: list})
}

// DeleteCategory removes a category from the list.
func (s *Service) DeleteCategory(ctx context.Context, sess *session.Session, category string) error {
	current := s.hub.Categories.Get().List
	list := make([]string, 0, len(current))
	for _, c := range current {
		if c != category {
			list = append(list, c)
		}
	}
	return s.gate.Set(ctx, sess, store.ColConfig, store.DocCategories, entity.CategoryList{List: list})
}

// Projects returns the mirrored portfolio projects.
func (s *Service) Projects() []entity.Project {
	return s.hub.Projects.Items()
}

// AddProject creates a portfolio project, enforcing the featured cap.
func (s *Service) AddProject(ctx context.Context, sess *session.Session, params ProjectParams) (entity.Project, error) {
	if params.Featured && !s.canFeature("") {
		return entity.Project{}, ErrFeaturedLimit
	}
	p := s.projectFromParams(uuid.NewString(), params)
	if len(p.Tags) == 0 {
		p.Tags = []string{"General"}
	}
	if err := s.gate.Set(ctx, sess, store.ColProjects, p.ID, p); err != nil {
		return entity.Project{}, err
	}
	return p, nil
}

// UpdateProject replaces a project record, enforcing the featured cap.
func (s *Service) UpdateProject(ctx context.Context, sess *session.Session, id string, params ProjectParams) (entity.Project, error) {
	if _, ok := s.hub.Projects.Find(func(p entity.Project) bool { return p.ID == id }); !ok {
		return entity.Project{}, ErrProjectNotFound
	}
	if params.Featured && !s.canFeature(id) {
		return entity.Project{}, ErrFeaturedLimit
	}
	p := s.projectFromParams(id, params)
	if err := s.gate.Set(ctx, sess, store.ColProjects, id, p); err != nil {
		return entity.Project{}, err
	}
	return p, nil
}

// ToggleFeatured flips a project's featured flag, enforcing the cap when
// turning it on.
func (s *Service) ToggleFeatured(ctx context.Context, sess *session.Session, id string) (entity.Project, error) {
	p, ok := s.hub.Projects.Find(func(p entity.Project) bool { return p.ID == id })
	if !ok {
		return entity.Project{}, ErrProjectNotFound
	}
	if !p.Featured && !s.canFeature(id) {
		return entity.Project{}, ErrFeaturedLimit
	}
	p.Featured = !p.Featured
	if err := s.gate.Set(ctx, sess, store.ColProjects, id, p); err != nil {
		return entity.Project{}, err
	}
	return p, nil
}

// DeleteProject removes a portfolio project.
func (s *Service) DeleteProject(ctx context.Context, sess *session.Session, id string) error {
	return s.gate.Delete(ctx, sess, store.ColProjects, id)
}

// canFeature reports whether another project may take the featured flag.
// At most entity.MaxFeaturedProjects may hold it system-wide; excludeID
// ignores the project being rewritten.
func (s *Service) canFeature(excludeID string) bool {
	count := 0
	for _, p := range s.hub.Projects.Items() {
		if p.Featured && p.ID != excludeID {
			count++
		}
	}
	return count < entity.MaxFeaturedProjects
}

func (s *Service) projectFromParams(id string, params ProjectParams) entity.Project {
	return entity.Project{
		ID:               id,
		Title:            params.Title,
		Description:      params.Description,
		ShortDescription: params.ShortDescription,
		BeforeImage:      params.BeforeImage,
		AfterImage:       params.AfterImage,
		Tags:             params.Tags,
		Visible:          params.Visible,
		Featured:         params.Featured,
	}
}

// Site returns the current site configuration.
func (s *Service) Site() entity.SiteConfig {
	return s.hub.Site.Get()
}

// UpdatePaymentConfig persists the checkout transfer alias.
func (s *Service) UpdatePaymentConfig(ctx context.Context, sess *session.Session, cfg entity.PaymentConfig) error {
	site := s.hub.Site.Get()
	site.PaymentConfig = cfg
	return s.gate.Set(ctx, sess, store.ColConfig, store.DocGeneral, site)
}

// UpdateHeroImages persists the landing hero image list.
func (s *Service) UpdateHeroImages(ctx context.Context, sess *session.Session, images []string) error {
	site := s.hub.Site.Get()
	site.HeroImages = images
	return s.gate.Set(ctx, sess, store.ColConfig, store.DocGeneral, site)
}

// SetShopEnabled toggles the storefront.
func (s *Service) SetShopEnabled(ctx context.Context, sess *session.Session, enabled bool) error {
	site := s.hub.Site.Get()
	site.ShopEnabled = enabled
	return s.gate.Set(ctx, sess, store.ColConfig, store.DocGeneral, site)
}
