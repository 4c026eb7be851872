package catalog

import "github.com/jardinverde/gardenia/internal/entity"

// Product represents a shop product in responses.
type Product struct {
	ID          string   `json:"id"          doc:"Product identifier"`
	Name        string   `json:"name"        doc:"Display name"          example:"Monstera deliciosa"`
	Category    string   `json:"category"    doc:"Assigned category"     example:"Plantas de Interior"`
	Price       float64  `json:"price"       doc:"Unit price"            example:"15000"`
	Stock       int      `json:"stock"       doc:"Units in stock"        example:"12"`
	Description string   `json:"description" doc:"Long description"`
	Images      []string `json:"images"      doc:"Image URLs"`
	IsVisible   bool     `json:"isVisible"   doc:"Shown in the public shop"`
}

// Project represents a portfolio project in responses.
type Project struct {
	ID               string   `json:"id"               doc:"Project identifier"`
	Title            string   `json:"title"            doc:"Display title" example:"Patio Palermo"`
	Description      string   `json:"description"      doc:"Long description"`
	ShortDescription string   `json:"shortDescription" doc:"Card blurb"`
	BeforeImage      string   `json:"beforeImage"      doc:"Before photo URL"`
	AfterImage       string   `json:"afterImage"       doc:"After photo URL"`
	Tags             []string `json:"tags"             doc:"Project tags"`
	IsVisible        bool     `json:"isVisible"        doc:"Shown in the public portfolio"`
	IsFeatured       bool     `json:"isFeatured"       doc:"Pinned on the landing page"`
}

// PaymentConfig represents the bank-transfer details shown at checkout.
type PaymentConfig struct {
	Alias      string `json:"alias"      doc:"Transfer alias"  example:"jardin.verde.mp"`
	HolderName string `json:"holderName" doc:"Account holder"  example:"Jardin Verde SRL"`
}

// SiteConfig represents the general site configuration.
type SiteConfig struct {
	PaymentConfig PaymentConfig `json:"paymentConfig"`
	HeroImages    []string      `json:"heroImages"    doc:"Landing page hero image URLs"`
	IsShopEnabled bool          `json:"isShopEnabled" doc:"Whether the public shop is open"`
}

func toHTTPProduct(p entity.Product) Product {
	return Product{
		ID:          p.ID,
		Name:        p.Name,
		Category:    p.Category,
		Price:       p.Price,
		Stock:       p.Stock,
		Description: p.Description,
		Images:      p.Images,
		IsVisible:   p.Visible,
	}
}

func toHTTPProducts(in []entity.Product) []Product {
	out := make([]Product, 0, len(in))
	for _, p := range in {
		out = append(out, toHTTPProduct(p))
	}
	return out
}

func toHTTPProject(p entity.Project) Project {
	return Project{
		ID:               p.ID,
		Title:            p.Title,
		Description:      p.Description,
		ShortDescription: p.ShortDescription,
		BeforeImage:      p.BeforeImage,
		AfterImage:       p.AfterImage,
		Tags:             p.Tags,
		IsVisible:        p.Visible,
		IsFeatured:       p.Featured,
	}
}

func toHTTPProjects(in []entity.Project) []Project {
	out := make([]Project, 0, len(in))
	for _, p := range in {
		out = append(out, toHTTPProject(p))
	}
	return out
}

func toHTTPSite(c entity.SiteConfig) SiteConfig {
	return SiteConfig{
		PaymentConfig: PaymentConfig{
			Alias:      c.PaymentConfig.Alias,
			HolderName: c.PaymentConfig.HolderName,
		},
		HeroImages:    c.HeroImages,
		IsShopEnabled: c.ShopEnabled,
	}
}
