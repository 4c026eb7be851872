package catalog

import (
	"context"
	"errors"
	"testing"

	"github.com/jardinverde/gardenia/internal/entity"
	"github.com/jardinverde/gardenia/internal/session"
	"github.com/jardinverde/gardenia/internal/store"
)

func newTestService(t *testing.T) (*Service, *session.Session) {
	t.Helper()
	remote := store.NewMemoryRemote()
	hub := store.NewHub(remote)
	if err := hub.Start(context.Background()); err != nil {
		t.Fatalf("hub start: %v", err)
	}
	t.Cleanup(hub.Close)

	sess := &session.Session{
		Token:   "token-uid-0",
		Profile: entity.Profile{ID: "uid-0", Role: entity.RoleAdmin},
		State:   session.StateEstablished,
	}
	return NewService(hub, session.NewGate(remote)), sess
}

func TestProductLifecycle(t *testing.T) {
	svc, sess := newTestService(t)
	ctx := context.Background()

	p, err := svc.AddProduct(ctx, sess, ProductParams{
		Name: "Monstera", Category: "Plantas", Price: 15000, Stock: 3, Visible: true,
	})
	if err != nil {
		t.Fatalf("add product: %v", err)
	}

	hidden, err := svc.AddProduct(ctx, sess, ProductParams{
		Name: "Pala", Category: "Herramientas", Price: 8000, Visible: false,
	})
	if err != nil {
		t.Fatalf("add product: %v", err)
	}

	if len(svc.Products()) != 2 {
		t.Fatalf("expected 2 products, got %d", len(svc.Products()))
	}
	visible := svc.VisibleProducts()
	if len(visible) != 1 || visible[0].ID != p.ID {
		t.Errorf("expected only the visible product on the storefront, got %+v", visible)
	}

	got, err := svc.Product(hidden.ID)
	if err != nil || got.Name != "Pala" {
		t.Fatalf("product lookup failed: %v %+v", err, got)
	}

	updated, err := svc.UpdateProduct(ctx, sess, p.ID, ProductParams{
		Name: "Monstera XL", Category: "Plantas", Price: 20000, Stock: 2, Visible: true,
	})
	if err != nil {
		t.Fatalf("update product: %v", err)
	}
	if updated.Price != 20000 {
		t.Errorf("price not updated: %+v", updated)
	}

	if _, err := svc.UpdateProduct(ctx, sess, "nadie", ProductParams{Name: "x"}); !errors.Is(err, ErrProductNotFound) {
		t.Fatalf("expected ErrProductNotFound, got %v", err)
	}

	if err := svc.DeleteProduct(ctx, sess, hidden.ID); err != nil {
		t.Fatalf("delete product: %v", err)
	}
	if len(svc.Products()) != 1 {
		t.Error("product not removed from mirror")
	}
}

func TestCategories(t *testing.T) {
	svc, sess := newTestService(t)
	ctx := context.Background()

	if len(svc.Categories()) != len(store.DefaultCategories) {
		t.Fatalf("expected seeded defaults, got %v", svc.Categories())
	}

	if err := svc.AddCategory(ctx, sess, "Bonsai"); err != nil {
		t.Fatalf("add category: %v", err)
	}
	cats := svc.Categories()
	if cats[len(cats)-1] != "Bonsai" {
		t.Errorf("expected Bonsai appended, got %v", cats)
	}

	if err := svc.DeleteCategory(ctx, sess, "Bonsai"); err != nil {
		t.Fatalf("delete category: %v", err)
	}
	for _, c := range svc.Categories() {
		if c == "Bonsai" {
			t.Error("category not removed")
		}
	}
}

func TestProjectDefaultTag(t *testing.T) {
	svc, sess := newTestService(t)

	p, err := svc.AddProject(context.Background(), sess, ProjectParams{Title: "Patio", Visible: true})
	if err != nil {
		t.Fatalf("add project: %v", err)
	}
	if len(p.Tags) != 1 || p.Tags[0] != "General" {
		t.Errorf("expected default tag, got %v", p.Tags)
	}
}

func TestFeaturedCap(t *testing.T) {
	svc, sess := newTestService(t)
	ctx := context.Background()

	for i := 0; i < entity.MaxFeaturedProjects; i++ {
		if _, err := svc.AddProject(ctx, sess, ProjectParams{Title: "Destacado", Featured: true}); err != nil {
			t.Fatalf("add featured project %d: %v", i, err)
		}
	}

	// The sixth featured project must be refused outright.
	if _, err := svc.AddProject(ctx, sess, ProjectParams{Title: "Sexto", Featured: true}); !errors.Is(err, ErrFeaturedLimit) {
		t.Fatalf("expected ErrFeaturedLimit, got %v", err)
	}

	extra, err := svc.AddProject(ctx, sess, ProjectParams{Title: "Comun"})
	if err != nil {
		t.Fatalf("add plain project: %v", err)
	}
	if _, err := svc.ToggleFeatured(ctx, sess, extra.ID); !errors.Is(err, ErrFeaturedLimit) {
		t.Fatalf("expected toggle to hit the cap, got %v", err)
	}

	// The featured set is unchanged by the refused operations.
	count := 0
	for _, p := range svc.Projects() {
		if p.Featured {
			count++
		}
	}
	if count != entity.MaxFeaturedProjects {
		t.Errorf("expected %d featured projects, got %d", entity.MaxFeaturedProjects, count)
	}

	// Re-saving an already featured project is not a new slot.
	featured := svc.Projects()[0]
	if _, err := svc.UpdateProject(ctx, sess, featured.ID, ProjectParams{Title: "Renombrado", Featured: true}); err != nil {
		t.Fatalf("update featured project: %v", err)
	}

	// Unfeature one, then the cap frees a slot.
	if _, err := svc.ToggleFeatured(ctx, sess, featured.ID); err != nil {
		t.Fatalf("unfeature: %v", err)
	}
	if _, err := svc.ToggleFeatured(ctx, sess, extra.ID); err != nil {
		t.Fatalf("expected freed slot, got %v", err)
	}
}

func TestSiteConfigWrites(t *testing.T) {
	svc, sess := newTestService(t)
	ctx := context.Background()

	if !svc.Site().ShopEnabled {
		t.Fatal("shop should default to enabled")
	}

	if err := svc.UpdatePaymentConfig(ctx, sess, entity.PaymentConfig{Alias: "jardin.mp", HolderName: "Jardin Verde"}); err != nil {
		t.Fatalf("update payment config: %v", err)
	}
	if err := svc.UpdateHeroImages(ctx, sess, []string{"hero.jpg"}); err != nil {
		t.Fatalf("update hero images: %v", err)
	}
	if err := svc.SetShopEnabled(ctx, sess, false); err != nil {
		t.Fatalf("set shop enabled: %v", err)
	}

	site := svc.Site()
	if site.PaymentConfig.Alias != "jardin.mp" {
		t.Errorf("payment config lost: %+v", site.PaymentConfig)
	}
	if len(site.HeroImages) != 1 || site.HeroImages[0] != "hero.jpg" {
		t.Errorf("hero images lost: %v", site.HeroImages)
	}
	if site.ShopEnabled {
		t.Error("shop still enabled after toggle")
	}
}

func TestAnonymousCatalogMutationRejected(t *testing.T) {
	svc, _ := newTestService(t)

	if _, err := svc.AddProduct(context.Background(), nil, ProductParams{Name: "Monstera"}); !errors.Is(err, session.ErrNoSession) {
		t.Fatalf("expected ErrNoSession, got %v", err)
	}
	if len(svc.Products()) != 0 {
		t.Error("rejected mutation must not reach the mirror")
	}
}
