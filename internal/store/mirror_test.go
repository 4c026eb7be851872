package store

import (
	"testing"

	"github.com/jardinverde/gardenia/internal/entity"
)

func productDoc(id, name string, price float64, visible bool) Document {
	return Document{ID: id, Data: map[string]any{
		"id":        id,
		"name":      name,
		"price":     price,
		"isVisible": visible,
	}}
}

func TestMirrorApplyReplacesWholesale(t *testing.T) {
	m := NewMirror[entity.Product](ColProducts)

	m.Apply([]Document{
		productDoc("p1", "Monstera", 100, true),
		productDoc("p2", "Ficus", 200, false),
	})
	if m.Len() != 2 {
		t.Fatalf("expected 2 items, got %d", m.Len())
	}

	// The next snapshot is authoritative: p2 is gone, p3 appears.
	m.Apply([]Document{
		productDoc("p1", "Monstera", 150, true),
		productDoc("p3", "Potus", 50, true),
	})

	items := m.Items()
	if len(items) != 2 {
		t.Fatalf("expected 2 items after replace, got %d", len(items))
	}
	if items[0].ID != "p1" || items[0].Price != 150 {
		t.Errorf("expected updated p1 first, got %+v", items[0])
	}
	if items[1].ID != "p3" {
		t.Errorf("expected p3 second, got %+v", items[1])
	}
	if _, ok := m.Find(func(p entity.Product) bool { return p.ID == "p2" }); ok {
		t.Error("p2 should be absent after replacement snapshot")
	}
}

func TestMirrorApplySkipsUndecodable(t *testing.T) {
	m := NewMirror[entity.Product](ColProducts)

	m.Apply([]Document{
		productDoc("p1", "Monstera", 100, true),
		{ID: "bad", Data: map[string]any{"price": "not-a-number", "stock": []int{1}}},
		productDoc("p2", "Ficus", 200, true),
	})

	items := m.Items()
	if len(items) != 2 {
		t.Fatalf("expected malformed doc skipped, got %d items", len(items))
	}
	if items[0].ID != "p1" || items[1].ID != "p2" {
		t.Errorf("unexpected order: %+v", items)
	}
}

func TestMirrorItemsIsACopy(t *testing.T) {
	m := NewMirror[entity.Product](ColProducts)
	m.Apply([]Document{productDoc("p1", "Monstera", 100, true)})

	items := m.Items()
	items[0].Name = "mutated"

	if got := m.Items()[0].Name; got != "Monstera" {
		t.Errorf("mirror state mutated through Items copy: %q", got)
	}
}

func TestMirrorClear(t *testing.T) {
	m := NewMirror[entity.Client](ColClients)
	m.Apply([]Document{{ID: "c1", Data: map[string]any{"id": "c1", "name": "Marta"}}})

	m.Clear()
	if m.Len() != 0 {
		t.Fatalf("expected empty mirror after Clear, got %d", m.Len())
	}
}

func TestSingletonMissingDocKeepsDefault(t *testing.T) {
	s := NewSingleton(DocGeneral, entity.SiteConfig{ShopEnabled: true})

	s.Apply(Document{ID: DocGeneral}, false)

	if !s.Get().ShopEnabled {
		t.Error("missing config doc must keep the seeded default")
	}
}

func TestSingletonPartialDocKeepsOtherFields(t *testing.T) {
	s := NewSingleton(DocGeneral, entity.SiteConfig{ShopEnabled: true})
	s.Apply(Document{ID: DocGeneral, Data: map[string]any{
		"heroImages": []any{"a.jpg", "b.jpg"},
	}}, true)

	got := s.Get()
	if len(got.HeroImages) != 2 {
		t.Fatalf("expected hero images applied, got %+v", got.HeroImages)
	}
	if !got.ShopEnabled {
		t.Error("field absent from the document must keep its current value")
	}
}
