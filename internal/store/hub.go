package store

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"

	"go.uber.org/zap"

	"github.com/jardinverde/gardenia/internal/common"
	"github.com/jardinverde/gardenia/internal/entity"
)

// DefaultCategories seeds the category list until the config document
// first arrives.
var DefaultCategories = []string{"Plantas", "Macetas", "Tierra", "Herramientas"}

// Hub owns all collection mirrors. The public set is subscribed for the
// whole process lifetime; the protected set is opened while a session is
// established and cleared to empty the moment the last session closes.
type Hub struct {
	remote Remote

	Products     *Mirror[entity.Product]
	Projects     *Mirror[entity.Project]
	Requests     *Mirror[entity.ServiceRequest]
	Clients      *Mirror[entity.Client]
	Appointments *Mirror[entity.Appointment]
	Sales        *Mirror[entity.Sale]
	Profiles     *Mirror[entity.Profile]
	Categories   *Singleton[entity.CategoryList]
	Site         *Singleton[entity.SiteConfig]

	mu               sync.Mutex
	publicCancels    []CancelFunc
	protectedCancels []CancelFunc
	protectedOpen    bool
}

// NewHub creates a hub with empty mirrors over the given remote.
func NewHub(remote Remote) *Hub {
	return &Hub{
		remote:       remote,
		Products:     NewMirror[entity.Product](ColProducts),
		Projects:     NewMirror[entity.Project](ColProjects),
		Requests:     NewMirror[entity.ServiceRequest](ColRequests),
		Clients:      NewMirror[entity.Client](ColClients),
		Appointments: NewMirror[entity.Appointment](ColAppointments),
		Sales:        NewMirror[entity.Sale](ColSales),
		Profiles:     NewMirror[entity.Profile](ColProfiles),
		Categories:   NewSingleton(DocCategories, entity.CategoryList{List: DefaultCategories}),
		Site:         NewSingleton(DocGeneral, entity.SiteConfig{ShopEnabled: true}),
	}
}

// Remote exposes the backing store for the mutation layer.
func (h *Hub) Remote() Remote {
	return h.remote
}

// subscribe wires a collection listener so that cancelling it turns any
// in-flight late delivery into a no-op.
func (h *Hub) subscribe(ctx context.Context, collection string, fn SnapshotFunc) (CancelFunc, error) {
	var done atomic.Bool
	inner, err := h.remote.Subscribe(ctx, collection, func(docs []Document) {
		if done.Load() {
			return
		}
		fn(docs)
	})
	if err != nil {
		return nil, err
	}
	return func() {
		done.Store(true)
		inner()
	}, nil
}

func (h *Hub) subscribeDoc(ctx context.Context, collection, id string, fn DocSnapshotFunc) (CancelFunc, error) {
	var done atomic.Bool
	inner, err := h.remote.SubscribeDoc(ctx, collection, id, func(doc Document, exists bool) {
		if done.Load() {
			return
		}
		fn(doc, exists)
	})
	if err != nil {
		return nil, err
	}
	return func() {
		done.Store(true)
		inner()
	}, nil
}

// Start opens the public subscriptions: products, projects and the two
// configuration singletons. Public collections are world-readable and
// stay subscribed until Close.
func (h *Hub) Start(ctx context.Context) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	cols := []struct {
		name string
		fn   SnapshotFunc
	}{
		{ColProducts, h.Products.Apply},
		{ColProjects, h.Projects.Apply},
	}
	for _, s := range cols {
		cancel, err := h.subscribe(ctx, s.name, s.fn)
		if err != nil {
			h.cancelAllLocked()
			return err
		}
		h.publicCancels = append(h.publicCancels, cancel)
	}

	docs := []struct {
		id string
		fn DocSnapshotFunc
	}{
		{DocCategories, h.Categories.Apply},
		{DocGeneral, h.Site.Apply},
	}
	for _, s := range docs {
		cancel, err := h.subscribeDoc(ctx, ColConfig, s.id, s.fn)
		if err != nil {
			h.cancelAllLocked()
			return err
		}
		h.publicCancels = append(h.publicCancels, cancel)
	}

	common.Logger().Info("public mirrors subscribed")
	return nil
}

// OpenProtected subscribes the session-gated collections. Idempotent.
func (h *Hub) OpenProtected(ctx context.Context) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.protectedOpen {
		return nil
	}

	cols := []struct {
		name string
		fn   SnapshotFunc
	}{
		{ColRequests, h.Requests.Apply},
		{ColClients, h.Clients.Apply},
		{ColAppointments, h.Appointments.Apply},
		{ColSales, h.Sales.Apply},
		{ColProfiles, h.Profiles.Apply},
	}
	for _, s := range cols {
		cancel, err := h.subscribe(ctx, s.name, s.fn)
		if err != nil {
			h.closeProtectedLocked()
			return err
		}
		h.protectedCancels = append(h.protectedCancels, cancel)
	}

	h.protectedOpen = true
	common.Logger().Info("protected mirrors subscribed")
	return nil
}

// CloseProtected cancels the protected subscriptions and empties every
// protected mirror, synchronously, before returning.
func (h *Hub) CloseProtected() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.closeProtectedLocked()
}

func (h *Hub) closeProtectedLocked() {
	for _, cancel := range h.protectedCancels {
		cancel()
	}
	h.protectedCancels = nil
	h.protectedOpen = false

	h.Requests.Clear()
	h.Clients.Clear()
	h.Appointments.Clear()
	h.Sales.Clear()
	h.Profiles.Clear()
}

// ErrUnknownCollection indicates a Resync target with no mirror. The
// config singletons are document subscriptions and cannot be resynced.
var ErrUnknownCollection = errors.New("unknown collection")

// Resync re-reads a collection once and applies it through the normal
// snapshot path. It is the explicit reconciliation step used after a
// failed write instead of trusting optimistic local state.
func (h *Hub) Resync(ctx context.Context, collection string) error {
	var apply func([]Document)
	switch collection {
	case ColProducts:
		apply = h.Products.Apply
	case ColProjects:
		apply = h.Projects.Apply
	case ColRequests:
		apply = h.Requests.Apply
	case ColClients:
		apply = h.Clients.Apply
	case ColAppointments:
		apply = h.Appointments.Apply
	case ColSales:
		apply = h.Sales.Apply
	case ColProfiles:
		apply = h.Profiles.Apply
	default:
		return fmt.Errorf("%w: %q", ErrUnknownCollection, collection)
	}

	docs, err := h.remote.List(ctx, collection)
	if err != nil {
		common.Logger().Error("resync failed", zap.String("collection", collection), zap.Error(err))
		return err
	}
	apply(docs)
	return nil
}

// Close cancels every subscription. Mandatory on teardown so no listener
// goroutine outlives the process shutdown sequence.
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.cancelAllLocked()
}

func (h *Hub) cancelAllLocked() {
	h.closeProtectedLocked()
	for _, cancel := range h.publicCancels {
		cancel()
	}
	h.publicCancels = nil
}
