// Package store mirrors remote collections into local in-memory state
// under a live-subscription model.
package store

import (
	"context"
	"errors"

	"github.com/mitchellh/mapstructure"
)

// Collection names in the remote store.
const (
	ColProducts     = "products"
	ColProjects     = "projects"
	ColRequests     = "serviceRequests"
	ColClients      = "clients"
	ColAppointments = "appointments"
	ColSales        = "sales"
	ColProfiles     = "users"
	ColConfig       = "config"

	DocCategories = "categories"
	DocGeneral    = "general"
)

// ErrNotFound indicates a document does not exist.
var ErrNotFound = errors.New("document not found")

// Document is one remote record: its id plus raw field data.
type Document struct {
	ID   string
	Data map[string]any
}

// SnapshotFunc receives an authoritative full view of a collection. It is
// invoked once per snapshot, in delivery order.
type SnapshotFunc func(docs []Document)

// DocSnapshotFunc receives the current state of a single document.
type DocSnapshotFunc func(doc Document, exists bool)

// CancelFunc stops a subscription. After it returns, no further snapshots
// are delivered.
type CancelFunc func()

// Remote abstracts the hosted document store. Implementations must deliver
// snapshots in the order the backing store emits them.
type Remote interface {
	Subscribe(ctx context.Context, collection string, fn SnapshotFunc) (CancelFunc, error)
	SubscribeDoc(ctx context.Context, collection, id string, fn DocSnapshotFunc) (CancelFunc, error)
	Set(ctx context.Context, collection, id string, record any) error
	Delete(ctx context.Context, collection, id string) error
	Read(ctx context.Context, collection, id string) (Document, error)
	Query(ctx context.Context, collection, field, op string, value any) ([]Document, error)
	List(ctx context.Context, collection string) ([]Document, error)
}

// Decode maps raw document data onto a typed record using the same field
// tags the Firestore client uses.
func Decode(data map[string]any, out any) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName:          "firestore",
		Result:           out,
		WeaklyTypedInput: true,
	})
	if err != nil {
		return err
	}
	return dec.Decode(data)
}

// Encode converts a typed record into raw document data. Used by backends
// that store documents as field maps.
func Encode(record any) (map[string]any, error) {
	out := map[string]any{}
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName: "firestore",
		Result:  &out,
	})
	if err != nil {
		return nil, err
	}
	if err := dec.Decode(record); err != nil {
		return nil, err
	}
	return out, nil
}
