package store

import (
	"context"

	"cloud.google.com/go/firestore"
	"go.uber.org/zap"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/jardinverde/gardenia/internal/common"
)

// FirestoreRemote implements Remote on top of a Firestore client using
// snapshot listeners for subscriptions.
type FirestoreRemote struct {
	client *firestore.Client
}

// NewFirestoreRemote creates a Firestore-backed remote store.
func NewFirestoreRemote(client *firestore.Client) *FirestoreRemote {
	return &FirestoreRemote{client: client}
}

// Subscribe starts a snapshot listener on a collection. Each emitted
// snapshot is converted to a full document set and handed to fn in
// delivery order. Listener errors are logged and end the subscription;
// the consumer keeps its last known value.
func (r *FirestoreRemote) Subscribe(ctx context.Context, collection string, fn SnapshotFunc) (CancelFunc, error) {
	ctx, cancel := context.WithCancel(ctx)
	it := r.client.Collection(collection).Snapshots(ctx)

	go func() {
		defer it.Stop()
		for {
			snap, err := it.Next()
			if err != nil {
				if status.Code(err) != codes.Canceled {
					common.Logger().Error("collection listener failed",
						zap.String("collection", collection), zap.Error(err))
				}
				return
			}
			docs := make([]Document, 0, snap.Size)
			for {
				d, err := snap.Documents.Next()
				if err == iterator.Done {
					break
				}
				if err != nil {
					common.Logger().Error("snapshot iteration failed",
						zap.String("collection", collection), zap.Error(err))
					break
				}
				docs = append(docs, Document{ID: d.Ref.ID, Data: d.Data()})
			}
			fn(docs)
		}
	}()

	return CancelFunc(cancel), nil
}

// SubscribeDoc starts a snapshot listener on a single document, used for
// the singleton config records.
func (r *FirestoreRemote) SubscribeDoc(ctx context.Context, collection, id string, fn DocSnapshotFunc) (CancelFunc, error) {
	ctx, cancel := context.WithCancel(ctx)
	it := r.client.Collection(collection).Doc(id).Snapshots(ctx)

	go func() {
		defer it.Stop()
		for {
			snap, err := it.Next()
			if err != nil {
				if status.Code(err) != codes.Canceled {
					common.Logger().Error("document listener failed",
						zap.String("collection", collection), zap.String("id", id), zap.Error(err))
				}
				return
			}
			if !snap.Exists() {
				fn(Document{ID: id}, false)
				continue
			}
			fn(Document{ID: id, Data: snap.Data()}, true)
		}
	}()

	return CancelFunc(cancel), nil
}

func (r *FirestoreRemote) Set(ctx context.Context, collection, id string, record any) error {
	_, err := r.client.Collection(collection).Doc(id).Set(ctx, record)
	return err
}

func (r *FirestoreRemote) Delete(ctx context.Context, collection, id string) error {
	_, err := r.client.Collection(collection).Doc(id).Delete(ctx)
	return err
}

func (r *FirestoreRemote) Read(ctx context.Context, collection, id string) (Document, error) {
	snap, err := r.client.Collection(collection).Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return Document{}, ErrNotFound
		}
		return Document{}, err
	}
	return Document{ID: snap.Ref.ID, Data: snap.Data()}, nil
}

func (r *FirestoreRemote) Query(ctx context.Context, collection, field, op string, value any) ([]Document, error) {
	snaps, err := r.client.Collection(collection).Where(field, op, value).Documents(ctx).GetAll()
	if err != nil {
		return nil, err
	}
	docs := make([]Document, 0, len(snaps))
	for _, d := range snaps {
		docs = append(docs, Document{ID: d.Ref.ID, Data: d.Data()})
	}
	return docs, nil
}

func (r *FirestoreRemote) List(ctx context.Context, collection string) ([]Document, error) {
	snaps, err := r.client.Collection(collection).Documents(ctx).GetAll()
	if err != nil {
		return nil, err
	}
	docs := make([]Document, 0, len(snaps))
	for _, d := range snaps {
		docs = append(docs, Document{ID: d.Ref.ID, Data: d.Data()})
	}
	return docs, nil
}

// Compile-time interface check
var _ Remote = (*FirestoreRemote)(nil)
