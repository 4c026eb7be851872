// Package shop holds the local pending-purchase cart and the one-shot
// conversion of a cart into a persisted sale.
package shop

import (
	"encoding/json"
	"fmt"

	bolt "go.etcd.io/bbolt"

	"github.com/jardinverde/gardenia/internal/entity"
)

var cartBucket = []byte("carts")

// CartStore persists carts in a local bbolt file so a cart survives a
// restart. Carts are keyed by an opaque id chosen by the client and are
// never part of the remote mirror.
type CartStore struct {
	db *bolt.DB
}

// OpenCartStore opens (or creates) the cart database at path.
func OpenCartStore(path string) (*CartStore, error) {
	db, err := bolt.Open(path, 0o600, nil)
	if err != nil {
		return nil, fmt.Errorf("opening cart store: %w", err)
	}
	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(cartBucket)
		return err
	})
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	return &CartStore{db: db}, nil
}

// Close closes the underlying database.
func (c *CartStore) Close() error {
	return c.db.Close()
}

// Get returns the cart's line items, empty if the cart does not exist.
func (c *CartStore) Get(cartID string) ([]entity.CartItem, error) {
	var items []entity.CartItem
	err := c.db.View(func(tx *bolt.Tx) error {
		raw := tx.Bucket(cartBucket).Get([]byte(cartID))
		if raw == nil {
			return nil
		}
		return json.Unmarshal(raw, &items)
	})
	if err != nil {
		return nil, err
	}
	return items, nil
}

// Add merges the product into the cart: an existing line for the same
// product id gets its quantity incremented, otherwise a new line with the
// product snapshot is appended.
func (c *CartStore) Add(cartID string, p entity.Product) ([]entity.CartItem, error) {
	items, err := c.Get(cartID)
	if err != nil {
		return nil, err
	}

	merged := false
	for i := range items {
		if items[i].Product.ID == p.ID {
			items[i].Quantity++
			merged = true
			break
		}
	}
	if !merged {
		items = append(items, entity.CartItem{Product: snapshotProduct(p), Quantity: 1})
	}

	if err := c.put(cartID, items); err != nil {
		return nil, err
	}
	return items, nil
}

// Remove deletes the line for the given product id.
func (c *CartStore) Remove(cartID, productID string) ([]entity.CartItem, error) {
	items, err := c.Get(cartID)
	if err != nil {
		return nil, err
	}

	out := items[:0]
	for _, it := range items {
		if it.Product.ID != productID {
			out = append(out, it)
		}
	}

	if err := c.put(cartID, out); err != nil {
		return nil, err
	}
	return out, nil
}

// Clear empties the cart. Recording a sale never calls this implicitly;
// the checkout flow decides when the cart is done.
func (c *CartStore) Clear(cartID string) error {
	return c.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(cartBucket).Delete([]byte(cartID))
	})
}

func (c *CartStore) put(cartID string, items []entity.CartItem) error {
	raw, err := json.Marshal(items)
	if err != nil {
		return err
	}
	return c.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(cartBucket).Put([]byte(cartID), raw)
	})
}

// snapshotProduct deep-copies a product so later catalog edits cannot
// reach into a cart line or a recorded sale.
func snapshotProduct(p entity.Product) entity.Product {
	images := make([]string, len(p.Images))
	copy(images, p.Images)
	p.Images = images
	return p
}
