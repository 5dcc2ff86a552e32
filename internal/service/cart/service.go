// Package cart is the session cart state machine: a reducer-style single
// mutation entry point over the persisted key-value store.
package cart

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"

	"cute-storefront/internal/domain"
	"cute-storefront/internal/store"
)

type kvStore interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}

type Service struct {
	kv     kvStore
	logger *log.Logger
}

func New(kv kvStore, logger *log.Logger) *Service {
	return &Service{kv: kv, logger: logger}
}

// Get loads the session cart. An absent key is an empty cart.
func (s *Service) Get(ctx context.Context, session string) (domain.Cart, error) {
	data, err := s.kv.Get(ctx, store.CartKey(session))
	if errors.Is(err, store.ErrNotFound) {
		return domain.Cart{Items: []domain.CartItem{}}, nil
	}
	if err != nil {
		return domain.Cart{}, fmt.Errorf("load cart: %w", err)
	}

	var cart domain.Cart
	if err := json.Unmarshal(data, &cart); err != nil {
		return domain.Cart{}, fmt.Errorf("decode cart: %w", err)
	}
	if cart.Items == nil {
		cart.Items = []domain.CartItem{}
	}
	return cart, nil
}

// Add puts an item in the cart. When the product is already present its
// quantity is replaced with the given value, not added to it.
func (s *Service) Add(ctx context.Context, session string, productID int64, quantity int) (domain.Cart, error) {
	cart, err := s.Get(ctx, session)
	if err != nil {
		return domain.Cart{}, err
	}

	if i := cart.Find(productID); i >= 0 {
		cart.Items[i].Quantity = quantity
	} else {
		cart.Items = append(cart.Items, domain.CartItem{ProductID: productID, Quantity: quantity})
	}

	s.persist(ctx, session, cart)
	return cart, nil
}

// UpdateQuantity sets the quantity of an existing entry. A missing entry
// leaves the cart unchanged. Clamping to a minimum of 1 is the caller's
// responsibility.
func (s *Service) UpdateQuantity(ctx context.Context, session string, productID int64, quantity int) (domain.Cart, error) {
	cart, err := s.Get(ctx, session)
	if err != nil {
		return domain.Cart{}, err
	}

	if i := cart.Find(productID); i >= 0 {
		cart.Items[i].Quantity = quantity
		s.persist(ctx, session, cart)
	}
	return cart, nil
}

// Remove deletes the entry for the product. Removing an absent product is
// a no-op.
func (s *Service) Remove(ctx context.Context, session string, productID int64) (domain.Cart, error) {
	cart, err := s.Get(ctx, session)
	if err != nil {
		return domain.Cart{}, err
	}

	if i := cart.Find(productID); i >= 0 {
		cart.Items = append(cart.Items[:i], cart.Items[i+1:]...)
		s.persist(ctx, session, cart)
	}
	return cart, nil
}

// Clear empties the cart and persists the empty state. Invoked after a
// payment sequence reports success.
func (s *Service) Clear(ctx context.Context, session string) error {
	s.persist(ctx, session, domain.Cart{Items: []domain.CartItem{}})
	return nil
}

// persist writes the cart through to the store. Failures are logged and
// swallowed: the in-memory mutation already happened and the caller is not
// expected to handle a lost write.
func (s *Service) persist(ctx context.Context, session string, cart domain.Cart) {
	data, err := json.Marshal(cart)
	if err != nil {
		s.logger.Printf("encode cart for session %s: %v", session, err)
		return
	}
	if err := s.kv.Set(ctx, store.CartKey(session), data); err != nil {
		s.logger.Printf("persist cart for session %s: %v", session, err)
	}
}
