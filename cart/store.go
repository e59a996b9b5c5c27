package cart

import (
	"sync"

	"github.com/MasinARK/E-commerce/models"
)

// Store owns the current cart of one browsing session. Every dispatch
// is serialized under the mutex, so the next state derives only from
// the previous state and the command, and all subscribers observe the
// same snapshot after each transition.
type Store struct {
	taxRateBP int64

	mu        sync.Mutex
	cart      models.Cart
	subs      map[int]chan models.Cart
	nextSub   int
	completed map[string]bool
}

// NewStore returns an empty-cart store at the given tax rate.
func NewStore(taxRateBP int64) *Store {
	return &Store{
		taxRateBP: taxRateBP,
		cart:      Empty(),
		subs:      make(map[int]chan models.Cart),
		completed: make(map[string]bool),
	}
}

// Current returns a snapshot of the cart.
func (s *Store) Current() models.Cart {
	s.mu.Lock()
	defer s.mu.Unlock()
	return snapshot(s.cart)
}

// Dispatch applies one command atomically, publishes the new cart to
// all subscribers and returns it.
func (s *Store) Dispatch(cmd Command) models.Cart {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart = Apply(s.cart, cmd, s.taxRateBP)
	next := snapshot(s.cart)
	s.publish(next)
	return next
}

// Subscribe registers a listener for cart snapshots. The current cart
// is delivered first, then every post-dispatch state. The returned
// cancel func must be called when the listener goes away.
func (s *Store) Subscribe() (<-chan models.Cart, func()) {
	s.mu.Lock()
	id := s.nextSub
	s.nextSub++
	ch := make(chan models.Cart, 8)
	s.subs[id] = ch
	ch <- snapshot(s.cart)
	s.mu.Unlock()

	cancel := func() {
		s.mu.Lock()
		delete(s.subs, id)
		s.mu.Unlock()
	}
	return ch, cancel
}

// CompleteCheckout clears the cart on arrival at the checkout success
// destination. Duplicate invocations carrying the same provider session
// id (success-page reloads) clear at most once; a missing id still
// clears the cart. Reports whether a clear was performed.
func (s *Store) CompleteCheckout(providerSessionID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if providerSessionID != "" {
		if s.completed[providerSessionID] {
			return false
		}
		s.completed[providerSessionID] = true
	}
	s.cart = Apply(s.cart, Clear{}, s.taxRateBP)
	s.publish(snapshot(s.cart))
	return true
}

// publish delivers without blocking dispatch: a slow subscriber loses
// its oldest snapshot so the latest keeps flowing. Callers hold s.mu.
func (s *Store) publish(c models.Cart) {
	for _, ch := range s.subs {
		select {
		case ch <- c:
		default:
			select {
			case <-ch:
			default:
			}
			select {
			case ch <- c:
			default:
			}
		}
	}
}

func snapshot(c models.Cart) models.Cart {
	items := make([]models.LineItem, len(c.Items))
	copy(items, c.Items)
	c.Items = items
	return c
}
