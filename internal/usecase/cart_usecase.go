package usecase

import (
	"sync"

	"github.com/goccy/go-json"

	"carezone-storefront/internal/domain"
	"carezone-storefront/pkg/kv"
	"carezone-storefront/pkg/logger"
)

// CartUsecase is the persisted shopping cart. Every mutation writes the
// whole line collection back to the store synchronously and publishes the
// new total count to subscribers.
type CartUsecase struct {
	mu          sync.RWMutex
	store       kv.Store
	lines       []domain.CartLine
	subscribers []func(totalCount int)
}

// NewCartUsecase loads any persisted cart and recomputes the total count
// from it, so state seeded before construction is honored.
func NewCartUsecase(store kv.Store) *CartUsecase {
	u := &CartUsecase{store: store}
	u.lines = u.load()
	return u
}

func (u *CartUsecase) load() []domain.CartLine {
	raw, ok := u.store.Get(domain.StorageKeyCart)
	if !ok {
		return nil
	}
	var lines []domain.CartLine
	if err := json.Unmarshal(raw, &lines); err != nil {
		logger.Warn().Err(err).Msg("Discarding unreadable persisted cart")
		return nil
	}
	return lines
}

func (u *CartUsecase) persist() {
	raw, err := json.Marshal(u.lines)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to serialize cart")
		return
	}
	u.store.Set(domain.StorageKeyCart, raw)
}

// Subscribe registers a callback invoked with the total count after every
// mutation. Callbacks run synchronously on the mutating goroutine.
func (u *CartUsecase) Subscribe(fn func(totalCount int)) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.subscribers = append(u.subscribers, fn)
}

func (u *CartUsecase) publishLocked() {
	count := u.totalCountLocked()
	for _, fn := range u.subscribers {
		fn(count)
	}
}

// SetQuantity sets the quantity for a product line. A quantity of zero or
// less removes the line; otherwise the existing line is overwritten or a
// new one appended at the end.
func (u *CartUsecase) SetQuantity(productID, quantity int) {
	u.mu.Lock()
	defer u.mu.Unlock()

	if quantity <= 0 {
		for i, line := range u.lines {
			if line.ProductID == productID {
				u.lines = append(u.lines[:i], u.lines[i+1:]...)
				break
			}
		}
	} else {
		found := false
		for i, line := range u.lines {
			if line.ProductID == productID {
				u.lines[i].Quantity = quantity
				found = true
				break
			}
		}
		if !found {
			u.lines = append(u.lines, domain.CartLine{ProductID: productID, Quantity: quantity})
		}
	}

	u.persist()
	u.publishLocked()
}

// Quantity returns the quantity for one product, zero when absent.
func (u *CartUsecase) Quantity(productID int) int {
	u.mu.RLock()
	defer u.mu.RUnlock()
	for _, line := range u.lines {
		if line.ProductID == productID {
			return line.Quantity
		}
	}
	return 0
}

// Lines returns a copy of the cart lines in insertion order.
func (u *CartUsecase) Lines() []domain.CartLine {
	u.mu.RLock()
	defer u.mu.RUnlock()
	out := make([]domain.CartLine, len(u.lines))
	copy(out, u.lines)
	return out
}

// TotalCount is the sum of all line quantities.
func (u *CartUsecase) TotalCount() int {
	u.mu.RLock()
	defer u.mu.RUnlock()
	return u.totalCountLocked()
}

func (u *CartUsecase) totalCountLocked() int {
	total := 0
	for _, line := range u.lines {
		total += line.Quantity
	}
	return total
}

// Clear empties the cart and removes its persisted state.
func (u *CartUsecase) Clear() {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.lines = nil
	u.store.Remove(domain.StorageKeyCart)
	u.publishLocked()
}
