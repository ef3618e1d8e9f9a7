package usecase

import (
	"sync"

	"github.com/goccy/go-json"

	"carezone-storefront/internal/domain"
	"carezone-storefront/pkg/kv"
	"carezone-storefront/pkg/logger"
)

// FavoritesUsecase is the persisted favorites set. Membership is loaded
// once at construction; every toggle writes the whole set back and
// publishes the new count.
type FavoritesUsecase struct {
	mu          sync.RWMutex
	store       kv.Store
	entries     []domain.FavoriteEntry
	subscribers []func(count int)
}

func NewFavoritesUsecase(store kv.Store) *FavoritesUsecase {
	u := &FavoritesUsecase{store: store}
	u.entries = u.load()
	return u
}

func (u *FavoritesUsecase) load() []domain.FavoriteEntry {
	raw, ok := u.store.Get(domain.StorageKeyFavorites)
	if !ok {
		return nil
	}
	var entries []domain.FavoriteEntry
	if err := json.Unmarshal(raw, &entries); err != nil {
		logger.Warn().Err(err).Msg("Discarding unreadable persisted favorites")
		return nil
	}
	return entries
}

func (u *FavoritesUsecase) persist() {
	raw, err := json.Marshal(u.entries)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to serialize favorites")
		return
	}
	u.store.Set(domain.StorageKeyFavorites, raw)
}

// Subscribe registers a callback invoked with the favorite count after
// every mutation.
func (u *FavoritesUsecase) Subscribe(fn func(count int)) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.subscribers = append(u.subscribers, fn)
}

func (u *FavoritesUsecase) publishLocked() {
	count := len(u.entries)
	for _, fn := range u.subscribers {
		fn(count)
	}
}

// Toggle flips membership for a product: present removes, absent adds.
// It returns the resulting membership.
func (u *FavoritesUsecase) Toggle(productID int) bool {
	u.mu.Lock()
	defer u.mu.Unlock()

	for i, entry := range u.entries {
		if entry.ProductID == productID {
			u.entries = append(u.entries[:i], u.entries[i+1:]...)
			u.persist()
			u.publishLocked()
			return false
		}
	}

	u.entries = append(u.entries, domain.FavoriteEntry{ProductID: productID})
	u.persist()
	u.publishLocked()
	return true
}

// IsFavorite reports membership for one product.
func (u *FavoritesUsecase) IsFavorite(productID int) bool {
	u.mu.RLock()
	defer u.mu.RUnlock()
	for _, entry := range u.entries {
		if entry.ProductID == productID {
			return true
		}
	}
	return false
}

// IDs returns the favorite product ids in insertion order.
func (u *FavoritesUsecase) IDs() []int {
	u.mu.RLock()
	defer u.mu.RUnlock()
	out := make([]int, 0, len(u.entries))
	for _, entry := range u.entries {
		out = append(out, entry.ProductID)
	}
	return out
}

// Count is the number of favorited products.
func (u *FavoritesUsecase) Count() int {
	u.mu.RLock()
	defer u.mu.RUnlock()
	return len(u.entries)
}

// Clear empties the set and removes its persisted state.
func (u *FavoritesUsecase) Clear() {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.entries = nil
	u.store.Remove(domain.StorageKeyFavorites)
	u.publishLocked()
}
