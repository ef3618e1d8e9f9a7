package usecase_test

import (
	"testing"

	"carezone-storefront/internal/domain"
	"carezone-storefront/internal/usecase"
	"carezone-storefront/pkg/kv"
)

func TestCartSetQuantity(t *testing.T) {
	cart := usecase.NewCartUsecase(kv.NewMemoryStore())

	cart.SetQuantity(42, 1)
	if got := cart.TotalCount(); got != 1 {
		t.Fatalf("want total 1, got %d", got)
	}

	// Overwrite, not accumulate
	cart.SetQuantity(42, 3)
	if got := cart.Quantity(42); got != 3 {
		t.Fatalf("want quantity 3, got %d", got)
	}
	if got := cart.TotalCount(); got != 3 {
		t.Fatalf("want total 3, got %d", got)
	}

	cart.SetQuantity(7, 2)
	if got := cart.TotalCount(); got != 5 {
		t.Fatalf("want total 5, got %d", got)
	}

	lines := cart.Lines()
	if len(lines) != 2 || lines[0].ProductID != 42 || lines[1].ProductID != 7 {
		t.Fatalf("want lines in insertion order [42 7], got %+v", lines)
	}
}

func TestCartZeroQuantityRemovesLine(t *testing.T) {
	cart := usecase.NewCartUsecase(kv.NewMemoryStore())

	cart.SetQuantity(42, 3)
	cart.SetQuantity(42, 0)

	if got := cart.TotalCount(); got != 0 {
		t.Fatalf("want total 0, got %d", got)
	}
	if got := cart.Quantity(42); got != 0 {
		t.Fatalf("want quantity 0, got %d", got)
	}
	if got := len(cart.Lines()); got != 0 {
		t.Fatalf("want no lines, got %d", got)
	}

	// Removing an absent line is a no-op
	cart.SetQuantity(99, -1)
	if got := len(cart.Lines()); got != 0 {
		t.Fatalf("want no lines, got %d", got)
	}
}

func TestCartHonorsPreSeededStorage(t *testing.T) {
	store := kv.NewMemoryStore()
	store.Set(domain.StorageKeyCart, []byte(`[{"id":42,"quantity":3},{"id":7,"quantity":1}]`))

	cart := usecase.NewCartUsecase(store)
	if got := cart.TotalCount(); got != 4 {
		t.Fatalf("want total 4 from seeded storage, got %d", got)
	}
	if got := cart.Quantity(42); got != 3 {
		t.Fatalf("want seeded quantity 3, got %d", got)
	}
}

func TestCartDiscardsCorruptStorage(t *testing.T) {
	store := kv.NewMemoryStore()
	store.Set(domain.StorageKeyCart, []byte(`{not json`))

	cart := usecase.NewCartUsecase(store)
	if got := cart.TotalCount(); got != 0 {
		t.Fatalf("want empty cart from corrupt storage, got total %d", got)
	}
}

func TestCartPersistsAcrossInstances(t *testing.T) {
	store := kv.NewMemoryStore()

	first := usecase.NewCartUsecase(store)
	first.SetQuantity(42, 2)
	first.SetQuantity(7, 1)

	second := usecase.NewCartUsecase(store)
	if got := second.TotalCount(); got != 3 {
		t.Fatalf("want total 3 after reload, got %d", got)
	}
}

func TestCartClearRemovesKey(t *testing.T) {
	store := kv.NewMemoryStore()
	cart := usecase.NewCartUsecase(store)

	cart.SetQuantity(42, 2)
	cart.Clear()

	if got := cart.TotalCount(); got != 0 {
		t.Fatalf("want total 0 after clear, got %d", got)
	}
	if _, ok := store.Get(domain.StorageKeyCart); ok {
		t.Fatal("want cart key removed from storage after clear")
	}
}

func TestCartPublishesTotalCount(t *testing.T) {
	cart := usecase.NewCartUsecase(kv.NewMemoryStore())

	var published []int
	cart.Subscribe(func(totalCount int) {
		published = append(published, totalCount)
	})

	cart.SetQuantity(42, 2)
	cart.SetQuantity(7, 3)
	cart.SetQuantity(42, 0)
	cart.Clear()

	want := []int{2, 5, 3, 0}
	if len(published) != len(want) {
		t.Fatalf("want %d notifications, got %d: %v", len(want), len(published), published)
	}
	for i := range want {
		if published[i] != want[i] {
			t.Fatalf("want notifications %v, got %v", want, published)
		}
	}
}
