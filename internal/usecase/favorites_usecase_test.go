package usecase_test

import (
	"testing"

	"carezone-storefront/internal/domain"
	"carezone-storefront/internal/usecase"
	"carezone-storefront/pkg/kv"
)

func TestFavoritesToggleIsInverse(t *testing.T) {
	fav := usecase.NewFavoritesUsecase(kv.NewMemoryStore())

	if got := fav.Toggle(42); !got {
		t.Fatal("want first toggle to favorite")
	}
	if !fav.IsFavorite(42) {
		t.Fatal("want 42 favorited")
	}

	if got := fav.Toggle(42); got {
		t.Fatal("want second toggle to unfavorite")
	}
	if fav.IsFavorite(42) {
		t.Fatal("want 42 no longer favorited")
	}
	if got := fav.Count(); got != 0 {
		t.Fatalf("want count 0, got %d", got)
	}
}

func TestFavoritesLoadedOnceAtConstruction(t *testing.T) {
	store := kv.NewMemoryStore()
	store.Set(domain.StorageKeyFavorites, []byte(`[{"id":1},{"id":2}]`))

	fav := usecase.NewFavoritesUsecase(store)
	if got := fav.Count(); got != 2 {
		t.Fatalf("want count 2 from seeded storage, got %d", got)
	}
	if !fav.IsFavorite(1) || !fav.IsFavorite(2) {
		t.Fatal("want seeded ids favorited")
	}

	// Mutating storage behind the usecase's back has no effect
	store.Set(domain.StorageKeyFavorites, []byte(`[]`))
	if got := fav.Count(); got != 2 {
		t.Fatalf("want count 2 after external storage change, got %d", got)
	}
}

func TestFavoritesPersistAcrossInstances(t *testing.T) {
	store := kv.NewMemoryStore()

	first := usecase.NewFavoritesUsecase(store)
	first.Toggle(5)
	first.Toggle(9)

	second := usecase.NewFavoritesUsecase(store)
	ids := second.IDs()
	if len(ids) != 2 || ids[0] != 5 || ids[1] != 9 {
		t.Fatalf("want ids [5 9] after reload, got %v", ids)
	}
}

func TestFavoritesClearRemovesKey(t *testing.T) {
	store := kv.NewMemoryStore()
	fav := usecase.NewFavoritesUsecase(store)

	fav.Toggle(5)
	fav.Clear()

	if got := fav.Count(); got != 0 {
		t.Fatalf("want count 0 after clear, got %d", got)
	}
	if _, ok := store.Get(domain.StorageKeyFavorites); ok {
		t.Fatal("want favorites key removed from storage after clear")
	}
}

func TestFavoritesPublishCount(t *testing.T) {
	fav := usecase.NewFavoritesUsecase(kv.NewMemoryStore())

	var published []int
	fav.Subscribe(func(count int) {
		published = append(published, count)
	})

	fav.Toggle(1)
	fav.Toggle(2)
	fav.Toggle(1)

	want := []int{1, 2, 1}
	if len(published) != len(want) {
		t.Fatalf("want %d notifications, got %v", len(want), published)
	}
	for i := range want {
		if published[i] != want[i] {
			t.Fatalf("want notifications %v, got %v", want, published)
		}
	}
}
