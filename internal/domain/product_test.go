package domain_test

import (
	"testing"

	"carezone-storefront/internal/domain"
)

func TestEffectivePrice(t *testing.T) {
	p := domain.Product{Price: 100}
	if got := p.EffectivePrice(); got != 100 {
		t.Fatalf("want 100, got %v", got)
	}

	discount := 80.0
	p.DiscountPrice = &discount
	if got := p.EffectivePrice(); got != 80 {
		t.Fatalf("want discounted 80, got %v", got)
	}
}

func TestRankValue(t *testing.T) {
	p := domain.Product{}
	if got := p.RankValue(); got != 0 {
		t.Fatalf("want 0 for missing rank, got %d", got)
	}
	rank := 4
	p.Rank = &rank
	if got := p.RankValue(); got != 4 {
		t.Fatalf("want 4, got %d", got)
	}
}

func TestBackendSortKey(t *testing.T) {
	cases := map[string]string{
		domain.SortNewest:    "dateDesc",
		domain.SortOldest:    "date",
		domain.SortPriceAsc:  "price",
		domain.SortPriceDesc: "priceDesc",
		domain.SortNameAsc:   "name",
		domain.SortNameDesc:  "nameDesc",
		domain.SortDefault:   "name",
		"":                   "",
		"bogus":              "",
	}
	for sort, want := range cases {
		if got := domain.BackendSortKey(sort); got != want {
			t.Fatalf("sort %q: want %q, got %q", sort, want, got)
		}
	}
}

func TestNewPaginatedResultPartitionsItems(t *testing.T) {
	items := []int{1, 2, 3, 4, 5, 6, 7}

	page1 := domain.NewPaginatedResult(items, 1, 3)
	if page1.TotalCount != 7 || page1.TotalPages != 3 {
		t.Fatalf("want 7 items over 3 pages, got %+v", page1)
	}
	if page1.HasPrevious || !page1.HasNext {
		t.Fatalf("want first page with next only, got %+v", page1)
	}
	if len(page1.Items) != 3 || page1.Items[0] != 1 {
		t.Fatalf("want [1 2 3], got %v", page1.Items)
	}

	page3 := domain.NewPaginatedResult(items, 3, 3)
	if len(page3.Items) != 1 || page3.Items[0] != 7 {
		t.Fatalf("want last partial page [7], got %v", page3.Items)
	}
	if !page3.HasPrevious || page3.HasNext {
		t.Fatalf("want last page with previous only, got %+v", page3)
	}
}

func TestNewPaginatedResultEmptySet(t *testing.T) {
	page := domain.NewPaginatedResult([]int{}, 1, 10)
	if page.TotalPages != 0 || page.HasNext || page.HasPrevious {
		t.Fatalf("want zero pages and no navigation, got %+v", page)
	}
	if len(page.Items) != 0 {
		t.Fatalf("want no items, got %v", page.Items)
	}
}

func TestNewPaginatedResultPageBeyondEnd(t *testing.T) {
	page := domain.NewPaginatedResult([]int{1, 2}, 5, 10)
	if len(page.Items) != 0 {
		t.Fatalf("want empty slice past the end, got %v", page.Items)
	}
	if page.HasNext {
		t.Fatalf("want no next past the end, got %+v", page)
	}
}
