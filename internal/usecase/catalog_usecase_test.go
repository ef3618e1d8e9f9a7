package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"carezone-storefront/config"
	"carezone-storefront/internal/domain"
	infracache "carezone-storefront/internal/infrastructure/cache"
	"carezone-storefront/internal/usecase"
)

type fakeCatalogGateway struct {
	products      []domain.Product
	categoryCalls int
	queryCalls    int
	lastQuery     domain.ProductQuery
	queryResult   domain.PaginatedResult[domain.Product]
	err           error
}

func (f *fakeCatalogGateway) GetProduct(ctx context.Context, id int) (*domain.Product, error) {
	for _, p := range f.products {
		if p.ID == id {
			return &p, nil
		}
	}
	return nil, errors.New("not found")
}

func (f *fakeCatalogGateway) GetProducts(ctx context.Context) ([]domain.Product, error) {
	return f.products, f.err
}

func (f *fakeCatalogGateway) GetProductsByCategory(ctx context.Context, categoryID int) ([]domain.Product, error) {
	f.categoryCalls++
	return f.products, f.err
}

func (f *fakeCatalogGateway) QueryProducts(ctx context.Context, q domain.ProductQuery) (domain.PaginatedResult[domain.Product], error) {
	f.queryCalls++
	f.lastQuery = q
	return f.queryResult, f.err
}

func (f *fakeCatalogGateway) GetFeaturedProducts(ctx context.Context) ([]domain.Product, error) {
	return f.products, f.err
}

func newCatalog(t *testing.T, gateway *fakeCatalogGateway) *usecase.CatalogUsecase {
	t.Helper()
	cfg := &config.Config{
		CategoryPageSize: 21,
		PriceFilterMax:   5000,
		CacheCategoryTTL: time.Minute,
	}
	memCache := infracache.NewMemoryCache(time.Minute, time.Minute)
	return usecase.NewCatalogUsecase(gateway, memCache, cfg)
}

func rankPtr(r int) *int { return &r }

func product(id, rank int, name string, price float64, opts ...func(*domain.Product)) domain.Product {
	p := domain.Product{
		ID:        id,
		Name:      name,
		Price:     price,
		IsActive:  true,
		Rank:      rankPtr(rank),
		CreatedAt: time.Date(2026, 1, id, 0, 0, 0, 0, time.UTC),
	}
	for _, opt := range opts {
		opt(&p)
	}
	return p
}

func withTag(id int, name string) func(*domain.Product) {
	return func(p *domain.Product) {
		p.Tags = append(p.Tags, domain.TagRef{Tag: domain.Tag{ID: id, NameEn: name}})
	}
}

func withBrand(id, nameEn string) func(*domain.Product) {
	return func(p *domain.Product) {
		p.Brand = &domain.BrandInfo{ID: id, NameEn: nameEn}
	}
}

func TestBrowseCategoryServerSideTrustsBackend(t *testing.T) {
	gateway := &fakeCatalogGateway{
		queryResult: domain.PaginatedResult[domain.Product]{
			CurrentPage: 2,
			PageSize:    21,
			TotalCount:  100,
			TotalPages:  5,
			HasPrevious: true,
			HasNext:     true,
			Items:       []domain.Product{product(1, 1, "A", 10)},
		},
	}
	catalog := newCatalog(t, gateway)

	page, err := catalog.BrowseCategory(context.Background(), usecase.CategoryBrowseRequest{
		CategoryID: 3,
		Page:       2,
		Sort:       domain.SortPriceAsc,
	})
	if err != nil {
		t.Fatal(err)
	}

	if gateway.queryCalls != 1 || gateway.categoryCalls != 0 {
		t.Fatalf("want one backend query and no full fetch, got %d/%d", gateway.queryCalls, gateway.categoryCalls)
	}
	if gateway.lastQuery.SortBy != "price" {
		t.Fatalf("want backend sort key price, got %q", gateway.lastQuery.SortBy)
	}
	if page.Result.TotalCount != 100 || page.Result.CurrentPage != 2 {
		t.Fatalf("want backend pagination passed through, got %+v", page.Result)
	}
}

func TestBrowseCategoryTagFilter(t *testing.T) {
	gateway := &fakeCatalogGateway{
		products: []domain.Product{
			product(1, 3, "C", 30, withTag(9, "vitamins")),
			product(2, 1, "A", 10),
			product(3, 2, "B", 20, withTag(9, "vitamins")),
			product(4, 4, "D", 40, withTag(9, "vitamins")),
		},
	}
	catalog := newCatalog(t, gateway)

	page, err := catalog.BrowseCategory(context.Background(), usecase.CategoryBrowseRequest{
		CategoryID: 3,
		Page:       1,
		PageSize:   2,
		TagID:      9,
	})
	if err != nil {
		t.Fatal(err)
	}

	if gateway.categoryCalls != 1 || gateway.queryCalls != 0 {
		t.Fatalf("want one full fetch and no backend query, got %d/%d", gateway.categoryCalls, gateway.queryCalls)
	}

	// Three tagged products, baseline rank order 3,1,4; page 1 of size 2
	if page.Result.TotalCount != 3 || page.Result.TotalPages != 2 || !page.Result.HasNext {
		t.Fatalf("want pagination over filtered length 3, got %+v", page.Result)
	}
	if len(page.Result.Items) != 2 || page.Result.Items[0].ID != 3 || page.Result.Items[1].ID != 1 {
		t.Fatalf("want page [3 1] in rank order, got %+v", page.Result.Items)
	}
}

func TestBrowseCategoryBrandFilterNameFallback(t *testing.T) {
	gateway := &fakeCatalogGateway{
		products: []domain.Product{
			product(1, 1, "A", 10, withBrand("b1", "Acme")),
			product(2, 2, "B", 20, withBrand("", "ACME")),
			product(3, 3, "C", 30, withBrand("b2", "Other")),
			product(4, 4, "D", 40),
		},
	}
	catalog := newCatalog(t, gateway)

	page, err := catalog.BrowseCategory(context.Background(), usecase.CategoryBrowseRequest{
		CategoryID: 3,
		BrandID:    "b1",
		BrandName:  "acme",
	})
	if err != nil {
		t.Fatal(err)
	}

	// b1 matches by id, the id-less one by case-insensitive name
	if len(page.Result.Items) != 2 || page.Result.Items[0].ID != 1 || page.Result.Items[1].ID != 2 {
		t.Fatalf("want brand matches [1 2], got %+v", page.Result.Items)
	}
}

func TestBrowseCategorySecondarySortStable(t *testing.T) {
	discount := 5.0
	products := []domain.Product{
		product(1, 2, "B", 10),
		product(2, 1, "A", 10),
		product(3, 3, "C", 20, withTag(9, "vitamins")),
	}
	products[0].Tags = append(products[0].Tags, domain.TagRef{Tag: domain.Tag{ID: 9, NameEn: "vitamins"}})
	products[1].Tags = append(products[1].Tags, domain.TagRef{Tag: domain.Tag{ID: 9, NameEn: "vitamins"}})
	products[2].DiscountPrice = &discount

	gateway := &fakeCatalogGateway{products: products}
	catalog := newCatalog(t, gateway)

	page, err := catalog.BrowseCategory(context.Background(), usecase.CategoryBrowseRequest{
		CategoryID: 3,
		TagID:      9,
		Sort:       domain.SortPriceAsc,
	})
	if err != nil {
		t.Fatal(err)
	}

	// Discounted 3 sorts first on effective price 5; the two at 10 keep
	// baseline rank order (2 before 1)
	got := []int{page.Result.Items[0].ID, page.Result.Items[1].ID, page.Result.Items[2].ID}
	if got[0] != 3 || got[1] != 2 || got[2] != 1 {
		t.Fatalf("want price order [3 2 1], got %v", got)
	}
}

func TestBrowseCategoryPriceFilter(t *testing.T) {
	discount := 15.0
	products := []domain.Product{
		product(1, 1, "A", 10, withTag(9, "vitamins")),
		product(2, 2, "B", 50, withTag(9, "vitamins")),
		product(3, 3, "C", 90, withTag(9, "vitamins")),
	}
	// Effective price 15 brings product 2 under the cap
	products[1].DiscountPrice = &discount

	gateway := &fakeCatalogGateway{products: products}
	catalog := newCatalog(t, gateway)

	max := 20.0
	page, err := catalog.BrowseCategory(context.Background(), usecase.CategoryBrowseRequest{
		CategoryID: 3,
		TagID:      9,
		MaxPrice:   &max,
	})
	if err != nil {
		t.Fatal(err)
	}

	if len(page.Result.Items) != 2 || page.Result.Items[0].ID != 1 || page.Result.Items[1].ID != 2 {
		t.Fatalf("want effective prices under 20 in rank order [1 2], got %+v", page.Result.Items)
	}
}

func TestBrowseCategoryPriceCeilingMeansUnbounded(t *testing.T) {
	gateway := &fakeCatalogGateway{}
	catalog := newCatalog(t, gateway)

	max := 5000.0 // the configured slider maximum
	if _, err := catalog.BrowseCategory(context.Background(), usecase.CategoryBrowseRequest{
		CategoryID: 3,
		MaxPrice:   &max,
	}); err != nil {
		t.Fatal(err)
	}

	if gateway.lastQuery.MaxPrice != nil {
		t.Fatalf("want maxPrice dropped at the ceiling, got %v", *gateway.lastQuery.MaxPrice)
	}
}

func TestBrowseCategoryReusesCache(t *testing.T) {
	gateway := &fakeCatalogGateway{
		products: []domain.Product{product(1, 1, "A", 10, withTag(9, "vitamins"))},
	}
	catalog := newCatalog(t, gateway)

	req := usecase.CategoryBrowseRequest{CategoryID: 3, TagID: 9}
	ctx := context.Background()
	if _, err := catalog.BrowseCategory(ctx, req); err != nil {
		t.Fatal(err)
	}
	if _, err := catalog.BrowseCategory(ctx, req); err != nil {
		t.Fatal(err)
	}

	if gateway.categoryCalls != 1 {
		t.Fatalf("want one full fetch across repeated browses, got %d", gateway.categoryCalls)
	}

	catalog.InvalidateCategory(3)
	if _, err := catalog.BrowseCategory(ctx, req); err != nil {
		t.Fatal(err)
	}
	if gateway.categoryCalls != 2 {
		t.Fatalf("want refetch after invalidation, got %d calls", gateway.categoryCalls)
	}
}

func TestFacetsDeduplicateAndSortBrands(t *testing.T) {
	gateway := &fakeCatalogGateway{
		products: []domain.Product{
			product(1, 1, "A", 10, withBrand("b2", "Zeta"), withTag(1, "pain relief")),
			product(2, 2, "B", 20, withBrand("b1", "Acme"), withTag(1, "pain relief")),
			product(3, 3, "C", 30, withBrand("b2", "Zeta"), withTag(2, "vitamins")),
			product(4, 4, "D", 40, withBrand("", "acme")),
		},
	}
	catalog := newCatalog(t, gateway)

	facets, err := catalog.Facets(context.Background(), 3)
	if err != nil {
		t.Fatal(err)
	}

	if len(facets.Tags) != 2 {
		t.Fatalf("want 2 distinct tags, got %+v", facets.Tags)
	}
	// b2 appears twice (dedup by id); the id-less "acme" is distinct from
	// id-bearing "Acme" but both sort by name
	if len(facets.Brands) != 3 {
		t.Fatalf("want 3 distinct brands, got %+v", facets.Brands)
	}
	if facets.Brands[2].NameEn != "Zeta" {
		t.Fatalf("want brands sorted by name with Zeta last, got %+v", facets.Brands)
	}
}
