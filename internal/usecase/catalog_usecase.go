package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"carezone-storefront/config"
	"carezone-storefront/internal/domain"
	"carezone-storefront/pkg/cache"
)

// CatalogGateway is the slice of the backend client the catalog needs.
type CatalogGateway interface {
	GetProduct(ctx context.Context, id int) (*domain.Product, error)
	GetProducts(ctx context.Context) ([]domain.Product, error)
	GetProductsByCategory(ctx context.Context, categoryID int) ([]domain.Product, error)
	QueryProducts(ctx context.Context, q domain.ProductQuery) (domain.PaginatedResult[domain.Product], error)
	GetFeaturedProducts(ctx context.Context) ([]domain.Product, error)
}

// CategoryBrowseRequest selects one page of a category listing. A non-zero
// TagID or a non-empty brand selection switches the engine into client-side
// filtering over the full cached category set.
type CategoryBrowseRequest struct {
	CategoryID int
	Page       int
	PageSize   int
	Sort       string
	MinPrice   *float64
	MaxPrice   *float64
	TagID      int
	BrandID    string
	BrandName  string
}

func (r CategoryBrowseRequest) clientSide() bool {
	return r.TagID != 0 || r.BrandID != "" || r.BrandName != ""
}

// CategoryFacets are the filter options available within one category,
// extracted from its full product set.
type CategoryFacets struct {
	Tags   []domain.Tag       `json:"tags"`
	Brands []domain.BrandInfo `json:"brands"`
}

// CategoryPage is one rendered page of a category plus its facets.
type CategoryPage struct {
	Result domain.PaginatedResult[domain.Product] `json:"result"`
	Facets CategoryFacets                         `json:"facets"`
}

type CatalogUsecase struct {
	gateway CatalogGateway
	cache   cache.CacheService
	cfg     *config.Config
}

func NewCatalogUsecase(gateway CatalogGateway, cacheService cache.CacheService, cfg *config.Config) *CatalogUsecase {
	return &CatalogUsecase{
		gateway: gateway,
		cache:   cacheService,
		cfg:     cfg,
	}
}

func (u *CatalogUsecase) GetProduct(ctx context.Context, id int) (*domain.Product, error) {
	return u.gateway.GetProduct(ctx, id)
}

func (u *CatalogUsecase) GetFeaturedProducts(ctx context.Context) ([]domain.Product, error) {
	return u.gateway.GetFeaturedProducts(ctx)
}

func (u *CatalogUsecase) GetAllProducts(ctx context.Context) ([]domain.Product, error) {
	return u.gateway.GetProducts(ctx)
}

func categorySetKey(categoryID int) string {
	return fmt.Sprintf("category:products:%d", categoryID)
}

// categorySet returns the full product set of a category, fetching and
// caching it when cold. The cache is retained across filter changes so
// reactivating a tag/brand filter does not refetch.
func (u *CatalogUsecase) categorySet(ctx context.Context, categoryID int) ([]domain.Product, error) {
	key := categorySetKey(categoryID)
	if val, found := u.cache.Get(key); found {
		if products, ok := val.([]domain.Product); ok {
			return products, nil
		}
	}

	products, err := u.gateway.GetProductsByCategory(ctx, categoryID)
	if err != nil {
		return nil, err
	}
	u.cache.Set(key, products, u.cfg.CacheCategoryTTL)
	return products, nil
}

// cachedCategorySet returns the cached set without fetching.
func (u *CatalogUsecase) cachedCategorySet(categoryID int) ([]domain.Product, bool) {
	if val, found := u.cache.Get(categorySetKey(categoryID)); found {
		if products, ok := val.([]domain.Product); ok {
			return products, true
		}
	}
	return nil, false
}

// InvalidateCategory drops the cached set for one category.
func (u *CatalogUsecase) InvalidateCategory(categoryID int) {
	u.cache.Delete(categorySetKey(categoryID))
}

// Facets populates the category cache if needed and extracts the available
// tag and brand filter options from it.
func (u *CatalogUsecase) Facets(ctx context.Context, categoryID int) (CategoryFacets, error) {
	products, err := u.categorySet(ctx, categoryID)
	if err != nil {
		return CategoryFacets{}, err
	}
	return extractFacets(products), nil
}

// BrowseCategory serves one page of a category listing. Without a tag or
// brand filter the backend query is trusted as-is; with one active, the
// full cached category set is filtered, sorted, and sliced in memory. The
// fetch happens before filtering so facets are never derived from a stale
// or partial set.
func (u *CatalogUsecase) BrowseCategory(ctx context.Context, req CategoryBrowseRequest) (CategoryPage, error) {
	if req.Page < 1 {
		req.Page = 1
	}
	if req.PageSize < 1 {
		req.PageSize = u.cfg.CategoryPageSize
	}
	// A ceiling at or above the slider maximum means "no upper bound".
	if req.MaxPrice != nil && *req.MaxPrice >= u.cfg.PriceFilterMax {
		req.MaxPrice = nil
	}

	if !req.clientSide() {
		return u.browseServerSide(ctx, req)
	}
	return u.browseClientSide(ctx, req)
}

func (u *CatalogUsecase) browseServerSide(ctx context.Context, req CategoryBrowseRequest) (CategoryPage, error) {
	result, err := u.gateway.QueryProducts(ctx, domain.ProductQuery{
		Page:       req.Page,
		PageSize:   req.PageSize,
		CategoryID: req.CategoryID,
		SortBy:     domain.BackendSortKey(req.Sort),
		MinPrice:   req.MinPrice,
		MaxPrice:   req.MaxPrice,
	})
	if err != nil {
		return CategoryPage{}, err
	}

	// Facets come from the full-set cache when it happens to be warm;
	// a cold cache just means no filter options until Facets is asked for.
	page := CategoryPage{Result: result}
	if cached, ok := u.cachedCategorySet(req.CategoryID); ok {
		page.Facets = extractFacets(cached)
	}
	return page, nil
}

func (u *CatalogUsecase) browseClientSide(ctx context.Context, req CategoryBrowseRequest) (CategoryPage, error) {
	products, err := u.categorySet(ctx, req.CategoryID)
	if err != nil {
		return CategoryPage{}, err
	}
	facets := extractFacets(products)

	filtered := products
	if req.TagID != 0 {
		filtered = filterByTag(filtered, req.TagID)
	}
	if req.BrandID != "" || req.BrandName != "" {
		filtered = filterByBrand(filtered, req.BrandID, req.BrandName)
	}
	if req.MinPrice != nil || req.MaxPrice != nil {
		filtered = filterByPrice(filtered, req.MinPrice, req.MaxPrice)
	}

	sorted := make([]domain.Product, len(filtered))
	copy(sorted, filtered)
	sortBaseline(sorted)
	applySecondarySort(sorted, req.Sort)

	return CategoryPage{
		Result: domain.NewPaginatedResult(sorted, req.Page, req.PageSize),
		Facets: facets,
	}, nil
}

func filterByTag(products []domain.Product, tagID int) []domain.Product {
	out := make([]domain.Product, 0, len(products))
	for _, p := range products {
		for _, ref := range p.Tags {
			if ref.Tag.ID == tagID {
				out = append(out, p)
				break
			}
		}
	}
	return out
}

// filterByBrand matches by brand id when one is known, falling back to a
// case-insensitive match against either name variant. Brand identity is
// inconsistently represented upstream, so both routes stay open.
func filterByBrand(products []domain.Product, brandID, brandName string) []domain.Product {
	out := make([]domain.Product, 0, len(products))
	for _, p := range products {
		if p.Brand == nil {
			continue
		}
		if brandID != "" && p.Brand.ID == brandID {
			out = append(out, p)
			continue
		}
		if brandName != "" &&
			(strings.EqualFold(p.Brand.NameEn, brandName) || strings.EqualFold(p.Brand.NameAr, brandName)) {
			out = append(out, p)
		}
	}
	return out
}

// filterByPrice keeps products whose effective (discounted) price falls
// within the inclusive bounds.
func filterByPrice(products []domain.Product, min, max *float64) []domain.Product {
	out := make([]domain.Product, 0, len(products))
	for _, p := range products {
		price := p.EffectivePrice()
		if min != nil && price < *min {
			continue
		}
		if max != nil && price > *max {
			continue
		}
		out = append(out, p)
	}
	return out
}

// sortBaseline orders by rank ascending with id ascending as tiebreak.
// Unranked products sink to the end.
func sortBaseline(products []domain.Product) {
	sort.Slice(products, func(i, j int) bool {
		ri, rj := products[i].RankValue(), products[j].RankValue()
		if ri != rj {
			return ri < rj
		}
		return products[i].ID < products[j].ID
	})
}

// applySecondarySort layers the user-selected ordering over the baseline.
// Stable, so the baseline order survives as tiebreak.
func applySecondarySort(products []domain.Product, sortKey string) {
	switch sortKey {
	case domain.SortNewest:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].CreatedAt.After(products[j].CreatedAt)
		})
	case domain.SortOldest:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].CreatedAt.Before(products[j].CreatedAt)
		})
	case domain.SortPriceAsc:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].EffectivePrice() < products[j].EffectivePrice()
		})
	case domain.SortPriceDesc:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].EffectivePrice() > products[j].EffectivePrice()
		})
	case domain.SortNameAsc:
		sort.SliceStable(products, func(i, j int) bool {
			return strings.ToLower(products[i].Name) < strings.ToLower(products[j].Name)
		})
	case domain.SortNameDesc:
		sort.SliceStable(products, func(i, j int) bool {
			return strings.ToLower(products[i].Name) > strings.ToLower(products[j].Name)
		})
	}
}

// extractFacets collects the distinct tags and brands present in a product
// set. Brands are de-duplicated by id when present, otherwise by lowercased
// name, and sorted by name.
func extractFacets(products []domain.Product) CategoryFacets {
	facets := CategoryFacets{
		Tags:   []domain.Tag{},
		Brands: []domain.BrandInfo{},
	}

	seenTags := make(map[int]bool)
	seenBrands := make(map[string]bool)

	for _, p := range products {
		for _, ref := range p.Tags {
			if ref.Tag.ID == 0 || seenTags[ref.Tag.ID] {
				continue
			}
			seenTags[ref.Tag.ID] = true
			facets.Tags = append(facets.Tags, ref.Tag)
		}

		if p.Brand == nil {
			continue
		}
		key := p.Brand.ID
		if key == "" {
			key = strings.ToLower(firstNonEmptyString(p.Brand.NameEn, p.Brand.NameAr))
		}
		if key == "" || seenBrands[key] {
			continue
		}
		seenBrands[key] = true
		facets.Brands = append(facets.Brands, *p.Brand)
	}

	sort.Slice(facets.Brands, func(i, j int) bool {
		return strings.ToLower(facets.Brands[i].NameEn) < strings.ToLower(facets.Brands[j].NameEn)
	})
	return facets
}

func firstNonEmptyString(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
