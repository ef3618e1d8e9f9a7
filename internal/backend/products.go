package backend

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"carezone-storefront/internal/domain"
)

// GetProduct fetches a single product by id.
func (c *Client) GetProduct(ctx context.Context, id int) (*domain.Product, error) {
	var dto productDTO
	if err := c.get(ctx, fmt.Sprintf("/api/Products/%d", id), nil, &dto); err != nil {
		return nil, err
	}
	product := c.normalizeProduct(dto)
	return &product, nil
}

// GetProducts fetches the full unpaginated product list.
func (c *Client) GetProducts(ctx context.Context) ([]domain.Product, error) {
	var dtos []productDTO
	if err := c.get(ctx, "/api/Products", nil, &dtos); err != nil {
		return nil, err
	}
	return c.normalizeProducts(dtos), nil
}

// GetProductsByCategory fetches every product in a category, unpaginated.
// This intentionally returns the full set: tag/brand membership cannot be
// expressed as server query parameters, so the caller caches this set and
// filters locally.
func (c *Client) GetProductsByCategory(ctx context.Context, categoryID int) ([]domain.Product, error) {
	var dtos []productDTO
	if err := c.get(ctx, fmt.Sprintf("/api/Products/category/%d", categoryID), nil, &dtos); err != nil {
		return nil, err
	}
	return c.normalizeProducts(dtos), nil
}

// QueryProducts runs the server-side paginated/sorted/filtered query.
func (c *Client) QueryProducts(ctx context.Context, q domain.ProductQuery) (domain.PaginatedResult[domain.Product], error) {
	params := url.Values{}
	if q.Page > 0 {
		params.Set("page", strconv.Itoa(q.Page))
	}
	if q.PageSize > 0 {
		params.Set("pageSize", strconv.Itoa(q.PageSize))
	}
	if q.Search != "" {
		params.Set("search", q.Search)
	}
	if q.CategoryID > 0 {
		params.Set("categoryId", strconv.Itoa(q.CategoryID))
	}
	if q.BranchID > 0 {
		params.Set("branchId", strconv.Itoa(q.BranchID))
	}
	if q.SortBy != "" {
		params.Set("sortBy", q.SortBy)
	}
	if q.MinPrice != nil {
		params.Set("minPrice", strconv.FormatFloat(*q.MinPrice, 'f', -1, 64))
	}
	if q.MaxPrice != nil {
		params.Set("maxPrice", strconv.FormatFloat(*q.MaxPrice, 'f', -1, 64))
	}
	if q.IsPrescriptionRequired != nil {
		params.Set("isPrescriptionRequired", strconv.FormatBool(*q.IsPrescriptionRequired))
	}
	if q.IsActive != nil {
		params.Set("isActive", strconv.FormatBool(*q.IsActive))
	}
	if q.InStock != nil {
		params.Set("inStock", strconv.FormatBool(*q.InStock))
	}

	var page domain.PaginatedResult[productDTO]
	if err := c.get(ctx, "/api/Products/query", params, &page); err != nil {
		return domain.EmptyPage[domain.Product](q.Page, q.PageSize), err
	}

	return domain.PaginatedResult[domain.Product]{
		CurrentPage: page.CurrentPage,
		PageSize:    page.PageSize,
		TotalCount:  page.TotalCount,
		TotalPages:  page.TotalPages,
		HasPrevious: page.HasPrevious,
		HasNext:     page.HasNext,
		Items:       c.normalizeProducts(page.Items),
	}, nil
}

// SearchProducts runs the free-text search endpoint.
func (c *Client) SearchProducts(ctx context.Context, term string) ([]domain.Product, error) {
	params := url.Values{}
	params.Set("term", term)

	var dtos []productDTO
	if err := c.get(ctx, "/api/Products/search", params, &dtos); err != nil {
		return nil, err
	}
	return c.normalizeProducts(dtos), nil
}

// GetFeaturedProducts fetches the featured product strip.
func (c *Client) GetFeaturedProducts(ctx context.Context) ([]domain.Product, error) {
	var dtos []productDTO
	if err := c.get(ctx, "/api/Products/featured", nil, &dtos); err != nil {
		return nil, err
	}
	return c.normalizeProducts(dtos), nil
}
