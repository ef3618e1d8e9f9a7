package backend

import (
	"context"

	"carezone-storefront/internal/domain"
)

type homeDTO struct {
	Banners          []bannerDTO       `json:"banners"`
	Categories       []domain.Category `json:"categories"`
	FeaturedProducts []productDTO      `json:"featuredProducts"`
	PopularProducts  []productDTO      `json:"popularProducts"`
}

// GetHome fetches the landing-page aggregate in one round trip.
func (c *Client) GetHome(ctx context.Context) (*domain.HomeData, error) {
	var dto homeDTO
	if err := c.get(ctx, "/api/Home", nil, &dto); err != nil {
		return nil, err
	}

	home := domain.HomeData{
		Banners:          make([]domain.Banner, 0, len(dto.Banners)),
		Categories:       dto.Categories,
		FeaturedProducts: c.normalizeProducts(dto.FeaturedProducts),
		PopularProducts:  c.normalizeProducts(dto.PopularProducts),
	}
	for _, b := range dto.Banners {
		home.Banners = append(home.Banners, c.normalizeBanner(b))
	}
	return &home, nil
}

// TopRankedCategory is a category together with its highest ranked products,
// normalized from the snake_case wire shape.
type TopRankedCategory struct {
	Category domain.Category  `json:"category"`
	Products []domain.Product `json:"products"`
}

// GetTopRankedCategories fetches the ranked category strips for the home page.
func (c *Client) GetTopRankedCategories(ctx context.Context) ([]TopRankedCategory, error) {
	var dtos []topRankedCategoryDTO
	if err := c.get(ctx, "/api/Categories/top-ranked", nil, &dtos); err != nil {
		return nil, err
	}

	out := make([]TopRankedCategory, 0, len(dtos))
	for _, cat := range dtos {
		entry := TopRankedCategory{
			Category: domain.Category{
				ID:       cat.CategoryID,
				Name:     cat.CategoryNameEn,
				IsActive: true,
				Rank:     cat.CategoryRank,
			},
			Products: make([]domain.Product, 0, len(cat.Products)),
		}
		for _, p := range cat.Products {
			entry.Products = append(entry.Products, c.normalizeTopRanked(p, cat.CategoryNameEn))
		}
		out = append(out, entry)
	}
	return out, nil
}

// GetMiddleBanners fetches the between-sections banner strip.
func (c *Client) GetMiddleBanners(ctx context.Context) ([]domain.Banner, error) {
	var dtos []bannerDTO
	if err := c.get(ctx, "/api/Banners/middle", nil, &dtos); err != nil {
		return nil, err
	}

	banners := make([]domain.Banner, 0, len(dtos))
	for _, b := range dtos {
		banners = append(banners, c.normalizeBanner(b))
	}
	return banners, nil
}

// GetCities fetches the deliverable cities with their zones.
func (c *Client) GetCities(ctx context.Context) ([]domain.City, error) {
	var cities []domain.City
	if err := c.get(ctx, "/api/Cities", nil, &cities); err != nil {
		return nil, err
	}
	return cities, nil
}

// GetBranches fetches the pickup branch list.
func (c *Client) GetBranches(ctx context.Context) ([]domain.Branch, error) {
	var branches []domain.Branch
	if err := c.get(ctx, "/api/Branches", nil, &branches); err != nil {
		return nil, err
	}
	return branches, nil
}

// GetTags fetches the full tag vocabulary.
func (c *Client) GetTags(ctx context.Context) ([]domain.Tag, error) {
	var tags []domain.Tag
	if err := c.get(ctx, "/api/Tags", nil, &tags); err != nil {
		return nil, err
	}
	return tags, nil
}
