package usecase

import (
	"context"

	"carezone-storefront/internal/backend"
	"carezone-storefront/internal/domain"
)

// ContentGateway is the slice of the backend client the content pages need.
type ContentGateway interface {
	GetHome(ctx context.Context) (*domain.HomeData, error)
	GetTopRankedCategories(ctx context.Context) ([]backend.TopRankedCategory, error)
	GetMiddleBanners(ctx context.Context) ([]domain.Banner, error)
	GetCities(ctx context.Context) ([]domain.City, error)
	GetBranches(ctx context.Context) ([]domain.Branch, error)
	GetTags(ctx context.Context) ([]domain.Tag, error)
}

// ContentUsecase serves the static-ish storefront content.
type ContentUsecase struct {
	gateway ContentGateway
}

func NewContentUsecase(gateway ContentGateway) *ContentUsecase {
	return &ContentUsecase{gateway: gateway}
}

func (u *ContentUsecase) GetHome(ctx context.Context) (*domain.HomeData, error) {
	return u.gateway.GetHome(ctx)
}

func (u *ContentUsecase) GetTopRankedCategories(ctx context.Context) ([]backend.TopRankedCategory, error) {
	return u.gateway.GetTopRankedCategories(ctx)
}

func (u *ContentUsecase) GetMiddleBanners(ctx context.Context) ([]domain.Banner, error) {
	return u.gateway.GetMiddleBanners(ctx)
}

// GetCities returns the deliverable cities, inactive ones dropped.
func (u *ContentUsecase) GetCities(ctx context.Context) ([]domain.City, error) {
	cities, err := u.gateway.GetCities(ctx)
	if err != nil {
		return nil, err
	}
	active := make([]domain.City, 0, len(cities))
	for _, c := range cities {
		if c.IsActive {
			active = append(active, c)
		}
	}
	return active, nil
}

func (u *ContentUsecase) GetBranches(ctx context.Context) ([]domain.Branch, error) {
	return u.gateway.GetBranches(ctx)
}

func (u *ContentUsecase) GetTags(ctx context.Context) ([]domain.Tag, error) {
	return u.gateway.GetTags(ctx)
}
