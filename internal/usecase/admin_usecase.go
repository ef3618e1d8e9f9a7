package usecase

import (
	"context"
	"errors"
	"io"

	"carezone-storefront/internal/backend"
	"carezone-storefront/internal/domain"
	"carezone-storefront/pkg/storage"
	"carezone-storefront/pkg/utils"
)

// ErrStorageUnavailable is returned for image uploads when no object
// storage is configured.
var ErrStorageUnavailable = errors.New("object storage is not configured")

// AdminGateway is the slice of the backend client the back office needs.
type AdminGateway interface {
	AdminListProducts(ctx context.Context, page, pageSize int, search string) (domain.PaginatedResult[domain.Product], error)
	AdminCreateProduct(ctx context.Context, form backend.AdminProductForm) (*domain.Product, error)
	AdminUpdateProduct(ctx context.Context, id int, form backend.AdminProductForm) (*domain.Product, error)
	AdminDeleteProduct(ctx context.Context, id int) error
	AdminListBanners(ctx context.Context) ([]domain.Banner, error)
	AdminCreateBanner(ctx context.Context, form backend.AdminBannerForm) (*domain.Banner, error)
	AdminUpdateBanner(ctx context.Context, id int, form backend.AdminBannerForm) (*domain.Banner, error)
	AdminDeleteBanner(ctx context.Context, id int) error
	AdminListOrders(ctx context.Context, page, pageSize int, status string) (domain.PaginatedResult[domain.Order], error)
	AdminUpdateOrderStatus(ctx context.Context, id int, status string) error
}

// DashboardStats is the back-office overview, aggregated from the listing
// endpoints rather than served by a dedicated stats API.
type DashboardStats struct {
	TotalProducts int     `json:"totalProducts"`
	ActiveBanners int     `json:"activeBanners"`
	TotalOrders   int     `json:"totalOrders"`
	PendingOrders int     `json:"pendingOrders"`
	RecentRevenue float64 `json:"recentRevenue"`
}

// AdminUsecase drives the back office: catalog and banner CRUD with image
// upload, order management, and dashboard aggregation. Uploaded images are
// processed (resize, WebP) and pushed to object storage; the resulting
// public URL travels with the form to the backend.
type AdminUsecase struct {
	gateway AdminGateway
	storage *storage.R2Storage
	catalog *CatalogUsecase
}

// NewAdminUsecase creates the back-office usecase. storage may be nil, in
// which case image uploads are rejected.
func NewAdminUsecase(gateway AdminGateway, objectStorage *storage.R2Storage, catalog *CatalogUsecase) *AdminUsecase {
	return &AdminUsecase{
		gateway: gateway,
		storage: objectStorage,
		catalog: catalog,
	}
}

// UploadImage processes and stores one image, returning its public URL.
func (u *AdminUsecase) UploadImage(ctx context.Context, file io.Reader, filename, folder string) (string, error) {
	if u.storage == nil {
		return "", ErrStorageUnavailable
	}
	data, contentType, err := utils.ProcessImage(file, filename)
	if err != nil {
		return "", err
	}
	return u.storage.UploadBuffer(ctx, folder, data, contentType)
}

// DeleteImage removes a previously uploaded image by its public URL, used
// when a product or banner image is replaced.
func (u *AdminUsecase) DeleteImage(ctx context.Context, fileURL string) error {
	if u.storage == nil {
		return ErrStorageUnavailable
	}
	return u.storage.DeleteFile(ctx, fileURL)
}

func (u *AdminUsecase) ListProducts(ctx context.Context, page, pageSize int, search string) (domain.PaginatedResult[domain.Product], error) {
	return u.gateway.AdminListProducts(ctx, page, pageSize, search)
}

func (u *AdminUsecase) CreateProduct(ctx context.Context, form backend.AdminProductForm) (*domain.Product, error) {
	product, err := u.gateway.AdminCreateProduct(ctx, form)
	if err != nil {
		return nil, err
	}
	u.catalog.InvalidateCategory(form.CategoryID)
	return product, nil
}

func (u *AdminUsecase) UpdateProduct(ctx context.Context, id int, form backend.AdminProductForm) (*domain.Product, error) {
	product, err := u.gateway.AdminUpdateProduct(ctx, id, form)
	if err != nil {
		return nil, err
	}
	u.catalog.InvalidateCategory(form.CategoryID)
	return product, nil
}

func (u *AdminUsecase) DeleteProduct(ctx context.Context, id, categoryID int) error {
	if err := u.gateway.AdminDeleteProduct(ctx, id); err != nil {
		return err
	}
	u.catalog.InvalidateCategory(categoryID)
	return nil
}

func (u *AdminUsecase) ListBanners(ctx context.Context) ([]domain.Banner, error) {
	return u.gateway.AdminListBanners(ctx)
}

func (u *AdminUsecase) CreateBanner(ctx context.Context, form backend.AdminBannerForm) (*domain.Banner, error) {
	return u.gateway.AdminCreateBanner(ctx, form)
}

func (u *AdminUsecase) UpdateBanner(ctx context.Context, id int, form backend.AdminBannerForm) (*domain.Banner, error) {
	return u.gateway.AdminUpdateBanner(ctx, id, form)
}

func (u *AdminUsecase) DeleteBanner(ctx context.Context, id int) error {
	return u.gateway.AdminDeleteBanner(ctx, id)
}

func (u *AdminUsecase) ListOrders(ctx context.Context, page, pageSize int, status string) (domain.PaginatedResult[domain.Order], error) {
	return u.gateway.AdminListOrders(ctx, page, pageSize, status)
}

func (u *AdminUsecase) UpdateOrderStatus(ctx context.Context, id int, status string) error {
	return u.gateway.AdminUpdateOrderStatus(ctx, id, status)
}

// Stats builds the dashboard overview from the first page of each listing.
func (u *AdminUsecase) Stats(ctx context.Context) (DashboardStats, error) {
	var stats DashboardStats

	products, err := u.gateway.AdminListProducts(ctx, 1, 1, "")
	if err != nil {
		return stats, err
	}
	stats.TotalProducts = products.TotalCount

	banners, err := u.gateway.AdminListBanners(ctx)
	if err != nil {
		return stats, err
	}
	for _, b := range banners {
		if b.IsActive {
			stats.ActiveBanners++
		}
	}

	orders, err := u.gateway.AdminListOrders(ctx, 1, 50, "")
	if err != nil {
		return stats, err
	}
	stats.TotalOrders = orders.TotalCount
	for _, o := range orders.Items {
		if o.Status == "Pending" {
			stats.PendingOrders++
		}
		stats.RecentRevenue += o.TotalAmount
	}

	return stats, nil
}
