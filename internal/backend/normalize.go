package backend

import (
	"strconv"
	"strings"
	"time"

	"carezone-storefront/internal/domain"
)

// Asset folders the backend serves bare image filenames from.
const (
	assetFolderProducts = "images/products"
	assetFolderBanners  = "images/banners"
)

// ResolveImageURL turns whatever the backend put in an image field into an
// absolute URL. Accepted input shapes:
//   - absolute URL (http/https): passed through untouched
//   - root-relative path ("/uploads/x.webp"): prefixed with the origin
//   - bare filename ("x.webp"): prefixed with origin + the asset folder
func ResolveImageURL(origin, assetFolder, raw string) string {
	if raw == "" {
		return ""
	}
	if strings.HasPrefix(raw, "http://") || strings.HasPrefix(raw, "https://") {
		return raw
	}
	if strings.HasPrefix(raw, "/") {
		return origin + raw
	}
	return origin + "/" + assetFolder + "/" + raw
}

// productDTO is the camelCase product shape returned by the /api/Products
// endpoints.
type productDTO struct {
	ID                     int         `json:"id"`
	ProductName            string      `json:"productName"`
	ProductImage           string      `json:"productImage"`
	ImageURL               string      `json:"imageUrl"` // some endpoints use this field instead
	Price                  float64     `json:"price"`
	DiscountPrice          *float64    `json:"discountPrice"`
	Description            string      `json:"description"`
	IsPrescriptionRequired bool        `json:"isPrescriptionRequired"`
	IsActive               bool        `json:"isActive"`
	CategoryID             int         `json:"categoryId"`
	CategoryName           string      `json:"categoryName"`
	CreatedAt              time.Time   `json:"createdAt"`
	Rank                   *int        `json:"rank"`
	MaxOrderQuantity       *int        `json:"maxOrderQuantity"`
	Stock                  []stockDTO  `json:"stock"`
	Tags                   []tagRefDTO `json:"tags"`

	// Brand identity is inconsistently represented across endpoints.
	CompanyID     *int       `json:"companyId"`
	CompanyIDAlt  *int       `json:"company_id"`
	CompanyName   string     `json:"companyName"`
	CompanyNameEn string     `json:"company_name_en"`
	CompanyNameAr string     `json:"company_name_ar"`
	Company       companyDTO `json:"company"`
}

type companyDTO struct {
	ID     *int   `json:"id"`
	Name   string `json:"name"`
	NameEn string `json:"nameEn"`
	NameAr string `json:"nameAr"`
}

type stockDTO struct {
	ProductID         int       `json:"productId"`
	ProductName       string    `json:"productName"`
	BranchID          int       `json:"branchId"`
	BranchName        string    `json:"branchName"`
	Quantity          int       `json:"quantity"`
	MinimumStockLevel int       `json:"minimumStockLevel"`
	MaximumStockLevel int       `json:"maximumStockLevel"`
	LastRestocked     time.Time `json:"lastRestocked"`
	IsLowStock        bool      `json:"isLowStock"`
	IsOutOfStock      bool      `json:"isOutOfStock"`
}

type tagRefDTO struct {
	Tag domain.Tag `json:"tag"`
}

// normalizeProduct maps a camelCase wire product onto the canonical view
// model. The favorite flag is a snapshot of the favorites set at call time.
func (c *Client) normalizeProduct(dto productDTO) domain.Product {
	image := dto.ProductImage
	if image == "" {
		image = dto.ImageURL
	}

	stocks := make([]domain.Stock, len(dto.Stock))
	total := 0
	for i, s := range dto.Stock {
		stocks[i] = domain.Stock(s)
		total += s.Quantity
	}

	tags := make([]domain.TagRef, 0, len(dto.Tags))
	for _, t := range dto.Tags {
		tags = append(tags, domain.TagRef(t))
	}

	return domain.Product{
		ID:                     dto.ID,
		Name:                   dto.ProductName,
		Description:            dto.Description,
		Price:                  dto.Price,
		DiscountPrice:          dto.DiscountPrice,
		ImageURL:               ResolveImageURL(c.baseURL, assetFolderProducts, image),
		IsPrescriptionRequired: dto.IsPrescriptionRequired,
		IsActive:               dto.IsActive,
		CategoryID:             dto.CategoryID,
		CategoryName:           dto.CategoryName,
		CreatedAt:              dto.CreatedAt,
		Rank:                   dto.Rank,
		MaxOrderQuantity:       dto.MaxOrderQuantity,
		Stock:                  stocks,
		Quantity:               total,
		Tags:                   tags,
		Brand:                  normalizeBrand(dto),
		IsFav:                  c.isFav(dto.ID),
	}
}

func (c *Client) normalizeProducts(dtos []productDTO) []domain.Product {
	out := make([]domain.Product, len(dtos))
	for i, dto := range dtos {
		out[i] = c.normalizeProduct(dto)
	}
	return out
}

// normalizeBrand reduces the brand field variants to one identity. The id
// is taken from the first populated id field; names fall back across the
// flat fields and the nested company object.
func normalizeBrand(dto productDTO) *domain.BrandInfo {
	var id string
	switch {
	case dto.CompanyID != nil:
		id = strconv.Itoa(*dto.CompanyID)
	case dto.CompanyIDAlt != nil:
		id = strconv.Itoa(*dto.CompanyIDAlt)
	case dto.Company.ID != nil:
		id = strconv.Itoa(*dto.Company.ID)
	}

	nameEn := firstNonEmpty(dto.CompanyName, dto.CompanyNameEn, dto.Company.NameEn, dto.Company.Name)
	nameAr := firstNonEmpty(dto.CompanyNameAr, dto.Company.NameAr, nameEn)

	if id == "" && nameEn == "" && nameAr == "" {
		return nil
	}
	return &domain.BrandInfo{ID: id, NameEn: nameEn, NameAr: nameAr}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

// topRankedCategoryDTO is the snake_case shape of /api/Categories/top-ranked.
type topRankedCategoryDTO struct {
	CategoryID     int                   `json:"category_id"`
	CategoryNameEn string                `json:"category_name_en"`
	CategoryNameAr string                `json:"category_name_ar"`
	CategoryRank   *int                  `json:"category_rank"`
	Products       []topRankedProductDTO `json:"products"`
}

type topRankedProductDTO struct {
	SkuID          int               `json:"sku_id"`
	ProductNameEn  string            `json:"product_name_en"`
	ProductNameAr  string            `json:"product_name_ar"`
	PriceAfter     float64           `json:"price_after"`
	PriceBefore    *float64          `json:"price_before"`
	AvailableStock int               `json:"available_stock"`
	ItemRank       *int              `json:"item_rank"`
	Images         []productImageDTO `json:"images"`
	Description    string            `json:"description"`
	CategoryID     int               `json:"category_id"`
}

type productImageDTO struct {
	ImageURL  string `json:"image_url"`
	ImageRank int    `json:"image_rank"`
}

// normalizeTopRanked maps the snake_case shape onto the canonical product.
// price_before, when present, is the pre-discount price and price_after the
// effective one.
func (c *Client) normalizeTopRanked(dto topRankedProductDTO, categoryName string) domain.Product {
	price := dto.PriceAfter
	var discount *float64
	if dto.PriceBefore != nil && *dto.PriceBefore > dto.PriceAfter {
		price = *dto.PriceBefore
		after := dto.PriceAfter
		discount = &after
	}

	image := ""
	if len(dto.Images) > 0 {
		image = dto.Images[0].ImageURL
	}

	return domain.Product{
		ID:            dto.SkuID,
		Name:          dto.ProductNameEn,
		Description:   dto.Description,
		Price:         price,
		DiscountPrice: discount,
		ImageURL:      ResolveImageURL(c.baseURL, assetFolderProducts, image),
		IsActive:      true,
		CategoryID:    dto.CategoryID,
		CategoryName:  categoryName,
		Rank:          dto.ItemRank,
		Stock:         []domain.Stock{},
		Quantity:      dto.AvailableStock,
		IsFav:         c.isFav(dto.SkuID),
	}
}

type bannerDTO struct {
	ID           int       `json:"id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	ImageURL     string    `json:"imageUrl"`
	Link         string    `json:"link"`
	Type         int       `json:"type"`
	IsActive     bool      `json:"isActive"`
	DisplayOrder int       `json:"displayOrder"`
	CreatedAt    time.Time `json:"createdAt"`
}

func (c *Client) normalizeBanner(dto bannerDTO) domain.Banner {
	b := domain.Banner(dto)
	b.ImageURL = ResolveImageURL(c.baseURL, assetFolderBanners, dto.ImageURL)
	return b
}
