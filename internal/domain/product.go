package domain

import "time"

// Product is the canonical storefront view of a catalog item. All backend
// wire shapes are normalized into this struct before anything renders it.
type Product struct {
	ID                     int        `json:"id"`
	Name                   string     `json:"name"`
	Description            string     `json:"description"`
	Price                  float64    `json:"price"`
	DiscountPrice          *float64   `json:"discountPrice,omitempty"`
	ImageURL               string     `json:"imageUrl"`
	IsPrescriptionRequired bool       `json:"isPrescriptionRequired"`
	IsActive               bool       `json:"isActive"`
	CategoryID             int        `json:"categoryId"`
	CategoryName           string     `json:"categoryName"`
	CreatedAt              time.Time  `json:"createdAt"`
	Rank                   *int       `json:"rank,omitempty"`
	MaxOrderQuantity       *int       `json:"maxOrderQuantity,omitempty"`
	Stock                  []Stock    `json:"stock"`
	Quantity               int        `json:"quantity"` // total available across branches
	Tags                   []TagRef   `json:"tags,omitempty"`
	Brand                  *BrandInfo `json:"brand,omitempty"`
	IsFav                  bool       `json:"isFav"`
}

// EffectivePrice returns the discounted price when present.
func (p *Product) EffectivePrice() float64 {
	if p.DiscountPrice != nil {
		return *p.DiscountPrice
	}
	return p.Price
}

// RankValue treats a missing rank as zero for ordering purposes.
func (p *Product) RankValue() int {
	if p.Rank != nil {
		return *p.Rank
	}
	return 0
}

// Stock is the per-branch availability breakdown.
type Stock struct {
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

type Tag struct {
	ID     int    `json:"id"`
	NameEn string `json:"nameEn"`
	NameAr string `json:"nameAr"`
}

// TagRef is the tag attachment as it appears on product records.
type TagRef struct {
	Tag Tag `json:"tag"`
}

// BrandInfo carries the brand/company identity of a product. Backend
// responses represent it inconsistently, so id and both name variants are
// optional and matching falls back across them.
type BrandInfo struct {
	ID     string `json:"id"`
	NameEn string `json:"nameEn"`
	NameAr string `json:"nameAr"`
}

type Category struct {
	ID           int    `json:"id"`
	Name         string `json:"name"`
	Description  string `json:"description"`
	ImageURL     string `json:"imageUrl"`
	IsActive     bool   `json:"isActive"`
	ProductCount int    `json:"productCount"`
	Rank         *int   `json:"rank,omitempty"`
}

// Sort keys accepted by the filter engine and the products listing.
const (
	SortDefault   = "rank"
	SortNewest    = "newest"
	SortOldest    = "oldest"
	SortPriceAsc  = "price_asc"
	SortPriceDesc = "price_desc"
	SortNameAsc   = "name_asc"
	SortNameDesc  = "name_desc"
)

// ProductQuery mirrors the backend /api/Products/query parameters.
type ProductQuery struct {
	Page                   int
	PageSize               int
	Search                 string
	CategoryID             int
	BranchID               int
	SortBy                 string // name, nameDesc, price, priceDesc, date, dateDesc
	MinPrice               *float64
	MaxPrice               *float64
	IsPrescriptionRequired *bool
	IsActive               *bool
	InStock                *bool
}

// BackendSortKey maps a storefront sort key onto the backend's sortBy
// parameter. Unknown keys map to empty (backend default ordering).
func BackendSortKey(sort string) string {
	switch sort {
	case SortNewest:
		return "dateDesc"
	case SortOldest:
		return "date"
	case SortPriceAsc:
		return "price"
	case SortPriceDesc:
		return "priceDesc"
	case SortNameAsc, SortDefault:
		return "name"
	case SortNameDesc:
		return "nameDesc"
	default:
		return ""
	}
}
