package backend

import (
	"testing"
	"time"
)

func testClient() *Client {
	return NewClient("http://localhost:5062", time.Second, nil, nil)
}

func TestResolveImageURL(t *testing.T) {
	origin := "http://localhost:5062"

	cases := []struct {
		name string
		raw  string
		want string
	}{
		{"absolute http", "http://cdn.example.com/a.webp", "http://cdn.example.com/a.webp"},
		{"absolute https", "https://cdn.example.com/a.webp", "https://cdn.example.com/a.webp"},
		{"root relative", "/uploads/a.webp", "http://localhost:5062/uploads/a.webp"},
		{"bare filename", "a.webp", "http://localhost:5062/images/products/a.webp"},
		{"empty", "", ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := ResolveImageURL(origin, assetFolderProducts, tc.raw); got != tc.want {
				t.Fatalf("want %q, got %q", tc.want, got)
			}
		})
	}

	if got := ResolveImageURL(origin, assetFolderBanners, "b.webp"); got != "http://localhost:5062/images/banners/b.webp" {
		t.Fatalf("want banner asset folder, got %q", got)
	}
}

func TestNormalizeProduct(t *testing.T) {
	c := NewClient("http://localhost:5062", time.Second, nil, func(id int) bool { return id == 10 })

	dto := productDTO{
		ID:           10,
		ProductName:  "Panadol",
		ProductImage: "panadol.webp",
		Price:        12.5,
		Stock: []stockDTO{
			{BranchID: 1, Quantity: 3},
			{BranchID: 2, Quantity: 4},
		},
	}

	p := c.normalizeProduct(dto)
	if p.Name != "Panadol" || p.ID != 10 {
		t.Fatalf("want identity carried over, got %+v", p)
	}
	if p.ImageURL != "http://localhost:5062/images/products/panadol.webp" {
		t.Fatalf("want resolved image URL, got %q", p.ImageURL)
	}
	if p.Quantity != 7 {
		t.Fatalf("want total quantity 7 across branches, got %d", p.Quantity)
	}
	if !p.IsFav {
		t.Fatal("want favorite flag stamped")
	}
}

func TestNormalizeProductImageFieldFallback(t *testing.T) {
	c := testClient()

	p := c.normalizeProduct(productDTO{ID: 1, ImageURL: "/uploads/x.webp"})
	if p.ImageURL != "http://localhost:5062/uploads/x.webp" {
		t.Fatalf("want imageUrl fallback resolved, got %q", p.ImageURL)
	}

	// productImage wins when both are present
	p = c.normalizeProduct(productDTO{ID: 1, ProductImage: "a.webp", ImageURL: "b.webp"})
	if p.ImageURL != "http://localhost:5062/images/products/a.webp" {
		t.Fatalf("want productImage preferred, got %q", p.ImageURL)
	}
}

func TestNormalizeBrandFallbacks(t *testing.T) {
	id7 := 7

	p := normalizeBrand(productDTO{CompanyID: &id7, CompanyName: "Acme"})
	if p == nil || p.ID != "7" || p.NameEn != "Acme" {
		t.Fatalf("want id 7 name Acme, got %+v", p)
	}

	// snake_case variant
	p = normalizeBrand(productDTO{CompanyIDAlt: &id7, CompanyNameEn: "Acme", CompanyNameAr: "اكمي"})
	if p == nil || p.ID != "7" || p.NameEn != "Acme" || p.NameAr != "اكمي" {
		t.Fatalf("want snake_case fields mapped, got %+v", p)
	}

	// nested company object
	p = normalizeBrand(productDTO{Company: companyDTO{ID: &id7, Name: "Acme"}})
	if p == nil || p.ID != "7" || p.NameEn != "Acme" {
		t.Fatalf("want nested company mapped, got %+v", p)
	}

	// Arabic name falls back to the English one
	p = normalizeBrand(productDTO{CompanyName: "Acme"})
	if p == nil || p.NameAr != "Acme" {
		t.Fatalf("want nameAr fallback to nameEn, got %+v", p)
	}

	// nothing populated
	if p = normalizeBrand(productDTO{}); p != nil {
		t.Fatalf("want nil brand for empty fields, got %+v", p)
	}
}

func TestNormalizeTopRanked(t *testing.T) {
	c := testClient()

	before := 100.0
	rank := 2
	dto := topRankedProductDTO{
		SkuID:          55,
		ProductNameEn:  "Vitamin C",
		PriceAfter:     80,
		PriceBefore:    &before,
		AvailableStock: 12,
		ItemRank:       &rank,
		Images: []productImageDTO{
			{ImageURL: "vitc.webp", ImageRank: 1},
			{ImageURL: "vitc2.webp", ImageRank: 2},
		},
		CategoryID: 3,
	}

	p := c.normalizeTopRanked(dto, "Supplements")
	if p.ID != 55 || p.Name != "Vitamin C" || p.CategoryName != "Supplements" {
		t.Fatalf("want snake_case identity mapped, got %+v", p)
	}
	// price_before is the pre-discount price
	if p.Price != 100 || p.DiscountPrice == nil || *p.DiscountPrice != 80 {
		t.Fatalf("want price 100 with discount 80, got %+v", p)
	}
	if p.EffectivePrice() != 80 {
		t.Fatalf("want effective price 80, got %v", p.EffectivePrice())
	}
	if p.ImageURL != "http://localhost:5062/images/products/vitc.webp" {
		t.Fatalf("want first image resolved, got %q", p.ImageURL)
	}
	if p.Quantity != 12 {
		t.Fatalf("want available stock mapped, got %d", p.Quantity)
	}

	// No markdown: price_after is just the price
	dto.PriceBefore = nil
	p = c.normalizeTopRanked(dto, "Supplements")
	if p.Price != 80 || p.DiscountPrice != nil {
		t.Fatalf("want plain price 80 without discount, got %+v", p)
	}
}
