package domain

import "time"

// Banner placement types as the backend numbers them.
const (
	BannerTypeHero   = 0
	BannerTypeMiddle = 1
)

type Banner struct {
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

type City struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	IsActive bool   `json:"isActive"`
	Zones    []Zone `json:"zones,omitempty"`
}

type Zone struct {
	ID          int     `json:"id"`
	Name        string  `json:"name"`
	DeliveryFee float64 `json:"deliveryFee"`
	IsActive    bool    `json:"isActive"`
}

type Branch struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Address  string `json:"address"`
	Phone    string `json:"phone"`
	IsActive bool   `json:"isActive"`
}

// HomeData is the /api/Home aggregate rendered on the landing page.
type HomeData struct {
	Banners          []Banner   `json:"banners"`
	Categories       []Category `json:"categories"`
	FeaturedProducts []Product  `json:"featuredProducts"`
	PopularProducts  []Product  `json:"popularProducts"`
}
