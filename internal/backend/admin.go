package backend

import (
	"bytes"
	"context"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/url"
	"strconv"

	"github.com/goccy/go-json"

	"carezone-storefront/internal/domain"
)

// apiResponse is the success envelope the admin endpoints wrap payloads in.
type apiResponse struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// AdminProductForm carries the admin product create/update fields. ImageURL
// is the already-uploaded public object URL, not a file.
type AdminProductForm struct {
	Name                   string
	Description            string
	Price                  float64
	DiscountPrice          *float64
	CategoryID             int
	IsPrescriptionRequired bool
	IsActive               bool
	MaxOrderQuantity       *int
	ImageURL               string
}

// AdminBannerForm carries the admin banner create/update fields.
type AdminBannerForm struct {
	Title        string
	Description  string
	Link         string
	Type         int
	IsActive     bool
	DisplayOrder int
	ImageURL     string
}

// postForm sends a multipart form and unwraps the admin response envelope
// into out.
func (c *Client) postForm(ctx context.Context, method, path string, fields map[string]string, out interface{}) error {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	for key, value := range fields {
		if err := writer.WriteField(key, value); err != nil {
			return fmt.Errorf("failed to write form field %s: %w", key, err)
		}
	}
	if err := writer.Close(); err != nil {
		return fmt.Errorf("failed to finalize form: %w", err)
	}

	var envelope apiResponse
	if err := c.do(ctx, method, path, nil, &buf, writer.FormDataContentType(), &envelope); err != nil {
		return err
	}
	if !envelope.Success {
		return &APIError{Status: http.StatusUnprocessableEntity, Message: envelope.Message}
	}
	if out != nil && len(envelope.Data) > 0 {
		if err := json.Unmarshal(envelope.Data, out); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}
	return nil
}

func (f AdminProductForm) fields() map[string]string {
	fields := map[string]string{
		"name":                   f.Name,
		"description":            f.Description,
		"price":                  strconv.FormatFloat(f.Price, 'f', -1, 64),
		"categoryId":             strconv.Itoa(f.CategoryID),
		"isPrescriptionRequired": strconv.FormatBool(f.IsPrescriptionRequired),
		"isActive":               strconv.FormatBool(f.IsActive),
		"imageUrl":               f.ImageURL,
	}
	if f.DiscountPrice != nil {
		fields["discountPrice"] = strconv.FormatFloat(*f.DiscountPrice, 'f', -1, 64)
	}
	if f.MaxOrderQuantity != nil {
		fields["maxOrderQuantity"] = strconv.Itoa(*f.MaxOrderQuantity)
	}
	return fields
}

func (f AdminBannerForm) fields() map[string]string {
	return map[string]string{
		"title":        f.Title,
		"description":  f.Description,
		"link":         f.Link,
		"type":         strconv.Itoa(f.Type),
		"isActive":     strconv.FormatBool(f.IsActive),
		"displayOrder": strconv.Itoa(f.DisplayOrder),
		"imageUrl":     f.ImageURL,
	}
}

// AdminListProducts fetches the back-office product listing, paginated.
func (c *Client) AdminListProducts(ctx context.Context, page, pageSize int, search string) (domain.PaginatedResult[domain.Product], error) {
	params := url.Values{}
	params.Set("page", strconv.Itoa(page))
	params.Set("pageSize", strconv.Itoa(pageSize))
	if search != "" {
		params.Set("search", search)
	}

	var result domain.PaginatedResult[productDTO]
	if err := c.get(ctx, "/api/admin/AdminProducts", params, &result); err != nil {
		return domain.EmptyPage[domain.Product](page, pageSize), err
	}
	return domain.PaginatedResult[domain.Product]{
		CurrentPage: result.CurrentPage,
		PageSize:    result.PageSize,
		TotalCount:  result.TotalCount,
		TotalPages:  result.TotalPages,
		HasPrevious: result.HasPrevious,
		HasNext:     result.HasNext,
		Items:       c.normalizeProducts(result.Items),
	}, nil
}

// AdminCreateProduct creates a product through the back-office endpoint.
func (c *Client) AdminCreateProduct(ctx context.Context, form AdminProductForm) (*domain.Product, error) {
	var dto productDTO
	if err := c.postForm(ctx, http.MethodPost, "/api/admin/AdminProducts", form.fields(), &dto); err != nil {
		return nil, err
	}
	product := c.normalizeProduct(dto)
	return &product, nil
}

// AdminUpdateProduct updates a product through the back-office endpoint.
func (c *Client) AdminUpdateProduct(ctx context.Context, id int, form AdminProductForm) (*domain.Product, error) {
	var dto productDTO
	if err := c.postForm(ctx, http.MethodPut, fmt.Sprintf("/api/admin/AdminProducts/%d", id), form.fields(), &dto); err != nil {
		return nil, err
	}
	product := c.normalizeProduct(dto)
	return &product, nil
}

// AdminDeleteProduct removes a product.
func (c *Client) AdminDeleteProduct(ctx context.Context, id int) error {
	return c.delete(ctx, fmt.Sprintf("/api/admin/AdminProducts/%d", id))
}

// AdminListBanners fetches every banner, active or not.
func (c *Client) AdminListBanners(ctx context.Context) ([]domain.Banner, error) {
	var dtos []bannerDTO
	if err := c.get(ctx, "/api/admin/AdminBanners", nil, &dtos); err != nil {
		return nil, err
	}
	banners := make([]domain.Banner, 0, len(dtos))
	for _, b := range dtos {
		banners = append(banners, c.normalizeBanner(b))
	}
	return banners, nil
}

// AdminCreateBanner creates a banner through the back-office endpoint.
func (c *Client) AdminCreateBanner(ctx context.Context, form AdminBannerForm) (*domain.Banner, error) {
	var dto bannerDTO
	if err := c.postForm(ctx, http.MethodPost, "/api/admin/AdminBanners", form.fields(), &dto); err != nil {
		return nil, err
	}
	banner := c.normalizeBanner(dto)
	return &banner, nil
}

// AdminUpdateBanner updates a banner through the back-office endpoint.
func (c *Client) AdminUpdateBanner(ctx context.Context, id int, form AdminBannerForm) (*domain.Banner, error) {
	var dto bannerDTO
	if err := c.postForm(ctx, http.MethodPut, fmt.Sprintf("/api/admin/AdminBanners/%d", id), form.fields(), &dto); err != nil {
		return nil, err
	}
	banner := c.normalizeBanner(dto)
	return &banner, nil
}

// AdminDeleteBanner removes a banner.
func (c *Client) AdminDeleteBanner(ctx context.Context, id int) error {
	return c.delete(ctx, fmt.Sprintf("/api/admin/AdminBanners/%d", id))
}

// AdminListOrders fetches the back-office order listing, paginated.
func (c *Client) AdminListOrders(ctx context.Context, page, pageSize int, status string) (domain.PaginatedResult[domain.Order], error) {
	params := url.Values{}
	params.Set("page", strconv.Itoa(page))
	params.Set("pageSize", strconv.Itoa(pageSize))
	if status != "" {
		params.Set("status", status)
	}

	var result domain.PaginatedResult[domain.Order]
	if err := c.get(ctx, "/api/admin/AdminOrders", params, &result); err != nil {
		return domain.EmptyPage[domain.Order](page, pageSize), err
	}
	return result, nil
}

type orderStatusRequest struct {
	Status string `json:"status"`
}

// AdminUpdateOrderStatus moves an order to a new status.
func (c *Client) AdminUpdateOrderStatus(ctx context.Context, id int, status string) error {
	return c.putJSON(ctx, fmt.Sprintf("/api/admin/AdminOrders/%d/status", id), orderStatusRequest{Status: status}, nil)
}
