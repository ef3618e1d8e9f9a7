package backend

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"carezone-storefront/internal/domain"
)

func TestClientSendsBearerToken(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, time.Second, func() string { return "tok123" }, nil)
	if _, err := c.GetProducts(context.Background()); err != nil {
		t.Fatal(err)
	}
	if gotAuth != "Bearer tok123" {
		t.Fatalf("want Bearer tok123, got %q", gotAuth)
	}
}

func TestClientOmitsAuthWhenLoggedOut(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, time.Second, nil, nil)
	if _, err := c.GetProducts(context.Background()); err != nil {
		t.Fatal(err)
	}
	if gotAuth != "" {
		t.Fatalf("want no Authorization header, got %q", gotAuth)
	}
}

func TestQueryProductsEncodesParams(t *testing.T) {
	var gotQuery map[string][]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/Products/query" {
			t.Fatalf("want /api/Products/query, got %s", r.URL.Path)
		}
		gotQuery = r.URL.Query()
		w.Write([]byte(`{"currentPage":1,"pageSize":21,"totalCount":0,"totalPages":0,"items":[]}`))
	}))
	defer srv.Close()

	min := 10.0
	c := NewClient(srv.URL, time.Second, nil, nil)
	result, err := c.QueryProducts(context.Background(), domain.ProductQuery{
		Page:       1,
		PageSize:   21,
		CategoryID: 4,
		SortBy:     "priceDesc",
		MinPrice:   &min,
	})
	if err != nil {
		t.Fatal(err)
	}

	for key, want := range map[string]string{
		"page":       "1",
		"pageSize":   "21",
		"categoryId": "4",
		"sortBy":     "priceDesc",
		"minPrice":   "10",
	} {
		if got := gotQuery[key]; len(got) != 1 || got[0] != want {
			t.Fatalf("want %s=%s, got %v", key, want, got)
		}
	}
	if _, present := gotQuery["maxPrice"]; present {
		t.Fatal("want unset maxPrice omitted")
	}
	if result.TotalPages != 0 || result.HasNext {
		t.Fatalf("want empty page passed through, got %+v", result)
	}
}

func TestClientSurfacesBackendErrorMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"message":"Product is out of stock"}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, time.Second, nil, nil)
	_, err := c.GetProduct(context.Background(), 1)
	if err == nil {
		t.Fatal("want error for 400 response")
	}
	if got := BackendMessage(err); got != "Product is out of stock" {
		t.Fatalf("want backend message surfaced, got %q", got)
	}
	if IsAuthError(err) {
		t.Fatal("want 400 not classified as auth error")
	}
}

func TestIsAuthError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"error":"token expired"}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, time.Second, nil, nil)
	_, err := c.GetMyOrders(context.Background())
	if !IsAuthError(err) {
		t.Fatalf("want auth error for 401, got %v", err)
	}
	if got := BackendMessage(err); got != "token expired" {
		t.Fatalf("want error-field message, got %q", got)
	}
}

func TestCreateOrderPostsPayload(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/api/Orders" {
			t.Fatalf("want POST /api/Orders, got %s %s", r.Method, r.URL.Path)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Fatalf("want application/json, got %q", ct)
		}
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"id":9,"orderNumber":"ORD-9"}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, time.Second, nil, nil)
	order, err := c.CreateOrder(context.Background(), domain.CreateOrderRequest{
		CityID:     1,
		OrderItems: []domain.OrderItem{{ProductID: 1, Quantity: 2}},
	})
	if err != nil {
		t.Fatal(err)
	}
	if order.OrderNumber != "ORD-9" {
		t.Fatalf("want ORD-9, got %q", order.OrderNumber)
	}
}

func TestCancelOrderPosts(t *testing.T) {
	var gotMethod, gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, time.Second, nil, nil)
	if err := c.CancelOrder(context.Background(), 7); err != nil {
		t.Fatal(err)
	}
	if gotMethod != http.MethodPost || gotPath != "/api/Orders/7/cancel" {
		t.Fatalf("want POST /api/Orders/7/cancel, got %s %s", gotMethod, gotPath)
	}
}
