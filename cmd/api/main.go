package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/NYTimes/gziphandler"

	"carezone-storefront/config"
	"carezone-storefront/internal/backend"
	"carezone-storefront/internal/delivery/http/middleware"
	v1 "carezone-storefront/internal/delivery/http/v1"
	"carezone-storefront/internal/domain"
	"carezone-storefront/internal/infrastructure/cache"
	"carezone-storefront/internal/usecase"
	"carezone-storefront/pkg/kv"
	"carezone-storefront/pkg/logger"
	"carezone-storefront/pkg/storage"
)

func main() {
	cfg := config.LoadConfig()

	// Initialize Logger
	logger.Init(cfg.Env, cfg.LogLevel)
	log := logger.Get()

	// Persisted storefront state: Postgres when a DSN is configured,
	// otherwise a single JSON file next to the binary.
	var store kv.Store
	if cfg.StateDSN != "" {
		pgStore, err := kv.NewPostgresStore(context.Background(), cfg.StateDSN)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to connect to state database")
		}
		defer pgStore.Close()
		store = pgStore
		log.Info().Msg("Using Postgres-backed storefront state")
	} else {
		store = kv.NewFileStore(cfg.StateFilePath)
		log.Info().Str("path", cfg.StateFilePath).Msg("Using file-backed storefront state")
	}

	// Stores over the persisted state
	cartUC := usecase.NewCartUsecase(store)
	favoritesUC := usecase.NewFavoritesUsecase(store)

	cartUC.Subscribe(func(totalCount int) {
		log.Debug().Int("totalCount", totalCount).Msg("Cart changed")
	})
	favoritesUC.Subscribe(func(count int) {
		log.Debug().Int("count", count).Msg("Favorites changed")
	})

	// Upstream API client. The session token rides along on every call and
	// favorite membership is stamped onto products at normalization time.
	sessionToken := func() string {
		if raw, ok := store.Get(domain.StorageKeyToken); ok && len(raw) > 0 {
			return string(raw)
		}
		if raw, ok := store.Get(domain.StorageKeyUserToken); ok && len(raw) > 0 {
			return string(raw)
		}
		return ""
	}
	client := backend.NewClient(cfg.APIBaseURL, cfg.RequestTimeout, sessionToken, favoritesUC.IsFavorite)

	// Initialize Cache (In-Memory)
	memCache := cache.NewMemoryCache(cfg.CacheCategoryTTL, 2*cfg.CacheCategoryTTL)

	// Usecases
	authUC := usecase.NewAuthUsecase(client, store)
	catalogUC := usecase.NewCatalogUsecase(client, memCache, cfg)
	contentUC := usecase.NewContentUsecase(client)
	orderUC := usecase.NewOrderUsecase(client)
	checkoutUC := usecase.NewCheckoutUsecase(client, cartUC, store, cfg.ShippingFee, cfg.DefaultBranchID)
	searchUC := usecase.NewSearchUsecase(client, cfg.SearchDebounce, func(term string, products []domain.Product) {
		log.Debug().Str("term", term).Int("results", len(products)).Msg("Search completed")
	})
	prefsUC := usecase.NewPrefsUsecase(store)

	// --- Storage Module (R2, optional) ---
	var r2Storage *storage.R2Storage
	if cfg.R2AccountID != "" {
		var err error
		r2Storage, err = storage.NewR2Storage(
			context.Background(),
			cfg.R2AccountID,
			cfg.R2AccessKeyID,
			cfg.R2AccessKeySecret,
			cfg.R2BucketName,
			cfg.R2PublicURL,
			cfg.R2UploadTimeout,
		)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to initialize R2 Storage")
		}
	} else {
		log.Warn().Msg("R2 storage not configured, admin image uploads disabled")
	}
	adminUC := usecase.NewAdminUsecase(client, r2Storage, catalogUC)

	// Handlers
	catalogHandler := v1.NewCatalogHandler(catalogUC)
	contentHandler := v1.NewContentHandler(contentUC)
	cartHandler := v1.NewCartHandler(cartUC, orderUC, authUC)
	favoritesHandler := v1.NewFavoritesHandler(favoritesUC)
	checkoutHandler := v1.NewCheckoutHandler(checkoutUC)
	searchHandler := v1.NewSearchHandler(searchUC)
	authHandler := v1.NewAuthHandler(authUC)
	orderHandler := v1.NewOrderHandler(orderUC)
	prefsHandler := v1.NewPrefsHandler(prefsUC)
	adminHandler := v1.NewAdminHandler(adminUC, cfg.MaxUploadSizeMB, cfg.DefaultPageSize)

	// Set up Router
	mux := http.NewServeMux()

	authMW := middleware.NewAuthMiddleware(sessionToken)
	adminMW := func(h http.HandlerFunc) http.Handler {
		return authMW(middleware.AdminMiddleware(h))
	}

	// Catalog (Public)
	mux.HandleFunc("GET /api/v1/products", catalogHandler.ListProducts)
	mux.HandleFunc("GET /api/v1/products/featured", catalogHandler.GetFeatured)
	mux.HandleFunc("GET /api/v1/products/{id}", catalogHandler.GetProduct)
	mux.HandleFunc("GET /api/v1/categories/{id}/products", catalogHandler.BrowseCategory)
	mux.HandleFunc("GET /api/v1/categories/{id}/facets", catalogHandler.GetCategoryFacets)
	mux.HandleFunc("GET /api/v1/search", searchHandler.Search)
	mux.HandleFunc("POST /api/v1/search/typing", searchHandler.TypeAhead)
	mux.HandleFunc("GET /api/v1/search/results", searchHandler.GetResults)

	// Content (Public)
	mux.HandleFunc("GET /api/v1/home", contentHandler.GetHome)
	mux.HandleFunc("GET /api/v1/categories/top-ranked", contentHandler.GetTopRankedCategories)
	mux.HandleFunc("GET /api/v1/banners/middle", contentHandler.GetMiddleBanners)
	mux.HandleFunc("GET /api/v1/cities", contentHandler.GetCities)
	mux.HandleFunc("GET /api/v1/branches", contentHandler.GetBranches)
	mux.HandleFunc("GET /api/v1/tags", contentHandler.GetTags)

	// Cart & Favorites
	mux.HandleFunc("GET /api/v1/cart", cartHandler.GetCart)
	mux.HandleFunc("PUT /api/v1/cart/items", cartHandler.SetQuantity)
	mux.HandleFunc("DELETE /api/v1/cart", cartHandler.ClearCart)
	mux.HandleFunc("GET /api/v1/favorites", favoritesHandler.GetFavorites)
	mux.HandleFunc("POST /api/v1/favorites/{id}/toggle", favoritesHandler.Toggle)
	mux.HandleFunc("DELETE /api/v1/favorites", favoritesHandler.ClearFavorites)

	// Checkout
	mux.HandleFunc("POST /api/v1/checkout", checkoutHandler.PlaceOrder)
	mux.HandleFunc("GET /api/v1/checkout/state", checkoutHandler.GetState)

	// Auth
	mux.HandleFunc("POST /api/v1/auth/login", authHandler.Login)
	mux.HandleFunc("POST /api/v1/auth/register", authHandler.Register)
	mux.HandleFunc("POST /api/v1/auth/logout", authHandler.Logout)
	mux.HandleFunc("GET /api/v1/auth/session", authHandler.GetSession)
	mux.Handle("GET /api/v1/auth/profile", authMW(http.HandlerFunc(authHandler.GetProfile)))
	mux.Handle("PUT /api/v1/auth/profile", authMW(http.HandlerFunc(authHandler.UpdateProfile)))

	// Orders (Protected)
	mux.Handle("GET /api/v1/orders", authMW(http.HandlerFunc(orderHandler.GetMyOrders)))
	mux.Handle("GET /api/v1/orders/{id}", authMW(http.HandlerFunc(orderHandler.GetOrder)))
	mux.Handle("POST /api/v1/orders/{id}/cancel", authMW(http.HandlerFunc(orderHandler.CancelOrder)))

	// Preferences
	mux.HandleFunc("GET /api/v1/prefs", prefsHandler.GetPrefs)
	mux.HandleFunc("PUT /api/v1/prefs/theme", prefsHandler.SetTheme)
	mux.HandleFunc("POST /api/v1/prefs/theme/toggle", prefsHandler.ToggleTheme)
	mux.HandleFunc("PUT /api/v1/prefs/language", prefsHandler.SetLanguage)

	// Admin (Protected)
	mux.Handle("GET /api/v1/admin/stats", adminMW(adminHandler.GetStats))
	mux.Handle("POST /api/v1/admin/upload", adminMW(adminHandler.UploadImage))
	mux.Handle("DELETE /api/v1/admin/upload", adminMW(adminHandler.DeleteImage))
	mux.Handle("GET /api/v1/admin/products", adminMW(adminHandler.ListProducts))
	mux.Handle("POST /api/v1/admin/products", adminMW(adminHandler.CreateProduct))
	mux.Handle("PUT /api/v1/admin/products/{id}", adminMW(adminHandler.UpdateProduct))
	mux.Handle("DELETE /api/v1/admin/products/{id}", adminMW(adminHandler.DeleteProduct))
	mux.Handle("GET /api/v1/admin/banners", adminMW(adminHandler.ListBanners))
	mux.Handle("POST /api/v1/admin/banners", adminMW(adminHandler.CreateBanner))
	mux.Handle("PUT /api/v1/admin/banners/{id}", adminMW(adminHandler.UpdateBanner))
	mux.Handle("DELETE /api/v1/admin/banners/{id}", adminMW(adminHandler.DeleteBanner))
	mux.Handle("GET /api/v1/admin/orders", adminMW(adminHandler.ListOrders))
	mux.Handle("PATCH /api/v1/admin/orders/{id}/status", adminMW(adminHandler.UpdateOrderStatus))

	// Health Check
	healthHandler := func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status": "ok"}`))
	}
	mux.HandleFunc("GET /api/v1/health", healthHandler)
	mux.HandleFunc("GET /health", healthHandler)

	addr := fmt.Sprintf(":%s", cfg.Port)

	// Initialize Rate Limiter with lifecycle management
	// 50 req/s, burst 100, cleanup every minute, TTL 3 minutes
	rateLimiter := middleware.NewRateLimiter(
		context.Background(),
		50,
		100,
		time.Minute,
		3*time.Minute,
	)

	// Apply CORS, Request Logger, Rate Limit, and Gzip
	handler := middleware.NewCORSMiddleware(cfg)(mux)
	handler = middleware.RequestLogger(handler)
	handler = rateLimiter.Middleware()(handler)
	handler = gziphandler.GzipHandler(handler)

	srv := &http.Server{
		Addr:    addr,
		Handler: handler,
	}

	// Graceful Shutdown
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Server failed to start")
		}
	}()

	log.Info().Msgf("Server starting on %s", addr)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Server shutting down...")

	rateLimiter.Shutdown()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited properly")
}
