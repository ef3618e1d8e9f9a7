package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port     string
	Env      string
	LogLevel string

	// Upstream REST API
	APIBaseURL     string
	RequestTimeout time.Duration

	AllowedOrigin string

	// Persisted storefront state
	StateFilePath string
	StateDSN      string // optional: Postgres-backed state instead of the file

	// Catalog / listing defaults
	DefaultPageSize  int
	CategoryPageSize int
	PriceFilterMax   float64
	CacheCategoryTTL time.Duration

	// Search
	SearchDebounce time.Duration

	// Checkout business rules
	ShippingFee     float64
	DefaultBranchID int

	// R2 Storage (admin image uploads)
	R2AccountID       string
	R2AccessKeyID     string
	R2AccessKeySecret string
	R2BucketName      string
	R2PublicURL       string
	R2UploadTimeout   time.Duration
	MaxUploadSizeMB   int64
}

func LoadConfig() *Config {
	// 1. Check if a specific config file is requested via env var
	configFile := os.Getenv("CONFIG_FILE")
	if configFile != "" {
		if err := godotenv.Load(configFile); err != nil {
			log.Printf("Warning: Failed to load config file '%s': %v", configFile, err)
		} else {
			log.Printf("Loaded configuration from %s", configFile)
		}
	} else {
		// 2. Default fallback: .env for local dev; in docker/prod we rely
		// on system env vars, so a missing file is not an error.
		if err := godotenv.Load(); err != nil {
			log.Println("No .env file found or error loading it, relying on system env vars")
		}
	}

	cfg := &Config{
		Port:     getEnv("PORT", "8090"),
		Env:      getEnv("ENV", "development"),
		LogLevel: getEnv("LOG_LEVEL", "info"),

		APIBaseURL:     getEnv("API_BASE_URL", "http://localhost:5062"),
		RequestTimeout: getDurationEnv("REQUEST_TIMEOUT", 10*time.Second),

		AllowedOrigin: getEnv("ALLOWED_ORIGIN", "http://localhost:4200"),

		StateFilePath: getEnv("STATE_FILE", "storefront-state.json"),
		StateDSN:      getEnv("STATE_DSN", ""),

		// 21 = 3 rows x 7 columns on the category grid
		DefaultPageSize:  getIntEnv("DEFAULT_PAGE_SIZE", 10),
		CategoryPageSize: getIntEnv("CATEGORY_PAGE_SIZE", 21),
		PriceFilterMax:   getFloatEnv("PRICE_FILTER_MAX", 5000),
		CacheCategoryTTL: getDurationEnv("CACHE_CATEGORY_TTL", 30*time.Minute),

		SearchDebounce: getDurationEnv("SEARCH_DEBOUNCE", 400*time.Millisecond),

		ShippingFee:     getFloatEnv("SHIPPING_FEE", 5),
		DefaultBranchID: getIntEnv("DEFAULT_BRANCH_ID", 1),

		R2AccountID:       getEnv("R2_ACCOUNT_ID", ""),
		R2AccessKeyID:     getEnv("R2_ACCESS_KEY_ID", ""),
		R2AccessKeySecret: getEnv("R2_ACCESS_KEY_SECRET", ""),
		R2BucketName:      getEnv("R2_BUCKET_NAME", ""),
		R2PublicURL:       getEnv("R2_PUBLIC_URL", ""),
		R2UploadTimeout:   getDurationEnv("R2_UPLOAD_TIMEOUT", 30*time.Second),
		MaxUploadSizeMB:   getInt64Env("MAX_UPLOAD_SIZE_MB", 10),
	}

	cfg.Validate()
	return cfg
}

func (c *Config) Validate() {
	if c.APIBaseURL == "" {
		log.Fatal("CRITICAL: API_BASE_URL environment variable is required")
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getDurationEnv(key string, fallback time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
		log.Printf("Invalid duration for %s, using fallback", key)
	}
	return fallback
}

func getIntEnv(key string, fallback int) int {
	if value, exists := os.LookupEnv(key); exists {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
		log.Printf("Invalid int for %s, using fallback", key)
	}
	return fallback
}

func getInt64Env(key string, fallback int64) int64 {
	if value, exists := os.LookupEnv(key); exists {
		if i, err := strconv.ParseInt(value, 10, 64); err == nil {
			return i
		}
		log.Printf("Invalid int64 for %s, using fallback", key)
	}
	return fallback
}

func getFloatEnv(key string, fallback float64) float64 {
	if value, exists := os.LookupEnv(key); exists {
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			return f
		}
		log.Printf("Invalid float for %s, using fallback", key)
	}
	return fallback
}
