package domain

// CartLine is one product-quantity pair in the persisted cart. Lines are
// unique by product id and quantity is always positive; setting a quantity
// of zero removes the line instead of storing it.
type CartLine struct {
	ProductID int `json:"id"`
	Quantity  int `json:"quantity"`
}

// FavoriteEntry is one product id marked as favorited.
type FavoriteEntry struct {
	ProductID int `json:"id"`
}

// Persisted storage keys. Values are JSON-serialized with no versioning,
// matching the contract with other storefront clients sharing the store.
const (
	StorageKeyCart      = "cart"
	StorageKeyFavorites = "fav"
	StorageKeyToken     = "token"
	StorageKeyUserToken = "userToken" // legacy key, read as fallback
	StorageKeyTheme     = "carezone-theme"
	StorageKeyLanguage  = "language"
	StorageKeyBranch    = "branchId"
	StorageKeyPayment   = "paymentMethod"

	StorageKeyPrescription = "prescriptionImageUrl"
)
