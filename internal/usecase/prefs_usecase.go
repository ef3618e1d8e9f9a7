package usecase

import (
	"sync"

	"carezone-storefront/internal/domain"
	"carezone-storefront/pkg/kv"
)

// Theme and language values the storefront recognizes.
const (
	ThemeLight = "light"
	ThemeDark  = "dark"

	LanguageEnglish = "en"
	LanguageArabic  = "ar"
)

// PrefsUsecase persists display preferences and notifies on changes.
type PrefsUsecase struct {
	mu          sync.RWMutex
	store       kv.Store
	subscribers []func(theme, language string)
}

func NewPrefsUsecase(store kv.Store) *PrefsUsecase {
	return &PrefsUsecase{store: store}
}

// Subscribe registers a callback invoked with the full preference pair
// after either value changes.
func (u *PrefsUsecase) Subscribe(fn func(theme, language string)) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.subscribers = append(u.subscribers, fn)
}

func (u *PrefsUsecase) publishLocked() {
	theme := u.themeLocked()
	language := u.languageLocked()
	for _, fn := range u.subscribers {
		fn(theme, language)
	}
}

// Theme returns the stored theme, defaulting to light.
func (u *PrefsUsecase) Theme() string {
	u.mu.RLock()
	defer u.mu.RUnlock()
	return u.themeLocked()
}

func (u *PrefsUsecase) themeLocked() string {
	if raw, ok := u.store.Get(domain.StorageKeyTheme); ok && len(raw) > 0 {
		return string(raw)
	}
	return ThemeLight
}

// SetTheme persists a theme choice. Unknown values fall back to light.
func (u *PrefsUsecase) SetTheme(theme string) {
	if theme != ThemeDark {
		theme = ThemeLight
	}
	u.mu.Lock()
	defer u.mu.Unlock()
	u.store.Set(domain.StorageKeyTheme, []byte(theme))
	u.publishLocked()
}

// ToggleTheme flips between dark and light and returns the new value.
func (u *PrefsUsecase) ToggleTheme() string {
	u.mu.Lock()
	defer u.mu.Unlock()
	theme := ThemeLight
	if u.themeLocked() == ThemeLight {
		theme = ThemeDark
	}
	u.store.Set(domain.StorageKeyTheme, []byte(theme))
	u.publishLocked()
	return theme
}

// Language returns the stored language, defaulting to English.
func (u *PrefsUsecase) Language() string {
	u.mu.RLock()
	defer u.mu.RUnlock()
	return u.languageLocked()
}

func (u *PrefsUsecase) languageLocked() string {
	if raw, ok := u.store.Get(domain.StorageKeyLanguage); ok && len(raw) > 0 {
		return string(raw)
	}
	return LanguageEnglish
}

// SetLanguage persists a language choice. Unknown values fall back to
// English.
func (u *PrefsUsecase) SetLanguage(language string) {
	if language != LanguageArabic {
		language = LanguageEnglish
	}
	u.mu.Lock()
	defer u.mu.Unlock()
	u.store.Set(domain.StorageKeyLanguage, []byte(language))
	u.publishLocked()
}
