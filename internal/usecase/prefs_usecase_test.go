package usecase_test

import (
	"testing"

	"carezone-storefront/internal/usecase"
	"carezone-storefront/pkg/kv"
)

func TestPrefsDefaults(t *testing.T) {
	prefs := usecase.NewPrefsUsecase(kv.NewMemoryStore())
	if got := prefs.Theme(); got != usecase.ThemeLight {
		t.Fatalf("want light default, got %q", got)
	}
	if got := prefs.Language(); got != usecase.LanguageEnglish {
		t.Fatalf("want english default, got %q", got)
	}
}

func TestPrefsToggleThemePersists(t *testing.T) {
	store := kv.NewMemoryStore()
	prefs := usecase.NewPrefsUsecase(store)

	if got := prefs.ToggleTheme(); got != usecase.ThemeDark {
		t.Fatalf("want dark after first toggle, got %q", got)
	}
	if got := prefs.ToggleTheme(); got != usecase.ThemeLight {
		t.Fatalf("want light after second toggle, got %q", got)
	}

	prefs.SetTheme(usecase.ThemeDark)
	reopened := usecase.NewPrefsUsecase(store)
	if got := reopened.Theme(); got != usecase.ThemeDark {
		t.Fatalf("want persisted dark theme, got %q", got)
	}
}

func TestPrefsUnknownValuesFallBack(t *testing.T) {
	prefs := usecase.NewPrefsUsecase(kv.NewMemoryStore())

	prefs.SetTheme("sepia")
	if got := prefs.Theme(); got != usecase.ThemeLight {
		t.Fatalf("want light for unknown theme, got %q", got)
	}

	prefs.SetLanguage("fr")
	if got := prefs.Language(); got != usecase.LanguageEnglish {
		t.Fatalf("want english for unknown language, got %q", got)
	}
}

func TestPrefsSubscribers(t *testing.T) {
	prefs := usecase.NewPrefsUsecase(kv.NewMemoryStore())

	var themes, languages []string
	prefs.Subscribe(func(theme, language string) {
		themes = append(themes, theme)
		languages = append(languages, language)
	})

	prefs.SetTheme(usecase.ThemeDark)
	prefs.SetLanguage(usecase.LanguageArabic)

	if len(themes) != 2 || themes[1] != usecase.ThemeDark {
		t.Fatalf("want two notifications ending dark, got %v", themes)
	}
	if languages[1] != usecase.LanguageArabic {
		t.Fatalf("want arabic in final notification, got %v", languages)
	}
}
