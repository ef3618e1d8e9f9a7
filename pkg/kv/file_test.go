package kv_test

import (
	"os"
	"path/filepath"
	"testing"

	"carezone-storefront/pkg/kv"
)

func TestFileStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")

	s := kv.NewFileStore(path)
	s.Set("cart", []byte(`[{"id":1,"quantity":2}]`))
	s.Set("token", []byte("eyJhbGciOiJIUzI1NiJ9.e30.sig"))

	// A second store over the same file sees the persisted values.
	reopened := kv.NewFileStore(path)
	got, ok := reopened.Get("cart")
	if !ok || string(got) != `[{"id":1,"quantity":2}]` {
		t.Fatalf("want persisted cart, got %q (ok=%v)", got, ok)
	}
	got, ok = reopened.Get("token")
	if !ok || string(got) != "eyJhbGciOiJIUzI1NiJ9.e30.sig" {
		t.Fatalf("want persisted token, got %q (ok=%v)", got, ok)
	}
}

func TestFileStoreMissingFileStartsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nope", "state.json")

	s := kv.NewFileStore(path)
	if _, ok := s.Get("anything"); ok {
		t.Fatal("want empty store for missing file")
	}

	// First write creates the parent directory.
	s.Set("k", []byte("v"))
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("want state file after Set: %v", err)
	}
}

func TestFileStoreCorruptFileStartsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}

	s := kv.NewFileStore(path)
	if _, ok := s.Get("cart"); ok {
		t.Fatal("want empty store for corrupt file")
	}
}

func TestFileStoreRemovePersists(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")

	s := kv.NewFileStore(path)
	s.Set("token", []byte("abc"))
	s.Remove("token")

	reopened := kv.NewFileStore(path)
	if _, ok := reopened.Get("token"); ok {
		t.Fatal("want removed key to stay gone after reopen")
	}
}
