package token

import (
	"path/filepath"
	"testing"
)

func TestFileStoreRoundTrip(t *testing.T) {
	store := NewFileStore(filepath.Join(t.TempDir(), "nested", "token"))

	if tok, err := store.Load(); err != nil || tok != "" {
		t.Fatalf("fresh load: tok=%q err=%v", tok, err)
	}

	if err := store.Save("tok-1"); err != nil {
		t.Fatal(err)
	}
	if tok, err := store.Load(); err != nil || tok != "tok-1" {
		t.Fatalf("tok=%q err=%v", tok, err)
	}

	if err := store.Clear(); err != nil {
		t.Fatal(err)
	}
	if tok, _ := store.Load(); tok != "" {
		t.Fatalf("token survived clear: %q", tok)
	}

	// Clearing an already-cleared store stays silent.
	if err := store.Clear(); err != nil {
		t.Fatal(err)
	}
}
