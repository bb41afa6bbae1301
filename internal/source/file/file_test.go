package file

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/cobalt-pine/chartline/internal/source"
)

func writeDoc(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "patient.json")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestFetchObject(t *testing.T) {
	src := New(source.Config{Path: writeDoc(t, `{"name":"Asha","CPMRN":"X1"}`)})
	doc, err := src.Fetch(context.Background(), "X1", 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if doc == nil {
		t.Fatal("expected a document")
	}
	if got := string(doc.GetStringBytes("name")); got != "Asha" {
		t.Fatalf("expected name 'Asha', got %q", got)
	}
}

func TestFetchArrayTakesFirst(t *testing.T) {
	src := New(source.Config{Path: writeDoc(t, `[{"name":"Asha"},{"name":"Noor"}]`)})
	doc, err := src.Fetch(context.Background(), "X1", 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := string(doc.GetStringBytes("name")); got != "Asha" {
		t.Fatalf("expected first element, got name %q", got)
	}
}

func TestFetchEmptyArrayIsNotFound(t *testing.T) {
	src := New(source.Config{Path: writeDoc(t, `[]`)})
	doc, err := src.Fetch(context.Background(), "X1", 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if doc != nil {
		t.Fatal("expected nil document for empty array")
	}
}

func TestFetchMissingFileIsNotFound(t *testing.T) {
	src := New(source.Config{Path: filepath.Join(t.TempDir(), "absent.json")})
	doc, err := src.Fetch(context.Background(), "X1", 1)
	if err != nil {
		t.Fatalf("expected missing file to read as not-found, got error: %v", err)
	}
	if doc != nil {
		t.Fatal("expected nil document for missing file")
	}
}

func TestFetchMalformedJSON(t *testing.T) {
	src := New(source.Config{Path: writeDoc(t, `{"name":`)})
	if _, err := src.Fetch(context.Background(), "X1", 1); err == nil {
		t.Fatal("expected parse error for malformed JSON")
	}
}

func TestRegistered(t *testing.T) {
	if _, err := source.Get("file"); err != nil {
		t.Fatalf("expected file provider to be registered: %v", err)
	}
}
