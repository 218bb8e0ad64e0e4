package scan

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func writeFiles(t *testing.T, root string, names ...string) {
	t.Helper()
	for _, name := range names {
		path := filepath.Join(root, name)
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatalf("mkdir: %v", err)
		}
		if err := os.WriteFile(path, []byte("x"), 0o644); err != nil {
			t.Fatalf("write: %v", err)
		}
	}
}

func TestExpand_DirectoryRecursion(t *testing.T) {
	root := t.TempDir()
	writeFiles(t, root, "b.jpg", "a.txt", "sub/nested/c.mp4")

	got, err := Expand([]string{root})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []string{
		filepath.Join(root, "a.txt"),
		filepath.Join(root, "b.jpg"),
		filepath.Join(root, "sub", "nested", "c.mp4"),
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("unexpected result\n got: %#v\nwant: %#v", got, want)
	}
}

func TestExpand_DeduplicatesAndSorts(t *testing.T) {
	root := t.TempDir()
	writeFiles(t, root, "a.txt", "b.txt")

	a := filepath.Join(root, "a.txt")
	b := filepath.Join(root, "b.txt")

	got, err := Expand([]string{b, a, b, root})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []string{a, b}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("unexpected result\n got: %#v\nwant: %#v", got, want)
	}
}

func TestExpand_GlobPattern(t *testing.T) {
	root := t.TempDir()
	writeFiles(t, root, "a.jpg", "b.jpg", "c.txt")

	got, err := Expand([]string{filepath.Join(root, "*.jpg")})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []string{
		filepath.Join(root, "a.jpg"),
		filepath.Join(root, "b.jpg"),
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("unexpected result\n got: %#v\nwant: %#v", got, want)
	}
}

func TestExpand_NoMatches(t *testing.T) {
	got, err := Expand([]string{filepath.Join(t.TempDir(), "*.jpg")})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected no files, got %#v", got)
	}
}
