package rename

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/jjclark1982/date-scraper-go/pkg/plan"
)

func TestExecute_RenamesFiles(t *testing.T) {
	root := t.TempDir()
	src := filepath.Join(root, "photo.jpg")
	dst := filepath.Join(root, "photo (2025-02-03).jpg")
	if err := os.WriteFile(src, []byte("x"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	results := Execute([]plan.Operation{{SourcePath: src, DestinationPath: dst}})

	if len(results) != 1 || !results[0].Success {
		t.Fatalf("unexpected results: %#v", results)
	}
	if _, err := os.Stat(dst); err != nil {
		t.Fatalf("destination missing: %v", err)
	}
	if _, err := os.Stat(src); !os.IsNotExist(err) {
		t.Fatalf("source still present: %v", err)
	}
}

func TestExecute_FailureIsIsolated(t *testing.T) {
	root := t.TempDir()
	srcA := filepath.Join(root, "a.jpg")
	dstA := filepath.Join(root, "a (2025-02-03).jpg")
	srcB := filepath.Join(root, "b.jpg")
	dstB := filepath.Join(root, "b (2025-02-03).jpg")

	for _, p := range []string{srcA, dstA, srcB} {
		if err := os.WriteFile(p, []byte("x"), 0o644); err != nil {
			t.Fatalf("write: %v", err)
		}
	}

	results := Execute([]plan.Operation{
		{SourcePath: srcA, DestinationPath: dstA}, // destination taken
		{SourcePath: srcB, DestinationPath: dstB},
	})

	if len(results) != 2 {
		t.Fatalf("unexpected results: %#v", results)
	}
	if !errors.Is(results[0].Error, ErrDestinationExists) {
		t.Fatalf("expected ErrDestinationExists, got %v", results[0].Error)
	}
	if !results[1].Success {
		t.Fatalf("second rename should succeed despite first failing: %#v", results[1])
	}
	if _, err := os.Stat(srcA); err != nil {
		t.Fatalf("failed rename must leave the source in place: %v", err)
	}
}
