// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pdfops

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/psiino/exhibitkit/internal/slipsheet"
	"github.com/psiino/exhibitkit/pkg/types"
)

func writeBlank(t *testing.T, dir, name string, size types.PageSize) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := slipsheet.BlankFile(path, size); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestPageSizes(t *testing.T) {
	dir := t.TempDir()
	path := writeBlank(t, dir, "landscape.pdf", types.PageSize{Width: 792, Height: 612})

	sizes, err := New().PageSizes(path)
	if err != nil {
		t.Fatalf("PageSizes: %v", err)
	}
	if len(sizes) != 1 {
		t.Fatalf("len(sizes) = %d, want 1", len(sizes))
	}
	if sizes[0].Orientation() != types.Landscape {
		t.Errorf("orientation = %v, want landscape", sizes[0].Orientation())
	}
}

func TestPageSizesUnreadable(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "not-a-pdf.pdf")
	if err := os.WriteFile(path, []byte("plain text, not a PDF"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := New().PageSizes(path); !errors.Is(err, ErrUnreadableDocument) {
		t.Errorf("error = %v, want ErrUnreadableDocument", err)
	}
}

func TestPageSizesMissingFile(t *testing.T) {
	if _, err := New().PageSizes(filepath.Join(t.TempDir(), "missing.pdf")); !errors.Is(err, ErrUnreadableDocument) {
		t.Errorf("error = %v, want ErrUnreadableDocument", err)
	}
}

func TestMergeAndPageCount(t *testing.T) {
	dir := t.TempDir()
	a := writeBlank(t, dir, "a.pdf", types.Letter)
	b := writeBlank(t, dir, "b.pdf", types.Letter)
	out := filepath.Join(dir, "merged.pdf")

	ops := New()
	if err := ops.Merge([]string{a, b}, out, true); err != nil {
		t.Fatalf("Merge: %v", err)
	}
	n, err := ops.PageCount(out)
	if err != nil {
		t.Fatalf("PageCount: %v", err)
	}
	if n != 2 {
		t.Errorf("page count = %d, want 2", n)
	}
}
