// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package slipsheet

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/psiino/exhibitkit/pkg/types"
)

func TestDesignation(t *testing.T) {
	if got := Designation("C"); got != "Exhibit C" {
		t.Errorf("Designation(C) = %q, want %q", got, "Exhibit C")
	}
}

func TestNewRendererDefaults(t *testing.T) {
	r := NewRenderer(types.RenderConfig{})
	if r.fontName != "Times" {
		t.Errorf("fontName = %q, want Times", r.fontName)
	}
	if r.fontSize != 72 {
		t.Errorf("fontSize = %v, want 72", r.fontSize)
	}
	if r.page != types.Letter {
		t.Errorf("page = %+v, want letter", r.page)
	}
}

func TestRenderProducesPDF(t *testing.T) {
	r := NewRenderer(types.RenderConfig{})

	var buf bytes.Buffer
	if err := r.Render(&buf, "C", types.Portrait, types.Letter); err != nil {
		t.Fatalf("Render: %v", err)
	}
	out := buf.String()
	if !strings.HasPrefix(out, "%PDF") {
		t.Errorf("output does not start with %%PDF header")
	}
	// The designation is stored uncompressed in the document title.
	if !strings.Contains(out, "Exhibit C") {
		t.Errorf("output does not carry the designation in its metadata")
	}
}

func TestRenderLandscapeSwapsPage(t *testing.T) {
	r := NewRenderer(types.RenderConfig{})

	var portrait, landscape bytes.Buffer
	if err := r.Render(&portrait, "A", types.Portrait, types.Letter); err != nil {
		t.Fatalf("portrait render: %v", err)
	}
	if err := r.Render(&landscape, "A", types.Landscape, types.Letter); err != nil {
		t.Fatalf("landscape render: %v", err)
	}

	// 612x792 portrait vs 792x612 landscape MediaBox.
	if !strings.Contains(portrait.String(), "612") || !strings.Contains(landscape.String(), "792") {
		t.Errorf("expected letter dimensions in both outputs")
	}
	if portrait.String() == landscape.String() {
		t.Errorf("portrait and landscape renders are identical")
	}
}

func TestRenderLongLabelShrinksToFit(t *testing.T) {
	r := NewRenderer(types.RenderConfig{})

	var buf bytes.Buffer
	if err := r.Render(&buf, strings.Repeat("W", 20), types.Portrait, types.Letter); err != nil {
		t.Fatalf("Render: %v", err)
	}
	if buf.Len() == 0 {
		t.Fatal("empty output")
	}
}

func TestRenderFileRemovesPartialOutput(t *testing.T) {
	r := NewRenderer(types.RenderConfig{})
	path := filepath.Join(t.TempDir(), "out", "missing-dir.pdf")
	if err := r.RenderFile(path, "A", types.Portrait, types.Letter); err == nil {
		t.Fatal("expected error for unwritable path")
	}
}

func TestBlankFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "blank.pdf")
	if err := BlankFile(path, types.PageSize{Width: 792, Height: 612}); err != nil {
		t.Fatalf("BlankFile: %v", err)
	}
}
