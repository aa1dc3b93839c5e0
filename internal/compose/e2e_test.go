// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package compose

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"

	gofpdf "github.com/lvillar/gofpdf"

	"github.com/psiino/exhibitkit/internal/pdfops"
	"github.com/psiino/exhibitkit/internal/slipsheet"
	"github.com/psiino/exhibitkit/pkg/types"
)

// writePortraitPDF writes a real n-page letter-size PDF.
func writePortraitPDF(t *testing.T, path string, n int) {
	t.Helper()
	pdf := gofpdf.NewCustom(&gofpdf.InitType{
		UnitStr: "pt",
		Size:    gofpdf.SizeType{Wd: types.Letter.Width, Ht: types.Letter.Height},
	})
	pdf.SetFont("Helvetica", "", 12)
	for i := 0; i < n; i++ {
		pdf.AddPage()
		pdf.SetXY(72, 72)
		pdf.Cell(0, 14, "source page")
	}
	if err := pdf.OutputFileAndClose(path); err != nil {
		t.Fatal(err)
	}
}

// The composer with its real collaborators: a five-page portrait document
// with no explicit label or orientation gets a portrait slipsheet labeled
// "A" prepended, for six pages total.
func TestComposerEndToEnd(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "brief.pdf")
	writePortraitPDF(t, input, 5)

	ops := pdfops.New()
	renderer := slipsheet.NewRenderer(types.RenderConfig{})
	c := New(renderer, ops, ops, nil)

	var out bytes.Buffer
	result, err := c.Run(context.Background(), Options{Inputs: []string{input}}, &out)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if result.Generated != 1 {
		t.Fatalf("result = %+v, want 1 generated", result)
	}

	output := filepath.Join(dir, "brief_exhibit.pdf")
	if result.Outputs[0] != output {
		t.Fatalf("output = %q, want %q", result.Outputs[0], output)
	}
	n, err := ops.PageCount(output)
	if err != nil {
		t.Fatalf("PageCount: %v", err)
	}
	if n != 6 {
		t.Errorf("output page count = %d, want 6 (slipsheet + 5 source pages)", n)
	}
}
