// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package slipsheet renders single-page exhibit divider PDFs: a page with
// the designation "Exhibit <label>" centered both horizontally and
// vertically. It also produces the blank pages the combine command uses
// for duplex padding.
package slipsheet

import (
	"fmt"
	"io"
	"os"

	gofpdf "github.com/lvillar/gofpdf"

	"github.com/psiino/exhibitkit/pkg/types"
)

const (
	defaultFontName = "Times"
	defaultFontSize = 72.0
	defaultMargin   = 0.8 * types.PointsPerInch

	// minFontSize is the floor the fitting loop will not shrink below;
	// past this point a long label simply overruns the margins.
	minFontSize = 24.0
)

// Designation returns the slipsheet text for a label.
func Designation(label string) string {
	return "Exhibit " + label
}

// Renderer renders slipsheet pages. The zero value is not usable; call
// NewRenderer to apply defaults.
type Renderer struct {
	fontName string
	fontSize float64
	margin   float64
	page     types.PageSize
}

// NewRenderer builds a Renderer from cfg, filling unset fields with the
// defaults (Times-Bold 72 pt on letter paper, 0.8 inch margins).
func NewRenderer(cfg types.RenderConfig) *Renderer {
	r := &Renderer{
		fontName: cfg.FontName,
		fontSize: cfg.FontSize,
		margin:   cfg.Margin,
		page:     cfg.Page,
	}
	if r.fontName == "" {
		r.fontName = defaultFontName
	}
	if r.fontSize <= 0 {
		r.fontSize = defaultFontSize
	}
	if r.margin <= 0 {
		r.margin = defaultMargin
	}
	if r.page.IsZero() {
		r.page = types.Letter
	}
	return r
}

// BasePage returns the renderer's base page size before orientation is
// applied.
func (r *Renderer) BasePage() types.PageSize {
	return r.page
}

// Render writes a one-page PDF to w: the designation for label, centered
// at the page midpoint, on a page of the given size rotated to the given
// orientation. The document title is set to the designation.
func (r *Renderer) Render(w io.Writer, lbl string, o types.Orientation, size types.PageSize) error {
	if size.IsZero() {
		size = r.page
	}
	page := size.WithOrientation(o)
	text := Designation(lbl)

	pdf := gofpdf.NewCustom(&gofpdf.InitType{
		UnitStr: "pt",
		Size:    gofpdf.SizeType{Wd: page.Width, Ht: page.Height},
	})
	pdf.SetTitle(text, false)
	pdf.SetAutoPageBreak(false, 0)
	pdf.SetMargins(0, 0, 0)
	pdf.AddPage()

	fontSize := r.fitFontSize(pdf, text, page.Width)
	pdf.SetXY(0, page.Height/2-fontSize/2)
	pdf.CellFormat(page.Width, fontSize, text, "", 0, "CM", false, 0, "")

	if pdf.Err() {
		return fmt.Errorf("rendering slipsheet %q: %w", lbl, pdf.Error())
	}
	return pdf.Output(w)
}

// RenderFile renders to path, removing the partial file on failure.
func (r *Renderer) RenderFile(path, lbl string, o types.Orientation, size types.PageSize) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	if err := r.Render(f, lbl, o, size); err != nil {
		f.Close()
		os.Remove(path)
		return err
	}
	if err := f.Close(); err != nil {
		os.Remove(path)
		return fmt.Errorf("closing %s: %w", path, err)
	}
	return nil
}

// fitFontSize selects the largest size at or below the configured one at
// which text stays inside the horizontal margins. It leaves the font set
// on pdf at the returned size.
func (r *Renderer) fitFontSize(pdf *gofpdf.Fpdf, text string, pageWidth float64) float64 {
	avail := pageWidth - 2*r.margin
	size := r.fontSize
	pdf.SetFont(r.fontName, "B", size)
	for size > minFontSize && pdf.GetStringWidth(text) > avail {
		size -= 2
		pdf.SetFontSize(size)
	}
	return size
}

// BlankFile writes a single empty page of the given dimensions to path.
func BlankFile(path string, size types.PageSize) error {
	if size.IsZero() {
		size = types.Letter
	}
	pdf := gofpdf.NewCustom(&gofpdf.InitType{
		UnitStr: "pt",
		Size:    gofpdf.SizeType{Wd: size.Width, Ht: size.Height},
	})
	pdf.AddPage()
	if pdf.Err() {
		return fmt.Errorf("rendering blank page: %w", pdf.Error())
	}
	return pdf.OutputFileAndClose(path)
}
