// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package pdfops wraps the pdfcpu operations exhibitkit needs: page
// geometry inspection and document merging. Higher layers depend on it
// through small interfaces so tests can substitute synthetic geometry.
package pdfops

import (
	"errors"
	"fmt"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"

	"github.com/psiino/exhibitkit/pkg/types"
)

// ErrUnreadableDocument reports an input that cannot be opened or parsed
// as a PDF.
var ErrUnreadableDocument = errors.New("unreadable document")

// Ops performs PDF file operations through pdfcpu.
type Ops struct {
	conf *model.Configuration
}

// New returns an Ops with relaxed validation, so lightly malformed but
// recoverable documents still process.
func New() *Ops {
	conf := model.NewDefaultConfiguration()
	conf.ValidationMode = model.ValidationRelaxed
	return &Ops{conf: conf}
}

// PageSizes returns the dimensions of every page in the document at path,
// in order. The slice length is the page count.
func (o *Ops) PageSizes(path string) ([]types.PageSize, error) {
	dims, err := api.PageDimsFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrUnreadableDocument, path, err)
	}
	if len(dims) == 0 {
		return nil, fmt.Errorf("%w: %s: no pages", ErrUnreadableDocument, path)
	}
	sizes := make([]types.PageSize, len(dims))
	for i, d := range dims {
		sizes[i] = types.PageSize{Width: d.Width, Height: d.Height}
	}
	return sizes, nil
}

// PageCount returns the number of pages in the document at path.
func (o *Ops) PageCount(path string) (int, error) {
	n, err := api.PageCountFile(path)
	if err != nil {
		return 0, fmt.Errorf("%w: %s: %v", ErrUnreadableDocument, path, err)
	}
	return n, nil
}

// Merge concatenates the pages of inFiles, in order, into a new document
// at outPath. With bookmarks set, each constituent file contributes a
// bookmark at its first page.
func (o *Ops) Merge(inFiles []string, outPath string, bookmarks bool) error {
	conf := *o.conf
	conf.CreateBookmarks = bookmarks
	if err := api.MergeCreateFile(inFiles, outPath, false, &conf); err != nil {
		return fmt.Errorf("merging into %s: %w", outPath, err)
	}
	return nil
}
