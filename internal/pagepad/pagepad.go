// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package pagepad concatenates PDF documents for duplex printing. After
// every document with an odd page count it inserts one blank page, so
// each following document starts on a fresh physical leaf when the
// combined file is printed double-sided.
package pagepad

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/psiino/exhibitkit/internal/slipsheet"
	"github.com/psiino/exhibitkit/pkg/types"
)

// Inspector reports page geometry for an existing document.
type Inspector interface {
	PageSizes(path string) ([]types.PageSize, error)
}

// Merger concatenates documents into a new file.
type Merger interface {
	Merge(inFiles []string, outPath string, bookmarks bool) error
}

// Recorder persists a manifest entry for the combined artifact. A nil
// Recorder disables recording.
type Recorder interface {
	Record(ctx context.Context, rec types.ExhibitRecord) error
}

// blankFunc writes a single empty page of the given size to path.
type blankFunc func(path string, size types.PageSize) error

// Padder combines documents with duplex padding.
type Padder struct {
	inspect  Inspector
	merge    Merger
	recorder Recorder
	blank    blankFunc
}

// New builds a Padder. recorder may be nil.
func New(insp Inspector, m Merger, rec Recorder) *Padder {
	return &Padder{
		inspect:  insp,
		merge:    m,
		recorder: rec,
		blank:    slipsheet.BlankFile,
	}
}

// DefaultOutputName returns the default combined file name for n inputs.
func DefaultOutputName(n int) string {
	return fmt.Sprintf("combined-%d-files.pdf", n)
}

// Combine concatenates paths, in order, into a single document at out.
// Every document with an odd page count, the last included, is followed
// by a blank page matching that document's final page dimensions. Each
// input contributes a bookmark at its first page.
//
// Any unreadable input aborts the run before output is written; the
// combined document either appears complete or not at all. It returns the
// total page count of the output.
func (p *Padder) Combine(ctx context.Context, paths []string, out string, w io.Writer) (int, error) {
	if len(paths) == 0 {
		return 0, fmt.Errorf("%w: no input files to combine", types.ErrInvalidArgument)
	}

	tmpDir, err := os.MkdirTemp("", "exhibitkit-combine-*")
	if err != nil {
		return 0, fmt.Errorf("creating temp directory: %w", err)
	}
	defer os.RemoveAll(tmpDir)

	// Inspect everything up front; padding decisions and failures both
	// happen before the merge starts.
	var mergeList []string
	total := 0
	for i, path := range paths {
		if err := ctx.Err(); err != nil {
			return 0, err
		}

		sizes, err := p.inspect.PageSizes(path)
		if err != nil {
			return 0, err
		}
		fmt.Fprintf(w, "adding: %s (%d pages)\n", path, len(sizes))
		mergeList = append(mergeList, path)
		total += len(sizes)

		if len(sizes)%2 != 0 {
			blank := filepath.Join(tmpDir, fmt.Sprintf("pad-%03d.pdf", i+1))
			if err := p.blank(blank, sizes[len(sizes)-1]); err != nil {
				return 0, fmt.Errorf("writing padding page after %s: %w", path, err)
			}
			mergeList = append(mergeList, blank)
			total++
		}
	}

	if err := p.writeMerged(mergeList, out); err != nil {
		return 0, err
	}
	fmt.Fprintf(w, "wrote %s (%d pages, %d documents)\n", out, total, len(paths))

	p.record(ctx, w, paths, out, total)
	return total, nil
}

// writeMerged merges into a temp file next to out and renames it into
// place, so a failed merge leaves no partial output.
func (p *Padder) writeMerged(mergeList []string, out string) error {
	outDir := filepath.Dir(out)
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("creating directory %s: %w", outDir, err)
	}
	tmpOut, err := os.CreateTemp(outDir, ".combine-*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpPath := tmpOut.Name()
	tmpOut.Close()

	if err := p.merge.Merge(mergeList, tmpPath, true); err != nil {
		os.Remove(tmpPath)
		return err
	}
	if err := os.Rename(tmpPath, out); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("renaming output: %w", err)
	}
	return nil
}

func (p *Padder) record(ctx context.Context, w io.Writer, paths []string, out string, pages int) {
	if p.recorder == nil {
		return
	}
	rec := types.ExhibitRecord{
		Kind:       types.KindCombine,
		SourcePath: strings.Join(paths, ", "),
		OutputPath: out,
		Pages:      pages,
	}
	if err := p.recorder.Record(ctx, rec); err != nil {
		fmt.Fprintf(w, "  warning: manifest record failed: %v\n", err)
	}
}
