// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package compose turns input documents into labeled exhibits: it resolves
// a label and orientation per job, renders a slipsheet, and prepends it to
// the source document. With the NONE sentinel instead of input files it
// emits standalone slipsheets.
package compose

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/psiino/exhibitkit/internal/label"
	"github.com/psiino/exhibitkit/pkg/types"
)

// NoFileSentinel is the literal positional argument meaning "no input
// file": generate standalone slipsheets instead.
const NoFileSentinel = "NONE"

// outputSuffix is appended to the input stem for merged exhibit output.
const outputSuffix = "_exhibit"

// Inspector reports page geometry for an existing document. pdfops
// provides the real implementation; tests supply synthetic sizes.
type Inspector interface {
	PageSizes(path string) ([]types.PageSize, error)
}

// Merger concatenates documents into a new file.
type Merger interface {
	Merge(inFiles []string, outPath string, bookmarks bool) error
}

// PageRenderer renders a single slipsheet page to a file.
type PageRenderer interface {
	RenderFile(path, label string, o types.Orientation, size types.PageSize) error
	BasePage() types.PageSize
}

// Recorder persists a manifest entry for a written artifact. A nil
// Recorder disables recording.
type Recorder interface {
	Record(ctx context.Context, rec types.ExhibitRecord) error
}

// Options are the gen command inputs after flag parsing.
type Options struct {
	// Inputs is one or more document paths, or the single NoFileSentinel.
	Inputs []string

	// Count is the number of standalone slipsheets; only valid with the
	// sentinel. Zero means one.
	Count int

	// Label is the explicit starting label; empty derives per job.
	Label string

	// Orientation is the explicit orientation flag value; empty infers
	// from the document (or defaults to portrait).
	Orientation string

	// OutputDir overrides where output files are written. Empty writes
	// next to the input, or into the working directory for standalone
	// slipsheets.
	OutputDir string
}

func (o Options) standalone() bool {
	return len(o.Inputs) == 1 && o.Inputs[0] == NoFileSentinel
}

// Validate rejects bad flag values and combinations before any file is
// touched.
func (o Options) Validate() error {
	if len(o.Inputs) == 0 {
		return fmt.Errorf("%w: no input files (pass one or more paths, or %s)",
			types.ErrInvalidArgument, NoFileSentinel)
	}
	if !o.standalone() {
		for _, in := range o.Inputs {
			if in == NoFileSentinel {
				return fmt.Errorf("%w: %s cannot be combined with input files",
					types.ErrInvalidArgument, NoFileSentinel)
			}
		}
		if o.Count > 0 {
			return fmt.Errorf("%w: --count is only valid with %s",
				types.ErrInvalidArgument, NoFileSentinel)
		}
	}
	if o.Count < 0 {
		return fmt.Errorf("%w: --count must be positive", types.ErrInvalidArgument)
	}
	if o.Orientation != "" {
		if _, err := types.ParseOrientation(o.Orientation); err != nil {
			return err
		}
	}
	if o.Label != "" && !label.Valid(o.Label) {
		return fmt.Errorf("%w: %q (want letters or digits)", label.ErrInvalidLabel, o.Label)
	}
	return nil
}

// Job is one resolved unit of work.
type Job struct {
	// Source is the input document path, empty for a standalone slipsheet.
	Source      string
	Label       string
	Orientation types.Orientation
	Page        types.PageSize
	Output      string

	// sourcePages is the source document's page count, zero for
	// standalone slipsheets.
	sourcePages int
}

// BatchResult holds the outcome of a composer run.
type BatchResult struct {
	Generated int
	Failed    int
	Outputs   []string
}

// Total returns the number of jobs processed.
func (r BatchResult) Total() int {
	return r.Generated + r.Failed
}

// HasFailures reports whether any job failed.
func (r BatchResult) HasFailures() bool {
	return r.Failed > 0
}

// Composer runs exhibit jobs sequentially.
type Composer struct {
	renderer PageRenderer
	inspect  Inspector
	merge    Merger
	recorder Recorder
}

// New builds a Composer. recorder may be nil.
func New(r PageRenderer, insp Inspector, m Merger, rec Recorder) *Composer {
	return &Composer{renderer: r, inspect: insp, merge: m, recorder: rec}
}

// Run validates opts and processes every job. Option errors are fatal and
// return before any output exists; per-job failures are reported to w and
// do not abort sibling jobs.
func (c *Composer) Run(ctx context.Context, opts Options, w io.Writer) (BatchResult, error) {
	if err := opts.Validate(); err != nil {
		return BatchResult{}, err
	}
	if opts.standalone() {
		return c.runStandalone(ctx, opts, w)
	}
	return c.runFiles(ctx, opts, w)
}

// runStandalone emits Count slipsheet-only files, advancing the label one
// step per file.
func (c *Composer) runStandalone(ctx context.Context, opts Options, w io.Writer) (BatchResult, error) {
	var result BatchResult

	lbl := opts.Label
	if lbl == "" {
		lbl = "A"
	}
	count := opts.Count
	if count == 0 {
		count = 1
	}
	orientation := types.Portrait
	if opts.Orientation != "" {
		orientation, _ = types.ParseOrientation(opts.Orientation)
	}

	for i := 0; i < count; i++ {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		job := Job{
			Label:       lbl,
			Orientation: orientation,
			Page:        c.renderer.BasePage(),
			Output:      filepath.Join(opts.OutputDir, fmt.Sprintf("Exhibit_%s.pdf", lbl)),
		}
		if err := c.renderer.RenderFile(job.Output, job.Label, job.Orientation, job.Page); err != nil {
			fmt.Fprintf(w, "failed:  %s (%v)\n", job.Output, err)
			result.Failed++
		} else {
			fmt.Fprintf(w, "slipsheet %s: %s\n", job.Label, job.Output)
			result.Generated++
			result.Outputs = append(result.Outputs, job.Output)
			c.record(ctx, w, job, 1)
		}

		next, err := label.Next(lbl)
		if err != nil {
			return result, err
		}
		lbl = next
	}

	c.summarize(w, result)
	return result, nil
}

// runFiles prepends a slipsheet to each input document. Each file is
// processed independently; a failure is reported and the batch continues.
func (c *Composer) runFiles(ctx context.Context, opts Options, w io.Writer) (BatchResult, error) {
	var result BatchResult

	tmpDir, err := os.MkdirTemp("", "exhibitkit-*")
	if err != nil {
		return result, fmt.Errorf("creating temp directory: %w", err)
	}
	defer os.RemoveAll(tmpDir)

	prior := ""
	for _, input := range opts.Inputs {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		job, err := c.resolveJob(opts, input, prior)
		if err != nil {
			fmt.Fprintf(w, "failed:  %s (%v)\n", input, err)
			result.Failed++
			continue
		}
		prior = job.Label

		pages, err := c.composeOne(job, tmpDir)
		if err != nil {
			fmt.Fprintf(w, "failed:  %s (%v)\n", input, err)
			result.Failed++
			continue
		}

		fmt.Fprintf(w, "exhibit %s: %s -> %s\n", job.Label, input, job.Output)
		result.Generated++
		result.Outputs = append(result.Outputs, job.Output)
		c.record(ctx, w, job, pages)
	}

	c.summarize(w, result)
	return result, nil
}

// composeOne renders the slipsheet for job and merges it in front of the
// source document. The merge lands in a temp file in the destination
// directory and is renamed into place on success, so a failed job leaves
// no partial output. It returns the output page count.
func (c *Composer) composeOne(job Job, tmpDir string) (int, error) {
	slip := filepath.Join(tmpDir, fmt.Sprintf("slip_%s.pdf", job.Label))
	if err := c.renderer.RenderFile(slip, job.Label, job.Orientation, job.Page); err != nil {
		return 0, err
	}

	outDir := filepath.Dir(job.Output)
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return 0, fmt.Errorf("creating directory %s: %w", outDir, err)
	}
	tmpOut, err := os.CreateTemp(outDir, ".exhibit-*.tmp")
	if err != nil {
		return 0, fmt.Errorf("creating temp file: %w", err)
	}
	tmpPath := tmpOut.Name()
	tmpOut.Close()

	if err := c.merge.Merge([]string{slip, job.Source}, tmpPath, false); err != nil {
		os.Remove(tmpPath)
		return 0, err
	}
	if err := os.Rename(tmpPath, job.Output); err != nil {
		os.Remove(tmpPath)
		return 0, fmt.Errorf("renaming output: %w", err)
	}
	return job.sourcePages + 1, nil
}

func (c *Composer) record(ctx context.Context, w io.Writer, job Job, pages int) {
	if c.recorder == nil {
		return
	}
	rec := types.ExhibitRecord{
		Kind:        types.KindExhibit,
		Label:       job.Label,
		Orientation: job.Orientation,
		SourcePath:  job.Source,
		OutputPath:  job.Output,
		Pages:       pages,
	}
	if err := c.recorder.Record(ctx, rec); err != nil {
		fmt.Fprintf(w, "  warning: manifest record failed: %v\n", err)
	}
}

func (c *Composer) summarize(w io.Writer, r BatchResult) {
	fmt.Fprintf(w, "\nBatch summary: %d generated, %d failed (total: %d)\n",
		r.Generated, r.Failed, r.Total())
}

// outputPath derives the merged exhibit path for an input: the input stem
// suffixed "_exhibit", in outputDir when set, else next to the input.
func outputPath(outputDir, input string) string {
	base := filepath.Base(input)
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	name := stem + outputSuffix + ".pdf"
	if outputDir != "" {
		return filepath.Join(outputDir, name)
	}
	return filepath.Join(filepath.Dir(input), name)
}
