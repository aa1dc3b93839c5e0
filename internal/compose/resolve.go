// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package compose

import (
	"github.com/psiino/exhibitkit/internal/label"
	"github.com/psiino/exhibitkit/pkg/types"
)

// resolveJob builds the Job for one input document. It inspects the file
// first, so an unreadable input fails before a label is consumed from the
// sequence, then resolves the label and orientation fallback chains.
func (c *Composer) resolveJob(opts Options, input, prior string) (Job, error) {
	sizes, err := c.inspect.PageSizes(input)
	if err != nil {
		return Job{}, err
	}

	lbl, err := resolveLabel(opts, input, prior)
	if err != nil {
		return Job{}, err
	}

	return Job{
		Source:      input,
		Label:       lbl,
		Orientation: resolveOrientation(opts, sizes[0]),
		Page:        sizes[0],
		Output:      outputPath(opts.OutputDir, input),
		sourcePages: len(sizes),
	}, nil
}

// resolveLabel applies the label fallback chain. An explicit flag is a
// starting label: the first job takes it verbatim and later jobs advance
// the sequence. Without the flag, each job prefers a label parsed from
// its own filename, then one step past the prior job's label, then "A".
func resolveLabel(opts Options, input, prior string) (string, error) {
	if opts.Label != "" {
		if prior == "" {
			return opts.Label, nil
		}
		return label.Next(prior)
	}
	if lbl := label.FromFilename(input); lbl != "" {
		return lbl, nil
	}
	if prior != "" {
		return label.Next(prior)
	}
	return "A", nil
}

// resolveOrientation prefers the explicit flag, then the first page's own
// geometry. Flag values were validated before the run started.
func resolveOrientation(opts Options, first types.PageSize) types.Orientation {
	if opts.Orientation != "" {
		o, _ := types.ParseOrientation(opts.Orientation)
		return o
	}
	return first.Orientation()
}
