// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// ArtifactKind classifies a manifest entry by the command that produced it.
type ArtifactKind string

const (
	// KindExhibit marks output of the gen command: a slipsheet, standalone
	// or merged in front of a source document.
	KindExhibit ArtifactKind = "exhibit"

	// KindCombine marks output of the combine command.
	KindCombine ArtifactKind = "combine"
)

// ExhibitRecord is one manifest entry: a single PDF artifact written by
// exhibitkit, with enough provenance to reconstruct the run.
type ExhibitRecord struct {
	ID          int64        `json:"id" yaml:"id"`
	Kind        ArtifactKind `json:"kind" yaml:"kind"`
	Label       string       `json:"label,omitempty" yaml:"label,omitempty"`
	Orientation Orientation  `json:"orientation,omitempty" yaml:"orientation,omitempty"`

	// SourcePath is the input document, empty for standalone slipsheets.
	// For combine runs it holds the input paths joined with ", ".
	SourcePath string `json:"source_path,omitempty" yaml:"source_path,omitempty"`

	OutputPath string    `json:"output_path" yaml:"output_path"`
	Pages      int       `json:"pages" yaml:"pages"`
	CreatedAt  time.Time `json:"created_at" yaml:"created_at"`
}
