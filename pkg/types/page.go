// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines the shared configuration and record types used by
// the exhibitkit commands.
package types

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidArgument reports an invalid flag value or flag combination.
// Argument errors are fatal and surface before any file is touched.
var ErrInvalidArgument = errors.New("invalid argument")

// Orientation is a page orientation.
type Orientation string

const (
	Portrait  Orientation = "portrait"
	Landscape Orientation = "landscape"
)

// ParseOrientation converts a flag or config value to an Orientation.
// Matching is case-insensitive.
func ParseOrientation(s string) (Orientation, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case string(Portrait):
		return Portrait, nil
	case string(Landscape):
		return Landscape, nil
	default:
		return "", fmt.Errorf("%w: orientation %q (want %q or %q)",
			ErrInvalidArgument, s, Landscape, Portrait)
	}
}

// PageSize is a page width and height in points.
type PageSize struct {
	Width  float64 `json:"width" yaml:"width"`
	Height float64 `json:"height" yaml:"height"`
}

// Letter is the default US letter page size in portrait.
var Letter = PageSize{Width: 612, Height: 792}

// IsZero reports whether the size is unset.
func (p PageSize) IsZero() bool {
	return p.Width == 0 && p.Height == 0
}

// Orientation infers the orientation from the dimensions: wider than tall
// is landscape, everything else (including square) is portrait.
func (p PageSize) Orientation() Orientation {
	if p.Width > p.Height {
		return Landscape
	}
	return Portrait
}

// WithOrientation returns the size rotated to the requested orientation,
// swapping width and height when they disagree.
func (p PageSize) WithOrientation(o Orientation) PageSize {
	if p.Orientation() == o {
		return p
	}
	return PageSize{Width: p.Height, Height: p.Width}
}
