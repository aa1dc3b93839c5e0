// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package manifest

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"go.yaml.in/yaml/v3"

	"github.com/psiino/exhibitkit/pkg/types"
)

// export is the manifest document shape written by the export command.
type export struct {
	Exhibits []types.ExhibitRecord `json:"exhibits" yaml:"exhibits"`
}

// ExportYAML writes all entries of the given kind (empty for all) to w
// as a YAML document.
func (s *Store) ExportYAML(ctx context.Context, kind types.ArtifactKind, w io.Writer) error {
	records, err := s.List(ctx, kind)
	if err != nil {
		return err
	}
	data, err := yaml.Marshal(export{Exhibits: records})
	if err != nil {
		return fmt.Errorf("marshaling manifest: %w", err)
	}
	_, err = w.Write(data)
	return err
}

// ExportJSON writes all entries of the given kind (empty for all) to w
// as indented JSON.
func (s *Store) ExportJSON(ctx context.Context, kind types.ArtifactKind, w io.Writer) error {
	records, err := s.List(ctx, kind)
	if err != nil {
		return err
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(export{Exhibits: records})
}
