// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package manifest

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/psiino/exhibitkit/pkg/types"
)

func testStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "manifest", "exhibits.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestRecordAndList(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()

	require.NoError(t, s.Record(ctx, types.ExhibitRecord{
		Kind:        types.KindExhibit,
		Label:       "A",
		Orientation: types.Portrait,
		SourcePath:  "brief.pdf",
		OutputPath:  "brief_exhibit.pdf",
		Pages:       6,
	}))
	require.NoError(t, s.Record(ctx, types.ExhibitRecord{
		Kind:       types.KindCombine,
		SourcePath: "a.pdf, b.pdf",
		OutputPath: "combined-2-files.pdf",
		Pages:      10,
	}))

	all, err := s.List(ctx, "")
	require.NoError(t, err)
	require.Len(t, all, 2)

	assert.Equal(t, types.KindExhibit, all[0].Kind)
	assert.Equal(t, "A", all[0].Label)
	assert.Equal(t, types.Portrait, all[0].Orientation)
	assert.Equal(t, 6, all[0].Pages)
	assert.False(t, all[0].CreatedAt.IsZero())
	assert.Greater(t, all[1].ID, all[0].ID)
}

func TestListFiltersByKind(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()

	require.NoError(t, s.Record(ctx, types.ExhibitRecord{Kind: types.KindExhibit, Label: "A", OutputPath: "a.pdf", Pages: 1}))
	require.NoError(t, s.Record(ctx, types.ExhibitRecord{Kind: types.KindCombine, OutputPath: "c.pdf", Pages: 4}))

	combines, err := s.List(ctx, types.KindCombine)
	require.NoError(t, err)
	require.Len(t, combines, 1)
	assert.Equal(t, "c.pdf", combines[0].OutputPath)
}

func TestOpenIsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "exhibits.db")

	s1, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, s1.Record(context.Background(), types.ExhibitRecord{
		Kind: types.KindExhibit, Label: "A", OutputPath: "a.pdf", Pages: 1,
	}))
	require.NoError(t, s1.Close())

	s2, err := Open(path)
	require.NoError(t, err)
	defer s2.Close()

	all, err := s2.List(context.Background(), "")
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestExportYAML(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()

	require.NoError(t, s.Record(ctx, types.ExhibitRecord{
		Kind: types.KindExhibit, Label: "B", Orientation: types.Landscape,
		OutputPath: "Exhibit_B.pdf", Pages: 1,
	}))

	var buf bytes.Buffer
	require.NoError(t, s.ExportYAML(ctx, "", &buf))
	out := buf.String()
	assert.True(t, strings.Contains(out, "exhibits:"))
	assert.True(t, strings.Contains(out, "label: B"))
	assert.True(t, strings.Contains(out, "orientation: landscape"))
}

func TestExportJSON(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()

	require.NoError(t, s.Record(ctx, types.ExhibitRecord{
		Kind: types.KindCombine, OutputPath: "combined-2-files.pdf", Pages: 8,
	}))

	var buf bytes.Buffer
	require.NoError(t, s.ExportJSON(ctx, "", &buf))
	assert.True(t, strings.Contains(buf.String(), `"output_path": "combined-2-files.pdf"`))
}
