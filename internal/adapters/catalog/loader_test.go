package catalog_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/sourcerer/internal/adapters/catalog"
	"go.trai.ch/sourcerer/internal/core/domain"
)

func TestLoader_Load(t *testing.T) {
	c, err := catalog.NewLoader().Load(t.Context(), filepath.Join("testdata", "catalog.json"), "/mnt/repo")
	require.NoError(t, err)

	assert.Equal(t, []string{"1000", "1001"}, c.IDs())

	alpha, ok := c.Get("1001")
	require.True(t, ok)
	assert.Equal(t, domain.ProjectRecord{
		ID:          "1001",
		Name:        "alpha",
		Description: "Alpha project",
		Encoding:    "latin1",
		SourcePath:  "/mnt/repo/projects/1001",
		Archived:    true,
		MountRoot:   "/mnt/repo",
		Dependencies: []domain.Dependency{
			{Name: "junit", Managed: true, Locator: "junit:junit:4.12"},
			{Name: "commons-io", Path: "jars/cio", Hash: "a1b2", Locator: "jars/cio"},
		},
	}, alpha)

	beta, ok := c.Get("1000")
	require.True(t, ok)
	assert.Equal(t, "/abs/projects/1000", beta.SourcePath)
	assert.Empty(t, beta.Description)
	assert.True(t, beta.ProvidedBuild)
	assert.False(t, beta.Archived)
	assert.Equal(t, domain.DefaultEncoding, beta.SourceEncoding())
}

func TestLoader_Load_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		is      error
		msg     string
	}{
		{name: "not an object", content: `[]`, is: domain.ErrCatalogParseFailed},
		{name: "truncated", content: `{"1": {"name": "x"`, msg: domain.ErrCatalogParseFailed.Error()},
		{
			name:    "short dependency tuple",
			content: `{"1": {"depends": [["a", "b"]], "property_file": {"sourcererpath": "/p"}}}`,
			is:      domain.ErrInvalidDependency,
		},
		{
			name:    "wrong managed flag type",
			content: `{"1": {"depends": [["a", null, null, "yes", "x"]], "property_file": {"sourcererpath": "/p"}}}`,
			msg:     domain.ErrInvalidDependency.Error(),
		},
		{name: "missing source path", content: `{"1": {"name": "x"}}`, is: domain.ErrInvalidProject},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "catalog.json")
			require.NoError(t, os.WriteFile(path, []byte(tt.content), domain.FilePerm))

			_, err := catalog.NewLoader().Load(t.Context(), path, "")
			require.Error(t, err)
			if tt.is != nil {
				require.ErrorIs(t, err, tt.is)
			}
			if tt.msg != "" {
				require.ErrorContains(t, err, tt.msg)
			}
		})
	}
}

func TestLoader_Load_MissingFile(t *testing.T) {
	_, err := catalog.NewLoader().Load(t.Context(), filepath.Join(t.TempDir(), "nope.json"), "")
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoader_Load_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(t.Context())
	cancel()

	_, err := catalog.NewLoader().Load(ctx, filepath.Join("testdata", "catalog.json"), "")
	require.ErrorIs(t, err, context.Canceled)
}
