package report_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/sourcerer/internal/adapters/report"
	"go.trai.ch/sourcerer/internal/core/domain"
)

func sampleReport() domain.Report {
	return domain.Report{
		"10": domain.NewOutcome(domain.BuildFiles{
			Manifest:   "<ivy-module/>",
			Descriptor: `<project name="a&b"/>`,
		}, true, "dropped"),
		"9": domain.NewOutcome(domain.BuildFiles{}, false, "[javac] A.java:1: error: ';' expected\n"),
	}
}

func TestStore_WriteReport(t *testing.T) {
	s := report.NewStore()
	path := filepath.Join(t.TempDir(), "out", "project_successmap.json")

	require.NoError(t, s.WriteReport(path, sampleReport()))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	g := goldie.New(t)
	g.Assert(t, "report", data)

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "no temp files left behind")
}

func TestStore_ReadReport_RoundTrip(t *testing.T) {
	s := report.NewStore()
	path := filepath.Join(t.TempDir(), "report.json")

	require.NoError(t, s.WriteReport(path, sampleReport()))
	require.NoError(t, s.WriteReport(path, sampleReport()), "overwrite replaces the file")

	got, err := s.ReadReport(path)
	require.NoError(t, err)
	assert.Equal(t, sampleReport(), got)
}

func TestStore_WriteReport_Empty(t *testing.T) {
	s := report.NewStore()
	path := filepath.Join(t.TempDir(), "report.json")

	require.NoError(t, s.WriteReport(path, nil))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "{}\n", string(data))
}

func TestStore_ReadReport_Errors(t *testing.T) {
	s := report.NewStore()
	dir := t.TempDir()

	_, err := s.ReadReport(filepath.Join(dir, "missing.json"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrNotExist))

	bad := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte("{not json"), 0o644))
	_, err = s.ReadReport(bad)
	assert.ErrorContains(t, err, domain.ErrReportReadFailed.Error())
}

func TestStore_WriteAnalysis(t *testing.T) {
	s := report.NewStore()
	path := filepath.Join(t.TempDir(), "projects_error.json")

	analysis := domain.Analysis{
		"9": {
			{File: "src/A.java", Message: "unmappable character for encoding ASCII", Type: "unmappable character", Encoding: "ASCII"},
			{File: "src/B.java", Message: "duplicate class: org.example.B", Type: "duplicate class", Class: "org.example.B"},
		},
	}
	require.NoError(t, s.WriteAnalysis(path, analysis))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	g := goldie.New(t)
	g.Assert(t, "analysis", data)
}
