package analyzer_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/sourcerer/internal/adapters/telemetry"
	"go.trai.ch/sourcerer/internal/core/domain"
	"go.trai.ch/sourcerer/internal/engine/analyzer"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		msg  string
		want domain.CompileError
	}{
		{
			name: "package not found",
			msg:  "package org.apache.commons.io does not exist",
			want: domain.CompileError{Type: "package not found", Package: "org.apache.commons.io"},
		},
		{
			name: "public class in wrong file",
			msg:  "class Foo is public, should be declared in a file named Foo.java",
			want: domain.CompileError{Type: "class should be in its own file."},
		},
		{
			name: "unmappable character",
			msg:  "unmappable character for encoding UTF8",
			want: domain.CompileError{Type: "unmappable character", Encoding: "UTF8"},
		},
		{
			name: "package rule only matches at the start",
			msg:  "import failed: package a.b does not exist",
			want: domain.CompileError{Type: "import failed"},
		},
		{
			name: "both substrings required",
			msg:  "non-static variable x cannot be referenced from a static context",
			want: domain.CompileError{Type: "non-static used in static context"},
		},
		{
			name: "earlier rule wins",
			msg:  "illegal start of expression; expected ;",
			want: domain.CompileError{Type: "illegal use"},
		},
		{
			name: "expected",
			msg:  "';' expected",
			want: domain.CompileError{Type: "expected symbol not found"},
		},
		{
			name: "mismatched types",
			msg:  "incompatible types: int required, but String found",
			want: domain.CompileError{Type: "mismatched types"},
		},
		{
			name: "abstraction error",
			msg:  "Foo is not abstract and does not override bar()",
			want: domain.CompileError{Type: "abstraction error"},
		},
		{
			name: "ambiguous reference",
			msg:  "reference to List is ambiguous",
			want: domain.CompileError{Type: "ambiguious reference"},
		},
		{
			name: "duplicate class keeps the class name",
			msg:  "duplicate class: com.example.Foo",
			want: domain.CompileError{Type: "duplicate class", Class: "com.example.Foo"},
		},
		{
			name: "duplicate class without a name",
			msg:  "duplicate class found",
			want: domain.CompileError{Type: "duplicate class"},
		},
		{
			name: "caught exception",
			msg:  "exception IOException has already been caught",
			want: domain.CompileError{Type: "exception has already been caught"},
		},
		{
			name: "fallback to text before colon",
			msg:  "cannot find symbol : class Foo",
			want: domain.CompileError{Type: "cannot find symbol"},
		},
		{
			name: "fallback to the whole message",
			msg:  "unclosed string literal",
			want: domain.CompileError{Type: "unclosed string literal"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := analyzer.Classify("src/Foo.java", tt.msg)
			tt.want.File = "src/Foo.java"
			tt.want.Message = tt.msg
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestExtract(t *testing.T) {
	output := "Buildfile: build.xml\n" +
		"compile:\n" +
		"    [javac] Compiling 2 source files\n" +
		"    [javac] /ws/src0/src/A.java:12: error: package org.junit does not exist\n" +
		"    [javac] import org.junit.Test;\n" +
		"    [javac] /ws/src0/src/B.java:3: error: cannot find symbol\r\n" +
		"BUILD FAILED\n"

	got := analyzer.Extract(output)
	assert.Equal(t, []domain.CompileError{
		{
			File:    "/ws/src0/src/A.java",
			Message: "package org.junit does not exist",
			Type:    "package not found",
			Package: "org.junit",
		},
		{
			File:    "/ws/src0/src/B.java",
			Message: "cannot find symbol",
			Type:    "cannot find symbol",
		},
	}, got)
}

func TestExtract_UnresolvedDependencies(t *testing.T) {
	output := "[ivy:retrieve] :: problems summary ::\n" +
		"    [javac] A.java:1: error: cannot find symbol\n" +
		"BUILD FAILED\nimpossible to resolve dependencies"

	assert.Equal(t, []domain.CompileError{{
		File:    "ivy.xml",
		Message: "unresolved dependencies",
		Type:    "unresolved dependencies",
	}}, analyzer.Extract(output))
}

func TestExtract_NoErrors(t *testing.T) {
	got := analyzer.Extract("No Build File")
	require.NotNil(t, got)
	assert.Empty(t, got)
}

func sampleReport() domain.Report {
	report := domain.Report{
		"ok":       domain.NewOutcome(domain.BuildFiles{}, true, ""),
		"no-build": domain.NewOutcome(domain.BuildFiles{}, false, domain.DiagnosticNoBuildFile),
	}
	for _, id := range []string{"a", "b", "c", "d", "e"} {
		report[id] = domain.NewOutcome(domain.BuildFiles{}, false,
			"[javac] "+id+".java:1: error: '"+id+"' expected")
	}
	return report
}

func TestAnalyzer_OnlyFailedProjects(t *testing.T) {
	a := analyzer.New(3, telemetry.NewNoOpTracer())

	analysis, err := a.Analyze(context.Background(), sampleReport())
	require.NoError(t, err)

	assert.NotContains(t, analysis, "ok")
	assert.Len(t, analysis, 6)
	assert.Empty(t, analysis["no-build"])
	assert.Equal(t, []domain.CompileError{{
		File:    "c.java",
		Message: "'c' expected",
		Type:    "expected symbol not found",
	}}, analysis["c"])
	assert.Equal(t, map[string]int{"expected symbol not found": 5}, analysis.Histogram())
}

func TestAnalyzer_WorkerCountDoesNotChangeResult(t *testing.T) {
	report := sampleReport()

	single, err := analyzer.New(1, telemetry.NewNoOpTracer()).Analyze(context.Background(), report)
	require.NoError(t, err)
	many, err := analyzer.New(16, telemetry.NewNoOpTracer()).Analyze(context.Background(), report)
	require.NoError(t, err)

	assert.Equal(t, single, many)
}

func TestAnalyzer_InvalidWorkers(t *testing.T) {
	_, err := analyzer.New(0, telemetry.NewNoOpTracer()).Analyze(context.Background(), sampleReport())
	require.ErrorIs(t, err, domain.ErrInvalidWorkerCount)
}

func TestAnalyzer_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := analyzer.New(2, telemetry.NewNoOpTracer()).Analyze(ctx, sampleReport())
	require.ErrorIs(t, err, context.Canceled)
}
