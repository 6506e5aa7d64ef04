package orchestrator_test

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"testing"
	"testing/synctest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/sourcerer/internal/core/domain"
	"go.trai.ch/sourcerer/internal/core/ports"
	"go.trai.ch/sourcerer/internal/core/ports/mocks"
	"go.trai.ch/sourcerer/internal/engine/orchestrator"
	"go.uber.org/mock/gomock"
)

const stateDir = "/state"

type orchestratorTestMocks struct {
	build    *fakeBuild
	stores   *memFactory
	reports  *mocks.MockReportStore
	renderer *mocks.MockRenderer
	logger   *mocks.MockLogger
}

// setupOrchestratorTest creates an orchestrator over in-memory fakes.
// Renderer expectations are left to each test.
func setupOrchestratorTest(t *testing.T, opts orchestrator.Options) (*orchestrator.Orchestrator, orchestratorTestMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)
	m := orchestratorTestMocks{
		build:    newFakeBuild(),
		stores:   newMemFactory(),
		reports:  mocks.NewMockReportStore(ctrl),
		renderer: mocks.NewMockRenderer(ctrl),
		logger:   mocks.NewMockLogger(ctrl),
	}
	m.logger.EXPECT().Info(gomock.Any()).AnyTimes()

	mockSpan := mocks.NewMockSpan(ctrl)
	mockSpan.EXPECT().End().AnyTimes()
	mockSpan.EXPECT().RecordError(gomock.Any()).AnyTimes()
	mockSpan.EXPECT().SetAttribute(gomock.Any(), gomock.Any()).AnyTimes()

	tracer := mocks.NewMockTracer(ctrl)
	tracer.EXPECT().Start(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, _ string) (context.Context, ports.Span) {
			return ctx, mockSpan
		},
	).AnyTimes()

	hasher := mocks.NewMockHasher(ctrl)
	hasher.EXPECT().Fingerprint(gomock.Any()).DoAndReturn(joinHasher).AnyTimes()

	if opts.StateDir == "" {
		opts.StateDir = stateDir
	}
	o := orchestrator.New(opts, orchestrator.Deps{
		Workspace: m.build,
		Runner:    m.build,
		Stores:    m.stores,
		Reports:   m.reports,
		Hasher:    hasher,
		Tracer:    tracer,
		Renderer:  m.renderer,
		Logger:    m.logger,
	})
	return o, m
}

func allowRendering(m orchestratorTestMocks) {
	m.renderer.EXPECT().OnProgress(gomock.Any(), gomock.Any(), gomock.Any()).AnyTimes()
	m.renderer.EXPECT().OnSummary(gomock.Any(), gomock.Any()).AnyTimes()
}

func newCatalog(t *testing.T, ids ...string) *domain.Catalog {
	t.Helper()
	records := make([]domain.ProjectRecord, len(ids))
	for i, id := range ids {
		records[i] = domain.ProjectRecord{
			ID:         id,
			Name:       "project-" + id,
			SourcePath: "/src/" + id,
		}
	}
	c, err := domain.NewCatalog(records)
	require.NoError(t, err)
	return c
}

var fiveIDs = []string{"01", "02", "03", "04", "05"}

func sorted(s []string) []string {
	out := slices.Clone(s)
	slices.Sort(out)
	return out
}

func TestOrchestrator_CompilesEveryProject(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		o, m := setupOrchestratorTest(t, orchestrator.Options{Workers: 2, ReportPath: "out.json"})
		allowRendering(m)

		var written domain.Report
		m.reports.EXPECT().WriteReport("out.json", gomock.Any()).DoAndReturn(
			func(_ string, r domain.Report) error {
				written = r
				return nil
			},
		)

		report, err := o.Run(context.Background(), newCatalog(t, fiveIDs...))
		require.NoError(t, err)

		assert.Equal(t, fiveIDs, report.IDs())
		assert.Equal(t, report, written)
		for id, outcome := range report {
			assert.True(t, outcome.Success, id)
			assert.Empty(t, outcome.Output, "success drops output")
		}
		assert.Equal(t, fiveIDs, sorted(m.build.compiledIDs()))
		assert.ElementsMatch(t, []int{0, 1}, m.stores.removed)
		assert.Equal(t, 5, o.Processed())
	})
}

func TestOrchestrator_FailedBuildKeepsOutput(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		o, m := setupOrchestratorTest(t, orchestrator.Options{Workers: 2})
		allowRendering(m)
		m.build.results["02"] = domain.BuildResult{Output: "[javac] A.java:1: error: boom", ExitCode: 1}

		report, err := o.Run(context.Background(), newCatalog(t, fiveIDs...))
		require.NoError(t, err)

		failed := report["02"]
		assert.False(t, failed.Success)
		assert.Equal(t, "[javac] A.java:1: error: boom", failed.Output)
		assert.Equal(t, `<project name="02"/>`, failed.BuildFiles.Descriptor)
		assert.Equal(t, domain.Summary{Total: 5, Succeeded: 4, Failed: 1}, report.Summary())
	})
}

func TestOrchestrator_StagingFailureIsRecorded(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		o, m := setupOrchestratorTest(t, orchestrator.Options{Workers: 1})
		allowRendering(m)
		m.build.stageErr["03"] = errors.New("content.zip: no such file")

		report, err := o.Run(context.Background(), newCatalog(t, fiveIDs...))
		require.NoError(t, err)

		staged := report["03"]
		assert.False(t, staged.Success)
		assert.Contains(t, staged.Output, "content.zip: no such file")
		assert.Equal(t, domain.BuildFiles{}, staged.BuildFiles)
		assert.NotContains(t, m.build.compiledIDs(), "03")
	})
}

func TestOrchestrator_Idempotent(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		o, m := setupOrchestratorTest(t, orchestrator.Options{Workers: 3, KeepStores: true})
		allowRendering(m)
		catalog := newCatalog(t, fiveIDs...)

		first, err := o.Run(context.Background(), catalog)
		require.NoError(t, err)
		require.Len(t, m.build.compiledIDs(), 5)

		second, err := o.Run(context.Background(), catalog)
		require.NoError(t, err)

		assert.Equal(t, first, second)
		assert.Len(t, m.build.compiledIDs(), 5, "nothing is compiled twice")
		assert.Equal(t, 0, o.Processed())
		assert.Empty(t, m.stores.removed)
	})
}

func TestOrchestrator_ResumesAfterCrash(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		o, m := setupOrchestratorTest(t, orchestrator.Options{Workers: 2})
		allowRendering(m)

		// Worker 0 owns 01, 03, 05 and had recorded two of them.
		previous := domain.Report{
			"01": domain.NewOutcome(domain.BuildFiles{}, false, "old failure"),
			"03": domain.NewOutcome(domain.BuildFiles{}, true, ""),
		}
		m.stores.seed(0, "01,03,05", previous)

		report, err := o.Run(context.Background(), newCatalog(t, fiveIDs...))
		require.NoError(t, err)

		assert.Equal(t, []string{"02", "04", "05"}, sorted(m.build.compiledIDs()))
		assert.Equal(t, "old failure", report["01"].Output, "recorded outcomes are kept")
		assert.Len(t, report, 5)
	})
}

func TestOrchestrator_PartitionMismatch(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		o, m := setupOrchestratorTest(t, orchestrator.Options{Workers: 2})
		m.stores.seed(1, "02,04,06", nil)

		_, err := o.Run(context.Background(), newCatalog(t, fiveIDs...))
		require.ErrorIs(t, err, domain.ErrPartitionMismatch)

		assert.Empty(t, m.build.compiledIDs())
		assert.Empty(t, m.stores.removed)
	})
}

func TestOrchestrator_StoreReadKeepsSentinel(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		o, m := setupOrchestratorTest(t, orchestrator.Options{Workers: 2})
		allowRendering(m)
		m.stores.allErr[1] = domain.ErrStoreReadFailed

		_, err := o.Run(context.Background(), newCatalog(t, fiveIDs...))
		require.ErrorIs(t, err, domain.ErrStoreReadFailed)
		assert.Contains(t, err.Error(), domain.ErrStoreReadFailed.Error())
		assert.Empty(t, m.stores.removed)
	})
}

func TestOrchestrator_WorkspaceResetBetweenProjects(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		o, m := setupOrchestratorTest(t, orchestrator.Options{Workers: 2})
		allowRendering(m)

		_, err := o.Run(context.Background(), newCatalog(t, fiveIDs...))
		require.NoError(t, err)

		assert.Equal(t, []string{
			"reset",
			"stage 01", "reset",
			"stage 03", "reset",
			"stage 05", "reset",
			"remove",
		}, m.build.eventsOf(domain.WorkspacePath(stateDir, 0)))
		assert.Equal(t, []string{
			"reset",
			"stage 02", "reset",
			"stage 04", "reset",
			"remove",
		}, m.build.eventsOf(domain.WorkspacePath(stateDir, 1)))
	})
}

func TestOrchestrator_WorkerPanic(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		o, m := setupOrchestratorTest(t, orchestrator.Options{Workers: 2, ReportPath: "out.json"})
		allowRendering(m)
		m.build.onCompile = func(_ context.Context, id string) {
			if id == "04" {
				panic("tool crashed")
			}
		}

		_, err := o.Run(context.Background(), newCatalog(t, fiveIDs...))
		require.ErrorIs(t, err, domain.ErrWorkerPanicked)
		assert.NotErrorIs(t, err, domain.ErrWorkerFailed)
		assert.Contains(t, err.Error(), "tool crashed")

		assert.Equal(t, []string{"01", "03", "05"}, m.stores.recorded(0), "other workers finish")
		assert.Equal(t, []string{"02"}, m.stores.recorded(1))
		assert.Empty(t, m.stores.removed, "stores are kept for resume")
	})
}

func TestOrchestrator_StoreFailureStopsWorker(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		o, m := setupOrchestratorTest(t, orchestrator.Options{Workers: 2})
		allowRendering(m)
		diskFull := errors.New("disk full")
		m.stores.putErr[1] = diskFull

		_, err := o.Run(context.Background(), newCatalog(t, fiveIDs...))
		require.ErrorIs(t, err, domain.ErrWorkerFailed)
		require.ErrorIs(t, err, diskFull)

		assert.Equal(t, []string{"01", "03", "05"}, m.stores.recorded(0))
		assert.Empty(t, m.stores.recorded(1))
	})
}

func TestOrchestrator_Cancelled(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		o, m := setupOrchestratorTest(t, orchestrator.Options{Workers: 1, ReportPath: "out.json"})
		allowRendering(m)

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()
		m.build.onCompile = func(_ context.Context, id string) {
			if id == "03" {
				cancel()
			}
		}

		_, err := o.Run(ctx, newCatalog(t, fiveIDs...))
		require.ErrorIs(t, err, domain.ErrRunIncomplete)
		require.ErrorIs(t, err, context.Canceled)
		assert.NotErrorIs(t, err, domain.ErrWorkerFailed)

		assert.Equal(t, []string{"01", "02"}, m.stores.recorded(0), "interrupted attempt is not recorded")
		assert.Empty(t, m.stores.removed)
	})
}

func TestOrchestrator_Progress(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		o, m := setupOrchestratorTest(t, orchestrator.Options{Workers: 1, ProgressInterval: 2})

		gomock.InOrder(
			m.renderer.EXPECT().OnProgress(0, 2, 5),
			m.renderer.EXPECT().OnProgress(0, 4, 5),
			m.renderer.EXPECT().OnProgress(0, 5, 5),
			m.renderer.EXPECT().OnSummary(domain.Summary{Total: 5, Succeeded: 5}, gomock.Any()),
		)

		_, err := o.Run(context.Background(), newCatalog(t, fiveIDs...))
		require.NoError(t, err)
	})
}

func TestOrchestrator_DuplicateAcrossStores(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		o, m := setupOrchestratorTest(t, orchestrator.Options{Workers: 2, ReportPath: "out.json"})
		allowRendering(m)
		m.stores.extra[1] = domain.Report{"01": domain.NewOutcome(domain.BuildFiles{}, true, "")}

		_, err := o.Run(context.Background(), newCatalog(t, fiveIDs...))
		require.ErrorIs(t, err, domain.ErrDuplicateOutcome)
		assert.Empty(t, m.stores.removed)
	})
}

func TestOrchestrator_InvalidWorkerCount(t *testing.T) {
	o, _ := setupOrchestratorTest(t, orchestrator.Options{Workers: 0})

	_, err := o.Run(context.Background(), newCatalog(t, fiveIDs...))
	require.ErrorIs(t, err, domain.ErrInvalidWorkerCount)
}

func TestOrchestrator_EmptyCatalog(t *testing.T) {
	o, m := setupOrchestratorTest(t, orchestrator.Options{Workers: 4, ReportPath: "out.json"})
	m.renderer.EXPECT().OnSummary(domain.Summary{}, gomock.Any())
	m.reports.EXPECT().WriteReport("out.json", gomock.Len(0)).Return(nil)

	report, err := o.Run(context.Background(), newCatalog(t))
	require.NoError(t, err)
	assert.Empty(t, report)
}

func TestOrchestrator_MoreWorkersThanProjects(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		o, m := setupOrchestratorTest(t, orchestrator.Options{Workers: 8})
		allowRendering(m)

		report, err := o.Run(context.Background(), newCatalog(t, "a", "b"))
		require.NoError(t, err)
		assert.Len(t, report, 2)
		assert.Len(t, m.stores.removed, 8)
	})
}

func TestOrchestrator_ReportWriteError(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		o, m := setupOrchestratorTest(t, orchestrator.Options{Workers: 2, ReportPath: "out.json"})
		allowRendering(m)
		m.reports.EXPECT().WriteReport("out.json", gomock.Any()).Return(domain.ErrReportWriteFailed)

		_, err := o.Run(context.Background(), newCatalog(t, fiveIDs...))
		require.ErrorIs(t, err, domain.ErrReportWriteFailed)
		assert.Empty(t, m.stores.removed, "stores survive until the report is written")
	})
}

func ExampleOrchestrator_Processed() {
	o := orchestrator.New(orchestrator.Options{Workers: 1}, orchestrator.Deps{})
	fmt.Println(o.Processed())
	// Output: 0
}
