package orchestrator_test

import (
	"context"
	"maps"
	"strings"
	"sync"

	"go.trai.ch/sourcerer/internal/core/domain"
	"go.trai.ch/sourcerer/internal/core/ports"
)

// memDB is the durable part of one in-memory progress store.
type memDB struct {
	fingerprint string
	outcomes    map[string]domain.Outcome
}

// memFactory keeps stores across runs until they are removed.
type memFactory struct {
	mu      sync.Mutex
	dbs     map[int]*memDB
	removed []int
	putErr  map[int]error
	allErr  map[int]error
	extra   map[int]domain.Report
}

func newMemFactory() *memFactory {
	return &memFactory{
		dbs:    make(map[int]*memDB),
		putErr: make(map[int]error),
		allErr: make(map[int]error),
		extra:  make(map[int]domain.Report),
	}
}

func (f *memFactory) seed(worker int, fingerprint string, outcomes domain.Report) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.dbs[worker] = &memDB{fingerprint: fingerprint, outcomes: maps.Clone(outcomes)}
}

func (f *memFactory) recorded(worker int) []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	db, ok := f.dbs[worker]
	if !ok {
		return nil
	}
	return domain.Report(db.outcomes).IDs()
}

func (f *memFactory) Open(_ context.Context, worker int) (ports.ProgressStore, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	db, ok := f.dbs[worker]
	if !ok {
		db = &memDB{outcomes: make(map[string]domain.Outcome)}
		f.dbs[worker] = db
	}
	return &memStore{f: f, db: db, worker: worker, staged: make(map[string]domain.Outcome)}, nil
}

func (f *memFactory) Remove(worker int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.dbs, worker)
	f.removed = append(f.removed, worker)
	return nil
}

type memStore struct {
	f      *memFactory
	db     *memDB
	worker int
	staged map[string]domain.Outcome
}

func (s *memStore) Bind(_ context.Context, fingerprint string, _ []string) error {
	s.f.mu.Lock()
	defer s.f.mu.Unlock()
	if s.db.fingerprint != "" && s.db.fingerprint != fingerprint {
		return domain.ErrPartitionMismatch
	}
	s.db.fingerprint = fingerprint
	return nil
}

func (s *memStore) Has(_ context.Context, id string) (bool, error) {
	s.f.mu.Lock()
	defer s.f.mu.Unlock()
	_, durable := s.db.outcomes[id]
	_, staged := s.staged[id]
	return durable || staged, nil
}

func (s *memStore) Put(_ context.Context, id string, outcome domain.Outcome) error {
	s.f.mu.Lock()
	err := s.f.putErr[s.worker]
	s.f.mu.Unlock()
	if err != nil {
		return err
	}
	if _, ok := s.staged[id]; ok {
		return domain.ErrOutcomeExists
	}
	s.staged[id] = outcome
	return nil
}

func (s *memStore) Flush() error {
	s.f.mu.Lock()
	defer s.f.mu.Unlock()
	maps.Copy(s.db.outcomes, s.staged)
	clear(s.staged)
	return nil
}

func (s *memStore) All(_ context.Context) (domain.Report, error) {
	s.f.mu.Lock()
	defer s.f.mu.Unlock()
	if err := s.f.allErr[s.worker]; err != nil {
		return nil, err
	}
	out := maps.Clone(domain.Report(s.db.outcomes))
	maps.Copy(out, s.f.extra[s.worker])
	return out, nil
}

func (s *memStore) Close() error {
	clear(s.staged)
	return nil
}

// fakeBuild stands in for both the workspace manager and the build runner.
// It tracks which project is staged in each workspace so Compile can answer
// per project.
type fakeBuild struct {
	mu        sync.Mutex
	current   map[string]string
	events    map[string][]string
	compiled  []string
	stageErr  map[string]error
	results   map[string]domain.BuildResult
	onCompile func(ctx context.Context, id string)
}

func newFakeBuild() *fakeBuild {
	return &fakeBuild{
		current:  make(map[string]string),
		events:   make(map[string][]string),
		stageErr: make(map[string]error),
		results:  make(map[string]domain.BuildResult),
	}
}

func (b *fakeBuild) Reset(path string) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.current[path] = ""
	b.events[path] = append(b.events[path], "reset")
	return nil
}

func (b *fakeBuild) Materialize(_ context.Context, project *domain.ProjectRecord, path string) (domain.BuildFiles, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.events[path] = append(b.events[path], "stage "+project.ID)
	if prev := b.current[path]; prev != "" {
		panic("workspace still holds " + prev)
	}
	if err := b.stageErr[project.ID]; err != nil {
		return domain.BuildFiles{}, err
	}
	b.current[path] = project.ID
	return domain.BuildFiles{Descriptor: "<project name=\"" + project.ID + "\"/>"}, nil
}

func (b *fakeBuild) Remove(path string) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.events[path] = append(b.events[path], "remove")
	return nil
}

func (b *fakeBuild) Compile(ctx context.Context, path string) domain.BuildResult {
	b.mu.Lock()
	id := b.current[path]
	b.compiled = append(b.compiled, id)
	res, ok := b.results[id]
	hook := b.onCompile
	b.mu.Unlock()

	if hook != nil {
		hook(ctx, id)
	}
	if !ok {
		return domain.BuildResult{Success: true, Output: "BUILD SUCCESSFUL"}
	}
	return res
}

func (b *fakeBuild) compiledIDs() []string {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]string, len(b.compiled))
	copy(out, b.compiled)
	return out
}

func (b *fakeBuild) eventsOf(path string) []string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]string(nil), b.events[path]...)
}

// joinHasher fingerprints a partition by its joined ids.
func joinHasher(ids []string) string {
	return strings.Join(ids, ",")
}
