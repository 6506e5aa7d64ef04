package domain

import "go.trai.ch/zerr"

var (
	// ErrInvalidWorkerCount is returned when the worker count is lower than one.
	ErrInvalidWorkerCount = zerr.New("worker count must be at least 1")

	// ErrPartitionCoverage is returned when the partitions do not cover the catalog exactly once.
	ErrPartitionCoverage = zerr.New("partitions do not cover the catalog exactly once")

	// ErrPartitionMismatch is returned when a progress store was written for a different partition.
	ErrPartitionMismatch = zerr.New("progress store belongs to a different partition")

	// ErrDuplicateOutcome is returned when the same project id is found in more than one store.
	ErrDuplicateOutcome = zerr.New("duplicate outcome across partitions")

	// ErrOutcomeExists is returned when an outcome is written twice for the same project id.
	ErrOutcomeExists = zerr.New("outcome already recorded")

	// ErrWorkerFailed is returned when a worker stops before exhausting its partition.
	ErrWorkerFailed = zerr.New("worker failed")

	// ErrWorkerPanicked is returned when a worker panics.
	ErrWorkerPanicked = zerr.New("worker panicked")

	// ErrRunIncomplete is returned when a run ends before every worker finished its partition.
	ErrRunIncomplete = zerr.New("run incomplete, progress kept for resume")

	// ErrCatalogReadFailed is returned when the catalog file cannot be read.
	ErrCatalogReadFailed = zerr.New("failed to read catalog")

	// ErrCatalogParseFailed is returned when the catalog file cannot be parsed.
	ErrCatalogParseFailed = zerr.New("failed to parse catalog")

	// ErrInvalidProject is returned when a catalog entry fails validation.
	ErrInvalidProject = zerr.New("invalid project record")

	// ErrDuplicateProject is returned when a catalog contains the same id twice.
	ErrDuplicateProject = zerr.New("duplicate project id")

	// ErrInvalidDependency is returned when a dependency tuple is malformed.
	ErrInvalidDependency = zerr.New("invalid dependency")

	// ErrInvalidCoordinate is returned when a managed dependency locator is not org:name:rev.
	ErrInvalidCoordinate = zerr.New("invalid dependency coordinate, expected org:name:rev")

	// ErrWorkspaceResetFailed is returned when a workspace cannot be emptied.
	ErrWorkspaceResetFailed = zerr.New("failed to reset workspace")

	// ErrSourceNotFound is returned when a project's source location does not exist.
	ErrSourceNotFound = zerr.New("project source not found")

	// ErrArchiveExtractFailed is returned when a project archive cannot be unpacked.
	ErrArchiveExtractFailed = zerr.New("failed to extract project archive")

	// ErrUnsafeArchiveEntry is returned when an archive entry escapes the workspace.
	ErrUnsafeArchiveEntry = zerr.New("archive entry escapes workspace")

	// ErrSourceCopyFailed is returned when an expanded source tree cannot be copied.
	ErrSourceCopyFailed = zerr.New("failed to copy project sources")

	// ErrDescriptorWriteFailed is returned when the generated build files cannot be written.
	ErrDescriptorWriteFailed = zerr.New("failed to write build descriptors")

	// ErrStoreOpenFailed is returned when a progress store cannot be opened.
	ErrStoreOpenFailed = zerr.New("failed to open progress store")

	// ErrStoreReadFailed is returned when a progress store cannot be read.
	ErrStoreReadFailed = zerr.New("failed to read progress store")

	// ErrStoreWriteFailed is returned when a progress store cannot be written.
	ErrStoreWriteFailed = zerr.New("failed to write progress store")

	// ErrStoreFlushFailed is returned when pending progress cannot be committed.
	ErrStoreFlushFailed = zerr.New("failed to flush progress store")

	// ErrStoreMigrationFailed is returned when the progress store schema cannot be migrated.
	ErrStoreMigrationFailed = zerr.New("failed to migrate progress store")

	// ErrStoreRemoveFailed is returned when a progress store cannot be deleted.
	ErrStoreRemoveFailed = zerr.New("failed to remove progress store")

	// ErrReportReadFailed is returned when a report cannot be read.
	ErrReportReadFailed = zerr.New("failed to read report")

	// ErrReportWriteFailed is returned when a report cannot be written.
	ErrReportWriteFailed = zerr.New("failed to write report")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrInvalidConfig is returned when a config value is out of range.
	ErrInvalidConfig = zerr.New("invalid configuration")

	// ErrIndexUnreachable is returned when the indexing service cannot be reached.
	ErrIndexUnreachable = zerr.New("indexing service unreachable")

	// ErrIndexRequestFailed is returned when the indexing service answers with a non-200 status.
	ErrIndexRequestFailed = zerr.New("indexing service request failed")

	// ErrIndexDecodeFailed is returned when the indexing service response cannot be decoded.
	ErrIndexDecodeFailed = zerr.New("failed to decode indexing service response")

	// ErrIndexNotConfigured is returned when an index command runs without a service URL.
	ErrIndexNotConfigured = zerr.New("indexing service url is not configured")

	// ErrInvalidImportRange is returned when an import range is inverted or mixed with a project id.
	ErrInvalidImportRange = zerr.New("invalid import range")
)

// WithMeta attaches metadata to err. zerr.With copies a bare *zerr.Error,
// which breaks errors.Is against sentinels; WithMeta wraps first so the result
// still matches err and everything err matches.
func WithMeta(err error, key string, value any) error {
	return zerr.With(zerr.Wrap(err, ""), key, value)
}

// Because returns an error that matches sentinel with errors.Is and keeps
// cause as its unwrapped chain.
func Because(sentinel, cause error) error {
	if cause == nil {
		return sentinel
	}
	return &causedError{sentinel: sentinel, cause: cause}
}

type causedError struct {
	sentinel error
	cause    error
}

func (e *causedError) Error() string {
	return e.sentinel.Error() + ": " + e.cause.Error()
}

// Message returns the sentinel text without the cause.
func (e *causedError) Message() string {
	return e.sentinel.Error()
}

func (e *causedError) Unwrap() error {
	return e.cause
}

func (e *causedError) Is(target error) bool {
	return target == e.sentinel
}
