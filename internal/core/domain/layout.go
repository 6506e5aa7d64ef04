package domain

import (
	"fmt"
	"path/filepath"
)

const (
	// StateDirName is the default directory holding progress stores and workspaces.
	StateDirName = ".sourcerer"

	// ProgressDirName is the directory holding one progress store per worker.
	ProgressDirName = "progress"

	// WorkspacesDirName is the directory holding one workspace per worker.
	WorkspacesDirName = "workspaces"

	// ConfigFileName is the name of the configuration file.
	ConfigFileName = "sourcerer.yaml"

	// ManifestFileName is the generated dependency manifest.
	ManifestFileName = "ivy.xml"

	// DescriptorFileName is the build descriptor the build tool is pointed at.
	DescriptorFileName = "build.xml"

	// ArchiveFileName is the packed project archive below a project's source path.
	ArchiveFileName = "content.zip"

	// ContentDirName is the expanded project tree below a project's source path.
	ContentDirName = "content"

	// JarFileName is the jar file below an unmanaged dependency locator.
	JarFileName = "jar.jar"

	// DiagnosticNoBuildFile is the output recorded when the workspace has no build descriptor.
	DiagnosticNoBuildFile = "No Build File"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644

	// PrivateFilePerm is the default permission for private files (rw-------).
	PrivateFilePerm = 0o600
)

// ProgressDir returns the directory holding the progress stores below stateDir.
func ProgressDir(stateDir string) string {
	return filepath.Join(stateDir, ProgressDirName)
}

// StorePath returns the progress store file of the given worker.
func StorePath(stateDir string, worker int) string {
	return filepath.Join(ProgressDir(stateDir), fmt.Sprintf("worker-%d.db", worker))
}

// WorkspacePath returns the workspace directory of the given worker.
func WorkspacePath(stateDir string, worker int) string {
	return filepath.Join(stateDir, WorkspacesDirName, fmt.Sprintf("src%d", worker))
}
