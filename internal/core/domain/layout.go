package domain

import (
	"fmt"
	"path/filepath"
)

const (
	// OswDirName is the name of the internal state directory.
	OswDirName = ".osw"

	// RunDirName is the name of the default run directory below the state directory.
	RunDirName = "run"

	// MeasureFileName is the name of the measure metadata file inside a measure directory.
	MeasureFileName = "measure.yaml"

	// DocsDirName is the name of the directory holding generator templates.
	DocsDirName = "docs"

	// TemplateExt is the extension of generator templates.
	TemplateExt = ".tmpl"

	// StepResultFileName is the name of the result file written into each step directory.
	StepResultFileName = "result.json"

	// RunResultFileName is the name of the run summary written into the run directory.
	RunResultFileName = "out.json"

	// OutputModelFileName is the name of the final model written into the run directory.
	OutputModelFileName = "out.osm"

	// OutputWorkspaceFileName is the name of the final workspace written into the run directory.
	OutputWorkspaceFileName = "out.idf"

	// WorkflowFileName is the default workflow file name.
	WorkflowFileName = "workflow.osw.yaml"

	// EnvFileName is the name of the optional settings file.
	EnvFileName = ".env"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644

	// PrivateFilePerm is the default permission for private files (rw-------).
	PrivateFilePerm = 0o600
)

// DefaultRunPath returns the default run directory.
// It joins .osw and run.
func DefaultRunPath() string {
	return filepath.Join(OswDirName, RunDirName)
}

// StepDirName returns the directory name for a workflow step, formed from the
// zero-padded step index and the measure directory name.
func StepDirName(index int, measureDirName string) string {
	return fmt.Sprintf("%03d_%s", index, filepath.Base(measureDirName))
}
