package config

import "go.trai.ch/osw/internal/core/domain"

// workflowFileNames are searched, in order, when discovering a workflow.
var workflowFileNames = []string{
	domain.WorkflowFileName,
	"workflow.osw.yml",
	"workflow.osw.json",
}

// Environment variables read by LoadSettings.
const (
	EnvRunDir         = "OSW_RUN_DIR"
	EnvMeasurePaths   = "OSW_MEASURE_PATHS"
	EnvStepTimeout    = "OSW_STEP_TIMEOUT"
	EnvChangeDir      = "OSW_CHANGE_DIR"
	EnvLogFormat      = "OSW_LOG_FORMAT"
	EnvQuiet          = "OSW_QUIET"
	EnvDebounceWindow = "OSW_DEBOUNCE"
)
