package domain

import (
	"errors"

	"go.trai.ch/zerr"
)

var (
	// ErrNotFound is returned when a model, workspace or measure path, or one of
	// its companion files, does not exist.
	ErrNotFound = zerr.New("not found")

	// ErrValidation is returned when a file exists but its content fails structural checks.
	ErrValidation = zerr.New("validation failed")

	// ErrMeasureClassCount is returned when a measure script does not define exactly one measure class.
	ErrMeasureClassCount = zerr.New("measure script must define exactly one measure class")

	// ErrMissingScript is returned when a measure declares a language but ships no script for it.
	ErrMissingScript = zerr.New("no script found for measure language")

	// ErrUnsupportedLanguage is returned when no script engine is registered for a measure language.
	ErrUnsupportedLanguage = zerr.New("unsupported measure language")

	// ErrIncompatibleArity is returned when a measure method has an arity no adapter can bridge.
	ErrIncompatibleArity = zerr.New("incompatible measure method arity")

	// ErrUnknownMeasureType is returned when a measure class satisfies none of the measure capabilities.
	ErrUnknownMeasureType = zerr.New("measure class does not implement a known measure type")

	// ErrMeasureMissing is returned when a workflow step references a measure that cannot be found.
	ErrMeasureMissing = zerr.New("measure not found for workflow step")

	// ErrScriptEvaluation is returned when a script engine fails to load or evaluate a script.
	ErrScriptEvaluation = zerr.New("failed to evaluate measure script")

	// ErrExecution is returned when a measure reports errors while running.
	ErrExecution = zerr.New("measure reported errors")

	// ErrUnknownArgument is returned when a step configures an argument the measure does not declare.
	ErrUnknownArgument = zerr.New("argument is not declared by measure")

	// ErrArgumentValue is returned when an argument value cannot be coerced to its declared type.
	ErrArgumentValue = zerr.New("invalid argument value")

	// ErrMissingArgument is returned when a required argument has neither a value nor a default.
	ErrMissingArgument = zerr.New("required argument has no value")

	// ErrStepTimeout is returned when a measure does not return before the step deadline.
	ErrStepTimeout = zerr.New("measure step timed out")

	// ErrStepOutOfOrder is returned when a step's measure type belongs to an earlier phase than the one running.
	ErrStepOutOfOrder = zerr.New("workflow step measure type is out of order")

	// ErrNoModel is returned when a phase requires a model or workspace that was never loaded.
	ErrNoModel = zerr.New("no model or workspace available for step")

	// ErrWorkflowReadFailed is returned when the workflow file cannot be read.
	ErrWorkflowReadFailed = zerr.New("failed to read workflow file")

	// ErrWorkflowParseFailed is returned when the workflow file cannot be parsed.
	ErrWorkflowParseFailed = zerr.New("failed to parse workflow file")

	// ErrWorkflowInvalid is returned when the workflow file fails validation.
	ErrWorkflowInvalid = zerr.New("invalid workflow file")

	// ErrMetadataWriteFailed is returned when measure metadata cannot be written back to disk.
	ErrMetadataWriteFailed = zerr.New("failed to write measure metadata")

	// ErrStoreCreateFailed is returned when a result directory cannot be created.
	ErrStoreCreateFailed = zerr.New("failed to create result directory")

	// ErrStoreReadFailed is returned when a stored result cannot be read.
	ErrStoreReadFailed = zerr.New("failed to read result")

	// ErrStoreUnmarshalFailed is returned when a stored result cannot be unmarshaled.
	ErrStoreUnmarshalFailed = zerr.New("failed to unmarshal result")

	// ErrStoreMarshalFailed is returned when a result cannot be marshaled.
	ErrStoreMarshalFailed = zerr.New("failed to marshal result")

	// ErrStoreWriteFailed is returned when a result cannot be written.
	ErrStoreWriteFailed = zerr.New("failed to write result")

	// ErrFileOpenFailed is returned when a file cannot be opened.
	ErrFileOpenFailed = zerr.New("failed to open file")

	// ErrFileHashFailed is returned when hashing a file fails.
	ErrFileHashFailed = zerr.New("failed to hash file content")

	// ErrWorkDirFailed is returned when a step working directory cannot be created or entered.
	ErrWorkDirFailed = zerr.New("failed to prepare step working directory")

	// ErrRunFailed is returned when a workflow run stops before completing every step.
	ErrRunFailed = zerr.New("workflow run failed")
)

var resolutionErrors = []error{
	ErrMeasureClassCount,
	ErrMissingScript,
	ErrUnsupportedLanguage,
	ErrIncompatibleArity,
	ErrUnknownMeasureType,
	ErrMeasureMissing,
	ErrScriptEvaluation,
}

// IsResolutionError reports whether err stems from a measure that could not be
// resolved into a runnable measure class.
func IsResolutionError(err error) bool {
	for _, target := range resolutionErrors {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

// IsExecutionError reports whether err stems from a measure reporting failure.
func IsExecutionError(err error) bool {
	return errors.Is(err, ErrExecution)
}

// IsAbsent reports whether err is a cache-layer error that callers treat as a missing value.
func IsAbsent(err error) bool {
	return errors.Is(err, ErrNotFound) || errors.Is(err, ErrValidation)
}
