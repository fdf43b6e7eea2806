package domain

import (
	"slices"
	"time"
)

// StepValue is the outcome of a single workflow step.
type StepValue string

// Step outcomes.
const (
	StepSuccess StepValue = "Success"
	StepFail    StepValue = "Fail"
	StepNA      StepValue = "NA"
	StepSkip    StepValue = "Skip"
)

// RegisteredValue is a named value a measure reported while running.
type RegisteredValue struct {
	Name  string `json:"name"`
	Value any    `json:"value"`
}

// StepResult is the structured result a measure leaves behind.
type StepResult struct {
	Value            StepValue         `json:"value"`
	Errors           []string          `json:"errors,omitempty"`
	Warnings         []string          `json:"warnings,omitempty"`
	Info             []string          `json:"info,omitempty"`
	InitialCondition string            `json:"initial_condition,omitempty"`
	FinalCondition   string            `json:"final_condition,omitempty"`
	Values           []RegisteredValue `json:"values,omitempty"`
	StartedAt        time.Time         `json:"started_at"`
	CompletedAt      time.Time         `json:"completed_at"`
	Halted           bool              `json:"halted,omitempty"`
}

// Success reports whether the step completed without errors.
func (r StepResult) Success() bool {
	return len(r.Errors) == 0 && (r.Value == StepSuccess || r.Value == StepNA || r.Value == StepSkip)
}

// Clone returns a deep copy of the result.
func (r StepResult) Clone() StepResult {
	out := r
	out.Errors = slices.Clone(r.Errors)
	out.Warnings = slices.Clone(r.Warnings)
	out.Info = slices.Clone(r.Info)
	out.Values = slices.Clone(r.Values)
	return out
}

// RunStatus is the terminal state of a workflow run.
type RunStatus string

// Run states.
const (
	RunSuccess RunStatus = "Success"
	RunFail    RunStatus = "Fail"
	RunHalted  RunStatus = "Halted"
	RunAborted RunStatus = "Aborted"
)

// StepRecord is a step result together with where and what it ran.
type StepRecord struct {
	Index          int         `json:"index"`
	MeasureDirName string      `json:"measure_dir_name"`
	MeasureName    string      `json:"measure_name,omitempty"`
	MeasureType    MeasureType `json:"measure_type,omitempty"`
	WorkDir        string      `json:"work_dir"`
	Result         StepResult  `json:"result"`
}

// RunResult aggregates the step records of a run.
type RunResult struct {
	RunID       string       `json:"run_id"`
	Status      RunStatus    `json:"status"`
	Cursor      int          `json:"cursor"`
	Steps       []StepRecord `json:"steps"`
	StartedAt   time.Time    `json:"started_at"`
	CompletedAt time.Time    `json:"completed_at"`
}

// Append adds records and adopts the status of a later run segment.
func (r *RunResult) Append(other *RunResult) {
	if other == nil {
		return
	}
	r.Steps = append(r.Steps, other.Steps...)
	r.Cursor = other.Cursor
	if other.Status != RunSuccess {
		r.Status = other.Status
	}
	if other.CompletedAt.After(r.CompletedAt) {
		r.CompletedAt = other.CompletedAt
	}
}
