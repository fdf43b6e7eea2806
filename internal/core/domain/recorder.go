package domain

import (
	"fmt"
	"sync"
	"time"
)

// Recorder collects the messages and values a measure reports while it runs.
// It is handed to measures as their runner.
type Recorder struct {
	mu      sync.Mutex
	workDir string
	sqlPath string
	result  StepResult
	na      bool
}

// NewRecorder creates a recorder for a step running in workDir. sqlPath is the
// simulation output of the last simulation, if any.
func NewRecorder(workDir, sqlPath string) *Recorder {
	return &Recorder{
		workDir: workDir,
		sqlPath: sqlPath,
		result:  StepResult{Value: StepSuccess, StartedAt: time.Now()},
	}
}

// WorkDir returns the step's working directory.
func (r *Recorder) WorkDir() string {
	return r.workDir
}

// LastSQLFile returns the path of the last simulation output.
func (r *Recorder) LastSQLFile() (string, bool) {
	return r.sqlPath, r.sqlPath != ""
}

// RegisterError records an error. It always returns false so measures can
// return its result directly.
func (r *Recorder) RegisterError(msg string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.result.Errors = append(r.result.Errors, msg)
	return false
}

// RegisterWarning records a warning.
func (r *Recorder) RegisterWarning(msg string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.result.Warnings = append(r.result.Warnings, msg)
}

// RegisterInfo records an informational message.
func (r *Recorder) RegisterInfo(msg string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.result.Info = append(r.result.Info, msg)
}

// RegisterInitialCondition records the condition before the measure applied its change.
func (r *Recorder) RegisterInitialCondition(msg string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.result.InitialCondition = msg
}

// RegisterFinalCondition records the condition after the measure applied its change.
func (r *Recorder) RegisterFinalCondition(msg string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.result.FinalCondition = msg
}

// RegisterAsNotApplicable marks the step as not applicable to the model.
func (r *Recorder) RegisterAsNotApplicable(msg string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.na = true
	if msg != "" {
		r.result.Info = append(r.result.Info, msg)
	}
}

// RegisterValue records a named output value.
func (r *Recorder) RegisterValue(name string, value any) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.result.Values = append(r.result.Values, RegisteredValue{Name: name, Value: value})
}

// Halt stops the workflow after this step completes.
func (r *Recorder) Halt() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.result.Halted = true
}

// ValidateUserArguments registers an error for every required argument that
// has neither a value nor a default. It returns whether all were satisfied.
func (r *Recorder) ValidateUserArguments(args ArgumentMap) bool {
	ok := true
	for _, name := range sortedKeys(args) {
		arg := args[name]
		if arg.Required && arg.Effective() == nil {
			r.RegisterError(fmt.Sprintf("required argument %q has no value", name))
			ok = false
		}
	}
	return ok
}

// Fail records that the measure returned false without registering an error.
func (r *Recorder) Fail() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.result.Errors) == 0 {
		r.result.Errors = append(r.result.Errors, "measure returned false")
	}
}

// Result returns a snapshot of the recorded result.
func (r *Recorder) Result() StepResult {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := r.result.Clone()
	switch {
	case len(out.Errors) > 0:
		out.Value = StepFail
	case r.na:
		out.Value = StepNA
	default:
		out.Value = StepSuccess
	}
	out.CompletedAt = time.Now()
	return out
}
