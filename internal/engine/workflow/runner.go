// Package workflow runs workflow steps in order against shared run state.
package workflow

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.trai.ch/osw/internal/core/domain"
	"go.trai.ch/osw/internal/core/ports"
	"go.trai.ch/osw/internal/engine/resolver"
	"go.trai.ch/zerr"
	"golang.org/x/sync/semaphore"
)

// StepStatus represents the status of a workflow step.
type StepStatus string

const (
	// StatusPending indicates the step is waiting to be executed.
	StatusPending StepStatus = "Pending"
	// StatusRunning indicates the step is currently executing.
	StatusRunning StepStatus = "Running"
	// StatusCompleted indicates the step finished successfully.
	StatusCompleted StepStatus = "Completed"
	// StatusFailed indicates the step failed.
	StatusFailed StepStatus = "Failed"
	// StatusSkipped indicates the step was marked to be skipped.
	StatusSkipped StepStatus = "Skipped"
)

// MeasureSource resolves measure directories into runnable measures.
type MeasureSource interface {
	GetAndUpdateMeasure(ctx context.Context, dir string, force bool) (ports.MeasureDescriptor, error)
	Instantiate(ctx context.Context, desc ports.MeasureDescriptor) (*resolver.Loaded, error)
}

// Options control a single RunSteps call.
type Options struct {
	// RunDir receives one directory per step.
	RunDir string
	// MeasurePaths are searched, in order, for relative measure directory names.
	MeasurePaths []string
	// ChangeDir makes each step's directory the process working directory while it runs.
	ChangeDir bool
	// StepTimeout bounds each measure call. Zero means no limit.
	StepTimeout time.Duration
	// OutputRequests collects reporting measure output requests instead of running them.
	OutputRequests bool
}

// Runner executes workflow steps one at a time.
type Runner struct {
	measures MeasureSource
	store    ports.ResultStore
	tracer   ports.Tracer

	// The process working directory is global, so runs never overlap.
	sem *semaphore.Weighted

	mu         sync.RWMutex
	stepStatus map[int]StepStatus
}

// NewRunner creates a new Runner.
func NewRunner(measures MeasureSource, store ports.ResultStore, tracer ports.Tracer) *Runner {
	return &Runner{
		measures:   measures,
		store:      store,
		tracer:     tracer,
		sem:        semaphore.NewWeighted(1),
		stepStatus: make(map[int]StepStatus),
	}
}

func (r *Runner) updateStatus(index int, status StepStatus) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.stepStatus[index] = status
}

// RunSteps runs the steps of one phase, starting at state.Cursor. The phase
// ends at the first step whose measure type belongs to a later phase.
func (r *Runner) RunSteps(
	ctx context.Context,
	measureType domain.MeasureType,
	steps []domain.WorkflowStep,
	state *domain.RunState,
	opts Options,
) (*domain.RunResult, error) {
	if err := r.sem.Acquire(ctx, 1); err != nil {
		return nil, err
	}
	defer r.sem.Release(1)

	result := &domain.RunResult{
		RunID:     uuid.NewString(),
		Status:    domain.RunSuccess,
		StartedAt: time.Now(),
	}
	defer func() { result.CompletedAt = time.Now() }()

	ctx, span := r.tracer.Start(ctx, "phase "+string(measureType),
		ports.WithAttribute("measure_type", string(measureType)),
		ports.WithAttribute("output_requests", opts.OutputRequests),
	)
	defer span.End()

	r.initStatuses(steps, state.Cursor)

	cursor := state.Cursor
	for cursor < len(steps) {
		if err := ctx.Err(); err != nil {
			result.Status = domain.RunAborted
			return result, err
		}

		step := steps[cursor]
		step.Index = cursor

		var md domain.MeasureMetadata
		desc, err := r.findMeasure(ctx, step, opts.MeasurePaths)
		if err == nil {
			md = desc.Metadata()
			if md.MeasureType.Phase() > measureType.Phase() {
				break
			}
			if md.MeasureType.Phase() < measureType.Phase() {
				err = zerr.With(zerr.With(zerr.Wrap(domain.ErrStepOutOfOrder,
					fmt.Sprintf("%s step %d runs after %s steps", md.MeasureType, step.Index, measureType)),
					"step", step.Index), "measure", step.MeasureDirName)
			}
		}

		var rec domain.StepRecord
		if err == nil {
			rec, err = r.runStep(ctx, step, desc, state, opts)
		} else {
			rec, err = r.failBeforeRun(step, md, opts, err)
		}

		cursor++
		if !opts.OutputRequests {
			state.Cursor = cursor
			if rec.WorkDir != "" {
				result.Steps = append(result.Steps, rec)
				if putErr := r.store.PutStep(rec); putErr != nil {
					err = errors.Join(err, putErr)
				}
			}
		}
		result.Cursor = cursor

		if err != nil {
			r.updateStatus(step.Index, StatusFailed)
			span.RecordError(err)
			result.Status = domain.RunFail
			return result, err
		}
		if rec.Result.Halted {
			result.Status = domain.RunHalted
			return result, nil
		}
	}
	return result, nil
}

// initStatuses marks every step from the cursor on as pending. Statuses of
// steps before the cursor belong to earlier phases of the same run.
func (r *Runner) initStatuses(steps []domain.WorkflowStep, from int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.stepStatus {
		if i >= from {
			delete(r.stepStatus, i)
		}
	}
	for i := from; i < len(steps); i++ {
		r.stepStatus[i] = StatusPending
	}
}

// failBeforeRun records a step that failed before its measure could be
// instantiated, with the same step directory a running step gets.
func (r *Runner) failBeforeRun(step domain.WorkflowStep, md domain.MeasureMetadata, opts Options, cause error) (domain.StepRecord, error) {
	rec := domain.StepRecord{
		Index:          step.Index,
		MeasureDirName: step.MeasureDirName,
		MeasureName:    md.Name,
		MeasureType:    md.MeasureType,
		Result:         failedResult(cause),
	}
	if opts.OutputRequests {
		return rec, cause
	}
	workDir := filepath.Join(opts.RunDir, domain.StepDirName(step.Index, step.MeasureDirName))
	if err := os.MkdirAll(workDir, domain.DirPerm); err != nil {
		return rec, errors.Join(cause, zerr.With(zerr.Wrap(domain.ErrWorkDirFailed, err.Error()), "path", workDir))
	}
	rec.WorkDir = workDir
	return rec, cause
}

func failedResult(err error) domain.StepResult {
	now := time.Now()
	return domain.StepResult{Value: domain.StepFail, Errors: []string{err.Error()}, StartedAt: now, CompletedAt: now}
}

// findMeasure resolves the step's measure directory against the measure paths.
func (r *Runner) findMeasure(ctx context.Context, step domain.WorkflowStep, measurePaths []string) (ports.MeasureDescriptor, error) {
	candidates := []string{step.MeasureDirName}
	if !filepath.IsAbs(step.MeasureDirName) {
		candidates = candidates[:0]
		for _, p := range measurePaths {
			candidates = append(candidates, filepath.Join(p, step.MeasureDirName))
		}
		if len(candidates) == 0 {
			candidates = append(candidates, step.MeasureDirName)
		}
	}

	var lastErr error
	for _, dir := range candidates {
		desc, err := r.measures.GetAndUpdateMeasure(ctx, dir, false)
		if err == nil {
			return desc, nil
		}
		if !errors.Is(err, domain.ErrNotFound) {
			return nil, zerr.With(zerr.With(err, "step", step.Index), "measure", step.MeasureDirName)
		}
		lastErr = err
	}
	return nil, zerr.With(zerr.With(zerr.With(
		zerr.Wrap(domain.ErrMeasureMissing, fmt.Sprintf("measure %q not found", step.MeasureDirName)),
		"step", step.Index), "measure", step.MeasureDirName), "cause", fmt.Sprint(lastErr))
}

// runStep prepares the step directory, binds arguments and executes the
// measure. The working directory is restored on every exit path.
func (r *Runner) runStep(
	ctx context.Context,
	step domain.WorkflowStep,
	desc ports.MeasureDescriptor,
	state *domain.RunState,
	opts Options,
) (domain.StepRecord, error) {
	md := desc.Metadata()
	rec := domain.StepRecord{
		Index:          step.Index,
		MeasureDirName: step.MeasureDirName,
		MeasureName:    md.Name,
		MeasureType:    md.MeasureType,
	}

	ctx, span := r.tracer.Start(ctx, "step "+step.MeasureDirName,
		ports.WithAttribute("step", step.Index),
		ports.WithAttribute("measure", step.MeasureDirName),
		ports.WithAttribute("measure_type", string(md.MeasureType)),
	)
	defer span.End()

	workDir := filepath.Join(opts.RunDir, domain.StepDirName(step.Index, step.MeasureDirName))
	if !opts.OutputRequests {
		if err := os.MkdirAll(workDir, domain.DirPerm); err != nil {
			return rec, zerr.With(zerr.Wrap(domain.ErrWorkDirFailed, err.Error()), "path", workDir)
		}
		rec.WorkDir = workDir
		if opts.ChangeDir {
			restore, err := enterDir(workDir)
			if err != nil {
				rec.Result = failedResult(err)
				return rec, err
			}
			defer restore()
		}
	}

	if step.Skip {
		now := time.Now()
		rec.Result = domain.StepResult{Value: domain.StepSkip, StartedAt: now, CompletedAt: now}
		r.updateStatus(step.Index, StatusSkipped)
		return rec, nil
	}

	r.updateStatus(step.Index, StatusRunning)

	loaded, err := r.measures.Instantiate(ctx, desc)
	if err != nil {
		rec.Result = failedResult(err)
		return rec, zerr.With(zerr.With(err, "step", step.Index), "measure", step.MeasureDirName)
	}
	rec.MeasureName = loaded.Name()
	rec.MeasureType = loaded.Type

	args, err := bindArguments(ctx, loaded, step, state)
	if err != nil {
		rec.Result = failedResult(err)
		return rec, zerr.With(zerr.With(err, "step", step.Index), "measure", rec.MeasureName)
	}

	recorder := domain.NewRecorder(workDir, state.SQLPath)
	ok, err := r.invoke(ctx, loaded, state, recorder, args, opts)
	if err != nil {
		span.RecordError(err)
		recorder.RegisterError(err.Error())
		rec.Result = recorder.Result()
		return rec, zerr.With(zerr.With(err, "step", step.Index), "measure", rec.MeasureName)
	}
	if !ok {
		recorder.Fail()
	}

	rec.Result = recorder.Result()
	if !rec.Result.Success() {
		err := zerr.With(zerr.With(zerr.With(
			zerr.Wrap(domain.ErrExecution, fmt.Sprintf("step %d (%s) failed", step.Index, rec.MeasureName)),
			"step", step.Index), "measure", rec.MeasureName), "errors", slices.Clone(rec.Result.Errors))
		span.RecordError(err)
		return rec, err
	}

	r.updateStatus(step.Index, StatusCompleted)
	return rec, nil
}

// bindArguments computes the measure's arguments against copies of the run
// state and applies the step's configured values.
func bindArguments(ctx context.Context, loaded *resolver.Loaded, step domain.WorkflowStep, state *domain.RunState) (domain.ArgumentMap, error) {
	defs, err := loaded.Arguments(ctx, state.Model, state.Workspace)
	if err != nil {
		return nil, err
	}
	bound := domain.NewArgumentMap(defs)

	names := make([]string, 0, len(step.Arguments))
	for name := range step.Arguments {
		names = append(names, name)
	}
	slices.Sort(names)

	for _, name := range names {
		arg, ok := bound[name]
		if !ok {
			return nil, zerr.With(zerr.Wrap(domain.ErrUnknownArgument, fmt.Sprintf("argument %q", name)), "argument", name)
		}
		if err := arg.SetValue(step.Arguments[name]); err != nil {
			return nil, err
		}
		bound[name] = arg
	}

	for _, arg := range defs {
		if arg.Required && bound[arg.Name].Effective() == nil {
			return nil, zerr.With(zerr.Wrap(domain.ErrMissingArgument, fmt.Sprintf("argument %q", arg.Name)), "argument", arg.Name)
		}
	}
	return bound, nil
}

type outcome struct {
	ok  bool
	err error
}

// invoke calls the measure under the step deadline. A measure that does not
// return in time is abandoned.
func (r *Runner) invoke(
	ctx context.Context,
	loaded *resolver.Loaded,
	state *domain.RunState,
	recorder *domain.Recorder,
	args domain.ArgumentMap,
	opts Options,
) (bool, error) {
	call, err := measureCall(loaded, state, recorder, args, opts.OutputRequests)
	if err != nil {
		return false, err
	}

	if opts.StepTimeout <= 0 {
		out := guarded(ctx, call)
		return out.ok, out.err
	}

	runCtx, cancel := context.WithTimeout(ctx, opts.StepTimeout)
	defer cancel()

	done := make(chan outcome, 1)
	go func() {
		done <- guarded(runCtx, call)
	}()

	select {
	case out := <-done:
		if out.err != nil && errors.Is(out.err, context.DeadlineExceeded) && ctx.Err() == nil {
			return false, timeoutError(opts.StepTimeout)
		}
		return out.ok, out.err
	case <-runCtx.Done():
		if ctx.Err() != nil {
			return false, ctx.Err()
		}
		return false, timeoutError(opts.StepTimeout)
	}
}

// guarded runs call and turns a measure panic into an error.
func guarded(ctx context.Context, call func(context.Context) (bool, error)) (out outcome) {
	defer func() {
		if p := recover(); p != nil {
			out = outcome{err: fmt.Errorf("measure panicked: %v", p)}
		}
	}()
	ok, err := call(ctx)
	return outcome{ok: ok, err: err}
}

func timeoutError(d time.Duration) error {
	return zerr.With(zerr.Wrap(domain.ErrStepTimeout, fmt.Sprintf("no result after %s", d)), "timeout", d.String())
}

func measureCall(
	loaded *resolver.Loaded,
	state *domain.RunState,
	recorder *domain.Recorder,
	args domain.ArgumentMap,
	outputRequests bool,
) (func(context.Context) (bool, error), error) {
	switch loaded.Type {
	case domain.ModelMeasure:
		if state.Model == nil {
			return nil, zerr.Wrap(domain.ErrNoModel, "model measures need a model")
		}
		return func(ctx context.Context) (bool, error) {
			return loaded.Model.Run(ctx, state.Model, recorder, args)
		}, nil
	case domain.EnergyPlusMeasure:
		if state.Workspace == nil {
			return nil, zerr.Wrap(domain.ErrNoModel, "workspace measures need a workspace")
		}
		return func(ctx context.Context) (bool, error) {
			return loaded.EnergyPlus.Run(ctx, state.Workspace, recorder, args)
		}, nil
	default:
		if !outputRequests {
			return func(ctx context.Context) (bool, error) {
				return loaded.Reporting.Run(ctx, recorder, args)
			}, nil
		}
		if state.Workspace == nil {
			state.Workspace = domain.NewWorkspace()
		}
		return func(ctx context.Context) (bool, error) {
			objs, err := loaded.Reporting.OutputRequests(ctx, recorder, args)
			if err != nil {
				return false, err
			}
			state.Workspace.Merge(objs)
			return true, nil
		}, nil
	}
}
