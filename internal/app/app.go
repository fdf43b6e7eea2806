// Package app implements the application layer for osw.
package app

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.trai.ch/osw/internal/adapters/watcher" //nolint:depguard // Wired in app layer
	"go.trai.ch/osw/internal/core/domain"
	"go.trai.ch/osw/internal/core/ports"
	"go.trai.ch/osw/internal/engine/measures"
	"go.trai.ch/osw/internal/engine/workflow"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// RunOptions control a single workflow run.
type RunOptions struct {
	// Overlay adjusts the loaded workflow before it runs.
	Overlay func(wf *domain.Workflow)
	// StepTimeout bounds each measure call. Zero means no limit.
	StepTimeout time.Duration
	// ChangeDir runs each step inside its own directory.
	ChangeDir bool
	// ForceReload bypasses cached entries for the seed file.
	ForceReload bool
}

// App represents the main application logic.
type App struct {
	workflows  ports.WorkflowLoader
	manager    *measures.Manager
	runner     *workflow.Runner
	store      ports.ResultStore
	models     ports.ModelLoader
	workspaces ports.WorkspaceLoader
	translator ports.Translator
	tracer     ports.Tracer
	logger     ports.Logger
	newWatcher watcher.Factory
}

// New creates a new App instance.
func New(
	workflows ports.WorkflowLoader,
	manager *measures.Manager,
	runner *workflow.Runner,
	store ports.ResultStore,
	models ports.ModelLoader,
	workspaces ports.WorkspaceLoader,
	translator ports.Translator,
	tracer ports.Tracer,
	logger ports.Logger,
	newWatcher watcher.Factory,
) *App {
	return &App{
		workflows:  workflows,
		manager:    manager,
		runner:     runner,
		store:      store,
		models:     models,
		workspaces: workspaces,
		translator: translator,
		tracer:     tracer,
		logger:     logger,
		newWatcher: newWatcher,
	}
}

// LoadWorkflow reads the workflow at path and applies the overlay.
func (a *App) LoadWorkflow(path string, opts RunOptions) (*domain.Workflow, error) {
	wf, err := a.workflows.Load(path)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to load workflow")
	}
	if opts.Overlay != nil {
		opts.Overlay(wf)
	}
	return wf, nil
}

// Run executes the workflow at path and writes its outputs into the run directory.
// A returned result is always persisted, including for failed runs.
func (a *App) Run(ctx context.Context, path string, opts RunOptions) (*domain.RunResult, error) {
	wf, err := a.LoadWorkflow(path, opts)
	if err != nil {
		return nil, err
	}
	return a.RunWorkflow(ctx, wf, opts)
}

// RunWorkflow executes an already loaded workflow.
func (a *App) RunWorkflow(ctx context.Context, wf *domain.Workflow, opts RunOptions) (*domain.RunResult, error) {
	ctx, span := a.tracer.Start(ctx, "run",
		ports.WithAttribute("workflow", wf.Path),
		ports.WithAttribute("steps", len(wf.Steps)),
	)
	defer span.End()
	a.tracer.EmitPlan(ctx, stepNames(wf.Steps))

	result := &domain.RunResult{
		RunID:     uuid.NewString(),
		Status:    domain.RunSuccess,
		StartedAt: time.Now(),
	}

	if err := os.MkdirAll(wf.RunDirectory, domain.DirPerm); err != nil {
		return nil, zerr.With(zerr.Wrap(domain.ErrWorkDirFailed, err.Error()), "path", wf.RunDirectory)
	}

	state, runErr := a.runPhases(ctx, wf, opts, result)
	result.CompletedAt = time.Now()
	if runErr != nil && result.Status == domain.RunSuccess {
		result.Status = domain.RunFail
	}
	if errors.Is(runErr, context.Canceled) {
		result.Status = domain.RunAborted
	}
	span.SetAttribute("status", string(result.Status))

	if err := a.writeOutputs(wf.RunDirectory, state, result); err != nil {
		runErr = errors.Join(runErr, err)
	}

	if runErr != nil {
		span.RecordError(runErr)
		return result, errors.Join(domain.ErrRunFailed, runErr)
	}
	return result, nil
}

func (a *App) runPhases(
	ctx context.Context,
	wf *domain.Workflow,
	opts RunOptions,
	result *domain.RunResult,
) (*domain.RunState, error) {
	seed, err := a.manager.GetModel(ctx, wf.SeedFile, opts.ForceReload)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to load seed model"), "seed_file", wf.SeedFile)
	}

	state := &domain.RunState{Model: seed.Model.Clone()}
	stepOpts := workflow.Options{
		RunDir:       wf.RunDirectory,
		MeasurePaths: wf.MeasurePaths,
		ChangeDir:    opts.ChangeDir,
		StepTimeout:  opts.StepTimeout,
	}

	phase := func(measureType domain.MeasureType) (bool, error) {
		res, err := a.runner.RunSteps(ctx, measureType, wf.Steps, state, stepOpts)
		result.Append(res)
		if err != nil {
			return false, err
		}
		return result.Status == domain.RunSuccess, nil
	}

	if ok, err := phase(domain.ModelMeasure); !ok {
		return state, err
	}

	state.Workspace, err = a.translator.TranslateModel(ctx, state.Model)
	if err != nil {
		return state, zerr.Wrap(err, "failed to translate model")
	}

	if ok, err := phase(domain.EnergyPlusMeasure); !ok {
		return state, err
	}

	requests := stepOpts
	requests.OutputRequests = true
	if _, err := a.runner.RunSteps(ctx, domain.ReportingMeasure, wf.Steps, state, requests); err != nil {
		return state, err
	}

	_, err = phase(domain.ReportingMeasure)
	return state, err
}

func (a *App) writeOutputs(runDir string, state *domain.RunState, result *domain.RunResult) error {
	var errs []error
	if state != nil && state.Model != nil {
		errs = append(errs, a.models.SaveModel(filepath.Join(runDir, domain.OutputModelFileName), state.Model))
	}
	if state != nil && state.Workspace != nil {
		errs = append(errs, a.workspaces.SaveWorkspace(filepath.Join(runDir, domain.OutputWorkspaceFileName), state.Workspace))
	}
	errs = append(errs, a.store.PutRun(runDir, result))
	return errors.Join(errs...)
}

func stepNames(steps []domain.WorkflowStep) []string {
	names := make([]string, len(steps))
	for i, step := range steps {
		names[i] = step.MeasureDirName
		if step.Name != "" {
			names[i] = step.Name
		}
	}
	return names
}

// MeasureInfo computes the info of the measure in dir, against the model at
// modelPath when one is given.
func (a *App) MeasureInfo(ctx context.Context, dir, modelPath string) (*domain.MeasureInfo, error) {
	info, err := a.manager.GetMeasureInfo(ctx, absPath(dir), absPath(modelPath))
	if err != nil {
		return nil, zerr.Wrap(err, "failed to compute measure info")
	}
	return info, nil
}

// UpdateMeasure re-resolves the measure in dir and saves its metadata.
func (a *App) UpdateMeasure(ctx context.Context, dir string) (domain.MeasureMetadata, error) {
	desc, err := a.manager.GetAndUpdateMeasure(ctx, absPath(dir), true)
	if err != nil {
		return domain.MeasureMetadata{}, zerr.Wrap(err, "failed to update measure")
	}
	a.logger.Info("updated " + desc.Directory())
	return desc.Metadata(), nil
}

// CacheSnapshot warms the caches with the inputs of the workflow at path and
// returns what they hold. Inputs that fail to load are left out.
func (a *App) CacheSnapshot(ctx context.Context, path string, opts RunOptions) (domain.CacheSnapshot, error) {
	wf, err := a.LoadWorkflow(path, opts)
	if err != nil {
		return domain.CacheSnapshot{}, err
	}
	a.warm(ctx, wf)
	return a.manager.Snapshot(), nil
}

// ResetCache drops every cached entry.
func (a *App) ResetCache() {
	a.manager.Reset()
}

func (a *App) warm(ctx context.Context, wf *domain.Workflow) {
	if _, err := a.manager.GetModel(ctx, wf.SeedFile, false); err != nil {
		a.logger.Warn("seed model not cached: " + err.Error())
	}
	for _, step := range wf.Steps {
		for _, dir := range candidateDirs(step.MeasureDirName, wf.MeasurePaths) {
			if _, err := a.manager.GetAndUpdateMeasure(ctx, dir, false); err == nil {
				break
			}
		}
	}
}

func candidateDirs(name string, measurePaths []string) []string {
	if filepath.IsAbs(name) {
		return []string{name}
	}
	dirs := make([]string, 0, len(measurePaths))
	for _, root := range measurePaths {
		dirs = append(dirs, filepath.Join(root, name))
	}
	return dirs
}

func absPath(path string) string {
	if path == "" {
		return ""
	}
	if abs, err := filepath.Abs(path); err == nil {
		return abs
	}
	return path
}

// WatchOptions control watch mode.
type WatchOptions struct {
	RunOptions
	// Debounce is the quiet period after the last file event before a re-run.
	Debounce time.Duration
	// OnResult receives the outcome of every run, including the first.
	OnResult func(*domain.RunResult, error)
}

// Watch runs the workflow, then re-runs it whenever one of its inputs changes,
// until ctx is cancelled. Changed paths are evicted from the caches first so
// unchanged inputs are served from cache.
func (a *App) Watch(ctx context.Context, path string, opts WatchOptions) error {
	report := func(res *domain.RunResult, err error) {
		if opts.OnResult != nil {
			opts.OnResult(res, err)
		}
	}

	wf, err := a.LoadWorkflow(path, opts.RunOptions)
	if err != nil {
		return err
	}
	report(a.RunWorkflow(ctx, wf, opts.RunOptions))

	w, err := a.newWatcher()
	if err != nil {
		return zerr.Wrap(err, "failed to create watcher")
	}
	defer func() { _ = w.Stop() }()

	g, ctx := errgroup.WithContext(ctx)
	if err := w.Start(ctx, watchRoots(wf)...); err != nil {
		return zerr.Wrap(err, "failed to start watcher")
	}

	trigger := make(chan struct{}, 1)
	window := opts.Debounce
	if window <= 0 {
		window = watcher.DefaultDebounceWindow
	}
	debouncer := watcher.NewDebouncer(window, func(paths []string) {
		if a.invalidate(wf, paths) {
			select {
			case trigger <- struct{}{}:
			default:
			}
		}
	})
	defer debouncer.Stop()

	g.Go(func() error {
		for event := range w.Events() {
			if isUnder(event.Path, wf.RunDirectory) {
				continue
			}
			debouncer.Add(event.Path)
		}
		return nil
	})
	g.Go(func() error {
		for {
			select {
			case <-ctx.Done():
				return nil
			case <-trigger:
			}
			next, err := a.LoadWorkflow(path, opts.RunOptions)
			if err != nil {
				report(nil, err)
				continue
			}
			wf = next
			report(a.RunWorkflow(ctx, wf, opts.RunOptions))
		}
	})
	return g.Wait()
}

// invalidate evicts cache entries for paths and reports whether the workflow
// should run again.
func (a *App) invalidate(wf *domain.Workflow, paths []string) bool {
	rerun := false
	for _, p := range paths {
		if n := a.manager.Invalidate(p); n > 0 {
			a.logger.Info("changed " + p)
			rerun = true
			continue
		}
		if p == wf.Path || p == wf.SeedFile {
			rerun = true
			continue
		}
		for _, root := range wf.MeasurePaths {
			if isUnder(p, root) {
				rerun = true
			}
		}
	}
	return rerun
}

func watchRoots(wf *domain.Workflow) []string {
	roots := []string{wf.Path, wf.SeedFile}
	for _, root := range wf.MeasurePaths {
		if _, err := os.Stat(root); err == nil {
			roots = append(roots, root)
		}
	}
	return roots
}

func isUnder(path, root string) bool {
	if root == "" {
		return false
	}
	rel, err := filepath.Rel(root, path)
	return err == nil && rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}
