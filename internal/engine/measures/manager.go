// Package measures owns the model, workspace and measure caches.
package measures

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"sync"

	"go.trai.ch/osw/internal/core/domain"
	"go.trai.ch/osw/internal/core/ports"
	"go.trai.ch/osw/internal/engine/cache"
	"go.trai.ch/osw/internal/engine/resolver"
)

// MeasureResolver loads and introspects measure scripts.
type MeasureResolver interface {
	Load(ctx context.Context, desc ports.MeasureDescriptor) (*resolver.Loaded, error)
	Resolve(ctx context.Context, desc ports.MeasureDescriptor) (*domain.MeasureInfo, error)
}

type infoKey struct {
	dir       string
	modelPath string
}

// Manager caches models, workspaces and measures by path. Every public
// operation holds one lock for its whole duration.
type Manager struct {
	modelLoader     ports.ModelLoader
	workspaceLoader ports.WorkspaceLoader
	translator      ports.Translator
	measureLoader   ports.MeasureLoader
	hasher          ports.Hasher
	resolver        MeasureResolver
	logger          ports.Logger

	mu         sync.Mutex
	models     *cache.ContentCache[*domain.ModelInfo]
	workspaces *cache.ContentCache[*domain.WorkspaceInfo]
	measures   *cache.ContentCache[ports.MeasureDescriptor]
	info       map[infoKey]*domain.MeasureInfo
	// forceResolve makes the next measure load re-resolve. Guarded by mu.
	forceResolve bool
}

// NewManager creates a Manager with empty caches.
func NewManager(
	modelLoader ports.ModelLoader,
	workspaceLoader ports.WorkspaceLoader,
	translator ports.Translator,
	measureLoader ports.MeasureLoader,
	hasher ports.Hasher,
	resolver MeasureResolver,
	logger ports.Logger,
) *Manager {
	m := &Manager{
		modelLoader:     modelLoader,
		workspaceLoader: workspaceLoader,
		translator:      translator,
		measureLoader:   measureLoader,
		hasher:          hasher,
		resolver:        resolver,
		logger:          logger,
		info:            make(map[infoKey]*domain.MeasureInfo),
	}

	m.models = cache.New(cache.Options[*domain.ModelInfo]{
		Checksum:  hasher.Checksum,
		Load:      m.loadModel,
		OnReplace: m.invalidateModelDependents,
		OnEvict:   m.invalidateModelDependents,
	})
	m.workspaces = cache.New(cache.Options[*domain.WorkspaceInfo]{
		Checksum: hasher.Checksum,
		Load:     m.loadWorkspace,
	})
	m.measures = cache.New(cache.Options[ports.MeasureDescriptor]{
		Checksum: hasher.Checksum,
		Load:     m.loadMeasure,
		Stale: func(e *cache.Entry[ports.MeasureDescriptor], checksum string) bool {
			if e.Checksum != checksum {
				return true
			}
			_, stale := Staleness(e.Value)
			return stale
		},
		OnReplace: m.invalidateMeasureInfo,
		OnEvict:   m.invalidateMeasureInfo,
	})
	return m
}

// GetModel returns the model at path together with its translated workspace.
// The returned objects are shared; callers clone before mutating.
func (m *Manager) GetModel(ctx context.Context, path string, force bool) (*domain.ModelInfo, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.getModel(ctx, path, force)
}

func (m *Manager) getModel(ctx context.Context, path string, force bool) (*domain.ModelInfo, error) {
	e, err := m.models.Get(ctx, filepath.Clean(path), force)
	if err != nil {
		return nil, err
	}
	e.Value.Checksum = e.Checksum
	return e.Value, nil
}

func (m *Manager) loadModel(ctx context.Context, path string) (*domain.ModelInfo, error) {
	model, err := m.modelLoader.LoadModel(path)
	if err != nil {
		return nil, err
	}
	ws, err := m.translator.TranslateModel(ctx, model)
	if err != nil {
		return nil, err
	}
	return &domain.ModelInfo{Model: model, Workspace: ws}, nil
}

// GetIdf returns the workspace at path. The returned workspace is shared;
// callers clone before mutating.
func (m *Manager) GetIdf(ctx context.Context, path string, force bool) (*domain.WorkspaceInfo, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	e, err := m.workspaces.Get(ctx, filepath.Clean(path), force)
	if err != nil {
		return nil, err
	}
	e.Value.Checksum = e.Checksum
	return e.Value, nil
}

func (m *Manager) loadWorkspace(_ context.Context, path string) (*domain.WorkspaceInfo, error) {
	ws, err := m.workspaceLoader.LoadWorkspace(path, domain.WorkspaceSchema)
	if err != nil {
		return nil, err
	}
	return &domain.WorkspaceInfo{Workspace: ws}, nil
}

// GetAndUpdateMeasure returns the measure in dir, re-resolving its script and
// rewriting its metadata when it is stale or force is set.
func (m *Manager) GetAndUpdateMeasure(ctx context.Context, dir string, force bool) (ports.MeasureDescriptor, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.getMeasure(ctx, dir, force)
}

func (m *Manager) getMeasure(ctx context.Context, dir string, force bool) (ports.MeasureDescriptor, error) {
	dir = filepath.Clean(dir)
	m.forceResolve = force
	defer func() { m.forceResolve = false }()

	e, err := m.measures.Get(ctx, dir, force)
	if err != nil {
		if domain.IsAbsent(err) {
			m.evictPath(dir)
		}
		return nil, err
	}
	return e.Value, nil
}

func (m *Manager) loadMeasure(ctx context.Context, dir string) (ports.MeasureDescriptor, error) {
	desc, err := m.measureLoader.Load(dir)
	if err != nil {
		return nil, err
	}

	reason, stale := Staleness(desc)
	if m.forceResolve {
		reason, stale = "forced", true
	}
	if !stale {
		return desc, nil
	}

	m.invalidateMeasureInfo(dir)
	m.logger.Info(fmt.Sprintf("updating measure %s (%s)", filepath.Base(dir), reason))

	info, err := m.resolver.Resolve(ctx, desc)
	if err != nil {
		return nil, err
	}
	m.info[infoKey{dir: dir}] = info.Clone()
	return desc, nil
}

// GetMeasureInfo returns the measure's info computed against the model at
// modelPath, or against an empty model when modelPath is empty.
func (m *Manager) GetMeasureInfo(ctx context.Context, dir, modelPath string) (*domain.MeasureInfo, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	dir = filepath.Clean(dir)
	desc, err := m.getMeasure(ctx, dir, false)
	if err != nil {
		return nil, err
	}

	var model *domain.ModelInfo
	if modelPath != "" {
		modelPath = filepath.Clean(modelPath)
		if model, err = m.getModel(ctx, modelPath, false); err != nil {
			return nil, err
		}
	}

	key := infoKey{dir: dir, modelPath: modelPath}
	if info, ok := m.info[key]; ok {
		return info.Clone(), nil
	}

	loaded, err := m.resolver.Load(ctx, desc)
	if err != nil {
		return nil, err
	}
	var info *domain.MeasureInfo
	if model != nil {
		info, err = loaded.Info(ctx, model.Model, model.Workspace)
	} else {
		info, err = loaded.Info(ctx, nil, nil)
	}
	if err != nil {
		return nil, err
	}

	m.info[key] = info.Clone()
	return info, nil
}

// ComputeArguments returns the measure's arguments computed against the model at modelPath.
func (m *Manager) ComputeArguments(ctx context.Context, dir, modelPath string) ([]domain.Argument, error) {
	info, err := m.GetMeasureInfo(ctx, dir, modelPath)
	if err != nil {
		return nil, err
	}
	return info.Arguments, nil
}

// Instantiate returns a fresh runnable instance of desc.
func (m *Manager) Instantiate(ctx context.Context, desc ports.MeasureDescriptor) (*resolver.Loaded, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.resolver.Load(ctx, desc)
}

// Invalidate drops every cache entry for path, or containing path.
func (m *Manager) Invalidate(path string) int {
	m.mu.Lock()
	defer m.mu.Unlock()

	path = filepath.Clean(path)
	dropped := 0
	for p := range m.models.Snapshot() {
		if covers(p, path) && m.models.Invalidate(p) {
			dropped++
		}
	}
	for p := range m.workspaces.Snapshot() {
		if covers(p, path) && m.workspaces.Invalidate(p) {
			dropped++
		}
	}
	for p := range m.measures.Snapshot() {
		if covers(p, path) && m.measures.Invalidate(p) {
			dropped++
		}
	}
	return dropped
}

// Reset clears every cache.
func (m *Manager) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.models.Reset()
	m.workspaces.Reset()
	m.measures.Reset()
	clear(m.info)
}

// Snapshot returns the cached paths and checksums per namespace.
func (m *Manager) Snapshot() domain.CacheSnapshot {
	m.mu.Lock()
	defer m.mu.Unlock()

	measures := m.measures.Snapshot()
	info := make(map[string]string, len(m.info))
	for key := range m.info {
		name := key.dir
		if key.modelPath != "" {
			name += "@" + key.modelPath
		}
		info[name] = measures[key.dir]
	}

	return domain.CacheSnapshot{
		domain.NamespaceModel:       m.models.Snapshot(),
		domain.NamespaceWorkspace:   m.workspaces.Snapshot(),
		domain.NamespaceMeasure:     measures,
		domain.NamespaceMeasureInfo: info,
	}
}

// invalidateMeasureInfo drops every info computed for the measure in dir.
func (m *Manager) invalidateMeasureInfo(dir string) {
	for key := range m.info {
		if key.dir == dir {
			delete(m.info, key)
		}
	}
}

// invalidateModelDependents drops every info computed against the model at modelPath.
func (m *Manager) invalidateModelDependents(modelPath string) {
	for key := range m.info {
		if key.modelPath == modelPath {
			delete(m.info, key)
		}
	}
}

// evictPath drops entries of every namespace cached under path.
func (m *Manager) evictPath(path string) {
	m.models.Invalidate(path)
	m.workspaces.Invalidate(path)
	m.measures.Invalidate(path)
}

// covers reports whether a change at changed affects the entry cached at cached.
func covers(cached, changed string) bool {
	sep := string(filepath.Separator)
	return cached == changed ||
		strings.HasPrefix(changed, cached+sep) ||
		strings.HasPrefix(cached, changed+sep)
}

