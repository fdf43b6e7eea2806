package domain

import (
	"maps"
	"slices"
)

// ModelInfo is a cached model together with its translated workspace.
type ModelInfo struct {
	Model     *Model
	Workspace *Workspace
	Checksum  string
}

// WorkspaceInfo is a cached workspace.
type WorkspaceInfo struct {
	Workspace *Workspace
	Checksum  string
}

// CacheNamespace names one of the caches owned by the measure manager.
type CacheNamespace string

// Cache namespaces.
const (
	NamespaceModel       CacheNamespace = "models"
	NamespaceWorkspace   CacheNamespace = "workspaces"
	NamespaceMeasure     CacheNamespace = "measures"
	NamespaceMeasureInfo CacheNamespace = "measure_info"
)

// CacheSnapshot is a read-only view of cache contents: path to checksum per namespace.
type CacheSnapshot map[CacheNamespace]map[string]string

// Paths returns the sorted paths cached in ns.
func (s CacheSnapshot) Paths(ns CacheNamespace) []string {
	return slices.Sorted(maps.Keys(s[ns]))
}

func sortedKeys[V any](m map[string]V) []string {
	return slices.Sorted(maps.Keys(m))
}
