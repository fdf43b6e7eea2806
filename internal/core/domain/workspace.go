package domain

import (
	"slices"
	"strings"
)

// WorkspaceVersion is the document version written for new workspaces.
const WorkspaceVersion = "23.2"

// WorkspaceSchema names the schema simulation-input workspaces are read against.
const WorkspaceSchema = "Energy+"

// WorkspaceObject is a single simulation-input object: a type and its ordered fields.
type WorkspaceObject struct {
	Type   string   `yaml:"type" json:"type"`
	Fields []string `yaml:"fields,omitempty" json:"fields,omitempty"`
}

// Equal reports whether two objects describe the same simulation input.
// Types compare case-insensitively, fields exactly.
func (o WorkspaceObject) Equal(other WorkspaceObject) bool {
	return strings.EqualFold(o.Type, other.Type) && slices.Equal(o.Fields, other.Fields)
}

// Name returns the first field, which names most simulation-input objects.
func (o WorkspaceObject) Name() string {
	if len(o.Fields) == 0 {
		return ""
	}
	return o.Fields[0]
}

// Workspace is the in-memory simulation-input graph. Measures mutate it in place.
type Workspace struct {
	Version string            `yaml:"version" json:"version"`
	Objects []WorkspaceObject `yaml:"objects" json:"objects"`
}

// NewWorkspace returns an empty workspace.
func NewWorkspace() *Workspace {
	return &Workspace{Version: WorkspaceVersion}
}

// Clone returns a deep copy of the workspace.
func (w *Workspace) Clone() *Workspace {
	if w == nil {
		return nil
	}
	out := &Workspace{Version: w.Version, Objects: make([]WorkspaceObject, len(w.Objects))}
	for i, obj := range w.Objects {
		out.Objects[i] = WorkspaceObject{Type: obj.Type, Fields: slices.Clone(obj.Fields)}
	}
	return out
}

// Len returns the number of objects in the workspace.
func (w *Workspace) Len() int {
	return len(w.Objects)
}

// AddObject appends obj.
func (w *Workspace) AddObject(obj WorkspaceObject) {
	w.Objects = append(w.Objects, WorkspaceObject{Type: obj.Type, Fields: slices.Clone(obj.Fields)})
}

// Contains reports whether an equal object is already present.
func (w *Workspace) Contains(obj WorkspaceObject) bool {
	return slices.ContainsFunc(w.Objects, obj.Equal)
}

// ObjectsOfType returns copies of all objects whose type matches typ, case-insensitively.
func (w *Workspace) ObjectsOfType(typ string) []WorkspaceObject {
	var out []WorkspaceObject
	for _, obj := range w.Objects {
		if strings.EqualFold(obj.Type, typ) {
			out = append(out, WorkspaceObject{Type: obj.Type, Fields: slices.Clone(obj.Fields)})
		}
	}
	return out
}

// RemoveObjectsOfType deletes every object of the given type and returns how many were removed.
func (w *Workspace) RemoveObjectsOfType(typ string) int {
	before := len(w.Objects)
	w.Objects = slices.DeleteFunc(w.Objects, func(o WorkspaceObject) bool {
		return strings.EqualFold(o.Type, typ)
	})
	return before - len(w.Objects)
}

// Merge adds every object not already present and returns the number added.
func (w *Workspace) Merge(objs []WorkspaceObject) int {
	added := 0
	for _, obj := range objs {
		if w.Contains(obj) {
			continue
		}
		w.AddObject(obj)
		added++
	}
	return added
}
