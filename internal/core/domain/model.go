package domain

import (
	"maps"
	"slices"
	"strings"

	"github.com/google/uuid"
)

// ModelVersion is the document version written for new models.
const ModelVersion = "3.9.0"

// ModelObject is a single object of the building model graph.
type ModelObject struct {
	Handle     string            `yaml:"handle" json:"handle" validate:"required"`
	Type       string            `yaml:"type" json:"type" validate:"required"`
	Name       string            `yaml:"name,omitempty" json:"name,omitempty"`
	Attributes map[string]string `yaml:"attributes,omitempty" json:"attributes,omitempty"`
}

// Model is the in-memory building model. Measures mutate it in place.
type Model struct {
	Version string        `yaml:"version" json:"version" validate:"required"`
	Objects []ModelObject `yaml:"objects" json:"objects" validate:"dive"`
}

// NewModel returns an empty model.
func NewModel() *Model {
	return &Model{Version: ModelVersion}
}

// Clone returns a deep copy of the model.
func (m *Model) Clone() *Model {
	if m == nil {
		return nil
	}
	out := &Model{Version: m.Version, Objects: make([]ModelObject, len(m.Objects))}
	for i, obj := range m.Objects {
		obj.Attributes = maps.Clone(obj.Attributes)
		out.Objects[i] = obj
	}
	return out
}

// Len returns the number of objects in the model.
func (m *Model) Len() int {
	return len(m.Objects)
}

// AddObject appends a new object and returns its handle.
func (m *Model) AddObject(typ, name string) string {
	handle := "{" + uuid.NewString() + "}"
	m.Objects = append(m.Objects, ModelObject{Handle: handle, Type: typ, Name: name})
	return handle
}

// Object returns the object with the given handle.
func (m *Model) Object(handle string) (ModelObject, bool) {
	idx := m.index(handle)
	if idx < 0 {
		return ModelObject{}, false
	}
	return m.Objects[idx], true
}

// ObjectsOfType returns copies of all objects whose type matches typ, case-insensitively.
func (m *Model) ObjectsOfType(typ string) []ModelObject {
	var out []ModelObject
	for _, obj := range m.Objects {
		if strings.EqualFold(obj.Type, typ) {
			obj.Attributes = maps.Clone(obj.Attributes)
			out = append(out, obj)
		}
	}
	return out
}

// SetName renames the object with the given handle.
func (m *Model) SetName(handle, name string) bool {
	idx := m.index(handle)
	if idx < 0 {
		return false
	}
	m.Objects[idx].Name = name
	return true
}

// SetAttribute sets an attribute on the object with the given handle.
func (m *Model) SetAttribute(handle, key, value string) bool {
	idx := m.index(handle)
	if idx < 0 {
		return false
	}
	if m.Objects[idx].Attributes == nil {
		m.Objects[idx].Attributes = make(map[string]string)
	}
	m.Objects[idx].Attributes[key] = value
	return true
}

// RemoveObject deletes the object with the given handle.
func (m *Model) RemoveObject(handle string) bool {
	idx := m.index(handle)
	if idx < 0 {
		return false
	}
	m.Objects = slices.Delete(m.Objects, idx, idx+1)
	return true
}

func (m *Model) index(handle string) int {
	return slices.IndexFunc(m.Objects, func(o ModelObject) bool { return o.Handle == handle })
}
