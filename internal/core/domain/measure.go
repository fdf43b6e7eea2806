package domain

import (
	"slices"
	"strings"
)

// MeasureType classifies a measure by the domain object it operates on.
type MeasureType string

const (
	// ModelMeasure measures operate on the building model.
	ModelMeasure MeasureType = "ModelMeasure"
	// EnergyPlusMeasure measures operate on the translated workspace.
	EnergyPlusMeasure MeasureType = "EnergyPlusMeasure"
	// ReportingMeasure measures run after simulation and operate on neither.
	ReportingMeasure MeasureType = "ReportingMeasure"
)

// Phase returns the position of the measure type in a workflow. Steps of a
// lower phase always run before steps of a higher one.
func (t MeasureType) Phase() int {
	switch t {
	case ModelMeasure:
		return 0
	case EnergyPlusMeasure:
		return 1
	case ReportingMeasure:
		return 2
	default:
		return -1
	}
}

// Valid reports whether t is one of the known measure types.
func (t MeasureType) Valid() bool {
	return t.Phase() >= 0
}

// Language identifies the scripting language a measure is written in.
type Language string

const (
	// LanguageGo measures are interpreted Go scripts.
	LanguageGo Language = "go"
	// LanguageStarlark measures are Starlark scripts.
	LanguageStarlark Language = "starlark"
)

// Extension returns the file extension of primary scripts in this language.
func (l Language) Extension() string {
	switch l {
	case LanguageGo:
		return ".go"
	case LanguageStarlark:
		return ".star"
	default:
		return ""
	}
}

// ParseLanguage normalises a language name. An empty name defaults to Go.
func ParseLanguage(s string) Language {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return LanguageGo
	}
	return Language(s)
}

// OutputAttribute describes a value a measure registers when it runs.
type OutputAttribute struct {
	Name        string `yaml:"name" json:"name"`
	DisplayName string `yaml:"display_name,omitempty" json:"display_name,omitempty"`
	Type        string `yaml:"type,omitempty" json:"type,omitempty"`
	Units       string `yaml:"units,omitempty" json:"units,omitempty"`
}

// MeasureInfo is the metadata computed by running a measure's introspection
// methods against a throwaway domain object.
type MeasureInfo struct {
	MeasureType        MeasureType       `json:"measure_type"`
	ClassName          string            `json:"class_name"`
	Name               string            `json:"name"`
	Description        string            `json:"description,omitempty"`
	Taxonomy           string            `json:"taxonomy,omitempty"`
	ModelerDescription string            `json:"modeler_description,omitempty"`
	Arguments          []Argument        `json:"arguments"`
	Outputs            []OutputAttribute `json:"outputs"`
}

// Clone returns a deep copy of the info, including fresh argument definitions.
func (i *MeasureInfo) Clone() *MeasureInfo {
	if i == nil {
		return nil
	}
	out := *i
	out.Arguments = CloneArguments(i.Arguments)
	out.Outputs = slices.Clone(i.Outputs)
	return &out
}

// MeasureFile records a file of a measure directory and its checksum.
type MeasureFile struct {
	Filename  string `yaml:"filename"`
	UsageType string `yaml:"usage_type"`
	Checksum  string `yaml:"checksum"`
}

// File usage types.
const (
	UsageScript = "script"
	UsageDoc    = "doc"
	UsageTest   = "test"
	UsageOther  = "resource"
)

// MeasureMetadata is the content of a measure.yaml file.
type MeasureMetadata struct {
	Name               string            `yaml:"name"`
	UID                string            `yaml:"uid"`
	VersionID          string            `yaml:"version_id"`
	DisplayName        string            `yaml:"display_name,omitempty"`
	ClassName          string            `yaml:"class_name"`
	Description        string            `yaml:"description,omitempty"`
	ModelerDescription string            `yaml:"modeler_description,omitempty"`
	Taxonomy           string            `yaml:"taxonomy,omitempty"`
	MeasureType        MeasureType       `yaml:"measure_type"`
	Language           Language          `yaml:"language,omitempty"`
	Arguments          []Argument        `yaml:"arguments,omitempty"`
	Outputs            []OutputAttribute `yaml:"outputs,omitempty"`
	Files              []MeasureFile     `yaml:"files,omitempty"`
	// Checksum covers every other field as last written by the tool. A
	// mismatch means measure.yaml was edited by hand.
	Checksum string `yaml:"checksum,omitempty"`
}

// Clone returns a deep copy of the metadata.
func (m MeasureMetadata) Clone() MeasureMetadata {
	out := m
	out.Arguments = CloneArguments(m.Arguments)
	out.Outputs = slices.Clone(m.Outputs)
	out.Files = slices.Clone(m.Files)
	return out
}

// MissingFields returns the names of required metadata fields that are empty.
func (m MeasureMetadata) MissingFields() []string {
	var missing []string
	if m.Name == "" {
		missing = append(missing, "name")
	}
	if m.UID == "" {
		missing = append(missing, "uid")
	}
	if m.VersionID == "" {
		missing = append(missing, "version_id")
	}
	if m.ClassName == "" {
		missing = append(missing, "class_name")
	}
	if !m.MeasureType.Valid() {
		missing = append(missing, "measure_type")
	}
	return missing
}
