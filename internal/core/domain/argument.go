package domain

import (
	"errors"
	"fmt"
	"math"
	"slices"
	"strconv"
	"strings"

	"go.trai.ch/zerr"
)

// ArgumentType is the declared type of a measure argument.
type ArgumentType string

// Argument types.
const (
	ArgBoolean ArgumentType = "Boolean"
	ArgDouble  ArgumentType = "Double"
	ArgInteger ArgumentType = "Integer"
	ArgString  ArgumentType = "String"
	ArgChoice  ArgumentType = "Choice"
	ArgPath    ArgumentType = "Path"
)

// Argument is a typed, user-settable input declared by a measure.
type Argument struct {
	Name               string       `yaml:"name" json:"name"`
	DisplayName        string       `yaml:"display_name,omitempty" json:"display_name,omitempty"`
	Description        string       `yaml:"description,omitempty" json:"description,omitempty"`
	Units              string       `yaml:"units,omitempty" json:"units,omitempty"`
	Type               ArgumentType `yaml:"type" json:"type"`
	Required           bool         `yaml:"required" json:"required"`
	ModelDependent     bool         `yaml:"model_dependent" json:"model_dependent"`
	DefaultValue       any          `yaml:"default_value,omitempty" json:"default_value,omitempty"`
	Value              any          `yaml:"-" json:"value,omitempty"`
	Choices            []string     `yaml:"choices,omitempty" json:"choices,omitempty"`
	ChoiceDisplayNames []string     `yaml:"choice_display_names,omitempty" json:"choice_display_names,omitempty"`
	MinValue           *float64     `yaml:"min_value,omitempty" json:"min_value,omitempty"`
	MaxValue           *float64     `yaml:"max_value,omitempty" json:"max_value,omitempty"`
}

// Clone returns a deep copy of the argument.
func (a Argument) Clone() Argument {
	out := a
	out.Choices = slices.Clone(a.Choices)
	out.ChoiceDisplayNames = slices.Clone(a.ChoiceDisplayNames)
	if a.MinValue != nil {
		v := *a.MinValue
		out.MinValue = &v
	}
	if a.MaxValue != nil {
		v := *a.MaxValue
		out.MaxValue = &v
	}
	return out
}

// CloneArguments deep-copies a list of argument definitions.
func CloneArguments(args []Argument) []Argument {
	if args == nil {
		return nil
	}
	out := make([]Argument, len(args))
	for i, arg := range args {
		out[i] = arg.Clone()
	}
	return out
}

// HasValue reports whether a value was set.
func (a Argument) HasValue() bool {
	return a.Value != nil
}

// Effective returns the set value, or the default when none was set.
func (a Argument) Effective() any {
	if a.Value != nil {
		return a.Value
	}
	return a.DefaultValue
}

// SetValue coerces v to the argument's declared type and stores it.
func (a *Argument) SetValue(v any) error {
	coerced, err := a.coerce(v)
	if err != nil {
		return zerr.With(zerr.With(zerr.Wrap(ErrArgumentValue, err.Error()), "argument", a.Name), "value", v)
	}
	a.Value = coerced
	return nil
}

func (a *Argument) coerce(v any) (any, error) {
	switch a.Type {
	case ArgBoolean:
		return toBool(v)
	case ArgDouble:
		f, err := toFloat(v)
		if err != nil {
			return nil, err
		}
		return f, a.checkRange(f)
	case ArgInteger:
		n, err := toInt(v)
		if err != nil {
			return nil, err
		}
		return n, a.checkRange(float64(n))
	case ArgChoice:
		s := toString(v)
		if len(a.Choices) > 0 && !slices.Contains(a.Choices, s) {
			if idx := slices.Index(a.ChoiceDisplayNames, s); idx >= 0 && idx < len(a.Choices) {
				return a.Choices[idx], nil
			}
			return nil, fmt.Errorf("%q is not one of %s", s, strings.Join(a.Choices, ", "))
		}
		return s, nil
	default:
		return toString(v), nil
	}
}

func (a *Argument) checkRange(f float64) error {
	if math.IsNaN(f) {
		return errors.New("NaN is not a number")
	}
	if a.MinValue != nil && f < *a.MinValue {
		return fmt.Errorf("%v is below the minimum %v", f, *a.MinValue)
	}
	if a.MaxValue != nil && f > *a.MaxValue {
		return fmt.Errorf("%v is above the maximum %v", f, *a.MaxValue)
	}
	return nil
}

func toBool(v any) (bool, error) {
	switch t := v.(type) {
	case bool:
		return t, nil
	case string:
		return strconv.ParseBool(strings.TrimSpace(t))
	default:
		return false, fmt.Errorf("cannot use %T as a boolean", v)
	}
}

func toFloat(v any) (float64, error) {
	switch t := v.(type) {
	case float64:
		return t, nil
	case float32:
		return float64(t), nil
	case int:
		return float64(t), nil
	case int32:
		return float64(t), nil
	case int64:
		return float64(t), nil
	case uint64:
		return float64(t), nil
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(t), 64)
		if err != nil {
			return 0, err
		}
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return 0, fmt.Errorf("%q is not a finite number", t)
		}
		return f, nil
	default:
		return 0, fmt.Errorf("cannot use %T as a number", v)
	}
}

func toInt(v any) (int, error) {
	switch t := v.(type) {
	case int:
		return t, nil
	case int32:
		return int(t), nil
	case int64:
		return int(t), nil
	case uint64:
		if t > math.MaxInt {
			return 0, fmt.Errorf("%d is out of range", t)
		}
		return int(t), nil
	case float64:
		if math.IsNaN(t) || math.IsInf(t, 0) || t != math.Trunc(t) {
			return 0, fmt.Errorf("%v is not an integer", t)
		}
		if t < math.MinInt || t >= math.MaxInt {
			return 0, fmt.Errorf("%v is out of range", t)
		}
		return int(t), nil
	case string:
		return strconv.Atoi(strings.TrimSpace(t))
	default:
		return 0, fmt.Errorf("cannot use %T as an integer", v)
	}
}

func toString(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}

// ArgumentMap holds bound arguments keyed by name.
type ArgumentMap map[string]Argument

// NewArgumentMap indexes args by name.
func NewArgumentMap(args []Argument) ArgumentMap {
	out := make(ArgumentMap, len(args))
	for _, arg := range args {
		out[arg.Name] = arg
	}
	return out
}

// Has reports whether an argument named name exists and carries a value or a default.
func (m ArgumentMap) Has(name string) bool {
	arg, ok := m[name]
	return ok && arg.Effective() != nil
}

// Value returns the effective value of the named argument.
func (m ArgumentMap) Value(name string) any {
	return m[name].Effective()
}

// Bool returns the named argument as a boolean.
func (m ArgumentMap) Bool(name string) bool {
	b, _ := toBool(m.Value(name))
	return b
}

// Float returns the named argument as a float.
func (m ArgumentMap) Float(name string) float64 {
	f, _ := toFloat(m.Value(name))
	return f
}

// Int returns the named argument as an integer.
func (m ArgumentMap) Int(name string) int {
	n, _ := toInt(m.Value(name))
	return n
}

// String returns the named argument as a string.
func (m ArgumentMap) String(name string) string {
	v := m.Value(name)
	if v == nil {
		return ""
	}
	return toString(v)
}

// Values flattens the map into name to effective value.
func (m ArgumentMap) Values() map[string]any {
	out := make(map[string]any, len(m))
	for name, arg := range m {
		if v := arg.Effective(); v != nil {
			out[name] = v
		}
	}
	return out
}
