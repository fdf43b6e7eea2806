package domain_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/osw/internal/core/domain"
)

func ptr(f float64) *float64 { return &f }

func TestArgument_SetValue(t *testing.T) {
	tests := []struct {
		name string
		arg  domain.Argument
		in   any
		want any
	}{
		{"bool from string", domain.Argument{Type: domain.ArgBoolean}, " true ", true},
		{"double from int", domain.Argument{Type: domain.ArgDouble}, 3, 3.0},
		{"double from string", domain.Argument{Type: domain.ArgDouble}, "1.25", 1.25},
		{"integer from whole float", domain.Argument{Type: domain.ArgInteger}, 4.0, 4},
		{"integer from string", domain.Argument{Type: domain.ArgInteger}, "7", 7},
		{"string from number", domain.Argument{Type: domain.ArgString}, 12, "12"},
		{"path kept as string", domain.Argument{Type: domain.ArgPath}, "weather.epw", "weather.epw"},
		{"choice by value", domain.Argument{Type: domain.ArgChoice, Choices: []string{"SI", "IP"}}, "IP", "IP"},
		{
			"choice by display name",
			domain.Argument{Type: domain.ArgChoice, Choices: []string{"SI", "IP"}, ChoiceDisplayNames: []string{"Metric", "Imperial"}},
			"Imperial", "IP",
		},
		{"double inside range", domain.Argument{Type: domain.ArgDouble, MinValue: ptr(0), MaxValue: ptr(1)}, 0.5, 0.5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			arg := tt.arg
			require.NoError(t, arg.SetValue(tt.in))
			assert.Equal(t, tt.want, arg.Value)
		})
	}
}

func TestArgument_SetValue_Rejects(t *testing.T) {
	tests := []struct {
		name string
		arg  domain.Argument
		in   any
	}{
		{"bool from garbage", domain.Argument{Type: domain.ArgBoolean}, "maybe"},
		{"bool from number", domain.Argument{Type: domain.ArgBoolean}, 1},
		{"double from garbage", domain.Argument{Type: domain.ArgDouble}, "wide"},
		{"integer from fraction", domain.Argument{Type: domain.ArgInteger}, 1.5},
		{"unknown choice", domain.Argument{Type: domain.ArgChoice, Choices: []string{"SI", "IP"}}, "furlong"},
		{"below minimum", domain.Argument{Type: domain.ArgDouble, MinValue: ptr(0)}, -1},
		{"above maximum", domain.Argument{Type: domain.ArgInteger, MaxValue: ptr(10)}, 11},
		{"double from NaN string", domain.Argument{Type: domain.ArgDouble}, "NaN"},
		{"double NaN against bounds", domain.Argument{Type: domain.ArgDouble, MinValue: ptr(0), MaxValue: ptr(1)}, math.NaN()},
		{"integer from huge unsigned", domain.Argument{Type: domain.ArgInteger}, uint64(math.MaxUint64)},
		{"integer from huge float", domain.Argument{Type: domain.ArgInteger}, 1e20},
		{"integer from infinity", domain.Argument{Type: domain.ArgInteger}, math.Inf(1)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			arg := tt.arg
			arg.Name = "depth"
			err := arg.SetValue(tt.in)
			require.ErrorIs(t, err, domain.ErrArgumentValue)
			assert.Nil(t, arg.Value, "a rejected value is not stored")
		})
	}
}

func TestArgument_CloneIsDeep(t *testing.T) {
	orig := domain.Argument{Name: "space", Choices: []string{"Living"}, MinValue: ptr(1)}
	clone := orig.Clone()
	clone.Choices[0] = "Kitchen"
	*clone.MinValue = 5

	assert.Equal(t, "Living", orig.Choices[0])
	assert.InDelta(t, 1.0, *orig.MinValue, 0)
}

func TestArgumentMap(t *testing.T) {
	m := domain.NewArgumentMap([]domain.Argument{
		{Name: "depth", Type: domain.ArgDouble, DefaultValue: 0.5},
		{Name: "count", Type: domain.ArgInteger, Value: 3},
		{Name: "label", Type: domain.ArgString},
	})

	assert.True(t, m.Has("depth"))
	assert.False(t, m.Has("label"), "no value and no default")
	assert.False(t, m.Has("missing"))
	assert.InDelta(t, 0.5, m.Float("depth"), 0)
	assert.Equal(t, 3, m.Int("count"))
	assert.Empty(t, m.String("label"))
	assert.Equal(t, map[string]any{"depth": 0.5, "count": 3}, m.Values())
}
