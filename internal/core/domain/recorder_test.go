package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/osw/internal/core/domain"
)

func TestRecorder_Result(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		r := domain.NewRecorder("/run/000_a", "")
		r.RegisterInfo("added overhang")
		r.RegisterValue("depth", 1.25)
		r.RegisterFinalCondition("1 overhang")

		res := r.Result()
		assert.Equal(t, domain.StepSuccess, res.Value)
		assert.True(t, res.Success())
		assert.Equal(t, []domain.RegisteredValue{{Name: "depth", Value: 1.25}}, res.Values)
		assert.False(t, res.CompletedAt.Before(res.StartedAt))
	})

	t.Run("errors win over not applicable", func(t *testing.T) {
		r := domain.NewRecorder("", "")
		r.RegisterAsNotApplicable("no windows")
		assert.Equal(t, domain.StepNA, r.Result().Value)
		assert.True(t, r.Result().Success())

		assert.False(t, r.RegisterError("broken"))
		assert.Equal(t, domain.StepFail, r.Result().Value)
	})

	t.Run("fail adds a message only when none was registered", func(t *testing.T) {
		r := domain.NewRecorder("", "")
		r.Fail()
		assert.Equal(t, []string{"measure returned false"}, r.Result().Errors)

		r = domain.NewRecorder("", "")
		r.RegisterError("no roof found")
		r.Fail()
		assert.Equal(t, []string{"no roof found"}, r.Result().Errors)
	})

	t.Run("result is a snapshot", func(t *testing.T) {
		r := domain.NewRecorder("", "")
		r.RegisterWarning("first")
		res := r.Result()
		r.RegisterWarning("second")
		assert.Equal(t, []string{"first"}, res.Warnings)
	})
}

func TestRecorder_ValidateUserArguments(t *testing.T) {
	r := domain.NewRecorder("", "/sim/eplusout.sql")
	args := domain.NewArgumentMap([]domain.Argument{
		{Name: "b", Required: true},
		{Name: "a", Required: true},
		{Name: "c", Required: true, DefaultValue: "x"},
		{Name: "d"},
	})

	assert.False(t, r.ValidateUserArguments(args))
	assert.Equal(t, []string{
		`required argument "a" has no value`,
		`required argument "b" has no value`,
	}, r.Result().Errors)

	path, ok := r.LastSQLFile()
	assert.True(t, ok)
	assert.Equal(t, "/sim/eplusout.sql", path)
}

func TestRunResult_Append(t *testing.T) {
	res := &domain.RunResult{Status: domain.RunSuccess, Steps: []domain.StepRecord{{Index: 0}}, Cursor: 1}
	res.Append(&domain.RunResult{Status: domain.RunHalted, Steps: []domain.StepRecord{{Index: 1}}, Cursor: 2})
	res.Append(nil)

	assert.Equal(t, domain.RunHalted, res.Status)
	assert.Equal(t, 2, res.Cursor)
	assert.Len(t, res.Steps, 2)
}
